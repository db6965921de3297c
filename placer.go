// Copyright © 2020, G.Ralph Kuntz, MD.
//
// Licensed under the Apache License, Version 2.0(the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIC
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package qrcodegen

// drawFunctionPatterns draws every function pattern (finder patterns plus
// separators, timing patterns, alignment patterns, the fixed dark module,
// and reserved format/version zones) into an empty matrix. It does not draw
// the format or version info bit values themselves, only reserves their
// cells; drawFormatInfo and drawVersionInfo fill them in once the mask is
// known.
func drawFunctionPatterns(version Version) *Matrix {
	size := version.Size()
	m := NewMatrix(size)

	drawFinderPattern(m, 3, 3)
	drawFinderPattern(m, size-4, 3)
	drawFinderPattern(m, 3, size-4)

	drawTimingPatterns(m)
	drawAlignmentPatterns(m, version)

	reserveFormatInfo(m, size)
	m.Set(size-8, 8, ModuleDark) // Dark module, position fixed regardless of version.

	if version >= 7 {
		reserveVersionInfo(m, size)
	}

	return m
}

// drawFinderPattern draws a 7x7 finder pattern (plus its 1-module light
// separator ring, clipped at the matrix edge) centered at (row, col).
func drawFinderPattern(m *Matrix, row, col int) {
	size := m.Size()

	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			r, c := row+dy, col+dx
			if r < 0 || r >= size || c < 0 || c >= size {
				continue
			}

			dist := abs(dx)
			if abs(dy) > dist {
				dist = abs(dy)
			}

			m.Set(r, c, bToModule(dist != 2 && dist != 4))
		}
	}
}

// drawTimingPatterns draws the alternating dark/light timing strips in row
// 6 and column 6, skipping cells a finder pattern already claimed.
func drawTimingPatterns(m *Matrix) {
	size := m.Size()

	for i := 0; i < size; i++ {
		if m.At(6, i) == ModuleNone {
			m.Set(6, i, bToModule(i%2 == 0))
		}
		if m.At(i, 6) == ModuleNone {
			m.Set(i, 6, bToModule(i%2 == 0))
		}
	}
}

// drawAlignmentPatterns draws every 5x5 alignment pattern for this version,
// skipping any center that would overlap a finder pattern.
func drawAlignmentPatterns(m *Matrix, version Version) {
	positions := alignmentPatternPositions(version)
	size := m.Size()

	for _, row := range positions {
		for _, col := range positions {
			if (row == 6 && col == 6) || (row == 6 && col == size-7) || (row == size-7 && col == 6) {
				continue // Overlaps a finder pattern corner.
			}

			drawAlignmentPattern(m, row, col)
		}
	}
}

func drawAlignmentPattern(m *Matrix, row, col int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			dist := abs(dx)
			if abs(dy) > dist {
				dist = abs(dy)
			}

			m.Set(row+dy, col+dx, bToModule(dist != 1))
		}
	}
}

// alignmentPatternPositions returns the row/column coordinates (shared
// between rows and columns) at which alignment pattern centers belong, per
// ISO/IEC 18004 Table E.1. Version 1 has none.
func alignmentPatternPositions(version Version) []int {
	if version == 1 {
		return nil
	}

	v := int(version)
	gap := int(alignmentGap[v-1])
	numAlign := v/7 + 2

	size := version.Size()
	positions := make([]int, numAlign)
	positions[0] = 6
	positions[numAlign-1] = size - 7
	for i := numAlign - 2; i >= 1; i-- {
		positions[i] = positions[i+1] - gap
	}

	return positions
}

// formatInfoCells returns the two 15-cell copies of the format info strip,
// in bit order (index 0 is the least significant bit of the 15-bit format
// string). Copy A wraps the top-left finder pattern; copy B splits across
// the top-right row (bits 0-7) and the bottom-left column (bits 8-14).
func formatInfoCells(size int) [2][15][2]int {
	var a, b [15][2]int

	for i := 0; i <= 5; i++ {
		a[i] = [2]int{i, 8}
	}
	a[6] = [2]int{7, 8}
	a[7] = [2]int{8, 8}
	a[8] = [2]int{8, 7}
	for i := 9; i <= 14; i++ {
		a[i] = [2]int{8, 14 - i}
	}

	for i := 0; i <= 7; i++ {
		b[i] = [2]int{8, size - 1 - i}
	}
	for i := 8; i <= 14; i++ {
		b[i] = [2]int{size - 15 + i, 8}
	}

	return [2][15][2]int{a, b}
}

// reserveFormatInfo marks the two format info strips (15 bits each, one
// around the top-left finder pattern, one split between the top-right and
// bottom-left finder patterns) as reserved, to be filled in once the mask is
// chosen.
func reserveFormatInfo(m *Matrix, size int) {
	for _, cells := range formatInfoCells(size) {
		for _, rc := range cells {
			m.Set(rc[0], rc[1], ModuleReserved)
		}
	}
}

// reserveVersionInfo marks the two 6x3 version info blocks (versions 7+) as
// reserved.
func reserveVersionInfo(m *Matrix, size int) {
	for r := 0; r < 6; r++ {
		for c := 0; c < 3; c++ {
			m.Set(r, size-11+c, ModuleReserved)
			m.Set(size-11+c, r, ModuleReserved)
		}
	}
}

// drawFormatInfo overlays the chosen ECC/mask format string (both copies)
// onto the cells reserveFormatInfo marked.
func drawFormatInfo(m *Matrix, ecc ECC, mask Mask) {
	size := m.Size()
	bits := formatInfo[ecc][mask]

	for _, cells := range formatInfoCells(size) {
		for i, rc := range cells {
			m.Set(rc[0], rc[1], bToModule(bits&(1<<uint(i)) != 0))
		}
	}
}

// drawVersionInfo overlays the 18-bit version string (both copies), for
// versions 7 and above only.
func drawVersionInfo(m *Matrix, version Version) {
	if version < 7 {
		return
	}

	size := m.Size()
	bits := versionInfo[version-7]

	for i := 0; i < 18; i++ {
		bit := bToModule(bits&(1<<uint(i)) != 0)
		a, b := i/3, i%3

		m.Set(size-11+b, a, bit)
		m.Set(a, size-11+b, bit)
	}
}

// placeDataCodewords writes codewords into every still-free cell of the
// matrix in the zig-zag pattern ISO/IEC 18004 §6.8 specifies: two columns at
// a time, right to left, skipping the vertical timing strip at column 6,
// alternating scan direction every two-column pass, MSB first within each
// byte.
func placeDataCodewords(m *Matrix, free *FreeMask, codewords []byte) {
	size := m.Size()

	bitIndex := 0
	totalBits := len(codewords) * 8

	upward := true
	for right := size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right--
		}

		for i := 0; i < size; i++ {
			row := i
			if upward {
				row = size - 1 - i
			}

			for _, col := range [2]int{right, right - 1} {
				if !free.At(row, col) {
					continue
				}

				bit := false
				if bitIndex < totalBits {
					bit = codewords[bitIndex/8]&(1<<uint(7-bitIndex%8)) != 0
				}
				bitIndex++

				m.Set(row, col, bToModule(bit))
			}
		}

		upward = !upward
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

func bToModule(b bool) Module {
	if b {
		return ModuleDark
	}

	return ModuleLight
}
