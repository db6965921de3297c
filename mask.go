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

// Mask identifies one of the eight standard XOR mask patterns.
type Mask int8

// Mask pattern indices, per ISO/IEC 18004 Table 10.
const (
	Mask0 Mask = iota
	Mask1
	Mask2
	Mask3
	Mask4
	Mask5
	Mask6
	Mask7
)

// NumMasks is the number of standard mask patterns.
const NumMasks = 8

// maskInvert reports whether mask flips the module at (row, col), per
// ISO/IEC 18004 Table 10.
func maskInvert(mask Mask, row, col int) bool {
	switch mask {
	case Mask0:
		return (row+col)%2 == 0
	case Mask1:
		return row%2 == 0
	case Mask2:
		return col%3 == 0
	case Mask3:
		return (row+col)%3 == 0
	case Mask4:
		return (row/2+col/3)%2 == 0
	case Mask5:
		return (row*col)%2+(row*col)%3 == 0
	case Mask6:
		return ((row*col)%2+(row*col)%3)%2 == 0
	default: // Mask7.
		return ((row+col)%2+(row*col)%3)%2 == 0
	}
}

// ApplyMask returns a new matrix with mask applied to every free (non
// function-pattern) cell, per free, and the (ecc, mask) format-info strip
// overlaid. The source matrix is not modified. No cell in the result
// remains Reserved: this is the complete, self-sufficient masking step, not
// an intermediate that still needs a separate format-info pass.
func ApplyMask(m *Matrix, free *FreeMask, ecc ECC, mask Mask) *Matrix {
	result := m.Clone()
	size := m.Size()

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if !free.At(row, col) {
				continue
			}

			if maskInvert(mask, row, col) {
				cur := result.At(row, col)
				result.Set(row, col, bToModule(cur != ModuleDark))
			}
		}
	}

	drawFormatInfo(result, ecc, mask)

	return result
}

// EvaluatePenalty scores a fully-drawn, masked matrix by the four penalty
// rules of ISO/IEC 18004 §8.8.2: N1 (runs of 5+ same-color modules in a row
// or column), N2 (2x2 blocks of one color), N3 (patterns resembling a finder
// pattern, in either orientation), and N4 (imbalance between dark and light
// modules, in steps of 5%). Lower is better.
func EvaluatePenalty(m *Matrix) int {
	size := m.Size()
	penalty := 0

	for row := 0; row < size; row++ {
		penalty += runPenalty(size, func(i int) bool { return m.IsDark(row, i) })
		penalty += finderPenalty(size, func(i int) bool { return m.IsDark(row, i) })
	}
	for col := 0; col < size; col++ {
		penalty += runPenalty(size, func(i int) bool { return m.IsDark(i, col) })
		penalty += finderPenalty(size, func(i int) bool { return m.IsDark(i, col) })
	}

	for row := 0; row < size-1; row++ {
		for col := 0; col < size-1; col++ {
			c := m.IsDark(row, col)
			if c == m.IsDark(row, col+1) && c == m.IsDark(row+1, col) && c == m.IsDark(row+1, col+1) {
				penalty += 3
			}
		}
	}

	dark := 0
	for _, c := range m.cells {
		if c == ModuleDark {
			dark++
		}
	}
	total := size * size
	// N4: 10 points for every 5% (floor) the dark module ratio deviates from
	// 50%.
	percent := dark * 100 / total
	penalty += (abs(percent-50) / 5) * 10

	return penalty
}

// runPenalty returns the N1 penalty contribution for one row or column: for
// every run of 5 or more same-color modules, 3 plus 1 for each module
// beyond 5.
func runPenalty(size int, at func(int) bool) int {
	penalty := 0
	runLen := 1
	for i := 1; i < size; i++ {
		if at(i) == at(i-1) {
			runLen++
			continue
		}

		if runLen >= 5 {
			penalty += 3 + (runLen - 5)
		}
		runLen = 1
	}
	if runLen >= 5 {
		penalty += 3 + (runLen - 5)
	}

	return penalty
}

// finderPenalty returns the N3 penalty contribution for one row or column:
// 40 points for every occurrence of the 11-module sequence
// 1:1:3:1:1(dark:light:dark:light:dark) padded by 4+ light modules on
// either side, as a finder pattern's horizontal/vertical cross-section
// resembles.
func finderPenalty(size int, at func(int) bool) int {
	bits := make([]bool, size)
	for i := range bits {
		bits[i] = at(i)
	}

	penalty := 0
	for i := 0; i+11 <= size; i++ {
		if matchesFinderPattern(bits[i:i+11], true) || matchesFinderPattern(bits[i:i+11], false) {
			penalty += 40
		}
	}

	return penalty
}

// matchesFinderPattern reports whether window is the 11-module sequence
// light*4, dark, light, dark*3, light, dark (or its horizontal mirror,
// selected by leading), used by finderPenalty.
func matchesFinderPattern(window []bool, leading bool) bool {
	pattern := [11]bool{false, false, false, false, true, false, true, true, true, false, true}
	if !leading {
		for i, j := 0, len(pattern)-1; i < j; i, j = i+1, j-1 {
			pattern[i], pattern[j] = pattern[j], pattern[i]
		}
	}

	for i, want := range pattern {
		if window[i] != want {
			return false
		}
	}

	return true
}

// SelectBestMask evaluates all eight mask patterns against m (with function
// patterns and format info for that mask already accounted for) and returns
// the one with the lowest penalty score, per ISO/IEC 18004 §8.8.2. Ties
// favor the lowest mask index, matching iteration order.
func SelectBestMask(m *Matrix, free *FreeMask, ecc ECC) (Mask, *Matrix) {
	best := Mask0
	var bestMatrix *Matrix
	bestPenalty := -1

	for mask := Mask0; mask < NumMasks; mask++ {
		candidate := ApplyMask(m, free, ecc, mask)

		penalty := EvaluatePenalty(candidate)
		if bestPenalty < 0 || penalty < bestPenalty {
			best = mask
			bestMatrix = candidate
			bestPenalty = penalty
		}
	}

	return best, bestMatrix
}
