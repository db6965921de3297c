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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlignmentPatternPositionsVersion1Empty(t *testing.T) {
	assert.Empty(t, alignmentPatternPositions(1))
}

func TestAlignmentPatternPositionsVersion7(t *testing.T) {
	// Version 7 (45x45) has alignment centers at 6, 22, 38 per ISO/IEC 18004
	// Table E.1.
	assert.Equal(t, []int{6, 22, 38}, alignmentPatternPositions(7))
}

func TestDrawFunctionPatternsNoOverlap(t *testing.T) {
	for _, v := range []Version{1, 2, 7, 40} {
		m := drawFunctionPatterns(v)
		size := v.Size()

		// The 4 corners of the top-left finder pattern's dark ring must be
		// dark, confirming finder placement landed where expected.
		assert.Equal(t, ModuleDark, m.At(0, 0))
		assert.Equal(t, ModuleDark, m.At(0, 6))
		assert.Equal(t, ModuleDark, m.At(6, 0))
		assert.Equal(t, ModuleDark, m.At(6, 6))

		// The dark module sits at (size-8, 8), in the row just above the
		// bottom-left finder pattern, fixed relative to the symbol size.
		assert.Equal(t, ModuleDark, m.At(size-8, 8))
	}
}

func TestFormatInfoCellsRoundTrip(t *testing.T) {
	size := Version(5).Size()
	m := NewMatrix(size)
	reserveFormatInfo(m, size)

	drawFormatInfo(m, ECCQuartile, Mask3)

	want := formatInfo[ECCQuartile][Mask3]
	for _, cells := range formatInfoCells(size) {
		for i, rc := range cells {
			bit := want&(1<<uint(i)) != 0
			assert.Equal(t, bToModule(bit), m.At(rc[0], rc[1]))
		}
	}
}

func TestPlaceDataCodewordsFillsEveryFreeCell(t *testing.T) {
	version := Version(1)
	base := drawFunctionPatterns(version)
	free := deriveFreeMask(base)

	freeCount := 0
	for row := 0; row < base.Size(); row++ {
		for col := 0; col < base.Size(); col++ {
			if free.At(row, col) {
				freeCount++
			}
		}
	}
	assert.Equal(t, numRawDataModules(version), freeCount)

	codewords := make([]byte, DataCodewordsLen(version, ECCLow))
	placeDataCodewords(base, free, codewords)

	for row := 0; row < base.Size(); row++ {
		for col := 0; col < base.Size(); col++ {
			if free.At(row, col) {
				assert.NotEqual(t, ModuleNone, base.At(row, col))
			}
		}
	}
}
