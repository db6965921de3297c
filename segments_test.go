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

func TestMakeNumeric(t *testing.T) {
	seg, err := MakeNumeric("12345")
	assert.NoError(t, err)
	assert.Equal(t, 5, seg.NumChars)
	// Groups: "123" (10 bits), "45" (7 bits).
	assert.Equal(t, []bitGroup{{123, 10}, {45, 7}}, seg.groups)
}

func TestMakeNumericRejectsNonDigits(t *testing.T) {
	_, err := MakeNumeric("12a45")
	assert.Error(t, err)
}

func TestMakeAlphanumeric(t *testing.T) {
	seg, err := MakeAlphanumeric("AB")
	assert.NoError(t, err)
	// 'A' = 10, 'B' = 11; combined value = 10*45 + 11 = 461.
	assert.Equal(t, []bitGroup{{461, 11}}, seg.groups)
}

func TestMakeAlphanumericOddTrailer(t *testing.T) {
	seg, err := MakeAlphanumeric("A")
	assert.NoError(t, err)
	assert.Equal(t, []bitGroup{{10, 6}}, seg.groups)
}

func TestMakeAlphanumericRejectsLowercase(t *testing.T) {
	_, err := MakeAlphanumeric("abc")
	assert.Error(t, err)
}

func TestMakeBytes(t *testing.T) {
	seg := MakeBytes([]byte{0x41, 0xFF})
	assert.Equal(t, 2, seg.NumChars)
	assert.Equal(t, []bitGroup{{0x41, 8}, {0xFF, 8}}, seg.groups)
}

func TestMakeKanji(t *testing.T) {
	seg, err := MakeKanji([]byte{0x93, 0x5F})
	assert.NoError(t, err)
	assert.Equal(t, 1, seg.NumChars)
	assert.Equal(t, 13, seg.groups[0].width)
}

func TestMakeKanjiRejectsOddLength(t *testing.T) {
	_, err := MakeKanji([]byte{0x93})
	assert.Error(t, err)
}

func TestMakeKanjiRejectsInvalidPair(t *testing.T) {
	_, err := MakeKanji([]byte{0x00, 0x00})
	assert.Error(t, err)
}

func TestMakeECIWidths(t *testing.T) {
	seg, err := MakeECI(3)
	assert.NoError(t, err)
	assert.Equal(t, []bitGroup{{3, 8}}, seg.groups)

	seg, err = MakeECI(1000)
	assert.NoError(t, err)
	assert.Len(t, seg.groups, 3)

	seg, err = MakeECI(999999)
	assert.NoError(t, err)
	assert.Len(t, seg.groups, 4)

	_, err = MakeECI(1_000_000)
	assert.Error(t, err)
}

func TestMakeSegmentsPicksNarrowestMode(t *testing.T) {
	segs, err := MakeSegments([]byte("123456"))
	assert.NoError(t, err)
	assert.Len(t, segs, 1)
	assert.Equal(t, Numeric.String(), segs[0].Mode.String())
}

func TestMakeSegmentsEmpty(t *testing.T) {
	segs, err := MakeSegments(nil)
	assert.NoError(t, err)
	assert.Empty(t, segs)
}

func TestSegmentBitLenMatchesTotalBits(t *testing.T) {
	seg, err := MakeAlphanumeric("HELLO")
	assert.NoError(t, err)

	bits := totalBits([]*QRSegment{seg}, 1)
	assert.Equal(t, 4+9+seg.bitLen(), bits)
}
