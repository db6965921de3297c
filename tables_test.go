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

func TestRSBlockInformationBalancesCodewords(t *testing.T) {
	for v := 0; v < 40; v++ {
		for ecc := ECCLow; ecc <= ECCHigh; ecc++ {
			layout := rsBlockInformation(v, ecc)

			total := layout.ecPerBlock*layout.totalBlocks() +
				layout.g1Blocks*layout.g1Data + layout.g2Blocks*layout.g2Data

			assert.Equalf(t, totalCodewordsByVersion[v], total, "version %d ecc %v", v+1, ecc)

			dataTotal := layout.g1Blocks*layout.g1Data + layout.g2Blocks*layout.g2Data
			assert.Equalf(t, dataCodewordsByVersion[v][ecc], dataTotal, "version %d ecc %v", v+1, ecc)
		}
	}
}

func TestDataCodewordsLen(t *testing.T) {
	assert.Equal(t, 19, DataCodewordsLen(1, ECCLow))
	assert.Equal(t, 2956, DataCodewordsLen(40, ECCLow))
	assert.Equal(t, 1276, DataCodewordsLen(40, ECCHigh))
}

func TestAlphanumericValue(t *testing.T) {
	assert.EqualValues(t, 0, alphanumericValue['0'])
	assert.EqualValues(t, 10, alphanumericValue['A'])
	assert.EqualValues(t, 44, alphanumericValue[':'])
	assert.EqualValues(t, -1, alphanumericValue['a'])
	assert.EqualValues(t, -1, alphanumericValue['!'])
}

func TestRawDataModulesPositive(t *testing.T) {
	for v := 1; v <= 40; v++ {
		assert.Greaterf(t, rawDataModulesByVersion[v-1], 0, "version %d", v)
		// The raw module count can never exceed the matrix area.
		assert.LessOrEqualf(t, rawDataModulesByVersion[v-1], Version(v).Size()*Version(v).Size(), "version %d", v)
	}
}
