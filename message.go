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

// terminateAndPad appends the terminator, pads to a byte boundary, and fills
// the remainder of the data codeword area with the alternating pad bytes
// 0xEC, 0x11. w must already hold the packed segment bitstream; capacityBits
// is 8 times the number of data codewords the symbol's (version, ECC) pair
// provides.
func terminateAndPad(w *bitWriter, capacityBits int) {
	// Terminator: up to 4 zero bits, however many fit before the capacity.
	remaining := capacityBits - w.bitLen()
	if remaining > 4 {
		remaining = 4
	}
	if remaining > 0 {
		w.appendBits(0, remaining)
	}

	// Byte-align with zero bits.
	if pad := w.bitLen() % 8; pad != 0 {
		w.appendBits(0, 8-pad)
	}

	// Alternate pad codewords 0xEC, 0x11 until the codeword area is full.
	for i, pattern := 0, 0xEC; w.bitLen() < capacityBits; i, pattern = i+1, pattern^0xFD {
		w.appendBits(pattern, 8)
	}
}

// splitDataCodewords partitions a flat data codeword buffer into the
// Reed-Solomon block layout for (version, ecc): layout.g1Blocks blocks of
// layout.g1Data bytes followed by layout.g2Blocks blocks of layout.g2Data
// bytes.
func splitDataCodewords(data []byte, layout rsBlockLayout) [][]byte {
	blocks := make([][]byte, 0, layout.totalBlocks())

	pos := 0
	for i := 0; i < layout.g1Blocks; i++ {
		blocks = append(blocks, data[pos:pos+layout.g1Data])
		pos += layout.g1Data
	}
	for i := 0; i < layout.g2Blocks; i++ {
		blocks = append(blocks, data[pos:pos+layout.g2Data])
		pos += layout.g2Data
	}

	return blocks
}

// addECCAndInterleave computes the Reed-Solomon error correction codewords
// for each data block, then interleaves data codewords round-robin followed
// by EC codewords round-robin, per ISO/IEC 18004 §8.7.4. The result is the
// final codeword sequence placed into the matrix, including the single
// trailing zero-value remainder byte that versions needing bit padding (not
// a whole number of codewords of raw module capacity) require.
func addECCAndInterleave(data []byte, version Version, ecc ECC) []byte {
	v := int(version) - 1
	layout := rsBlockInformation(v, ecc)

	blocks := splitDataCodewords(data, layout)
	generator := generatorPolynomialCoefficients(layout.ecPerBlock)

	ecBlocks := make([][]byte, len(blocks))
	for i, block := range blocks {
		ecBlocks[i] = DividePolynomial(block, generator)
	}

	totalData := layout.g1Blocks*layout.g1Data + layout.g2Blocks*layout.g2Data
	totalEC := layout.totalBlocks() * layout.ecPerBlock
	rawModules := numRawDataModules(version)
	remainderBits := rawModules - (totalData+totalEC)*8

	result := make([]byte, 0, totalData+totalEC+1)

	maxDataLen := layout.g2Data
	if layout.g1Data > maxDataLen {
		maxDataLen = layout.g1Data
	}
	for i := 0; i < maxDataLen; i++ {
		for _, block := range blocks {
			if i < len(block) {
				result = append(result, block[i])
			}
		}
	}

	for i := 0; i < layout.ecPerBlock; i++ {
		for _, block := range ecBlocks {
			result = append(result, block[i])
		}
	}

	if remainderBits > 0 {
		result = append(result, 0)
	}

	return result
}

// numRawDataModules returns the number of modules available for data at the
// given version, once all function patterns are excluded. Looked up from
// rawDataModulesByVersion, computed once at package init.
func numRawDataModules(version Version) int {
	return rawDataModulesByVersion[version-1]
}
