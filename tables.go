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

// Static, compile-time tables indexed by (version, ECC) per ISO/IEC 18004.
// Versions are addressed 0-based here (v = Version - 1); ECC is addressed by
// its dense index (ECCLow=0 .. ECCHigh=3).

// totalCodewordsByVersion is the total number of codewords (data + EC) in
// the symbol, by 0-based version.
var totalCodewordsByVersion = [40]int{
	26, 44, 70, 100, 134, 172, 196, 242, 292, 346,
	404, 466, 532, 581, 655, 733, 815, 901, 991, 1085,
	1156, 1258, 1364, 1474, 1588, 1706, 1828, 1921, 2051, 2185,
	2323, 2465, 2611, 2761, 2876, 3034, 3196, 3362, 3532, 3706,
}

// dataCodewordsByVersion[v][ecc] is the number of data (non-EC) codewords.
var dataCodewordsByVersion = [40][4]int{
	{19, 16, 13, 9}, {34, 28, 22, 16}, {55, 44, 34, 26}, {80, 64, 48, 36},
	{108, 86, 62, 46}, {136, 108, 76, 60}, {156, 124, 88, 66}, {194, 154, 110, 86},
	{232, 182, 132, 100}, {274, 216, 154, 122}, {324, 254, 180, 140}, {370, 290, 206, 158},
	{428, 334, 244, 180}, {461, 365, 261, 197}, {523, 415, 295, 223}, {589, 453, 325, 253},
	{647, 507, 367, 283}, {721, 563, 397, 313}, {795, 627, 445, 341}, {861, 669, 485, 385},
	{932, 714, 512, 406}, {1006, 782, 568, 442}, {1094, 860, 614, 464}, {1174, 914, 664, 514},
	{1276, 1000, 718, 538}, {1370, 1062, 754, 596}, {1468, 1128, 808, 628}, {1531, 1193, 871, 661},
	{1631, 1267, 911, 701}, {1735, 1373, 985, 745}, {1843, 1455, 1033, 793}, {1955, 1541, 1115, 845},
	{2071, 1631, 1171, 901}, {2191, 1725, 1231, 961}, {2306, 1812, 1286, 986}, {2434, 1914, 1354, 1054},
	{2566, 1992, 1426, 1096}, {2702, 2102, 1502, 1142}, {2812, 2216, 1582, 1222}, {2956, 2334, 1666, 1276},
}

// rsBlockRaw[v][ecc] holds (g1Blocks, g1Data, g2Blocks); ecPerBlock is
// derived arithmetically in rsBlockInformation so the layout invariant in
// SPEC_FULL.md §3 holds exactly.
var rsBlockRaw = [40][4][3]int8{
	{{1, 19, 0}, {1, 16, 0}, {1, 13, 0}, {1, 9, 0}},
	{{1, 34, 0}, {1, 28, 0}, {1, 22, 0}, {1, 16, 0}},
	{{1, 55, 0}, {1, 44, 0}, {2, 17, 0}, {2, 13, 0}},
	{{1, 80, 0}, {2, 32, 0}, {2, 24, 0}, {4, 9, 0}},
	{{1, 108, 0}, {2, 43, 0}, {2, 15, 2}, {2, 11, 2}},
	{{2, 68, 0}, {4, 27, 0}, {4, 19, 0}, {4, 15, 0}},
	{{2, 78, 0}, {4, 31, 0}, {2, 14, 4}, {4, 13, 1}},
	{{2, 97, 0}, {2, 38, 2}, {4, 18, 2}, {4, 14, 2}},
	{{2, 116, 0}, {3, 36, 2}, {4, 16, 4}, {4, 12, 4}},
	{{2, 68, 2}, {4, 43, 1}, {6, 19, 2}, {6, 15, 2}},
	{{4, 81, 0}, {1, 50, 4}, {4, 22, 4}, {3, 12, 8}},
	{{2, 92, 2}, {6, 36, 2}, {4, 20, 6}, {7, 14, 4}},
	{{4, 107, 0}, {8, 37, 1}, {8, 20, 4}, {12, 11, 4}},
	{{3, 115, 1}, {4, 40, 5}, {11, 16, 5}, {11, 12, 5}},
	{{5, 87, 1}, {5, 41, 5}, {5, 24, 7}, {11, 12, 7}},
	{{5, 98, 1}, {7, 45, 3}, {15, 19, 2}, {3, 15, 13}},
	{{1, 107, 5}, {10, 46, 1}, {1, 22, 15}, {2, 14, 17}},
	{{5, 120, 1}, {9, 43, 4}, {17, 22, 1}, {2, 14, 19}},
	{{3, 113, 4}, {3, 44, 11}, {17, 21, 4}, {9, 13, 16}},
	{{3, 107, 5}, {3, 41, 13}, {15, 24, 5}, {15, 15, 10}},
	{{4, 116, 4}, {17, 42, 0}, {17, 22, 6}, {19, 16, 6}},
	{{2, 111, 7}, {17, 46, 0}, {7, 24, 16}, {34, 13, 0}},
	{{4, 121, 5}, {4, 47, 14}, {11, 24, 14}, {16, 15, 14}},
	{{6, 117, 4}, {6, 45, 14}, {11, 24, 16}, {30, 16, 2}},
	{{8, 106, 4}, {8, 47, 13}, {7, 24, 22}, {22, 15, 13}},
	{{10, 114, 2}, {19, 46, 4}, {28, 22, 6}, {33, 16, 4}},
	{{8, 122, 4}, {22, 45, 3}, {8, 23, 26}, {12, 15, 28}},
	{{3, 117, 10}, {3, 45, 23}, {4, 24, 31}, {11, 15, 31}},
	{{7, 116, 7}, {21, 45, 7}, {1, 23, 37}, {19, 15, 26}},
	{{5, 115, 10}, {19, 47, 10}, {15, 24, 25}, {23, 15, 25}},
	{{13, 115, 3}, {2, 46, 29}, {42, 24, 1}, {23, 15, 28}},
	{{17, 115, 0}, {10, 46, 23}, {10, 24, 35}, {19, 15, 35}},
	{{17, 115, 1}, {14, 46, 21}, {29, 24, 19}, {11, 15, 46}},
	{{13, 115, 6}, {14, 46, 23}, {44, 24, 7}, {59, 16, 1}},
	{{12, 121, 7}, {12, 47, 26}, {39, 24, 14}, {22, 15, 41}},
	{{6, 121, 14}, {6, 47, 34}, {46, 24, 10}, {2, 15, 64}},
	{{17, 122, 4}, {29, 46, 14}, {49, 24, 10}, {24, 15, 46}},
	{{4, 122, 18}, {13, 46, 32}, {48, 24, 14}, {42, 15, 32}},
	{{20, 117, 4}, {40, 47, 7}, {43, 24, 22}, {10, 15, 67}},
	{{19, 118, 6}, {18, 47, 31}, {34, 24, 34}, {20, 15, 61}},
}

// alphanumericValue maps an ASCII byte to its value in the 45-character
// alphanumeric alphabet "0-9A-Z $%*+-./:", or -1 if the byte is outside it.
var alphanumericValue = [128]int8{
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, 36, -1, -1, -1, 37, 38,
	-1, -1, -1, -1, 39, 40, -1, 41, 42, 43, 0, 1, 2, 3, 4, 5, 6, 7, 8,
	9, 44, -1, -1, -1, -1, -1, -1, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
}

// alignmentGap[v] is the row/column gap between adjacent alignment-pattern
// centers, by 0-based version. Entries 0-5 (versions 1-6) hold -1 and are
// unused: version 1 has no alignment patterns, and versions 2-6 have only
// the two positions 6 and size-7, which need no gap.
var alignmentGap = [40]int8{
	-1, -1, -1, -1, -1, -1, 16, 18, 20, 22, 24, 26, 28, 20,
	22, 24, 24, 26, 28, 28, 22, 24, 24, 26, 26, 28, 28, 24,
	24, 26, 26, 26, 28, 28, 24, 26, 26, 26, 28, 28,
}

// versionInfo[v-7] is the 18-bit BCH-protected version string for versions
// 7..40 (v is 0-based).
var versionInfo = [34]uint32{
	0x7C94, 0x85BC, 0x9A99, 0xA4D3, 0xBBF6, 0xC762, 0xD847,
	0xE60D, 0xF928, 0x10B78, 0x1145D, 0x12A17, 0x13532, 0x149A6,
	0x15683, 0x168C9, 0x177EC, 0x18EC4, 0x191E1, 0x1AFAB, 0x1B08E,
	0x1CC1A, 0x1D33F, 0x1ED75, 0x1F250, 0x209D5, 0x216F0, 0x228BA,
	0x2379F, 0x24B0B, 0x2542E, 0x26A64, 0x27541, 0x28C69,
}

// formatInfo[ecc][mask] is the 15-bit BCH-protected format string for each
// (ECC, mask pattern) pair.
var formatInfo = [4][8]uint16{
	{0x77C4, 0x72F3, 0x7DAA, 0x789D, 0x662F, 0x6318, 0x6C41, 0x6976},
	{0x5412, 0x5125, 0x5E7C, 0x5B4B, 0x45F9, 0x40CE, 0x4F97, 0x4AA0},
	{0x355F, 0x3068, 0x3F31, 0x3A06, 0x24B4, 0x2183, 0x2EDA, 0x2BED},
	{0x1689, 0x13BE, 0x1CE7, 0x19D0, 0x0762, 0x0255, 0x0D0C, 0x083B},
}

// rsBlockLayout is the block partition for a given (version, ECC): g1Blocks
// blocks of g1Data data codewords followed by g2Blocks blocks of g2Data
// (=g1Data+1) data codewords, each block carrying ecPerBlock EC codewords.
type rsBlockLayout struct {
	ecPerBlock int
	g1Blocks   int
	g1Data     int
	g2Blocks   int
	g2Data     int
}

func (b rsBlockLayout) totalBlocks() int {
	return b.g1Blocks + b.g2Blocks
}

// rsBlockInformation returns the Reed-Solomon block layout for the given
// 0-based version and ECC level. ecPerBlock is derived so that
// ecPerBlock*totalBlocks + g1Data*g1Blocks + g2Data*g2Blocks ==
// totalCodewordsByVersion[v].
func rsBlockInformation(v int, ecc ECC) rsBlockLayout {
	raw := rsBlockRaw[v][ecc]
	g1Blocks, g1Data, g2Blocks := int(raw[0]), int(raw[1]), int(raw[2])

	g2Data := 0
	if g2Blocks != 0 {
		g2Data = g1Data + 1
	}

	ecPerBlock := (totalCodewordsByVersion[v] - (g1Blocks*g1Data + g2Blocks*g2Data)) / (g1Blocks + g2Blocks)

	return rsBlockLayout{
		ecPerBlock: ecPerBlock,
		g1Blocks:   g1Blocks,
		g1Data:     g1Data,
		g2Blocks:   g2Blocks,
		g2Data:     g2Data,
	}
}

// DataCodewordsLen returns the number of data codewords available at the
// given version and error correction level.
func DataCodewordsLen(version Version, ecc ECC) int {
	return dataCodewordsByVersion[version-1][ecc]
}

// rawDataModulesByVersion[v] is the number of modules available for data at
// 1-based version v+1: the symbol area minus finder/separator, timing,
// alignment, format, and (for v+1 >= 7) version info zones. Computed once at
// init from the ISO/IEC 18004 §6.4 module budget; the capacity tables above
// are literal tables.
var rawDataModulesByVersion [40]int

func init() {
	for v := 1; v <= 40; v++ {
		size := Version(v).Size()
		result := size * size

		result -= 8 * 8 * 3       // Three finder patterns plus their separators.
		result -= 15*2 + 1        // Both format info strips plus the dark module.
		result -= (size - 16) * 2 // Two timing pattern strips, excluding the finder zones.

		if v >= 2 {
			numAlign := v/7 + 2
			result -= (numAlign*numAlign - 3) * 25
			if v >= 7 {
				result += (numAlign - 2) * 2 * 5
			}
		}

		if v >= 7 {
			result -= 6 * 3 * 2 // Two version info blocks.
		}

		rawDataModulesByVersion[v-1] = result
	}
}
