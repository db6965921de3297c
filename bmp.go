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

import "io"

// WriteBMP writes q as an uncompressed 1-bit-per-pixel Windows BMP (white
// background, black modules), with a border-module quiet zone on every
// side. This is a from-scratch writer rather than image/png or a similar
// encoding package: ISO/IEC 18004 symbols are naturally 1bpp raster data,
// and a 1bpp BMP is simpler to emit directly than to route through a
// general-purpose image codec.
func WriteBMP(w io.Writer, q *QRCode, border int) error {
	if border < 0 {
		return newInternalError("border must be non-negative, got %d", border)
	}

	n := q.Size() + border*2
	stride := ((n + 31) &^ 31) >> 3 // Row byte width, padded to a 4-byte (32-bit) boundary.
	pixelBytes := n * stride
	fileLen := 62 + pixelBytes

	d := make([]byte, fileLen)

	// BITMAPFILEHEADER.
	putWord(d[0:], 0x4D42) // "BM".
	putDWord(d[2:], uint32(fileLen))
	putDWord(d[10:], 62) // bfOffBits.

	// BITMAPINFOHEADER.
	putDWord(d[14:], 40) // biSize.
	putLong(d[18:], int32(n))
	putLong(d[22:], int32(n))
	putWord(d[26:], 1) // biPlanes.
	putWord(d[28:], 1) // biBitCount: 1bpp.

	// Color table: index 0 white, index 1 black.
	d[54], d[55], d[56], d[57] = 0xFF, 0xFF, 0xFF, 0
	d[58], d[59], d[60], d[61] = 0, 0, 0, 0

	k := 62
	for row := n - 1; row >= 0; row-- { // BMP rows are stored bottom-up.
		var b byte
		bit := 0

		for col := 0; col < n; col++ {
			b <<= 1
			if q.moduleDark(row-border, col-border) {
				b |= 1
			}
			bit++

			if bit == 8 {
				d[k] = b
				k++
				b, bit = 0, 0
			}
		}

		if bit > 0 {
			d[k] = b << uint(8-bit)
			k++
		}

		for pad := (n + 7) / 8; pad < stride; pad++ {
			k++ // Row padding bytes are already zero.
		}
	}

	_, err := w.Write(d)
	return err
}

// moduleDark reports whether (row, col) is a dark module, treating anything
// outside the symbol proper (the quiet zone) as light.
func (q *QRCode) moduleDark(row, col int) bool {
	if row < 0 || row >= q.Size() || col < 0 || col >= q.Size() {
		return false
	}

	return q.Matrix.IsDark(row, col)
}

func putWord(d []byte, v uint16) {
	d[0] = byte(v)
	d[1] = byte(v >> 8)
}

func putDWord(d []byte, v uint32) {
	d[0] = byte(v)
	d[1] = byte(v >> 8)
	d[2] = byte(v >> 16)
	d[3] = byte(v >> 24)
}

func putLong(d []byte, v int32) {
	putDWord(d, uint32(v))
}
