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
	"fmt"
	"strings"
)

// String renders the symbol as a block of text, two characters per module
// ("##" dark, "  " light), bordered by a quiet zone of border modules on
// every side. Intended for quick terminal inspection, not production
// rendering.
func (q *QRCode) String(border int) string {
	if border < 0 {
		panic(newInternalError("border must be non-negative, got %d", border))
	}

	size := q.Size()
	var b strings.Builder

	for row := -border; row < size+border; row++ {
		for col := -border; col < size+border; col++ {
			dark := row >= 0 && row < size && col >= 0 && col < size && q.Matrix.IsDark(row, col)
			if dark {
				b.WriteString("##")
			} else {
				b.WriteString("  ")
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// ToSVGString renders the symbol as a standalone SVG document, with a quiet
// zone of border modules on every side.
func (q *QRCode) ToSVGString(border int) string {
	if border < 0 {
		panic(newInternalError("border must be non-negative, got %d", border))
	}

	size := q.Size()
	dim := size + border*2

	var b strings.Builder
	fmt.Fprintf(&b, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %d %d\" stroke=\"none\">\n", dim, dim)
	fmt.Fprintf(&b, "\t<rect width=\"100%%\" height=\"100%%\" fill=\"#FFFFFF\"/>\n")
	fmt.Fprintf(&b, "\t<path d=\"")

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if q.Matrix.IsDark(row, col) {
				if col > 0 || row > 0 {
					fmt.Fprintf(&b, " ")
				}
				fmt.Fprintf(&b, "M%d,%dh1v1h-1z", col+border, row+border)
			}
		}
	}

	fmt.Fprintf(&b, "\" fill=\"#000000\"/>\n")
	fmt.Fprintf(&b, "</svg>\n")

	return b.String()
}
