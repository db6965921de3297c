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

// Command qrencode reads up to 7089 bytes from stdin and writes a 1bpp BMP
// QR code symbol to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/qrforge/qrcodegen"
)

// maxDataLength is the largest payload any QR version/ECC combination can
// hold (version 40, ECC Low, numeric mode).
const maxDataLength = 7089

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "qrencode:", err)
		os.Exit(1)
	}
}

func run() error {
	level := flag.String("e", "L", "error correction level: L, M, Q, or H")
	border := flag.Int("border", 4, "quiet zone width, in modules")
	flag.Parse()

	ecc, err := qrcodegen.ParseECC(*level)
	if err != nil {
		return err
	}

	data := make([]byte, maxDataLength+1)
	n, err := io.ReadFull(os.Stdin, data)
	if err != nil && err != io.ErrUnexpectedEOF {
		return fmt.Errorf("reading stdin: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no input data")
	}
	if n > maxDataLength {
		return fmt.Errorf("input exceeds the %d byte maximum", maxDataLength)
	}
	data = data[:n]

	q, err := qrcodegen.EncodeQR(data, ecc)
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	if err := qrcodegen.WriteBMP(os.Stdout, q, *border); err != nil {
		return fmt.Errorf("writing BMP: %w", err)
	}

	return nil
}
