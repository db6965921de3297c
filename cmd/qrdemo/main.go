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

// Command qrdemo encodes its command-line argument (or a sample string, if
// none is given) as a QR code, writes it as an SVG file to a temp
// directory, and opens it in the system's default browser.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/browser"

	"github.com/qrforge/qrcodegen"
)

func main() {
	level := flag.String("e", "M", "error correction level: L, M, Q, or H")
	border := flag.Int("border", 4, "quiet zone width, in modules")
	flag.Parse()

	text := "https://github.com/qrforge/qrcodegen"
	if flag.NArg() > 0 {
		text = flag.Arg(0)
	}

	if err := run(text, *level, *border); err != nil {
		fmt.Fprintln(os.Stderr, "qrdemo:", err)
		os.Exit(1)
	}
}

func run(text, level string, border int) error {
	ecc, err := qrcodegen.ParseECC(level)
	if err != nil {
		return err
	}

	q, err := qrcodegen.EncodeText(text, ecc, qrcodegen.WithBoostECL())
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	dir, err := os.MkdirTemp("", "qrdemo")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}

	path := filepath.Join(dir, "qrcode.svg")
	if err := os.WriteFile(path, []byte(q.ToSVGString(border)), 0o644); err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}

	return browser.OpenFile(path)
}
