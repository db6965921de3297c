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

import "fmt"

// ECC represents the error correction level of a QR code. The dense index
// order (0..3) matches the table column order used throughout this package.
type ECC int8

// ECC levels, ordered from least to most redundant.
const (
	ECCLow      ECC = iota // Recovers ~7% of data.
	ECCMedium              // Recovers ~15% of data.
	ECCQuartile            // Recovers ~25% of data.
	ECCHigh                // Recovers ~30% of data.
)

func (e ECC) String() string {
	switch e {
	case ECCLow:
		return "L"
	case ECCMedium:
		return "M"
	case ECCQuartile:
		return "Q"
	case ECCHigh:
		return "H"
	default:
		return "?"
	}
}

// ParseECC maps a single-letter error correction level (L, M, Q, or H) to an
// ECC value.
func ParseECC(s string) (ECC, error) {
	switch s {
	case "L":
		return ECCLow, nil
	case "M":
		return ECCMedium, nil
	case "Q":
		return ECCQuartile, nil
	case "H":
		return ECCHigh, nil
	default:
		return 0, fmt.Errorf("qrcodegen: unknown error correction level %q", s)
	}
}
