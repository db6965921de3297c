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

// Package qrcodegen encodes byte strings into QR Code symbols conforming to
// ISO/IEC 18004. It picks the narrowest encoding mode and smallest symbol
// version that fit the payload at a requested error correction level, packs
// the payload into a bitstream, protects it with Reed-Solomon codes over
// GF(256), and places the result into a masked module matrix.
//
// Modeled after https://github.com/nayuki/QR-Code-generator and
// y193/qr-code-generator. See https://www.thonky.com/qr-code-tutorial/introduction
// and ISO/IEC 18004 for an explanation of how QR codes are formatted.
package qrcodegen
