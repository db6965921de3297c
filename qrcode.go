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

// QRCode is a fully encoded and placed QR code symbol: the module matrix,
// plus the parameters that produced it.
type QRCode struct {
	Version Version
	ECC     ECC
	Mask    Mask
	Matrix  *Matrix
}

// Size returns the symbol's side length, in modules.
func (q *QRCode) Size() int {
	return q.Matrix.Size()
}

// encodeOptions holds the resolved settings for EncodeSegments; built up by
// the With* functional options.
type encodeOptions struct {
	minVersion Version
	maxVersion Version
	boostECL   bool
	autoMask   bool
	mask       Mask
}

// Option configures EncodeSegments.
type Option func(*encodeOptions)

// WithMinVersion sets the smallest version EncodeSegments will consider.
func WithMinVersion(v Version) Option {
	return func(o *encodeOptions) { o.minVersion = v }
}

// WithMaxVersion sets the largest version EncodeSegments will consider.
func WithMaxVersion(v Version) Option {
	return func(o *encodeOptions) { o.maxVersion = v }
}

// WithBoostECL raises the error correction level as high as the chosen
// version's spare capacity allows, without needing a larger version.
func WithBoostECL() Option {
	return func(o *encodeOptions) { o.boostECL = true }
}

// WithMask fixes the mask pattern rather than selecting one automatically.
// Passing a value outside [Mask0, Mask7] is equivalent to not calling
// WithMask at all (auto-select).
func WithMask(mask Mask) Option {
	return func(o *encodeOptions) {
		if mask < Mask0 || mask > Mask7 {
			return
		}
		o.autoMask = false
		o.mask = mask
	}
}

func defaultEncodeOptions() encodeOptions {
	return encodeOptions{
		minVersion: MinVersion,
		maxVersion: MaxVersion,
		autoMask:   true,
	}
}

// EncodeQR encodes payload at the given error correction level into a QR
// code, picking the narrowest applicable mode (via PickMode) and the
// smallest sufficient version automatically. This is the primary entry
// point; EncodeSegments is available when the caller needs explicit control
// over segmentation, version bounds, ECL boosting, or a fixed mask.
func EncodeQR(payload []byte, ecc ECC, opts ...Option) (q *QRCode, err error) {
	if len(payload) == 0 {
		return nil, ErrEmptyInput
	}

	segs, err := MakeSegments(payload)
	if err != nil {
		return nil, err
	}

	return EncodeSegments(segs, ecc, opts...)
}

// EncodeText encodes a UTF-8 string, otherwise identical to EncodeQR. Text
// outside the numeric/alphanumeric alphabets is encoded in Byte mode, or in
// Kanji mode when its bytes happen to form valid Shift-JIS kanji pairs
// (PickMode looks only at the bytes), so any valid UTF-8 string is accepted.
func EncodeText(text string, ecc ECC, opts ...Option) (*QRCode, error) {
	return EncodeQR([]byte(text), ecc, opts...)
}

// EncodeSegments encodes one or more pre-built segments into a QR code.
// Segments of different modes may be concatenated in a single symbol (for
// example an ECI designator followed by a Byte segment).
func EncodeSegments(segs []*QRSegment, ecc ECC, opts ...Option) (q *QRCode, err error) {
	defer recoverInternal(&err)

	o := defaultEncodeOptions()
	for _, apply := range opts {
		apply(&o)
	}

	if o.minVersion < MinVersion || o.maxVersion > MaxVersion || o.minVersion > o.maxVersion {
		panic(newInternalError("invalid version range [%d, %d]", o.minVersion, o.maxVersion))
	}

	version, effectiveECC, err := fitVersion(segs, ecc, o)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, DataCodewordsLen(version, effectiveECC))
	w := newBitWriter(payload)
	for _, seg := range segs {
		seg.writeTo(w, version)
	}

	capacityBits := DataCodewordsLen(version, effectiveECC) * 8
	if w.bitLen() > capacityBits {
		panic(newInternalError("segment bitstream overflowed the chosen version's capacity"))
	}
	terminateAndPad(w, capacityBits)

	codewords := addECCAndInterleave(payload, version, effectiveECC)

	base := drawFunctionPatterns(version)
	free := deriveFreeMask(base)
	placeDataCodewords(base, free, codewords)
	drawVersionInfo(base, version)

	var mask Mask
	var final *Matrix
	if o.autoMask {
		mask, final = SelectBestMask(base, free, effectiveECC)
	} else {
		mask = o.mask
		final = ApplyMask(base, free, effectiveECC, mask)
	}

	return &QRCode{Version: version, ECC: effectiveECC, Mask: mask, Matrix: final}, nil
}

// fitVersion finds the smallest version in [o.minVersion, o.maxVersion] that
// can hold segs at ecc, optionally boosting ecc afterward per
// WithBoostECL.
func fitVersion(segs []*QRSegment, ecc ECC, o encodeOptions) (Version, ECC, error) {
	var version Version
	found := false

	for v := o.minVersion; v <= o.maxVersion; v++ {
		bits := totalBits(segs, v)
		if bits < 0 {
			continue
		}

		if bits <= DataCodewordsLen(v, ecc)*8 {
			version = v
			found = true
			break
		}
	}

	if !found {
		return 0, 0, ErrTooLong
	}

	effectiveECC := ecc
	if o.boostECL {
		bits := totalBits(segs, version)
		for candidate := ecc + 1; candidate <= ECCHigh; candidate++ {
			if bits <= DataCodewordsLen(version, candidate)*8 {
				effectiveECC = candidate
			}
		}
	}

	return version, effectiveECC, nil
}
