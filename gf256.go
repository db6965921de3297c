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

// GF(2^8) arithmetic used by the Reed-Solomon error correction coder. The
// field's primitive polynomial is x^8 + x^4 + x^3 + x^2 + 1 (0x11D) with
// generator alpha = 2.

const gf256Primitive = 0x11D

// gf256Exp[i] = alpha^i for i in [0, 510]; doubled in length so that
// multiplication never needs a modulo on the exponent sum.
var gf256Exp [512]byte

// gf256Log[gf256Exp[i]] = i for i in [0, 254]. gf256Log[0] is unused (zero
// has no logarithm).
var gf256Log [256]byte

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		gf256Exp[i] = byte(x)
		gf256Log[x] = byte(i)

		x <<= 1
		if x&0x100 != 0 {
			x ^= gf256Primitive
		}
	}

	for i := 255; i < 512; i++ {
		gf256Exp[i] = gf256Exp[i-255]
	}
}

// gf256Multiply returns a*b in GF(256).
func gf256Multiply(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}

	return gf256Exp[int(gf256Log[a])+int(gf256Log[b])]
}

// generatorPolynomialCoefficients computes the raw GF(256) field-element
// coefficients of the degree-n Reed-Solomon generator polynomial, the
// product (x - alpha^0)(x - alpha^1)...(x - alpha^(n-1)), as an n-element
// array holding the coefficients of x^(n-1)..x^0 (descending degree); the
// implicit leading x^n term has coefficient 1 and is not stored.
func generatorPolynomialCoefficients(n int) []byte {
	result := make([]byte, n)
	result[n-1] = 1 // Start with the monomial x^0.

	root := byte(1)
	for i := 0; i < n; i++ {
		// Multiply the running product by (x - root).
		for j := 0; j < len(result); j++ {
			result[j] = gf256Multiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}

		root = gf256Multiply(root, 0x02)
	}

	return result
}

// GeneratorPolynomial returns the degree-n Reed-Solomon generator
// polynomial's coefficients in ascending-degree order (x^0 first, x^(n-1)
// last), each expressed as a discrete logarithm (the exponent e such that
// alpha^e equals the field element), not the raw field value.
func GeneratorPolynomial(n int) []byte {
	if n < 1 || n > 255 {
		panic("qrcodegen: generator polynomial degree out of range")
	}

	raw := generatorPolynomialCoefficients(n)

	result := make([]byte, n)
	for i := 0; i < n; i++ {
		result[i] = gf256Log[raw[n-1-i]]
	}

	return result
}

// DividePolynomial returns the remainder of dividing the zero-extended
// dividend by the generator polynomial, i.e. the Reed-Solomon error
// correction codewords for message. The returned remainder has
// len(generator) coefficients, highest degree first.
//
// This realizes the classic "n-slot working register" long-division
// procedure: for each dividend term, the leading register term is popped and
// the register shifted; if the popped term is nonzero, g[i]*alpha^log(t) is
// folded into the register, otherwise only the shift happens.
func DividePolynomial(message, generator []byte) []byte {
	result := make([]byte, len(generator))

	for _, b := range message {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0

		if factor != 0 {
			for i := 0; i < len(result); i++ {
				result[i] ^= gf256Multiply(generator[i], factor)
			}
		}
	}

	return result
}
