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
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteBMPHeader(t *testing.T) {
	q, err := EncodeText("HELLO", ECCLow)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, WriteBMP(&buf, q, 4))

	d := buf.Bytes()
	n := q.Size() + 8

	assert.Equal(t, []byte("BM"), d[0:2])
	assert.Equal(t, uint32(len(d)), binary.LittleEndian.Uint32(d[2:6]))
	assert.Equal(t, uint32(62), binary.LittleEndian.Uint32(d[10:14]))
	assert.Equal(t, uint32(40), binary.LittleEndian.Uint32(d[14:18]))
	assert.Equal(t, int32(n), int32(binary.LittleEndian.Uint32(d[18:22])))
	assert.Equal(t, int32(n), int32(binary.LittleEndian.Uint32(d[22:26])))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(d[28:30])) // biBitCount.

	// Color table: index 0 white, index 1 black.
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0x00}, d[54:58])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, d[58:62])
}

func TestWriteBMPLengthMatchesStride(t *testing.T) {
	q, err := EncodeText("HELLO WORLD, THIS IS A LONGER MESSAGE", ECCLow)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, WriteBMP(&buf, q, 4))

	n := q.Size() + 8
	stride := ((n + 31) &^ 31) >> 3
	assert.Equal(t, 62+n*stride, buf.Len())
}

func TestWriteBMPRejectsNegativeBorder(t *testing.T) {
	q, err := EncodeText("X", ECCLow)
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, WriteBMP(&buf, q, -1))
}
