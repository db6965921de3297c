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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverInternalConvertsInternalError(t *testing.T) {
	err := func() (err error) {
		defer recoverInternal(&err)
		panic(newInternalError("boom %d", 42))
	}()

	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "boom 42")
}

func TestRecoverInternalRepanicsOtherValues(t *testing.T) {
	assert.Panics(t, func() {
		defer func() {
			var err error
			recoverInternal(&err)
		}()
		panic(errors.New("not an internal error"))
	})
}
