// Copyright the transmute authors.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package layout

import (
	"errors"
	"testing"

	"github.com/m1el/gotransmute/pkg/util/assert"
)

func Test_Layout_Void_01(t *testing.T) {
	assert.Equal(t, Layout{Size: 0, Align: 1}, Void{}.Layout())
}

func Test_Layout_Bool_01(t *testing.T) {
	assert.Equal(t, Layout{Size: 1, Align: 1}, Bool{}.Layout())
}

func Test_Layout_Int_01(t *testing.T) {
	assert.Equal(t, Layout{Size: 16, Align: 8}, NewInt(16).Layout())
}

func Test_Layout_Struct_01(t *testing.T) {
	// struct{a: u8, b: u32} -> size 8, align 4 (1 byte, 3 pad, 4 bytes)
	s := NewStruct().AddField(false, NewInt(1)).AddField(false, NewInt(4))

	assert.Equal(t, Layout{Size: 8, Align: 4}, s.Layout())
}

func Test_Layout_Struct_02(t *testing.T) {
	// struct{a: u16, b: u32} -> size 8, align 4 (2 bytes, 2 pad, 4 bytes)
	s := NewStruct().AddField(false, NewInt(2)).AddField(false, NewInt(4))

	assert.Equal(t, Layout{Size: 8, Align: 4}, s.Layout())
}

func Test_Layout_Array_01(t *testing.T) {
	a := NewArray(NewInt(4), 3)

	assert.Equal(t, Layout{Size: 12, Align: 4}, a.Layout())
}

func Test_Layout_Array_Empty(t *testing.T) {
	a := NewArray(NewInt(4), 0)

	assert.Equal(t, Layout{Size: 0, Align: 4}, a.Layout())
}

func Test_Layout_Enum_01(t *testing.T) {
	// Enum<u8>{A(bool), B(u8)} -> tag(1) + payload(max(1,1)=1) = 2, align 1
	e := NewEnum(1).MustAddVariant(0, Bool{}).MustAddVariant(1, NewInt(1))

	assert.Equal(t, Layout{Size: 2, Align: 1}, e.Layout())
}

func Test_Layout_Enum_02(t *testing.T) {
	// Enum<u8>{A(bool), B(u32)} -> tag(1), pad to align 4, payload 4 -> size 8, align 4
	e := NewEnum(1).MustAddVariant(0, Bool{}).MustAddVariant(1, NewInt(4))

	assert.Equal(t, Layout{Size: 8, Align: 4}, e.Layout())
}

func Test_Layout_Union_01(t *testing.T) {
	u := NewUnion().AddVariant(false, NewInt(1)).AddVariant(false, NewInt(4))

	assert.Equal(t, Layout{Size: 4, Align: 4}, u.Layout())
}

func Test_AddVariant_RejectsOversizedDiscriminant(t *testing.T) {
	e := NewEnum(1)

	_, err := e.AddVariant(256, Bool{})
	assert.True(t, errors.Is(err, ErrInvalidDiscriminantSize))
	assert.Equal(t, 0, len(e.Variants))
}

func Test_AddVariant_AcceptsFittingDiscriminant(t *testing.T) {
	e := NewEnum(1)

	_, err := e.AddVariant(255, Bool{})
	assert.Equal(t, error(nil), err)
	assert.Equal(t, 1, len(e.Variants))
}

func Test_Validate_EmptyEnum(t *testing.T) {
	e := NewEnum(1)
	assert.Equal(t, ErrEmptyVariants, Validate(e))
}

func Test_Validate_EmptyUnion(t *testing.T) {
	u := NewUnion()
	assert.Equal(t, ErrEmptyVariants, Validate(u))
}

func Test_Validate_NonEmpty(t *testing.T) {
	s := NewStruct().AddField(false, NewInt(4))
	assert.True(t, Validate(s) == nil)
}
