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
package cmd

import (
	"testing"

	"github.com/m1el/gotransmute/pkg/layout"
	"github.com/m1el/gotransmute/pkg/util/assert"
)

func Test_ParseTypeExpr_Leaf(t *testing.T) {
	ty, err := ParseTypeExpr("i32")
	assert.Equal(t, error(nil), err)
	assert.Equal(t, layout.NewInt(4), ty)
}

func Test_ParseTypeExpr_Bool(t *testing.T) {
	ty, err := ParseTypeExpr("bool")
	assert.Equal(t, error(nil), err)
	assert.Equal(t, layout.Bool{}, ty)
}

func Test_ParseTypeExpr_Struct(t *testing.T) {
	ty, err := ParseTypeExpr("(struct pub:i8 priv:i32)")
	assert.Equal(t, error(nil), err)

	s, ok := ty.(*layout.Struct)
	assert.True(t, ok)
	assert.Equal(t, 2, len(s.Fields))
	assert.Equal(t, true, s.Fields[1].Private)
}

func Test_ParseTypeExpr_Enum(t *testing.T) {
	ty, err := ParseTypeExpr("(enum 0:bool 1:i8)")
	assert.Equal(t, error(nil), err)

	e, ok := ty.(*layout.Enum)
	assert.True(t, ok)
	assert.Equal(t, 2, len(e.Variants))
	assert.Equal(t, uint64(1), e.Variants[1].Disc)
}

func Test_ParseTypeExpr_NestedStruct(t *testing.T) {
	ty, err := ParseTypeExpr("(struct pub:(struct pub:i8))")
	assert.Equal(t, error(nil), err)

	outer, ok := ty.(*layout.Struct)
	assert.True(t, ok)
	assert.Equal(t, 1, len(outer.Fields))

	_, ok = outer.Fields[0].Ty.(*layout.Struct)
	assert.True(t, ok)
}

func Test_ParseTypeExpr_Array(t *testing.T) {
	ty, err := ParseTypeExpr("(array i8 4)")
	assert.Equal(t, error(nil), err)
	assert.Equal(t, layout.NewArray(layout.NewInt(1), 4), ty)
}

func Test_ParseTypeExpr_RejectsGarbage(t *testing.T) {
	_, err := ParseTypeExpr("(struct garbage)")
	assert.True(t, err != nil)
}
