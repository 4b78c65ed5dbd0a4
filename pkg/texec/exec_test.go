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
package texec

import (
	"testing"

	"github.com/m1el/gotransmute/pkg/accept"
	"github.com/m1el/gotransmute/pkg/layout"
	"github.com/m1el/gotransmute/pkg/tcompiler"
	"github.com/m1el/gotransmute/pkg/util/assert"
)

func Test_Check_Reflexive_Int(t *testing.T) {
	dst := tcompiler.CompileType(layout.NewInt(4), tcompiler.Little, "dst")
	src := tcompiler.CompileType(layout.NewInt(4), tcompiler.Little, "src")

	rejects, err := Check(dst, src)
	assert.Equal(t, error(nil), err)
	assert.Equal(t, 0, len(rejects))
}

func Test_Check_Reflexive_Struct(t *testing.T) {
	s := layout.NewStruct().AddField(false, layout.NewInt(1)).AddField(false, layout.NewInt(4))
	dst := tcompiler.CompileType(s, tcompiler.Little, "dst")
	src := tcompiler.CompileType(s, tcompiler.Little, "src")

	rejects, err := Check(dst, src)
	assert.Equal(t, error(nil), err)
	assert.Equal(t, 0, len(rejects))
}

func Test_Check_BoolToInt_Accepts(t *testing.T) {
	dst := tcompiler.CompileType(layout.NewInt(1), tcompiler.Little, "dst")
	src := tcompiler.CompileType(layout.Bool{}, tcompiler.Little, "src")

	rejects, err := Check(dst, src)
	assert.Equal(t, error(nil), err)
	assert.Equal(t, 0, len(rejects))
}

func Test_Check_IntToBool_RejectsOutOfRange(t *testing.T) {
	dst := tcompiler.CompileType(layout.Bool{}, tcompiler.Little, "dst")
	src := tcompiler.CompileType(layout.NewInt(1), tcompiler.Little, "src")

	rejects, err := Check(dst, src)
	assert.Equal(t, error(nil), err)
	assert.True(t, len(rejects) > 0)

	found := false

	for _, r := range rejects {
		if r.Reason.Kind == accept.NeverOutOfRange {
			found = true
		}
	}

	assert.True(t, found)
}

func Test_Check_Enum_SubsetAccepts(t *testing.T) {
	d := layout.Fixtures["bool_or_i8"]
	s := layout.NewEnum(1).MustAddVariant(0, layout.Bool{})

	dst := tcompiler.CompileType(d, tcompiler.Little, "dst")
	src := tcompiler.CompileType(s, tcompiler.Little, "src")

	rejects, err := Check(dst, src)
	assert.Equal(t, error(nil), err)
	assert.Equal(t, 0, len(rejects))
}

func Test_Check_Enum_SupersetRejects(t *testing.T) {
	d := layout.NewEnum(1).MustAddVariant(0, layout.Bool{})
	s := layout.Fixtures["bool_or_i8"]

	dst := tcompiler.CompileType(d, tcompiler.Little, "dst")
	src := tcompiler.CompileType(s, tcompiler.Little, "src")

	rejects, err := Check(dst, src)
	assert.Equal(t, error(nil), err)
	assert.True(t, len(rejects) > 0)
}

func Test_Check_Struct_FieldReorderRejects(t *testing.T) {
	d := layout.NewStruct().AddField(false, layout.Bool{}).AddField(false, layout.NewInt(1))
	s := layout.NewStruct().AddField(false, layout.NewInt(1)).AddField(false, layout.Bool{})

	dst := tcompiler.CompileType(d, tcompiler.Little, "dst")
	src := tcompiler.CompileType(s, tcompiler.Little, "src")

	rejects, err := Check(dst, src)
	assert.Equal(t, error(nil), err)
	assert.True(t, len(rejects) > 0)
}

func Test_Check_InstructionLimitExceeded(t *testing.T) {
	dst := tcompiler.CompileType(layout.Bool{}, tcompiler.Little, "dst")
	src := tcompiler.CompileType(layout.NewInt(1), tcompiler.Little, "src")

	e := NewExecution(dst, src)
	e.MaxInstructions = 1

	_, err := e.Check()
	assert.Equal(t, ErrInstructionLimitExceeded, err)
}
