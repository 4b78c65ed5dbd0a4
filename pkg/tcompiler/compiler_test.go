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
package tcompiler

import (
	"math/big"
	"testing"

	"github.com/m1el/gotransmute/pkg/inst"
	"github.com/m1el/gotransmute/pkg/layout"
	"github.com/m1el/gotransmute/pkg/util/assert"
)

func bigFromUint(v uint64) *big.Int {
	return new(big.Int).SetUint64(v)
}

// walkToEnd runs the in-order (non-forked) path to completion, returning
// the final byte position, mirroring the "Layout fidelity" property of
// spec §8: pos at the end of the walk must equal layout_of(ty).Size.
func walkToEnd(p *inst.Program) uint {
	var last uint

	for {
		step, ok := p.Next()
		if !ok {
			return last
		}

		if !step.IsFork {
			last = step.Pos + 1
		}
	}
}

func Test_Compile_Int_PosMatchesSize(t *testing.T) {
	prog := CompileType(layout.NewInt(4), Little, "u32")
	assert.Equal(t, uint(4), walkToEnd(prog))
}

func Test_Compile_Struct_PosMatchesSize(t *testing.T) {
	s := layout.NewStruct().AddField(false, layout.NewInt(1)).AddField(false, layout.NewInt(4))
	prog := CompileType(s, Little, "s")
	assert.Equal(t, uint(8), walkToEnd(prog))
}

func Test_Compile_NoInvalidTargets(t *testing.T) {
	s := layout.NewStruct().AddField(false, layout.NewInt(1)).AddField(false, layout.NewInt(4))
	prog := CompileType(s, Little, "s")

	for _, i := range prog.Insts {
		switch v := i.(type) {
		case *inst.Split:
			assert.True(t, v.Alternate != inst.InstPtrInvalid)
		case *inst.JoinGoto:
			assert.True(t, v.Target != inst.InstPtrInvalid)
		}
	}
}

func Test_Compile_Enum_SplitGotoShape(t *testing.T) {
	e := layout.NewEnum(1).MustAddVariant(0, layout.Bool{}).MustAddVariant(1, layout.NewInt(1))
	prog := CompileType(e, Little, "e")

	assert.Equal(t, uint(2), walkToEnd(prog))

	for _, i := range prog.Insts {
		switch v := i.(type) {
		case *inst.Split:
			assert.True(t, int(v.Alternate) < len(prog.Insts))
		case *inst.JoinGoto:
			assert.True(t, int(v.Target) <= len(prog.Insts))
		}
	}
}

func Test_Compile_PanicsOnPtr(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic compiling Ptr type")
		}
	}()

	CompileType(layout.Ptr{PointerSize: 8, DataAlign: 8}, Little, "p")
}

func Test_Compile_PanicsOnEmptyEnum(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic compiling zero-variant enum")
		}
	}()

	CompileType(layout.NewEnum(1), Little, "e")
}

func Test_EncodeLiteral_LittleEndian(t *testing.T) {
	b := inst.EncodeLiteral(inst.LittleEndian, 4, bigFromUint(0x01020304))
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b)
}

func Test_EncodeLiteral_BigEndian(t *testing.T) {
	b := inst.EncodeLiteral(inst.BigEndian, 4, bigFromUint(0x01020304))
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b)
}
