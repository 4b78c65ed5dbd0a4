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
package accept

import (
	"testing"

	"github.com/m1el/gotransmute/pkg/util/assert"
)

func Test_Contains_Disjoint(t *testing.T) {
	assert.False(t, Contains(Range{0, 1}, Range{2, 3}))
}

func Test_Contains_Exact(t *testing.T) {
	assert.True(t, Contains(Range{0, 1}, Range{0, 1}))
}

func Test_Intersects_Disjoint(t *testing.T) {
	assert.False(t, Intersects(Range{0, 1}, Range{2, 3}))
}

func Test_Intersects_Overlap(t *testing.T) {
	assert.True(t, Intersects(Range{0, 1}, Range{1, 3}))
}

func Test_AcceptRange_Contains(t *testing.T) {
	a := AcceptRange(Range{0, 255}, Range{0, 1})
	assert.True(t, a.IsAlways())
}

func Test_AcceptRange_Overlap(t *testing.T) {
	a := AcceptRange(Range{0, 1}, Range{0, 255})
	assert.Equal(t, MaybeCheckRange, a.Kind)
}

func Test_AcceptRange_Disjoint(t *testing.T) {
	a := AcceptRange(Range{0, 1}, Range{2, 3})
	assert.Equal(t, NeverOutOfRange, a.Kind)
}

func Test_Accepts_UninitDst(t *testing.T) {
	d := StepByte{IsUninit: true}
	s := StepByte{Lo: 5, Hi: 5}
	assert.True(t, Accepts(d, s).IsAlways())
}

func Test_Accepts_UninitDst_PrivateSrc(t *testing.T) {
	d := StepByte{IsUninit: true}
	s := StepByte{Private: true, Lo: 5, Hi: 5}
	assert.True(t, Accepts(d, s).IsAlways())
}

func Test_Accepts_WritePrivate(t *testing.T) {
	d := StepByte{Private: true, Lo: 0, Hi: 0}
	s := StepByte{Lo: 0, Hi: 0}
	assert.Equal(t, NeverWritePrivate, Accepts(d, s).Kind)
}

func Test_Accepts_ReadUninit(t *testing.T) {
	d := StepByte{Lo: 0, Hi: 0}
	s := StepByte{IsUninit: true}
	assert.Equal(t, NeverReadUninit, Accepts(d, s).Kind)
}

func Test_Accepts_ReadPrivate(t *testing.T) {
	d := StepByte{Lo: 0, Hi: 0}
	s := StepByte{Private: true, Lo: 0, Hi: 0}
	assert.Equal(t, NeverReadPrivate, Accepts(d, s).Kind)
}

func Test_Accepts_ByteEqual(t *testing.T) {
	d := StepByte{Lo: 7, Hi: 7}
	s := StepByte{Lo: 7, Hi: 7}
	assert.True(t, Accepts(d, s).IsAlways())
}

func Test_Accepts_ByteMismatch(t *testing.T) {
	d := StepByte{Lo: 7, Hi: 7}
	s := StepByte{Lo: 8, Hi: 8}
	assert.Equal(t, NeverTagMismatch, Accepts(d, s).Kind)
}

func Test_Accepts_IntAcceptsBool(t *testing.T) {
	// dst = Int(1), src = Bool: bool's {0,1} subset of any-byte {0,255}.
	d := StepByte{Lo: 0, Hi: 255}
	s := StepByte{Lo: 0, Hi: 1}
	assert.True(t, Accepts(d, s).IsAlways())
}

func Test_Accepts_BoolFromInt_Overlap(t *testing.T) {
	// dst = Bool, src = Int(1): ranges overlap but dst doesn't contain src.
	d := StepByte{Lo: 0, Hi: 1}
	s := StepByte{Lo: 0, Hi: 255}
	got := Accepts(d, s)
	assert.Equal(t, MaybeCheckRange, got.Kind)
	assert.Equal(t, Range{0, 1}, got.Dst)
	assert.Equal(t, Range{0, 255}, got.Src)
}
