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

// Package inst defines the byte-level instruction set compiled types are
// lowered to, and the flat, append-only Program arena that holds them.
package inst

import "fmt"

// InstPtr indexes an instruction within a Program. InstPtrInvalid marks an
// unpatched placeholder target.
type InstPtr = uint32

// InstPtrInvalid is the placeholder target written by new_invalid_split /
// new_invalid_goto until patch_split / patch_goto overwrite it.
const InstPtrInvalid InstPtr = 0xFFFFFFFF

// InstKind enumerates the Inst variants, for fast switch dispatch.
type InstKind uint8

// The Inst variants.
const (
	KindUninit InstKind = iota
	KindByte
	KindByteRange
	KindSplit
	KindJoinGoto
	KindAccept
)

// Inst is one instruction of a compiled byte-automaton program. One struct
// per variant implements this interface (see Design Notes in
// SPEC_FULL.md): do not model this with inheritance.
type Inst interface {
	// Kind identifies which variant this is.
	Kind() InstKind
}

// Uninit is one padding byte: it matches nothing but Uninit on the
// destination side.
type Uninit struct{}

// Kind implementation for Inst interface.
func (Uninit) Kind() InstKind { return KindUninit }

// Byte is exactly one constant byte, used for literal discriminants.
type Byte struct {
	Private bool
	Value   byte
}

// Kind implementation for Inst interface.
func (Byte) Kind() InstKind { return KindByte }

// ByteRange is one byte drawn from an inclusive sub-range of 0..=255. The
// optional Alternate is a non-deterministic branch produced by synthetic
// forking (InstPtrInvalid when absent).
type ByteRange struct {
	Private   bool
	Lo, Hi    byte
	Alternate InstPtr
}

// HasAlternate reports whether this range carries a synthetic-fork branch.
func (r ByteRange) HasAlternate() bool { return r.Alternate != InstPtrInvalid }

// Kind implementation for Inst interface.
func (ByteRange) Kind() InstKind { return KindByteRange }

// Split branches to either the next instruction (fall-through) or
// Alternate, used to encode enum/union variant alternation.
type Split struct {
	Alternate InstPtr
}

// Kind implementation for Inst interface.
func (Split) Kind() InstKind { return KindSplit }

// JoinGoto is an unconditional jump to a join point.
type JoinGoto struct {
	Target InstPtr
}

// Kind implementation for Inst interface.
func (JoinGoto) Kind() InstKind { return KindJoinGoto }

// Accept is the terminal instruction.
type Accept struct{}

// Kind implementation for Inst interface.
func (Accept) Kind() InstKind { return KindAccept }

// mustSplit type-asserts inst as a *Split, panicking with a descriptive
// message otherwise. Used by patch_split.
func mustSplit(inst Inst) *Split {
	s, ok := inst.(*Split)
	if !ok {
		panic(fmt.Sprintf("inst: patch_split on non-Split instruction (%T)", inst))
	}

	return s
}

// mustJoinGoto type-asserts inst as a *JoinGoto, panicking otherwise. Used
// by patch_goto.
func mustJoinGoto(inst Inst) *JoinGoto {
	g, ok := inst.(*JoinGoto)
	if !ok {
		panic(fmt.Sprintf("inst: patch_goto on non-JoinGoto instruction (%T)", inst))
	}

	return g
}

// mustByteRange type-asserts inst as a *ByteRange, panicking otherwise.
func mustByteRange(inst Inst) *ByteRange {
	r, ok := inst.(*ByteRange)
	if !ok {
		panic(fmt.Sprintf("inst: expected ByteRange instruction (%T)", inst))
	}

	return r
}
