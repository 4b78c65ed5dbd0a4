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

// Package tcompiler lowers a layout.Ty tree into an inst.Program: a linear
// byte-automaton program with forward branches (Split) and joins
// (JoinGoto), per spec §4.C.
package tcompiler

import (
	"fmt"
	"math/big"

	"github.com/m1el/gotransmute/pkg/inst"
	"github.com/m1el/gotransmute/pkg/layout"
	log "github.com/sirupsen/logrus"
)

// Compiler holds the state threaded through one call to extend_from_ty:
// the running layout (used to compute padding) and the current privacy
// depth (incremented across private fields/variants, decremented on
// exit).
type Compiler struct {
	endian    Endian
	prog      *inst.Program
	layout    layout.Layout
	privDepth int
}

// CompileType compiles ty into a fresh Program named name, using endian
// for literal discriminant encoding. Panics on an unsupported type (Ptr,
// Ref) or a malformed tree (zero-variant enum/union) — these are
// programmer errors per spec §7, not analysis verdicts.
func CompileType(ty layout.Ty, endian Endian, name string) *inst.Program {
	c := &Compiler{
		endian: endian,
		prog:   inst.NewProgram(name),
		layout: layout.EmptyLayout,
	}

	c.extendFromTy(ty)
	c.prog.Push(inst.Accept{})

	want := ty.Layout()
	if c.layout.Size != want.Size || c.layout.Align != want.Align {
		panic(fmt.Sprintf("tcompiler: layout fidelity violated for %q: got %+v, want %+v",
			name, c.layout, want))
	}

	log.WithField("type", name).
		WithField("instructions", len(c.prog.Insts)).
		Debug("compiled type to byte-automaton program")

	return c.prog
}

// extendFromTy recurses over ty, appending instructions to c.prog and
// extending c.layout by ty's own layout as it goes. This is the Go
// rendering of the original compiler.rs Compiler::extend_from_ty.
func (c *Compiler) extendFromTy(ty layout.Ty) {
	switch t := ty.(type) {
	case layout.Void:
		// No instructions: zero-sized.
	case layout.Bool:
		c.padToAlign(1)
		c.repeatByteRange(1, 0, 1)
		c.layout = c.layout.Extend(t.Layout())
	case layout.Int:
		c.padToAlign(t.Layout().Align)
		c.repeatByteRange(t.Size, 0, 255)
		c.layout = c.layout.Extend(t.Layout())
	case layout.Ptr:
		panic("tcompiler: unsupported type: Ptr")
	case layout.Ref:
		panic("tcompiler: unsupported type: Ref")
	case Array:
		c.extendArray(t)
	case *layout.Struct:
		c.extendStruct(t)
	case *layout.Enum:
		c.extendEnum(t)
	case *layout.Union:
		c.extendUnion(t)
	default:
		panic(fmt.Sprintf("tcompiler: unknown Ty implementation %T", ty))
	}
}

// Array is a type alias so this file's switch can name layout.Array
// directly; layout.Array is a value type (not a pointer), so the literal
// case above binds it as such.
type Array = layout.Array

func (c *Compiler) extendArray(a Array) {
	for range a.Count {
		c.extendFromTy(a.Element)
	}

	c.layout.Align = max(c.layout.Align, a.Layout().Align)
}

func (c *Compiler) extendStruct(s *layout.Struct) {
	for _, field := range s.Fields {
		c.padToAlign(field.Ty.Layout().Align)

		if field.Private {
			c.privDepth++
		}

		c.extendFromTy(field.Ty)

		if field.Private {
			c.privDepth--
		}
	}

	c.padToAlign(s.Layout().Align)
}

// extendEnum emits the classical Thompson-style alternation described in
// spec §4.C: Split -> variant0 -> Goto, Split -> variant1 -> Goto, ...,
// variantN-1 -> end, with every Split's Alternate chained to the next
// Split (or, for the last one, to the final variant) and every Goto
// patched to the shared end address.
func (c *Compiler) extendEnum(e *layout.Enum) {
	if len(e.Variants) == 0 {
		panic("tcompiler: zero-variant enum isn't repr-c")
	}

	var (
		origLayout = c.layout
		gotoPatch  []inst.InstPtr
		prevSplit  = inst.InstPtrInvalid
	)

	for _, variant := range e.Variants[:len(e.Variants)-1] {
		splitIP := c.prog.NewInvalidSplit()

		if prevSplit != inst.InstPtrInvalid {
			c.prog.PatchSplit(prevSplit, splitIP)
		}

		prevSplit = splitIP

		c.extendEnumVariant(e, variant)

		gotoIP := c.prog.NewInvalidGoto()
		gotoPatch = append(gotoPatch, gotoIP)
		c.layout = origLayout
	}

	if prevSplit != inst.InstPtrInvalid {
		c.prog.PatchSplit(prevSplit, c.nextIP())
	}

	c.extendEnumVariant(e, e.Variants[len(e.Variants)-1])

	end := c.nextIP()
	for _, g := range gotoPatch {
		c.prog.PatchGoto(g, end)
	}
}

func (c *Compiler) extendEnumVariant(e *layout.Enum, variant layout.EnumVariant) {
	start := c.layout
	private := c.privDepth > 0
	tagLayout := e.TagLayout()

	c.emitLiteralBytes(tagLayout.Size, variant.Disc, private)
	c.layout = c.layout.Extend(tagLayout)

	c.padToAlign(e.PayloadLayout().Align)
	c.extendFromTy(variant.Payload)

	tail := e.PayloadLayout().Size - variant.Payload.Layout().Size
	c.pad(tail)

	end := start.Extend(e.Layout())
	c.pad(end.Size - c.layout.Size)
	c.layout = end
}

// extendUnion emits the same Split/Goto skeleton as extendEnum, but
// without any discriminant: each variant is padded to the union's
// alignment, emitted, and padded on the tail to the union's size.
func (c *Compiler) extendUnion(u *layout.Union) {
	if len(u.Variants) == 0 {
		panic("tcompiler: zero-variant union isn't repr-c")
	}

	var (
		origLayout = c.layout
		gotoPatch  []inst.InstPtr
		prevSplit  = inst.InstPtrInvalid
	)

	for _, variant := range u.Variants[:len(u.Variants)-1] {
		splitIP := c.prog.NewInvalidSplit()

		if prevSplit != inst.InstPtrInvalid {
			c.prog.PatchSplit(prevSplit, splitIP)
		}

		prevSplit = splitIP

		c.extendUnionVariant(u, variant)

		gotoIP := c.prog.NewInvalidGoto()
		gotoPatch = append(gotoPatch, gotoIP)
		c.layout = origLayout
	}

	if prevSplit != inst.InstPtrInvalid {
		c.prog.PatchSplit(prevSplit, c.nextIP())
	}

	c.extendUnionVariant(u, u.Variants[len(u.Variants)-1])

	end := c.nextIP()
	for _, g := range gotoPatch {
		c.prog.PatchGoto(g, end)
	}
}

func (c *Compiler) extendUnionVariant(u *layout.Union, variant layout.UnionVariant) {
	start := c.layout
	c.padToAlign(u.Layout().Align)

	if variant.Private {
		c.privDepth++
	}

	c.extendFromTy(variant.Ty)

	if variant.Private {
		c.privDepth--
	}

	tail := u.Layout().Size - variant.Ty.Layout().Size
	c.pad(tail)
	c.layout = start.Extend(u.Layout())
}

func (c *Compiler) nextIP() inst.InstPtr {
	return inst.InstPtr(len(c.prog.Insts))
}

func (c *Compiler) pad(n uint) {
	c.layout = c.layout.Extend(layout.Layout{Size: n, Align: 1})
	c.prog.Pad(n)
}

func (c *Compiler) padToAlign(align uint) {
	c.pad(c.layout.PadTo(align))
}

func (c *Compiler) repeatByteRange(size uint, lo, hi byte) {
	private := c.privDepth > 0

	for range size {
		c.prog.Push(&inst.ByteRange{Private: private, Lo: lo, Hi: hi, Alternate: inst.InstPtrInvalid})
	}
}

// emitLiteralBytes appends size Byte instructions carrying the
// endian-encoded digits of value, each flagged with the current privacy.
func (c *Compiler) emitLiteralBytes(size uint, value uint64, private bool) {
	e := inst.LittleEndian
	if c.endian == Big {
		e = inst.BigEndian
	}

	for _, b := range inst.EncodeLiteral(e, size, new(big.Int).SetUint64(value)) {
		c.prog.Push(inst.Byte{Private: private, Value: b})
	}
}
