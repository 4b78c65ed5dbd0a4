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

import "fmt"

// Ty is a C-ABI type tree: structures, arrays, tagged sums and untagged
// unions, built out of void/bool/sized-integer leaves. Implementations are
// one struct per variant (see Design Notes in SPEC_FULL.md); switch on
// Kind() for fast dispatch, or type-switch on the concrete type.
type Ty interface {
	// Kind identifies which variant this is, for fast switch dispatch.
	Kind() Kind
	// Layout computes this type's (size, align) pair.
	Layout() Layout
	// String renders a short debug form; not a pretty-printer.
	String() string
}

// Kind enumerates the Ty variants.
type Kind uint8

// The Ty variants.
const (
	KindVoid Kind = iota
	KindBool
	KindInt
	KindArray
	KindStruct
	KindEnum
	KindUnion
	KindPtr
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindUnion:
		return "union"
	case KindPtr:
		return "ptr"
	case KindRef:
		return "ref"
	default:
		return "unknown"
	}
}

// Void is the zero-sized, unit-aligned unit type.
type Void struct{}

// Kind implementation for Ty interface.
func (Void) Kind() Kind { return KindVoid }

// Layout implementation for Ty interface.
func (Void) Layout() Layout { return EmptyLayout }

// String implementation for Ty interface.
func (Void) String() string { return "void" }

// GoString supports "%#v" in logrus fields and test failure messages.
func (Void) GoString() string { return "void" }

// Bool is a one-byte type which accepts only 0x00 and 0x01.
type Bool struct{}

// Kind implementation for Ty interface.
func (Bool) Kind() Kind { return KindBool }

// Layout implementation for Ty interface.
func (Bool) Layout() Layout { return Layout{Size: 1, Align: 1} }

// String implementation for Ty interface.
func (Bool) String() string { return "bool" }

// GoString supports "%#v" in logrus fields and test failure messages.
func (Bool) GoString() string { return "bool" }

// validIntSizes are the only byte widths a C-ABI integer may have here.
var validIntSizes = map[uint]uint{1: 1, 2: 2, 4: 4, 8: 8, 16: 8}

// Int is an n-byte integer, n in {1,2,4,8,16}; it accepts all byte values.
type Int struct {
	Size uint
}

// NewInt constructs an Int of the given byte size, panicking if the size
// is not one of {1,2,4,8,16}.
func NewInt(size uint) Int {
	if _, ok := validIntSizes[size]; !ok {
		panic(fmt.Sprintf("layout: invalid integer size %d", size))
	}

	return Int{Size: size}
}

// Kind implementation for Ty interface.
func (Int) Kind() Kind { return KindInt }

// Layout implementation for Ty interface.
func (i Int) Layout() Layout {
	return Layout{Size: i.Size, Align: validIntSizes[i.Size]}
}

// String implementation for Ty interface.
func (i Int) String() string { return fmt.Sprintf("i%d", i.Size*8) }

// GoString supports "%#v" in logrus fields and test failure messages.
func (i Int) GoString() string { return i.String() }

// Array is count contiguous copies of Element.
type Array struct {
	Element Ty
	Count   uint
}

// NewArray constructs an array type.
func NewArray(element Ty, count uint) Array {
	return Array{Element: element, Count: count}
}

// Kind implementation for Ty interface.
func (Array) Kind() Kind { return KindArray }

// Layout implementation for Ty interface.
func (a Array) Layout() Layout {
	return a.Element.Layout().Repeat(a.Count)
}

// String implementation for Ty interface.
func (a Array) String() string {
	return fmt.Sprintf("[%s; %d]", a.Element, a.Count)
}

// GoString supports "%#v" in logrus fields and test failure messages.
func (a Array) GoString() string { return a.String() }

// Ptr is declared but unimplemented: the core has no byte-level semantics
// for pointers (see the Open Question decisions in DESIGN.md). Present only so type
// trees can name a pointer field; compiling one panics.
type Ptr struct {
	PointerSize uint
	DataAlign   uint
}

// Kind implementation for Ty interface.
func (Ptr) Kind() Kind { return KindPtr }

// Layout implementation for Ty interface.
func (p Ptr) Layout() Layout {
	return Layout{Size: p.PointerSize, Align: p.PointerSize}
}

// String implementation for Ty interface.
func (Ptr) String() string { return "ptr" }

// GoString supports "%#v" in logrus fields and test failure messages.
func (Ptr) GoString() string { return "ptr" }

// RefKind distinguishes shared from unique references.
type RefKind uint8

// The two reference kinds.
const (
	RefShared RefKind = iota
	RefUnique
)

// Ref is declared but unimplemented, same status as Ptr.
type Ref struct {
	RefKind     RefKind
	PointerSize uint
	DataAlign   uint
}

// Kind implementation for Ty interface.
func (Ref) Kind() Kind { return KindRef }

// Layout implementation for Ty interface.
func (r Ref) Layout() Layout {
	return Layout{Size: r.PointerSize, Align: r.PointerSize}
}

// String implementation for Ty interface.
func (Ref) String() string { return "ref" }

// GoString supports "%#v" in logrus fields and test failure messages.
func (Ref) GoString() string { return "ref" }
