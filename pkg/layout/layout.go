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

// Package layout provides the C-ABI type tree (Ty) and the size/alignment
// arithmetic (Layout) used to compile types into byte-level programs.
package layout

import "fmt"

// Layout describes the size and alignment of a type, following the C
// layout rule. Align is always a power of two, and the layout of a complete
// type has a Size that is a multiple of Align; the running layout returned
// by Extend is not padded at its end, so its Size need not be.
type Layout struct {
	Size  uint
	Align uint
}

// NewLayout constructs a layout, panicking if the invariant (size is a
// multiple of align, align is a power of two) does not hold.
func NewLayout(size, align uint) Layout {
	if !isPowerOfTwo(align) {
		panic(fmt.Sprintf("layout: alignment %d is not a power of two", align))
	} else if align != 0 && size%align != 0 {
		panic(fmt.Sprintf("layout: size %d is not a multiple of alignment %d", size, align))
	}
	//
	return Layout{Size: size, Align: align}
}

// EmptyLayout is the layout of a zero-sized, unit-aligned type (e.g. Void).
var EmptyLayout = Layout{Size: 0, Align: 1}

// Extend appends other after this layout, following the C struct-layout
// rule: pad this layout's size up to other's alignment, then add other's
// size. The resulting alignment is the maximum of the two. The result is
// not padded up to its own alignment (see PadToAlign).
func (l Layout) Extend(other Layout) Layout {
	var (
		padded = l.Size + l.PadTo(other.Align)
		align  = max(l.Align, other.Align)
	)
	//
	return Layout{Size: padded + other.Size, Align: align}
}

// PadTo returns the number of padding bytes required to bring l.Size up to
// a multiple of align.
func (l Layout) PadTo(align uint) uint {
	if align == 0 {
		return 0
	}

	rem := l.Size % align
	if rem == 0 {
		return 0
	}

	return align - rem
}

// PadToAlign returns the number of padding bytes required to round l.Size
// up to a multiple of its own alignment.
func (l Layout) PadToAlign() uint {
	return l.PadTo(l.Align)
}

// Repeat computes the layout of count contiguous copies of l, following
// array layout rules (no padding between elements beyond the element's own
// alignment).
func (l Layout) Repeat(count uint) Layout {
	if count == 0 {
		return Layout{Size: 0, Align: l.Align}
	}

	elemStride := l.Size + l.PadToAlign()

	return NewLayout(elemStride*(count-1)+l.Size, l.Align)
}

func isPowerOfTwo(n uint) bool {
	return n != 0 && n&(n-1) == 0
}
