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
	"fmt"
	"strings"
)

// validDiscSizes are the only discriminant byte widths a tagged sum may
// use (spec §6: "discriminant sizes other than {1,2,4,8} are rejected").
var validDiscSizes = map[uint]bool{1: true, 2: true, 4: true, 8: true}

// ErrInvalidDiscriminantSize is returned by AddVariant when a literal
// discriminant does not fit within the enum's configured tag width (e.g.
// disc 256 on a 1-byte tag).
var ErrInvalidDiscriminantSize = fmt.Errorf("layout: invalid discriminant size")

// ErrEmptyVariants is returned by Validate for a zero-variant enum or
// union; such types are not representable in repr(C).
var ErrEmptyVariants = fmt.Errorf("layout: zero-variant enum or union")

// EnumVariant pairs a literal discriminant value with its payload type.
type EnumVariant struct {
	Disc    uint64
	Payload Ty
}

// Enum is a tagged sum: a fixed-width discriminant followed by a
// max-size/max-align union of the variant payloads, rounded up.
type Enum struct {
	tagLayout     Layout
	payloadLayout Layout
	Variants      []EnumVariant
}

// NewEnum constructs an empty enum with the given discriminant byte size,
// panicking if discSize is not one of {1,2,4,8}.
func NewEnum(discSize uint) *Enum {
	if !validDiscSizes[discSize] {
		panic(fmt.Sprintf("layout: invalid discriminant size %d", discSize))
	}

	tag := NewInt(discSize).Layout()

	return &Enum{tagLayout: tag, payloadLayout: EmptyLayout}
}

// AddVariant appends a variant with the given literal discriminant and
// payload type, updating the running max-size/max-align payload layout.
// It returns ErrInvalidDiscriminantSize, and leaves the enum unmodified,
// if disc does not fit within the tag width chosen at NewEnum time.
func (e *Enum) AddVariant(disc uint64, payload Ty) (*Enum, error) {
	if !e.fitsTag(disc) {
		return nil, fmt.Errorf("%w: %d does not fit in a %d-byte tag", ErrInvalidDiscriminantSize, disc, e.tagLayout.Size)
	}

	pl := payload.Layout()

	e.payloadLayout = Layout{
		Size:  max(e.payloadLayout.Size, pl.Size),
		Align: max(e.payloadLayout.Align, pl.Align),
	}
	e.payloadLayout = NewLayout(
		roundUp(e.payloadLayout.Size, e.payloadLayout.Align),
		e.payloadLayout.Align,
	)
	e.Variants = append(e.Variants, EnumVariant{Disc: disc, Payload: payload})

	return e, nil
}

// MustAddVariant is AddVariant's panicking sibling, for chained
// construction where the discriminant is a compile-time constant already
// known to fit the tag.
func (e *Enum) MustAddVariant(disc uint64, payload Ty) *Enum {
	result, err := e.AddVariant(disc, payload)
	if err != nil {
		panic(err)
	}

	return result
}

// fitsTag reports whether disc is representable in the enum's tag width.
func (e *Enum) fitsTag(disc uint64) bool {
	bits := e.tagLayout.Size * 8
	if bits >= 64 {
		return true
	}

	return disc < (uint64(1) << bits)
}

// TagLayout returns the layout of the discriminant prefix.
func (e *Enum) TagLayout() Layout { return e.tagLayout }

// PayloadLayout returns the max-size/max-align layout of the variant union.
func (e *Enum) PayloadLayout() Layout { return e.payloadLayout }

// Kind implementation for Ty interface.
func (*Enum) Kind() Kind { return KindEnum }

// Layout implementation for Ty interface.
func (e *Enum) Layout() Layout {
	l := e.tagLayout.Extend(e.payloadLayout)

	return NewLayout(l.Size+l.PadToAlign(), l.Align)
}

// String implementation for Ty interface.
func (e *Enum) String() string {
	var sb strings.Builder

	sb.WriteString("enum<")
	sb.WriteString(fmt.Sprintf("u%d", e.tagLayout.Size*8))
	sb.WriteString(">{")

	for i, v := range e.Variants {
		if i != 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%d:%s", v.Disc, v.Payload)
	}

	sb.WriteString("}")

	return sb.String()
}

// GoString supports "%#v" in logrus fields and test failure messages.
func (e *Enum) GoString() string { return e.String() }

func roundUp(size, align uint) uint {
	if align == 0 {
		return size
	}

	rem := size % align
	if rem == 0 {
		return size
	}

	return size + (align - rem)
}
