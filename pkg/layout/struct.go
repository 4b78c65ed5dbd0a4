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

import "strings"

// Field is one member of a Struct: a type plus a privacy flag. Private
// fields hide their bytes from any destination that is not itself private
// at that position (see pkg/accept).
type Field struct {
	Private bool
	Ty      Ty
}

// Struct is a C-layout aggregate: fields are laid out in declaration order,
// each aligned to its own requirement, with the whole padded to the
// maximum field alignment. Fields are never reordered.
type Struct struct {
	layout Layout
	Fields []Field
}

// NewStruct constructs an empty struct (size 0, align 1).
func NewStruct() *Struct {
	return &Struct{layout: EmptyLayout}
}

// AddField appends a field, updating the running layout by the C
// extend() rule. Order of calls is the field order used by the compiler.
func (s *Struct) AddField(private bool, ty Ty) *Struct {
	s.layout = s.layout.Extend(ty.Layout())
	s.Fields = append(s.Fields, Field{Private: private, Ty: ty})

	return s
}

// Kind implementation for Ty interface.
func (*Struct) Kind() Kind { return KindStruct }

// Layout implementation for Ty interface.
func (s *Struct) Layout() Layout {
	return NewLayout(s.layout.Size+s.layout.PadToAlign(), s.layout.Align)
}

// String implementation for Ty interface.
func (s *Struct) String() string {
	var sb strings.Builder

	sb.WriteString("struct{")

	for i, f := range s.Fields {
		if i != 0 {
			sb.WriteString(", ")
		}

		if f.Private {
			sb.WriteString("priv ")
		}

		sb.WriteString(f.Ty.String())
	}

	sb.WriteString("}")

	return sb.String()
}

// GoString supports "%#v" in logrus fields and test failure messages.
func (s *Struct) GoString() string { return s.String() }
