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

// UnionVariant pairs a privacy flag with a variant type. No discriminant
// is stored or emitted for unions.
type UnionVariant struct {
	Private bool
	Ty      Ty
}

// Union is an untagged sum: all variants overlay the same bytes, with
// overall layout the max-size/max-align of the variant types.
type Union struct {
	layout   Layout
	Variants []UnionVariant
}

// NewUnion constructs an empty union (size 0, align 1).
func NewUnion() *Union {
	return &Union{layout: EmptyLayout}
}

// AddVariant appends a variant, updating the running max-size/max-align
// layout.
func (u *Union) AddVariant(private bool, ty Ty) *Union {
	vl := ty.Layout()

	u.layout = Layout{
		Size:  max(u.layout.Size, vl.Size),
		Align: max(u.layout.Align, vl.Align),
	}
	u.layout = NewLayout(roundUp(u.layout.Size, u.layout.Align), u.layout.Align)
	u.Variants = append(u.Variants, UnionVariant{Private: private, Ty: ty})

	return u
}

// Kind implementation for Ty interface.
func (*Union) Kind() Kind { return KindUnion }

// Layout implementation for Ty interface.
func (u *Union) Layout() Layout {
	return u.layout
}

// String implementation for Ty interface.
func (u *Union) String() string {
	var sb strings.Builder

	sb.WriteString("union{")

	for i, v := range u.Variants {
		if i != 0 {
			sb.WriteString(", ")
		}

		if v.Private {
			sb.WriteString("priv ")
		}

		sb.WriteString(v.Ty.String())
	}

	sb.WriteString("}")

	return sb.String()
}

// GoString supports "%#v" in logrus fields and test failure messages.
func (u *Union) GoString() string { return u.String() }
