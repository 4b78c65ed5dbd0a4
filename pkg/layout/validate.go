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

// Validate checks the "not repr(C)-representable" programmer errors spec
// §7 calls out for enums and unions (zero variants), returning an error
// instead of panicking. Callers building types from user-controlled data
// (rather than from trusted internal construction) should call this
// before compiling; internal/test code may skip it and rely on the
// compiler's panic instead.
func Validate(ty Ty) error {
	switch t := ty.(type) {
	case *Enum:
		if len(t.Variants) == 0 {
			return ErrEmptyVariants
		}
	case *Union:
		if len(t.Variants) == 0 {
			return ErrEmptyVariants
		}
	case *Struct:
		for _, f := range t.Fields {
			if err := Validate(f.Ty); err != nil {
				return err
			}
		}
	case Array:
		return Validate(t.Element)
	}

	return nil
}
