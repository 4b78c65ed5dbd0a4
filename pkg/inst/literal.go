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
package inst

import (
	"math/big"
	"slices"
)

// LiteralEndian selects little- or big-endian byte order when encoding a
// literal discriminant value. It mirrors tcompiler.Endian but is declared
// here too, to keep EncodeLiteral free of an import cycle on the compiler
// package (which itself imports inst for Program/Inst construction).
type LiteralEndian uint8

// The two supported orders.
const (
	LittleEndian LiteralEndian = iota
	BigEndian
)

// EncodeLiteral renders value as size raw bytes in the given byte order,
// the same operation as the original write_target_uint: it holds an
// "any-size uint" in a big.Int and writes out exactly size bytes of it,
// never the full width of the backing integer. gnark-crypto's field
// elements were considered for this and rejected (see DESIGN.md): a prime
// field element is reduced modulo its field's modulus and so is not a
// faithful raw byte pattern for an arbitrary integer.
func EncodeLiteral(endian LiteralEndian, size uint, value *big.Int) []byte {
	buf := make([]byte, size)
	value.FillBytes(buf) // big-endian, zero-padded on the left

	if endian == LittleEndian {
		slices.Reverse(buf)
	}

	return buf
}
