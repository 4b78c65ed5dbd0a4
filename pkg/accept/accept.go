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

// Package accept implements the byte-acceptance algebra (spec §4.E): a
// small lattice over {Uninit, fixed byte, byte range} x {public, private}
// that decides, per pair of bytes, whether a source byte may flow into a
// destination byte.
package accept

import (
	"fmt"

	"github.com/m1el/gotransmute/pkg/inst"
)

// StepByte is the destination/source byte shape consumed by Accepts; it is
// an alias for inst.StepByte, which the program walker already produces.
type StepByte = inst.StepByte

// RejectKind enumerates the ways a pair of bytes can fail to be
// transmutable; AcceptState carries one of these (or Always) plus, for the
// two range-shaped reasons, the pair of ranges involved.
type RejectKind uint8

// The AcceptState variants.
const (
	// Always: this pair is universally admissible.
	Always RejectKind = iota
	// MaybeCheckRange: the source range straddles the destination range;
	// the execution engine must synthesise a split before a verdict can
	// be reached.
	MaybeCheckRange
	// NeverReadUninit: the source is Uninit but the destination is not.
	NeverReadUninit
	// NeverReadPrivate: the source byte is private but the destination
	// position is not (so the destination could read a hidden bit).
	NeverReadPrivate
	// NeverWritePrivate: the destination byte is private (so writing it
	// from any non-Uninit source would forge a hidden bit).
	NeverWritePrivate
	// NeverTagMismatch: both sides are constant bytes with different
	// values.
	NeverTagMismatch
	// NeverOutOfRange: the source range is not fully contained in, and
	// does not even intersect, the destination range.
	NeverOutOfRange
)

func (k RejectKind) String() string {
	switch k {
	case Always:
		return "Always"
	case MaybeCheckRange:
		return "MaybeCheckRange"
	case NeverReadUninit:
		return "NeverReadUninit"
	case NeverReadPrivate:
		return "NeverReadPrivate"
	case NeverWritePrivate:
		return "NeverWritePrivate"
	case NeverTagMismatch:
		return "NeverTagMismatch"
	case NeverOutOfRange:
		return "NeverOutOfRange"
	case NeverUnreachable:
		return "NeverUnreachable"
	default:
		return "Unknown"
	}
}

// Range is an inclusive byte range [Lo, Hi].
type Range struct {
	Lo, Hi byte
}

// AcceptState is the verdict for one pair of destination/source bytes.
// Dst/Src are populated only for MaybeCheckRange and NeverOutOfRange.
type AcceptState struct {
	Kind     RejectKind
	Dst, Src Range
}

// IsAlways reports whether this verdict is the universally-admissible one.
func (a AcceptState) IsAlways() bool { return a.Kind == Always }

func (a AcceptState) String() string {
	switch a.Kind {
	case MaybeCheckRange, NeverOutOfRange:
		return fmt.Sprintf("%s(dst=%#02x..=%#02x, src=%#02x..=%#02x)", a.Kind, a.Dst.Lo, a.Dst.Hi, a.Src.Lo, a.Src.Hi)
	default:
		return a.Kind.String()
	}
}

// Contains reports whether big fully contains small.
func Contains(big, small Range) bool {
	return big.Lo <= small.Lo && big.Hi >= small.Hi
}

// Intersects reports whether a and b share at least one byte value.
func Intersects(a, b Range) bool {
	return a.Hi >= b.Lo && a.Lo <= b.Hi
}

// AcceptRange implements accept_range(D, S) from spec §4.E: Always if D
// contains S, MaybeCheckRange if they merely intersect, NeverOutOfRange
// otherwise.
func AcceptRange(dst, src Range) AcceptState {
	switch {
	case Contains(dst, src):
		return AcceptState{Kind: Always}
	case Intersects(dst, src):
		return AcceptState{Kind: MaybeCheckRange, Dst: dst, Src: src}
	default:
		return AcceptState{Kind: NeverOutOfRange, Dst: dst, Src: src}
	}
}

// Accepts decides whether the source byte s may flow into the destination
// byte d, implementing the truth table of spec §4.E (first match wins).
func Accepts(d, s StepByte) AcceptState {
	switch {
	case d.IsUninit:
		// Uninit destination accepts anything, public or private.
		return AcceptState{Kind: Always}
	case d.Private:
		// Writing any byte tagged private on the destination is never
		// permitted from a non-uninit source, public or private.
		return AcceptState{Kind: NeverWritePrivate}
	case s.IsUninit:
		return AcceptState{Kind: NeverReadUninit}
	case s.Private:
		return AcceptState{Kind: NeverReadPrivate}
	case d.Lo == d.Hi && s.Lo == s.Hi:
		// Both constant bytes.
		if d.Lo == s.Lo {
			return AcceptState{Kind: Always}
		}

		return AcceptState{Kind: NeverTagMismatch}
	default:
		return AcceptRange(Range{d.Lo, d.Hi}, Range{s.Lo, s.Hi})
	}
}

// InitialState returns the seed AcceptState for source instruction ip,
// before any paired walk has touched it: Always for Split/JoinGoto/Accept
// (they carry no bytes of their own to reject), NeverUnreachable for every
// byte-emitting instruction that has not yet been visited by any path.
func InitialState(p *inst.Program, ip inst.InstPtr) AcceptState {
	switch p.Insts[ip].(type) {
	case *inst.Split, *inst.JoinGoto, inst.Accept:
		return AcceptState{Kind: Always}
	default:
		return AcceptState{Kind: NeverUnreachable}
	}
}

// NeverUnreachable is the initial placeholder meaning "we have not yet
// seen a path that exercises this source instruction"; distinguished from
// a real rejection, and silently dropped from the final reject list if it
// survives to the end of Check (spec §9 Open Questions).
const NeverUnreachable RejectKind = 255
