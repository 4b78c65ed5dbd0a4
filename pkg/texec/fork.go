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
package texec

import (
	"fmt"

	"github.com/m1el/gotransmute/pkg/accept"
	"github.com/m1el/gotransmute/pkg/inst"
)

// gotoPatch remembers a Split.Alternate or JoinGoto.Target field that was
// written with a placeholder during copyFork, to be resolved once the
// whole tail has been duplicated and the orig->new address map is
// complete (targets are always forward references in an append-only
// program, so they are not yet known at the point they're written).
type gotoPatch struct {
	at         inst.InstPtr
	origTarget inst.InstPtr
	isSplit    bool
}

// copyFork duplicates the tail of prog starting at the instruction
// `start` into a freshly-appended block, per spec §4.F. It returns the
// address of the first duplicated instruction.
//
// The duplication is a linear scan that follows Split/JoinGoto structure:
// Split increments a nesting depth, and its copy's Alternate is pointed,
// once the scan is done, at the copy of its original target (or at the
// original address when the scan never reached that target); a
// ByteRange's Alternate branch is itself recursively duplicated (an
// independent subtree, since it typically lives far away in the arena —
// e.g. after a prior synthetic fork); JoinGoto decrements depth, except
// when depth is already zero, in which
// case it means we have reached the natural join point of whatever
// enclosing structure started before `start` — rather than duplicating
// that (and everything after it) under a pointless unconditional jump, we
// simply continue the duplication scan from the goto's target. Accept
// ends the duplication.
func copyFork(prog *inst.Program, start inst.InstPtr) inst.InstPtr {
	var (
		origToNew = map[inst.InstPtr]inst.InstPtr{}
		patches   []gotoPatch
		depth     int
		cur       = start
	)

	entry := inst.InstPtr(len(prog.Insts))

loop:
	for {
		if _, seen := origToNew[cur]; seen {
			panic(fmt.Sprintf("texec: copyFork encountered a cycle at instruction %d", cur))
		}

		if int(cur) >= len(prog.Insts) {
			panic(fmt.Sprintf("texec: copyFork ran past the end of the program at %d", cur))
		}

		switch v := prog.Insts[cur].(type) {
		case inst.Accept:
			origToNew[cur] = inst.InstPtr(len(prog.Insts))
			prog.Push(inst.Accept{})

			break loop
		case inst.Uninit:
			origToNew[cur] = inst.InstPtr(len(prog.Insts))
			prog.Push(inst.Uninit{})
			cur++
		case inst.Byte:
			origToNew[cur] = inst.InstPtr(len(prog.Insts))
			prog.Push(inst.Byte{Private: v.Private, Value: v.Value})
			cur++
		case *inst.ByteRange:
			var alt inst.InstPtr = inst.InstPtrInvalid
			if v.HasAlternate() {
				alt = copyFork(prog, v.Alternate)
			}

			origToNew[cur] = inst.InstPtr(len(prog.Insts))
			prog.Push(&inst.ByteRange{Private: v.Private, Lo: v.Lo, Hi: v.Hi, Alternate: alt})
			cur++
		case *inst.Split:
			newAddr := inst.InstPtr(len(prog.Insts))
			origToNew[cur] = newAddr
			prog.Push(&inst.Split{Alternate: inst.InstPtrInvalid})
			patches = append(patches, gotoPatch{at: newAddr, origTarget: v.Alternate, isSplit: true})
			depth++
			cur++
		case *inst.JoinGoto:
			if depth == 0 {
				cur = v.Target
				continue
			}

			depth--

			newAddr := inst.InstPtr(len(prog.Insts))
			origToNew[cur] = newAddr
			prog.Push(&inst.JoinGoto{Target: inst.InstPtrInvalid})
			patches = append(patches, gotoPatch{at: newAddr, origTarget: v.Target, isSplit: false})
			cur++
		default:
			panic(fmt.Sprintf("texec: unknown instruction kind %T in copyFork", v))
		}
	}

	for _, p := range patches {
		target, ok := origToNew[p.origTarget]
		if !ok {
			// The target lies outside what we duplicated (e.g. a sibling
			// variant's body that this path never visits); reuse the
			// original address since it is shared, unduplicated structure.
			target = p.origTarget
		}

		if p.isSplit {
			prog.PatchSplit(p.at, target)
		} else {
			prog.PatchGoto(p.at, target)
		}
	}

	return entry
}

// extendAcceptVec grows *acceptVec so its length matches prog.Insts,
// seeding every newly appended index with its initial (NeverUnreachable,
// unless Split/JoinGoto/Accept) state, per spec §4.F "extend the accept
// vector ... so indices stay aligned".
func extendAcceptVec(prog *inst.Program, acceptVec *[]accept.AcceptState) {
	for ip := len(*acceptVec); ip < len(prog.Insts); ip++ {
		*acceptVec = append(*acceptVec, accept.InitialState(prog, inst.InstPtr(ip)))
	}
}

// syntheticFork implements Program::synthetic_fork (spec §4.F): given a
// MaybeCheckRange verdict straddling the destination and source ranges at
// srcIP, splits the source's ByteRange into the overlapping part (kept at
// srcIP, narrowed to the destination range) and up to two non-overlapping
// "missing" sub-ranges, each spliced in as a freshly-duplicated tail so
// the walk can continue deterministically down each.
//
// Returns the resolved verdict (Always, since the overlapping part is by
// definition accepted) and, if any missing sub-range was produced, the
// instruction address the execution engine should push as a new fork.
func syntheticFork(
	prog *inst.Program,
	srcIP *inst.InstPtr,
	verdict accept.AcceptState,
	acceptVec *[]accept.AcceptState,
) (accept.AcceptState, inst.InstPtr, bool) {
	if verdict.Kind != accept.MaybeCheckRange || srcIP == nil {
		return verdict, 0, false
	}

	dst, src := verdict.Dst, verdict.Src
	if !accept.Intersects(dst, src) {
		return verdict, 0, false
	}

	prev, ok := prog.Insts[*srcIP].(*inst.ByteRange)
	if !ok {
		return verdict, 0, false
	}

	type missing struct{ lo, hi byte }

	var ranges []missing

	if src.Lo < dst.Lo {
		ranges = append(ranges, missing{src.Lo, dst.Lo - 1})
	}

	if src.Hi > dst.Hi {
		ranges = append(ranges, missing{dst.Hi + 1, src.Hi})
	}

	oldAlternate := prev.Alternate

	for _, m := range ranges {
		loc := copyFork(prog, *srcIP)
		extendAcceptVec(prog, acceptVec)

		replacement := prog.Insts[loc].(*inst.ByteRange)
		replacement.Lo, replacement.Hi = m.lo, m.hi
		replacement.Private = prev.Private
		replacement.Alternate = oldAlternate

		oldAlternate = loc
	}

	prev.Lo, prev.Hi = dst.Lo, dst.Hi
	prev.Alternate = oldAlternate

	if prev.Alternate == inst.InstPtrInvalid {
		return accept.AcceptState{Kind: accept.Always}, 0, false
	}

	return accept.AcceptState{Kind: accept.Always}, prev.Alternate, true
}
