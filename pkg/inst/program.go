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
	"fmt"
	"strings"
)

// Program is the flat, append-only instruction arena produced by compiling
// a type. Insts is indexed by InstPtr; it may grow during synthetic
// forking, but no existing instruction is ever moved or deleted.
//
// Program also carries the cursor state used while walking it (ip, pos,
// tookFork, current) — see pkg/walk for the stepping API built on top of
// these fields.
type Program struct {
	Insts []Inst
	Name  string

	// Walker cursor. Zero value is a fresh walk from the start.
	ip       InstPtr
	pos      uint
	tookFork InstPtr // equals an ip that has yielded its fork but not yet its byte; InstPtrInvalid otherwise
	current  *LayoutStep
}

// LayoutStep is one observable step of a program walk: either a concrete
// byte-level step, or the materialisation of a non-deterministic fork.
// Exactly one of Byte/IsFork is meaningful, distinguished by IsFork.
type LayoutStep struct {
	IsFork bool
	// Fields valid when IsFork is false.
	IP   InstPtr
	Pos  uint
	Byte StepByte
	// Fields valid when IsFork is true.
	Fork ProgFork
}

// StepByte is the byte-level content of a non-fork LayoutStep: Uninit, a
// constant byte, or an inclusive byte range, each carrying a privacy flag.
// pkg/accept consumes this type directly to decide acceptance; keeping it
// here (rather than in pkg/accept) avoids a cycle, since Program (which
// must produce StepByte values from its own private cursor state) also
// needs to live in this package.
type StepByte struct {
	IsUninit bool
	Private  bool
	Lo, Hi   byte // Lo == Hi for a constant byte
}

// ProgFork is a snapshot (ip, pos) sufficient to resume a walker at an
// alternative branch.
type ProgFork struct {
	IP  InstPtr
	Pos uint
}

// NewProgram constructs an empty, named program.
func NewProgram(name string) *Program {
	return &Program{Name: name, tookFork: InstPtrInvalid}
}

// Push appends inst, returning its address.
func (p *Program) Push(inst Inst) InstPtr {
	p.Insts = append(p.Insts, inst)
	return InstPtr(len(p.Insts) - 1)
}

// Pad appends n Uninit instructions.
func (p *Program) Pad(n uint) {
	for range n {
		p.Push(Uninit{})
	}
}

// NewInvalidSplit appends a placeholder Split with an unpatched Alternate,
// returning its address for later patch_split.
func (p *Program) NewInvalidSplit() InstPtr {
	return p.Push(&Split{Alternate: InstPtrInvalid})
}

// NewInvalidGoto appends a placeholder JoinGoto with an unpatched Target,
// returning its address for later patch_goto.
func (p *Program) NewInvalidGoto() InstPtr {
	return p.Push(&JoinGoto{Target: InstPtrInvalid})
}

// PatchSplit overwrites the Alternate field of the Split at ip. Panics if
// the instruction at ip is not a Split.
func (p *Program) PatchSplit(ip InstPtr, target InstPtr) {
	mustSplit(p.Insts[ip]).Alternate = target
}

// PatchGoto overwrites the Target field of the JoinGoto at ip. Panics if
// the instruction at ip is not a JoinGoto.
func (p *Program) PatchGoto(ip InstPtr, target InstPtr) {
	mustJoinGoto(p.Insts[ip]).Target = target
}

// String renders every instruction with its address, for debug logging and
// test failure messages. Not a pretty-printer (see SPEC_FULL.md).
func (p *Program) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Program %q {\n", p.Name)

	for ip, inst := range p.Insts {
		fmt.Fprintf(&sb, "  %04d ", ip)

		switch i := inst.(type) {
		case Uninit:
			sb.WriteString("Uninit\n")
		case Byte:
			fmt.Fprintf(&sb, "Byte(private=%v, %#02x)\n", i.Private, i.Value)
		case *ByteRange:
			fmt.Fprintf(&sb, "ByteRange(private=%v, %#02x..=%#02x", i.Private, i.Lo, i.Hi)

			if i.HasAlternate() {
				fmt.Fprintf(&sb, ", alt=%d", i.Alternate)
			}

			sb.WriteString(")\n")
		case *Split:
			fmt.Fprintf(&sb, "Split(alt=%d)\n", i.Alternate)
		case *JoinGoto:
			fmt.Fprintf(&sb, "JoinGoto(%d)\n", i.Target)
		case Accept:
			sb.WriteString("Accept\n")
		default:
			fmt.Fprintf(&sb, "<unknown %T>\n", i)
		}
	}

	sb.WriteString("}\n")

	return sb.String()
}
