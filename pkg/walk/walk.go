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

// Package walk re-exports the program-walker types (spec §4.D) for callers
// that only need to observe a walk, and provides Positions, the debug-only
// routine that computes each instruction's in-order byte offset.
//
// The stepping methods themselves (Next, NextFork, SaveFork, RestoreFork)
// are declared directly on *inst.Program in package inst, since their
// cursor state is private to that type; Go requires a method to live in
// its receiver's package, unlike the original Rust, which could define
// impl blocks for Program from any module.
package walk

import "github.com/m1el/gotransmute/pkg/inst"

// LayoutStep re-exports inst.LayoutStep.
type LayoutStep = inst.LayoutStep

// ProgFork re-exports inst.ProgFork.
type ProgFork = inst.ProgFork

// StepByte re-exports inst.StepByte.
type StepByte = inst.StepByte

// Positions computes the byte offset at which each instruction of p fires
// on the in-order (non-forked) path. This is a debug-only routine (used by
// pkg/dot), never consulted by pkg/texec: it makes a single walk from the
// first instruction, always taking the fall-through edge of a Split,
// jumping through JoinGoto, ignoring ByteRange.Alternate, and stopping at
// Accept. Instructions reached only through an alternate branch (later
// enum/union variants, synthetic-fork tails) are not visited and keep
// offset 0.
func Positions(p *inst.Program) []uint {
	var (
		positions = make([]uint, len(p.Insts))
		pos       uint
		ip        inst.InstPtr
	)

	for int(ip) < len(p.Insts) {
		positions[ip] = pos

		switch i := p.Insts[ip].(type) {
		case inst.Accept:
			return positions
		case *inst.Split:
			ip++
			_ = i // fall-through edge only; alternate branch not visited here
		case *inst.JoinGoto:
			ip = i.Target
		case inst.Uninit:
			pos++
			ip++
		case inst.Byte:
			pos++
			ip++
		case *inst.ByteRange:
			pos++
			ip++
		default:
			panic("walk: unknown instruction kind in Positions")
		}
	}

	return positions
}
