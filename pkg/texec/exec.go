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

// Package texec runs two compiled inst.Program walkers in lockstep (spec
// §4.F) to decide whether every byte the destination type could read is
// admissible given every byte the source type could produce, exploring
// both programs' non-deterministic forks exhaustively via an explicit
// work stack.
package texec

import (
	"errors"
	"fmt"

	"github.com/m1el/gotransmute/pkg/accept"
	"github.com/m1el/gotransmute/pkg/inst"
	log "github.com/sirupsen/logrus"
)

// DefaultMaxInstructions bounds how large the source program's arena may
// grow via synthetic forking before Check gives up. Overlapping byte
// ranges can, in principle, trigger repeated tail duplication (spec §5);
// this is the backstop against a pathological or adversarial pair of
// types exhausting memory.
const DefaultMaxInstructions = 1 << 20

// ErrInstructionLimitExceeded is returned by Check when the source
// program's arena grows past MaxInstructions.
var ErrInstructionLimitExceeded = errors.New("texec: source program exceeded the instruction limit")

// Reject records one byte-level admissibility failure. Src is nil when the
// rejection arose from the source program having already ended (treated
// as an implicit Uninit tail, per spec §4.F) — in that case there is no
// source instruction to blame and the rejection is never filtered out by
// a later, more permissive verdict.
type Reject struct {
	Src    *inst.InstPtr
	Dst    inst.InstPtr
	Reason accept.AcceptState
}

func (r Reject) String() string {
	if r.Src == nil {
		return fmt.Sprintf("dst=%d src=<end> %s", r.Dst, r.Reason)
	}

	return fmt.Sprintf("dst=%d src=%d %s", r.Dst, *r.Src, r.Reason)
}

// Execution holds the state of one dst/src check: the pair of walkers and
// the explicit stack of alternative (dst, src) cursor pairs still to
// explore.
type Execution struct {
	Dst, Src *inst.Program

	// MaxInstructions bounds Src's arena growth; zero means
	// DefaultMaxInstructions.
	MaxInstructions int

	forks []forkPair
}

type forkPair struct {
	Dst, Src inst.ProgFork
}

// NewExecution constructs an Execution ready for Check.
func NewExecution(dst, src *inst.Program) *Execution {
	return &Execution{Dst: dst, Src: src}
}

// Check runs the full non-deterministic comparison described in spec
// §4.F and returns every surviving Reject. An empty, non-nil slice means
// src is transmutable into dst.
func Check(dst, src *inst.Program) ([]Reject, error) {
	return NewExecution(dst, src).Check()
}

// Check drives the main loop: at each iteration it prefers exploring a
// pending source fork, then a pending destination fork, over stepping
// both walkers together; it records a Reject whenever a byte pair's
// verdict isn't Always, and finally drops any rejection whose source
// instruction was, by the end of the run, also reached along a path that
// made it Always (spec §9 Open Questions: NeverUnreachable never survives
// to the final list either).
func (e *Execution) Check() ([]Reject, error) {
	limit := e.MaxInstructions
	if limit == 0 {
		limit = DefaultMaxInstructions
	}

	acceptVec := make([]accept.AcceptState, len(e.Src.Insts))
	for ip := range acceptVec {
		acceptVec[ip] = accept.InitialState(e.Src, inst.InstPtr(ip))
	}

	var rejects []Reject

	for {
		if len(e.Src.Insts) > limit {
			return nil, ErrInstructionLimitExceeded
		}

		dstSave := e.Dst.SaveFork()
		srcSave := e.Src.SaveFork()

		if altSrc, ok := e.Src.NextFork(); ok {
			e.forks = append(e.forks, forkPair{Dst: dstSave, Src: altSrc})

			continue
		}

		if altDst, ok := e.Dst.NextFork(); ok {
			e.forks = append(e.forks, forkPair{Dst: altDst, Src: srcSave})

			continue
		}

		srcStep, srcOK := e.Src.Next()
		dstStep, dstOK := e.Dst.Next()

		var srcIP *inst.InstPtr

		bSrc := accept.StepByte{IsUninit: true}
		if srcOK {
			ip := srcStep.IP
			srcIP = &ip
			bSrc = srcStep.Byte
		}

		if !dstOK {
			if !e.popFork() {
				break
			}

			continue
		}

		if srcIP != nil && acceptVec[*srcIP].IsAlways() {
			if !e.popFork() {
				break
			}

			continue
		}

		verdict := accept.Accepts(dstStep.Byte, bSrc)

		if verdict.Kind == accept.MaybeCheckRange {
			resolved, altIP, forked := syntheticFork(e.Src, srcIP, verdict, &acceptVec)
			verdict = resolved

			if forked {
				e.forks = append(e.forks, forkPair{
					Dst: dstSave,
					Src: inst.ProgFork{IP: altIP, Pos: srcStep.Pos},
				})
			}
		}

		if srcIP != nil {
			acceptVec[*srcIP] = verdict
		}

		if verdict.Kind != accept.Always {
			rejects = append(rejects, Reject{Src: srcIP, Dst: dstStep.IP, Reason: verdict})

			if !e.popFork() {
				break
			}
		}
	}

	survivors := make([]Reject, 0, len(rejects))

	for _, r := range rejects {
		if r.Src != nil && acceptVec[*r.Src].IsAlways() {
			continue
		}

		survivors = append(survivors, r)
	}

	log.WithField("dst", e.Dst.Name).
		WithField("src", e.Src.Name).
		WithField("rejects", len(survivors)).
		Debug("checked transmutability")

	return survivors, nil
}

// popFork restores the most recently pushed alternative cursor pair,
// reporting whether one was available.
func (e *Execution) popFork() bool {
	if len(e.forks) == 0 {
		return false
	}

	top := e.forks[len(e.forks)-1]
	e.forks = e.forks[:len(e.forks)-1]

	e.Dst.RestoreFork(top.Dst)
	e.Src.RestoreFork(top.Src)

	return true
}
