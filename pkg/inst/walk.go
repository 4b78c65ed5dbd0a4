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

// This file implements the program-walker component (spec §4.D): a lazy
// producer of LayoutStep values over this Program's own append-only arena.
// It lives here, rather than in a separate package, because the walker's
// cursor (ip, pos, tookFork, current) is private state on Program itself —
// Go requires methods to be declared alongside the type they receive.

// Next advances the walker by one step, returning it along with true, or
// (zero, false) once Accept has been reached.
func (p *Program) Next() (LayoutStep, bool) {
	if p.current != nil {
		step := *p.current
		p.current = nil

		return step, true
	}

	return p.advance()
}

// NextFork looks at the next step: if it is a fork, the fork is consumed
// and returned with true, so the following Next moves on past it;
// otherwise the step is cached for the following Next and (zero, false) is
// returned. It never advances past a fork into the following instruction.
func (p *Program) NextFork() (ProgFork, bool) {
	if p.current == nil {
		step, ok := p.advance()
		if !ok {
			return ProgFork{}, false
		}

		p.current = &step
	}

	if p.current.IsFork {
		// Consume the cached fork so the subsequent Next() moves past it.
		fork := p.current.Fork
		p.current = nil

		return fork, true
	}

	return ProgFork{}, false
}

// SaveFork captures the current cursor position for later resumption at an
// alternative branch.
func (p *Program) SaveFork() ProgFork {
	return ProgFork{IP: p.ip, Pos: p.pos}
}

// RestoreFork resets the cursor to a previously saved position, discarding
// any cached lookahead.
func (p *Program) RestoreFork(f ProgFork) {
	p.ip = f.IP
	p.pos = f.Pos
	p.current = nil
}

// advance is the uncached single-instruction step: it interprets
// p.Insts[p.ip] per spec §4.D and either returns a step or loops through
// zero-width instructions (JoinGoto) until one is produced.
func (p *Program) advance() (LayoutStep, bool) {
	for {
		if int(p.ip) >= len(p.Insts) {
			return LayoutStep{}, false
		}

		switch i := p.Insts[p.ip].(type) {
		case Accept:
			return LayoutStep{}, false
		case *Split:
			step := LayoutStep{IsFork: true, Fork: ProgFork{IP: i.Alternate, Pos: p.pos}}
			p.ip++

			return step, true
		case *JoinGoto:
			p.ip = i.Target
			continue
		case Uninit:
			step := LayoutStep{IP: p.ip, Pos: p.pos, Byte: StepByte{IsUninit: true}}
			p.ip++
			p.pos++

			return step, true
		case Byte:
			step := LayoutStep{
				IP: p.ip, Pos: p.pos,
				Byte: StepByte{Private: i.Private, Lo: i.Value, Hi: i.Value},
			}
			p.ip++
			p.pos++

			return step, true
		case *ByteRange:
			if i.HasAlternate() && p.tookFork != p.ip {
				p.tookFork = p.ip

				return LayoutStep{IsFork: true, Fork: ProgFork{IP: i.Alternate, Pos: p.pos}}, true
			}

			p.tookFork = InstPtrInvalid

			step := LayoutStep{
				IP: p.ip, Pos: p.pos,
				Byte: StepByte{Private: i.Private, Lo: i.Lo, Hi: i.Hi},
			}
			p.ip++
			p.pos++

			return step, true
		default:
			panic("inst: unknown instruction kind in walk")
		}
	}
}
