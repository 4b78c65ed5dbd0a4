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

// Package dot renders a compiled inst.Program as a Graphviz DOT graph, for
// debugging a compiled layout by eye. It is explicitly non-core (spec §6):
// nothing in pkg/texec or pkg/tcompiler depends on it.
package dot

import (
	"fmt"
	"strings"

	"github.com/m1el/gotransmute/pkg/inst"
	"github.com/m1el/gotransmute/pkg/walk"
)

// Render writes prog as a standalone DOT graph: one node per instruction,
// labelled with its in-order byte offset (from walk.Positions) and a short
// description of what it emits, with edges for the fall-through flow,
// Split/ByteRange alternates (dashed), and JoinGoto targets (dotted).
func Render(prog *inst.Program) string {
	positions := walk.Positions(prog)

	var sb strings.Builder

	fmt.Fprintf(&sb, "digraph %q {\n", prog.Name)
	sb.WriteString("  rankdir=LR;\n  node [shape=box, fontname=monospace];\n")

	for ip, in := range prog.Insts {
		fmt.Fprintf(&sb, "  n%d [label=%q];\n", ip, nodeLabel(ip, positions[ip], in))

		switch v := in.(type) {
		case *inst.Split:
			fmt.Fprintf(&sb, "  n%d -> n%d;\n", ip, ip+1)
			fmt.Fprintf(&sb, "  n%d -> n%d [style=dashed, label=\"alt\"];\n", ip, v.Alternate)
		case *inst.JoinGoto:
			fmt.Fprintf(&sb, "  n%d -> n%d [style=dotted];\n", ip, v.Target)
		case *inst.ByteRange:
			if ip+1 < len(prog.Insts) {
				fmt.Fprintf(&sb, "  n%d -> n%d;\n", ip, ip+1)
			}

			if v.HasAlternate() {
				fmt.Fprintf(&sb, "  n%d -> n%d [style=dashed, label=\"alt\"];\n", ip, v.Alternate)
			}
		case inst.Accept:
			// Terminal: no outgoing edge.
		default:
			if ip+1 < len(prog.Insts) {
				fmt.Fprintf(&sb, "  n%d -> n%d;\n", ip, ip+1)
			}
		}
	}

	sb.WriteString("}\n")

	return sb.String()
}

func nodeLabel(ip int, pos uint, in inst.Inst) string {
	switch v := in.(type) {
	case inst.Uninit:
		return fmt.Sprintf("%04d @%d\\nuninit", ip, pos)
	case inst.Byte:
		return fmt.Sprintf("%04d @%d\\nbyte %#02x%s", ip, pos, v.Value, privacySuffix(v.Private))
	case *inst.ByteRange:
		return fmt.Sprintf("%04d @%d\\nrange %#02x..=%#02x%s", ip, pos, v.Lo, v.Hi, privacySuffix(v.Private))
	case *inst.Split:
		return fmt.Sprintf("%04d\\nsplit", ip)
	case *inst.JoinGoto:
		return fmt.Sprintf("%04d\\ngoto %d", ip, v.Target)
	case inst.Accept:
		return fmt.Sprintf("%04d\\naccept", ip)
	default:
		return fmt.Sprintf("%04d\\n?", ip)
	}
}

func privacySuffix(private bool) string {
	if private {
		return " (private)"
	}

	return ""
}
