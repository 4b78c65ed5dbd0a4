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
package cmd

import (
	"fmt"
	"os"

	"github.com/m1el/gotransmute/pkg/dot"
	"github.com/m1el/gotransmute/pkg/tcompiler"
	"github.com/spf13/cobra"
)

// dotCmd represents the dot command
var dotCmd = &cobra.Command{
	Use:   "dot [flags] type-expr",
	Short: "render a type's compiled byte-automaton program as a Graphviz graph.",
	Long: `Compile the given type expression and print its program as a DOT
digraph, e.g. for piping into "dot -Tsvg" to inspect the fork structure
this layout lowers to.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ty, err := ParseTypeExpr(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		prog := tcompiler.CompileType(ty, GetEndian(cmd), args[0])
		fmt.Print(dot.Render(prog))
	},
}
