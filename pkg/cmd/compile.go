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

	"github.com/m1el/gotransmute/pkg/tcompiler"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] type-expr",
	Short: "compile a type layout into a byte-automaton program.",
	Long: `Compile the given type expression into its byte-automaton program and
print its instruction dump, for inspecting how a layout lowers (see "transmute
dot" for a graphical rendering of the same program).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ty, err := ParseTypeExpr(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		log.WithField("type", args[0]).Debug("compiling type expression")

		prog := tcompiler.CompileType(ty, GetEndian(cmd), args[0])
		fmt.Print(prog.String())
	},
}
