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
	"github.com/m1el/gotransmute/pkg/texec"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] dst-type-expr src-type-expr",
	Short: "Check whether src is always safely transmutable into dst.",
	Long: `Compile both type expressions and run the byte-automaton comparison
(spec §4.F) between them, reporting every byte position at which a value
of src's type could contain bytes dst would reject. An empty report means
src is always transmutable into dst.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		dstExpr, srcExpr := args[0], args[1]

		dstTy, err := ParseTypeExpr(dstExpr)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		srcTy, err := ParseTypeExpr(srcExpr)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		endian := GetEndian(cmd)
		dst := tcompiler.CompileType(dstTy, endian, dstExpr)
		src := tcompiler.CompileType(srcTy, endian, srcExpr)

		log.WithField("dst", dstExpr).WithField("src", srcExpr).Debug("checking transmutability")

		exec := texec.NewExecution(dst, src)

		if limit := GetUint(cmd, "max-instructions"); limit > 0 {
			exec.MaxInstructions = int(limit)
		}

		rejects, err := exec.Check()
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}

		if len(rejects) == 0 {
			fmt.Println(colorize(ansiGreen, fmt.Sprintf("%s is transmutable into %s", srcExpr, dstExpr)))
			return
		}

		fmt.Println(colorize(ansiRed, fmt.Sprintf("%s is NOT transmutable into %s:", srcExpr, dstExpr)))

		for _, r := range rejects {
			fmt.Printf("  %s\n", r)
		}

		os.Exit(1)
	},
}

func init() {
	checkCmd.Flags().Uint("max-instructions", 0,
		"override the instruction-count backstop on synthetic forking (0 uses the default)")
}
