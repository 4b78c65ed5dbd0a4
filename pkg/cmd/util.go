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
	"github.com/spf13/cobra"
)

// GetFlag gets an expected boolean flag, or exits the process if the flag
// isn't registered (a programmer error, not a recoverable one).
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits the process on error.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint flag, or exits the process on error.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetEndian reads the shared --endian flag and resolves it to a
// tcompiler.Endian, exiting the process on an unrecognised value.
func GetEndian(cmd *cobra.Command) tcompiler.Endian {
	switch s := GetString(cmd, "endian"); s {
	case "little":
		return tcompiler.Little
	case "big":
		return tcompiler.Big
	default:
		fmt.Printf("unknown endian %q: expected \"little\" or \"big\"\n", s)
		os.Exit(2)

		return tcompiler.Little
	}
}
