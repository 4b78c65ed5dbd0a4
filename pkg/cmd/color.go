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
	"os"

	"golang.org/x/term"
)

const (
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

// stdoutIsTerminal reports whether os.Stdout is an interactive terminal,
// the same check the teacher's termio package uses before enabling raw
// mode (pkg/util/termio/terminal.go) — here it just gates ANSI colour so
// piped output (e.g. "transmute check ... | less") stays plain.
func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func colorize(code, s string) string {
	if !stdoutIsTerminal() {
		return s
	}

	return code + s + ansiReset
}
