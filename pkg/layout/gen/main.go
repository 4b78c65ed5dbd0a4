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

// Command gen stamps pkg/layout's checked-in fixture file from its template,
// the same way the teacher's field generators stamp license headers onto
// generated field-element source (field/internal/generator/main.go).
package main

import (
	"fmt"
	"os"

	"github.com/consensys/bavard"
)

const copyrightHolder = "the transmute authors"

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2026, "gotransmute")

	err := bgen.Generate(nil, "layout", "templates",
		bavard.Entry{
			File:      "../fixtures_gen.go",
			Templates: []string{"fixtures.go.tmpl"},
		},
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
