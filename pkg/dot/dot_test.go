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
package dot

import (
	"strings"
	"testing"

	"github.com/m1el/gotransmute/pkg/layout"
	"github.com/m1el/gotransmute/pkg/tcompiler"
	"github.com/m1el/gotransmute/pkg/util/assert"
)

func Test_Render_ContainsDigraphAndAccept(t *testing.T) {
	prog := tcompiler.CompileType(layout.NewInt(4), tcompiler.Little, "u32")
	out := Render(prog)

	assert.True(t, strings.HasPrefix(out, "digraph \"u32\""))
	assert.True(t, strings.Contains(out, "accept"))
}

func Test_Render_EnumHasSplitAndAltEdge(t *testing.T) {
	e := layout.Fixtures["bool_or_i8"]
	prog := tcompiler.CompileType(e, tcompiler.Little, "e")
	out := Render(prog)

	assert.True(t, strings.Contains(out, "split"))
	assert.True(t, strings.Contains(out, "style=dashed"))
}
