//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	smk "github.com/timburks/smk/types"
)

// RawToRender converts an index into the row's characters to a column in its render form.
func (r *Row) RawToRender(col int) int {
	if col > len(r.chars) {
		col = len(r.chars)
	}
	rx := 0
	for j := 0; j < col; j++ {
		if r.chars[j] == '\t' {
			rx += smk.TabStop - (rx % smk.TabStop)
		} else {
			rx++
		}
	}
	return rx
}

// RenderToRaw converts a render column back to the index of the character drawn there.
func (r *Row) RenderToRaw(rx int) int {
	current := 0
	var col int
	for col = 0; col < len(r.chars); col++ {
		if r.chars[col] == '\t' {
			current += smk.TabStop - (current % smk.TabStop)
		} else {
			current++
		}
		if current > rx {
			return col
		}
	}
	return col
}
