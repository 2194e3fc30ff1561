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

// A row of text in the editor.
// The render form and its colors are rebuilt whenever the text changes.
type Row struct {
	chars  []byte
	render []byte
	colors []smk.Highlight
}

func NewRow(text []byte) *Row {
	r := &Row{}
	r.setText(append([]byte{}, text...))
	return r
}

func (r *Row) setText(text []byte) {
	r.chars = text
	r.update()
}

// expand tabs to the next tab stop and recompute colors
func (r *Row) update() {
	tabs := 0
	for _, c := range r.chars {
		if c == '\t' {
			tabs++
		}
	}
	render := make([]byte, 0, len(r.chars)+tabs*(smk.TabStop-1))
	for _, c := range r.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%smk.TabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render
	r.colors = digitHighlighter.Highlight(r.render)
}

func (r *Row) Length() int {
	return len(r.chars)
}

func (r *Row) GetText() string {
	return string(r.chars)
}

func (r *Row) GetRender() string {
	return string(r.render)
}

func (r *Row) GetRenderLength() int {
	return len(r.render)
}

func (r *Row) GetColors() []smk.Highlight {
	return r.colors
}

// inserts a character at col; positions past the end append
func (r *Row) InsertChar(col int, c byte) {
	if col < 0 || col > len(r.chars) {
		col = len(r.chars)
	}
	line := make([]byte, 0, len(r.chars)+1)
	line = append(line, r.chars[0:col]...)
	line = append(line, c)
	line = append(line, r.chars[col:]...)
	r.setText(line)
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) byte {
	if col < 0 || col >= len(r.chars) {
		return 0
	}
	c := r.chars[col]
	r.setText(append(r.chars[0:col], r.chars[col+1:]...))
	return c
}

// appends text to the end of the row
func (r *Row) Append(text []byte) {
	line := make([]byte, 0, len(r.chars)+len(text))
	line = append(line, r.chars...)
	line = append(line, text...)
	r.setText(line)
}

// drops everything from col to the end of the row
func (r *Row) Truncate(col int) {
	if col < 0 || col >= len(r.chars) {
		return
	}
	r.setText(r.chars[0:col])
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) []byte {
	if col < len(r.chars) {
		return append([]byte{}, r.chars[col:]...)
	} else {
		return []byte{}
	}
}
