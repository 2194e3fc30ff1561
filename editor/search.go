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
	"strings"

	smk "github.com/timburks/smk/types"
)

// A Search tracks an incremental search through the rendered rows of a buffer.
// It remembers the view at the start of the search so that it can be restored.
type Search struct {
	editor    *Editor
	lastMatch int // row of the last match, -1 before the first match
	forward   bool
	cursor    smk.Point
	offset    smk.Size
}

func (e *Editor) NewSearch() *Search {
	return &Search{
		editor:    e,
		lastMatch: -1,
		forward:   true,
		cursor:    e.Cursor,
		offset:    e.Offset,
	}
}

// Restore puts the cursor and display offset back where they were when the search began.
func (s *Search) Restore() {
	s.editor.Cursor = s.cursor
	s.editor.Offset = s.offset
}

// Step updates the search for a query that was just edited with key.
// Arrow keys move to the next or previous match; other keys restart from the top.
// Enter and Escape end the search without moving.
func (s *Search) Step(query string, key smk.Key) {
	switch key {
	case smk.KeyEnter, smk.KeyEsc:
		// the search is over
		s.lastMatch = -1
		s.forward = true
		return
	case smk.KeyArrowRight, smk.KeyArrowDown:
		s.forward = true
	case smk.KeyArrowLeft, smk.KeyArrowUp:
		s.forward = false
	default:
		s.forward = true
		s.lastMatch = -1
	}
	if query == "" {
		return
	}
	if s.lastMatch == -1 {
		s.forward = true
	}
	s.find(query)
}

func (s *Search) find(query string) {
	e := s.editor
	b := e.Buffer
	count := b.GetRowCount()
	current := s.lastMatch
	for i := 0; i < count; i++ {
		if s.forward {
			current++
		} else {
			current--
		}
		if current == -1 {
			current = count - 1
		} else if current == count {
			current = 0
		}
		row := b.GetRow(current)
		position := strings.Index(row.GetRender(), query)
		if position != -1 {
			// found it
			s.lastMatch = current
			e.Cursor.Row = current
			e.Cursor.Col = row.RenderToRaw(position)
			// scroll so that the match is on the top line
			e.Offset.Rows = count
			return
		}
	}
}
