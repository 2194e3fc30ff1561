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
	"testing"

	"github.com/stretchr/testify/assert"

	smk "github.com/timburks/smk/types"
)

// type a query one key at a time, as the search prompt does
func typeQuery(s *Search, query string) {
	for i := range query {
		s.Step(query[:i+1], smk.Key(query[i]))
	}
}

func TestSearchSteps(t *testing.T) {
	e := editorWithRows("foo bar", "baz foo")
	s := e.NewSearch()

	typeQuery(s, "foo")
	assert.Equal(t, smk.Point{Row: 0, Col: 0}, e.Cursor)
	assert.Equal(t, 2, e.Offset.Rows)

	s.Step("foo", smk.KeyArrowDown)
	assert.Equal(t, smk.Point{Row: 1, Col: 4}, e.Cursor)

	s.Step("foo", smk.KeyArrowRight)
	assert.Equal(t, smk.Point{Row: 0, Col: 0}, e.Cursor)

	s.Step("foo", smk.KeyArrowUp)
	assert.Equal(t, smk.Point{Row: 1, Col: 4}, e.Cursor)
}

func TestSearchStartsForward(t *testing.T) {
	e := editorWithRows("foo bar", "baz foo")
	s := e.NewSearch()
	s.Step("foo", smk.KeyArrowLeft)
	assert.Equal(t, smk.Point{Row: 0, Col: 0}, e.Cursor)
	s.Step("foo", smk.KeyArrowLeft)
	assert.Equal(t, smk.Point{Row: 1, Col: 4}, e.Cursor)
}

func TestSearchMatchesRenderedText(t *testing.T) {
	e := editorWithRows("\tfoo")
	s := e.NewSearch()
	typeQuery(s, "foo")
	assert.Equal(t, smk.Point{Row: 0, Col: 1}, e.Cursor)

	e.Scroll()
	assert.Equal(t, 0, e.Offset.Rows)
	assert.Equal(t, 8, e.RenderCol)
}

func TestSearchWithoutMatch(t *testing.T) {
	e := editorWithRows("foo bar", "baz foo")
	e.Cursor = smk.Point{Row: 1, Col: 2}
	s := e.NewSearch()
	typeQuery(s, "qux")
	assert.Equal(t, smk.Point{Row: 1, Col: 2}, e.Cursor)
	assert.Equal(t, 0, e.Offset.Rows)

	s.Step("", smk.KeyBackspace)
	assert.Equal(t, smk.Point{Row: 1, Col: 2}, e.Cursor)
}

func TestSearchRestore(t *testing.T) {
	e := editorWithRows("foo bar", "baz foo", "more")
	e.Cursor = smk.Point{Row: 2, Col: 3}
	e.Offset = smk.Size{Rows: 1, Cols: 2}
	s := e.NewSearch()
	typeQuery(s, "baz")
	assert.Equal(t, smk.Point{Row: 1, Col: 0}, e.Cursor)

	s.Restore()
	assert.Equal(t, smk.Point{Row: 2, Col: 3}, e.Cursor)
	assert.Equal(t, smk.Size{Rows: 1, Cols: 2}, e.Offset)
}

func TestSearchEndsOnEnter(t *testing.T) {
	e := editorWithRows("foo bar", "baz foo")
	s := e.NewSearch()
	typeQuery(s, "foo")
	s.Step("foo", smk.KeyArrowDown)
	s.Step("foo", smk.KeyEnter)
	assert.Equal(t, smk.Point{Row: 1, Col: 4}, e.Cursor)
}
