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
	"fmt"
	"os"
	"strconv"
	"time"

	smk "github.com/timburks/smk/types"
)

// The Editor manages the editing of text in a Buffer.
type Editor struct {
	Cursor      smk.Point          // cursor position in the buffer
	Offset      smk.Size           // display offset
	RenderCol   int                // cursor column in render space, recomputed by Scroll
	Buffer      *Buffer            // buffer being edited
	LineNumbers smk.LineNumberMode // gutter display
	size        smk.Size           // size of the text area, including the gutter
	message     string             // status message
	messageTime time.Time          // when the status message was set
	now         func() time.Time
}

func NewEditor() *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer()
	e.now = time.Now
	return e
}

// ReadFile loads a file into a fresh buffer and makes it current.
// On failure the editor is left unchanged.
func (e *Editor) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	b := NewBuffer()
	if _, err := b.ReadFrom(f); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	b.SetFileName(path)
	e.Buffer = b
	e.Cursor = smk.Point{}
	e.Offset = smk.Size{}
	e.RenderCol = 0
	return nil
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

// WriteFile saves the buffer, truncating the file to the new length.
// It returns the number of bytes written.
func (e *Editor) WriteFile(path string) (int, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	b := e.Bytes()
	if err := f.Truncate(int64(len(b))); err != nil {
		return 0, err
	}
	n, err := f.Write(b)
	if err != nil {
		return n, err
	}
	if err := f.Close(); err != nil {
		return n, err
	}
	e.Buffer.dirty = false
	return n, nil
}

func (e *Editor) SetSize(s smk.Size) {
	e.size = s
}

func (e *Editor) GetSize() smk.Size {
	return e.size
}

// TextRows is the number of buffer rows visible at once.
func (e *Editor) TextRows() int {
	return e.size.Rows
}

// TextCols is the number of render columns visible at once.
func (e *Editor) TextCols() int {
	cols := e.size.Cols - e.GutterWidth()
	if cols < 0 {
		return 0
	}
	return cols
}

// GutterWidth is the number of columns taken by line numbers and their separator.
func (e *Editor) GutterWidth() int {
	if e.LineNumbers == smk.LineNumbersOff {
		return 0
	}
	count := e.Buffer.GetRowCount()
	if count < 1 {
		count = 1
	}
	return len(strconv.Itoa(count)) + 1
}

// LineNumber returns the number to display beside a buffer row.
func (e *Editor) LineNumber(row int) int {
	if e.LineNumbers == smk.LineNumbersRelative {
		d := e.Cursor.Row - row
		if d < 0 {
			d = -d
		}
		return d
	}
	return row + 1
}

func (e *Editor) SetStatusMessage(format string, args ...interface{}) {
	e.message = fmt.Sprintf(format, args...)
	e.messageTime = e.now()
}

// GetMessage returns the status message until it expires.
func (e *Editor) GetMessage() string {
	if e.now().Sub(e.messageTime) < smk.MessageTimeout*time.Second {
		return e.message
	}
	return ""
}

// Scroll recomputes the display offset to keep the cursor onscreen.
func (e *Editor) Scroll() {
	e.RenderCol = 0
	if row := e.Buffer.GetRow(e.Cursor.Row); row != nil {
		e.RenderCol = row.RawToRender(e.Cursor.Col)
	}
	textRows := e.TextRows()
	textCols := e.TextCols()
	if e.Cursor.Row < e.Offset.Rows {
		// scroll up
		e.Offset.Rows = e.Cursor.Row
	}
	if e.Cursor.Row-e.Offset.Rows >= textRows {
		// scroll down
		e.Offset.Rows = e.Cursor.Row - textRows + 1
	}
	if e.RenderCol < e.Offset.Cols {
		// scroll left
		e.Offset.Cols = e.RenderCol
	}
	if e.RenderCol-e.Offset.Cols >= textCols {
		// scroll right
		e.Offset.Cols = e.RenderCol - textCols + 1
	}
}

func (e *Editor) MoveCursor(direction int) {
	b := e.Buffer
	switch direction {
	case smk.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		} else if e.Cursor.Row > 0 {
			e.Cursor.Row--
			e.Cursor.Col = b.GetRowLength(e.Cursor.Row)
		}
	case smk.MoveRight:
		if e.Cursor.Row < b.GetRowCount() {
			if e.Cursor.Col < b.GetRowLength(e.Cursor.Row) {
				e.Cursor.Col++
			} else {
				e.Cursor.Row++
				e.Cursor.Col = 0
			}
		}
	case smk.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case smk.MoveDown:
		if e.Cursor.Row < b.GetRowCount() {
			e.Cursor.Row++
		}
	}
	e.KeepCursorInRow()
}

// KeepCursorInRow clamps the cursor to the buffer and to the length of its row.
func (e *Editor) KeepCursorInRow() {
	count := e.Buffer.GetRowCount()
	if e.Cursor.Row > count {
		e.Cursor.Row = count
	}
	if e.Cursor.Row < 0 {
		e.Cursor.Row = 0
	}
	rowLength := e.Buffer.GetRowLength(e.Cursor.Row)
	if e.Cursor.Col > rowLength {
		e.Cursor.Col = rowLength
	}
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row)
}

func (e *Editor) PageUp() {
	// move to the top of the screen
	e.Cursor.Row = e.Offset.Rows
	e.KeepCursorInRow()
	// move up by a page
	for i := 0; i < e.TextRows(); i++ {
		e.MoveCursor(smk.MoveUp)
	}
}

func (e *Editor) PageDown() {
	// move to the bottom of the screen
	e.Cursor.Row = e.Offset.Rows + e.TextRows() - 1
	e.KeepCursorInRow()
	// move down by a page
	for i := 0; i < e.TextRows(); i++ {
		e.MoveCursor(smk.MoveDown)
	}
}

// These editor primitives change the buffer at the cursor.

func (e *Editor) InsertChar(c byte) {
	// if the cursor is past the last row, add a row
	if e.Cursor.Row == e.Buffer.GetRowCount() {
		e.Buffer.InsertRow(e.Buffer.GetRowCount(), nil)
	}
	e.Buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col++
}

// InsertNewline splits the current row at the cursor.
func (e *Editor) InsertNewline() {
	if e.Cursor.Col == 0 {
		e.Buffer.InsertRow(e.Cursor.Row, nil)
	} else {
		after := e.Buffer.TextAfter(e.Cursor.Row, e.Cursor.Col)
		e.Buffer.InsertRow(e.Cursor.Row+1, after)
		e.Buffer.TruncateRow(e.Cursor.Row, e.Cursor.Col)
	}
	e.Cursor.Row++
	e.Cursor.Col = 0
}

// BackspaceChar deletes the character before the cursor, joining rows at the start of a line.
func (e *Editor) BackspaceChar() {
	b := e.Buffer
	if e.Cursor.Row == b.GetRowCount() {
		return
	}
	if e.Cursor.Col == 0 && e.Cursor.Row == 0 {
		return
	}
	if e.Cursor.Col > 0 {
		b.DeleteCharacter(e.Cursor.Row, e.Cursor.Col-1)
		e.Cursor.Col--
	} else {
		// remove the current row and join it with the previous one
		e.Cursor.Col = b.GetRowLength(e.Cursor.Row - 1)
		b.AppendStringToRow(e.Cursor.Row-1, b.TextAfter(e.Cursor.Row, 0))
		b.DeleteRow(e.Cursor.Row)
		e.Cursor.Row--
	}
}

// DeleteCharUnderCursor deletes forward by stepping right and deleting backward.
func (e *Editor) DeleteCharUnderCursor() {
	e.MoveCursor(smk.MoveRight)
	e.BackspaceChar()
}
