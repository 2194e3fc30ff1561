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
	"bufio"
	"bytes"
	"errors"
	"io"
)

// A Buffer represents a file being edited.
// Every method that changes the text marks the buffer dirty.
type Buffer struct {
	rows     []*Row
	fileName string
	dirty    bool
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = make([]*Row, 0)
	return b
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) IsDirty() bool {
	return b.dirty
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

// GetRow returns the row at index i, or nil when there is none.
func (b *Buffer) GetRow(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	} else {
		return 0
	}
}

// ReadFrom replaces the contents of the buffer with the lines read from r.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	reader := bufio.NewReader(r)
	rows := make([]*Row, 0)
	var n int64
	for {
		line, err := reader.ReadBytes('\n')
		n += int64(len(line))
		if len(line) > 0 {
			rows = append(rows, NewRow(bytes.TrimRight(line, "\r\n")))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return n, err
		}
	}
	b.rows = rows
	b.dirty = false
	return n, nil
}

// Bytes returns the buffer contents with each row terminated by a newline.
func (b *Buffer) Bytes() []byte {
	var buf bytes.Buffer
	for _, row := range b.rows {
		buf.Write(row.chars)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func (b *Buffer) InsertRow(at int, text []byte) {
	if at < 0 || at > len(b.rows) {
		return
	}
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = NewRow(text)
	b.dirty = true
}

func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	b.rows = append(b.rows[0:at], b.rows[at+1:]...)
	b.dirty = true
}

func (b *Buffer) InsertCharacter(row, col int, c byte) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	b.rows[row].InsertChar(col, c)
	b.dirty = true
}

func (b *Buffer) DeleteCharacter(row, col int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	if col < 0 || col >= b.rows[row].Length() {
		return
	}
	b.rows[row].DeleteChar(col)
	b.dirty = true
}

// AppendStringToRow joins text to the end of a row.
func (b *Buffer) AppendStringToRow(row int, text []byte) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	b.rows[row].Append(text)
	b.dirty = true
}

func (b *Buffer) TruncateRow(row, col int) {
	if row < 0 || row >= len(b.rows) {
		return
	}
	if col < 0 || col >= b.rows[row].Length() {
		return
	}
	b.rows[row].Truncate(col)
	b.dirty = true
}

// TextAfter returns the text of a row starting at col.
func (b *Buffer) TextAfter(row, col int) []byte {
	if row >= 0 && row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	} else {
		return []byte{}
	}
}
