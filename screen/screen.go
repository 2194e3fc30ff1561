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
package screen

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/timburks/smk/editor"
	smk "github.com/timburks/smk/types"
)

// VT100 control sequences
const (
	hideCursor   = "\x1b[?25l"
	showCursor   = "\x1b[?25h"
	clearScreen  = "\x1b[2J"
	cursorHome   = "\x1b[H"
	clearLine    = "\x1b[K"
	inverseVideo = "\x1b[7m"
	normalVideo  = "\x1b[m"
	colorNumber  = "\x1b[31m"
	colorDefault = "\x1b[39m"
)

// longest file name shown on the status bar
const fileNameWidth = 20

// The Screen draws the state of an Editor on a terminal.
type Screen struct {
	terminal smk.Terminal
	size     smk.Size // screen size
	frame    *AppendBuffer
}

func NewScreen(t smk.Terminal) *Screen {
	return &Screen{terminal: t, frame: NewAppendBuffer()}
}

// Close clears the screen and returns the terminal to its original mode.
func (s *Screen) Close() error {
	s.terminal.Write([]byte(clearScreen + cursorHome))
	return s.terminal.Restore()
}

// ReadKey blocks until a key is pressed.
func (s *Screen) ReadKey() (smk.Key, error) {
	return DecodeKey(s.terminal)
}

// Render draws one frame and sends it to the terminal in a single write.
func (s *Screen) Render(e *editor.Editor) error {
	rows, cols, err := s.terminal.Size()
	if err != nil {
		return fmt.Errorf("getting window size: %w", err)
	}
	s.size = smk.Size{Rows: rows, Cols: cols}

	// reserve the last two rows for the status and message bars
	editSize := s.size
	editSize.Rows -= 2
	if editSize.Rows < 0 {
		editSize.Rows = 0
	}
	e.SetSize(editSize)
	e.Scroll()

	ab := s.frame
	ab.Reset()
	ab.WriteString(hideCursor)
	ab.WriteString(cursorHome)
	s.RenderRows(ab, e)
	s.RenderInfoBar(ab, e)
	s.RenderMessageBar(ab, e)
	fmt.Fprintf(ab, "\x1b[%d;%dH",
		e.Cursor.Row-e.Offset.Rows+1,
		e.RenderCol-e.Offset.Cols+1+e.GutterWidth())
	ab.WriteString(showCursor)
	return ab.FlushTo(s.terminal)
}

// RenderRows draws the visible rows of the buffer.
func (s *Screen) RenderRows(ab *AppendBuffer, e *editor.Editor) {
	b := e.Buffer
	textRows := e.TextRows()
	textCols := e.TextCols()
	gutter := e.GutterWidth()
	for y := 0; y < textRows; y++ {
		fileRow := y + e.Offset.Rows
		if fileRow >= b.GetRowCount() {
			if b.GetRowCount() == 0 && y == textRows/3 {
				s.renderWelcome(ab)
			} else if gutter > 0 {
				ab.WriteString(strings.Repeat(" ", gutter))
			} else {
				ab.WriteString("~")
			}
		} else {
			if gutter > 0 {
				fmt.Fprintf(ab, "%*d ", gutter-1, e.LineNumber(fileRow))
			}
			row := b.GetRow(fileRow)
			renderRow(ab, row, e.Offset.Cols, textCols)
		}
		ab.WriteString(clearLine)
		ab.WriteString("\r\n")
	}
}

func (s *Screen) renderWelcome(ab *AppendBuffer) {
	welcome := fmt.Sprintf("smk editor -- version %s", smk.Version)
	if len(welcome) > s.size.Cols {
		welcome = welcome[0:s.size.Cols]
	}
	padding := (s.size.Cols - len(welcome)) / 2
	if padding > 0 {
		ab.WriteString("~")
		padding--
	}
	ab.WriteString(strings.Repeat(" ", padding))
	ab.WriteString(welcome)
}

// draws the part of a row that is inside the visible columns, coloring digits
func renderRow(ab *AppendBuffer, row *editor.Row, offset, width int) {
	render := row.GetRender()
	colors := row.GetColors()
	length := len(render) - offset
	if length < 0 {
		length = 0
	}
	if length > width {
		length = width
	}
	current := smk.HighlightNormal
	for j := offset; j < offset+length; j++ {
		if colors[j] != current {
			if colors[j] == smk.HighlightNumber {
				ab.WriteString(colorNumber)
			} else {
				ab.WriteString(colorDefault)
			}
			current = colors[j]
		}
		ab.WriteByte(render[j])
	}
	if current != smk.HighlightNormal {
		ab.WriteString(colorDefault)
	}
}

// RenderInfoBar draws the inverse-video status bar.
func (s *Screen) RenderInfoBar(ab *AppendBuffer, e *editor.Editor) {
	ab.WriteString(inverseVideo)
	ab.WriteString(InfoBarText(e, s.size.Cols))
	ab.WriteString(normalVideo)
	ab.WriteString("\r\n")
}

// InfoBarText computes the text of the status bar, exactly width cells wide.
func InfoBarText(e *editor.Editor, width int) string {
	b := e.Buffer
	name := b.GetFileName()
	if name == "" {
		name = "[No Name]"
	}
	text := fmt.Sprintf("%s - %d lines", runewidth.Truncate(name, fileNameWidth, ""), b.GetRowCount())
	if b.IsDirty() {
		text += " (modified)"
	}
	finalText := fmt.Sprintf("%d/%d", e.Cursor.Row+1, b.GetRowCount())
	text = runewidth.Truncate(text, width, "")
	if runewidth.StringWidth(text)+runewidth.StringWidth(finalText) <= width {
		return runewidth.FillRight(text, width-runewidth.StringWidth(finalText)) + finalText
	}
	return runewidth.FillRight(text, width)
}

// RenderMessageBar draws the current status message.
func (s *Screen) RenderMessageBar(ab *AppendBuffer, e *editor.Editor) {
	ab.WriteString(clearLine)
	line := e.GetMessage()
	if len(line) > s.size.Cols {
		line = line[0:s.size.Cols]
	}
	ab.WriteString(line)
}
