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
package commander

import (
	"log"

	"github.com/timburks/smk/editor"
	smk "github.com/timburks/smk/types"
)

// A Screen displays the editor and supplies keystrokes.
type Screen interface {
	Render(e *editor.Editor) error
	ReadKey() (smk.Key, error)
}

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor    *editor.Editor
	screen    Screen
	mode      int // editor mode
	quitTimes int // quit presses remaining before unsaved changes are discarded
}

func NewCommander(e *editor.Editor, s Screen) *Commander {
	return &Commander{editor: e, screen: s, mode: smk.ModeEdit, quitTimes: smk.QuitTimes}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.mode != smk.ModeQuit
}

// ProcessKey applies one keystroke to the editor.
// Errors are returned only when the terminal fails.
func (c *Commander) ProcessKey(key smk.Key) error {
	e := c.editor
	var err error
	switch key {
	case smk.KeyEnter:
		e.InsertNewline()
	case smk.CtrlKey('q'):
		if e.Buffer.IsDirty() {
			c.quitTimes--
			if c.quitTimes > 0 {
				e.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", c.quitTimes)
				return nil
			}
		}
		c.mode = smk.ModeQuit
		return nil
	case smk.CtrlKey('s'):
		err = c.Save()
	case smk.CtrlKey('o'):
		err = c.Open()
	case smk.CtrlKey('f'):
		err = c.Find()
	case smk.CtrlKey('n'):
		err = c.SelectLineNumberMode()
	case smk.KeyHome:
		e.MoveToBeginningOfLine()
	case smk.KeyEnd:
		e.MoveToEndOfLine()
	case smk.KeyBackspace, smk.CtrlKey('h'):
		e.BackspaceChar()
	case smk.KeyDelete:
		e.DeleteCharUnderCursor()
	case smk.KeyPgup:
		e.PageUp()
	case smk.KeyPgdn:
		e.PageDown()
	case smk.KeyArrowUp:
		e.MoveCursor(smk.MoveUp)
	case smk.KeyArrowDown:
		e.MoveCursor(smk.MoveDown)
	case smk.KeyArrowLeft:
		e.MoveCursor(smk.MoveLeft)
	case smk.KeyArrowRight:
		e.MoveCursor(smk.MoveRight)
	case smk.CtrlKey('l'), smk.KeyEsc:
		// nothing to do
	default:
		if key.IsPrintable() || key == smk.KeyTab {
			e.InsertChar(byte(key))
		}
	}
	c.quitTimes = smk.QuitTimes
	return err
}

// Save writes the buffer to its file, asking for a name if it has none.
func (c *Commander) Save() error {
	e := c.editor
	b := e.Buffer
	if b.GetFileName() == "" {
		name, ok, err := c.Prompt("Save as: %s", nil)
		if err != nil {
			return err
		}
		if !ok {
			e.SetStatusMessage("Save aborted")
			return nil
		}
		b.SetFileName(name)
	}
	n, err := e.WriteFile(b.GetFileName())
	if err != nil {
		log.Printf("save %s: %+v", b.GetFileName(), err)
		e.SetStatusMessage("Can't save! I/O error: %s", err)
		return nil
	}
	e.SetStatusMessage("%d bytes written to disk", n)
	return nil
}

// Open replaces the buffer with the contents of a file named at a prompt.
func (c *Commander) Open() error {
	e := c.editor
	name, ok, err := c.Prompt("Open: %s", nil)
	if err != nil {
		return err
	}
	if !ok {
		e.SetStatusMessage("Open aborted")
		return nil
	}
	if err := e.ReadFile(name); err != nil {
		log.Printf("open %s: %+v", name, err)
		e.SetStatusMessage("Can't open! %s", err)
		return nil
	}
	e.SetStatusMessage("%s - %d lines", name, e.Buffer.GetRowCount())
	return nil
}

// Find runs an incremental search, moving the cursor as the query is typed.
// Cancelling the search returns the view to where it was.
func (c *Commander) Find() error {
	search := c.editor.NewSearch()
	_, ok, err := c.Prompt("Search: %s (Use ESC/Arrows/Enter)", PromptFunc(search.Step))
	if err != nil {
		return err
	}
	if !ok {
		search.Restore()
	}
	return nil
}

// SelectLineNumberMode asks for a new gutter mode.
func (c *Commander) SelectLineNumberMode() error {
	e := c.editor
	token, ok, err := c.Prompt("Line numbers (off/absolute/relative): %s", nil)
	if err != nil || !ok {
		return err
	}
	mode, valid := smk.ParseLineNumberMode(token)
	if !valid {
		e.SetStatusMessage("Unknown line number mode: %s", token)
		return nil
	}
	e.LineNumbers = mode
	e.SetStatusMessage("Line numbers %s", mode)
	return nil
}
