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
package types

import (
	"errors"
	"io"
)

const Version = "0.0.1"

// Editor modes
const (
	ModeEdit = 0
	ModeQuit = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// TabStop is the width of a tab stop in the rendered form of a row.
const TabStop = 8

// QuitTimes is the number of quit presses needed to discard unsaved changes.
const QuitTimes = 3

// MessageTimeout is how long a status message stays on the message bar, in seconds.
const MessageTimeout = 5

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Key is a decoded keystroke. Plain bytes decode to their own value;
// navigation keys decode to values above the byte range.
type Key int

const (
	KeyTab       Key = '\t'
	KeyEnter     Key = '\r'
	KeyEsc       Key = 0x1b
	KeyBackspace Key = 127
)

const (
	KeyArrowLeft Key = iota + 1000
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
)

// CtrlKey returns the key produced by holding control with k.
func CtrlKey(k byte) Key {
	return Key(k & 0x1f)
}

// IsControl reports whether k is an ASCII control character.
func (k Key) IsControl() bool {
	return (k >= 0 && k < 32) || k == 127
}

// IsPrintable reports whether k can be inserted into a row as a single byte.
func (k Key) IsPrintable() bool {
	return !k.IsControl() && k >= 0 && k < 128
}

// Highlight classes for rendered characters
type Highlight uint8

const (
	HighlightNormal Highlight = 0
	HighlightNumber Highlight = 1
)

// LineNumberMode selects the gutter shown to the left of each row.
type LineNumberMode int

const (
	LineNumbersOff LineNumberMode = iota
	LineNumbersAbsolute
	LineNumbersRelative
)

func (m LineNumberMode) String() string {
	switch m {
	case LineNumbersAbsolute:
		return "absolute"
	case LineNumbersRelative:
		return "relative"
	default:
		return "off"
	}
}

// ParseLineNumberMode converts a user-entered token to a mode.
func ParseLineNumberMode(token string) (LineNumberMode, bool) {
	switch token {
	case "off", "none":
		return LineNumbersOff, true
	case "absolute", "abs":
		return LineNumbersAbsolute, true
	case "relative", "rel":
		return LineNumbersRelative, true
	default:
		return LineNumbersOff, false
	}
}

// ErrNoInput is returned by a Terminal when a read times out with no data.
var ErrNoInput = errors.New("no input available")

// A Terminal is a raw-mode terminal session.
type Terminal interface {
	io.ByteReader
	io.Writer
	Size() (rows, cols int, err error)
	Restore() error
}
