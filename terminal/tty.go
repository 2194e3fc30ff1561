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

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	smk "github.com/timburks/smk/types"
)

// A TTY is the controlling terminal in raw mode. Reads wait at most
// a tenth of a second before reporting smk.ErrNoInput.
type TTY struct {
	in    *os.File
	out   *os.File
	fd    int
	state *term.State
	once  sync.Once
}

// OpenTTY puts standard input into raw mode.
func OpenTTY() (*TTY, error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	t := &TTY{in: os.Stdin, out: os.Stdout, fd: fd, state: state}
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		t.Restore()
		return nil, fmt.Errorf("reading terminal attributes: %w", err)
	}
	// return from read after 100ms even when no byte has arrived
	termios.Cc[unix.VMIN] = 0
	termios.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, termios); err != nil {
		t.Restore()
		return nil, fmt.Errorf("setting read timeout: %w", err)
	}
	return t, nil
}

func (t *TTY) ReadByte() (byte, error) {
	var b [1]byte
	n, err := t.in.Read(b[:])
	if n == 1 {
		return b[0], nil
	}
	if err == nil || err == io.EOF || errors.Is(err, unix.EAGAIN) {
		return 0, smk.ErrNoInput
	}
	return 0, err
}

func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Size returns the window size, asking the terminal for its cursor
// position when the size cannot be read directly.
func (t *TTY) Size() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(t.out.Fd()))
	if err == nil && cols > 0 {
		return rows, cols, nil
	}
	if _, err := t.out.WriteString("\x1b[999C\x1b[999B"); err != nil {
		return 0, 0, err
	}
	return t.cursorPosition()
}

func (t *TTY) cursorPosition() (rows, cols int, err error) {
	if _, err := t.out.WriteString("\x1b[6n"); err != nil {
		return 0, 0, err
	}
	var reply []byte
	for len(reply) < 32 {
		c, err := t.ReadByte()
		if err != nil {
			break
		}
		if c == 'R' {
			break
		}
		reply = append(reply, c)
	}
	return parseCursorPosition(reply)
}

// parseCursorPosition reads the body of a cursor position report, "ESC [ rows ; cols".
func parseCursorPosition(reply []byte) (rows, cols int, err error) {
	if !bytes.HasPrefix(reply, []byte("\x1b[")) {
		return 0, 0, fmt.Errorf("unexpected cursor position report %q", reply)
	}
	if _, err := fmt.Sscanf(string(reply[2:]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("parsing cursor position report %q: %w", reply, err)
	}
	return rows, cols, nil
}

// Restore returns the terminal to the mode it was in before OpenTTY.
// Only the first call has any effect.
func (t *TTY) Restore() error {
	var err error
	t.once.Do(func() {
		err = term.Restore(t.fd, t.state)
	})
	return err
}
