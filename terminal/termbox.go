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
package terminal

import (
	"os"
	"sync"
	"time"

	"github.com/nsf/termbox-go"

	smk "github.com/timburks/smk/types"
)

// readTimeout bounds each ReadByte so callers can poll.
const readTimeout = 100 * time.Millisecond

// A Termbox is a terminal driven through termbox. Termbox owns the
// raw-mode setup and input; frames are written directly to stdout.
type Termbox struct {
	input  chan byte
	errs   chan error
	done   chan struct{}
	mutex  sync.Mutex
	width  int
	height int
	once   sync.Once
}

func OpenTermbox() (*Termbox, error) {
	if err := termbox.Init(); err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc)
	t := &Termbox{
		input: make(chan byte, 64),
		errs:  make(chan error, 1),
		done:  make(chan struct{}),
	}
	t.width, t.height = termbox.Size()
	go t.pump()
	return t, nil
}

// pump copies raw input from termbox to the input channel.
func (t *Termbox) pump() {
	defer close(t.done)
	data := make([]byte, 32)
	for {
		event := termbox.PollRawEvent(data)
		switch event.Type {
		case termbox.EventRaw:
			for _, b := range data[:event.N] {
				t.input <- b
			}
		case termbox.EventResize:
			t.mutex.Lock()
			t.width, t.height = event.Width, event.Height
			t.mutex.Unlock()
		case termbox.EventError:
			t.errs <- event.Err
			return
		case termbox.EventInterrupt:
			return
		}
	}
}

func (t *Termbox) ReadByte() (byte, error) {
	select {
	case b := <-t.input:
		return b, nil
	case err := <-t.errs:
		return 0, err
	case <-time.After(readTimeout):
		return 0, smk.ErrNoInput
	}
}

func (t *Termbox) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (t *Termbox) Size() (rows, cols int, err error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.height, t.width, nil
}

// Restore stops the input pump and shuts termbox down.
func (t *Termbox) Restore() error {
	t.once.Do(func() {
		termbox.Interrupt()
		select {
		case <-t.done:
		case <-time.After(readTimeout):
		}
		termbox.Close()
	})
	return nil
}
