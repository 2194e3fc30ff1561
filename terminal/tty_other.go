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

//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import (
	"errors"

	smk "github.com/timburks/smk/types"
)

type TTY struct{}

func OpenTTY() (*TTY, error) {
	return nil, errors.New("the tty driver is not supported on this platform, try --driver termbox")
}

func (t *TTY) ReadByte() (byte, error)           { return 0, smk.ErrNoInput }
func (t *TTY) Write(p []byte) (int, error)       { return len(p), nil }
func (t *TTY) Size() (rows, cols int, err error) { return 0, 0, errors.New("unsupported") }
func (t *TTY) Restore() error                    { return nil }
