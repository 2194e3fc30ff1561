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

import "io"

// An AppendBuffer collects the output for one frame so that it can be
// sent to the terminal in a single write.
type AppendBuffer struct {
	b []byte
}

func NewAppendBuffer() *AppendBuffer {
	return &AppendBuffer{b: make([]byte, 0, 4096)}
}

func (ab *AppendBuffer) Write(p []byte) (int, error) {
	ab.b = append(ab.b, p...)
	return len(p), nil
}

func (ab *AppendBuffer) WriteString(s string) (int, error) {
	ab.b = append(ab.b, s...)
	return len(s), nil
}

func (ab *AppendBuffer) WriteByte(c byte) error {
	ab.b = append(ab.b, c)
	return nil
}

func (ab *AppendBuffer) Bytes() []byte {
	return ab.b
}

func (ab *AppendBuffer) Len() int {
	return len(ab.b)
}

func (ab *AppendBuffer) Reset() {
	ab.b = ab.b[:0]
}

// FlushTo writes the whole buffer to w and empties it.
func (ab *AppendBuffer) FlushTo(w io.Writer) error {
	_, err := w.Write(ab.b)
	ab.Reset()
	return err
}
