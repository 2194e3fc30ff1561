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
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingWriter struct {
	bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

func TestAppendBuffer(t *testing.T) {
	ab := NewAppendBuffer()
	ab.WriteString("hello")
	ab.WriteByte(',')
	ab.Write([]byte(" world"))
	assert.Equal(t, "hello, world", string(ab.Bytes()))
	assert.Equal(t, 12, ab.Len())

	w := &countingWriter{}
	assert.NoError(t, ab.FlushTo(w))
	assert.Equal(t, "hello, world", w.String())
	assert.Equal(t, 1, w.writes)
	assert.Equal(t, 0, ab.Len())

	ab.WriteString("again")
	ab.Reset()
	assert.Empty(t, ab.Bytes())
}
