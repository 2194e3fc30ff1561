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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smk "github.com/timburks/smk/types"
)

// a reader that times out a few times before each byte
type slowReader struct {
	data  []byte
	waits int
	count int
}

func (r *slowReader) ReadByte() (byte, error) {
	if len(r.data) == 0 {
		return 0, smk.ErrNoInput
	}
	if r.count < r.waits {
		r.count++
		return 0, smk.ErrNoInput
	}
	r.count = 0
	c := r.data[0]
	r.data = r.data[1:]
	return c, nil
}

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		input string
		key   smk.Key
	}{
		{"a", smk.Key('a')},
		{"\r", smk.KeyEnter},
		{"\x7f", smk.KeyBackspace},
		{"\x11", smk.CtrlKey('q')},
		{"\x1b[A", smk.KeyArrowUp},
		{"\x1b[B", smk.KeyArrowDown},
		{"\x1b[C", smk.KeyArrowRight},
		{"\x1b[D", smk.KeyArrowLeft},
		{"\x1b[H", smk.KeyHome},
		{"\x1b[F", smk.KeyEnd},
		{"\x1bOH", smk.KeyHome},
		{"\x1bOF", smk.KeyEnd},
		{"\x1b[1~", smk.KeyHome},
		{"\x1b[7~", smk.KeyHome},
		{"\x1b[3~", smk.KeyDelete},
		{"\x1b[4~", smk.KeyEnd},
		{"\x1b[8~", smk.KeyEnd},
		{"\x1b[5~", smk.KeyPgup},
		{"\x1b[6~", smk.KeyPgdn},
		{"\x1b[2~", smk.KeyEsc},
		{"\x1b[5x", smk.KeyEsc},
		{"\x1b[Z", smk.KeyEsc},
		{"\x1bOA", smk.KeyEsc},
		{"\x1bxy", smk.KeyEsc},
	}
	for _, test := range tests {
		key, err := DecodeKey(bytes.NewReader([]byte(test.input)))
		require.NoError(t, err, "%q", test.input)
		assert.Equal(t, test.key, key, "%q", test.input)
	}
}

func TestDecodeKeyShortSequence(t *testing.T) {
	for _, input := range []string{"\x1b", "\x1b[", "\x1b[3"} {
		key, err := DecodeKey(&slowReader{data: []byte(input)})
		require.NoError(t, err, "%q", input)
		assert.Equal(t, smk.KeyEsc, key, "%q", input)
	}
}

func TestDecodeKeyWaitsForFirstByte(t *testing.T) {
	r := &slowReader{data: []byte("x"), waits: 3}
	key, err := DecodeKey(r)
	require.NoError(t, err)
	assert.Equal(t, smk.Key('x'), key)
}

func TestDecodeKeyReadError(t *testing.T) {
	_, err := DecodeKey(bytes.NewReader(nil))
	assert.Error(t, err)
	assert.False(t, errors.Is(err, smk.ErrNoInput))
}

func TestDecodeKeySequence(t *testing.T) {
	r := bytes.NewReader([]byte("a\x1b[Bb"))
	var keys []smk.Key
	for r.Len() > 0 {
		key, err := DecodeKey(r)
		require.NoError(t, err)
		keys = append(keys, key)
	}
	assert.Equal(t, []smk.Key{'a', smk.KeyArrowDown, 'b'}, keys)
}
