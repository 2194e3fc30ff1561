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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCursorPosition(t *testing.T) {
	rows, cols, err := parseCursorPosition([]byte("\x1b[24;80"))
	require.NoError(t, err)
	assert.Equal(t, 24, rows)
	assert.Equal(t, 80, cols)

	_, _, err = parseCursorPosition([]byte("24;80"))
	assert.Error(t, err)

	_, _, err = parseCursorPosition([]byte("\x1b[24"))
	assert.Error(t, err)

	_, _, err = parseCursorPosition(nil)
	assert.Error(t, err)
}
