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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyClasses(t *testing.T) {
	assert.Equal(t, Key(17), CtrlKey('q'))
	assert.Equal(t, CtrlKey('Q'), CtrlKey('q'))
	assert.Equal(t, KeyTab, CtrlKey('i'))
	assert.Equal(t, KeyEnter, CtrlKey('m'))

	assert.True(t, Key('a').IsPrintable())
	assert.True(t, Key(' ').IsPrintable())
	assert.False(t, KeyTab.IsPrintable())
	assert.False(t, KeyBackspace.IsPrintable())
	assert.True(t, KeyBackspace.IsControl())
	assert.False(t, KeyArrowUp.IsPrintable())
	assert.False(t, KeyArrowUp.IsControl())
}

func TestParseLineNumberMode(t *testing.T) {
	tests := []struct {
		token string
		mode  LineNumberMode
		ok    bool
	}{
		{"off", LineNumbersOff, true},
		{"none", LineNumbersOff, true},
		{"absolute", LineNumbersAbsolute, true},
		{"abs", LineNumbersAbsolute, true},
		{"relative", LineNumbersRelative, true},
		{"rel", LineNumbersRelative, true},
		{"Relative", LineNumbersOff, false},
		{"", LineNumbersOff, false},
	}
	for _, test := range tests {
		mode, ok := ParseLineNumberMode(test.token)
		assert.Equal(t, test.ok, ok, test.token)
		assert.Equal(t, test.mode, mode, test.token)
		if ok {
			parsed, _ := ParseLineNumberMode(mode.String())
			assert.Equal(t, mode, parsed)
		}
	}
}
