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

package editor

import (
	"regexp"

	smk "github.com/timburks/smk/types"
)

var digitHighlighter = NewDigitHighlighter()

// The DigitHighlighter colors every run of decimal digits, with no regard
// for the surrounding text.
type DigitHighlighter struct {
	numberPattern *regexp.Regexp
}

func NewDigitHighlighter() *DigitHighlighter {
	h := &DigitHighlighter{}
	h.numberPattern = regexp.MustCompile("[0-9]+")
	return h
}

// Highlight returns one color per byte of render.
func (h *DigitHighlighter) Highlight(render []byte) []smk.Highlight {
	colors := make([]smk.Highlight, len(render))
	matches := h.numberPattern.FindAllIndex(render, -1)
	for _, match := range matches {
		for k := match[0]; k < match[1]; k++ {
			colors[k] = smk.HighlightNumber
		}
	}
	return colors
}
