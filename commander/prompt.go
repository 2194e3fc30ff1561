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
package commander

import (
	smk "github.com/timburks/smk/types"
)

// A PromptBehavior reacts to each key typed at a prompt.
// It is called after the query is updated, including for Enter and Escape.
type PromptBehavior interface {
	OnKey(query string, key smk.Key)
}

// PromptFunc adapts a function to the PromptBehavior interface.
type PromptFunc func(query string, key smk.Key)

func (f PromptFunc) OnKey(query string, key smk.Key) {
	f(query, key)
}

// Prompt reads a line of input on the message bar. The format is
// expanded with the query as it is typed. Enter with a non-empty
// query accepts it; Escape cancels with ok set to false.
func (c *Commander) Prompt(format string, behavior PromptBehavior) (query string, ok bool, err error) {
	e := c.editor
	buf := make([]byte, 0, 128)
	for {
		e.SetStatusMessage(format, string(buf))
		if err := c.screen.Render(e); err != nil {
			return "", false, err
		}
		key, err := c.screen.ReadKey()
		if err != nil {
			return "", false, err
		}
		switch {
		case key == smk.KeyBackspace || key == smk.KeyDelete || key == smk.CtrlKey('h'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case key == smk.KeyEsc:
			e.SetStatusMessage("")
			if behavior != nil {
				behavior.OnKey(string(buf), key)
			}
			return "", false, nil
		case key == smk.KeyEnter:
			if len(buf) > 0 {
				e.SetStatusMessage("")
				if behavior != nil {
					behavior.OnKey(string(buf), key)
				}
				return string(buf), true, nil
			}
		case key.IsPrintable():
			buf = append(buf, byte(key))
		}
		if behavior != nil {
			behavior.OnKey(string(buf), key)
		}
	}
}
