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
	"errors"
	"io"

	smk "github.com/timburks/smk/types"
)

// DecodeKey reads one keystroke from r, resolving escape sequences.
// It waits through read timeouts for the first byte. If an escape
// sequence is cut short, the result is a plain escape.
func DecodeKey(r io.ByteReader) (smk.Key, error) {
	var c byte
	var err error
	for {
		c, err = r.ReadByte()
		if err == nil {
			break
		}
		if !errors.Is(err, smk.ErrNoInput) {
			return 0, err
		}
	}
	if c != byte(smk.KeyEsc) {
		return smk.Key(c), nil
	}

	seq0, err := r.ReadByte()
	if err != nil {
		return smk.KeyEsc, nil
	}
	seq1, err := r.ReadByte()
	if err != nil {
		return smk.KeyEsc, nil
	}

	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, err := r.ReadByte()
			if err != nil || seq2 != '~' {
				return smk.KeyEsc, nil
			}
			switch seq1 {
			case '1', '7':
				return smk.KeyHome, nil
			case '3':
				return smk.KeyDelete, nil
			case '4', '8':
				return smk.KeyEnd, nil
			case '5':
				return smk.KeyPgup, nil
			case '6':
				return smk.KeyPgdn, nil
			}
			return smk.KeyEsc, nil
		}
		switch seq1 {
		case 'A':
			return smk.KeyArrowUp, nil
		case 'B':
			return smk.KeyArrowDown, nil
		case 'C':
			return smk.KeyArrowRight, nil
		case 'D':
			return smk.KeyArrowLeft, nil
		case 'H':
			return smk.KeyHome, nil
		case 'F':
			return smk.KeyEnd, nil
		}
	case 'O':
		switch seq1 {
		case 'H':
			return smk.KeyHome, nil
		case 'F':
			return smk.KeyEnd, nil
		}
	}
	return smk.KeyEsc, nil
}
