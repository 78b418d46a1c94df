// This file is part of Gopher2D.
//
// Gopher2D is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2D is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2D.  If not, see <https://www.gnu.org/licenses/>.

package headless

import (
	"unicode"

	"github.com/jetsetilly/gopher2d/input"
	"github.com/jetsetilly/gopher2d/userinput"
)

// list of ASCII codes for non-printable characters
const (
	asciiInterrupt = 3
	asciiEOT       = 4
	asciiBackspace = 8
	asciiTab       = 9
	asciiLineFeed  = 10
	asciiReturn    = 13
	asciiEsc       = 27
	asciiDelete    = 127
)

// characters that can follow the CSI sequence (ESC [)
var cursorKeys = map[byte]input.Key{
	'A': "up",
	'B': "down",
	'C': "right",
	'D': "left",
	'H': "home",
	'F': "end",
}

// decode the characters read from the terminal into key down events. the
// quit value is true if the input contains an interrupt or end of
// transmission character. characters that do not correspond to a key are
// ignored.
func decode(b []byte) (evs []userinput.EventKeyboard, quit bool) {
	key := func(k input.Key, mod userinput.KeyMod) {
		evs = append(evs, userinput.EventKeyboard{Key: string(k), Down: true, Mod: mod})
	}

	for i := 0; i < len(b); i++ {
		c := b[i]
		switch c {
		case asciiInterrupt, asciiEOT:
			return evs, true
		case asciiBackspace, asciiDelete:
			key("backspace", userinput.KeyModNone)
		case asciiTab:
			key("tab", userinput.KeyModNone)
		case asciiLineFeed, asciiReturn:
			key("enter", userinput.KeyModNone)
		case asciiEsc:
			// a lone escape character is the escape key. otherwise it is the
			// start of a control sequence
			if i+2 < len(b) && b[i+1] == '[' {
				if k, ok := cursorKeys[b[i+2]]; ok {
					key(k, userinput.KeyModNone)
					i += 2
					continue
				}

				// the delete key is ESC [ 3 ~
				if b[i+2] == '3' && i+3 < len(b) && b[i+3] == '~' {
					key("delete", userinput.KeyModNone)
					i += 3
					continue
				}
			}
			key("escape", userinput.KeyModNone)
		default:
			r := rune(c)
			if unicode.IsUpper(r) {
				key(input.Key(unicode.ToLower(r)), userinput.KeyModShift)
				continue
			}
			if r == ' ' {
				key("space", userinput.KeyModNone)
				continue
			}
			if input.IsKey(string(r)) {
				key(input.Key(r), userinput.KeyModNone)
			}
		}
	}

	return evs, false
}
