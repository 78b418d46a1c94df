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

package sdlplatform

import (
	"fmt"

	"github.com/jetsetilly/gopher2d/input"
	"github.com/jetsetilly/gopher2d/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// physical key codes for SDL scancodes. letters, digits and function keys are
// added in init()
var scancodes = map[sdl.Scancode]string{
	sdl.SCANCODE_SPACE:        "Space",
	sdl.SCANCODE_RETURN:       "Enter",
	sdl.SCANCODE_ESCAPE:       "Escape",
	sdl.SCANCODE_BACKSPACE:    "Backspace",
	sdl.SCANCODE_TAB:          "Tab",
	sdl.SCANCODE_LSHIFT:       "ShiftLeft",
	sdl.SCANCODE_RSHIFT:       "ShiftRight",
	sdl.SCANCODE_LCTRL:        "ControlLeft",
	sdl.SCANCODE_RCTRL:        "ControlRight",
	sdl.SCANCODE_LALT:         "AltLeft",
	sdl.SCANCODE_RALT:         "AltRight",
	sdl.SCANCODE_LGUI:         "MetaLeft",
	sdl.SCANCODE_RGUI:         "MetaRight",
	sdl.SCANCODE_CAPSLOCK:     "CapsLock",
	sdl.SCANCODE_LEFT:         "ArrowLeft",
	sdl.SCANCODE_RIGHT:        "ArrowRight",
	sdl.SCANCODE_UP:           "ArrowUp",
	sdl.SCANCODE_DOWN:         "ArrowDown",
	sdl.SCANCODE_HOME:         "Home",
	sdl.SCANCODE_END:          "End",
	sdl.SCANCODE_PAGEUP:       "PageUp",
	sdl.SCANCODE_PAGEDOWN:     "PageDown",
	sdl.SCANCODE_INSERT:       "Insert",
	sdl.SCANCODE_DELETE:       "Delete",
	sdl.SCANCODE_MINUS:        "Minus",
	sdl.SCANCODE_EQUALS:       "Equal",
	sdl.SCANCODE_LEFTBRACKET:  "BracketLeft",
	sdl.SCANCODE_RIGHTBRACKET: "BracketRight",
	sdl.SCANCODE_BACKSLASH:    "Backslash",
	sdl.SCANCODE_SEMICOLON:    "Semicolon",
	sdl.SCANCODE_APOSTROPHE:   "Quote",
	sdl.SCANCODE_GRAVE:        "Backquote",
	sdl.SCANCODE_COMMA:        "Comma",
	sdl.SCANCODE_PERIOD:       "Period",
	sdl.SCANCODE_SLASH:        "Slash",
}

func init() {
	for i := range 26 {
		scancodes[sdl.SCANCODE_A+sdl.Scancode(i)] = fmt.Sprintf("Key%c", 'A'+i)
	}
	for i := range 9 {
		scancodes[sdl.SCANCODE_1+sdl.Scancode(i)] = fmt.Sprintf("Digit%d", i+1)
	}
	scancodes[sdl.SCANCODE_0] = "Digit0"
	for i := range 12 {
		scancodes[sdl.SCANCODE_F1+sdl.Scancode(i)] = fmt.Sprintf("F%d", i+1)
	}
}

// translateKey converts an SDL keyboard event. Keys that the input package
// does not know about are not translated.
func translateKey(ev *sdl.KeyboardEvent) (userinput.EventKeyboard, bool) {
	code, ok := scancodes[ev.Keysym.Scancode]
	if !ok || !input.IsKeyCode(code) {
		return userinput.EventKeyboard{}, false
	}

	kev := userinput.EventKeyboard{
		Code:     code,
		Down:     ev.Type == sdl.KEYDOWN,
		Repeat:   ev.Repeat != 0,
		CapsLock: ev.Keysym.Mod&sdl.KMOD_CAPS != 0,
	}

	// the keycode of a printable key is the character it produces with the
	// current keyboard layout
	if sym := ev.Keysym.Sym; sym >= 0x20 && sym < 0x7f {
		if k := string(rune(sym)); input.IsKey(k) {
			kev.Key = k
		}
	}

	mod := ev.Keysym.Mod
	if mod&sdl.KMOD_SHIFT != 0 {
		kev.Mod |= userinput.KeyModShift
	}
	if mod&sdl.KMOD_CTRL != 0 {
		kev.Mod |= userinput.KeyModCtrl
	}
	if mod&sdl.KMOD_ALT != 0 {
		kev.Mod |= userinput.KeyModAlt
	}
	if mod&sdl.KMOD_GUI != 0 {
		kev.Mod |= userinput.KeyModMeta
	}

	return kev, true
}
