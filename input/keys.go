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

package input

import (
	"fmt"
	"slices"
	"unicode"
)

// Key is the canonical name of a keyboard key. Names are lowercase and are
// layout dependent (the "a" key is the key that produces an 'a').
type Key string

// keyInfo is an entry in the key table.
type keyInfo struct {
	// the physical key code of the key on a US layout keyboard
	code string

	// the character produced by the key. zero if the key is not printable
	char rune
}

// the key table. every canonical key name is listed here.
var keys = map[Key]keyInfo{
	"space":     {code: "Space", char: ' '},
	"enter":     {code: "Enter"},
	"escape":    {code: "Escape"},
	"backspace": {code: "Backspace"},
	"tab":       {code: "Tab"},
	"shift":     {code: "ShiftLeft"},
	"control":   {code: "ControlLeft"},
	"alt":       {code: "AltLeft"},
	"meta":      {code: "MetaLeft"},
	"capslock":  {code: "CapsLock"},
	"left":      {code: "ArrowLeft"},
	"right":     {code: "ArrowRight"},
	"up":        {code: "ArrowUp"},
	"down":      {code: "ArrowDown"},
	"home":      {code: "Home"},
	"end":       {code: "End"},
	"pageup":    {code: "PageUp"},
	"pagedown":  {code: "PageDown"},
	"insert":    {code: "Insert"},
	"delete":    {code: "Delete"},
	"-":         {code: "Minus", char: '-'},
	"=":         {code: "Equal", char: '='},
	"[":         {code: "BracketLeft", char: '['},
	"]":         {code: "BracketRight", char: ']'},
	"\\":        {code: "Backslash", char: '\\'},
	";":         {code: "Semicolon", char: ';'},
	"'":         {code: "Quote", char: '\''},
	"`":         {code: "Backquote", char: '`'},
	",":         {code: "Comma", char: ','},
	".":         {code: "Period", char: '.'},
	"/":         {code: "Slash", char: '/'},
}

// index of codes to keys. built in init()
var codes = map[string]Key{}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		keys[Key(c)] = keyInfo{code: fmt.Sprintf("Key%c", unicode.ToUpper(c)), char: c}
	}
	for c := '0'; c <= '9'; c++ {
		keys[Key(c)] = keyInfo{code: fmt.Sprintf("Digit%c", c), char: c}
	}
	for i := 1; i <= 12; i++ {
		keys[Key(fmt.Sprintf("f%d", i))] = keyInfo{code: fmt.Sprintf("F%d", i)}
	}

	for k, i := range keys {
		codes[i.code] = k
	}

	// right hand modifiers are the same key as the left hand modifiers. the
	// key stays down until both are released
	codes["ShiftRight"] = "shift"
	codes["ControlRight"] = "control"
	codes["AltRight"] = "alt"
	codes["MetaRight"] = "meta"
}

// Keys returns every canonical key name in sorted order.
func Keys() []Key {
	k := make([]Key, 0, len(keys))
	for n := range keys {
		k = append(k, n)
	}
	slices.Sort(k)
	return k
}

// IsKey returns true if the name is a canonical key name.
func IsKey(name string) bool {
	_, ok := keys[Key(name)]
	return ok
}

// IsKeyCode returns true if the code is a recognised physical key code.
func IsKeyCode(code string) bool {
	_, ok := codes[code]
	return ok
}

// CodeForKey returns the physical key code for the key on a US layout
// keyboard. Useful for platforms that cannot supply key codes themselves.
func CodeForKey(k Key) (string, bool) {
	i, ok := keys[k]
	return i.code, ok
}

// KeyForCode returns the canonical key for a physical key code on a US layout
// keyboard.
func KeyForCode(code string) (Key, bool) {
	k, ok := codes[code]
	return k, ok
}

// KeyChar returns the character produced by a key. If shifted is true then
// the upper case character is returned for letter keys. Other keys are
// unaffected by shift, so Shift+1 produces '1' and not the '!' of a US
// layout.
func KeyChar(k Key, shifted bool) (rune, bool) {
	i, ok := keys[k]
	if !ok || i.char == 0 {
		return 0, false
	}
	if shifted {
		return unicode.ToUpper(i.char), true
	}
	return i.char, true
}

// MouseButton is the name of a mouse button.
type MouseButton string

// List of valid MouseButton values.
const (
	MouseLeft    MouseButton = "left"
	MouseMiddle  MouseButton = "middle"
	MouseRight   MouseButton = "right"
	MouseBack    MouseButton = "back"
	MouseForward MouseButton = "forward"
)

var mouseButtons = []MouseButton{MouseLeft, MouseMiddle, MouseRight, MouseBack, MouseForward}

// IsMouseButton returns true if the name is a mouse button name.
func IsMouseButton(name string) bool {
	for _, b := range mouseButtons {
		if string(b) == name {
			return true
		}
	}
	return false
}

// GamepadButton is the name of a button on a gamepad. The names are
// positional, so South is the bottom button of the face buttons whatever the
// label on the physical button.
type GamepadButton string

// List of valid GamepadButton values.
const (
	GamepadNorth     GamepadButton = "north"
	GamepadSouth     GamepadButton = "south"
	GamepadEast      GamepadButton = "east"
	GamepadWest      GamepadButton = "west"
	GamepadLShoulder GamepadButton = "lshoulder"
	GamepadRShoulder GamepadButton = "rshoulder"
	GamepadLTrigger  GamepadButton = "ltrigger"
	GamepadRTrigger  GamepadButton = "rtrigger"
	GamepadSelect    GamepadButton = "select"
	GamepadStart     GamepadButton = "start"
	GamepadLStick    GamepadButton = "lstick"
	GamepadRStick    GamepadButton = "rstick"
	GamepadDPadUp    GamepadButton = "dpad-up"
	GamepadDPadDown  GamepadButton = "dpad-down"
	GamepadDPadLeft  GamepadButton = "dpad-left"
	GamepadDPadRight GamepadButton = "dpad-right"
	GamepadHome      GamepadButton = "home"
)

var gamepadButtons = []GamepadButton{
	GamepadNorth, GamepadSouth, GamepadEast, GamepadWest,
	GamepadLShoulder, GamepadRShoulder, GamepadLTrigger, GamepadRTrigger,
	GamepadSelect, GamepadStart, GamepadLStick, GamepadRStick,
	GamepadDPadUp, GamepadDPadDown, GamepadDPadLeft, GamepadDPadRight,
	GamepadHome,
}

// IsGamepadButton returns true if the name is a gamepad button name.
func IsGamepadButton(name string) bool {
	for _, b := range gamepadButtons {
		if string(b) == name {
			return true
		}
	}
	return false
}

// Stick is the name of an analogue stick.
type Stick string

// List of valid Stick values.
const (
	StickLeft  Stick = "left"
	StickRight Stick = "right"
)
