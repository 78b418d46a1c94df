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
	"math"

	"github.com/jetsetilly/gopher2d/events"
)

// Vec2 is a two dimensional vector. Used for positions, deltas and stick
// values.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns the sum of the two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of the two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Len returns the length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Device is the class of the most recently used input device.
type Device int

// List of valid Device values.
const (
	DeviceNone Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceGamepad
	DeviceTouch
)

func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "keyboard"
	case DeviceMouse:
		return "mouse"
	case DeviceGamepad:
		return "gamepad"
	case DeviceTouch:
		return "touch"
	}
	return "none"
}

// KeyEvent is published for the KeyDown, KeyPress, KeyPressRepeat and
// KeyRelease kinds.
type KeyEvent struct {
	kind events.Kind
	Key  Key
	Code string
}

// Kind implements the events.Event interface.
func (e KeyEvent) Kind() events.Kind { return e.kind }

// MouseButtonEvent is published for the MouseDown, MousePress and
// MouseRelease kinds.
type MouseButtonEvent struct {
	kind     events.Kind
	Button   MouseButton
	Position Vec2
}

// Kind implements the events.Event interface.
func (e MouseButtonEvent) Kind() events.Kind { return e.kind }

// MouseMoveEvent is published at most once per frame. Position is in
// viewport coordinates.
type MouseMoveEvent struct {
	Position Vec2
	Delta    Vec2
}

// Kind implements the events.Event interface.
func (e MouseMoveEvent) Kind() events.Kind { return events.MouseMove }

// CharEvent is published when a key press produces a printable character.
type CharEvent struct {
	Char rune
}

// Kind implements the events.Event interface.
func (e CharEvent) Kind() events.Kind { return events.CharInput }

// TouchEvent is published for the TouchStart, TouchMove and TouchEnd kinds.
type TouchEvent struct {
	kind     events.Kind
	ID       int
	Position Vec2
}

// Kind implements the events.Event interface.
func (e TouchEvent) Kind() events.Kind { return e.kind }

// ScrollEvent is published for every wheel event.
type ScrollEvent struct {
	Delta Vec2
}

// Kind implements the events.Event interface.
func (e ScrollEvent) Kind() events.Kind { return events.Scroll }

// ButtonEvent is published for the ButtonPress, ButtonDown and
// ButtonRelease kinds. Name is the virtual button name.
type ButtonEvent struct {
	kind events.Kind
	Name string
}

// Kind implements the events.Event interface.
func (e ButtonEvent) Kind() events.Kind { return e.kind }

// GamepadButtonEvent is published for the GamepadButtonPress,
// GamepadButtonDown and GamepadButtonRelease kinds.
type GamepadButtonEvent struct {
	kind    events.Kind
	Gamepad Gamepad
	Button  GamepadButton
}

// Kind implements the events.Event interface.
func (e GamepadButtonEvent) Kind() events.Kind { return e.kind }

// GamepadStickEvent is published every frame for every stick of every
// connected gamepad.
type GamepadStickEvent struct {
	Gamepad Gamepad
	Stick   Stick
	Value   Vec2
}

// Kind implements the events.Event interface.
func (e GamepadStickEvent) Kind() events.Kind { return events.GamepadStick }

// GamepadEvent is published for the GamepadConnect and GamepadDisconnect
// kinds.
type GamepadEvent struct {
	kind    events.Kind
	Gamepad Gamepad
}

// Kind implements the events.Event interface.
func (e GamepadEvent) Kind() events.Kind { return e.kind }
