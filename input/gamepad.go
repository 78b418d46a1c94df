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

import "slices"

// gamepadState is the state of a single gamepad or of the merged view of all
// gamepads.
type gamepadState struct {
	name   string
	state  ButtonState[GamepadButton]
	sticks map[Stick]Vec2
}

func newGamepadState(name string) *gamepadState {
	return &gamepadState{
		name:   name,
		sticks: make(map[Stick]Vec2),
	}
}

func (g *gamepadState) resetSticks() {
	for s := range g.sticks {
		g.sticks[s] = Vec2{}
	}
}

// gamepadTable is the arena of connected gamepads, keyed by device index.
// Gamepad handles refer to entries by index only.
type gamepadTable struct {
	entries map[int]*gamepadState

	// indices in the order they were connected
	order []int

	merged *gamepadState
}

func newGamepadTable() gamepadTable {
	return gamepadTable{
		entries: make(map[int]*gamepadState),
		merged:  newGamepadState("merged"),
	}
}

func (t *gamepadTable) add(index int, name string) *gamepadState {
	g := newGamepadState(name)
	t.entries[index] = g
	t.order = append(t.order, index)
	return g
}

func (t *gamepadTable) remove(index int) {
	delete(t.entries, index)
	t.order = slices.DeleteFunc(t.order, func(i int) bool {
		return i == index
	})
}

// heldElsewhere returns true if the button is held by any gamepad other than
// the one with the excluded index.
func (t *gamepadTable) heldElsewhere(b GamepadButton, exclude int) bool {
	for idx, g := range t.entries {
		if idx != exclude && g.state.IsDown(b) {
			return true
		}
	}
	return false
}

// Gamepad is a handle for a connected gamepad. It is a lookup by index into
// the gamepad table of the Input that created it and does not own any state.
// A handle for a disconnected gamepad is valid but reports nothing held.
type Gamepad struct {
	Index int
	owner *Input
}

func (g Gamepad) entry() *gamepadState {
	if g.owner == nil {
		return nil
	}
	return g.owner.gamepads.entries[g.Index]
}

// Connected returns true if a gamepad is connected at the handle's index.
func (g Gamepad) Connected() bool {
	return g.entry() != nil
}

// Name returns the device name of the gamepad.
func (g Gamepad) Name() string {
	if e := g.entry(); e != nil {
		return e.name
	}
	return ""
}

// IsPressed returns true if any of the buttons were pressed this frame.
func (g Gamepad) IsPressed(b ...GamepadButton) bool {
	if e := g.entry(); e != nil {
		return e.state.IsPressed(b...)
	}
	return false
}

// IsReleased returns true if any of the buttons were released this frame.
func (g Gamepad) IsReleased(b ...GamepadButton) bool {
	if e := g.entry(); e != nil {
		return e.state.IsReleased(b...)
	}
	return false
}

// IsDown returns true if any of the buttons are held.
func (g Gamepad) IsDown(b ...GamepadButton) bool {
	if e := g.entry(); e != nil {
		return e.state.IsDown(b...)
	}
	return false
}

// Stick returns the current value of the stick.
func (g Gamepad) Stick(s Stick) Vec2 {
	if e := g.entry(); e != nil {
		return e.sticks[s]
	}
	return Vec2{}
}
