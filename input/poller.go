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
	"slices"

	"github.com/jetsetilly/gopher2d/events"
	"github.com/jetsetilly/gopher2d/logger"
)

// RawGamepad is the state of a gamepad as reported by the device layer. Axis
// values are normalised to the range -1 to 1.
type RawGamepad struct {
	Index   int
	Name    string
	Buttons []bool
	Axes    []float64

	// the platform has already arranged the buttons and axes in the order
	// of StandardMapping. only a custom mapping overrides this
	Standard bool
}

// GamepadDevices is implemented by the platform's gamepad layer. The device
// list is polled once per frame.
type GamepadDevices interface {
	// the currently attached devices
	Gamepads() []RawGamepad

	// open the device with the index. called once when a device is first
	// seen. if it fails it is tried again on the next poll
	Open(index int) error

	// close the device with the index. called after the device has
	// disappeared from the device list
	Close(index int)
}

// pollGamepads diffs the device list against the gamepad table and then
// updates the state of every tracked gamepad.
func (in *Input) pollGamepads() {
	if in.devices == nil {
		return
	}

	live := in.devices.Gamepads()

	// detach gamepads that are no longer in the device list. a device in the
	// same slot with a different name is treated as a new device
	for _, idx := range slices.Clone(in.gamepads.order) {
		i := slices.IndexFunc(live, func(r RawGamepad) bool {
			return r.Index == idx
		})
		if i == -1 || live[i].Name != in.gamepads.entries[idx].name {
			in.detachGamepad(idx)
		}
	}

	// attach new gamepads
	for _, raw := range live {
		if _, ok := in.gamepads.entries[raw.Index]; ok {
			continue
		}
		if err := in.devices.Open(raw.Index); err != nil {
			logger.Logf(logger.Allow, "gamepad", "cannot open %s (%d): %v", raw.Name, raw.Index, err)
			continue
		}
		in.gamepads.add(raw.Index, raw.Name)
		logger.Logf(logger.Allow, "gamepad", "connected %s (%d)", raw.Name, raw.Index)
		in.reg.Publish(GamepadEvent{kind: events.GamepadConnect, Gamepad: in.Gamepad(raw.Index)})
	}

	// update state
	for _, raw := range live {
		g, ok := in.gamepads.entries[raw.Index]
		if !ok {
			continue
		}

		m := in.mappingFor(raw.Name, raw.Standard)
		pad := in.Gamepad(raw.Index)

		for _, bi := range m.buttonIndices() {
			if bi < 0 || bi >= len(raw.Buttons) {
				continue
			}
			in.updateGamepadButton(pad, g, m.Buttons[bi], raw.Buttons[bi])
		}

		for _, s := range m.stickNames() {
			axes := m.Sticks[s]
			if axes.X < 0 || axes.X >= len(raw.Axes) || axes.Y < 0 || axes.Y >= len(raw.Axes) {
				continue
			}

			v := Vec2{X: in.applyDeadzone(raw.Axes[axes.X]), Y: in.applyDeadzone(raw.Axes[axes.Y])}
			g.sticks[s] = v

			// the merged stick is the stick with the greatest deflection
			if v.Len() >= in.gamepads.merged.sticks[s].Len() {
				in.gamepads.merged.sticks[s] = v
			}

			in.reg.Publish(GamepadStickEvent{Gamepad: pad, Stick: s, Value: v})
		}
	}
}

func (in *Input) updateGamepadButton(pad Gamepad, g *gamepadState, b GamepadButton, pressed bool) {
	wasDown := g.state.IsDown(b)

	switch {
	case pressed && wasDown:
		in.reg.Publish(GamepadButtonEvent{kind: events.GamepadButtonDown, Gamepad: pad, Button: b})

	case pressed && !wasDown:
		in.lastDevice = DeviceGamepad
		g.state.Press(b)
		in.gamepads.merged.state.Press(b)
		in.pressVirtual(in.bindings.ForGamepad(b))
		in.reg.Publish(GamepadButtonEvent{kind: events.GamepadButtonPress, Gamepad: pad, Button: b})

	case !pressed && wasDown:
		in.releaseGamepadButton(pad, g, b)
	}
}

func (in *Input) releaseGamepadButton(pad Gamepad, g *gamepadState, b GamepadButton) {
	g.state.Release(b)
	if !in.gamepads.heldElsewhere(b, pad.Index) {
		in.gamepads.merged.state.Release(b)
	}
	in.releaseVirtual(in.bindings.ForGamepad(b))
	in.reg.Publish(GamepadButtonEvent{kind: events.GamepadButtonRelease, Gamepad: pad, Button: b})
}

// detachGamepad releases any held buttons, removes the gamepad from the table
// and closes the device.
func (in *Input) detachGamepad(idx int) {
	g := in.gamepads.entries[idx]
	pad := in.Gamepad(idx)

	for _, b := range g.state.Down() {
		in.releaseGamepadButton(pad, g, b)
	}

	name := g.name
	in.gamepads.remove(idx)
	in.devices.Close(idx)

	logger.Logf(logger.Allow, "gamepad", "disconnected %s (%d)", name, idx)
	in.reg.Publish(GamepadEvent{kind: events.GamepadDisconnect, Gamepad: pad})
}

func (in *Input) applyDeadzone(v float64) float64 {
	if math.Abs(v) < in.deadzone {
		return 0
	}
	return min(max(v, -1), 1)
}
