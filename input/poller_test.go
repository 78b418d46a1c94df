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

package input_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher2d/events"
	"github.com/jetsetilly/gopher2d/input"
	"github.com/jetsetilly/gopher2d/test"
)

// fakeDevices is a GamepadDevices implementation controlled by the test.
type fakeDevices struct {
	pads     []input.RawGamepad
	opened   []int
	closed   []int
	failOpen int
}

func (f *fakeDevices) Gamepads() []input.RawGamepad {
	return f.pads
}

func (f *fakeDevices) Open(index int) error {
	if f.failOpen > 0 {
		f.failOpen--
		return errors.New("device busy")
	}
	f.opened = append(f.opened, index)
	return nil
}

func (f *fakeDevices) Close(index int) {
	f.closed = append(f.closed, index)
}

func standardPad(index int) input.RawGamepad {
	return input.RawGamepad{
		Index:   index,
		Name:    "Xbox Wireless Controller",
		Buttons: make([]bool, 17),
		Axes:    make([]float64, 4),
	}
}

func newPolledInput(t *testing.T, dev *fakeDevices, cfg input.BindingConfig) (*input.Input, *recorder) {
	t.Helper()

	b, err := input.NewBindings(cfg)
	test.DemandSuccess(t, err)

	reg := events.NewRegistry()
	in := input.NewInput(reg, input.Config{Bindings: b, Gamepads: dev})
	return in, newRecorder(reg)
}

func TestGamepadConnect(t *testing.T) {
	dev := &fakeDevices{pads: []input.RawGamepad{standardPad(0)}}
	in, rec := newPolledInput(t, dev, nil)

	test.DemandSuccess(t, in.Process(nil))
	test.ExpectEquality(t, rec.count(events.GamepadConnect), 1)
	test.ExpectEquality(t, len(dev.opened), 1)
	test.DemandEquality(t, len(in.Gamepads()), 1)
	test.ExpectSuccess(t, in.Gamepads()[0].Connected())
	test.ExpectEquality(t, in.Gamepads()[0].Name(), "Xbox Wireless Controller")

	// sticks are reported every frame
	test.ExpectEquality(t, rec.count(events.GamepadStick), 2)

	// polling again with no change produces no connection events
	in.Reset()
	rec.clear()
	test.DemandSuccess(t, in.Process(nil))
	test.ExpectEquality(t, rec.count(events.GamepadConnect), 0)
	test.ExpectEquality(t, rec.count(events.GamepadDisconnect), 0)
	test.ExpectEquality(t, rec.count(events.GamepadStick), 2)
	test.ExpectEquality(t, len(dev.opened), 1)

	// disconnect
	dev.pads = nil
	in.Reset()
	rec.clear()
	test.DemandSuccess(t, in.Process(nil))
	test.ExpectEquality(t, rec.count(events.GamepadDisconnect), 1)
	test.ExpectEquality(t, len(dev.closed), 1)
	test.ExpectEquality(t, len(in.Gamepads()), 0)
}

func TestGamepadOpenRetry(t *testing.T) {
	dev := &fakeDevices{pads: []input.RawGamepad{standardPad(0)}, failOpen: 1}
	in, rec := newPolledInput(t, dev, nil)

	test.DemandSuccess(t, in.Process(nil))
	test.ExpectEquality(t, rec.count(events.GamepadConnect), 0)

	test.DemandSuccess(t, in.Process(nil))
	test.ExpectEquality(t, rec.count(events.GamepadConnect), 1)
}

func TestGamepadButtons(t *testing.T) {
	dev := &fakeDevices{pads: []input.RawGamepad{standardPad(0)}}
	in, rec := newPolledInput(t, dev, input.BindingConfig{
		"jump": {GamepadButtons: []string{"south"}},
	})

	test.DemandSuccess(t, in.Process(nil))
	in.Reset()
	rec.clear()

	// press
	dev.pads[0].Buttons[0] = true
	test.DemandSuccess(t, in.Process(nil))
	test.ExpectEquality(t, rec.count(events.GamepadButtonPress), 1)
	test.ExpectEquality(t, rec.count(events.GamepadButtonDown), 0)
	test.ExpectEquality(t, rec.count(events.ButtonPress), 1)
	test.ExpectSuccess(t, in.IsGamepadPressed(input.GamepadSouth))
	test.ExpectSuccess(t, in.Gamepad(0).IsPressed(input.GamepadSouth))
	test.ExpectSuccess(t, in.IsButtonPressed("jump"))
	test.ExpectEquality(t, in.LastDevice(), input.DeviceGamepad)

	// held. polling again gives the down notification only
	in.Reset()
	rec.clear()
	test.DemandSuccess(t, in.Process(nil))
	test.ExpectEquality(t, rec.count(events.GamepadButtonPress), 0)
	test.ExpectEquality(t, rec.count(events.GamepadButtonDown), 1)
	test.ExpectEquality(t, rec.count(events.ButtonDown), 1)
	test.ExpectSuccess(t, in.IsGamepadDown(input.GamepadSouth))

	// release
	dev.pads[0].Buttons[0] = false
	in.Reset()
	rec.clear()
	test.DemandSuccess(t, in.Process(nil))
	test.ExpectEquality(t, rec.count(events.GamepadButtonRelease), 1)
	test.ExpectEquality(t, rec.count(events.ButtonRelease), 1)
	test.ExpectSuccess(t, in.IsGamepadReleased(input.GamepadSouth))
	test.ExpectFailure(t, in.IsGamepadDown())
}

func TestGamepadMerged(t *testing.T) {
	dev := &fakeDevices{pads: []input.RawGamepad{standardPad(0), standardPad(1)}}
	in, _ := newPolledInput(t, dev, nil)

	dev.pads[0].Buttons[9] = true
	dev.pads[1].Buttons[9] = true
	dev.pads[0].Axes[0] = 0.25
	dev.pads[1].Axes[0] = -0.75
	test.DemandSuccess(t, in.Process(nil))

	test.ExpectSuccess(t, in.IsGamepadDown(input.GamepadStart))
	test.ExpectEquality(t, in.Stick(input.StickLeft), input.Vec2{X: -0.75, Y: 0})
	test.ExpectEquality(t, in.Gamepad(0).Stick(input.StickLeft), input.Vec2{X: 0.25, Y: 0})

	// releasing on one gamepad leaves the merged button held
	dev.pads[0].Buttons[9] = false
	in.Reset()
	test.DemandSuccess(t, in.Process(nil))
	test.ExpectSuccess(t, in.IsGamepadDown(input.GamepadStart))
	test.ExpectFailure(t, in.Gamepad(0).IsDown(input.GamepadStart))

	// disconnecting the other gamepad releases it
	dev.pads = dev.pads[:1]
	in.Reset()
	test.DemandSuccess(t, in.Process(nil))
	test.ExpectFailure(t, in.IsGamepadDown(input.GamepadStart))
	test.ExpectFailure(t, in.Gamepad(1).Connected())
	test.ExpectFailure(t, in.Gamepad(1).IsDown())

	// sticks are zeroed by Reset() and repopulated by polling
	in.Reset()
	test.ExpectEquality(t, in.Stick(input.StickLeft), input.Vec2{})
	test.DemandSuccess(t, in.Process(nil))
	test.ExpectEquality(t, in.Stick(input.StickLeft), input.Vec2{X: 0.25, Y: 0})
}

func TestGamepadMergedPress(t *testing.T) {
	dev := &fakeDevices{pads: []input.RawGamepad{standardPad(0), standardPad(1)}}
	in, rec := newPolledInput(t, dev, nil)

	dev.pads[0].Buttons[0] = true
	test.DemandSuccess(t, in.Process(nil))
	test.ExpectSuccess(t, in.IsGamepadPressed(input.GamepadSouth))

	// a press on the second gamepad is a new merged press even though the
	// first gamepad is still holding the button
	dev.pads[1].Buttons[0] = true
	in.Reset()
	rec.clear()
	test.DemandSuccess(t, in.Process(nil))
	test.ExpectSuccess(t, in.IsGamepadPressed(input.GamepadSouth))
	test.ExpectSuccess(t, in.Gamepad(1).IsPressed(input.GamepadSouth))
	test.ExpectFailure(t, in.Gamepad(0).IsPressed(input.GamepadSouth))
	test.ExpectEquality(t, rec.count(events.GamepadButtonPress), 1)

	// releasing on the first gamepad leaves the merged button down
	dev.pads[0].Buttons[0] = false
	in.Reset()
	test.DemandSuccess(t, in.Process(nil))
	test.ExpectFailure(t, in.IsGamepadReleased(input.GamepadSouth))
	test.ExpectSuccess(t, in.IsGamepadDown(input.GamepadSouth))
}

func TestGamepadMapping(t *testing.T) {
	pro := input.RawGamepad{
		Index:   0,
		Name:    "Nintendo Switch Pro Controller",
		Buttons: make([]bool, 17),
		Axes:    make([]float64, 4),
	}
	dev := &fakeDevices{pads: []input.RawGamepad{pro}}
	in, _ := newPolledInput(t, dev, nil)

	// index 0 is the B button which is in the east position on a Pro
	// Controller
	dev.pads[0].Buttons[0] = true
	test.DemandSuccess(t, in.Process(nil))
	test.ExpectSuccess(t, in.IsGamepadDown(input.GamepadEast))
	test.ExpectFailure(t, in.IsGamepadDown(input.GamepadSouth))

	// a custom mapping takes priority over the built in mapping
	in.SetGamepadMapping("Nintendo Switch Pro Controller", input.GamepadMapping{
		Buttons: map[int]input.GamepadButton{
			0: input.GamepadSouth,
		},
	})
	dev.pads[0].Buttons[0] = false
	in.Reset()
	test.DemandSuccess(t, in.Process(nil))
	dev.pads[0].Buttons[0] = true
	in.Reset()
	test.DemandSuccess(t, in.Process(nil))
	test.ExpectSuccess(t, in.IsGamepadDown(input.GamepadSouth))
}

func TestGamepadShortArrays(t *testing.T) {
	// a device that reports fewer buttons and axes than the mapping expects
	dev := &fakeDevices{pads: []input.RawGamepad{{
		Index:   3,
		Name:    "Generic USB Joystick",
		Buttons: []bool{true, true},
		Axes:    []float64{0.5, 0.5},
	}}}
	in, rec := newPolledInput(t, dev, nil)

	test.DemandSuccess(t, in.Process(nil))
	test.ExpectEquality(t, rec.count(events.GamepadButtonPress), 2)
	test.ExpectEquality(t, rec.count(events.GamepadStick), 1)
	test.ExpectEquality(t, in.Stick(input.StickLeft), input.Vec2{X: 0.5, Y: 0.5})
}

func TestGamepadDeadzone(t *testing.T) {
	pad := standardPad(0)
	pad.Axes[0] = 0.05
	pad.Axes[1] = -0.5
	dev := &fakeDevices{pads: []input.RawGamepad{pad}}
	in, _ := newPolledInput(t, dev, nil)
	in.SetDeadzone(0.1)

	test.DemandSuccess(t, in.Process(nil))
	test.ExpectEquality(t, in.Stick(input.StickLeft), input.Vec2{X: 0, Y: -0.5})
}
