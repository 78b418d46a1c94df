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
	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/input"
	"github.com/jetsetilly/gopher2d/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// game controller buttons in the order of input.StandardMapping. triggers are
// axes in SDL and are added separately
var standardButtons = []sdl.GameControllerButton{
	sdl.CONTROLLER_BUTTON_A,
	sdl.CONTROLLER_BUTTON_B,
	sdl.CONTROLLER_BUTTON_X,
	sdl.CONTROLLER_BUTTON_Y,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER,
	sdl.CONTROLLER_BUTTON_INVALID,
	sdl.CONTROLLER_BUTTON_INVALID,
	sdl.CONTROLLER_BUTTON_BACK,
	sdl.CONTROLLER_BUTTON_START,
	sdl.CONTROLLER_BUTTON_LEFTSTICK,
	sdl.CONTROLLER_BUTTON_RIGHTSTICK,
	sdl.CONTROLLER_BUTTON_DPAD_UP,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT,
	sdl.CONTROLLER_BUTTON_GUIDE,
}

// index of the trigger buttons in the standard layout
const (
	standardLTrigger = 6
	standardRTrigger = 7
)

// a trigger axis value above this is considered a button press
const triggerThreshold = 0.5

var standardAxes = []sdl.GameControllerAxis{
	sdl.CONTROLLER_AXIS_LEFTX,
	sdl.CONTROLLER_AXIS_LEFTY,
	sdl.CONTROLLER_AXIS_RIGHTX,
	sdl.CONTROLLER_AXIS_RIGHTY,
}

// an open device. devices recognised by SDL as game controllers are
// presented in the standard layout. other joysticks are presented with their
// raw button and axis indices
type pad struct {
	name       string
	controller *sdl.GameController
	joystick   *sdl.Joystick
}

func (p *pad) close() {
	if p.controller != nil {
		p.controller.Close()
	} else if p.joystick != nil {
		p.joystick.Close()
	}
}

func axisValue(v int16) float64 {
	return max(-1, float64(v)/32767)
}

func (p *pad) raw(index int) input.RawGamepad {
	r := input.RawGamepad{
		Index:    index,
		Name:     p.name,
		Standard: p.controller != nil,
	}

	if c := p.controller; c != nil {
		r.Buttons = make([]bool, len(standardButtons))
		for i, b := range standardButtons {
			if b != sdl.CONTROLLER_BUTTON_INVALID {
				r.Buttons[i] = c.Button(b) != 0
			}
		}
		r.Buttons[standardLTrigger] = axisValue(c.Axis(sdl.CONTROLLER_AXIS_TRIGGERLEFT)) > triggerThreshold
		r.Buttons[standardRTrigger] = axisValue(c.Axis(sdl.CONTROLLER_AXIS_TRIGGERRIGHT)) > triggerThreshold

		r.Axes = make([]float64, len(standardAxes))
		for i, a := range standardAxes {
			r.Axes[i] = axisValue(c.Axis(a))
		}
		return r
	}

	j := p.joystick
	r.Buttons = make([]bool, j.NumButtons())
	for i := range r.Buttons {
		r.Buttons[i] = j.Button(i) != 0
	}
	r.Axes = make([]float64, j.NumAxes())
	for i := range r.Axes {
		r.Axes[i] = axisValue(j.Axis(i))
	}
	return r
}

// Gamepads implements the input.GamepadDevices interface. The index of each
// gamepad is the SDL joystick instance ID, which does not change for as long
// as the device is attached.
func (plt *Platform) Gamepads() []input.RawGamepad {
	clear(plt.deviceIndex)

	var l []input.RawGamepad
	for i := range sdl.NumJoysticks() {
		id := int(sdl.JoystickGetDeviceInstanceID(i))
		plt.deviceIndex[id] = i

		if p, ok := plt.pads[id]; ok {
			l = append(l, p.raw(id))
		} else {
			l = append(l, input.RawGamepad{
				Index: id,
				Name:  sdl.JoystickNameForIndex(i),
			})
		}
	}

	return l
}

// Open implements the input.GamepadDevices interface.
func (plt *Platform) Open(index int) error {
	if _, ok := plt.pads[index]; ok {
		return nil
	}

	dev, ok := plt.deviceIndex[index]
	if !ok {
		return curated.Errorf("sdl: %v", "gamepad not present")
	}

	p := &pad{}
	if sdl.IsGameController(dev) {
		p.controller = sdl.GameControllerOpen(dev)
		if p.controller == nil {
			return curated.Errorf("sdl: %v", sdl.GetError())
		}
		p.name = p.controller.Name()
		logger.Logf(logger.Allow, "sdl", "game controller: %s", p.name)
	} else {
		p.joystick = sdl.JoystickOpen(dev)
		if p.joystick == nil {
			return curated.Errorf("sdl: %v", sdl.GetError())
		}
		p.name = p.joystick.Name()
		logger.Logf(logger.Allow, "sdl", "joystick: %s", p.name)
	}

	plt.pads[index] = p
	return nil
}

// Close implements the input.GamepadDevices interface.
func (plt *Platform) Close(index int) {
	if p, ok := plt.pads[index]; ok {
		p.close()
		delete(plt.pads, index)
	}
}
