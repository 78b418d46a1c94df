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

package events

// Kind identifies the type of notification.
type Kind int

// List of valid Kind values.
const (
	KeyDown Kind = iota
	KeyPress
	KeyPressRepeat
	KeyRelease
	MouseDown
	MousePress
	MouseRelease
	MouseMove
	CharInput
	TouchStart
	TouchMove
	TouchEnd
	Scroll
	Show
	Hide
	ButtonPress
	ButtonDown
	ButtonRelease
	GamepadButtonPress
	GamepadButtonDown
	GamepadButtonRelease
	GamepadStick
	GamepadConnect
	GamepadDisconnect
	Resize
	SoundEnd

	numKinds
)

var kindNames = [numKinds]string{
	"keydown", "keypress", "keypressrepeat", "keyrelease",
	"mousedown", "mousepress", "mouserelease", "mousemove",
	"charinput",
	"touchstart", "touchmove", "touchend",
	"scroll",
	"show", "hide",
	"buttonpress", "buttondown", "buttonrelease",
	"gamepadbuttonpress", "gamepadbuttondown", "gamepadbuttonrelease",
	"gamepadstick", "gamepadconnect", "gamepaddisconnect",
	"resize",
	"soundend",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// Event is implemented by all notification payloads.
type Event interface {
	Kind() Kind
}

// Simple is an event with no payload other than its Kind. Used for the Show
// and Hide notifications.
type Simple Kind

// Kind implements the Event interface.
func (e Simple) Kind() Kind {
	return Kind(e)
}
