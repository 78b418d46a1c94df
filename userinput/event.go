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

package userinput

// Event represents all the different type of events that can occur in the
// platform layer. The list of event types that implement the interface is
// closed and is given below.
type Event interface {
	event()
}

// KeyMod identifies modifier keys held during a keyboard event. Values can be
// combined.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModShift KeyMod = 1 << iota
	KeyModCtrl
	KeyModAlt
	KeyModMeta

	KeyModNone KeyMod = 0
)

// EventKeyboard is a key going down or coming up. Key is the canonical key
// name and Code is the physical key code, which may be empty if the platform
// cannot supply one.
type EventKeyboard struct {
	Key      string
	Code     string
	Down     bool
	Repeat   bool
	Mod      KeyMod
	CapsLock bool
}

// MouseButton identifies a mouse button by the platform's button number. The
// input package decides whether the number is recognised.
type MouseButton int

// List of MouseButton values for the commonly supported buttons.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonBack
	MouseButtonForward
)

// EventMouseButton is a mouse button being pressed or released.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

// EventMouseMotion gives the position of the mouse in window pixels.
type EventMouseMotion struct {
	X float64
	Y float64
}

// EventMouseWheel is a scroll delta.
type EventMouseWheel struct {
	DX float64
	DY float64
}

// TouchPhase is the stage in a touch's life.
type TouchPhase int

// List of valid TouchPhase values.
const (
	TouchBegin TouchPhase = iota
	TouchMove
	TouchEnd
)

// EventTouch is a single touch point in window pixels.
type EventTouch struct {
	Phase TouchPhase
	ID    int
	X     float64
	Y     float64
}

// EventFocus is sent when the window gains or loses input focus.
type EventFocus struct {
	Focused bool
}

// EventVisibility is sent when the window is shown or hidden (minimised).
type EventVisibility struct {
	Visible bool
}

// EventResize is sent when the size of the window changes.
type EventResize struct {
	W int
	H int
}

// EventQuit is sent when the user asks for the window to be closed.
type EventQuit struct{}

func (EventKeyboard) event()    {}
func (EventMouseButton) event() {}
func (EventMouseMotion) event() {}
func (EventMouseWheel) event()  {}
func (EventTouch) event()       {}
func (EventFocus) event()       {}
func (EventVisibility) event()  {}
func (EventResize) event()      {}
func (EventQuit) event()        {}
