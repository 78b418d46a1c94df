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
	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/events"
	"github.com/jetsetilly/gopher2d/userinput"
)

// Sentinal errors.
const (
	UnknownKey = "unknown key: %s"
)

// Process the events collected since the previous frame. Events are handled
// in the order they arrived. After the events the gamepads are polled and
// then the KeyDown, MouseDown and ButtonDown notifications are published for
// everything that is held.
//
// Mouse motion is coalesced. Only the last position is used and MouseMove is
// published at most once.
//
// An UnknownKey error means the platform has produced a key name that is not
// in the key table. This is a defect in the platform and processing stops
// immediately.
func (in *Input) Process(evs []userinput.Event) error {
	for _, ev := range evs {
		switch ev := ev.(type) {
		case userinput.EventKeyboard:
			if err := in.keyboardEvent(ev); err != nil {
				return err
			}

		case userinput.EventMouseButton:
			in.mouseButtonEvent(ev)

		case userinput.EventMouseMotion:
			in.pendingMove = Vec2{X: ev.X, Y: ev.Y}
			in.pendingMoved = true
			in.lastDevice = DeviceMouse

		case userinput.EventMouseWheel:
			in.lastDevice = DeviceMouse
			in.reg.Publish(ScrollEvent{Delta: Vec2{X: ev.DX, Y: ev.DY}})

		case userinput.EventTouch:
			in.touchEvent(ev)
		}
	}

	if in.pendingMoved {
		in.pendingMoved = false
		pos := in.toViewport(in.pendingMove.X, in.pendingMove.Y)
		in.mouseDelta = in.mouseDelta.Add(pos.Sub(in.mousePos))
		in.mousePos = pos
		in.mouseMoved = true
		in.reg.Publish(MouseMoveEvent{Position: in.mousePos, Delta: in.mouseDelta})
	}

	in.pollGamepads()

	for _, k := range in.keyboard.Down() {
		code, _ := CodeForKey(k)
		in.reg.Publish(KeyEvent{kind: events.KeyDown, Key: k, Code: code})
	}
	for _, b := range in.mouse.Down() {
		in.reg.Publish(MouseButtonEvent{kind: events.MouseDown, Button: b, Position: in.mousePos})
	}
	for _, n := range in.buttons.Down() {
		in.reg.Publish(ButtonEvent{kind: events.ButtonDown, Name: n})
	}

	return nil
}

// Reset the transient state at the end of the frame. Edge sets are cleared,
// the mouse delta and character buffer are emptied and stick values are
// zeroed, ready to be repopulated by the next poll.
func (in *Input) Reset() {
	in.keyboard.Update()
	in.codes.Update()
	in.mouse.Update()
	in.buttons.Update()

	in.gamepads.merged.state.Update()
	in.gamepads.merged.resetSticks()
	for _, g := range in.gamepads.entries {
		g.state.Update()
		g.resetSticks()
	}

	in.mouseDelta = Vec2{}
	in.mouseMoved = false
	in.chars.Reset()
}

// ReleaseAll releases every held key, mouse button and virtual button,
// publishing the release notifications. Used when the window loses focus,
// after which no release events would arrive for keys that are held.
func (in *Input) ReleaseAll() {
	for _, k := range in.keyboard.Down() {
		code, _ := CodeForKey(k)
		in.keyboard.Release(k)
		in.reg.Publish(KeyEvent{kind: events.KeyRelease, Key: k, Code: code})
	}
	for _, c := range in.codes.Down() {
		in.codes.Release(c)
	}
	for _, b := range in.mouse.Down() {
		in.mouse.Release(b)
		in.reg.Publish(MouseButtonEvent{kind: events.MouseRelease, Button: b, Position: in.mousePos})
	}

	// virtual buttons that are held only by gamepads are left alone
	in.releaseVirtual(in.buttons.Down())
}

func (in *Input) toViewport(x, y float64) Vec2 {
	if in.viewport == nil {
		return Vec2{X: x, Y: y}
	}
	return in.viewport.ToViewport(x, y)
}

func (in *Input) keyboardEvent(ev userinput.EventKeyboard) error {
	k := Key(ev.Key)
	if k == "" {
		var ok bool
		if k, ok = KeyForCode(ev.Code); !ok {
			return curated.Errorf(UnknownKey, ev.Code)
		}
	}
	if !IsKey(string(k)) {
		return curated.Errorf(UnknownKey, ev.Key)
	}

	code := ev.Code
	if code == "" {
		code, _ = CodeForKey(k)
	}

	in.lastDevice = DeviceKeyboard
	in.capsLock = ev.CapsLock

	if ev.Down {
		if ev.Repeat {
			in.keyboard.PressRepeat(k)
			in.reg.Publish(KeyEvent{kind: events.KeyPressRepeat, Key: k, Code: code})
			return nil
		}

		in.keyboard.Press(k)
		in.codes.Press(code)
		in.pressVirtual(in.bindings.ForKey(k))
		in.pressVirtual(in.bindings.ForCode(code))
		in.reg.Publish(KeyEvent{kind: events.KeyPress, Key: k, Code: code})
		in.reg.Publish(KeyEvent{kind: events.KeyPressRepeat, Key: k, Code: code})

		shifted := ev.Mod&userinput.KeyModShift == userinput.KeyModShift
		if ch, ok := KeyChar(k, shifted != in.capsLock); ok {
			in.chars.WriteRune(ch)
			in.reg.Publish(CharEvent{Char: ch})
		}

		return nil
	}

	in.codes.Release(code)
	if in.keyHeld(k) {
		in.releaseVirtual(in.bindings.ForCode(code))
		return nil
	}

	in.keyboard.Release(k)
	in.releaseVirtual(in.bindings.ForKey(k))
	in.releaseVirtual(in.bindings.ForCode(code))
	in.reg.Publish(KeyEvent{kind: events.KeyRelease, Key: k, Code: code})

	return nil
}

// keyHeld returns true if a physical key producing the key is still down.
// for example, the left shift key while the right shift key is released
func (in *Input) keyHeld(k Key) bool {
	for _, c := range in.codes.Down() {
		if kc, ok := KeyForCode(c); ok && kc == k {
			return true
		}
	}
	return false
}

// the mouse button numbers used by userinput.EventMouseButton
var mouseButtonIDs = map[userinput.MouseButton]MouseButton{
	userinput.MouseButtonLeft:    MouseLeft,
	userinput.MouseButtonMiddle:  MouseMiddle,
	userinput.MouseButtonRight:   MouseRight,
	userinput.MouseButtonBack:    MouseBack,
	userinput.MouseButtonForward: MouseForward,
}

func (in *Input) mouseButtonEvent(ev userinput.EventMouseButton) {
	b, ok := mouseButtonIDs[ev.Button]
	if !ok {
		return
	}

	in.lastDevice = DeviceMouse

	if ev.Down {
		in.mouse.Press(b)
		in.pressVirtual(in.bindings.ForMouse(b))
		in.reg.Publish(MouseButtonEvent{kind: events.MousePress, Button: b, Position: in.mousePos})
		return
	}

	in.mouse.Release(b)
	in.releaseVirtual(in.bindings.ForMouse(b))
	in.reg.Publish(MouseButtonEvent{kind: events.MouseRelease, Button: b, Position: in.mousePos})
}

func (in *Input) touchEvent(ev userinput.EventTouch) {
	in.lastDevice = DeviceTouch

	var kind events.Kind
	switch ev.Phase {
	case userinput.TouchBegin:
		kind = events.TouchStart
	case userinput.TouchMove:
		kind = events.TouchMove
	case userinput.TouchEnd:
		kind = events.TouchEnd
	default:
		return
	}

	in.reg.Publish(TouchEvent{kind: kind, ID: ev.ID, Position: in.toViewport(ev.X, ev.Y)})
}

// pressVirtual presses the named virtual buttons. a button that is already
// held by another input is not pressed again.
func (in *Input) pressVirtual(names []string) {
	for _, n := range names {
		if in.buttons.IsDown(n) {
			continue
		}
		in.buttons.Press(n)
		in.reg.Publish(ButtonEvent{kind: events.ButtonPress, Name: n})
	}
}

// releaseVirtual releases the named virtual buttons unless they are still
// held by another bound input. the physical state must be updated before
// calling this function.
func (in *Input) releaseVirtual(names []string) {
	for _, n := range names {
		if !in.buttons.IsDown(n) || in.virtualHeld(n) {
			continue
		}
		in.buttons.Release(n)
		in.reg.Publish(ButtonEvent{kind: events.ButtonRelease, Name: n})
	}
}

// virtualHeld returns true if any input bound to the virtual button is held.
func (in *Input) virtualHeld(name string) bool {
	bnd, ok := in.bindings.Binding(name)
	if !ok {
		return false
	}
	for _, k := range bnd.Keys {
		if in.keyboard.IsDown(Key(k)) {
			return true
		}
	}
	for _, c := range bnd.KeyCodes {
		if in.codes.IsDown(c) {
			return true
		}
	}
	for _, m := range bnd.Mouse {
		if in.mouse.IsDown(MouseButton(m)) {
			return true
		}
	}
	for _, g := range bnd.GamepadButtons {
		if in.gamepads.merged.state.IsDown(GamepadButton(g)) {
			return true
		}
	}
	return false
}
