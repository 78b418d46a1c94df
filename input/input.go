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
	"slices"
	"strings"

	"github.com/jetsetilly/gopher2d/events"
)

// Viewport converts window pixel coordinates to viewport coordinates. It is
// implemented by the graphics collaborator.
type Viewport interface {
	ToViewport(x, y float64) Vec2
}

// Config for NewInput(). All fields are optional.
type Config struct {
	// virtual button bindings
	Bindings *Bindings

	// coordinate transform for mouse and touch positions. if nil then window
	// coordinates are used unchanged
	Viewport Viewport

	// gamepad device enumeration. if nil then no gamepads will ever be
	// connected
	Gamepads GamepadDevices
}

// Input is the input context. It holds the state of every input device and
// the virtual buttons, and publishes notifications to the registry.
//
// Input is not safe for concurrent use. Events from the platform should be
// collected with a userinput.Queue and given to Process() once per frame.
type Input struct {
	reg      *events.Registry
	bindings *Bindings
	viewport Viewport
	devices  GamepadDevices

	keyboard ButtonState[Key]
	codes    ButtonState[string]
	mouse    ButtonState[MouseButton]
	buttons  ButtonState[string]

	gamepads gamepadTable

	mousePos   Vec2
	mouseDelta Vec2
	mouseMoved bool

	// the most recent raw mouse position since the last call to Process()
	pendingMove  Vec2
	pendingMoved bool

	capsLock bool
	chars    strings.Builder

	lastDevice Device

	customMappings map[string]GamepadMapping
	deadzone       float64
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(reg *events.Registry, cfg Config) *Input {
	return &Input{
		reg:            reg,
		bindings:       cfg.Bindings,
		viewport:       cfg.Viewport,
		devices:        cfg.Gamepads,
		gamepads:       newGamepadTable(),
		customMappings: make(map[string]GamepadMapping),
	}
}

// SetBindings replaces the virtual button bindings. The state of all virtual
// buttons is reset.
func (in *Input) SetBindings(b *Bindings) {
	in.bindings = b
	in.buttons.Reset()
}

// Bindings returns the current virtual button bindings.
func (in *Input) Bindings() *Bindings {
	return in.bindings
}

// SetDeadzone sets the value below which a stick axis is reported as zero.
func (in *Input) SetDeadzone(dz float64) {
	in.deadzone = min(max(dz, 0.0), 1.0)
}

// Deadzone returns the current stick deadzone.
func (in *Input) Deadzone() float64 {
	return in.deadzone
}

// IsKeyPressed returns true if any of the keys were pressed this frame. With
// no keys it returns true if any key was pressed.
func (in *Input) IsKeyPressed(k ...Key) bool { return in.keyboard.IsPressed(k...) }

// IsKeyPressedRepeat returns true if any of the keys were pressed or
// auto-repeated this frame.
func (in *Input) IsKeyPressedRepeat(k ...Key) bool { return in.keyboard.IsPressedRepeat(k...) }

// IsKeyReleased returns true if any of the keys were released this frame.
func (in *Input) IsKeyReleased(k ...Key) bool { return in.keyboard.IsReleased(k...) }

// IsKeyDown returns true if any of the keys are held.
func (in *Input) IsKeyDown(k ...Key) bool { return in.keyboard.IsDown(k...) }

// IsCodeDown returns true if any of the physical key codes are held.
func (in *Input) IsCodeDown(c ...string) bool { return in.codes.IsDown(c...) }

// KeysDown returns the held keys in the order they were pressed.
func (in *Input) KeysDown() []Key { return in.keyboard.Down() }

// IsMousePressed returns true if any of the mouse buttons were pressed this
// frame.
func (in *Input) IsMousePressed(b ...MouseButton) bool { return in.mouse.IsPressed(b...) }

// IsMouseReleased returns true if any of the mouse buttons were released this
// frame.
func (in *Input) IsMouseReleased(b ...MouseButton) bool { return in.mouse.IsReleased(b...) }

// IsMouseDown returns true if any of the mouse buttons are held.
func (in *Input) IsMouseDown(b ...MouseButton) bool { return in.mouse.IsDown(b...) }

// MousePosition returns the position of the mouse in viewport coordinates.
func (in *Input) MousePosition() Vec2 { return in.mousePos }

// MouseDelta returns the distance the mouse moved this frame.
func (in *Input) MouseDelta() Vec2 { return in.mouseDelta }

// MouseMoved returns true if the mouse moved this frame.
func (in *Input) MouseMoved() bool { return in.mouseMoved }

// IsButtonPressed returns true if any of the virtual buttons were pressed
// this frame.
func (in *Input) IsButtonPressed(name ...string) bool { return in.buttons.IsPressed(name...) }

// IsButtonReleased returns true if any of the virtual buttons were released
// this frame.
func (in *Input) IsButtonReleased(name ...string) bool { return in.buttons.IsReleased(name...) }

// IsButtonDown returns true if any of the virtual buttons are held.
func (in *Input) IsButtonDown(name ...string) bool { return in.buttons.IsDown(name...) }

// IsGamepadPressed returns true if any of the gamepad buttons were pressed
// this frame on any gamepad.
func (in *Input) IsGamepadPressed(b ...GamepadButton) bool {
	return in.gamepads.merged.state.IsPressed(b...)
}

// IsGamepadReleased returns true if any of the gamepad buttons were released
// this frame on any gamepad.
func (in *Input) IsGamepadReleased(b ...GamepadButton) bool {
	return in.gamepads.merged.state.IsReleased(b...)
}

// IsGamepadDown returns true if any of the gamepad buttons are held on any
// gamepad.
func (in *Input) IsGamepadDown(b ...GamepadButton) bool {
	return in.gamepads.merged.state.IsDown(b...)
}

// Stick returns the value of the stick. If more than one gamepad is connected
// the value with the greatest magnitude is returned.
func (in *Input) Stick(s Stick) Vec2 {
	return in.gamepads.merged.sticks[s]
}

// Gamepads returns handles for the connected gamepads in the order they were
// connected.
func (in *Input) Gamepads() []Gamepad {
	g := make([]Gamepad, 0, len(in.gamepads.order))
	for _, idx := range in.gamepads.order {
		g = append(g, Gamepad{Index: idx, owner: in})
	}
	return g
}

// Gamepad returns a handle for the gamepad with the index. The handle is valid
// even if no gamepad with that index is connected.
func (in *Input) Gamepad(index int) Gamepad {
	return Gamepad{Index: index, owner: in}
}

// LastDevice returns the class of the device that most recently produced
// input.
func (in *Input) LastDevice() Device { return in.lastDevice }

// CharInputted returns the characters typed this frame.
func (in *Input) CharInputted() string { return in.chars.String() }

// filtered wraps fn so that it is only called when the symbol is in the
// filter. an empty filter allows everything.
func filtered[E events.Event, T comparable](fn func(E), sym func(E) T, filter []T) func(E) {
	if len(filter) == 0 {
		return fn
	}
	filter = slices.Clone(filter)
	return func(ev E) {
		if slices.Contains(filter, sym(ev)) {
			fn(ev)
		}
	}
}

func keyOf(ev KeyEvent) Key                           { return ev.Key }
func mouseOf(ev MouseButtonEvent) MouseButton         { return ev.Button }
func nameOf(ev ButtonEvent) string                    { return ev.Name }
func padButtonOf(ev GamepadButtonEvent) GamepadButton { return ev.Button }
func stickOf(ev GamepadStickEvent) Stick              { return ev.Stick }

// OnKeyDown subscribes to the once per frame notification for held keys. If
// keys are specified then only those keys are notified.
func (in *Input) OnKeyDown(fn func(KeyEvent), k ...Key) *events.Subscription {
	return events.On(in.reg, events.KeyDown, filtered(fn, keyOf, k))
}

// OnKeyPress subscribes to key press notifications.
func (in *Input) OnKeyPress(fn func(KeyEvent), k ...Key) *events.Subscription {
	return events.On(in.reg, events.KeyPress, filtered(fn, keyOf, k))
}

// OnKeyPressRepeat subscribes to key press notifications, including repeats.
func (in *Input) OnKeyPressRepeat(fn func(KeyEvent), k ...Key) *events.Subscription {
	return events.On(in.reg, events.KeyPressRepeat, filtered(fn, keyOf, k))
}

// OnKeyRelease subscribes to key release notifications.
func (in *Input) OnKeyRelease(fn func(KeyEvent), k ...Key) *events.Subscription {
	return events.On(in.reg, events.KeyRelease, filtered(fn, keyOf, k))
}

// OnMouseDown subscribes to the once per frame notification for held mouse
// buttons.
func (in *Input) OnMouseDown(fn func(MouseButtonEvent), b ...MouseButton) *events.Subscription {
	return events.On(in.reg, events.MouseDown, filtered(fn, mouseOf, b))
}

// OnMousePress subscribes to mouse button press notifications.
func (in *Input) OnMousePress(fn func(MouseButtonEvent), b ...MouseButton) *events.Subscription {
	return events.On(in.reg, events.MousePress, filtered(fn, mouseOf, b))
}

// OnMouseRelease subscribes to mouse button release notifications.
func (in *Input) OnMouseRelease(fn func(MouseButtonEvent), b ...MouseButton) *events.Subscription {
	return events.On(in.reg, events.MouseRelease, filtered(fn, mouseOf, b))
}

// OnMouseMove subscribes to the once per frame mouse move notification.
func (in *Input) OnMouseMove(fn func(MouseMoveEvent)) *events.Subscription {
	return events.On(in.reg, events.MouseMove, fn)
}

// OnCharInput subscribes to character input.
func (in *Input) OnCharInput(fn func(CharEvent)) *events.Subscription {
	return events.On(in.reg, events.CharInput, fn)
}

// OnTouchStart subscribes to touch start notifications.
func (in *Input) OnTouchStart(fn func(TouchEvent)) *events.Subscription {
	return events.On(in.reg, events.TouchStart, fn)
}

// OnTouchMove subscribes to touch move notifications.
func (in *Input) OnTouchMove(fn func(TouchEvent)) *events.Subscription {
	return events.On(in.reg, events.TouchMove, fn)
}

// OnTouchEnd subscribes to touch end notifications.
func (in *Input) OnTouchEnd(fn func(TouchEvent)) *events.Subscription {
	return events.On(in.reg, events.TouchEnd, fn)
}

// OnScroll subscribes to scroll notifications.
func (in *Input) OnScroll(fn func(ScrollEvent)) *events.Subscription {
	return events.On(in.reg, events.Scroll, fn)
}

// OnButtonPress subscribes to virtual button press notifications.
func (in *Input) OnButtonPress(fn func(ButtonEvent), name ...string) *events.Subscription {
	return events.On(in.reg, events.ButtonPress, filtered(fn, nameOf, name))
}

// OnButtonDown subscribes to the once per frame notification for held
// virtual buttons.
func (in *Input) OnButtonDown(fn func(ButtonEvent), name ...string) *events.Subscription {
	return events.On(in.reg, events.ButtonDown, filtered(fn, nameOf, name))
}

// OnButtonRelease subscribes to virtual button release notifications.
func (in *Input) OnButtonRelease(fn func(ButtonEvent), name ...string) *events.Subscription {
	return events.On(in.reg, events.ButtonRelease, filtered(fn, nameOf, name))
}

// OnGamepadButtonPress subscribes to gamepad button press notifications.
func (in *Input) OnGamepadButtonPress(fn func(GamepadButtonEvent), b ...GamepadButton) *events.Subscription {
	return events.On(in.reg, events.GamepadButtonPress, filtered(fn, padButtonOf, b))
}

// OnGamepadButtonDown subscribes to the once per frame notification for held
// gamepad buttons.
func (in *Input) OnGamepadButtonDown(fn func(GamepadButtonEvent), b ...GamepadButton) *events.Subscription {
	return events.On(in.reg, events.GamepadButtonDown, filtered(fn, padButtonOf, b))
}

// OnGamepadButtonRelease subscribes to gamepad button release notifications.
func (in *Input) OnGamepadButtonRelease(fn func(GamepadButtonEvent), b ...GamepadButton) *events.Subscription {
	return events.On(in.reg, events.GamepadButtonRelease, filtered(fn, padButtonOf, b))
}

// OnGamepadStick subscribes to the once per frame stick notification.
func (in *Input) OnGamepadStick(fn func(GamepadStickEvent), s ...Stick) *events.Subscription {
	return events.On(in.reg, events.GamepadStick, filtered(fn, stickOf, s))
}

// OnGamepadConnect subscribes to gamepad connection notifications.
func (in *Input) OnGamepadConnect(fn func(GamepadEvent)) *events.Subscription {
	return events.On(in.reg, events.GamepadConnect, fn)
}

// OnGamepadDisconnect subscribes to gamepad disconnection notifications.
func (in *Input) OnGamepadDisconnect(fn func(GamepadEvent)) *events.Subscription {
	return events.On(in.reg, events.GamepadDisconnect, fn)
}
