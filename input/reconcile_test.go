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
	"testing"

	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/events"
	"github.com/jetsetilly/gopher2d/input"
	"github.com/jetsetilly/gopher2d/test"
	"github.com/jetsetilly/gopher2d/userinput"
)

// recorder subscribes to every kind and records the kinds in the order they
// are published.
type recorder struct {
	kinds  []events.Kind
	events []events.Event
}

func newRecorder(reg *events.Registry) *recorder {
	r := &recorder{}
	for k := events.KeyDown; k <= events.Resize; k++ {
		reg.Subscribe(k, func(ev events.Event) {
			r.kinds = append(r.kinds, ev.Kind())
			r.events = append(r.events, ev)
		})
	}
	return r
}

func (r *recorder) clear() {
	r.kinds = r.kinds[:0]
	r.events = r.events[:0]
}

func (r *recorder) count(k events.Kind) int {
	var n int
	for _, e := range r.kinds {
		if e == k {
			n++
		}
	}
	return n
}

// halfViewport maps window coordinates to a viewport of half the size.
type halfViewport struct{}

func (halfViewport) ToViewport(x, y float64) input.Vec2 {
	return input.Vec2{X: x / 2, Y: y / 2}
}

func newTestInput(t *testing.T, cfg input.BindingConfig) (*input.Input, *recorder) {
	t.Helper()

	b, err := input.NewBindings(cfg)
	test.DemandSuccess(t, err)

	reg := events.NewRegistry()
	in := input.NewInput(reg, input.Config{Bindings: b, Viewport: halfViewport{}})
	return in, newRecorder(reg)
}

func key(k string, down bool) userinput.EventKeyboard {
	return userinput.EventKeyboard{Key: k, Down: down}
}

func TestKeyPressOrder(t *testing.T) {
	in, rec := newTestInput(t, input.BindingConfig{
		"jump": {Keys: []string{"space"}},
	})

	test.DemandSuccess(t, in.Process([]userinput.Event{key("space", true)}))

	// button press, key press, key press repeat, char input and then the down
	// replay for the key and the virtual button
	expected := []events.Kind{
		events.ButtonPress, events.KeyPress, events.KeyPressRepeat, events.CharInput,
		events.KeyDown, events.ButtonDown,
	}
	test.DemandEquality(t, len(rec.kinds), len(expected))
	for i := range expected {
		test.ExpectEquality(t, rec.kinds[i], expected[i], i)
	}

	test.ExpectSuccess(t, in.IsKeyPressed("space"))
	test.ExpectSuccess(t, in.IsButtonPressed("jump"))
	test.ExpectSuccess(t, in.IsCodeDown("Space"))
	test.ExpectEquality(t, in.CharInputted(), " ")
	test.ExpectEquality(t, in.LastDevice(), input.DeviceKeyboard)

	// next frame. the key is still held so only the down replay happens
	in.Reset()
	rec.clear()
	test.DemandSuccess(t, in.Process(nil))
	test.ExpectEquality(t, len(rec.kinds), 2)
	test.ExpectFailure(t, in.IsKeyPressed("space"))
	test.ExpectSuccess(t, in.IsKeyDown("space"))
	test.ExpectEquality(t, in.CharInputted(), "")

	// release
	in.Reset()
	rec.clear()
	test.DemandSuccess(t, in.Process([]userinput.Event{key("space", false)}))
	expected = []events.Kind{events.ButtonRelease, events.KeyRelease}
	test.DemandEquality(t, len(rec.kinds), len(expected))
	for i := range expected {
		test.ExpectEquality(t, rec.kinds[i], expected[i], i)
	}
	test.ExpectSuccess(t, in.IsButtonReleased("jump"))
	test.ExpectFailure(t, in.IsButtonDown("jump"))
}

func TestKeyRepeat(t *testing.T) {
	in, rec := newTestInput(t, nil)

	test.DemandSuccess(t, in.Process([]userinput.Event{key("a", true)}))
	in.Reset()
	rec.clear()

	rep := key("a", true)
	rep.Repeat = true
	test.DemandSuccess(t, in.Process([]userinput.Event{rep}))

	test.ExpectFailure(t, in.IsKeyPressed("a"))
	test.ExpectSuccess(t, in.IsKeyPressedRepeat("a"))
	test.ExpectEquality(t, rec.count(events.KeyPress), 0)
	test.ExpectEquality(t, rec.count(events.KeyPressRepeat), 1)
	test.ExpectEquality(t, rec.count(events.CharInput), 0)
}

func TestVirtualButtonFanOut(t *testing.T) {
	in, rec := newTestInput(t, input.BindingConfig{
		"action": {Keys: []string{"a", "b"}},
	})

	test.DemandSuccess(t, in.Process([]userinput.Event{key("a", true), key("b", true)}))
	test.ExpectSuccess(t, in.IsButtonDown("action"))

	// the second key does not press the button again
	test.ExpectEquality(t, rec.count(events.ButtonPress), 1)

	// releasing one key while the other is held leaves the button down
	in.Reset()
	rec.clear()
	test.DemandSuccess(t, in.Process([]userinput.Event{key("a", false)}))
	test.ExpectSuccess(t, in.IsButtonDown("action"))
	test.ExpectEquality(t, rec.count(events.ButtonRelease), 0)

	// releasing the other key releases the button
	in.Reset()
	rec.clear()
	test.DemandSuccess(t, in.Process([]userinput.Event{key("b", false)}))
	test.ExpectFailure(t, in.IsButtonDown("action"))
	test.ExpectSuccess(t, in.IsButtonReleased("action"))
	test.ExpectEquality(t, rec.count(events.ButtonRelease), 1)
}

func TestVirtualButtonAcrossDevices(t *testing.T) {
	in, _ := newTestInput(t, input.BindingConfig{
		"fire": {KeyCodes: []string{"KeyF"}, Mouse: []string{"left"}},
	})

	test.DemandSuccess(t, in.Process([]userinput.Event{
		userinput.EventKeyboard{Key: "f", Code: "KeyF", Down: true},
		userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: true},
		userinput.EventKeyboard{Key: "f", Code: "KeyF", Down: false},
	}))
	test.ExpectSuccess(t, in.IsButtonDown("fire"))

	in.Reset()
	test.DemandSuccess(t, in.Process([]userinput.Event{
		userinput.EventMouseButton{Button: userinput.MouseButtonLeft, Down: false},
	}))
	test.ExpectFailure(t, in.IsButtonDown("fire"))
	test.ExpectEquality(t, in.LastDevice(), input.DeviceMouse)
}

func TestPressReleaseSameFrameInput(t *testing.T) {
	in, _ := newTestInput(t, input.BindingConfig{
		"jump": {Keys: []string{"space"}},
	})

	test.DemandSuccess(t, in.Process([]userinput.Event{key("space", true), key("space", false)}))
	test.ExpectSuccess(t, in.IsKeyReleased("space"))
	test.ExpectFailure(t, in.IsKeyPressed("space"))
	test.ExpectFailure(t, in.IsKeyDown("space"))
	test.ExpectSuccess(t, in.IsButtonReleased("jump"))
	test.ExpectFailure(t, in.IsButtonPressed("jump"))
}

func TestCharInput(t *testing.T) {
	in, _ := newTestInput(t, nil)

	shift := key("h", true)
	shift.Mod = userinput.KeyModShift

	caps := key("i", true)
	caps.CapsLock = true

	both := key("j", true)
	both.Mod = userinput.KeyModShift
	both.CapsLock = true

	test.DemandSuccess(t, in.Process([]userinput.Event{
		shift, caps, both, key("1", true), key("enter", true),
	}))
	test.ExpectEquality(t, in.CharInputted(), "HIj1")
}

func TestUnknownKey(t *testing.T) {
	in, _ := newTestInput(t, nil)

	err := in.Process([]userinput.Event{key("hyper", true)})
	test.ExpectSuccess(t, curated.Is(err, input.UnknownKey))

	// a key with no name but a known code is accepted
	err = in.Process([]userinput.Event{userinput.EventKeyboard{Code: "KeyQ", Down: true}})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, in.IsKeyDown("q"))
}

func TestUnknownMouseButton(t *testing.T) {
	in, rec := newTestInput(t, nil)

	test.DemandSuccess(t, in.Process([]userinput.Event{
		userinput.EventMouseButton{Button: 42, Down: true},
	}))
	test.ExpectEquality(t, len(rec.kinds), 0)
	test.ExpectFailure(t, in.IsMouseDown())
}

func TestMouseMoveCoalesced(t *testing.T) {
	in, rec := newTestInput(t, nil)

	test.DemandSuccess(t, in.Process([]userinput.Event{
		userinput.EventMouseMotion{X: 10, Y: 10},
		userinput.EventMouseMotion{X: 20, Y: 40},
		userinput.EventMouseMotion{X: 30, Y: 60},
	}))

	test.ExpectEquality(t, rec.count(events.MouseMove), 1)
	test.ExpectSuccess(t, in.MouseMoved())
	test.ExpectEquality(t, in.MousePosition(), input.Vec2{X: 15, Y: 30})
	test.ExpectEquality(t, in.MouseDelta(), input.Vec2{X: 15, Y: 30})

	mv := rec.events[0].(input.MouseMoveEvent)
	test.ExpectEquality(t, mv.Position, input.Vec2{X: 15, Y: 30})

	in.Reset()
	test.ExpectFailure(t, in.MouseMoved())
	test.ExpectEquality(t, in.MouseDelta(), input.Vec2{})

	rec.clear()
	test.DemandSuccess(t, in.Process([]userinput.Event{
		userinput.EventMouseMotion{X: 40, Y: 60},
	}))
	test.ExpectEquality(t, in.MouseDelta(), input.Vec2{X: 5, Y: 0})
}

func TestScrollAndTouch(t *testing.T) {
	in, rec := newTestInput(t, nil)

	test.DemandSuccess(t, in.Process([]userinput.Event{
		userinput.EventMouseWheel{DX: 0, DY: -1},
		userinput.EventTouch{Phase: userinput.TouchBegin, ID: 1, X: 100, Y: 50},
		userinput.EventTouch{Phase: userinput.TouchMove, ID: 1, X: 110, Y: 50},
		userinput.EventTouch{Phase: userinput.TouchEnd, ID: 1, X: 110, Y: 50},
	}))

	expected := []events.Kind{events.Scroll, events.TouchStart, events.TouchMove, events.TouchEnd}
	test.DemandEquality(t, len(rec.kinds), len(expected))
	for i := range expected {
		test.ExpectEquality(t, rec.kinds[i], expected[i], i)
	}

	test.ExpectEquality(t, rec.events[0].(input.ScrollEvent).Delta, input.Vec2{X: 0, Y: -1})
	test.ExpectEquality(t, rec.events[1].(input.TouchEvent).Position, input.Vec2{X: 50, Y: 25})
	test.ExpectEquality(t, in.LastDevice(), input.DeviceTouch)
}

func TestSubscriptionFilter(t *testing.T) {
	in, _ := newTestInput(t, nil)

	var pressed []input.Key
	sub := in.OnKeyPress(func(ev input.KeyEvent) {
		pressed = append(pressed, ev.Key)
	}, "x", "z")

	test.DemandSuccess(t, in.Process([]userinput.Event{key("x", true), key("y", true), key("z", true)}))
	test.DemandEquality(t, len(pressed), 2)
	test.ExpectEquality(t, pressed[0], input.Key("x"))
	test.ExpectEquality(t, pressed[1], input.Key("z"))

	sub.Cancel()
	in.Reset()
	test.DemandSuccess(t, in.Process([]userinput.Event{key("x", false), key("x", true)}))
	test.ExpectEquality(t, len(pressed), 2)
}

func TestReleaseAll(t *testing.T) {
	in, rec := newTestInput(t, input.BindingConfig{
		"jump": {Keys: []string{"space"}},
	})

	test.DemandSuccess(t, in.Process([]userinput.Event{
		key("space", true),
		userinput.EventMouseButton{Button: userinput.MouseButtonRight, Down: true},
	}))
	rec.clear()

	in.ReleaseAll()
	test.ExpectFailure(t, in.IsKeyDown())
	test.ExpectFailure(t, in.IsMouseDown())
	test.ExpectFailure(t, in.IsButtonDown())
	test.ExpectEquality(t, rec.count(events.KeyRelease), 1)
	test.ExpectEquality(t, rec.count(events.MouseRelease), 1)
	test.ExpectEquality(t, rec.count(events.ButtonRelease), 1)
}

func TestLeftAndRightModifiers(t *testing.T) {
	in, _ := newTestInput(t, input.BindingConfig{
		"run": {Keys: []string{"shift"}},
	})

	shift := func(code string, down bool) userinput.EventKeyboard {
		return userinput.EventKeyboard{Key: "shift", Code: code, Down: down}
	}

	test.DemandSuccess(t, in.Process([]userinput.Event{
		shift("ShiftLeft", true),
		shift("ShiftRight", true),
	}))
	test.ExpectSuccess(t, in.IsKeyDown("shift"))

	// the key is still held by the other shift key
	in.Reset()
	test.DemandSuccess(t, in.Process([]userinput.Event{shift("ShiftRight", false)}))
	test.ExpectSuccess(t, in.IsKeyDown("shift"))
	test.ExpectFailure(t, in.IsKeyReleased("shift"))
	test.ExpectSuccess(t, in.IsButtonDown("run"))
	test.ExpectSuccess(t, in.IsCodeDown("ShiftLeft"))
	test.ExpectFailure(t, in.IsCodeDown("ShiftRight"))

	in.Reset()
	test.DemandSuccess(t, in.Process([]userinput.Event{shift("ShiftLeft", false)}))
	test.ExpectFailure(t, in.IsKeyDown("shift"))
	test.ExpectSuccess(t, in.IsKeyReleased("shift"))
	test.ExpectSuccess(t, in.IsButtonReleased("run"))
}

func TestKeyCharShift(t *testing.T) {
	ch, ok := input.KeyChar("a", true)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ch, 'A')

	// only letters are changed by shift
	ch, ok = input.KeyChar("1", true)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, ch, '1')

	_, ok = input.KeyChar("shift", true)
	test.ExpectFailure(t, ok)
}
