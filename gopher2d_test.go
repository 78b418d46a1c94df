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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher2d/audio"
	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/engine"
	"github.com/jetsetilly/gopher2d/input"
	"github.com/jetsetilly/gopher2d/modalflag"
	"github.com/jetsetilly/gopher2d/test"
	"github.com/jetsetilly/gopher2d/userinput"
)

func bindingsMode(t *testing.T, args ...string) (string, error) {
	t.Helper()

	md := &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs(append([]string{"BINDINGS"}, args...))
	md.NewMode()
	md.AddSubModes("PLAY", "EBITEN", "HEADLESS", "BINDINGS")
	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, md.Mode(), "BINDINGS")

	w := &test.CompareWriter{}
	err = bindings(md, w)
	return w.String(), err
}

func TestBindingsMode(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bindings")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("# comment\njump :: pad:south, key:space\n"), 0600))

	out, err := bindingsMode(t, fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, out, "jump :: key:space, pad:south\n")
}

func TestBindingsModeError(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "bindings")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("jump :: key:nosuchkey\n"), 0600))

	_, err := bindingsMode(t, fn)
	test.ExpectSuccess(t, curated.Is(err, input.ConfigError))

	_, err = bindingsMode(t, fn, fn)
	test.ExpectFailure(t, err)
}

func TestDefaultBindings(t *testing.T) {
	out, err := bindingsMode(t)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out, "quit :: key:escape, pad:start\n"))
	test.ExpectSuccess(t, strings.Contains(out, "left :: key:left, key:a, pad:dpad-left\n"))

	w := &test.CompareWriter{}
	_, _ = w.Write([]byte(out))
	test.ExpectEquality(t, len(w.Lines()), len(defaultBindings))
}

type quietWindow struct {
	pending []userinput.Event
}

func (w *quietWindow) Service(handle func(userinput.Event)) error {
	for _, ev := range w.pending {
		handle(ev)
	}
	w.pending = w.pending[:0]
	return nil
}

func (w *quietWindow) Size() (int, int) {
	return screenWidth, screenHeight
}

func (w *quietWindow) Destroy() error {
	return nil
}

func newDemoEngine(t *testing.T, d *demo, win engine.Window) *engine.Engine {
	t.Helper()

	pref, err := engine.NewPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	bnd, err := input.NewBindings(defaultBindings)
	test.DemandSuccess(t, err)

	e, err := engine.New(engine.Options{
		Window:      win,
		Output:      audio.NewMemoryOutput(audio.DefaultRate, 2),
		Bindings:    bnd,
		Preferences: pref,
		Update:      d.update,
	})
	test.DemandSuccess(t, err)
	return e
}

func TestDemoFrames(t *testing.T) {
	e := newDemoEngine(t, newDemo("", 3), &quietWindow{})
	test.ExpectSuccess(t, e.Run(context.Background()))
	test.ExpectEquality(t, e.Frame(), uint64(3))
}

func TestDemoQuitButton(t *testing.T) {
	win := &quietWindow{
		pending: []userinput.Event{userinput.EventKeyboard{Key: "escape", Down: true}},
	}
	e := newDemoEngine(t, newDemo("", 0), win)
	test.ExpectSuccess(t, e.Run(context.Background()))
	test.ExpectSuccess(t, e.Quitting())
}
