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
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher2d/audio"
	"github.com/jetsetilly/gopher2d/audio/decode"
	"github.com/jetsetilly/gopher2d/engine"
	"github.com/jetsetilly/gopher2d/input"
	"github.com/jetsetilly/gopher2d/logger"
	"github.com/jetsetilly/gopher2d/modalflag"
	"github.com/jetsetilly/gopher2d/prefs"
	"github.com/jetsetilly/gopher2d/statsview"
)

// the size of the window in every mode
const (
	screenWidth  = 640
	screenHeight = 360
)

// flags common to the modes that run the engine
type commonFlags struct {
	bindings  *string
	prefs     *string
	log       *bool
	statsview *string
	memviz    *string
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	f := commonFlags{
		bindings: md.AddString("bindings", "", "virtual button bindings file"),
		prefs:    md.AddString("prefs", "", "preferences to override (eg. \"engine.maxFPS::30; audio.masterVolume::0.5\")"),
		log:      md.AddBool("log", false, "echo debugging log to stdout"),
		memviz:   md.AddString("memviz", "", "write graph of input state to file on exit"),
	}
	if statsview.Available() {
		f.statsview = md.AddString("statsview", "", fmt.Sprintf("run stats server at address (eg. %s)", statsview.DefaultAddress))
	}
	return f
}

// apply the logging and stats flags and push the preferences override. the
// returned function should be deferred
func (f commonFlags) apply() func() {
	if *f.log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), true)
	} else {
		logger.SetEcho(nil, false)
	}

	if f.statsview != nil && *f.statsview != "" {
		statsview.Launch(*f.statsview)
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
		return func() {
			prefs.PopCommandLineStack()
		}
	}
	return func() {}
}

// default bindings used when there is no bindings file
var defaultBindings = input.BindingConfig{
	"quit":  {Keys: []string{"escape"}, GamepadButtons: []string{"start"}},
	"pause": {Keys: []string{"space"}, GamepadButtons: []string{"south"}},
	"left":  {Keys: []string{"left", "a"}, GamepadButtons: []string{"dpad-left"}},
	"right": {Keys: []string{"right", "d"}, GamepadButtons: []string{"dpad-right"}},
}

// the bindings from the -bindings flag. nil if the flag has not been used and
// the bindings file in the preferences should be used instead
func (f commonFlags) loadBindings(pref *engine.Preferences) (*input.Bindings, error) {
	if *f.bindings != "" {
		return input.LoadBindings(*f.bindings)
	}
	if pref.BindingsFile.String() != "" {
		return nil, nil
	}
	return input.NewBindings(defaultBindings)
}

// options for engine.New() shared by all modes. the window and output fields
// are filled in by the mode
func (f commonFlags) options(d *demo) (engine.Options, error) {
	pref, err := engine.NewPreferences("")
	if err != nil {
		return engine.Options{}, err
	}

	bnd, err := f.loadBindings(pref)
	if err != nil {
		return engine.Options{}, err
	}

	return engine.Options{
		Decoder:     audio.DecoderFunc(decode.File),
		Bindings:    bnd,
		Preferences: pref,
		Update:      d.update,
	}, nil
}

// write the memviz graph if the flag has been used
func (f commonFlags) dump(e *engine.Engine) {
	if *f.memviz == "" || e == nil {
		return
	}

	fn, err := os.Create(*f.memviz)
	if err != nil {
		logger.Log(logger.Allow, "engine", err)
		return
	}
	defer fn.Close()

	memviz.Map(fn, e.Input())
}

// the behaviour of the program. the sound named on the command line is
// played as music, which can be paused with the pause button
type demo struct {
	src   string
	music *audio.Music

	// quit after the number of frames. zero means no limit
	frames uint64
}

func newDemo(src string, frames uint64) *demo {
	return &demo{src: src, frames: frames}
}

func (d *demo) update(e *engine.Engine) error {
	if d.music == nil && d.src != "" {
		opts := audio.DefaultOptions()
		opts.Loop = true
		d.music = e.Audio().PlayMusic(d.src, opts)
	}

	in := e.Input()

	if in.IsButtonPressed("quit") || (d.frames > 0 && e.Frame() >= d.frames) {
		e.Quit()
		return nil
	}

	if in.IsButtonPressed("pause") && d.music != nil {
		d.music.SetPaused(!d.music.Paused())
		logger.Logf(logger.Allow, "demo", "music paused: %v", d.music.Paused())
	}

	if d.music != nil {
		switch {
		case in.IsButtonPressed("left"):
			d.music.SetPan(d.music.Pan() - 0.25)
		case in.IsButtonPressed("right"):
			d.music.SetPan(d.music.Pan() + 0.25)
		}
	}

	return nil
}
