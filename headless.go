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
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher2d/audio"
	"github.com/jetsetilly/gopher2d/audio/wavwriter"
	"github.com/jetsetilly/gopher2d/engine"
	"github.com/jetsetilly/gopher2d/logger"
	"github.com/jetsetilly/gopher2d/modalflag"
	"github.com/jetsetilly/gopher2d/paths"
	"github.com/jetsetilly/gopher2d/platform/headless"
)

// run without a window. keyboard input is read from the terminal and audio
// is written to a WAV file
func runHeadless(md *modalflag.Modes) error {
	md.NewMode()
	f := addCommonFlags(md)
	wav := md.AddString("wav", "", "write audio to wav file")
	record := md.AddBool("record", false, "write audio to a uniquely named wav file")
	frames := md.AddInt("frames", 0, "quit after number of frames (0 for no limit)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	defer f.apply()()

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}
	if *frames < 0 {
		return fmt.Errorf("frames must be zero or more")
	}

	opts, err := f.options(newDemo(md.GetArg(0), uint64(*frames)))
	if err != nil {
		return err
	}

	if *record && *wav == "" {
		var label string
		if src := md.GetArg(0); src != "" {
			label = strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
		}
		*wav = paths.UniqueFilename("audio", label, "wav")
	}

	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(*wav, audio.DefaultRate, opts.Preferences.Channels.Get().(int), nil)
		if err != nil {
			return err
		}
		opts.Output = aw
	} else {
		opts.Output = audio.NewMemoryOutput(audio.DefaultRate, opts.Preferences.Channels.Get().(int))
	}

	plt, err := headless.NewPlatform(headless.Config{
		Width:    screenWidth,
		Height:   screenHeight,
		Keyboard: os.Stdin,
	})
	if err != nil {
		return err
	}
	opts.Window = plt

	e, err := engine.New(opts)
	if err != nil {
		_ = plt.Destroy()
		return err
	}
	defer f.dump(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = e.Run(ctx)

	if aw != nil {
		if werr := aw.Write(); werr != nil {
			return werr
		}
		logger.Logf(logger.Allow, "headless", "audio written to %s", *wav)
	}

	return err
}
