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

	"github.com/jetsetilly/gopher2d/audio"
	"github.com/jetsetilly/gopher2d/audio/otoaudio"
	"github.com/jetsetilly/gopher2d/engine"
	"github.com/jetsetilly/gopher2d/modalflag"
	"github.com/jetsetilly/gopher2d/platform/ebitenplatform"
	"github.com/jetsetilly/gopher2d/version"
)

// play with an ebiten window and oto audio. ebiten runs on the main thread
// and the engine runs in a second goroutine
func playEbiten(md *modalflag.Modes) error {
	md.NewMode()
	f := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	defer f.apply()()

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	opts, err := f.options(newDemo(md.GetArg(0), 0))
	if err != nil {
		return err
	}

	plt, err := ebitenplatform.NewPlatform(ebitenplatform.Config{
		Title:  version.ApplicationName,
		Width:  screenWidth,
		Height: screenHeight,
	})
	if err != nil {
		return err
	}

	out, err := otoaudio.NewOutput(audio.DefaultRate, opts.Preferences.Channels.Get().(int))
	if err != nil {
		return err
	}

	opts.Window = plt
	opts.Output = out

	e, err := engine.New(opts)
	if err != nil {
		return err
	}
	defer f.dump(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// the engine destroys the platform when it quits, which ends the ebiten
	// loop. if the ebiten loop ends first then the engine is cancelled
	done := make(chan error, 1)
	go func() {
		err := e.Run(ctx)
		_ = plt.Destroy()
		done <- err
	}()

	err = plt.Run()
	stop()

	if rerr := <-done; rerr != nil {
		return rerr
	}
	return err
}
