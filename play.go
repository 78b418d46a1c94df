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

	"github.com/jetsetilly/gopher2d/audio/sdlaudio"
	"github.com/jetsetilly/gopher2d/engine"
	"github.com/jetsetilly/gopher2d/modalflag"
	"github.com/jetsetilly/gopher2d/platform/sdlplatform"
	"github.com/jetsetilly/gopher2d/version"
)

// play with an SDL window and SDL audio. the engine runs on the main thread
func play(md *modalflag.Modes) error {
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

	plt, err := sdlplatform.NewPlatform(sdlplatform.Config{
		Title:  version.ApplicationName,
		Width:  screenWidth,
		Height: screenHeight,
	})
	if err != nil {
		return err
	}

	out, err := sdlaudio.NewOutput()
	if err != nil {
		_ = plt.Destroy()
		return err
	}
	defer out.Close()

	opts.Window = plt
	opts.Output = out

	e, err := engine.New(opts)
	if err != nil {
		_ = plt.Destroy()
		return err
	}
	defer f.dump(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return e.Run(ctx)
}
