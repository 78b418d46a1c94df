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

package headless

import (
	"errors"
	"io"
	"os"

	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/input"
	"github.com/jetsetilly/gopher2d/logger"
	"github.com/jetsetilly/gopher2d/userinput"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Config for a new Platform.
type Config struct {
	// the notional size of the window
	Width  int
	Height int

	// source of keyboard input. if the reader is a terminal it is put into
	// cbreak mode. may be nil
	Keyboard io.Reader
}

// Platform implements the engine.Window and input.Viewport interfaces.
type Platform struct {
	cfg Config

	// the terminal and its attributes before it was put into cbreak mode.
	// term is nil if the keyboard is not a terminal
	term  *os.File
	canon unix.Termios

	// key down events from the reader goroutine
	queue userinput.Queue

	// the reader goroutine has seen an interrupt or end of transmission
	// character
	quit chan bool

	// keys that were pressed during the previous call to Service()
	held []userinput.EventKeyboard
}

// NewPlatform is the preferred method of initialisation for the Platform
// type.
func NewPlatform(cfg Config) (*Platform, error) {
	plt := &Platform{
		cfg:  cfg,
		quit: make(chan bool, 1),
	}

	if cfg.Keyboard == nil {
		return plt, nil
	}

	if f, ok := cfg.Keyboard.(*os.File); ok {
		if err := termios.Tcgetattr(f.Fd(), &plt.canon); err == nil {
			cbreak := plt.canon
			termios.Cfmakecbreak(&cbreak)
			if err := termios.Tcsetattr(f.Fd(), termios.TCSANOW, &cbreak); err != nil {
				return nil, curated.Errorf("headless: %v", err)
			}
			plt.term = f
			logger.Log(logger.Allow, "headless", "terminal in cbreak mode")
		}
	}

	go plt.read()

	return plt, nil
}

// the reader goroutine. there is no way of interrupting a blocked read so
// the goroutine ends only when the input ends
func (plt *Platform) read() {
	b := make([]byte, 32)
	for {
		n, err := plt.cfg.Keyboard.Read(b)

		evs, quit := decode(b[:n])
		for _, ev := range evs {
			plt.queue.Push(ev)
		}

		if quit {
			plt.quit <- true
			return
		}

		// the end of the input is not a reason to quit. input from
		// /dev/null for instance ends immediately
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Logf(logger.Allow, "headless", "keyboard: %v", err)
			}
			return
		}
	}
}

// Destroy restores the terminal to the state it was in before NewPlatform()
// was called.
func (plt *Platform) Destroy() error {
	if plt.term == nil {
		return nil
	}
	err := termios.Tcsetattr(plt.term.Fd(), termios.TCSANOW, &plt.canon)
	plt.term = nil
	if err != nil {
		return curated.Errorf("headless: %v", err)
	}
	return nil
}

// Size returns the notional size of the window.
func (plt *Platform) Size() (int, int) {
	return plt.cfg.Width, plt.cfg.Height
}

// ToViewport implements the input.Viewport interface. There is no screen so
// positions are returned unchanged.
func (plt *Platform) ToViewport(x, y float64) input.Vec2 {
	return input.Vec2{X: x, Y: y}
}

// Service passes pending keyboard events to the handle function. Keys
// pressed during the previous call are released first.
func (plt *Platform) Service(handle func(userinput.Event)) error {
	for _, ev := range plt.held {
		ev.Down = false
		handle(ev)
	}
	plt.held = plt.held[:0]

	evs, dropped := plt.queue.Drain()
	if dropped > 0 {
		logger.Logf(logger.Allow, "headless", "dropped %d key presses", dropped)
	}
	for _, ev := range evs {
		handle(ev)
		plt.held = append(plt.held, ev.(userinput.EventKeyboard))
	}

	select {
	case <-plt.quit:
		handle(userinput.EventQuit{})
	default:
	}

	return nil
}
