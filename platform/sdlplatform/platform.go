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

package sdlplatform

import (
	"fmt"

	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/input"
	"github.com/jetsetilly/gopher2d/logger"
	"github.com/jetsetilly/gopher2d/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// Config for a new Platform.
type Config struct {
	Title string

	// the logical size of the window. mouse and touch positions are scaled
	// to this size whatever the actual size of the window
	Width  int
	Height int
}

// Platform implements the engine.Window, input.Viewport and
// input.GamepadDevices interfaces.
type Platform struct {
	cfg    Config
	window *sdl.Window

	// current size of the window in pixels
	width  int
	height int

	// open devices keyed by joystick instance ID
	pads map[int]*pad

	// instance ID to device index. rebuilt on every call to Gamepads()
	deviceIndex map[int]int
}

// NewPlatform is the preferred method of initialisation for the Platform
// type.
func NewPlatform(cfg Config) (*Platform, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, curated.Errorf("sdl: %v", fmt.Sprintf("bad window size (%dx%d)", cfg.Width, cfg.Height))
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	var version sdl.Version
	sdl.VERSION(&version)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", version.Major, version.Minor, version.Patch)

	window, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height), sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdl: %v", err)
	}

	plt := &Platform{
		cfg:         cfg,
		window:      window,
		width:       cfg.Width,
		height:      cfg.Height,
		pads:        make(map[int]*pad),
		deviceIndex: make(map[int]int),
	}

	return plt, nil
}

// Destroy the window and shutdown SDL.
func (plt *Platform) Destroy() error {
	for id, p := range plt.pads {
		p.close()
		delete(plt.pads, id)
	}

	var err error
	if plt.window != nil {
		err = plt.window.Destroy()
		plt.window = nil
	}
	sdl.Quit()

	if err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}

// Size returns the current size of the window in pixels.
func (plt *Platform) Size() (int, int) {
	return plt.width, plt.height
}

// ToViewport implements the input.Viewport interface.
func (plt *Platform) ToViewport(x, y float64) input.Vec2 {
	if plt.width == 0 || plt.height == 0 {
		return input.Vec2{X: x, Y: y}
	}
	return input.Vec2{
		X: x * float64(plt.cfg.Width) / float64(plt.width),
		Y: y * float64(plt.cfg.Height) / float64(plt.height),
	}
}

// Service handles all pending SDL events. Translated events are passed to
// the handle function.
func (plt *Platform) Service(handle func(userinput.Event)) error {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			handle(userinput.EventQuit{})

		case *sdl.WindowEvent:
			plt.serviceWindowEvent(ev, handle)

		case *sdl.KeyboardEvent:
			if kev, ok := translateKey(ev); ok {
				handle(kev)
			}

		case *sdl.MouseButtonEvent:
			var button userinput.MouseButton
			switch ev.Button {
			case sdl.BUTTON_LEFT:
				button = userinput.MouseButtonLeft
			case sdl.BUTTON_MIDDLE:
				button = userinput.MouseButtonMiddle
			case sdl.BUTTON_RIGHT:
				button = userinput.MouseButtonRight
			case sdl.BUTTON_X1:
				button = userinput.MouseButtonBack
			case sdl.BUTTON_X2:
				button = userinput.MouseButtonForward
			default:
				continue
			}
			handle(userinput.EventMouseButton{
				Button: button,
				Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
			})

		case *sdl.MouseMotionEvent:
			handle(userinput.EventMouseMotion{X: float64(ev.X), Y: float64(ev.Y)})

		case *sdl.MouseWheelEvent:
			dx, dy := float64(ev.X), float64(ev.Y)
			if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dx, dy = -dx, -dy
			}
			handle(userinput.EventMouseWheel{DX: dx, DY: dy})

		case *sdl.TouchFingerEvent:
			var phase userinput.TouchPhase
			switch ev.Type {
			case sdl.FINGERDOWN:
				phase = userinput.TouchBegin
			case sdl.FINGERMOTION:
				phase = userinput.TouchMove
			case sdl.FINGERUP:
				phase = userinput.TouchEnd
			default:
				continue
			}

			// finger positions are normalised to the window size
			handle(userinput.EventTouch{
				Phase: phase,
				ID:    int(ev.FingerID),
				X:     float64(ev.X) * float64(plt.width),
				Y:     float64(ev.Y) * float64(plt.height),
			})
		}
	}

	return nil
}

func (plt *Platform) serviceWindowEvent(ev *sdl.WindowEvent, handle func(userinput.Event)) {
	switch ev.Event {
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		handle(userinput.EventFocus{Focused: true})
	case sdl.WINDOWEVENT_FOCUS_LOST:
		handle(userinput.EventFocus{Focused: false})
	case sdl.WINDOWEVENT_SHOWN, sdl.WINDOWEVENT_RESTORED:
		handle(userinput.EventVisibility{Visible: true})
	case sdl.WINDOWEVENT_HIDDEN, sdl.WINDOWEVENT_MINIMIZED:
		handle(userinput.EventVisibility{Visible: false})
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		plt.width = int(ev.Data1)
		plt.height = int(ev.Data2)
		handle(userinput.EventResize{W: plt.width, H: plt.height})
	case sdl.WINDOWEVENT_CLOSE:
		handle(userinput.EventQuit{})
	}
}
