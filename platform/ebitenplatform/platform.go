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

package ebitenplatform

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/input"
	"github.com/jetsetilly/gopher2d/logger"
	"github.com/jetsetilly/gopher2d/userinput"
)

// Config for a new Platform.
type Config struct {
	Title string

	// the logical size of the screen. ebiten scales the screen to the window
	// and reports cursor and touch positions in logical coordinates
	Width  int
	Height int

	// called by ebiten to draw the screen. may be nil
	Draw func(screen *ebiten.Image)
}

// Platform implements the ebiten.Game, engine.Window, input.Viewport and
// input.GamepadDevices interfaces.
type Platform struct {
	cfg Config

	// the event handler. set by Service() and read by Update() on the ebiten
	// goroutine
	handle atomic.Pointer[func(userinput.Event)]

	// set by Destroy(). the next call to Update() will end the ebiten loop
	destroyed atomic.Bool

	// window state. only accessed by the ebiten goroutine
	focused  bool
	outsideW int
	outsideH int
	cursorX  int
	cursorY  int
	capsLock bool
	touches  map[ebiten.TouchID][2]int

	// reused between ticks
	keys     []ebiten.Key
	touchIDs []ebiten.TouchID

	// size of the window in device-independent pixels
	sizeCrit sync.Mutex
	width    int
	height   int

	pads *gamepads
}

// NewPlatform is the preferred method of initialisation for the Platform
// type.
func NewPlatform(cfg Config) (*Platform, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, curated.Errorf("ebiten: %v", fmt.Sprintf("bad window size (%dx%d)", cfg.Width, cfg.Height))
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	// closing the window is reported as a quit event rather than ending the
	// ebiten loop immediately
	ebiten.SetWindowClosingHandled(true)

	plt := &Platform{
		cfg:     cfg,
		focused: true,
		width:   cfg.Width,
		height:  cfg.Height,
		touches: make(map[ebiten.TouchID][2]int),
		pads:    newGamepads(),
	}

	return plt, nil
}

// Run the ebiten loop. Does not return until Destroy() is called or ebiten
// exits for some other reason.
func (plt *Platform) Run() error {
	logger.Logf(logger.Allow, "ebiten", "screen is %dx%d", plt.cfg.Width, plt.cfg.Height)
	err := ebiten.RunGame(plt)
	if err != nil {
		return curated.Errorf("ebiten: %v", err)
	}
	return nil
}

// Destroy ends the ebiten loop.
func (plt *Platform) Destroy() error {
	plt.destroyed.Store(true)
	return nil
}

// Service registers the handler for translated events. Unlike the SDL
// platform the events are produced by the ebiten goroutine and so the
// handler is only stored. The most recent handler is used.
func (plt *Platform) Service(handle func(userinput.Event)) error {
	plt.handle.Store(&handle)
	return nil
}

func (plt *Platform) emit(ev userinput.Event) {
	if p := plt.handle.Load(); p != nil {
		(*p)(ev)
	}
}

// Size returns the current size of the window.
func (plt *Platform) Size() (int, int) {
	plt.sizeCrit.Lock()
	defer plt.sizeCrit.Unlock()
	return plt.width, plt.height
}

// ToViewport implements the input.Viewport interface. Positions from ebiten
// are already in logical coordinates so no transform is necessary.
func (plt *Platform) ToViewport(x, y float64) input.Vec2 {
	return input.Vec2{X: x, Y: y}
}

// Update implements the ebiten.Game interface.
func (plt *Platform) Update() error {
	if plt.destroyed.Load() {
		return ebiten.Termination
	}

	if ebiten.IsWindowBeingClosed() {
		plt.emit(userinput.EventQuit{})
	}

	if f := ebiten.IsFocused(); f != plt.focused {
		plt.focused = f
		plt.emit(userinput.EventFocus{Focused: f})
	}

	plt.updateKeyboard()
	plt.updateMouse()
	plt.updateTouch()
	plt.pads.sample()

	return nil
}

// Draw implements the ebiten.Game interface.
func (plt *Platform) Draw(screen *ebiten.Image) {
	if plt.cfg.Draw != nil {
		plt.cfg.Draw(screen)
	}
}

// Layout implements the ebiten.Game interface. The screen is always the
// logical size given to NewPlatform(). A change in the outside size is
// reported as a resize event.
func (plt *Platform) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != plt.outsideW || outsideHeight != plt.outsideH {
		plt.outsideW = outsideWidth
		plt.outsideH = outsideHeight

		plt.sizeCrit.Lock()
		plt.width = outsideWidth
		plt.height = outsideHeight
		plt.sizeCrit.Unlock()

		plt.emit(userinput.EventResize{W: outsideWidth, H: outsideHeight})
	}
	return plt.cfg.Width, plt.cfg.Height
}

var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	button userinput.MouseButton
}{
	{ebiten: ebiten.MouseButtonLeft, button: userinput.MouseButtonLeft},
	{ebiten: ebiten.MouseButtonMiddle, button: userinput.MouseButtonMiddle},
	{ebiten: ebiten.MouseButtonRight, button: userinput.MouseButtonRight},
	{ebiten: ebiten.MouseButton3, button: userinput.MouseButtonBack},
	{ebiten: ebiten.MouseButton4, button: userinput.MouseButtonForward},
}

func (plt *Platform) updateMouse() {
	x, y := ebiten.CursorPosition()
	if x != plt.cursorX || y != plt.cursorY {
		plt.cursorX = x
		plt.cursorY = y
		plt.emit(userinput.EventMouseMotion{X: float64(x), Y: float64(y)})
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			plt.emit(userinput.EventMouseButton{Button: b.button, Down: true})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			plt.emit(userinput.EventMouseButton{Button: b.button, Down: false})
		}
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		plt.emit(userinput.EventMouseWheel{DX: dx, DY: dy})
	}
}

func (plt *Platform) updateTouch() {
	plt.touchIDs = inpututil.AppendJustReleasedTouchIDs(plt.touchIDs[:0])
	for _, id := range plt.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		delete(plt.touches, id)
		plt.emit(userinput.EventTouch{Phase: userinput.TouchEnd, ID: int(id), X: float64(x), Y: float64(y)})
	}

	plt.touchIDs = ebiten.AppendTouchIDs(plt.touchIDs[:0])
	for _, id := range plt.touchIDs {
		x, y := ebiten.TouchPosition(id)
		pos, ok := plt.touches[id]
		if !ok {
			plt.emit(userinput.EventTouch{Phase: userinput.TouchBegin, ID: int(id), X: float64(x), Y: float64(y)})
		} else if pos != [2]int{x, y} {
			plt.emit(userinput.EventTouch{Phase: userinput.TouchMove, ID: int(id), X: float64(x), Y: float64(y)})
		}
		plt.touches[id] = [2]int{x, y}
	}
}
