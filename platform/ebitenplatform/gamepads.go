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
	"slices"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/gopher2d/input"
)

// gamepads holds the most recent sample of the attached gamepads. sample()
// is called by the ebiten goroutine and the snapshot is read by the engine.
type gamepads struct {
	crit     sync.Mutex
	snapshot []input.RawGamepad

	// only accessed by the ebiten goroutine
	ids []ebiten.GamepadID
}

func newGamepads() *gamepads {
	return &gamepads{}
}

func (g *gamepads) sample() {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])

	snapshot := make([]input.RawGamepad, 0, len(g.ids))
	for _, id := range g.ids {
		r := input.RawGamepad{
			Index: int(id),
			Name:  ebiten.GamepadName(id),
		}

		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			r.Standard = true
			r.Buttons = make([]bool, ebiten.StandardGamepadButtonMax+1)
			for b := range r.Buttons {
				r.Buttons[b] = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButton(b))
			}
			r.Axes = make([]float64, ebiten.StandardGamepadAxisMax+1)
			for a := range r.Axes {
				r.Axes[a] = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxis(a))
			}
		} else {
			r.Buttons = make([]bool, ebiten.GamepadButtonCount(id))
			for b := range r.Buttons {
				r.Buttons[b] = ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(b))
			}
			r.Axes = make([]float64, ebiten.GamepadAxisCount(id))
			for a := range r.Axes {
				r.Axes[a] = ebiten.GamepadAxisValue(id, a)
			}
		}

		snapshot = append(snapshot, r)
	}

	g.crit.Lock()
	g.snapshot = snapshot
	g.crit.Unlock()
}

// Gamepads implements the input.GamepadDevices interface. The most recent
// sample taken by the ebiten goroutine is returned.
func (plt *Platform) Gamepads() []input.RawGamepad {
	plt.pads.crit.Lock()
	defer plt.pads.crit.Unlock()
	return slices.Clone(plt.pads.snapshot)
}

// Open implements the input.GamepadDevices interface. Ebiten opens devices
// itself so there is nothing to do.
func (plt *Platform) Open(index int) error {
	return nil
}

// Close implements the input.GamepadDevices interface.
func (plt *Platform) Close(index int) {
}
