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

// Package ebitenplatform is the window and device collaborator for the ebiten
// game library.
//
// Ebiten owns the main loop. The Platform implements ebiten.Game and must be
// started with Run() from the main goroutine, with the engine running in a
// second goroutine. Ebiten reports input as state rather than as events so
// the Platform compares the state every tick and produces userinput events
// for the differences. Events are given directly to the handler registered
// with Service(), which must be safe for use from another goroutine.
//
// Gamepads are sampled every tick. The engine reads the most recent sample
// through the input.GamepadDevices interface.
package ebitenplatform
