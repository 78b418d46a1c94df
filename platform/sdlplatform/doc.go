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

// Package sdlplatform is the window and device collaborator for the SDL
// library. It creates the window, translates SDL events into userinput
// events, implements input.Viewport and presents the attached joysticks and
// game controllers through the input.GamepadDevices interface.
//
// SDL requires that all window and event functions are called from the main
// thread. The Platform must be created and serviced from the goroutine
// running main() and that goroutine must be locked to its thread.
package sdlplatform
