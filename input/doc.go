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

// Package input reconciles the raw events from the platform into a
// consistent per-frame snapshot of every input device.
//
// Each class of device has a ButtonState, which tracks edges (pressed and
// released this frame) and levels (held). Virtual buttons are named buttons
// bound to any number of physical inputs through a Bindings table. A virtual
// button is held for as long as any of its bound inputs are held.
//
// The frame cycle is:
//
//	in.Process(queue.Drain())  // events, gamepad poll, down replay
//	... game update ...
//	in.Reset()                 // clear edges, deltas and sticks
//
// Notifications are published to an events.Registry. The On*() functions of
// Input subscribe with an optional filter:
//
//	in.OnKeyPress(func(ev input.KeyEvent) {
//		...
//	}, "space", "enter")
//
// Gamepads are polled through the GamepadDevices interface. Raw button and
// axis indices are translated by a GamepadMapping, chosen by device name.
package input
