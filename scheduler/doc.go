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

// Package scheduler implements the frame scheduler. The scheduler separates
// the simulation rate from the rate at which frames are produced with a fixed
// timestep accumulator.
//
// Every tick of the scheduler measures the real time that has elapsed since
// the previous tick. Once enough time has accumulated for a frame (see
// Config.MaxFPS) the fixed update callback is called for every whole fixed
// step in the accumulator and then the variable update callback is called
// once.
//
// The variable update callback is given two functions. The first drains and
// processes the queued input events and the second resets the transient per
// frame input state. Callers should process input at the start of the update
// and reset it at the end.
//
// The scheduler is driven by a runloop.Loop and must only be used from the
// goroutine that runs the loop.
package scheduler
