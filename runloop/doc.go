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

// Package runloop is a single goroutine, cooperative timer loop. All the
// timer driven parts of the engine (the frame scheduler and the audio
// renderer) run on the loop and so never run concurrently with each other.
//
// Functions are scheduled with After() and cancelled with Timer.Stop(). Other
// goroutines hand work to the loop with Post(), which is the only
// goroutine-safe function of the Loop type.
//
// The loop is driven by Run(), or in tests by calling Service() after
// advancing a ManualClock:
//
//	clk := runloop.NewManualClock()
//	lp := runloop.NewLoop(clk)
//	lp.After(time.Second, fn)
//	clk.Advance(time.Second)
//	lp.Service() // fn is called
package runloop
