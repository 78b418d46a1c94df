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

package engine

import (
	"github.com/jetsetilly/gopher2d/events"
	"github.com/jetsetilly/gopher2d/userinput"
)

// Window is the window collaborator. Platforms in the platform directory
// implement this interface.
type Window interface {
	// translate pending window events and pass them to the handle function.
	// called on every iteration of the run loop
	Service(handle func(userinput.Event)) error

	// the size of the window in pixels
	Size() (int, int)

	// destroy the window. called once when the engine quits
	Destroy() error
}

// ResizeEvent is published when the window changes size.
type ResizeEvent struct {
	Width  int
	Height int
}

// Kind implements the events.Event interface.
func (ResizeEvent) Kind() events.Kind {
	return events.Resize
}
