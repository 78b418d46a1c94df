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

// Package engine is the application context. It owns the run loop, the event
// registry, the input context, the frame scheduler and the audio mixer, and
// connects them to the window collaborator.
//
// An Engine is created with New() and driven with Run(). All Engine methods,
// except HandleEvent(), must be called from the goroutine running Run(), which
// is the goroutine that calls the Fixed and Update callbacks.
//
// The window collaborator gives raw events to HandleEvent(). Input events are
// queued and reconciled at the start of the next frame. Focus, visibility,
// resize and quit events are applied on the next iteration of the loop,
// whether or not the engine is hidden.
//
// A window that loses focus hides the engine. Held keys and mouse buttons are
// released and the Hide notification is published. A window that gains focus
// shows the engine again, the time spent hidden is skipped and the Show
// notification is published.
package engine
