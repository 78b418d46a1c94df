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

// Package headless is a window collaborator for running without a display.
// There is no screen and no mouse. Keyboard input is read from a terminal,
// which is put into cbreak mode for the lifetime of the Platform, or from
// any other io.Reader.
//
// Terminals only report characters and so a key press is reported as a key
// down event followed by a key up event on the next call to Service().
package headless
