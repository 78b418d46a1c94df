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

// Package userinput is the boundary between the platform packages (the window
// and device collaborators) and the engine. Platforms translate whatever
// their underlying library reports into the Event types of this package and
// hand them to the engine.
//
// Key names are the canonical lowercase names defined by the input package.
// A platform should skip any key it cannot translate rather than invent a
// name.
//
// Events are collected by a Queue, which can be pushed to from any goroutine.
// The engine drains the queue once per frame.
package userinput
