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

// Package events is a typed publish/subscribe registry. Every notification
// published by the engine has a Kind, taken from the closed list in this
// package, and subscribers register interest in exactly one Kind.
//
// Subscribers are called in the order they subscribed. Subscribe() returns a
// Subscription which can be cancelled at any time, including from inside a
// subscriber while a Publish() is in progress. A cancelled subscription is
// never called again.
//
// The On() function is a convenience for subscribers that want the concrete
// event type rather than the Event interface:
//
//	events.On(reg, events.KeyPress, func(ev input.KeyEvent) {
//		...
//	})
package events
