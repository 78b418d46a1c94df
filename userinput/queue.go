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

package userinput

import "sync"

// Queue collects events as they arrive from the platform. Push() is safe to
// call from any goroutine.
type Queue struct {
	crit    sync.Mutex
	pending []Event
	dropped int
}

// maximum number of events held by the queue between calls to Drain(). any
// more than this are dropped.
const maxPending = 1024

// Push adds an event to the end of the queue. Returns false if the event was
// dropped because the queue is full.
func (q *Queue) Push(ev Event) bool {
	q.crit.Lock()
	defer q.crit.Unlock()

	if len(q.pending) >= maxPending {
		q.dropped++
		return false
	}

	q.pending = append(q.pending, ev)
	return true
}

// Drain returns all pending events in the order they arrived and empties the
// queue. The dropped value is the number of events that were lost since the
// last call to Drain().
func (q *Queue) Drain() (events []Event, dropped int) {
	q.crit.Lock()
	defer q.crit.Unlock()

	events = q.pending
	dropped = q.dropped
	q.pending = make([]Event, 0, len(events))
	q.dropped = 0

	return events, dropped
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.pending)
}
