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

package runloop

import (
	"sync"
	"time"
)

// Clock is the source of time for the loop.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// Now implements the Clock interface.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a clock that only moves when it is told to. It is safe for
// concurrent use.
type ManualClock struct {
	crit sync.Mutex
	now  time.Time
}

// NewManualClock is the preferred method of initialisation for the
// ManualClock type. The clock starts at an arbitrary fixed time.
func NewManualClock() *ManualClock {
	return &ManualClock{
		now: time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Now implements the Clock interface.
func (c *ManualClock) Now() time.Time {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.now
}

// Advance moves the clock forward.
func (c *ManualClock) Advance(d time.Duration) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.now = c.now.Add(d)
}
