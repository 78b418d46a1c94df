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
	"container/heap"
	"context"
	"sync"
	"time"
)

// Timer is returned by After(). It is only valid to use a Timer from the loop
// goroutine.
type Timer struct {
	lp       *Loop
	deadline time.Time
	fn       func()

	// sequence number. used to order timers with the same deadline
	seq uint64

	// index in the heap. -1 if the timer is not scheduled
	index int
}

// Stop prevents the timer from firing. Returns false if the timer has
// already fired or been stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.index < 0 {
		return false
	}
	heap.Remove(&t.lp.timers, t.index)
	return true
}

// Pending returns true if the timer has not yet fired or been stopped.
func (t *Timer) Pending() bool {
	return t != nil && t.index >= 0
}

// timerHeap implements heap.Interface ordered by deadline.
type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// Loop is the cooperative timer loop.
type Loop struct {
	clock  Clock
	timers timerHeap
	seq    uint64

	crit   sync.Mutex
	posted []func()

	// wake is signalled when a function is posted
	wake chan struct{}
}

// NewLoop is the preferred method of initialisation for the Loop type. If
// clock is nil then the SystemClock is used.
func NewLoop(clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{
		clock: clock,
		wake:  make(chan struct{}, 1),
	}
}

// Now returns the time according to the loop's clock.
func (lp *Loop) Now() time.Time {
	return lp.clock.Now()
}

// After schedules fn to be called by the loop once d has elapsed. A duration
// of zero or less means the function will be called by the next Service().
func (lp *Loop) After(d time.Duration, fn func()) *Timer {
	lp.seq++
	t := &Timer{
		lp:       lp,
		deadline: lp.clock.Now().Add(d),
		fn:       fn,
		seq:      lp.seq,
	}
	heap.Push(&lp.timers, t)
	return t
}

// Post hands a function to the loop. It is safe to call from any goroutine.
// Posted functions are called in the order they were posted, before any
// timers.
func (lp *Loop) Post(fn func()) {
	lp.crit.Lock()
	lp.posted = append(lp.posted, fn)
	lp.crit.Unlock()

	select {
	case lp.wake <- struct{}{}:
	default:
	}
}

// Pending returns the number of scheduled timers.
func (lp *Loop) Pending() int {
	return len(lp.timers)
}

// Service calls any posted functions and then every timer whose deadline has
// passed, in deadline order. Timers scheduled during the call to Service()
// are not called until the next call, even if they are already due.
func (lp *Loop) Service() {
	lp.crit.Lock()
	posted := lp.posted
	lp.posted = nil
	lp.crit.Unlock()

	for _, fn := range posted {
		fn()
	}

	now := lp.clock.Now()
	last := lp.seq

	var deferred []*Timer
	for len(lp.timers) > 0 && !lp.timers[0].deadline.After(now) {
		t := heap.Pop(&lp.timers).(*Timer)
		if t.seq > last {
			deferred = append(deferred, t)
			continue
		}
		t.fn()
	}

	for _, t := range deferred {
		heap.Push(&lp.timers, t)
	}
}

// next returns the duration until the next timer deadline. ok is false if
// there are no timers.
func (lp *Loop) next() (time.Duration, bool) {
	if len(lp.timers) == 0 {
		return 0, false
	}
	return lp.timers[0].deadline.Sub(lp.clock.Now()), true
}

// maximum time the loop will sleep before calling the service function again
const maxSleep = 10 * time.Millisecond

// Run the loop until the context is cancelled. The service function is called
// on every iteration, before the loop sleeps, and is where the platform should
// pump its window events. If the service function returns an error then Run()
// returns that error.
func (lp *Loop) Run(ctx context.Context, service func() error) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		if service != nil {
			if err := service(); err != nil {
				return err
			}
		}

		lp.Service()

		if err := ctx.Err(); err != nil {
			return nil
		}

		sleep := maxSleep
		if d, ok := lp.next(); ok && d < sleep {
			sleep = max(d, 0)
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(sleep)

		select {
		case <-ctx.Done():
			return nil
		case <-lp.wake:
		case <-timer.C:
		}
	}
}
