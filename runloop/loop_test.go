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

package runloop_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/gopher2d/runloop"
	"github.com/jetsetilly/gopher2d/test"
)

func TestTimerOrder(t *testing.T) {
	clk := runloop.NewManualClock()
	lp := runloop.NewLoop(clk)

	var order []int
	lp.After(30*time.Millisecond, func() { order = append(order, 3) })
	lp.After(10*time.Millisecond, func() { order = append(order, 1) })
	lp.After(20*time.Millisecond, func() { order = append(order, 2) })
	lp.After(20*time.Millisecond, func() { order = append(order, 22) })

	lp.Service()
	test.ExpectEquality(t, len(order), 0)

	clk.Advance(20 * time.Millisecond)
	lp.Service()
	test.DemandEquality(t, len(order), 3)
	test.ExpectEquality(t, order[0], 1)
	test.ExpectEquality(t, order[1], 2)
	test.ExpectEquality(t, order[2], 22)

	clk.Advance(10 * time.Millisecond)
	lp.Service()
	test.DemandEquality(t, len(order), 4)
	test.ExpectEquality(t, order[3], 3)
	test.ExpectEquality(t, lp.Pending(), 0)
}

func TestTimerStop(t *testing.T) {
	clk := runloop.NewManualClock()
	lp := runloop.NewLoop(clk)

	var fired bool
	tm := lp.After(time.Millisecond, func() { fired = true })
	test.ExpectSuccess(t, tm.Pending())
	test.ExpectSuccess(t, tm.Stop())
	test.ExpectFailure(t, tm.Stop())
	test.ExpectFailure(t, tm.Pending())

	clk.Advance(time.Second)
	lp.Service()
	test.ExpectFailure(t, fired)

	// stopping a timer that has fired
	tm = lp.After(time.Millisecond, func() { fired = true })
	clk.Advance(time.Second)
	lp.Service()
	test.ExpectSuccess(t, fired)
	test.ExpectFailure(t, tm.Stop())

	// a nil timer can be stopped
	var nilTimer *runloop.Timer
	test.ExpectFailure(t, nilTimer.Stop())
}

func TestRescheduleFromTimer(t *testing.T) {
	clk := runloop.NewManualClock()
	lp := runloop.NewLoop(clk)

	var n int
	var tick func()
	tick = func() {
		n++
		lp.After(0, tick)
	}
	lp.After(0, tick)

	// a timer that reschedules itself immediately runs once per Service()
	lp.Service()
	test.ExpectEquality(t, n, 1)
	lp.Service()
	test.ExpectEquality(t, n, 2)
}

func TestPost(t *testing.T) {
	clk := runloop.NewManualClock()
	lp := runloop.NewLoop(clk)

	var order []string
	lp.After(0, func() { order = append(order, "timer") })

	done := make(chan bool)
	go func() {
		lp.Post(func() { order = append(order, "posted") })
		done <- true
	}()
	<-done

	lp.Service()
	test.DemandEquality(t, len(order), 2)
	test.ExpectEquality(t, order[0], "posted")
	test.ExpectEquality(t, order[1], "timer")
}

func TestRun(t *testing.T) {
	lp := runloop.NewLoop(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var fired int
	lp.After(time.Millisecond, func() {
		fired++
		cancel()
	})

	err := lp.Run(ctx, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, fired, 1)
}

func TestRunServiceError(t *testing.T) {
	lp := runloop.NewLoop(nil)

	errService := errors.New("window closed")
	err := lp.Run(context.Background(), func() error {
		return errService
	})
	test.ExpectSuccess(t, errors.Is(err, errService))
}
