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

package events_test

import (
	"testing"

	"github.com/jetsetilly/gopher2d/events"
	"github.com/jetsetilly/gopher2d/test"
)

type resize struct {
	w, h int
}

func (resize) Kind() events.Kind {
	return events.Resize
}

func TestFanOutOrder(t *testing.T) {
	reg := events.NewRegistry()

	var order []int
	reg.Subscribe(events.Show, func(_ events.Event) { order = append(order, 1) })
	reg.Subscribe(events.Show, func(_ events.Event) { order = append(order, 2) })
	reg.Subscribe(events.Hide, func(_ events.Event) { order = append(order, 3) })

	reg.Publish(events.Simple(events.Show))
	test.DemandEquality(t, len(order), 2)
	test.ExpectEquality(t, order[0], 1)
	test.ExpectEquality(t, order[1], 2)
}

func TestCancel(t *testing.T) {
	reg := events.NewRegistry()

	var n int
	s := reg.Subscribe(events.Show, func(_ events.Event) { n++ })
	test.ExpectEquality(t, reg.Count(events.Show), 1)

	reg.Publish(events.Simple(events.Show))
	s.Cancel()
	s.Cancel()
	reg.Publish(events.Simple(events.Show))

	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, reg.Count(events.Show), 0)
}

func TestCancelDuringPublish(t *testing.T) {
	reg := events.NewRegistry()

	var a, b int
	var sb *events.Subscription

	// first subscriber cancels the second. the second must not be called
	reg.Subscribe(events.Show, func(_ events.Event) {
		a++
		sb.Cancel()
	})
	sb = reg.Subscribe(events.Show, func(_ events.Event) { b++ })

	reg.Publish(events.Simple(events.Show))
	reg.Publish(events.Simple(events.Show))
	test.ExpectEquality(t, a, 2)
	test.ExpectEquality(t, b, 0)
}

func TestSubscribeDuringPublish(t *testing.T) {
	reg := events.NewRegistry()

	var n int
	reg.Subscribe(events.Show, func(_ events.Event) {
		reg.Subscribe(events.Show, func(_ events.Event) { n++ })
	})

	reg.Publish(events.Simple(events.Show))
	test.ExpectEquality(t, n, 0)
	reg.Publish(events.Simple(events.Show))
	test.ExpectEquality(t, n, 1)
}

func TestOn(t *testing.T) {
	reg := events.NewRegistry()

	var got resize
	events.On(reg, events.Resize, func(ev resize) {
		got = ev
	})

	reg.Publish(resize{w: 640, h: 480})
	test.ExpectEquality(t, got.w, 640)
	test.ExpectEquality(t, got.h, 480)
}

func TestKindString(t *testing.T) {
	test.ExpectEquality(t, events.KeyPress.String(), "keypress")
	test.ExpectEquality(t, events.Resize.String(), "resize")
	test.ExpectEquality(t, events.Kind(-1).String(), "unknown")
}
