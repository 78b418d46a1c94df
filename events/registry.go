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

package events

import (
	"slices"
	"sync"
)

// Registry of subscribers. The zero value is not usable, use NewRegistry().
type Registry struct {
	crit sync.Mutex
	subs [numKinds][]*Subscription
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry() *Registry {
	return &Registry{}
}

// Subscription is returned by Subscribe() and On(). It is the only way of
// detaching a subscriber.
type Subscription struct {
	reg       *Registry
	kind      Kind
	fn        func(Event)
	cancelled bool
}

// Cancel the subscription. It is safe to call Cancel() more than once.
func (s *Subscription) Cancel() {
	if s == nil || s.reg == nil {
		return
	}

	r := s.reg
	r.crit.Lock()
	defer r.crit.Unlock()

	if s.cancelled {
		return
	}
	s.cancelled = true

	r.subs[s.kind] = slices.DeleteFunc(slices.Clone(r.subs[s.kind]), func(e *Subscription) bool {
		return e == s
	})
}

// Subscribe adds a function to be called whenever an event of the specified
// Kind is published. Subscribing to an invalid kind returns a subscription
// that will never be called.
func (r *Registry) Subscribe(kind Kind, fn func(Event)) *Subscription {
	s := &Subscription{
		reg:  r,
		kind: kind,
		fn:   fn,
	}

	if kind < 0 || kind >= numKinds || fn == nil {
		s.cancelled = true
		return s
	}

	r.crit.Lock()
	defer r.crit.Unlock()
	r.subs[kind] = append(r.subs[kind], s)

	return s
}

// Publish event to all subscribers of the event's Kind. Subscribers added
// during a Publish() are not called until the next Publish().
func (r *Registry) Publish(ev Event) {
	kind := ev.Kind()
	if kind < 0 || kind >= numKinds {
		return
	}

	r.crit.Lock()
	subs := r.subs[kind]
	r.crit.Unlock()

	for _, s := range subs {
		r.crit.Lock()
		cancelled := s.cancelled
		r.crit.Unlock()

		if !cancelled {
			s.fn(ev)
		}
	}
}

// Count returns the number of active subscribers for the Kind.
func (r *Registry) Count(kind Kind) int {
	if kind < 0 || kind >= numKinds {
		return 0
	}
	r.crit.Lock()
	defer r.crit.Unlock()
	return len(r.subs[kind])
}

// On subscribes a function that takes the concrete event type. Events of
// the Kind that are not of type E are ignored.
func On[E Event](r *Registry, kind Kind, fn func(E)) *Subscription {
	return r.Subscribe(kind, func(ev Event) {
		if e, ok := ev.(E); ok {
			fn(e)
		}
	})
}
