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

package input

import "slices"

// set is an insertion ordered set. the zero value is ready to use.
type set[T comparable] struct {
	items []T
	index map[T]struct{}
}

func (s *set[T]) add(v T) {
	if s.index == nil {
		s.index = make(map[T]struct{})
	}
	if _, ok := s.index[v]; ok {
		return
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *set[T]) remove(v T) {
	if _, ok := s.index[v]; !ok {
		return
	}
	delete(s.index, v)
	s.items = slices.DeleteFunc(s.items, func(e T) bool {
		return e == v
	})
}

func (s *set[T]) has(v T) bool {
	_, ok := s.index[v]
	return ok
}

func (s *set[T]) clear() {
	s.items = s.items[:0]
	clear(s.index)
}

// hasAny returns true if any of the values are in the set. if no values are
// specified then it returns true if the set is not empty.
func (s *set[T]) hasAny(vs []T) bool {
	if len(vs) == 0 {
		return len(s.items) > 0
	}
	for _, v := range vs {
		if s.has(v) {
			return true
		}
	}
	return false
}

// ButtonState tracks the per-frame state of any discrete input symbol. It
// keeps four sets:
//
//	pressed:        symbols that went down this frame
//	pressed repeat: symbols that went down or auto-repeated this frame
//	released:       symbols that came up this frame
//	down:           symbols currently held
//
// The first three sets are transient and are cleared by Update(), which
// should be called once per frame after consumers have seen the edges.
//
// The zero value is ready to use.
type ButtonState[T comparable] struct {
	pressed       set[T]
	pressedRepeat set[T]
	released      set[T]
	down          set[T]
}

// Press adds the symbol to the pressed, pressed repeat and down sets.
func (b *ButtonState[T]) Press(s T) {
	b.pressed.add(s)
	b.pressedRepeat.add(s)
	b.down.add(s)
}

// PressRepeat adds the symbol to the pressed repeat set only. Used for key
// repeat, which should not count as a new press.
func (b *ButtonState[T]) PressRepeat(s T) {
	b.pressedRepeat.add(s)
}

// Release removes the symbol from the down set and adds it to the released
// set. A release in the same frame as a press retracts the press.
func (b *ButtonState[T]) Release(s T) {
	b.down.remove(s)
	b.pressed.remove(s)
	b.released.add(s)
}

// Update clears the transient sets. The down set is preserved.
func (b *ButtonState[T]) Update() {
	b.pressed.clear()
	b.pressedRepeat.clear()
	b.released.clear()
}

// Reset clears all sets, including the down set.
func (b *ButtonState[T]) Reset() {
	b.Update()
	b.down.clear()
}

// IsPressed returns true if any of the symbols were pressed this frame. With
// no symbols it returns true if anything was pressed.
func (b *ButtonState[T]) IsPressed(s ...T) bool {
	return b.pressed.hasAny(s)
}

// IsPressedRepeat returns true if any of the symbols were pressed or
// auto-repeated this frame. With no symbols it returns true if anything was.
func (b *ButtonState[T]) IsPressedRepeat(s ...T) bool {
	return b.pressedRepeat.hasAny(s)
}

// IsReleased returns true if any of the symbols were released this frame.
// With no symbols it returns true if anything was released.
func (b *ButtonState[T]) IsReleased(s ...T) bool {
	return b.released.hasAny(s)
}

// IsDown returns true if any of the symbols are currently held. With no
// symbols it returns true if anything is held.
func (b *ButtonState[T]) IsDown(s ...T) bool {
	return b.down.hasAny(s)
}

// Down returns the held symbols in the order they were pressed.
func (b *ButtonState[T]) Down() []T {
	return slices.Clone(b.down.items)
}

// Pressed returns the symbols pressed this frame in the order they were
// pressed.
func (b *ButtonState[T]) Pressed() []T {
	return slices.Clone(b.pressed.items)
}

// Released returns the symbols released this frame in the order they were
// released.
func (b *ButtonState[T]) Released() []T {
	return slices.Clone(b.released.items)
}
