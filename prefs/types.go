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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types support by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// typed is the shared implementation of the concrete preference types. The
// conv function converts a Value to the underlying type.
type typed[T any] struct {
	value    atomic.Value
	conv     func(Value) (T, error)
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (p *typed[T]) load() T {
	var zero T
	ov := p.value.Load()
	if ov == nil {
		return zero
	}
	return ov.(T)
}

func (p *typed[T]) set(v Value, adjust func(T) T) error {
	nv, err := p.conv(v)
	if err != nil {
		return err
	}
	if adjust != nil {
		nv = adjust(nv)
	}

	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}

	p.value.Store(nv)

	if p.hookPost != nil {
		if err := p.hookPost(nv); err != nil {
			return err
		}
	}

	return nil
}

// SetHookPre sets the callback function to be called just before the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
//
// Not required but is useful in some contexts.
func (p *typed[T]) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets the callback function to be called just after the prefs
// value is updated. Note that even if the value hasn't changed, the callback
// will be executed.
//
// Not required but is useful in some contexts.
func (p *typed[T]) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	typed[bool]
}

func convBool(v Value) (bool, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case string:
		return strings.ToLower(strings.TrimSpace(v)) == "true", nil
	}
	return false, fmt.Errorf("set: cannot convert %T to prefs.Bool", v)
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	p.conv = convBool
	return p.set(v, nil)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system.
type String struct {
	typed[string]
	maxLen int
}

func convString(v Value) (string, error) {
	return fmt.Sprintf("%v", v), nil
}

func (p *String) String() string {
	return p.load()
}

// SetMaxLen sets the maximum length for a string when it is set. To set no
// limit use a value less than or equal to zero. Note that the existing string
// will be cropped if necessary - cropped string information will be lost.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.load(); p.maxLen > 0 && len(s) > p.maxLen {
		p.value.Store(s[:p.maxLen])
	}
}

// Set new value to String type. Values of other types are formatted with the
// %v verb.
func (p *String) Set(v Value) error {
	p.conv = convString
	return p.set(v, func(s string) string {
		if p.maxLen > 0 && len(s) > p.maxLen {
			return s[:p.maxLen]
		}
		return s
	})
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	typed[int]
}

func convInt(v Value) (int, error) {
	switch v := v.(type) {
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case int:
		return v, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("set: cannot convert %T to prefs.Int: %w", v, err)
		}
		return n, nil
	}
	return 0, fmt.Errorf("set: cannot convert %T to prefs.Int", v)
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// Set new value to Int type. New value can be an int or string.
func (p *Int) Set(v Value) error {
	p.conv = convInt
	return p.set(v, nil)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load()
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float implements a floating point type in the prefs system. An optional
// range can be set with SetRange(), in which case values are clamped to that
// range when they are set.
type Float struct {
	typed[float64]
	ranged   bool
	min, max float64
}

func convFloat(v Value) (float64, error) {
	switch v := v.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("set: cannot convert %T to prefs.Float: %w", v, err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("set: cannot convert %T to prefs.Float", v)
}

func (p *Float) String() string {
	return fmt.Sprintf("%.3f", p.load())
}

// SetRange limits the values that can be stored by the Float type. The
// existing value is clamped immediately.
func (p *Float) SetRange(min, max float64) {
	p.ranged = true
	p.min = min
	p.max = max
	p.value.Store(p.clamp(p.load()))
}

func (p *Float) clamp(f float64) float64 {
	if !p.ranged {
		return f
	}
	return min(max(f, p.min), p.max)
}

// Set new value to Float type. New value can be a float, an int or a string.
func (p *Float) Set(v Value) error {
	p.conv = convFloat
	return p.set(v, p.clamp)
}

// Get returns the raw pref value.
func (p *Float) Get() Value {
	return p.load()
}

// Reset sets the float value to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}
