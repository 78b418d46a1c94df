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

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher2d/curated"
)

// Sentinal errors.
const (
	ConfigError = "config error: %v"
)

// ButtonBinding lists the physical inputs that assert a virtual button. Any
// one of the inputs is enough.
type ButtonBinding struct {
	Keys           []string
	KeyCodes       []string
	Mouse          []string
	GamepadButtons []string
}

// BindingConfig maps virtual button names to their bindings.
type BindingConfig map[string]ButtonBinding

// Bindings is the validated form of a BindingConfig, with an index for each
// class of physical input. A nil Bindings is valid and has no bindings.
type Bindings struct {
	cfg BindingConfig

	byKey     map[Key][]string
	byCode    map[string][]string
	byMouse   map[MouseButton][]string
	byGamepad map[GamepadButton][]string
}

// NewBindings validates the configuration and builds the lookup indices. Any
// binding that refers to an unknown physical input causes a ConfigError.
func NewBindings(cfg BindingConfig) (*Bindings, error) {
	b := &Bindings{
		cfg:       make(BindingConfig, len(cfg)),
		byKey:     make(map[Key][]string),
		byCode:    make(map[string][]string),
		byMouse:   make(map[MouseButton][]string),
		byGamepad: make(map[GamepadButton][]string),
	}

	// sorted names means that the indices are sorted too
	names := make([]string, 0, len(cfg))
	for n := range cfg {
		names = append(names, n)
	}
	sort.Strings(names)

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, curated.Errorf(ConfigError, "empty button name")
		}

		bnd := cfg[name]
		for _, k := range bnd.Keys {
			if !IsKey(k) {
				return nil, curated.Errorf(ConfigError, fmt.Sprintf("%s: unknown key '%s'", name, k))
			}
			b.byKey[Key(k)] = appendUnique(b.byKey[Key(k)], name)
		}
		for _, c := range bnd.KeyCodes {
			if !IsKeyCode(c) {
				return nil, curated.Errorf(ConfigError, fmt.Sprintf("%s: unknown key code '%s'", name, c))
			}
			b.byCode[c] = appendUnique(b.byCode[c], name)
		}
		for _, m := range bnd.Mouse {
			if !IsMouseButton(m) {
				return nil, curated.Errorf(ConfigError, fmt.Sprintf("%s: unknown mouse button '%s'", name, m))
			}
			b.byMouse[MouseButton(m)] = appendUnique(b.byMouse[MouseButton(m)], name)
		}
		for _, g := range bnd.GamepadButtons {
			if !IsGamepadButton(g) {
				return nil, curated.Errorf(ConfigError, fmt.Sprintf("%s: unknown gamepad button '%s'", name, g))
			}
			b.byGamepad[GamepadButton(g)] = appendUnique(b.byGamepad[GamepadButton(g)], name)
		}

		b.cfg[name] = ButtonBinding{
			Keys:           slices.Clone(bnd.Keys),
			KeyCodes:       slices.Clone(bnd.KeyCodes),
			Mouse:          slices.Clone(bnd.Mouse),
			GamepadButtons: slices.Clone(bnd.GamepadButtons),
		}
	}

	return b, nil
}

func appendUnique(l []string, s string) []string {
	if slices.Contains(l, s) {
		return l
	}
	return append(l, s)
}

// ForKey returns the virtual buttons bound to the key.
func (b *Bindings) ForKey(k Key) []string {
	if b == nil {
		return nil
	}
	return b.byKey[k]
}

// ForCode returns the virtual buttons bound to the physical key code.
func (b *Bindings) ForCode(code string) []string {
	if b == nil || code == "" {
		return nil
	}
	return b.byCode[code]
}

// ForMouse returns the virtual buttons bound to the mouse button.
func (b *Bindings) ForMouse(m MouseButton) []string {
	if b == nil {
		return nil
	}
	return b.byMouse[m]
}

// ForGamepad returns the virtual buttons bound to the gamepad button.
func (b *Bindings) ForGamepad(g GamepadButton) []string {
	if b == nil {
		return nil
	}
	return b.byGamepad[g]
}

// Binding returns the binding for the named virtual button.
func (b *Bindings) Binding(name string) (ButtonBinding, bool) {
	if b == nil {
		return ButtonBinding{}, false
	}
	bnd, ok := b.cfg[name]
	return bnd, ok
}

// Names returns the sorted list of virtual button names.
func (b *Bindings) Names() []string {
	if b == nil {
		return nil
	}
	names := make([]string, 0, len(b.cfg))
	for n := range b.cfg {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// the prefixes used to identify the class of trigger in a bindings file
const (
	prefixKey   = "key"
	prefixCode  = "code"
	prefixMouse = "mouse"
	prefixPad   = "pad"
)

// the comma key is written by name in a bindings file because the comma
// separates triggers
const commaKeyName = "comma"

// String returns the bindings in the bindings file format.
func (b *Bindings) String() string {
	s := strings.Builder{}
	for _, name := range b.Names() {
		bnd := b.cfg[name]

		var t []string
		for _, k := range bnd.Keys {
			if k == "," {
				k = commaKeyName
			}
			t = append(t, fmt.Sprintf("%s:%s", prefixKey, k))
		}
		for _, c := range bnd.KeyCodes {
			t = append(t, fmt.Sprintf("%s:%s", prefixCode, c))
		}
		for _, m := range bnd.Mouse {
			t = append(t, fmt.Sprintf("%s:%s", prefixMouse, m))
		}
		for _, g := range bnd.GamepadButtons {
			t = append(t, fmt.Sprintf("%s:%s", prefixPad, g))
		}

		s.WriteString(fmt.Sprintf("%s :: %s\n", name, strings.Join(t, ", ")))
	}
	return s.String()
}

// ParseBindings reads a bindings file. Each line is of the form:
//
//	jump :: key:space, code:KeyW, mouse:left, pad:south
//
// The comma key is written as key:comma. Blank lines and lines beginning with
// # are ignored. A name that appears on more than one line has all the
// triggers from those lines. The result should be passed to NewBindings() for
// validation.
func ParseBindings(r io.Reader) (BindingConfig, error) {
	cfg := make(BindingConfig)

	scanner := bufio.NewScanner(r)
	ln := 0
	for scanner.Scan() {
		ln++

		l := strings.TrimSpace(scanner.Text())
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}

		name, triggers, ok := strings.Cut(l, "::")
		if !ok {
			return nil, curated.Errorf(ConfigError, fmt.Sprintf("line %d: missing '::'", ln))
		}
		name = strings.TrimSpace(name)

		bnd := cfg[name]
		for _, t := range strings.Split(triggers, ",") {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}

			class, v, ok := strings.Cut(t, ":")
			if !ok {
				return nil, curated.Errorf(ConfigError, fmt.Sprintf("line %d: malformed trigger '%s'", ln, t))
			}
			v = strings.TrimSpace(v)

			switch strings.TrimSpace(class) {
			case prefixKey:
				if v == commaKeyName {
					v = ","
				}
				bnd.Keys = append(bnd.Keys, v)
			case prefixCode:
				bnd.KeyCodes = append(bnd.KeyCodes, v)
			case prefixMouse:
				bnd.Mouse = append(bnd.Mouse, v)
			case prefixPad:
				bnd.GamepadButtons = append(bnd.GamepadButtons, v)
			default:
				return nil, curated.Errorf(ConfigError, fmt.Sprintf("line %d: unknown trigger class '%s'", ln, class))
			}
		}
		cfg[name] = bnd
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(ConfigError, err)
	}

	return cfg, nil
}

// LoadBindings reads, parses and validates a bindings file.
func LoadBindings(path string) (*Bindings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(ConfigError, err)
	}
	defer f.Close()

	cfg, err := ParseBindings(f)
	if err != nil {
		return nil, err
	}

	return NewBindings(cfg)
}
