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

package ebitenplatform

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jetsetilly/gopher2d/input"
	"github.com/jetsetilly/gopher2d/userinput"
)

// ebiten does not report key repeats so they are synthesised from the
// duration of the key press. values are in ticks
const (
	repeatDelay    = 30
	repeatInterval = 4
)

// keyCode returns the physical key code for an ebiten key. ebiten uses the
// same names as the input package except for letter keys.
func keyCode(k ebiten.Key) string {
	s := k.String()
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		return "Key" + s
	}
	return s
}

// keyName returns the canonical key name for the key on the current
// keyboard layout. the empty string means the input package should use the
// name for the key code.
func keyName(k ebiten.Key) string {
	n := strings.ToLower(ebiten.KeyName(k))
	if input.IsKey(n) {
		return n
	}
	return ""
}

func modifiers() userinput.KeyMod {
	mod := userinput.KeyModNone
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mod |= userinput.KeyModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mod |= userinput.KeyModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mod |= userinput.KeyModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mod |= userinput.KeyModMeta
	}
	return mod
}

func (plt *Platform) updateKeyboard() {
	mod := modifiers()

	plt.keys = inpututil.AppendJustReleasedKeys(plt.keys[:0])
	for _, k := range plt.keys {
		plt.emitKey(k, false, false, mod)
	}

	plt.keys = inpututil.AppendJustPressedKeys(plt.keys[:0])
	for _, k := range plt.keys {
		if k == ebiten.KeyCapsLock {
			plt.capsLock = !plt.capsLock
		}
		plt.emitKey(k, true, false, mod)
	}

	plt.keys = inpututil.AppendPressedKeys(plt.keys[:0])
	for _, k := range plt.keys {
		d := inpututil.KeyPressDuration(k)
		if d > repeatDelay && (d-repeatDelay)%repeatInterval == 0 {
			plt.emitKey(k, true, true, mod)
		}
	}
}

func (plt *Platform) emitKey(k ebiten.Key, down bool, repeat bool, mod userinput.KeyMod) {
	// virtual keys (KeyShift, KeyAlt, etc.) and keys unknown to the input
	// package are not forwarded
	code := keyCode(k)
	if !input.IsKeyCode(code) {
		return
	}

	plt.emit(userinput.EventKeyboard{
		Key:      keyName(k),
		Code:     code,
		Down:     down,
		Repeat:   repeat,
		Mod:      mod,
		CapsLock: plt.capsLock,
	})
}
