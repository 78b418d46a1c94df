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
	"sort"
	"strings"
)

// AxisPair is the pair of raw axis indices that make up a stick.
type AxisPair struct {
	X int
	Y int
}

// GamepadMapping translates the raw button and axis indices of a device into
// named buttons and sticks. Raw indices that are not in the mapping are
// ignored.
type GamepadMapping struct {
	Buttons map[int]GamepadButton
	Sticks  map[Stick]AxisPair
}

// the order in which buttons and sticks are visited. sorted so that
// notifications are deterministic
func (m GamepadMapping) buttonIndices() []int {
	idx := make([]int, 0, len(m.Buttons))
	for i := range m.Buttons {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

func (m GamepadMapping) stickNames() []Stick {
	s := make([]Stick, 0, len(m.Sticks))
	for n := range m.Sticks {
		s = append(s, n)
	}
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s
}

// StandardMapping is the layout used when a device has no specific mapping.
// It is the "standard gamepad" layout used by most drivers: face buttons,
// shoulders, triggers, select and start, stick buttons, the dpad and the home
// button, with the left stick on axes 0 and 1 and the right stick on axes 2
// and 3.
var StandardMapping = GamepadMapping{
	Buttons: map[int]GamepadButton{
		0:  GamepadSouth,
		1:  GamepadEast,
		2:  GamepadWest,
		3:  GamepadNorth,
		4:  GamepadLShoulder,
		5:  GamepadRShoulder,
		6:  GamepadLTrigger,
		7:  GamepadRTrigger,
		8:  GamepadSelect,
		9:  GamepadStart,
		10: GamepadLStick,
		11: GamepadRStick,
		12: GamepadDPadUp,
		13: GamepadDPadDown,
		14: GamepadDPadLeft,
		15: GamepadDPadRight,
		16: GamepadHome,
	},
	Sticks: map[Stick]AxisPair{
		StickLeft:  {X: 0, Y: 1},
		StickRight: {X: 2, Y: 3},
	},
}

// built in mappings for devices that do not report the standard layout. the
// key is matched against any part of the device name.
var builtinMappings = []struct {
	name    string
	mapping GamepadMapping
}{
	{
		// a single left Joy-Con held sideways. the stick is the only stick
		// and so is reported as the left stick
		name: "Joy-Con (L)",
		mapping: GamepadMapping{
			Buttons: map[int]GamepadButton{
				0:  GamepadSouth,
				1:  GamepadEast,
				2:  GamepadWest,
				3:  GamepadNorth,
				4:  GamepadLShoulder,
				5:  GamepadRShoulder,
				8:  GamepadSelect,
				10: GamepadLStick,
				16: GamepadHome,
			},
			Sticks: map[Stick]AxisPair{
				StickLeft: {X: 0, Y: 1},
			},
		},
	},
	{
		name: "Joy-Con (R)",
		mapping: GamepadMapping{
			Buttons: map[int]GamepadButton{
				0:  GamepadSouth,
				1:  GamepadEast,
				2:  GamepadWest,
				3:  GamepadNorth,
				4:  GamepadLShoulder,
				5:  GamepadRShoulder,
				9:  GamepadStart,
				11: GamepadLStick,
				16: GamepadHome,
			},
			Sticks: map[Stick]AxisPair{
				StickLeft: {X: 0, Y: 1},
			},
		},
	},
	{
		// the Pro Controller reports its face buttons by label (B A Y X)
		// rather than by position
		name: "Pro Controller",
		mapping: GamepadMapping{
			Buttons: map[int]GamepadButton{
				0:  GamepadEast,
				1:  GamepadSouth,
				2:  GamepadNorth,
				3:  GamepadWest,
				4:  GamepadLShoulder,
				5:  GamepadRShoulder,
				6:  GamepadLTrigger,
				7:  GamepadRTrigger,
				8:  GamepadSelect,
				9:  GamepadStart,
				10: GamepadLStick,
				11: GamepadRStick,
				12: GamepadDPadUp,
				13: GamepadDPadDown,
				14: GamepadDPadLeft,
				15: GamepadDPadRight,
				16: GamepadHome,
			},
			Sticks: StandardMapping.Sticks,
		},
	},
	{
		// the touchpad button (index 17) is not mapped
		name:    "DualShock 4",
		mapping: StandardMapping,
	},
	{
		name:    "PS4 Controller",
		mapping: StandardMapping,
	},
}

// SetGamepadMapping sets a custom mapping for devices with the exact name.
// Custom mappings take priority over the built in mappings.
func (in *Input) SetGamepadMapping(name string, m GamepadMapping) {
	in.customMappings[name] = m
}

// mappingFor resolves the mapping for a device name.
func (in *Input) mappingFor(name string, standard bool) GamepadMapping {
	if m, ok := in.customMappings[name]; ok {
		return m
	}
	if standard {
		return StandardMapping
	}
	for _, b := range builtinMappings {
		if strings.Contains(name, b.name) {
			return b.mapping
		}
	}
	return StandardMapping
}
