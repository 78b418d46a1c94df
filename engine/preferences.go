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

package engine

import (
	"github.com/jetsetilly/gopher2d/audio"
	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/paths"
	"github.com/jetsetilly/gopher2d/prefs"
	"github.com/jetsetilly/gopher2d/scheduler"
)

// PrefsFile is the name of the preferences file in the resource directory.
const PrefsFile = "preferences"

// Preferences for the engine. Changes to MaxFPS, TimeScale, MasterVolume and
// Deadzone take effect immediately once the Engine has been created.
type Preferences struct {
	dsk *prefs.Disk

	FixedRate prefs.Int
	MaxFPS    prefs.Int
	TimeScale prefs.Float

	MasterVolume prefs.Float
	ChunkFrames  prefs.Int
	Channels     prefs.Int

	Deadzone prefs.Float

	// the bindings file loaded by New() if the Options do not include
	// bindings. an empty string means no bindings
	BindingsFile prefs.String
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If pth is empty then the preferences file in the resource
// directory is used.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if pth == "" {
		var err error
		pth, err = paths.ResourcePath("", PrefsFile)
		if err != nil {
			return nil, curated.Errorf("engine: %v", err)
		}
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("engine.fixedRate", &p.FixedRate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("engine.maxFPS", &p.MaxFPS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("engine.timeScale", &p.TimeScale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.masterVolume", &p.MasterVolume)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.chunkFrames", &p.ChunkFrames)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.channels", &p.Channels)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.deadzone", &p.Deadzone)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("input.bindingsFile", &p.BindingsFile)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.TimeScale.SetRange(0, 10)
	p.MasterVolume.SetRange(0, 1)
	p.Deadzone.SetRange(0, 1)

	_ = p.FixedRate.Set(scheduler.DefaultFixedRate)
	_ = p.MaxFPS.Set(0)
	_ = p.TimeScale.Set(1.0)
	_ = p.MasterVolume.Set(1.0)
	_ = p.ChunkFrames.Set(audio.DefaultChunkFrames)
	_ = p.Channels.Set(audio.DefaultChannels)
	_ = p.Deadzone.Set(0.0)
	_ = p.BindingsFile.Set("")
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
