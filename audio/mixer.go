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

package audio

import (
	"slices"
	"sync/atomic"

	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/logger"
	"github.com/jetsetilly/gopher2d/runloop"
)

// Sentinal error patterns.
const (
	NoOutput  = "audio: no output"
	NoDecoder = "audio: no decoder for %s"
	BadPCM    = "audio: invalid pcm data (rate %d, channels %d)"
)

// Default values for the Config type.
const (
	DefaultRate        = 44100
	DefaultChannels    = 2
	DefaultChunkFrames = 2048
)

// Config for a new Mixer. Zero values are replaced with the defaults.
type Config struct {
	// the sample rate and number of channels requested when opening a stream
	Rate     int
	Channels int

	// the number of frames rendered by a sound in one go
	ChunkFrames int

	// the initial master volume. a value of zero means full volume. use
	// SetMasterVolume() to mute
	MasterVolume float64
}

// Mixer creates and tracks playing sounds.
type Mixer struct {
	loop    *runloop.Loop
	output  Output
	decoder Decoder
	cfg     Config

	master float64

	// sounds that have not been stopped
	sounds []*Sound

	// number of decodes in progress
	decoding atomic.Int32
}

// NewMixer is the preferred method of initialisation for the Mixer type. The
// decoder can be nil in which case only PlayPCM() will produce sound. A nil
// output is an error.
func NewMixer(loop *runloop.Loop, output Output, decoder Decoder, cfg Config) (*Mixer, error) {
	if output == nil {
		return nil, curated.Errorf(NoOutput)
	}

	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRate
	}
	if cfg.Channels <= 0 {
		cfg.Channels = DefaultChannels
	}
	if cfg.ChunkFrames <= 0 {
		cfg.ChunkFrames = DefaultChunkFrames
	}
	if cfg.MasterVolume <= 0 {
		cfg.MasterVolume = 1.0
	}

	m := &Mixer{
		loop:    loop,
		output:  output,
		decoder: decoder,
		cfg:     cfg,
	}
	m.SetMasterVolume(cfg.MasterVolume)

	logger.Logf(logger.Allow, "audio", "mixer: %dHz, %d channels, %d frames per chunk", cfg.Rate, cfg.Channels, cfg.ChunkFrames)

	return m, nil
}

// SetMasterVolume sets the volume applied to every sound. The value is
// clamped to the range 0.0 to 1.0.
func (m *Mixer) SetMasterVolume(v float64) {
	m.master = clamp(v, 0, 1)
}

// MasterVolume returns the current master volume.
func (m *Mixer) MasterVolume() float64 {
	return m.master
}

// Decoding returns the number of sounds still being decoded.
func (m *Mixer) Decoding() int {
	return int(m.decoding.Load())
}

// Sounds returns every sound that has not been stopped. Sounds that have
// ended but not been stopped are included.
func (m *Mixer) Sounds() []*Sound {
	return slices.Clone(m.sounds)
}

// StopAll stops every sound.
func (m *Mixer) StopAll() {
	for _, s := range m.Sounds() {
		s.Stop()
	}
}

// Play the sound identified by src. The function returns immediately and
// the sound begins playing once decoding has completed, unless
// Options.Paused is true.
//
// If decoding fails the error is logged and the sound never plays. The error
// can be retrieved with the Err() function of the returned Sound.
func (m *Mixer) Play(src string, opts Options) *Sound {
	s := newSound(m, src, opts)
	m.decode(s)
	return s
}

// PlayPCM plays already decoded data. Unlike Play() the sound is ready
// immediately and begins playing on the next service of the loop.
func (m *Mixer) PlayPCM(pcm PCM, opts Options) *Sound {
	s := newSound(m, "pcm", opts)
	s.decoded(pcm, nil)
	return s
}

// PlayMusic is the same as Play() except that the returned type is intended
// for long running background music.
func (m *Mixer) PlayMusic(src string, opts Options) *Music {
	s := newSound(m, src, opts)
	s.music = true
	m.decode(s)
	return &Music{Sound: s}
}

func (m *Mixer) decode(s *Sound) {
	if m.decoder == nil {
		s.decoded(PCM{}, curated.Errorf(NoDecoder, s.src))
		return
	}

	m.decoding.Add(1)
	go func() {
		pcm, err := m.decoder.Decode(s.src)
		m.loop.Post(func() {
			m.decoding.Add(-1)
			s.decoded(pcm, err)
		})
	}()
}

func (m *Mixer) add(s *Sound) {
	m.sounds = append(m.sounds, s)
}

func (m *Mixer) remove(s *Sound) {
	m.sounds = slices.DeleteFunc(m.sounds, func(e *Sound) bool {
		return e == s
	})
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
