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
	"math"
	"time"

	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/events"
	"github.com/jetsetilly/gopher2d/logger"
	"github.com/jetsetilly/gopher2d/runloop"
)

// Options for a new Sound.
type Options struct {
	// the sound will not start playing until SetPaused(false) is called
	Paused bool

	Loop   bool
	Volume float64
	Pan    float64

	// playback speed. a value of zero is the same as 1.0
	Speed float64

	// pitch adjustment in cents
	Detune float64

	// start position in seconds
	Seek float64
}

// DefaultOptions returns an Options instance with full volume and normal
// speed.
func DefaultOptions() Options {
	return Options{
		Volume: 1.0,
		Speed:  1.0,
	}
}

// EndEvent is published when a sound reaches the end of its data.
type EndEvent struct {
	Source string
}

// Kind implements the events.Event interface.
func (EndEvent) Kind() events.Kind {
	return events.SoundEnd
}

// Sound is a handle for a playing sound.
type Sound struct {
	mixer *Mixer
	src   string
	music bool

	pcm    PCM
	ready  bool
	err    error
	stream Stream

	// position in the source data in frames
	cursor float64

	paused bool
	loop   bool
	volume float64
	pan    float64
	speed  float64
	detune float64

	ended   bool
	stopped bool

	timer  *runloop.Timer
	chunk  []float32
	period time.Duration

	ends *events.Registry
}

func newSound(m *Mixer, src string, opts Options) *Sound {
	s := &Sound{
		mixer:  m,
		src:    src,
		paused: opts.Paused,
		loop:   opts.Loop,
		ends:   events.NewRegistry(),
	}
	s.SetVolume(opts.Volume)
	s.SetPan(opts.Pan)
	s.SetSpeed(opts.Speed)
	s.SetDetune(opts.Detune)
	s.cursor = max(opts.Seek, 0)
	m.add(s)
	return s
}

// decoded is called on the loop's goroutine once decoding has completed. the
// cursor holds the requested start position in seconds until this point
func (s *Sound) decoded(pcm PCM, err error) {
	if s.stopped {
		return
	}

	if err == nil && !pcm.valid() {
		err = curated.Errorf(BadPCM, pcm.SampleRate, pcm.Channels)
	}

	if err == nil {
		s.stream, err = s.mixer.output.OpenStream(s.mixer.cfg.Rate, s.mixer.cfg.Channels)
		if err == nil && (s.stream.Rate() <= 0 || s.stream.Channels() <= 0) {
			err = curated.Errorf(BadPCM, s.stream.Rate(), s.stream.Channels())
		}
	}

	if err != nil {
		s.err = curated.Errorf("audio: %s: %v", s.src, err)
		logger.Log(logger.Allow, "audio", s.err)
		s.mixer.remove(s)
		return
	}

	s.pcm = pcm
	s.ready = true
	s.cursor = min(s.cursor*float64(pcm.SampleRate), float64(pcm.Frames()))
	s.chunk = make([]float32, s.mixer.cfg.ChunkFrames*s.stream.Channels())
	s.period = time.Duration(s.mixer.cfg.ChunkFrames) * time.Second / time.Duration(s.stream.Rate()) / 2

	if !s.paused {
		s.schedule(0)
	}
}

func (s *Sound) schedule(d time.Duration) {
	s.timer.Stop()
	s.timer = s.mixer.loop.After(d, s.render)
}

// Err returns the reason the sound failed to play.
func (s *Sound) Err() error {
	return s.err
}

// Ready returns true once decoding has completed successfully.
func (s *Sound) Ready() bool {
	return s.ready
}

// Source returns the source identifier used to create the sound.
func (s *Sound) Source() string {
	return s.src
}

// Paused returns true if the sound is paused.
func (s *Sound) Paused() bool {
	return s.paused
}

// SetPaused pauses or resumes playback. The playback position is preserved.
func (s *Sound) SetPaused(paused bool) {
	if s.paused == paused {
		return
	}
	s.paused = paused

	if !s.ready || s.stopped || s.ended {
		return
	}

	if paused {
		s.timer.Stop()
	} else {
		s.schedule(0)
	}
}

// Loop returns true if the sound will return to the start when it reaches the
// end.
func (s *Sound) Loop() bool {
	return s.loop
}

// SetLoop sets whether the sound returns to the start when it reaches the
// end.
func (s *Sound) SetLoop(loop bool) {
	s.loop = loop
}

// Volume returns the current volume.
func (s *Sound) Volume() float64 {
	return s.volume
}

// SetVolume changes the volume. Clamped to the range 0.0 to 1.0.
func (s *Sound) SetVolume(v float64) {
	s.volume = clamp(v, 0, 1)
}

// Pan returns the current stereo position.
func (s *Sound) Pan() float64 {
	return s.pan
}

// SetPan changes the stereo position. A value of -1.0 is fully left and 1.0
// fully right. Has no effect on mono output.
func (s *Sound) SetPan(v float64) {
	s.pan = clamp(v, -1, 1)
}

// Speed returns the current playback speed.
func (s *Sound) Speed() float64 {
	return s.speed
}

// SetSpeed changes the playback speed. Values of zero or less reset the speed
// to 1.0.
func (s *Sound) SetSpeed(v float64) {
	if v <= 0 {
		v = 1.0
	}
	s.speed = v
}

// Detune returns the current pitch adjustment in cents.
func (s *Sound) Detune() float64 {
	return s.detune
}

// SetDetune changes the pitch in cents. One hundred cents is one semitone.
// Like speed changes, the pitch is changed by resampling so the playback
// speed also changes.
func (s *Sound) SetDetune(cents float64) {
	s.detune = cents
}

// Seek to the specified time in seconds. The value is clamped to the duration
// of the sound.
func (s *Sound) Seek(t float64) {
	t = max(t, 0)
	if !s.ready {
		s.cursor = t
		return
	}
	s.cursor = min(t*float64(s.pcm.SampleRate), float64(s.pcm.Frames()))
}

// Time returns the playback position in seconds.
func (s *Sound) Time() float64 {
	if !s.ready {
		return s.cursor
	}
	return s.cursor / float64(s.pcm.SampleRate)
}

// Duration of the sound in seconds. Zero until decoding has completed.
func (s *Sound) Duration() float64 {
	return s.pcm.Duration().Seconds()
}

// Ended returns true if the sound has reached the end of its data.
func (s *Sound) Ended() bool {
	return s.ended
}

// Stopped returns true if Stop() has been called.
func (s *Sound) Stopped() bool {
	return s.stopped
}

// Stop playback. The stream is cleared and closed immediately and the sound
// can not be restarted.
func (s *Sound) Stop() {
	if s.stopped {
		return
	}
	s.stopped = true
	s.timer.Stop()
	s.mixer.remove(s)

	if s.stream != nil {
		s.stream.Clear()
		if err := s.stream.Close(); err != nil {
			logger.Logf(logger.Allow, "audio", "%s: %v", s.src, err)
		}
	}
}

// OnEnd registers a function to be called when the sound reaches the end of
// its data. A looping sound never ends.
func (s *Sound) OnEnd(fn func()) *events.Subscription {
	return events.On(s.ends, events.SoundEnd, func(EndEvent) {
		fn()
	})
}

// Connect is not supported. The sound always plays directly to its stream.
func (s *Sound) Connect(node any) {
	logger.Logf(logger.Allow, "audio", "%s: connect to %T not supported", s.src, node)
}

// Music is a Sound intended for background music.
type Music struct {
	*Sound
}

// Connect is not supported for music.
func (m *Music) Connect(node any) {
	logger.Logf(logger.Allow, "audio", "%s: music can not be connected to %T", m.src, node)
}

// the stride through the source data for every output frame
func (s *Sound) stride() float64 {
	return s.speed * math.Pow(2, s.detune/1200) * float64(s.pcm.SampleRate) / float64(s.stream.Rate())
}
