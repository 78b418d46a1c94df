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

// Package sdlaudio implements the audio.Output interface using SDL's audio
// queue. Every stream opens its own audio device and samples are pushed to
// the device with QueueAudio().
package sdlaudio

import (
	"encoding/binary"
	"math"

	"github.com/jetsetilly/gopher2d/audio"
	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of frames in the device's own buffer. the precise value is not
// critical. a large value introduces lag and a small value causes the device
// to call back more often
const deviceFrames = 512

// Output opens streams on the default SDL audio device.
type Output struct{}

// NewOutput initialises the SDL audio subsystem. An error means that no
// audio is possible.
func NewOutput() (*Output, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	logger.Logf(logger.Allow, "sdl", "audio driver: %s", sdl.GetCurrentAudioDriver())
	return &Output{}, nil
}

// Close the SDL audio subsystem. Any streams should be closed first.
func (o *Output) Close() {
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
}

// OpenStream implements the audio.Output interface.
func (o *Output) OpenStream(rate int, channels int) (audio.Stream, error) {
	spec := &sdl.AudioSpec{
		Freq:     int32(rate),
		Format:   sdl.AUDIO_F32LSB,
		Channels: uint8(channels),
		Samples:  deviceFrames,
	}

	var actual sdl.AudioSpec
	id, err := sdl.OpenAudioDevice("", false, spec, &actual, sdl.AUDIO_ALLOW_FREQUENCY_CHANGE|sdl.AUDIO_ALLOW_CHANNELS_CHANGE)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	if actual.Format != sdl.AUDIO_F32LSB {
		sdl.CloseAudioDevice(id)
		return nil, curated.Errorf("sdlaudio: %v", "unexpected audio format")
	}

	s := &Stream{
		id:       id,
		rate:     int(actual.Freq),
		channels: int(actual.Channels),
	}

	sdl.PauseAudioDevice(id, false)

	return s, nil
}

// Stream implements the audio.Stream interface for an SDL audio device.
type Stream struct {
	id       sdl.AudioDeviceID
	rate     int
	channels int

	// conversion buffer. reused for every call to Queue()
	buf []byte
}

// Rate implements the audio.Stream interface.
func (s *Stream) Rate() int {
	return s.rate
}

// Channels implements the audio.Stream interface.
func (s *Stream) Channels() int {
	return s.channels
}

// Queue implements the audio.Stream interface.
func (s *Stream) Queue(samples []float32) error {
	if cap(s.buf) < len(samples)*4 {
		s.buf = make([]byte, len(samples)*4)
	}
	s.buf = s.buf[:len(samples)*4]
	for i, v := range samples {
		binary.LittleEndian.PutUint32(s.buf[i*4:], math.Float32bits(v))
	}

	if err := sdl.QueueAudio(s.id, s.buf); err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}
	return nil
}

// Clear implements the audio.Stream interface.
func (s *Stream) Clear() {
	sdl.ClearQueuedAudio(s.id)
}

// Queued implements the audio.Stream interface.
func (s *Stream) Queued() int {
	return int(sdl.GetQueuedAudioSize(s.id)) / (4 * s.channels)
}

// Close implements the audio.Stream interface.
func (s *Stream) Close() error {
	sdl.CloseAudioDevice(s.id)
	return nil
}
