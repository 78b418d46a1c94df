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

// Package otoaudio implements the audio.Output interface with the oto
// library. Oto allows only one context per process so every stream has the
// same sample rate and channel count, chosen when the Output is created.
//
// The oto player pulls data from the stream on its own goroutine. The stream
// keeps the queued samples in a buffer protected by a mutex.
package otoaudio

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/gopher2d/audio"
	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/logger"
)

// Output opens streams on the oto context.
type Output struct {
	ctx      *oto.Context
	rate     int
	channels int
}

// NewOutput creates the oto context. It is an error to call this function
// more than once.
func NewOutput(rate int, channels int) (*Output, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: channels,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, curated.Errorf("otoaudio: %v", err)
	}
	<-ready

	logger.Logf(logger.Allow, "ebiten", "oto audio context: %dHz, %d channels", rate, channels)

	return &Output{
		ctx:      ctx,
		rate:     rate,
		channels: channels,
	}, nil
}

// OpenStream implements the audio.Output interface. The requested rate and
// channel count are ignored.
func (o *Output) OpenStream(_ int, _ int) (audio.Stream, error) {
	s := &Stream{
		rate:     o.rate,
		channels: o.channels,
	}
	s.p = o.ctx.NewPlayer(s)
	s.p.Play()
	return s, nil
}

// Stream implements the audio.Stream interface for an oto player.
type Stream struct {
	p        *oto.Player
	rate     int
	channels int

	// the queue is accessed by the oto goroutine through the Read() function
	crit  sync.Mutex
	queue []float32
}

// Read implements the io.Reader interface. Silence is returned if the queue
// is empty.
func (s *Stream) Read(buf []byte) (int, error) {
	s.crit.Lock()
	defer s.crit.Unlock()

	n := min(len(buf)/4, len(s.queue))
	for i, v := range s.queue[:n] {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	s.queue = s.queue[n:]

	clear(buf[n*4:])

	return len(buf), nil
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
	s.crit.Lock()
	defer s.crit.Unlock()
	s.queue = append(s.queue, samples...)
	return nil
}

// Clear implements the audio.Stream interface. Data already handed to the
// player is not cleared.
func (s *Stream) Clear() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.queue = s.queue[:0]
}

// Queued implements the audio.Stream interface.
func (s *Stream) Queued() int {
	s.crit.Lock()
	n := len(s.queue)
	s.crit.Unlock()
	return n/s.channels + s.p.BufferedSize()/(4*s.channels)
}

// Close implements the audio.Stream interface.
func (s *Stream) Close() error {
	s.p.Pause()
	if err := s.p.Close(); err != nil {
		return curated.Errorf("otoaudio: %v", err)
	}
	return nil
}
