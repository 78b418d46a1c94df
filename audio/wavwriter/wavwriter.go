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

// Package wavwriter implements the audio.Output interface by writing all
// streams to a single WAV file. Audio data is buffered in memory in its
// entirety and written to disk when Write() is called. It is therefore
// probably only suitable for testing purposes and for short headless runs.
//
// There is no device consuming the queued data so the passage of time is
// measured with a runloop.Clock. Every stream is placed on the output
// timeline at the moment it was opened and data queued to a stream that has
// run dry is placed at the current time, as it would be on a real device.
package wavwriter

import (
	"os"
	"sync"
	"time"

	"github.com/jetsetilly/gopher2d/audio"
	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/logger"
	"github.com/jetsetilly/gopher2d/runloop"
	"github.com/youpy/go-wav"
)

// WavWriter implements the audio.Output interface.
type WavWriter struct {
	filename string
	rate     int
	channels int
	clock    runloop.Clock
	start    time.Time

	crit    sync.Mutex
	streams []*stream
}

// New is the preferred method of initialisation for the WavWriter type. The
// number of channels must be one or two.
func New(filename string, rate int, channels int, clock runloop.Clock) (*WavWriter, error) {
	if channels < 1 || channels > 2 {
		return nil, curated.Errorf("wavwriter: %v", "only mono or stereo output is possible")
	}
	if rate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample rate must be positive")
	}
	if clock == nil {
		clock = runloop.SystemClock{}
	}

	return &WavWriter{
		filename: filename,
		rate:     rate,
		channels: channels,
		clock:    clock,
		start:    clock.Now(),
	}, nil
}

// the number of frames that have been played since the writer was created
func (aw *WavWriter) now() int {
	d := aw.clock.Now().Sub(aw.start)
	secs := d / time.Second
	frac := d % time.Second
	return int(secs)*aw.rate + int(frac*time.Duration(aw.rate)/time.Second)
}

// OpenStream implements the audio.Output interface. The requested rate and
// channel count are ignored.
func (aw *WavWriter) OpenStream(_ int, _ int) (audio.Stream, error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	s := &stream{
		aw:     aw,
		offset: aw.now(),
	}
	aw.streams = append(aw.streams, s)
	return s, nil
}

// Write the mix of all streams to the file.
func (aw *WavWriter) Write() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	var length int
	for _, s := range aw.streams {
		length = max(length, s.end())
	}

	mix := make([]float32, length*aw.channels)
	for _, s := range aw.streams {
		o := s.offset * aw.channels
		for i, v := range s.data {
			mix[o+i] += v
		}
	}

	buffer := make([]wav.Sample, length)
	for i := range buffer {
		for c := range aw.channels {
			v := max(-1, min(1, mix[i*aw.channels+c]))
			buffer[i].Values[c] = int(v * 32767)
		}
	}

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(buffer)), uint16(aw.channels), uint32(aw.rate), 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "audio", "writing %d streams to %s", len(aw.streams), aw.filename)

	if err := enc.WriteSamples(buffer); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// stream implements the audio.Stream interface
type stream struct {
	aw *WavWriter

	// position on the output timeline of the first frame in data
	offset int
	data   []float32
}

// the position on the output timeline after the last queued frame. must be
// called with the critical section locked
func (s *stream) end() int {
	return s.offset + len(s.data)/s.aw.channels
}

func (s *stream) Rate() int {
	return s.aw.rate
}

func (s *stream) Channels() int {
	return s.aw.channels
}

func (s *stream) Queue(samples []float32) error {
	s.aw.crit.Lock()
	defer s.aw.crit.Unlock()

	// the stream has run dry. the new data starts now
	if gap := s.aw.now() - s.end(); gap > 0 {
		s.data = append(s.data, make([]float32, gap*s.aw.channels)...)
	}

	s.data = append(s.data, samples...)
	return nil
}

func (s *stream) Clear() {
	s.aw.crit.Lock()
	defer s.aw.crit.Unlock()

	played := max(0, s.aw.now()-s.offset)
	if played*s.aw.channels < len(s.data) {
		s.data = s.data[:played*s.aw.channels]
	}
}

func (s *stream) Queued() int {
	s.aw.crit.Lock()
	defer s.aw.crit.Unlock()
	return max(0, s.end()-s.aw.now())
}

func (s *stream) Close() error {
	return nil
}
