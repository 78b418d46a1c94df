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
	"sync"
)

// Stream is a queue of samples for a playback device. Every Sound has its
// own Stream.
type Stream interface {
	// the sample rate and number of channels the stream was opened with. these
	// may differ from the values requested
	Rate() int
	Channels() int

	// add interleaved samples to the end of the queue
	Queue(samples []float32) error

	// remove all queued samples
	Clear()

	// the number of frames in the queue that have not yet been played
	Queued() int

	Close() error
}

// Output opens streams on a playback device.
type Output interface {
	OpenStream(rate int, channels int) (Stream, error)
}

// MemoryOutput is an Output that keeps all queued data in memory. Nothing is
// ever played so queued frames must be consumed explicitly.
type MemoryOutput struct {
	rate     int
	channels int

	crit    sync.Mutex
	streams []*MemoryStream
}

// NewMemoryOutput is the preferred method of initialisation for the
// MemoryOutput type. Streams opened by the output will always have the
// specified rate and number of channels.
func NewMemoryOutput(rate int, channels int) *MemoryOutput {
	return &MemoryOutput{
		rate:     rate,
		channels: channels,
	}
}

// OpenStream implements the Output interface.
func (o *MemoryOutput) OpenStream(_ int, _ int) (Stream, error) {
	o.crit.Lock()
	defer o.crit.Unlock()
	s := &MemoryStream{
		rate:     o.rate,
		channels: o.channels,
	}
	o.streams = append(o.streams, s)
	return s, nil
}

// Streams returns all the streams opened by the output in the order they
// were opened.
func (o *MemoryOutput) Streams() []*MemoryStream {
	o.crit.Lock()
	defer o.crit.Unlock()
	return slices.Clone(o.streams)
}

// MemoryStream is the Stream implementation for MemoryOutput.
type MemoryStream struct {
	crit     sync.Mutex
	rate     int
	channels int
	data     []float32
	chunks   int
	pending  int
	cleared  int
	closed   bool
}

// Rate implements the Stream interface.
func (s *MemoryStream) Rate() int {
	return s.rate
}

// Channels implements the Stream interface.
func (s *MemoryStream) Channels() int {
	return s.channels
}

// Queue implements the Stream interface.
func (s *MemoryStream) Queue(samples []float32) error {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.data = append(s.data, samples...)
	s.pending += len(samples) / s.channels
	s.chunks++
	return nil
}

// Clear implements the Stream interface.
func (s *MemoryStream) Clear() {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.pending = 0
	s.cleared++
}

// Queued implements the Stream interface.
func (s *MemoryStream) Queued() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.pending
}

// Close implements the Stream interface.
func (s *MemoryStream) Close() error {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.closed = true
	return nil
}

// Consume removes frames from the queue as though they had been played.
func (s *MemoryStream) Consume(frames int) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.pending = max(0, s.pending-frames)
}

// Data returns a copy of every sample ever queued.
func (s *MemoryStream) Data() []float32 {
	s.crit.Lock()
	defer s.crit.Unlock()
	return slices.Clone(s.data)
}

// Chunks returns the number of calls to Queue().
func (s *MemoryStream) Chunks() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.chunks
}

// Cleared returns the number of calls to Clear().
func (s *MemoryStream) Cleared() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.cleared
}

// Closed returns true if Close() has been called.
func (s *MemoryStream) Closed() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.closed
}
