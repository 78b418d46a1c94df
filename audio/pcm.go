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

import "time"

// PCM is decoded audio data. Samples are interleaved and normalised to the
// range -1.0 to 1.0.
type PCM struct {
	SampleRate int
	Channels   int
	Data       []float32
}

// Frames returns the number of sample frames in the data. A frame is one
// sample for every channel.
func (p PCM) Frames() int {
	if p.Channels <= 0 {
		return 0
	}
	return len(p.Data) / p.Channels
}

// Sample returns the sample for the channel in the specified frame. Returns
// zero for frames or channels out of range.
func (p PCM) Sample(frame int, channel int) float32 {
	if channel < 0 || channel >= p.Channels || frame < 0 || frame >= p.Frames() {
		return 0
	}
	return p.Data[frame*p.Channels+channel]
}

// Duration of the PCM data.
func (p PCM) Duration() time.Duration {
	if p.SampleRate <= 0 {
		return 0
	}
	return time.Duration(p.Frames()) * time.Second / time.Duration(p.SampleRate)
}

func (p PCM) valid() bool {
	return p.SampleRate > 0 && p.Channels > 0
}

// Decoder converts a source identifier, usually a filename, to PCM data.
type Decoder interface {
	Decode(src string) (PCM, error)
}

// DecoderFunc allows a plain function to be used as a Decoder.
type DecoderFunc func(src string) (PCM, error)

// Decode implements the Decoder interface.
func (f DecoderFunc) Decode(src string) (PCM, error) {
	return f(src)
}
