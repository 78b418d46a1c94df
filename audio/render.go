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
	"github.com/jetsetilly/gopher2d/logger"
)

// render is called by the loop every half chunk while the sound is playing
func (s *Sound) render() {
	if s.stopped || s.ended || s.paused || !s.ready {
		return
	}
	s.timer = s.mixer.loop.After(s.period, s.render)

	// the stream has enough data for now
	if s.stream.Queued() >= 2*s.mixer.cfg.ChunkFrames {
		return
	}

	s.fill()

	if err := s.stream.Queue(s.chunk); err != nil {
		logger.Logf(logger.Allow, "audio", "%s: %v", s.src, err)
	}

	if s.ended {
		s.timer.Stop()
		s.ends.Publish(EndEvent{Source: s.src})
	}
}

// fill the chunk buffer from the current cursor position. sets the ended
// flag if the end of the data is reached and the sound is not looping, in
// which case the remainder of the chunk is silence
func (s *Sound) fill() {
	frames := s.pcm.Frames()
	channels := s.stream.Channels()
	stride := s.stride()

	gain := s.volume * s.mixer.master
	left := gain * (1 - max(0, s.pan))
	right := gain * (1 + min(0, s.pan))

	for i := range s.mixer.cfg.ChunkFrames {
		pos := int(s.cursor)
		if pos >= frames {
			if !s.loop || frames == 0 {
				s.ended = true
				clear(s.chunk[i*channels:])
				return
			}
			s.cursor = 0
			pos = 0
		}

		out := s.chunk[i*channels : (i+1)*channels]

		if channels == 1 {
			var sum float64
			for c := range s.pcm.Channels {
				sum += float64(s.pcm.Sample(pos, c))
			}
			out[0] = float32(sum / float64(s.pcm.Channels) * gain)
		} else {
			l := s.pcm.Sample(pos, 0)
			r := l
			if s.pcm.Channels > 1 {
				r = s.pcm.Sample(pos, 1)
			}
			out[0] = float32(float64(l) * left)
			out[1] = float32(float64(r) * right)
			clear(out[2:])
		}

		s.cursor += stride
	}
}
