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

package audio_test

import (
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/gopher2d/audio"
	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/runloop"
	"github.com/jetsetilly/gopher2d/test"
)

const (
	testRate  = 44100
	testChunk = 2048
)

type harness struct {
	clk    *runloop.ManualClock
	loop   *runloop.Loop
	output *audio.MemoryOutput
	mixer  *audio.Mixer
	period time.Duration
}

func newHarness(t *testing.T, channels int, decoder audio.Decoder) *harness {
	t.Helper()

	h := &harness{
		clk:    runloop.NewManualClock(),
		output: audio.NewMemoryOutput(testRate, channels),
		period: time.Duration(testChunk) * time.Second / testRate / 2,
	}
	h.loop = runloop.NewLoop(h.clk)

	var err error
	h.mixer, err = audio.NewMixer(h.loop, h.output, decoder, audio.Config{
		Rate:        testRate,
		Channels:    channels,
		ChunkFrames: testChunk,
	})
	test.DemandSuccess(t, err)

	return h
}

// advance time by half a chunk and consume the same amount of data from every
// stream, as though the device had played it
func (h *harness) step() {
	h.clk.Advance(h.period)
	for _, s := range h.output.Streams() {
		s.Consume(testChunk / 2)
	}
	h.loop.Service()
}

func constantPCM(channels int, frames int, v ...float32) audio.PCM {
	pcm := audio.PCM{
		SampleRate: testRate,
		Channels:   channels,
		Data:       make([]float32, frames*channels),
	}
	for i := range pcm.Data {
		pcm.Data[i] = v[i%len(v)]
	}
	return pcm
}

func TestNoOutput(t *testing.T) {
	_, err := audio.NewMixer(runloop.NewLoop(nil), nil, nil, audio.Config{})
	test.ExpectSuccess(t, curated.Is(err, audio.NoOutput))
}

func TestEndOnce(t *testing.T) {
	h := newHarness(t, 1, nil)

	pcm := constantPCM(1, testRate, 0.5)
	snd := h.mixer.PlayPCM(pcm, audio.DefaultOptions())
	test.ExpectApproximate(t, snd.Duration(), 1.0, 0.0001)

	var ends int
	var deliveredAtEnd int
	snd.OnEnd(func() {
		ends++
		deliveredAtEnd = len(h.output.Streams()[0].Data())
	})

	h.loop.Service()
	for range 100 {
		h.step()
	}

	test.ExpectEquality(t, ends, 1)
	test.ExpectSuccess(t, snd.Ended())
	test.ExpectSuccess(t, deliveredAtEnd >= testRate)

	streams := h.output.Streams()
	test.DemandEquality(t, len(streams), 1)
	data := streams[0].Data()
	test.ExpectEquality(t, len(data), deliveredAtEnd)

	// sound for the duration of the source followed by silence
	for i, v := range data {
		if i < testRate {
			if !test.ExpectEquality(t, v, float32(0.5), i) {
				break
			}
		} else {
			if !test.ExpectEquality(t, v, float32(0), i) {
				break
			}
		}
	}

	// no more timers once the sound has ended
	test.ExpectEquality(t, h.loop.Pending(), 0)
}

func TestThroughput(t *testing.T) {
	h := newHarness(t, 1, nil)

	pcm := constantPCM(1, testRate*10, 0.5)
	h.mixer.PlayPCM(pcm, audio.DefaultOptions())

	h.loop.Service()
	for range 20 {
		h.step()
	}

	// a chunk is only added when fewer than two chunks are queued
	s := h.output.Streams()[0]
	test.ExpectSuccess(t, s.Queued() <= testChunk*3)
	test.ExpectSuccess(t, s.Queued() >= testChunk*2)

	// rendering keeps pace with consumption
	test.ExpectApproximate(t, s.Chunks(), 12, 0.1)
}

func TestPan(t *testing.T) {
	h := newHarness(t, 2, nil)

	opts := audio.DefaultOptions()
	opts.Pan = 1.0
	right := h.mixer.PlayPCM(constantPCM(1, 100, 0.5), opts)

	opts.Pan = -1.0
	left := h.mixer.PlayPCM(constantPCM(1, 100, 0.5), opts)

	opts.Pan = 0.5
	stereo := h.mixer.PlayPCM(constantPCM(2, 100, 0.2, 0.8), opts)

	h.loop.Service()

	streams := h.output.Streams()
	test.DemandEquality(t, len(streams), 3)

	data := streams[0].Data()
	test.ExpectEquality(t, data[0], float32(0))
	test.ExpectEquality(t, data[1], float32(0.5))
	test.ExpectEquality(t, right.Pan(), 1.0)

	data = streams[1].Data()
	test.ExpectEquality(t, data[0], float32(0.5))
	test.ExpectEquality(t, data[1], float32(0))
	test.ExpectEquality(t, left.Pan(), -1.0)

	data = streams[2].Data()
	test.ExpectApproximate(t, data[0], 0.1, 0.0001)
	test.ExpectApproximate(t, data[1], 0.8, 0.0001)
	test.ExpectEquality(t, stereo.Pan(), 0.5)

	// pan is clamped
	stereo.SetPan(10)
	test.ExpectEquality(t, stereo.Pan(), 1.0)
}

func TestMonoMixdown(t *testing.T) {
	h := newHarness(t, 1, nil)

	opts := audio.DefaultOptions()
	opts.Pan = 1.0
	h.mixer.PlayPCM(constantPCM(2, 100, 0.2, 0.6), opts)
	h.loop.Service()

	// pan has no effect on mono output
	data := h.output.Streams()[0].Data()
	test.ExpectApproximate(t, data[0], 0.4, 0.0001)
}

func TestVolume(t *testing.T) {
	h := newHarness(t, 1, nil)
	h.mixer.SetMasterVolume(0.5)
	test.ExpectEquality(t, h.mixer.MasterVolume(), 0.5)

	opts := audio.DefaultOptions()
	opts.Volume = 0.5
	snd := h.mixer.PlayPCM(constantPCM(1, 100, 1.0), opts)
	h.loop.Service()

	data := h.output.Streams()[0].Data()
	test.ExpectEquality(t, data[0], float32(0.25))

	snd.SetVolume(2.0)
	test.ExpectEquality(t, snd.Volume(), 1.0)
	h.mixer.SetMasterVolume(-1)
	test.ExpectEquality(t, h.mixer.MasterVolume(), 0.0)
}

func TestSpeed(t *testing.T) {
	h := newHarness(t, 1, nil)

	ramp := audio.PCM{
		SampleRate: testRate,
		Channels:   1,
		Data:       make([]float32, 1000),
	}
	for i := range ramp.Data {
		ramp.Data[i] = float32(i) / 1000
	}

	opts := audio.DefaultOptions()
	opts.Speed = 2.0
	fast := h.mixer.PlayPCM(ramp, opts)

	opts = audio.DefaultOptions()
	opts.Detune = 1200
	detuned := h.mixer.PlayPCM(ramp, opts)

	opts = audio.DefaultOptions()
	opts.Speed = 0.5
	slow := h.mixer.PlayPCM(ramp, opts)

	h.loop.Service()

	streams := h.output.Streams()
	test.DemandEquality(t, len(streams), 3)

	for i := range 10 {
		test.ExpectEquality(t, streams[0].Data()[i], ramp.Data[i*2])
		test.ExpectEquality(t, streams[1].Data()[i], ramp.Data[i*2])
		test.ExpectEquality(t, streams[2].Data()[i], ramp.Data[i/2])
	}

	// the faster sounds end sooner
	test.ExpectSuccess(t, fast.Ended())
	test.ExpectSuccess(t, detuned.Ended())
	test.ExpectSuccess(t, slow.Ended())

	fast.SetSpeed(0)
	test.ExpectEquality(t, fast.Speed(), 1.0)
}

func TestLoop(t *testing.T) {
	h := newHarness(t, 1, nil)

	opts := audio.DefaultOptions()
	opts.Loop = true
	snd := h.mixer.PlayPCM(constantPCM(1, 100, 0.5), opts)

	var ends int
	snd.OnEnd(func() { ends++ })

	h.loop.Service()
	for range 10 {
		h.step()
	}

	test.ExpectEquality(t, ends, 0)
	test.ExpectFailure(t, snd.Ended())
	for _, v := range h.output.Streams()[0].Data() {
		if !test.ExpectEquality(t, v, float32(0.5)) {
			break
		}
	}

	// turning looping off allows the sound to end
	snd.SetLoop(false)
	for range 3 {
		h.step()
	}
	test.ExpectEquality(t, ends, 1)
}

func TestSeekTime(t *testing.T) {
	h := newHarness(t, 1, nil)

	opts := audio.DefaultOptions()
	opts.Paused = true
	snd := h.mixer.PlayPCM(constantPCM(1, testRate*2, 0.5), opts)

	snd.Seek(0.5)
	test.ExpectApproximate(t, snd.Time(), 0.5, 1.0/testRate)
	snd.Seek(1.2345)
	test.ExpectApproximate(t, snd.Time(), 1.2345, 1.0/testRate)

	// seek is clamped to the duration
	snd.Seek(10)
	test.ExpectApproximate(t, snd.Time(), 2.0, 1.0/testRate)
	snd.Seek(-1)
	test.ExpectEquality(t, snd.Time(), 0.0)

	// nothing is rendered while paused
	h.loop.Service()
	h.step()
	test.ExpectEquality(t, h.output.Streams()[0].Chunks(), 0)
}

func TestPause(t *testing.T) {
	h := newHarness(t, 1, nil)

	snd := h.mixer.PlayPCM(constantPCM(1, testRate*10, 0.5), audio.DefaultOptions())
	h.loop.Service()
	s := h.output.Streams()[0]
	test.ExpectEquality(t, s.Chunks(), 1)

	snd.SetPaused(true)
	test.ExpectSuccess(t, snd.Paused())
	pos := snd.Time()
	test.ExpectEquality(t, h.loop.Pending(), 0)

	for range 10 {
		h.step()
	}
	test.ExpectEquality(t, s.Chunks(), 1)
	test.ExpectEquality(t, snd.Time(), pos)

	snd.SetPaused(false)
	h.loop.Service()
	test.ExpectEquality(t, s.Chunks(), 2)
	test.ExpectApproximate(t, snd.Time(), pos*2, 0.0001)
}

func TestStop(t *testing.T) {
	h := newHarness(t, 1, nil)

	snd := h.mixer.PlayPCM(constantPCM(1, testRate*10, 0.5), audio.DefaultOptions())
	h.loop.Service()
	test.ExpectEquality(t, len(h.mixer.Sounds()), 1)

	snd.Stop()
	test.ExpectSuccess(t, snd.Stopped())
	test.ExpectEquality(t, len(h.mixer.Sounds()), 0)
	test.ExpectEquality(t, h.loop.Pending(), 0)

	s := h.output.Streams()[0]
	test.ExpectEquality(t, s.Cleared(), 1)
	test.ExpectEquality(t, s.Queued(), 0)
	test.ExpectSuccess(t, s.Closed())

	// unpausing a stopped sound does nothing
	snd.SetPaused(true)
	snd.SetPaused(false)
	h.step()
	test.ExpectEquality(t, s.Chunks(), 1)
}

func TestStopAll(t *testing.T) {
	h := newHarness(t, 2, nil)
	h.mixer.PlayPCM(constantPCM(1, 100, 0.5), audio.DefaultOptions())
	h.mixer.PlayPCM(constantPCM(1, 100, 0.5), audio.DefaultOptions())
	test.ExpectEquality(t, len(h.mixer.Sounds()), 2)

	h.mixer.StopAll()
	test.ExpectEquality(t, len(h.mixer.Sounds()), 0)
	for _, s := range h.output.Streams() {
		test.ExpectSuccess(t, s.Closed())
	}
}

// service the loop until the mixer has no decodes in progress
func waitForDecode(t *testing.T, h *harness) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for h.mixer.Decoding() > 0 {
		if time.Now().After(deadline) {
			t.Fatalf("decoding did not complete")
		}
		time.Sleep(time.Millisecond)
		h.loop.Service()
	}
}

func TestPlayDecode(t *testing.T) {
	errBadFile := errors.New("bad file")

	h := newHarness(t, 1, audio.DecoderFunc(func(src string) (audio.PCM, error) {
		if src == "bad.wav" {
			return audio.PCM{}, errBadFile
		}
		return constantPCM(1, 100, 0.5), nil
	}))

	good := h.mixer.Play("good.wav", audio.DefaultOptions())
	bad := h.mixer.Play("bad.wav", audio.DefaultOptions())
	music := h.mixer.PlayMusic("music.mp3", audio.DefaultOptions())
	test.ExpectFailure(t, good.Ready())
	test.ExpectEquality(t, good.Source(), "good.wav")

	waitForDecode(t, h)

	test.ExpectSuccess(t, good.Ready())
	test.ExpectSuccess(t, good.Err())
	test.ExpectSuccess(t, music.Ready())

	test.ExpectFailure(t, bad.Ready())
	test.ExpectFailure(t, bad.Err())
	test.ExpectSuccess(t, errors.Is(bad.Err(), errBadFile))

	// the bad sound has been forgotten and never opened a stream
	test.ExpectEquality(t, len(h.mixer.Sounds()), 2)
	test.ExpectEquality(t, len(h.output.Streams()), 2)

	// both good sounds start playing
	h.loop.Service()
	for _, s := range h.output.Streams() {
		test.ExpectEquality(t, s.Chunks(), 1)
	}

	// connect is not supported but is harmless
	good.Connect(nil)
	music.Connect(nil)
}

func TestPlayPausedMusic(t *testing.T) {
	h := newHarness(t, 1, audio.DecoderFunc(func(string) (audio.PCM, error) {
		return constantPCM(1, 100, 0.5), nil
	}))

	opts := audio.DefaultOptions()
	opts.Paused = true
	opts.Seek = 0.001
	music := h.mixer.PlayMusic("music.mp3", opts)
	test.ExpectApproximate(t, music.Time(), 0.001, 0.0001)

	waitForDecode(t, h)
	h.loop.Service()

	test.ExpectSuccess(t, music.Ready())
	test.ExpectApproximate(t, music.Time(), 0.001, 1.0/testRate)
	test.ExpectEquality(t, h.output.Streams()[0].Chunks(), 0)
}

func TestNoDecoder(t *testing.T) {
	h := newHarness(t, 1, nil)
	snd := h.mixer.Play("sound.wav", audio.DefaultOptions())
	test.ExpectSuccess(t, curated.Has(snd.Err(), audio.NoDecoder))
	test.ExpectEquality(t, h.mixer.Decoding(), 0)
}

func TestBadPCM(t *testing.T) {
	h := newHarness(t, 1, nil)
	snd := h.mixer.PlayPCM(audio.PCM{}, audio.DefaultOptions())
	test.ExpectSuccess(t, curated.Has(snd.Err(), audio.BadPCM))
	test.ExpectEquality(t, len(h.output.Streams()), 0)
}
