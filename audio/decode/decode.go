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

// Package decode converts WAV and MP3 files into PCM data suitable for the
// audio mixer. The File() function can be used as an audio.Decoder with the
// help of audio.DecoderFunc.
package decode

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher2d/audio"
	"github.com/jetsetilly/gopher2d/curated"
	"github.com/jetsetilly/gopher2d/logger"
)

// Sentinal error patterns.
const (
	UnsupportedFormat = "decode: unsupported format: %s"
	DecodeError       = "decode: %s: %v"
)

// File decodes the named file. The decoder is chosen by the file extension.
func File(filename string) (audio.PCM, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".wav" && ext != ".mp3" {
		return audio.PCM{}, curated.Errorf(UnsupportedFormat, filepath.Base(filename))
	}

	f, err := os.Open(filename)
	if err != nil {
		return audio.PCM{}, curated.Errorf(DecodeError, filename, err)
	}
	defer f.Close()

	var pcm audio.PCM
	switch ext {
	case ".wav":
		pcm, err = WAV(f)
	case ".mp3":
		pcm, err = MP3(f)
	}
	if err != nil {
		return audio.PCM{}, curated.Errorf(DecodeError, filename, err)
	}

	logger.Logf(logger.Allow, "decode", "%s: %dHz, %d channels, %.02fs", filepath.Base(filename),
		pcm.SampleRate, pcm.Channels, pcm.Duration().Seconds())

	return pcm, nil
}

// WAV decodes WAV data. All sample bit depths supported by the go-audio/wav
// package are accepted.
func WAV(r io.ReadSeeker) (audio.PCM, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return audio.PCM{}, fmt.Errorf("wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return audio.PCM{}, fmt.Errorf("wav: %w", err)
	}

	return fromIntBuffer(buf, int(dec.BitDepth))
}

func fromIntBuffer(buf *goaudio.IntBuffer, bitDepth int) (audio.PCM, error) {
	if buf.Format == nil {
		return audio.PCM{}, fmt.Errorf("wav: no format information")
	}

	scale := float32(goaudio.IntMaxSignedValue(bitDepth))
	if scale == 0 {
		return audio.PCM{}, fmt.Errorf("wav: unsupported bit depth (%d)", bitDepth)
	}

	// 8bit wav data is unsigned
	var bias int
	if bitDepth == 8 {
		bias = 128
	}

	pcm := audio.PCM{
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
		Data:       make([]float32, len(buf.Data)),
	}

	for i, v := range buf.Data {
		pcm.Data[i] = max(-1, min(1, float32(v-bias)/scale))
	}

	return pcm, nil
}

// MP3 decodes MP3 data. The result always has two channels.
func MP3(r io.Reader) (audio.PCM, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return audio.PCM{}, fmt.Errorf("mp3: %w", err)
	}

	// the decoded stream is always formatted as 16bit little endian stereo
	pcm := audio.PCM{
		SampleRate: dec.SampleRate(),
		Channels:   2,
	}
	if n := dec.Length(); n > 0 {
		pcm.Data = make([]float32, 0, n/2)
	}

	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 2 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			pcm.Data = append(pcm.Data, float32(v)/32767)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return audio.PCM{}, fmt.Errorf("mp3: %w", err)
		}
	}

	return pcm, nil
}
