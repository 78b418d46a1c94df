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

// Package audio is a software mixer for decoded sound files. Each playing
// sound is represented by a Sound handle. The handle owns the decoded PCM
// data, a playback cursor and the playback parameters (volume, pan, speed,
// etc.) and renders its output in chunks to its own Stream.
//
// Rendering is driven by a runloop.Loop timer that fires twice for every
// chunk's worth of output time. A chunk is only rendered if the stream has
// fewer than two chunks queued, which keeps the rendering rate matched to the
// rate the device consumes samples.
//
// Speed and pitch changes are achieved by stepping through the source data
// with a stride other than one. There is no interpolation.
//
// Decoding is performed by a Decoder on a separate goroutine. The result is
// handed back to the loop with runloop.Loop.Post() so that all other work
// happens on the loop's goroutine.
//
// Streams are provided by an Output. Implementations are in the sdlaudio,
// otoaudio and wavwriter packages. MemoryOutput is an implementation that
// keeps everything in memory and is suitable for testing.
package audio
