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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("play", "headless", "bindings")
//	_, _ = md.Parse()
//
// Parse() checks to see if the first argument after the flags is one of the
// sub-modes. If it is, then the mode is selected and removed from the list of
// remaining arguments. If it isn't then the first sub-mode is the default.
// Sub-mode comparisons are case insensitive and Mode() always returns the
// upper case form:
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		frames := md.AddInt("frames", 0, "number of frames to run")
//		p, err := md.Parse()
//		...
//	}
//
// The second call to Parse() checks for the flags of the new mode and any
// further sub-modes. Modes can be chained as deep as required. The path of
// modes encountered is returned by Path().
package modalflag
