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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. The pattern given to
// Errorf() is remembered and is used to differentiate between errors. For
// example, the input package declares:
//
//	const UnknownKey = "unknown key: %s"
//
// and callers can check for that condition with:
//
//	if curated.Is(err, input.UnknownKey) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs anywhere in the
// error chain. This is useful when an error has been wrapped by a higher level
// package:
//
//	e := curated.Errorf(input.UnknownKey, "AC Back")
//	f := curated.Errorf(engine.Fatal, e)
//
//	curated.Is(f, input.UnknownKey)  // false
//	curated.Has(f, input.UnknownKey) // true
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is 'expected'
// by the package that raised it and false if the error came from somewhere
// else entirely (the operating system or a third party library for example).
//
// The Error() implementation normalises the message so that adjacent
// duplicate parts of the chain are not repeated. For example, "audio: audio:
// device not found" is reduced to "audio: device not found".
package curated
