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

package main

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher2d/input"
	"github.com/jetsetilly/gopher2d/modalflag"
)

// validate a bindings file and print the bindings in canonical form
func bindings(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		fmt.Fprint(output, defaultBindingsString())
		return nil
	case 1:
		b, err := input.LoadBindings(md.GetArg(0))
		if err != nil {
			return err
		}
		fmt.Fprint(output, b.String())
		return nil
	}

	return fmt.Errorf("too many arguments for %s mode", md)
}

func defaultBindingsString() string {
	b, err := input.NewBindings(defaultBindings)
	if err != nil {
		return err.Error()
	}
	return b.String()
}
