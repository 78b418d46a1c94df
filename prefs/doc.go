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

// Package prefs facilitates the storage of preference values. The Bool,
// Int, Float and String types are live values that can be read and written
// concurrently. A preference is made persistent by adding it to a Disk
// instance:
//
//	var rate prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	_ = dsk.Add("engine.fixedRate", &rate)
//	_ = dsk.Load(true)
//
// The file format is one "key :: value" entry per line, preceded by the
// WarningBoilerPlate line. Entries are sorted by key.
//
// Hooks can be attached to a value with SetHookPre() and SetHookPost(). The
// engine uses these to push new values to running components.
//
// Values can also be given on the command line with the -prefs flag. See
// PushCommandLineStack() for details.
package prefs
