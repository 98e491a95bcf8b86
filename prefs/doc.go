// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs facilitates the storage of preferences on disk. Preference
// values are represented by the Bool, Int, Float, String and Generic types.
// Each is safe to read from one goroutine while another goroutine sets it.
//
// A Disk instance ties preference values to keys in a preferences file:
//
//	var rate prefs.Int
//	dsk, _ := prefs.NewDisk(paths.ResourcePath("", prefs.DefaultPrefsFile))
//	dsk.Add("machine.cpurate", &rate)
//	dsk.Load(true)
//
// The file is shared by every Disk instance that names it. Saving one Disk
// does not clobber the keys that belong to another.
//
// Values can also be set from the command line. The -prefs argument is
// pushed onto the command line stack with PushCommandLineStack() and these
// values take precedence when Disk.Load() is called.
package prefs
