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

// Package romloader is used to specify the program that is to be loaded into
// the emulated machine.
//
// The Load() function handles loading of data from different sources.
// Currently local files and data over HTTP are supported.
//
//	ld := romloader.NewLoader("roms/pong.ch8")
//	if err := ld.Load(); err != nil {
//		return err
//	}
//	err := machine.LoadROM(ld.Data, ld.Origin)
//
// After loading, the Hash field contains the SHA-1 of the data. If the Hash
// field is set before loading then the loaded data must match it.
package romloader
