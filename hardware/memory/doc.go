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

// Package memory implements the 4KB address space of the machine.
//
// Addresses 0x000 to 0x1FF are reserved. The font glyphs for the hexadecimal
// digits occupy 0x050 to 0x09F. Programs are loaded at 0x200.
//
// Reading or writing outside of the address space is not something a
// program can do by accident. It indicates a fault in the program being
// executed (an I register pointing too high for example) and the returned
// error is fatal to the emulation.
package memory
