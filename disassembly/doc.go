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

// Package disassembly produces an annotated disassembly of a program.
//
// The disassembly is performed in two passes. The linear pass decodes an
// instruction at every byte address. The flow pass then follows the program
// from the origin address, marking (blessing) every entry that can be
// reached. Jump and call targets found during the flow pass are labelled.
//
// For quick disassemblies of a ROM file the FromLoader() function can be
// used.
package disassembly
