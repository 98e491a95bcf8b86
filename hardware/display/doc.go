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

// Package display implements the 64x32 monochrome display of the machine.
//
// Pixels are only ever changed by XOR plotting (see Plot()) or by clearing
// the entire display. Coordinates wrap at the edges of the display so a
// sprite drawn near the right edge continues on the left edge.
//
// The renderer should check for changes with IsDirty() or, preferably, take
// a copy of the display with Consume().
package display
