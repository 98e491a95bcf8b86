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

// Package digest is used to create fingerprints of the emulation. Video
// fingerprints the display each time it is redrawn. Audio fingerprints the
// changes of the tone state.
//
// Digests are useful for checking that changes to the emulation have not
// changed the observable behaviour of a program. The PERFORMANCE mode prints
// the video digest at the end of a run when the random seed is fixed.
package digest
