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

package easyterm

// list of ASCII codes for non-alphanumeric characters.
const (
	KeyInterrupt = 3  // end-of-text character
	KeySuspend   = 26 // substitute character
	KeyEsc       = 27
	KeySpace     = 32
	KeyBackspace = 127
)

// ANSI control sequences.
const (
	CursorHome   = "\033[H"
	ClearScreen  = "\033[2J"
	ClearLine    = "\033[K"
	HideCursor   = "\033[?25l"
	ShowCursor   = "\033[?25h"
	AltScreen    = "\033[?1049h"
	NormalScreen = "\033[?1049l"
)
