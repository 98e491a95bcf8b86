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

package instructions

// Category of an instruction describes its effect.
type Category int

// List of categories.
const (
	Unknown Category = iota
	Register
	Memory
	Display
	Input
	Timer
	Skip
	Flow
	Subroutine
)

func (c Category) String() string {
	switch c {
	case Register:
		return "Register"
	case Memory:
		return "Memory"
	case Display:
		return "Display"
	case Input:
		return "Input"
	case Timer:
		return "Timer"
	case Skip:
		return "Skip"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	}
	return "Unknown"
}

// IsControlFlow returns true if instructions in the category can change the
// program counter by something other than the length of one instruction.
func (c Category) IsControlFlow() bool {
	return c == Skip || c == Flow || c == Subroutine
}
