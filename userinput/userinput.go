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

package userinput

// Keypad conceptualises the machine's keypad. Implemented by input.Keypad.
type Keypad interface {
	Press(key uint8)
	Release(key uint8)
	ReleaseAll()
}

// Event represents all the different type of events that can occur in the gui.
type Event interface{}

// KeyMod identifies.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is the data that accompanies a keyboard event. The Key field
// uses the key names as returned by SDL ("1", "Q", "Space", "Escape", etc.)
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
	Mod    KeyMod
}

// EventQuit is sent when the gui window has been closed.
type EventQuit struct{}
