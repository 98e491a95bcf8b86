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

// Controllers keeps track of user input that is not passed to the keypad.
type Controllers struct {
	// whether or not the last HandleUserInput() was for an event that was
	// consumed by the keypad
	LastKeyHandled bool

	// the pause key toggles this value
	Paused bool
}

// HandleUserInput forwards the event to the keypad if it is a keypad key. The
// returned value is true if the event was a quit event.
func (c *Controllers) HandleUserInput(ev Event, keys Keypad) (bool, error) {
	c.LastKeyHandled = false

	switch ev := ev.(type) {
	case EventQuit:
		return true, nil

	case EventKeyboard:
		if ev.Repeat {
			return false, nil
		}

		if k, ok := KeypadKey(ev.Key); ok && ev.Mod == KeyModNone {
			if ev.Down {
				keys.Press(k)
			} else {
				keys.Release(k)
			}
			c.LastKeyHandled = true
			return false, nil
		}

		if !ev.Down {
			return false, nil
		}

		switch ev.Key {
		case "Escape":
			return true, nil
		case "P", "Space":
			c.Paused = !c.Paused

			// releasing all keys means keys held when the pause was
			// requested will not be stuck down on resume
			keys.ReleaseAll()
		}
	}

	return false, nil
}
