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

package input

import (
	"fmt"
	"strings"
	"sync"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// Keypad records which of the sixteen keys are currently down. Keys are set
// by the input collaborator (the GUI) and read by the emulation so all access
// is through the crit mutex.
type Keypad struct {
	crit sync.Mutex
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

func (kp *Keypad) String() string {
	kp.crit.Lock()
	defer kp.crit.Unlock()

	s := strings.Builder{}
	for k, down := range kp.keys {
		if down {
			s.WriteString(fmt.Sprintf("%X", k))
		} else {
			s.WriteRune('-')
		}
	}
	return s.String()
}

// Press records the key as being down. Keys outside the range of the keypad
// are ignored.
func (kp *Keypad) Press(key uint8) {
	kp.set(key, true)
}

// Release records the key as being up. Keys outside the range of the keypad
// are ignored.
func (kp *Keypad) Release(key uint8) {
	kp.set(key, false)
}

func (kp *Keypad) set(key uint8, down bool) {
	if key >= NumKeys {
		return
	}
	kp.crit.Lock()
	defer kp.crit.Unlock()
	kp.keys[key] = down
}

// ReleaseAll records every key as being up.
func (kp *Keypad) ReleaseAll() {
	kp.crit.Lock()
	defer kp.crit.Unlock()
	kp.keys = [NumKeys]bool{}
}

// IsPressed returns true if the key is down. Keys outside the range of the
// keypad are never down.
func (kp *Keypad) IsPressed(key uint8) bool {
	if key >= NumKeys {
		return false
	}
	kp.crit.Lock()
	defer kp.crit.Unlock()
	return kp.keys[key]
}

// FirstPressed returns the lowest numbered key that is down. The second
// return value is false if no key is down.
func (kp *Keypad) FirstPressed() (uint8, bool) {
	kp.crit.Lock()
	defer kp.crit.Unlock()
	for k, down := range kp.keys {
		if down {
			return uint8(k), true
		}
	}
	return 0, false
}
