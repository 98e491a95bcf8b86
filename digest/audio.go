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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"sync"
)

// Counter implementations return the number of instructions executed by the
// machine.
type Counter interface {
	Instructions() uint64
}

// Audio is an implementation of the hardware.Beeper interface. It generates a
// SHA-1 value of every change of the tone state, including the instruction
// count at which the change happened.
type Audio struct {
	crit sync.Mutex

	counter Counter
	digest  [sha1.Size]byte

	// previous digest value, the instruction count and the tone state
	buffer [sha1.Size + 9]byte
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// Audio instance should be added to the machine with AddBeeper().
func NewAudio(counter Counter) *Audio {
	return &Audio{
		counter: counter,
	}
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	dig.digest = [sha1.Size]byte{}
}

// Beep implements the hardware.Beeper interface.
func (dig *Audio) Beep(on bool) error {
	dig.crit.Lock()
	defer dig.crit.Unlock()

	copy(dig.buffer[:], dig.digest[:])
	binary.BigEndian.PutUint64(dig.buffer[sha1.Size:], dig.counter.Instructions())
	if on {
		dig.buffer[sha1.Size+8] = 0x01
	} else {
		dig.buffer[sha1.Size+8] = 0x00
	}
	dig.digest = sha1.Sum(dig.buffer[:])

	return nil
}
