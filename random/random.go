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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Counter is anything that can report how far the emulation has progressed.
// The hardware.Machine type satisfies this interface.
type Counter interface {
	Instructions() uint64
}

// Random is a random number generator that is sensitive to time within the
// emulation. Two instances with the same seed and the same Counter value
// produce the same number, which means a run can be reproduced exactly.
type Random struct {
	counter Counter

	// use zero seed rather than the random base seed. useful for tests and
	// for reproducible runs where random numbers must be predictable
	ZeroSeed bool

	// added to the seed. only really useful with ZeroSeed
	Seed int64
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(counter Counter) *Random {
	return &Random{
		counter: counter,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	seed := rnd.Seed + int64(rnd.counter.Instructions())
	if !rnd.ZeroSeed {
		seed += baseSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Byte returns a random byte value.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rand().Intn(256))
}
