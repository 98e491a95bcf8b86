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

package clocks

import (
	"time"
)

// Cadence paces an activity at a fixed rate. The time of the next tick is
// advanced by exactly one period for every tick reported by Due(), rather
// than being reset to the current time. This means an activity that is
// serviced late catches up and the rate does not drift over time.
type Cadence struct {
	period time.Duration
	next   time.Time

	// maximum number of ticks reported by a single call to Due()
	burst int
}

// NewCadence is the preferred method of initialisation for the Cadence type.
// The first tick is due one period after start.
func NewCadence(hz int, start time.Time) *Cadence {
	c := &Cadence{}
	c.SetRate(hz, start)
	return c
}

// SetRate changes the rate of the cadence. Any backlog is forgotten. Rates
// less than one are treated as one.
func (c *Cadence) SetRate(hz int, now time.Time) {
	if hz < 1 {
		hz = 1
	}
	c.period = time.Second / time.Duration(hz)

	// twice the number of ticks in a PollInterval, so that a loop polling at
	// that interval can keep up and still recover from a late wakeup
	c.burst = 2 * int((int64(hz)*int64(PollInterval)+int64(time.Second)-1)/int64(time.Second))
	if c.burst < MaxBurst {
		c.burst = MaxBurst
	}

	c.Resync(now)
}

// Burst returns the maximum number of ticks reported by a single call to
// Due(). Never less than MaxBurst.
func (c *Cadence) Burst() int {
	return c.burst
}

// Period returns the duration of one tick.
func (c *Cadence) Period() time.Duration {
	return c.period
}

// Resync forgets any backlog. The next tick will be due one period after
// now. Used when the emulation resumes after a pause.
func (c *Cadence) Resync(now time.Time) {
	c.next = now.Add(c.period)
}

// Due returns the number of ticks that have become due by now. No more than
// Burst() ticks are returned in a single call. If the cadence has fallen
// more than MaxLag behind then the backlog is dropped and the second return
// value is true.
func (c *Cadence) Due(now time.Time) (int, bool) {
	if now.Before(c.next) {
		return 0, false
	}

	var dropped bool
	if now.Sub(c.next) > MaxLag {
		c.next = now
		dropped = true
	}

	var n int
	for n < c.burst && !now.Before(c.next) {
		c.next = c.next.Add(c.period)
		n++
	}

	return n, dropped
}
