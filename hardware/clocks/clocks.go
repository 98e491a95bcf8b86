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

import "time"

// TimerRate is the frequency of the delay and sound timers, in Hz. The
// display is also signalled at this rate.
const TimerRate = 60

// DefaultCPURate is the default number of instructions executed per second.
const DefaultCPURate = 500

// Limits for the CPU rate preference.
const (
	MinCPURate = 1
	MaxCPURate = 100000
)

// PollInterval is how long the emulation sleeps between iterations of the
// scheduling loop.
const PollInterval = time.Millisecond

// MaxBurst is the smallest limit on the number of ticks a Cadence reports in
// a single call to Due(). Fast cadences have a larger limit.
const MaxBurst = 16

// MaxLag is how far behind a Cadence can fall before the backlog is dropped.
const MaxLag = 250 * time.Millisecond
