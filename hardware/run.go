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

package hardware

import (
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/logger"
)

// UnsupportedState is returned when the continueCheck function returns a
// state the run functions do not understand.
const UnsupportedState = "machine: unsupported emulation state (%s)"

// It can be expensive to call the continueCheck() function for every
// instruction when running uncapped. The PerformanceBrake is the number of
// instructions RunUncapped() executes between calls.
const PerformanceBrake = 100

// Run the emulation in real time. Instructions are executed at the rate given
// by the machine.cpurate preference and the timers are decremented at the
// fixed TimerRate. The two rates are independent.
//
// The continueCheck function is called on every iteration of the loop. The
// loop returns when it returns govern.Ending. While it returns govern.Paused
// neither instructions nor timers advance. A nil continueCheck runs the
// emulation forever.
//
// The machine lock is never held while the loop sleeps.
func (m *Machine) Run(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	now := time.Now()
	rate := m.Prefs.CPURate.Get().(int)
	instr := clocks.NewCadence(rate, now)
	timer := clocks.NewCadence(clocks.TimerRate, now)

	var paused bool

	for {
		state, err := continueCheck()
		if err != nil {
			return err
		}

		switch state {
		case govern.Ending:
			return nil
		case govern.Paused:
			if !paused {
				paused = true
				m.silence()
			}
			time.Sleep(clocks.PollInterval)
			continue
		case govern.Running:
		default:
			return curated.Errorf(UnsupportedState, state)
		}

		now = time.Now()

		// resume after a pause without trying to catch up
		if paused {
			paused = false
			instr.Resync(now)
			timer.Resync(now)
		}

		if r := m.Prefs.CPURate.Get().(int); r != rate {
			rate = r
			instr.SetRate(rate, now)
		}

		n, dropped := instr.Due(now)
		if dropped {
			logger.Log(m.perm, "machine", "instruction loop has fallen behind. dropping backlog")
		}
		for ; n > 0; n-- {
			if err := m.Step(); err != nil {
				return err
			}
		}

		n, dropped = timer.Due(now)
		if dropped {
			logger.Log(m.perm, "machine", "timer loop has fallen behind. dropping backlog")
		}
		for ; n > 0; n-- {
			m.TickTimers()
		}

		time.Sleep(clocks.PollInterval)
	}
}

// RunUncapped runs the emulation as quickly as possible. The timers are
// decremented once for every rate/TimerRate instructions, which keeps the
// relationship between instructions and timers the same as for Run().
//
// The continueCheck function is called every PerformanceBrake instructions
// and only govern.Running and govern.Ending are supported.
func (m *Machine) RunUncapped(continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	perTick := m.stepsPerTick()

	var count int

	for {
		if count%PerformanceBrake == 0 {
			state, err := continueCheck()
			if err != nil {
				return err
			}
			switch state {
			case govern.Ending:
				return nil
			case govern.Running:
			default:
				return curated.Errorf(UnsupportedState, state)
			}
		}

		if err := m.Step(); err != nil {
			return err
		}

		count++
		if count%perTick == 0 {
			m.TickTimers()
		}
	}
}

// RunForInstructionCount performs the number of instruction loop iterations
// with the timers decremented in the same way as RunUncapped(). Useful for
// tests and digests where the result must be the same from run to run.
func (m *Machine) RunForInstructionCount(count int) error {
	perTick := m.stepsPerTick()
	for i := 1; i <= count; i++ {
		if err := m.Step(); err != nil {
			return err
		}
		if i%perTick == 0 {
			m.TickTimers()
		}
	}
	return nil
}

// the number of instruction loop iterations for every timer tick
func (m *Machine) stepsPerTick() int {
	perTick := m.Prefs.CPURate.Get().(int) / clocks.TimerRate
	if perTick < 1 {
		perTick = 1
	}
	return perTick
}
