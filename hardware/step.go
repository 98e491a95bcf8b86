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

// Step performs one iteration of the instruction loop. If the CPU is waiting
// for a key press then the keypad is polled and the wait resolved if a key is
// down. Otherwise one instruction is executed.
//
// The sound timer is checked after every step and the beepers are notified
// if the tone has started or stopped.
//
// A returned error is fatal to the emulation.
func (m *Machine) Step() error {
	m.crit.Lock()

	var err error
	if waiting, _ := m.CPU.Waiting(); waiting {
		m.CPU.PollWait(m.Keypad)
	} else {
		err = m.CPU.Cycle(m.Mem, m.Display, m.Keypad)
		m.instructions.Add(1)
	}

	tone := m.CPU.SoundActive()
	changed := tone != m.tone
	m.tone = tone

	m.crit.Unlock()

	if err != nil {
		return err
	}

	if changed {
		m.beep(tone)
	}

	return nil
}

// TickTimers performs one iteration of the timer loop. The delay and sound
// timers are decremented and, if the display has changed, the redrawers are
// notified. The display's dirty flag is left for the redrawer to clear.
func (m *Machine) TickTimers() {
	m.crit.Lock()
	m.CPU.TickTimers()
	m.crit.Unlock()

	if m.Display.IsDirty() {
		m.redraw()
	}
}

// silence stops any tone that the beepers are producing. The sound timer is
// not changed so the next Step() will restart the tone if it is still
// running.
func (m *Machine) silence() {
	m.crit.Lock()
	changed := m.tone
	m.tone = false
	m.crit.Unlock()

	if changed {
		m.beep(false)
	}
}
