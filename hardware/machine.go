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
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/random"
)

// Beeper is notified when the tone should start or stop. The tone is on while
// the sound timer is not zero.
type Beeper interface {
	Beep(on bool) error
}

// Redrawer is notified when the display has changed and should be redrawn.
// Redraw() is called by the emulation goroutine and should not block.
type Redrawer interface {
	Redraw()
}

// Machine is the main container for the emulated components. It owns the
// CPU, memory, display and keypad.
//
// The CPU and memory are guarded by the crit mutex. The display and keypad
// have their own mutexes and can be accessed directly by the GUI. The lock
// order is the machine lock first and then the display or keypad lock.
type Machine struct {
	crit sync.Mutex

	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display
	Keypad  *input.Keypad
	Random  *random.Random
	Prefs   *preferences.Preferences

	// the number of instructions executed since the last reset. instructions
	// that were not executed because of the wait state are not counted
	instructions atomic.Uint64

	// the most recent tone state reported to the beepers
	tone bool

	beepers   []Beeper
	redrawers []Redrawer

	perm logger.Permission
}

// NewMachine is the preferred method of initialisation for the Machine type.
//
// The preferences argument can be nil, in which case default preferences
// are used. The Permission argument controls whether the machine adds to the
// log.
func NewMachine(p *preferences.Preferences, perm logger.Permission) *Machine {
	if p == nil {
		p = preferences.NewDefaultPreferences()
	}
	if perm == nil {
		perm = logger.Allow
	}

	m := &Machine{
		Mem:     memory.NewMemory(),
		Display: display.NewDisplay(),
		Keypad:  input.NewKeypad(),
		Prefs:   p,
		perm:    perm,
	}

	m.Random = random.NewRandom(m)
	m.CPU = cpu.NewCPU(m.Random, perm)

	// quirks are pushed into the CPU whenever the preference changes
	m.CPU.Quirks.IncrementI = p.IncrementI.Get().(bool)
	m.CPU.Quirks.ShiftVxOnly = p.ShiftVxOnly.Get().(bool)
	p.IncrementI.SetHookPost(func(v prefs.Value) error {
		m.crit.Lock()
		defer m.crit.Unlock()
		m.CPU.Quirks.IncrementI = v.(bool)
		return nil
	})
	p.ShiftVxOnly.SetHookPost(func(v prefs.Value) error {
		m.crit.Lock()
		defer m.crit.Unlock()
		m.CPU.Quirks.ShiftVxOnly = v.(bool)
		return nil
	})

	return m
}

func (m *Machine) String() string {
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.CPU.String()
}

// AddBeeper adds a Beeper to the list of beepers to be notified of tone
// changes. Should not be called while the emulation is running.
func (m *Machine) AddBeeper(b Beeper) {
	m.beepers = append(m.beepers, b)
}

// AddRedrawer adds a Redrawer to the list of redrawers to be notified of
// display changes. Should not be called while the emulation is running.
func (m *Machine) AddRedrawer(r Redrawer) {
	m.redrawers = append(m.redrawers, r)
}

// Instructions returns the number of instructions executed since the last
// reset. Implements the random.Counter interface.
func (m *Machine) Instructions() uint64 {
	return m.instructions.Load()
}

// Reset the machine to its initial state. Memory is cleared and must be
// reloaded with LoadROM().
func (m *Machine) Reset() {
	m.crit.Lock()
	m.CPU.Reset()
	m.Mem.Reset()
	m.instructions.Store(0)
	tone := m.tone
	m.tone = false
	m.crit.Unlock()

	m.Display.Reset()
	m.Keypad.ReleaseAll()

	if tone {
		m.beep(false)
	}
}

// LoadROM resets the machine and copies the data into memory starting at
// origin. The program counter is set to origin.
func (m *Machine) LoadROM(data []uint8, origin uint16) error {
	m.Reset()

	m.crit.Lock()
	defer m.crit.Unlock()

	if err := m.Mem.Load(data, origin); err != nil {
		return err
	}
	m.CPU.PC = origin

	return nil
}

// notify beepers of a tone change. must not be called with the crit mutex
// held
func (m *Machine) beep(on bool) {
	for _, b := range m.beepers {
		if err := b.Beep(on); err != nil {
			logger.Logf(m.perm, "machine", "beeper: %v", err)
		}
	}
}

// notify redrawers. must not be called with the crit mutex held
func (m *Machine) redraw() {
	for _, r := range m.redrawers {
		r.Redraw()
	}
}
