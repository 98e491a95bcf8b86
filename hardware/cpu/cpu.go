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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// StackDepth is the maximum number of return addresses on the stack.
const StackDepth = 16

// the flag register. overwritten as a side effect by many instructions
const vf = 0xf

// Sentinal error patterns.
const (
	StackOverflow  = "cpu: stack overflow"
	StackUnderflow = "cpu: stack underflow"
	Fault          = "cpu: fault at %#04x (%s): %v"
)

// Memory defines the memory operations required by the CPU.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
	ReadOpcode(address uint16) (uint16, error)
}

// Display defines the display operations required by the CPU.
type Display interface {
	Clear()
	Plot(x int, y int) bool
}

// Keypad defines the keypad operations required by the CPU.
type Keypad interface {
	IsPressed(key uint8) bool
	FirstPressed() (uint8, bool)
}

// RandomSource is the source of random numbers for the SetVxToRandomAndByte
// instruction.
type RandomSource interface {
	Byte() uint8
}

// Quirks select alternative behaviour for instructions where historical
// implementations disagree. The zero value selects the default behaviour.
type Quirks struct {
	// I is left at I+X+1 after StoreRegistersV0ThroughVxInMemory and
	// ReadRegistersV0ThroughVxFromMemory. By default I is unchanged.
	IncrementI bool

	// ShiftVxRightByOne and ShiftVxLeftByOne shift Vx in place. By default
	// the source of the shift is Vy.
	ShiftVxOnly bool
}

// CPU implements the execution engine of the machine. The CPU holds no
// reference to memory, the display or the keypad. They are passed to Cycle()
// and Execute() when required.
type CPU struct {
	V  [NumRegisters]uint8
	I  uint16
	PC uint16

	Stack [StackDepth]uint16
	SP    int

	DelayTimer uint8
	SoundTimer uint8

	Quirks Quirks

	// the most recent instruction to be executed
	LastResult Result

	// the CPU is waiting for a key press. the key will be stored in the
	// waitRegister. see ResolveWait()
	waiting      bool
	waitRegister uint8

	rnd  RandomSource
	perm logger.Permission
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(rnd RandomSource, perm logger.Permission) *CPU {
	if perm == nil {
		perm = logger.Allow
	}
	mc := &CPU{
		rnd:  rnd,
		perm: perm,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%04x I=%04x SP=%d DT=%02x ST=%02x", mc.PC, mc.I, mc.SP, mc.DelayTimer, mc.SoundTimer))
	for r, v := range mc.V {
		s.WriteString(fmt.Sprintf(" V%X=%02x", r, v))
	}
	if mc.waiting {
		s.WriteString(fmt.Sprintf(" [waiting V%X]", mc.waitRegister))
	}
	return s.String()
}

// Reset the CPU to its initial state. Quirks are not changed.
func (mc *CPU) Reset() {
	mc.V = [NumRegisters]uint8{}
	mc.I = 0
	mc.PC = memory.ProgramOrigin
	mc.Stack = [StackDepth]uint16{}
	mc.SP = 0
	mc.DelayTimer = 0
	mc.SoundTimer = 0
	mc.LastResult = Result{}
	mc.waiting = false
	mc.waitRegister = 0
}

// Waiting returns true if the CPU is waiting for a key press. The second
// return value is the register the key will be stored in.
func (mc *CPU) Waiting() (bool, uint8) {
	return mc.waiting, mc.waitRegister
}

// ResolveWait stores the key in the wait register and resumes execution from
// the instruction after the WaitForKeyPressAndStoreInVx instruction. Does
// nothing if the CPU is not waiting.
func (mc *CPU) ResolveWait(key uint8) {
	if !mc.waiting {
		return
	}
	mc.V[mc.waitRegister] = key
	mc.waiting = false
	mc.PC += 2
}

// PollWait resolves the wait state if a key is down. Returns true if the wait
// was resolved.
func (mc *CPU) PollWait(keys Keypad) bool {
	if !mc.waiting {
		return false
	}
	if k, ok := keys.FirstPressed(); ok {
		mc.ResolveWait(k)
		return true
	}
	return false
}

// TickTimers decrements the delay and sound timers. Neither timer goes below
// zero.
func (mc *CPU) TickTimers() {
	if mc.DelayTimer > 0 {
		mc.DelayTimer--
	}
	if mc.SoundTimer > 0 {
		mc.SoundTimer--
	}
}

// SoundActive returns true if the sound timer is not zero.
func (mc *CPU) SoundActive() bool {
	return mc.SoundTimer > 0
}

// Cycle fetches, decodes and executes the instruction at the program counter.
// Does nothing if the CPU is waiting for a key press.
//
// Any returned error is fatal to the emulation. The error is a curated error
// of the Fault pattern and includes the address and the instruction.
func (mc *CPU) Cycle(mem Memory, disp Display, keys Keypad) error {
	if mc.waiting {
		return nil
	}

	address := mc.PC

	opcode, err := mem.ReadOpcode(address)
	if err != nil {
		return curated.Errorf(Fault, address, "fetch", err)
	}

	ins := instructions.Decode(opcode)
	mc.LastResult = Result{
		Address:     address,
		Opcode:      opcode,
		Instruction: ins,
	}

	if err := mc.Execute(ins, mem, disp, keys); err != nil {
		return curated.Errorf(Fault, address, ins, err)
	}

	return nil
}
