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
	"github.com/jetsetilly/gopher8/curated"
	ins "github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
)

// Execute applies the instruction to the CPU. The program counter is advanced
// by two unless the instruction changes the flow of execution. A skip
// advances the program counter by four.
//
// The WaitForKeyPressAndStoreInVx instruction leaves the program counter
// unchanged and puts the CPU into the wait state. See ResolveWait().
//
// The state of the CPU is undefined if an error is returned.
func (mc *CPU) Execute(in ins.Instruction, mem Memory, disp Display, keys Keypad) error {
	// the address of the next instruction
	next := mc.PC + 2

	skipIf := func(cond bool) {
		if cond {
			next += 2
		}
	}

	vx := mc.V[in.X]
	vy := mc.V[in.Y]

	switch in.Operator {
	case ins.Invalid:
		logger.Logf(mc.perm, "cpu", "invalid opcode %04x at %04x", in.Opcode, mc.PC)

	case ins.ClearDisplay:
		disp.Clear()

	case ins.ReturnFromSubroutine:
		if mc.SP == 0 {
			return curated.Errorf(StackUnderflow)
		}
		mc.SP--
		next = mc.Stack[mc.SP]

	case ins.JumpToAddress:
		next = in.Address

	case ins.CallSubroutine:
		if mc.SP >= StackDepth {
			return curated.Errorf(StackOverflow)
		}
		mc.Stack[mc.SP] = next
		mc.SP++
		next = in.Address

	case ins.SkipIfVxEqualsByte:
		skipIf(vx == in.Byte)

	case ins.SkipIfVxNotEqualsByte:
		skipIf(vx != in.Byte)

	case ins.SkipIfVxEqualsVy:
		skipIf(vx == vy)

	case ins.SetVxToByte:
		mc.V[in.X] = in.Byte

	case ins.AddByteToVx:
		mc.V[in.X] = vx + in.Byte

	case ins.SetVxToVy:
		mc.V[in.X] = vy

	case ins.SetVxToVxOrVy:
		mc.V[in.X] = vx | vy

	case ins.SetVxToVxAndVy:
		mc.V[in.X] = vx & vy

	case ins.SetVxToVxXorVy:
		mc.V[in.X] = vx ^ vy

	case ins.AddVyToVxWithCarry:
		sum := uint16(vx) + uint16(vy)
		mc.V[in.X] = uint8(sum)
		mc.V[vf] = uint8(sum >> 8)

	case ins.SubtractVyFromVxWithBorrow:
		mc.V[in.X] = vx - vy
		mc.V[vf] = noBorrow(vx, vy)

	case ins.SetVxToVyMinusVx:
		mc.V[in.X] = vy - vx
		mc.V[vf] = noBorrow(vy, vx)

	case ins.ShiftVxRightByOne:
		src := vy
		if mc.Quirks.ShiftVxOnly {
			src = vx
		}
		mc.V[in.X] = src >> 1
		mc.V[vf] = src & 0x01

	case ins.ShiftVxLeftByOne:
		src := vy
		if mc.Quirks.ShiftVxOnly {
			src = vx
		}
		mc.V[in.X] = src << 1
		mc.V[vf] = src >> 7

	case ins.SkipIfVxNotEqualsVy:
		skipIf(vx != vy)

	case ins.SetIToAddress:
		mc.I = in.Address

	case ins.JumpToV0PlusAddress:
		next = uint16(mc.V[0]) + in.Address

	case ins.SetVxToRandomAndByte:
		mc.V[in.X] = mc.rnd.Byte() & in.Byte

	case ins.DrawSprite:
		collision, err := mc.drawSprite(int(vx), int(vy), in.N, mem, disp)
		if err != nil {
			return err
		}
		mc.V[vf] = collision

	case ins.SkipIfKeyInVxPressed:
		skipIf(keys.IsPressed(vx))

	case ins.SkipIfKeyInVxNotPressed:
		skipIf(!keys.IsPressed(vx))

	case ins.SetVxToDelayTimer:
		mc.V[in.X] = mc.DelayTimer

	case ins.WaitForKeyPressAndStoreInVx:
		mc.waiting = true
		mc.waitRegister = in.X
		next = mc.PC

	case ins.SetDelayTimerToVx:
		mc.DelayTimer = vx

	case ins.SetSoundTimerToVx:
		mc.SoundTimer = vx

	case ins.AddVxToI:
		mc.I += uint16(vx)

	case ins.SetIToSpriteAddressForDigitVx:
		mc.I = memory.GlyphAddress(vx)

	case ins.StoreBcdOfVxAtI:
		for i, d := range [3]uint8{vx / 100, (vx / 10) % 10, vx % 10} {
			if err := mem.Write(mc.I+uint16(i), d); err != nil {
				return err
			}
		}

	case ins.StoreRegistersV0ThroughVxInMemory:
		for r := uint16(0); r <= uint16(in.X); r++ {
			if err := mem.Write(mc.I+r, mc.V[r]); err != nil {
				return err
			}
		}
		if mc.Quirks.IncrementI {
			mc.I += uint16(in.X) + 1
		}

	case ins.ReadRegistersV0ThroughVxFromMemory:
		for r := uint16(0); r <= uint16(in.X); r++ {
			v, err := mem.Read(mc.I + r)
			if err != nil {
				return err
			}
			mc.V[r] = v
		}
		if mc.Quirks.IncrementI {
			mc.I += uint16(in.X) + 1
		}
	}

	mc.PC = next

	return nil
}

// returns 1 if subtracting b from a does not borrow
func noBorrow(a uint8, b uint8) uint8 {
	if a >= b {
		return 1
	}
	return 0
}

// draw the n byte sprite at I to the display. returns 1 if any pixel was
// unset by the drawing
func (mc *CPU) drawSprite(x int, y int, n uint8, mem Memory, disp Display) (uint8, error) {
	var collision uint8

	for row := 0; row < int(n); row++ {
		data, err := mem.Read(mc.I + uint16(row))
		if err != nil {
			return 0, err
		}
		for bit := 0; bit < 8; bit++ {
			if data&(0x80>>bit) == 0 {
				continue
			}
			if disp.Plot(x+bit, y+row) {
				collision = 1
			}
		}
	}

	return collision, nil
}
