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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

func TestReset(t *testing.T) {
	h := newHarness()
	test.ExpectEquality(t, h.mc.PC, uint16(0x200))
	test.ExpectEquality(t, h.mc.SP, 0)

	h.mc.V[3] = 10
	h.mc.SoundTimer = 5
	h.mc.Quirks.IncrementI = true
	h.mc.Reset()
	test.ExpectEquality(t, h.mc.V[3], uint8(0))
	test.ExpectEquality(t, h.mc.SoundTimer, uint8(0))
	test.ExpectSuccess(t, h.mc.Quirks.IncrementI)
}

func TestAddWithCarry(t *testing.T) {
	h := newHarness()
	in := instructions.Decode(0x8014)

	for a := 0; a <= 255; a++ {
		for b := 0; b <= 255; b++ {
			h.mc.V[0] = uint8(a)
			h.mc.V[1] = uint8(b)
			test.DemandSuccess(t, h.mc.Execute(in, h.mem, h.disp, h.keys))
			test.ExpectEquality(t, h.mc.V[0], uint8((a+b)%256), a, b)
			if a+b > 255 {
				test.ExpectEquality(t, h.mc.V[0xf], uint8(1), a, b)
			} else {
				test.ExpectEquality(t, h.mc.V[0xf], uint8(0), a, b)
			}
		}
	}
}

func TestSubtractWithBorrow(t *testing.T) {
	h := newHarness()
	sub := instructions.Decode(0x8015)
	subn := instructions.Decode(0x8017)

	for a := 0; a <= 255; a++ {
		for b := 0; b <= 255; b++ {
			h.mc.V[0] = uint8(a)
			h.mc.V[1] = uint8(b)
			test.DemandSuccess(t, h.mc.Execute(sub, h.mem, h.disp, h.keys))
			test.ExpectEquality(t, h.mc.V[0], uint8((a-b+256)%256), a, b)
			if a >= b {
				test.ExpectEquality(t, h.mc.V[0xf], uint8(1), a, b)
			} else {
				test.ExpectEquality(t, h.mc.V[0xf], uint8(0), a, b)
			}

			// Vx = Vy - Vx
			h.mc.V[0] = uint8(a)
			h.mc.V[1] = uint8(b)
			test.DemandSuccess(t, h.mc.Execute(subn, h.mem, h.disp, h.keys))
			test.ExpectEquality(t, h.mc.V[0], uint8((b-a+256)%256), a, b)
			if b >= a {
				test.ExpectEquality(t, h.mc.V[0xf], uint8(1), a, b)
			} else {
				test.ExpectEquality(t, h.mc.V[0xf], uint8(0), a, b)
			}
		}
	}
}

func TestCarryIntoVF(t *testing.T) {
	h := newHarness()

	// when Vx is VF the flag takes precedence over the result
	h.mc.V[0xf] = 0xff
	h.mc.V[1] = 0x01
	h.run(t, 0x8f14)
	test.ExpectEquality(t, h.mc.V[0xf], uint8(1))
}

func TestLogic(t *testing.T) {
	h := newHarness()
	h.mc.V[1] = 0b1100
	h.mc.V[2] = 0b1010
	h.load(t, 0x8010, 0x8021, 0x8302, 0x8323, 0x7001, 0x70ff)

	// V0 = V1
	h.cycle(t, 1)
	test.ExpectEquality(t, h.mc.V[0], uint8(0b1100))

	// V0 = V2 | V1
	h.cycle(t, 1)
	test.ExpectEquality(t, h.mc.V[0], uint8(0b1110))

	// V3 = V3 & V0
	h.mc.V[3] = 0b0110
	h.cycle(t, 1)
	test.ExpectEquality(t, h.mc.V[3], uint8(0b0110))

	// V3 = V3 ^ V2
	h.cycle(t, 1)
	test.ExpectEquality(t, h.mc.V[3], uint8(0b1100))

	// add byte wraps and does not change VF
	h.mc.V[0xf] = 0x55
	h.cycle(t, 2)
	test.ExpectEquality(t, h.mc.V[0], uint8(0b1110))
	test.ExpectEquality(t, h.mc.V[0xf], uint8(0x55))
}

func TestShift(t *testing.T) {
	h := newHarness()

	h.mc.V[1] = 0b10110011
	h.run(t, 0x8016)
	test.ExpectEquality(t, h.mc.V[0], uint8(0b01011001))
	test.ExpectEquality(t, h.mc.V[0xf], uint8(1))
	test.ExpectEquality(t, h.mc.V[1], uint8(0b10110011))

	h.mc.V[1] = 0b10110011
	h.run(t, 0x801e)
	test.ExpectEquality(t, h.mc.V[0], uint8(0b01100110))
	test.ExpectEquality(t, h.mc.V[0xf], uint8(1))

	// shifted out bit is zero
	h.mc.V[1] = 0b01000010
	h.run(t, 0x801e)
	test.ExpectEquality(t, h.mc.V[0], uint8(0b10000100))
	test.ExpectEquality(t, h.mc.V[0xf], uint8(0))
}

func TestShiftQuirk(t *testing.T) {
	h := newHarness()
	h.mc.Quirks.ShiftVxOnly = true

	h.mc.V[0] = 0b00000011
	h.mc.V[1] = 0b10110000
	h.run(t, 0x8016)
	test.ExpectEquality(t, h.mc.V[0], uint8(0b00000001))
	test.ExpectEquality(t, h.mc.V[0xf], uint8(1))

	h.mc.V[0] = 0b10000001
	h.run(t, 0x801e)
	test.ExpectEquality(t, h.mc.V[0], uint8(0b00000010))
	test.ExpectEquality(t, h.mc.V[0xf], uint8(1))
}

func TestSkips(t *testing.T) {
	h := newHarness()
	h.mc.V[0] = 0x12
	h.mc.V[1] = 0x12

	// each entry is the opcode and whether it should skip
	for _, s := range []struct {
		opcode uint16
		skip   bool
	}{
		{0x3012, true},
		{0x3013, false},
		{0x4012, false},
		{0x4013, true},
		{0x5010, true},
		{0x5020, false},
		{0x9010, false},
		{0x9020, true},
	} {
		pc := h.mc.PC
		h.run(t, s.opcode)
		if s.skip {
			test.ExpectEquality(t, h.mc.PC, pc+4, s.opcode)
		} else {
			test.ExpectEquality(t, h.mc.PC, pc+2, s.opcode)
		}
	}
}

func TestKeySkips(t *testing.T) {
	h := newHarness()
	h.mc.V[2] = 0x07

	h.run(t, 0xe29e)
	test.ExpectEquality(t, h.mc.PC, uint16(0x202))
	h.run(t, 0xe2a1)
	test.ExpectEquality(t, h.mc.PC, uint16(0x206))

	h.keys.Press(0x07)
	h.run(t, 0xe29e)
	test.ExpectEquality(t, h.mc.PC, uint16(0x20a))
	h.run(t, 0xe2a1)
	test.ExpectEquality(t, h.mc.PC, uint16(0x20c))

	// a key value outside the keypad is never pressed
	h.mc.V[2] = 0x17
	h.run(t, 0xe29e)
	test.ExpectEquality(t, h.mc.PC, uint16(0x20e))
}

func TestJumps(t *testing.T) {
	h := newHarness()

	h.run(t, 0x1456)
	test.ExpectEquality(t, h.mc.PC, uint16(0x456))

	h.mc.V[0] = 0x10
	h.run(t, 0xb300)
	test.ExpectEquality(t, h.mc.PC, uint16(0x310))
}

func TestCallReturn(t *testing.T) {
	h := newHarness()
	h.load(t, 0x2300)
	test.DemandSuccess(t, h.mem.Load([]uint8{0x00, 0xee}, 0x300))

	h.cycle(t, 1)
	test.ExpectEquality(t, h.mc.PC, uint16(0x300))
	test.ExpectEquality(t, h.mc.SP, 1)
	test.ExpectEquality(t, h.mc.Stack[0], uint16(0x202))

	h.cycle(t, 1)
	test.ExpectEquality(t, h.mc.PC, uint16(0x202))
	test.ExpectEquality(t, h.mc.SP, 0)
}

func TestStackOverflow(t *testing.T) {
	h := newHarness()

	// a subroutine at 0x200 that calls itself
	h.load(t, 0x2200)

	for i := 0; i < cpu.StackDepth; i++ {
		test.DemandSuccess(t, h.mc.Cycle(h.mem, h.disp, h.keys))
	}
	test.ExpectEquality(t, h.mc.SP, cpu.StackDepth)

	err := h.mc.Cycle(h.mem, h.disp, h.keys)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cpu.Fault))
	test.ExpectSuccess(t, curated.Has(err, cpu.StackOverflow))
}

func TestStackUnderflow(t *testing.T) {
	h := newHarness()
	h.load(t, 0x00ee)

	err := h.mc.Cycle(h.mem, h.disp, h.keys)
	test.ExpectSuccess(t, curated.Has(err, cpu.StackUnderflow))
}

func TestSprite(t *testing.T) {
	h := newHarness()

	// an 8x2 sprite with every pixel set
	test.DemandSuccess(t, h.mem.Load([]uint8{0xff, 0xff}, 0x300))
	h.mc.I = 0x300
	h.mc.V[0] = 60
	h.mc.V[1] = 30

	h.run(t, 0xd012)
	test.ExpectEquality(t, h.mc.V[0xf], uint8(0))
	test.ExpectSuccess(t, h.disp.IsDirty())

	for _, y := range []int{30, 31} {
		for _, x := range []int{60, 61, 62, 63, 0, 1, 2, 3} {
			test.ExpectSuccess(t, h.disp.Pixel(x, y), x, y)
		}
		test.ExpectFailure(t, h.disp.Pixel(59, y))
		test.ExpectFailure(t, h.disp.Pixel(4, y))
	}

	// rows do not wrap into the top of the display
	test.ExpectFailure(t, h.disp.Pixel(60, 0))

	// second draw erases the sprite and reports a collision
	h.run(t, 0xd012)
	test.ExpectEquality(t, h.mc.V[0xf], uint8(1))
	test.ExpectEquality(t, h.disp.String(), h.blank())
}

// a blank display in the same form as display.Frame.String()
func (h *harness) blank() string {
	h2 := newHarness()
	return h2.disp.String()
}

func TestSpritePartialCollision(t *testing.T) {
	h := newHarness()

	test.DemandSuccess(t, h.mem.Load([]uint8{0x80}, 0x300))
	h.mc.I = 0x300

	// plot a single pixel at (1,0) and then draw a sprite at (0,0) that
	// doesn't touch it
	h.disp.Plot(1, 0)
	h.run(t, 0xd011)
	test.ExpectEquality(t, h.mc.V[0xf], uint8(0))

	// draw at (1,0). collision
	h.mc.V[0] = 1
	h.run(t, 0xd011)
	test.ExpectEquality(t, h.mc.V[0xf], uint8(1))
}

func TestClearDisplay(t *testing.T) {
	h := newHarness()
	h.disp.Plot(0, 0)
	h.disp.ClearDirty()

	h.run(t, 0x00e0)
	test.ExpectFailure(t, h.disp.Pixel(0, 0))
	test.ExpectSuccess(t, h.disp.IsDirty())
}

func TestRandom(t *testing.T) {
	h := newHarness()

	// random source always returns 0xff so result is the mask
	h.run(t, 0xc35a)
	test.ExpectEquality(t, h.mc.V[3], uint8(0x5a))

	h.mc = cpu.NewCPU(fixedRandom(0x0f), logger.Allow)
	h.run(t, 0xc3f3)
	test.ExpectEquality(t, h.mc.V[3]&^0xf3, uint8(0))
	test.ExpectEquality(t, h.mc.V[3], uint8(0x03))
}

func TestTimers(t *testing.T) {
	h := newHarness()

	h.mc.V[0] = 5
	h.load(t, 0xf015, 0xf018, 0xf107)
	h.cycle(t, 2)
	test.ExpectEquality(t, h.mc.DelayTimer, uint8(5))
	test.ExpectEquality(t, h.mc.SoundTimer, uint8(5))
	test.ExpectSuccess(t, h.mc.SoundActive())

	for i := 4; i >= 0; i-- {
		h.mc.TickTimers()
		test.ExpectEquality(t, h.mc.DelayTimer, uint8(i))
	}
	test.ExpectFailure(t, h.mc.SoundActive())

	// no wrap below zero
	h.mc.TickTimers()
	test.ExpectEquality(t, h.mc.DelayTimer, uint8(0))
	test.ExpectEquality(t, h.mc.SoundTimer, uint8(0))

	h.mc.DelayTimer = 0x33
	h.cycle(t, 1)
	test.ExpectEquality(t, h.mc.V[1], uint8(0x33))
}

func TestWaitForKey(t *testing.T) {
	h := newHarness()
	h.load(t, 0xf30a, 0x6001)
	h.mc.DelayTimer = 10

	h.cycle(t, 1)
	waiting, reg := h.mc.Waiting()
	test.ExpectSuccess(t, waiting)
	test.ExpectEquality(t, reg, uint8(3))
	test.ExpectEquality(t, h.mc.PC, uint16(0x200))

	// no mutation while waiting
	v := h.mc.V
	mem := h.mem.Dump(0, memory.Size)
	for i := 0; i < 10; i++ {
		test.ExpectFailure(t, h.mc.PollWait(h.keys))
		h.cycle(t, 1)
	}
	test.ExpectEquality(t, h.mc.V, v)
	test.ExpectEquality(t, h.mc.PC, uint16(0x200))
	test.ExpectEquality(t, h.mem.Dump(0, memory.Size), mem)

	// timers are unaffected by the wait
	h.mc.TickTimers()
	test.ExpectEquality(t, h.mc.DelayTimer, uint8(9))

	h.keys.Press(7)
	test.ExpectSuccess(t, h.mc.PollWait(h.keys))
	waiting, _ = h.mc.Waiting()
	test.ExpectFailure(t, waiting)
	test.ExpectEquality(t, h.mc.V[3], uint8(7))
	test.ExpectEquality(t, h.mc.PC, uint16(0x202))

	// execution continues with the next instruction
	h.cycle(t, 1)
	test.ExpectEquality(t, h.mc.V[0], uint8(1))

	// resolving when not waiting does nothing
	h.mc.ResolveWait(2)
	test.ExpectEquality(t, h.mc.V[3], uint8(7))
	test.ExpectEquality(t, h.mc.PC, uint16(0x204))
}

func TestBCD(t *testing.T) {
	h := newHarness()
	h.load(t, 0x600a, 0x700b, 0xa300, 0xf033)
	h.cycle(t, 4)

	for i, expected := range []uint8{0, 2, 1} {
		d, err := h.mem.Read(0x300 + uint16(i))
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, d, expected, i)
	}

	h.mc.V[0] = 255
	h.run(t, 0xf033)
	for i, expected := range []uint8{2, 5, 5} {
		d, _ := h.mem.Read(0x300 + uint16(i))
		test.ExpectEquality(t, d, expected, i)
	}
}

func TestRegisterBlock(t *testing.T) {
	h := newHarness()
	for r := range h.mc.V {
		h.mc.V[r] = uint8(r + 1)
	}
	h.mc.I = 0x400

	// store V0..V3 inclusive
	h.run(t, 0xf355)
	test.ExpectEquality(t, h.mc.I, uint16(0x400))
	for a := uint16(0); a < 4; a++ {
		d, _ := h.mem.Read(0x400 + a)
		test.ExpectEquality(t, d, uint8(a+1))
	}
	d, _ := h.mem.Read(0x404)
	test.ExpectEquality(t, d, uint8(0))

	// read back into cleared registers
	h.mc.V = [cpu.NumRegisters]uint8{}
	h.run(t, 0xf365)
	test.ExpectEquality(t, h.mc.I, uint16(0x400))
	test.ExpectEquality(t, h.mc.V[3], uint8(4))
	test.ExpectEquality(t, h.mc.V[4], uint8(0))
}

func TestRegisterBlockQuirk(t *testing.T) {
	h := newHarness()
	h.mc.Quirks.IncrementI = true
	h.mc.I = 0x400

	h.run(t, 0xf355)
	test.ExpectEquality(t, h.mc.I, uint16(0x404))
	h.run(t, 0xf065)
	test.ExpectEquality(t, h.mc.I, uint16(0x405))
}

func TestIndex(t *testing.T) {
	h := newHarness()

	h.run(t, 0xa123)
	test.ExpectEquality(t, h.mc.I, uint16(0x123))

	h.mc.V[5] = 0x10
	h.run(t, 0xf51e)
	test.ExpectEquality(t, h.mc.I, uint16(0x133))

	// digit sprite uses only the low nibble of Vx
	h.mc.V[5] = 0x1b
	h.run(t, 0xf529)
	test.ExpectEquality(t, h.mc.I, memory.FontOrigin+0xb*memory.GlyphSize)
}

func TestInvalid(t *testing.T) {
	logger.Clear()
	h := newHarness()
	h.load(t, 0x5121)

	h.cycle(t, 1)
	test.ExpectEquality(t, h.mc.PC, uint16(0x202))
	test.ExpectEquality(t, h.mc.LastResult.Instruction.Operator, instructions.Invalid)

	tw := &test.CompareWriter{}
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "cpu: invalid opcode 5121 at 0200\n")
}

func TestMemoryFault(t *testing.T) {
	h := newHarness()
	h.mc.I = 0xfff
	h.load(t, 0xf033)

	err := h.mc.Cycle(h.mem, h.disp, h.keys)
	test.ExpectSuccess(t, curated.Is(err, cpu.Fault))
	test.ExpectSuccess(t, curated.Has(err, memory.OutOfRange))

	// program counter running off the end of memory
	h = newHarness()
	h.mc.PC = 0xfff
	err = h.mc.Cycle(h.mem, h.disp, h.keys)
	test.ExpectSuccess(t, curated.Has(err, memory.OutOfRange))
}

func TestLastResult(t *testing.T) {
	h := newHarness()
	h.run(t, 0x6a42)
	test.ExpectEquality(t, h.mc.LastResult.String(), "0200 6a42 LD VA, 0x42")
}
