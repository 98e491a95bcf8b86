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

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

// random source that always returns the same value
type fixedRandom uint8

func (r fixedRandom) Byte() uint8 {
	return uint8(r)
}

type harness struct {
	mc   *cpu.CPU
	mem  *memory.Memory
	disp *display.Display
	keys *input.Keypad
}

func newHarness() *harness {
	return &harness{
		mc:   cpu.NewCPU(fixedRandom(0xff), logger.Allow),
		mem:  memory.NewMemory(),
		disp: display.NewDisplay(),
		keys: input.NewKeypad(),
	}
}

// load the opcodes at the current program counter
func (h *harness) load(t *testing.T, opcodes ...uint16) {
	t.Helper()
	data := make([]uint8, 0, len(opcodes)*2)
	for _, op := range opcodes {
		data = append(data, uint8(op>>8), uint8(op))
	}
	test.DemandSuccess(t, h.mem.Load(data, h.mc.PC))
}

// run a number of cycles. any error is a test failure
func (h *harness) cycle(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, h.mc.Cycle(h.mem, h.disp, h.keys))
	}
}

// load and run a single opcode
func (h *harness) run(t *testing.T, opcode uint16) {
	t.Helper()
	h.load(t, opcode)
	h.cycle(t, 1)
}
