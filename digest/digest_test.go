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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/test"
)

const zeroHash = "0000000000000000000000000000000000000000"

func TestVideo(t *testing.T) {
	disp := display.NewDisplay()
	dig := digest.NewVideo(disp)
	test.ExpectEquality(t, dig.Hash(), zeroHash)

	disp.Plot(10, 10)
	dig.Redraw()
	test.ExpectFailure(t, disp.IsDirty())
	test.ExpectEquality(t, dig.Frames(), 1)
	first := dig.Hash()
	test.ExpectInequality(t, first, zeroHash)

	// nothing is hashed if the display has not changed
	dig.Redraw()
	test.ExpectEquality(t, dig.Frames(), 1)
	test.ExpectEquality(t, dig.Hash(), first)

	// the same image after a reset produces the same hash
	dig.ResetDigest()
	disp.Plot(10, 10)
	disp.Plot(10, 10)
	dig.Redraw()
	test.ExpectEquality(t, dig.Hash(), first)

	// the same image chained to a previous frame does not
	disp.Plot(10, 10)
	disp.Plot(10, 10)
	dig.Redraw()
	test.ExpectInequality(t, dig.Hash(), first)
}

func TestVideoMachine(t *testing.T) {
	run := func() string {
		m := hardware.NewMachine(nil, logger.Allow)
		m.Random.ZeroSeed = true
		dig := digest.NewVideo(m.Display)
		m.AddRedrawer(dig)

		// draw random digits at random positions forever
		prog := []uint8{
			0xc0, 0x0f, // RND V0, 0x0f
			0xf0, 0x29, // LD F, V0
			0xc1, 0x3f, // RND V1, 0x3f
			0xc2, 0x1f, // RND V2, 0x1f
			0xd1, 0x25, // DRW V1, V2, 5
			0x12, 0x00, // JP 0x200
		}
		test.DemandSuccess(t, m.LoadROM(prog, memory.ProgramOrigin))
		test.DemandSuccess(t, m.RunForInstructionCount(6000))
		return dig.Hash()
	}

	test.ExpectEquality(t, run(), run())
}

type counter uint64

func (c *counter) Instructions() uint64 {
	return uint64(*c)
}

func TestAudio(t *testing.T) {
	var c counter
	dig := digest.NewAudio(&c)
	test.ExpectEquality(t, dig.Hash(), zeroHash)

	c = 10
	test.ExpectSuccess(t, dig.Beep(true))
	c = 20
	test.ExpectSuccess(t, dig.Beep(false))
	h := dig.Hash()

	// same tone changes at different times produce a different hash
	dig.ResetDigest()
	c = 10
	test.ExpectSuccess(t, dig.Beep(true))
	c = 21
	test.ExpectSuccess(t, dig.Beep(false))
	test.ExpectInequality(t, dig.Hash(), h)
}
