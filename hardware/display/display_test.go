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

package display_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestPlot(t *testing.T) {
	dsp := display.NewDisplay()
	test.ExpectFailure(t, dsp.IsDirty())

	test.ExpectFailure(t, dsp.Plot(10, 10))
	test.ExpectSuccess(t, dsp.Pixel(10, 10))
	test.ExpectSuccess(t, dsp.IsDirty())

	// second plot of the same pixel is a collision and unsets the pixel
	test.ExpectSuccess(t, dsp.Plot(10, 10))
	test.ExpectFailure(t, dsp.Pixel(10, 10))
}

func TestWrap(t *testing.T) {
	dsp := display.NewDisplay()

	dsp.Plot(display.Width, display.Height)
	test.ExpectSuccess(t, dsp.Pixel(0, 0))

	dsp.Plot(display.Width+3, 1)
	test.ExpectSuccess(t, dsp.Pixel(3, 1))

	dsp.Plot(-1, -1)
	test.ExpectSuccess(t, dsp.Pixel(display.Width-1, display.Height-1))
}

func TestDirty(t *testing.T) {
	dsp := display.NewDisplay()

	dsp.Plot(0, 0)
	test.ExpectSuccess(t, dsp.IsDirty())
	dsp.ClearDirty()
	test.ExpectFailure(t, dsp.IsDirty())

	// clearing the display is a mutation even if the display is blank
	dsp.Reset()
	test.ExpectFailure(t, dsp.IsDirty())
	dsp.Clear()
	test.ExpectSuccess(t, dsp.IsDirty())
}

func TestConsume(t *testing.T) {
	dsp := display.NewDisplay()

	// nothing to consume
	called := dsp.Consume(func(_ *display.Frame) {
		t.Errorf("consume function should not be called for a clean display")
	})
	test.ExpectFailure(t, called)

	dsp.Plot(5, 6)

	var pixel bool
	called = dsp.Consume(func(f *display.Frame) {
		pixel = f[6][5]

		// changing the copy doesn't change the display
		f[0][0] = true
	})
	test.ExpectSuccess(t, called)
	test.ExpectSuccess(t, pixel)
	test.ExpectFailure(t, dsp.IsDirty())
	test.ExpectFailure(t, dsp.Pixel(0, 0))
}
