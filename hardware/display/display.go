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

package display

import (
	"strings"
	"sync"
)

// Dimensions of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// Frame is a copy of the display pixels. Indexed by row and then column.
type Frame [Height][Width]bool

func (f *Frame) String() string {
	s := strings.Builder{}
	for y := range f {
		for x := range f[y] {
			if f[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

// Display is the 64x32 monochrome display surface. It is written to by the
// emulation and read by the renderer so all access is through the crit mutex.
//
// The dirty flag is set whenever a pixel is changed or the display is
// cleared. It is only cleared by the renderer, either with ClearDirty() or
// as part of Consume().
type Display struct {
	crit  sync.Mutex
	frame Frame
	dirty bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{}
}

func (dsp *Display) String() string {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	return dsp.frame.String()
}

// Reset the display to its initial state. The display is blank and not
// dirty.
func (dsp *Display) Reset() {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	dsp.frame = Frame{}
	dsp.dirty = false
}

// Clear all pixels. The display is marked dirty.
func (dsp *Display) Clear() {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	dsp.frame = Frame{}
	dsp.dirty = true
}

// Plot XORs the pixel at the coordinates. Coordinates wrap around the edges
// of the display. Returns true if the pixel was set before the plot, in which
// case the pixel is now unset.
func (dsp *Display) Plot(x int, y int) bool {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()

	x = wrap(x, Width)
	y = wrap(y, Height)

	collision := dsp.frame[y][x]
	dsp.frame[y][x] = !collision
	dsp.dirty = true

	return collision
}

// Pixel returns the state of the pixel at the coordinates. Coordinates wrap
// in the same way as for Plot().
func (dsp *Display) Pixel(x int, y int) bool {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	return dsp.frame[wrap(y, Height)][wrap(x, Width)]
}

// IsDirty returns true if the display has changed since the dirty flag was
// last cleared.
func (dsp *Display) IsDirty() bool {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	return dsp.dirty
}

// ClearDirty should be called by the renderer once it has drawn the display.
func (dsp *Display) ClearDirty() {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	dsp.dirty = false
}

// Consume calls the function with a copy of the display and then clears the
// dirty flag. The function is not called if the display is not dirty.
//
// The copy is made and the flag is cleared under the same lock so a change
// made by the emulation during the call is not lost. Returns true if the
// function was called.
func (dsp *Display) Consume(f func(*Frame)) bool {
	dsp.crit.Lock()
	if !dsp.dirty {
		dsp.crit.Unlock()
		return false
	}
	frame := dsp.frame
	dsp.dirty = false
	dsp.crit.Unlock()

	f(&frame)
	return true
}

// Snapshot returns a copy of the display regardless of the dirty flag. The
// dirty flag is not changed.
func (dsp *Display) Snapshot() Frame {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	return dsp.frame
}

func wrap(v int, max int) int {
	v %= max
	if v < 0 {
		v += max
	}
	return v
}
