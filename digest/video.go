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

package digest

import (
	"crypto/sha1"
	"fmt"
	"sync"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// Video is an implementation of the hardware.Redrawer interface. It generates
// a SHA-1 value of the display every time the display is redrawn. It does not
// show the image anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	crit sync.Mutex

	disp *display.Display

	digest [sha1.Size]byte

	// the first sha1.Size bytes are the previous digest value. the remainder
	// is the frame with one byte per pixel
	pixels []byte

	frames int
}

// NewVideo is the preferred method of initialisation for the Video type. The
// Video instance should be added to the machine with AddRedrawer().
func NewVideo(disp *display.Display) *Video {
	return &Video{
		disp:   disp,
		pixels: make([]byte, sha1.Size+display.Width*display.Height),
	}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	dig.digest = [sha1.Size]byte{}
	dig.frames = 0
}

// Frames returns the number of frames that have contributed to the digest.
func (dig *Video) Frames() int {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return dig.frames
}

// Redraw implements the hardware.Redrawer interface.
func (dig *Video) Redraw() {
	dig.disp.Consume(func(f *display.Frame) {
		dig.crit.Lock()
		defer dig.crit.Unlock()

		// chain fingerprints by copying the value of the last fingerprint
		// to the head of the video data
		copy(dig.pixels, dig.digest[:])

		i := sha1.Size
		for y := range f {
			for x := range f[y] {
				if f[y][x] {
					dig.pixels[i] = 0xff
				} else {
					dig.pixels[i] = 0x00
				}
				i++
			}
		}

		dig.digest = sha1.Sum(dig.pixels)
		dig.frames++
	})
}
