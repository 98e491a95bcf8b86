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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Size of the address space in bytes.
const Size = 4096

// ProgramOrigin is the conventional load address for programs.
const ProgramOrigin = uint16(0x200)

// Sentinal error patterns.
const (
	OutOfRange      = "memory: address %#04x out of range"
	ProgramTooLarge = "memory: program of %d bytes at %#04x exceeds address space"
)

// Memory is the flat 4KB address space. The font glyphs are copied into the
// font area by NewMemory() and again on every Reset().
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset clears the address space and copies the font glyphs into place.
func (mem *Memory) Reset() {
	mem.data = [Size]uint8{}
	copy(mem.data[FontOrigin:], font[:])
}

func (mem *Memory) String() string {
	return mem.Dump(ProgramOrigin, 0x100)
}

// Dump returns a hex dump of the address range starting at origin and of
// length bytes. The range is clipped to the address space.
func (mem *Memory) Dump(origin uint16, length int) string {
	s := strings.Builder{}
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")

	origin &= 0xfff0
	end := int(origin) + length
	if end > Size {
		end = Size
	}

	for a := int(origin); a < end; a += 16 {
		s.WriteString(fmt.Sprintf("%03X- | ", a>>4))
		for x := 0; x < 16 && a+x < end; x++ {
			s.WriteString(fmt.Sprintf(" %02x", mem.data[a+x]))
		}
		s.WriteString("\n")
	}

	return strings.TrimSuffix(s.String(), "\n")
}

// Read the byte at address. Addresses outside the address space return the
// OutOfRange error.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= Size {
		return 0, curated.Errorf(OutOfRange, address)
	}
	return mem.data[address], nil
}

// Write the byte to address. Addresses outside the address space return the
// OutOfRange error.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= Size {
		return curated.Errorf(OutOfRange, address)
	}
	mem.data[address] = data
	return nil
}

// ReadOpcode returns the big-endian 16-bit value at address.
func (mem *Memory) ReadOpcode(address uint16) (uint16, error) {
	if int(address)+1 >= Size {
		return 0, curated.Errorf(OutOfRange, address)
	}
	return uint16(mem.data[address])<<8 | uint16(mem.data[address+1]), nil
}

// Load copies data verbatim into memory starting at origin. The data must fit
// entirely inside the address space. Nothing is copied if it does not.
func (mem *Memory) Load(data []uint8, origin uint16) error {
	if int(origin)+len(data) > Size {
		return curated.Errorf(ProgramTooLarge, len(data), origin)
	}
	copy(mem.data[origin:], data)
	return nil
}
