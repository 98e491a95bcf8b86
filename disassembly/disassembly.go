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

package disassembly

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/romloader"
)

// DisasmError is the pattern for all errors returned by the package.
const DisasmError = "disassembly: %v"

// Disassembly represents the annotated disassembly of a program.
type Disassembly struct {
	// the address of the first byte of the program. this is also the address
	// at which the flow pass starts
	Origin uint16

	// indexed by address relative to Origin. there is an entry for every byte
	// in the program except the last
	entries []*Entry
}

// FromLoader disassembles the ROM specified by the loader. The ROM is loaded
// if it has not been already.
func FromLoader(ld romloader.Loader) (*Disassembly, error) {
	if err := ld.Load(); err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}
	return FromData(ld.Data, ld.Origin)
}

// FromData disassembles the program data, as though it had been loaded at the
// origin address.
func FromData(data []uint8, origin uint16) (*Disassembly, error) {
	if len(data) < 2 {
		return nil, curated.Errorf(DisasmError, "program is too short")
	}
	if int(origin)+len(data) > memory.Size {
		return nil, curated.Errorf(DisasmError, curated.Errorf(memory.ProgramTooLarge, len(data), origin))
	}

	dsm := &Disassembly{
		Origin:  origin,
		entries: make([]*Entry, len(data)-1),
	}

	dsm.linearDisassembly(data)
	dsm.flowDisassembly()

	return dsm, nil
}

// GetEntryByAddress returns the disassembly entry at the specified address.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	if address < dsm.Origin {
		return nil, false
	}
	idx := int(address - dsm.Origin)
	if idx >= len(dsm.entries) {
		return nil, false
	}
	return dsm.entries[idx], true
}

// Counts returns the number of entries at each level.
func (dsm *Disassembly) Counts() map[EntryLevel]int {
	c := make(map[EntryLevel]int)
	for _, e := range dsm.entries {
		c[e.Level]++
	}
	return c
}

// linear disassembly decodes an instruction at every byte address. every
// opcode decodes to something so linear disassembly is total, but a lot of
// entries in data segments will look like valid instructions
func (dsm *Disassembly) linearDisassembly(data []uint8) {
	for i := range dsm.entries {
		opcode := uint16(data[i])<<8 | uint16(data[i+1])
		dsm.entries[i] = &Entry{
			Level:       EntryLevelDecoded,
			Address:     dsm.Origin + uint16(i),
			Opcode:      opcode,
			Instruction: instructions.Decode(opcode),
		}
	}
}
