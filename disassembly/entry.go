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
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every byte is the start of an
// instruction. Blessed entries have been reached by following the flow of
// the program from the origin.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return "unknown"
}

// label types. a single address can be both the target of a jump and the
// target of a call
const (
	labelJump = 1 << iota
	labelCall
)

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	Address     uint16
	Opcode      uint16
	Instruction instructions.Instruction

	// addresses that execution can continue at after this instruction. only
	// set for blessed entries. an empty list for a blessed entry means the
	// next address can not be determined statically (RET or JP V0)
	Next []uint16

	// addresses of blessed instructions that lead to this instruction
	Prev []uint16

	label int
}

// Label returns the label for the entry or the empty string if the entry is
// not the target of a jump or call.
func (e *Entry) Label() string {
	if e.label&labelCall == labelCall {
		return fmt.Sprintf("sub_%03x", e.Address)
	}
	if e.label&labelJump == labelJump {
		return fmt.Sprintf("L%03x", e.Address)
	}
	return ""
}

// Bytecode returns the opcode as a hex string.
func (e *Entry) Bytecode() string {
	return fmt.Sprintf("%04x", e.Opcode)
}

func (e *Entry) String() string {
	return fmt.Sprintf("%04x %s %s", e.Address, e.Bytecode(), e.Instruction.String())
}
