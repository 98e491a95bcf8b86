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
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// flow disassembly follows the program from the origin, blessing every entry
// that can be reached. targets that can only be known at runtime are not
// followed:
//
//	o the return address of RET (the caller's next instruction is followed
//		instead)
//	o the target of JP V0, addr
//	o self modifying code
func (dsm *Disassembly) flowDisassembly() {
	pending := []uint16{dsm.Origin}

	for len(pending) > 0 {
		address := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		e, ok := dsm.GetEntryByAddress(address)
		if !ok || e.Level == EntryLevelBlessed {
			continue
		}
		e.Level = EntryLevelBlessed

		ins := e.Instruction
		next := address + 2

		switch ins.Operator {
		case instructions.JumpToAddress:
			e.Next = []uint16{ins.Address}
			dsm.label(ins.Address, labelJump)

		case instructions.CallSubroutine:
			e.Next = []uint16{ins.Address, next}
			dsm.label(ins.Address, labelCall)

		case instructions.ReturnFromSubroutine, instructions.JumpToV0PlusAddress:
			// next address not known

		default:
			if ins.Operator.Definition().Category == instructions.Skip {
				e.Next = []uint16{next, next + 2}
			} else {
				e.Next = []uint16{next}
			}
		}

		for _, n := range e.Next {
			if p, ok := dsm.GetEntryByAddress(n); ok {
				p.Prev = append(p.Prev, address)
			}
		}

		// push in reverse order so that the first address is followed first
		for i := len(e.Next) - 1; i >= 0; i-- {
			pending = append(pending, e.Next[i])
		}
	}
}

func (dsm *Disassembly) label(address uint16, label int) {
	if e, ok := dsm.GetEntryByAddress(address); ok {
		e.label |= label
	}
}
