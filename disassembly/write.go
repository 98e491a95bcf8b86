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
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	FlowInfo bool

	// include decoded entries that have not been reached by the flow pass.
	// entries that overlap a blessed instruction are never included
	Linear bool
}

// Write the disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) {
	covered := false
	for i, e := range dsm.entries {
		if e.Level == EntryLevelBlessed {
			dsm.WriteEntry(output, attr, e)
			covered = true
			continue
		}

		if attr.Linear && !covered && i%2 == 0 {
			dsm.WriteEntry(output, attr, e)
		}

		covered = false
	}
}

// WriteEntry writes a single entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) {
	if l := e.Label(); l != "" {
		io.WriteString(output, fmt.Sprintf("%s:\n", l))
	}

	s := strings.Builder{}

	if e.Level == EntryLevelBlessed {
		s.WriteString("  ")
	} else {
		s.WriteString("? ")
	}

	s.WriteString(fmt.Sprintf("%04x ", e.Address))
	if attr.ByteCode {
		s.WriteString(e.Bytecode())
		s.WriteString(" ")
	}
	s.WriteString(e.Instruction.String())

	if attr.FlowInfo && e.Level == EntryLevelBlessed {
		if len(e.Next) > 0 {
			s.WriteString(" ->")
			for _, n := range e.Next {
				s.WriteString(fmt.Sprintf(" %04x", n))
			}
		}
		if len(e.Prev) > 0 {
			s.WriteString(" <-")
			for _, p := range e.Prev {
				s.WriteString(fmt.Sprintf(" %04x", p))
			}
		}
	}

	s.WriteString("\n")
	io.WriteString(output, s.String())
}
