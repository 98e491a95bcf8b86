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

package modalflag

import (
	"fmt"
	"strings"
)

// help amends the default output of the flag package with the mode path and
// sub-mode information.
func (md *Modes) help(usage string) {
	if md.Output == nil {
		return
	}

	banner := md.Path()

	// the flag package produces a single "Usage:" line if there are no flags
	if usage == "Usage:\n" && len(md.subModes) == 0 && md.additionalHelp == "" {
		if banner != "" {
			fmt.Fprintf(md.Output, "No help available for %s\n", banner)
		} else {
			fmt.Fprintln(md.Output, "No help available")
		}
		return
	}

	first, rest, _ := strings.Cut(usage, "\n")
	if banner != "" {
		fmt.Fprintf(md.Output, "%s for %s mode\n", first, banner)
	} else {
		fmt.Fprintln(md.Output, first)
	}
	fmt.Fprint(md.Output, rest)

	if len(md.subModes) > 0 {
		if rest != "" {
			fmt.Fprintln(md.Output)
		}
		fmt.Fprintf(md.Output, "  available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "    default: %s\n", md.subModes[0])
	}

	if md.additionalHelp != "" {
		fmt.Fprintf(md.Output, "\n%s\n", md.additionalHelp)
	}
}
