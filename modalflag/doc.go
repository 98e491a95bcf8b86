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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows different flags for each
// mode.
//
// Rather than passing the arguments to Parse(), the arguments are first
// given to NewArgs() and then Parse() is called with no arguments. This
// allows the arguments to be parsed in layers:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	if _, err := md.Parse(); err != nil {
//		return err
//	}
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		raw := md.AddBool("raw", false, "do not annotate disassembly")
//		md.Parse()
//		disasm(md.GetArg(0), *raw)
//	}
//
// The first sub-mode is the default and is chosen if the first non-flag
// argument does not name a sub-mode. In that case the argument is left for
// the next call to Parse(). Sub-mode comparisons are case insensitive.
package modalflag
