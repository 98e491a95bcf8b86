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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, in the same way as fmt.Errorf().
// The pattern is remembered and is used to identify the error later on.
// Packages that produce errors that callers will want to identify export the
// pattern as a constant. For example, the cpu package:
//
//	const StackOverflow = "cpu: stack overflow at %#03x"
//
//	return curated.Errorf(StackOverflow, mc.PC)
//
// and the caller:
//
//	if curated.Is(err, cpu.StackOverflow) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. In this example, Is() fails but Has() succeeds:
//
//	e := curated.Errorf(cpu.StackOverflow, 0x200)
//	f := curated.Errorf("machine: %v", e)
//
//	curated.Is(f, cpu.StackOverflow)  // false
//	curated.Has(f, cpu.StackOverflow) // true
//
// The Error() function normalises the message so that the chain does not
// contain duplicate adjacent parts. This means that a function can wrap an
// error with its own package prefix without worrying if the error already
// has that prefix.
package curated
