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

// Package cpu implements the execution engine of the machine. The CPU type
// holds the registers, the stack, the timers and the wait state.
//
// Instructions are executed with Cycle(), which fetches and decodes the
// instruction at the program counter, or Execute(), which executes an
// already decoded instruction. Memory, the display and the keypad are
// passed to these functions as interfaces. The CPU holds no reference to
// them.
//
// Stack overflow and underflow and memory access outside of the address
// space are fatal and returned as errors. Invalid opcodes are logged and
// then skipped.
//
// The WaitForKeyPressAndStoreInVx instruction puts the CPU into a wait
// state. Cycle() does nothing while in the wait state. The wait is resolved
// by the caller with PollWait() or ResolveWait(). The timers are not affected
// by the wait state.
package cpu
