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

// Package hardware is the base package for the emulated machine. The Machine
// type collates the CPU, memory, display and keypad and runs the emulation.
//
// The Run() function is the main emulation loop. It interleaves two
// independently paced activities: the instruction loop, which executes
// instructions at the rate given by the machine.cpurate preference, and the
// timer loop, which decrements the timers and signals the redrawers at 60Hz.
//
// Collaborators are attached to the machine with AddBeeper() and
// AddRedrawer(). They are called by the emulation goroutine but never while
// the machine lock is held.
package hardware
