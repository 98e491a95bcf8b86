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

// Package sdlaudio outputs the machine's tone through SDL. The tone is either
// a generated square wave or a sample loaded from a WAV or MP3 file, as
// specified by the audio preferences.
//
// The Audio type implements the hardware.Beeper interface. When the tone is
// switched on the audio queue is kept topped up by a separate goroutine.
// Switching the tone off clears the queue.
package sdlaudio
