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

package logger

// Permission implementations indicate whether the caller may add entries to
// the log. Used to silence logging from emulator instances that are not
// the main emulation (the PERFORMANCE check, for instance).
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

// Allow indicates that the logging request should always be allowed.
var Allow Permission = allow{}

// Deny indicates that the logging request should never be allowed.
var Deny Permission = deny{}
