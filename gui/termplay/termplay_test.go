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

package termplay

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestRender(t *testing.T) {
	var f display.Frame

	s := render(&f)
	lines := strings.Split(strings.TrimSuffix(s, "\r\n"), "\r\n")
	test.ExpectEquality(t, len(lines), display.Height/2)
	for _, l := range lines {
		test.ExpectEquality(t, l, strings.Repeat(" ", display.Width))
	}

	f[0][0] = true
	f[1][1] = true
	f[2][2] = true
	f[3][2] = true

	lines = strings.Split(render(&f), "\r\n")
	test.ExpectEquality(t, []rune(lines[0])[0], '▀')
	test.ExpectEquality(t, []rune(lines[0])[1], '▄')
	test.ExpectEquality(t, []rune(lines[0])[2], ' ')
	test.ExpectEquality(t, []rune(lines[1])[2], '█')
	test.ExpectEquality(t, len([]rune(lines[1])), display.Width)
}

func TestKeyName(t *testing.T) {
	k, ok := keyName('q')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, "Q")

	k, ok = keyName('Q')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, "Q")

	k, ok = keyName('4')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, "4")

	k, ok = keyName(' ')
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, "Space")

	k, ok = keyName(27)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, "Escape")

	_, ok = keyName('#')
	test.ExpectFailure(t, ok)
}
