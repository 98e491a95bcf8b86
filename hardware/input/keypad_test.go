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

package input_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/test"
)

func TestKeypad(t *testing.T) {
	kp := input.NewKeypad()

	_, ok := kp.FirstPressed()
	test.ExpectFailure(t, ok)

	kp.Press(0x0c)
	kp.Press(0x07)
	test.ExpectSuccess(t, kp.IsPressed(0x07))
	test.ExpectSuccess(t, kp.IsPressed(0x0c))
	test.ExpectFailure(t, kp.IsPressed(0x00))
	test.ExpectEquality(t, kp.String(), "-------7----C---")

	k, ok := kp.FirstPressed()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, uint8(0x07))

	kp.Release(0x07)
	k, ok = kp.FirstPressed()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, uint8(0x0c))

	kp.ReleaseAll()
	_, ok = kp.FirstPressed()
	test.ExpectFailure(t, ok)
}

func TestOutOfRange(t *testing.T) {
	kp := input.NewKeypad()

	// keys outside of the keypad are ignored and never pressed
	kp.Press(0x10)
	kp.Press(0xff)
	test.ExpectFailure(t, kp.IsPressed(0x10))
	test.ExpectFailure(t, kp.IsPressed(0xff))
	_, ok := kp.FirstPressed()
	test.ExpectFailure(t, ok)
}
