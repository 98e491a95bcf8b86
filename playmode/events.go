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

package playmode

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/userinput"
)

// userInputHandler returns true if the event was a request to quit.
func (pl *playmode) userInputHandler(ev userinput.Event) (bool, error) {
	quit, err := pl.controllers.HandleUserInput(ev, pl.machine.Keypad)
	if err != nil {
		return false, curated.Errorf("playmode: %v", err)
	}

	if pl.controllers.Paused {
		pl.setState(govern.Paused)
	} else {
		pl.setState(govern.Running)
	}

	return quit, nil
}

// eventHandler is the continueCheck function for hardware.Machine.Run().
func (pl *playmode) eventHandler() (govern.State, error) {
	select {
	case <-pl.intChan:
		return govern.Ending, nil

	case ev := <-pl.userinput:
		quit, err := pl.userInputHandler(ev)
		if err != nil {
			return govern.Ending, err
		}
		if quit {
			return govern.Ending, nil
		}

	default:
	}

	return pl.state, nil
}
