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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// Service implements GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// do not check for events if no event channel has been set
	if scr.events != nil {
		// loop until there are no more events to retrieve. the first check
		// waits for a short time so that the main thread does not spin
		// needlessly
		ev := sdl.WaitEventTimeout(1)
		for ev != nil {
			scr.handleEvent(ev)
			ev = sdl.PollEvent()
		}
	}

	// run any outstanding feature requests
	select {
	case r := <-scr.featureReq:
		scr.serviceFeatureRequests(r)
	default:
	}

	// redraw display if requested
	select {
	case <-scr.redraw:
		if scr.machine != nil {
			scr.machine.Display.Consume(scr.setPixels)
		}
		if err := scr.present(); err != nil {
			logger.Logf(logger.Allow, "sdlplay", "%v", err)
		}
	default:
	}
}

func (scr *SdlPlay) handleEvent(ev sdl.Event) {
	switch ev := ev.(type) {
	// close window
	case *sdl.QuitEvent:
		scr.send(userinput.EventQuit{})

	case *sdl.KeyboardEvent:
		mod := userinput.KeyModNone

		if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
			sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
			mod = userinput.KeyModAlt
		} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
			sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
			mod = userinput.KeyModShift
		} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
			sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
			mod = userinput.KeyModCtrl
		}

		switch ev.Type {
		case sdl.KEYDOWN:
			scr.send(userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Mod:    mod,
				Repeat: ev.Repeat != 0,
				Down:   true})
		case sdl.KEYUP:
			scr.send(userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Mod:    mod,
				Repeat: ev.Repeat != 0,
				Down:   false})
		}

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_EXPOSED {
			scr.Redraw()
		}
	}
}

// send event to the emulation. events are dropped if the channel is full,
// which will only happen if the emulation is not running
func (scr *SdlPlay) send(ev userinput.Event) {
	select {
	case scr.events <- ev:
	default:
		logger.Log(logger.Allow, "sdlplay", "dropped user input event")
	}
}
