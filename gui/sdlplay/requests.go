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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/userinput"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements gui.GUI interface.
func (scr *SdlPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	scr.featureReq <- featureRequest{request: request, args: args}
	return <-scr.featureErr
}

// featureRequests have been handed over to the featureReq channel. we service
// any requests on that channel here.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) serviceFeatureRequests(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			scr.featureErr <- curated.Errorf("sdlplay: %v", r)
		}
	}()

	var err error

	switch request.request {
	case gui.ReqSetPlaymode:
		scr.machine = request.args[0].(*hardware.Machine)
		scr.events = request.args[1].(chan userinput.Event)

		// the emulation has not started yet so it is safe to add the
		// redrawer and beeper from this thread
		scr.machine.AddRedrawer(scr)
		if scr.aud != nil {
			scr.machine.AddBeeper(scr.aud)
		}

		scr.window.Show()
		scr.Redraw()

	case gui.ReqState:
		scr.state = request.args[0].(govern.State)
		scr.setTitle()

	case gui.ReqSetTitle:
		scr.title = request.args[0].(string)
		scr.setTitle()

	case gui.ReqSetScale:
		scr.setScale(request.args[0].(float32))

	case gui.ReqSavePrefs:
		if scr.aud != nil {
			err = scr.aud.Prefs.Save()
		}

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	scr.featureErr <- err
}
