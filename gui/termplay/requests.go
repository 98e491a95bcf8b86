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
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/termplay/easyterm"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/userinput"
)

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

// SetFeature implements gui.GUI interface.
func (trm *TermPlay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	trm.featureReq <- featureRequest{request: request, args: args}
	return <-trm.featureErr
}

func (trm *TermPlay) serviceFeatureRequests(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			trm.featureErr <- curated.Errorf("termplay: %v", r)
		}
	}()

	var err error

	switch request.request {
	case gui.ReqSetPlaymode:
		trm.machine = request.args[0].(*hardware.Machine)
		trm.events = request.args[1].(chan userinput.Event)
		trm.machine.AddRedrawer(trm)
		trm.term.Print(easyterm.ClearScreen)
		trm.forceRedraw()

	case gui.ReqState:
		trm.state = request.args[0].(govern.State)
		trm.forceRedraw()

	case gui.ReqSetTitle:
		trm.title = request.args[0].(string)
		trm.forceRedraw()

	case gui.ReqSetScale, gui.ReqSavePrefs:
		// scaling is not possible in the terminal and there are no
		// preferences to save

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	trm.featureErr <- err
}

// the status line is drawn along with the display so the display must be
// redrawn even if it has not changed
func (trm *TermPlay) forceRedraw() {
	if trm.machine == nil {
		return
	}
	f := trm.machine.Display.Snapshot()
	trm.draw(&f)
}
