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
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// PlayError is the pattern used for all errors returned by Play().
const PlayError = "playmode: %v"

type playmode struct {
	machine *hardware.Machine
	scr     gui.GUI

	controllers userinput.Controllers
	state       govern.State

	// events from the gui
	userinput chan userinput.Event

	// interrupt signal from the operating system
	intChan chan os.Signal
}

// Options for Play().
type Options struct {
	// filename of WAV file to record the tone to. empty string means no
	// recording
	WavFile string

	// make the random number generator predictable. the Seed value is only
	// used when ZeroSeed is true
	ZeroSeed bool
	Seed     int64
}

// Play loads the ROM and runs the emulation in real time, without any
// debugging features, until the user quits.
//
// The GUI must be serviced by another goroutine (normally the main thread)
// for the duration of the function.
func Play(scr gui.GUI, ld *romloader.Loader, p *preferences.Preferences, opts Options) (rerr error) {
	if !ld.HasLoaded() {
		if err := ld.Load(); err != nil {
			return curated.Errorf(PlayError, err)
		}
	}

	pl := &playmode{
		machine:   hardware.NewMachine(p, logger.Allow),
		scr:       scr,
		state:     govern.Initialising,
		userinput: make(chan userinput.Event, 10),
		intChan:   make(chan os.Signal, 1),
	}

	pl.machine.Random.ZeroSeed = opts.ZeroSeed
	pl.machine.Random.Seed = opts.Seed

	if err := pl.machine.LoadROM(ld.Data, ld.Origin); err != nil {
		return curated.Errorf(PlayError, err)
	}

	if opts.WavFile != "" {
		aw, err := wavwriter.New(opts.WavFile)
		if err != nil {
			return curated.Errorf(PlayError, err)
		}
		pl.machine.AddBeeper(aw)

		defer func() {
			if err := aw.EndMixing(); err != nil && rerr == nil {
				rerr = curated.Errorf(PlayError, err)
			}
		}()
	}

	if err := scr.SetFeature(gui.ReqSetPlaymode, pl.machine, pl.userinput); err != nil {
		return curated.Errorf(PlayError, err)
	}
	if err := scr.SetFeature(gui.ReqSetTitle, ld.ShortName()); err != nil {
		return curated.Errorf(PlayError, err)
	}

	// the deferred EndMixing() must run even when ctrl-c is pressed.
	// redirect interrupt signal to an os.Signal channel
	signal.Notify(pl.intChan, os.Interrupt)
	defer signal.Stop(pl.intChan)

	pl.setState(govern.Running)

	err := pl.machine.Run(pl.eventHandler)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	pl.setState(govern.Ending)
	logger.Logf(logger.Allow, "playmode", "ended after %d instructions", pl.machine.Instructions())

	return nil
}

// setState changes the emulation state and notifies the gui of the change.
func (pl *playmode) setState(state govern.State) {
	if pl.state == state {
		return
	}
	pl.state = state

	if err := pl.scr.SetFeature(gui.ReqState, state); err != nil {
		logger.Logf(logger.Allow, "playmode", "%v", err)
	}
}
