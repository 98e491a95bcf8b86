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

package playmode_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

// fakeGUI sends a scripted sequence of events once the playmode has started.
type fakeGUI struct {
	crit   sync.Mutex
	title  string
	states []govern.State
	script []userinput.Event
}

func (g *fakeGUI) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	g.crit.Lock()
	defer g.crit.Unlock()

	switch request {
	case gui.ReqSetPlaymode:
		_ = args[0].(*hardware.Machine)
		events := args[1].(chan userinput.Event)
		go func() {
			for _, ev := range g.script {
				events <- ev
			}
		}()
	case gui.ReqSetTitle:
		g.title = args[0].(string)
	case gui.ReqState:
		g.states = append(g.states, args[0].(govern.State))
	default:
		return nil
	}
	return nil
}

func writeROM(t *testing.T) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "loop.ch8")

	// JP 0x200
	err := os.WriteFile(fn, []uint8{0x12, 0x00}, 0o644)
	test.DemandSuccess(t, err)
	return fn
}

func TestPlayQuit(t *testing.T) {
	g := &fakeGUI{
		script: []userinput.Event{
			userinput.EventKeyboard{Key: "P", Down: true},
			userinput.EventKeyboard{Key: "P", Down: false},
			userinput.EventKeyboard{Key: "P", Down: true},
			userinput.EventQuit{},
		},
	}

	ld := romloader.NewLoader(writeROM(t))
	err := playmode.Play(g, &ld, nil, playmode.Options{ZeroSeed: true})
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, g.title, "loop")
	test.DemandEquality(t, len(g.states), 4)
	test.ExpectEquality(t, g.states[0], govern.Running)
	test.ExpectEquality(t, g.states[1], govern.Paused)
	test.ExpectEquality(t, g.states[2], govern.Running)
	test.ExpectEquality(t, g.states[3], govern.Ending)
}

func TestPlayEscape(t *testing.T) {
	g := &fakeGUI{
		script: []userinput.Event{
			userinput.EventKeyboard{Key: "Escape", Down: true},
		},
	}

	ld := romloader.NewLoader(writeROM(t))
	err := playmode.Play(g, &ld, nil, playmode.Options{})
	test.ExpectSuccess(t, err)
}

func TestPlayWav(t *testing.T) {
	g := &fakeGUI{
		script: []userinput.Event{
			userinput.EventQuit{},
		},
	}

	wav := filepath.Join(t.TempDir(), "out.wav")

	ld := romloader.NewLoader(writeROM(t))
	err := playmode.Play(g, &ld, nil, playmode.Options{WavFile: wav})
	test.ExpectSuccess(t, err)

	_, err = os.Stat(wav)
	test.ExpectSuccess(t, err)
}

func TestPlayMissingROM(t *testing.T) {
	g := &fakeGUI{}

	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	err := playmode.Play(g, &ld, nil, playmode.Options{})
	test.ExpectFailure(t, err)
}
