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
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/gui/termplay/easyterm"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"
)

// the amount of time a key is considered held after the terminal reports it.
// terminals do not report key releases so the release is synthesised
const holdDuration = 150 * time.Millisecond

// TermPlay is a playmode GUI that draws the display in the terminal using
// block characters. Two rows of the display are drawn in every line of text.
type TermPlay struct {
	term easyterm.Terminal

	machine *hardware.Machine
	events  chan userinput.Event

	featureReq chan featureRequest
	featureErr chan error

	// buffered channel of length one. Redraw() is called by the emulation
	// goroutine but drawing happens in the Service() goroutine
	redraw chan bool

	title string
	state govern.State

	// timers that will release keys after the hold duration
	crit  sync.Mutex
	holds map[string]*time.Timer
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type.
func NewTermPlay(input, output *os.File) (*TermPlay, error) {
	trm := &TermPlay{
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
		redraw:     make(chan bool, 1),
		holds:      make(map[string]*time.Timer),
	}

	err := trm.term.Initialise(input, output)
	if err != nil {
		return nil, fmt.Errorf("termplay: %w", err)
	}

	trm.term.RawMode()
	trm.term.Print(easyterm.AltScreen)
	trm.term.Print(easyterm.HideCursor)
	trm.term.Print(easyterm.ClearScreen)

	go trm.readInput()

	return trm, nil
}

// Destroy implements GuiCreator interface.
func (trm *TermPlay) Destroy(output io.Writer) {
	trm.crit.Lock()
	for _, t := range trm.holds {
		t.Stop()
	}
	trm.crit.Unlock()

	trm.term.Print(easyterm.ShowCursor)
	trm.term.Print(easyterm.NormalScreen)
	trm.term.CleanUp()
}

// Redraw implements the hardware.Redrawer interface.
func (trm *TermPlay) Redraw() {
	select {
	case trm.redraw <- true:
	default:
	}
}

// Service implements GuiCreator interface.
func (trm *TermPlay) Service() {
	select {
	case r := <-trm.featureReq:
		trm.serviceFeatureRequests(r)
	case <-trm.redraw:
		if trm.machine != nil {
			trm.machine.Display.Consume(trm.draw)
		}
	case <-time.After(time.Millisecond):
	}
}

func (trm *TermPlay) draw(f *display.Frame) {
	trm.term.Print("%s%s%s", easyterm.CursorHome, render(f), trm.statusLine())
}

func (trm *TermPlay) statusLine() string {
	s := trm.title
	if trm.state == govern.Paused {
		s = fmt.Sprintf("%s (paused)", s)
	}
	return fmt.Sprintf("%s%s\r\n", s, easyterm.ClearLine)
}

// render the frame using half-block characters. the returned string has
// Height/2 lines, each terminated with a carriage return and a newline
func render(f *display.Frame) string {
	s := strings.Builder{}
	for y := 0; y < display.Height; y += 2 {
		for x := 0; x < display.Width; x++ {
			top := f[y][x]
			bot := f[y+1][x]
			switch {
			case top && bot:
				s.WriteRune('█')
			case top:
				s.WriteRune('▀')
			case bot:
				s.WriteRune('▄')
			default:
				s.WriteRune(' ')
			}
		}
		s.WriteString("\r\n")
	}
	return s.String()
}

// keyName converts a byte read from the terminal to the name of the key as
// understood by the userinput package
func keyName(b byte) (string, bool) {
	switch {
	case b == easyterm.KeyEsc:
		return "Escape", true
	case b == easyterm.KeySpace:
		return "Space", true
	case b >= '0' && b <= '9':
		return string(b), true
	case b >= 'A' && b <= 'Z':
		return string(b), true
	case b >= 'a' && b <= 'z':
		return string(b - 'a' + 'A'), true
	}
	return "", false
}

func (trm *TermPlay) readInput() {
	buf := make([]byte, 16)

	for {
		n, err := trm.term.Read(buf)
		if err != nil {
			logger.Logf(logger.Allow, "termplay", "%v", err)
			return
		}

		// an escape byte followed by other bytes is a control sequence (a
		// cursor key for example) and is ignored
		if n > 1 && buf[0] == easyterm.KeyEsc {
			continue
		}

		for _, b := range buf[:n] {
			switch b {
			case easyterm.KeyInterrupt:
				trm.send(userinput.EventQuit{})
			case easyterm.KeySuspend:
				trm.term.CanonicalMode()
				easyterm.SuspendProcess()
				trm.term.RawMode()
				trm.Redraw()
			default:
				if key, ok := keyName(b); ok {
					trm.press(key)
				}
			}
		}
	}
}

// press sends a key down event and arranges for the matching key up event to
// be sent after the hold duration. a repeated key extends the hold
func (trm *TermPlay) press(key string) {
	trm.crit.Lock()
	defer trm.crit.Unlock()

	if t, ok := trm.holds[key]; ok {
		if t.Stop() {
			t.Reset(holdDuration)
			return
		}
	}

	trm.send(userinput.EventKeyboard{Key: key, Down: true})

	var hold *time.Timer
	hold = time.AfterFunc(holdDuration, func() {
		trm.crit.Lock()
		defer trm.crit.Unlock()
		if trm.holds[key] == hold {
			delete(trm.holds, key)
		}
		trm.send(userinput.EventKeyboard{Key: key, Down: false})
	})
	trm.holds[key] = hold
}

func (trm *TermPlay) send(ev userinput.Event) {
	if trm.events == nil {
		return
	}
	select {
	case trm.events <- ev:
	default:
		logger.Log(logger.Allow, "termplay", "dropped user input event")
	}
}
