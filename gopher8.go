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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/gui/termplay"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/playmode"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate. the playmode package provides its own
	// handler so that the WAV file can be written on ctrl-c.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// a nil pointer returned through the interface is not a nil
				// interface
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "TERM", "DISASM", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = play(md, sync, false)

	case "TERM":
		err = play(md, sync, true)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// the preferences for the hardware. the string argument is a list of
// preferences that override the values on disk
func hardwarePreferences(override string) (*preferences.Preferences, error) {
	if override != "" {
		prefs.PushCommandLineStack(override)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}
	return preferences.NewPreferences()
}

func play(md *modalflag.Modes, sync *mainSync, term bool) error {
	md.NewMode()

	var scaling *float64
	if !term {
		scaling = md.AddFloat64("scale", 0.0, "display scaling")
	}
	wav := md.AddString("wav", "", "record audio to wav file. AUTO to generate a filename")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	override := md.AddString("prefs", "", "preferences to override. eg. machine.cpurate::700")
	seed := md.AddInt64("seed", 0, "seed for random number generator. zero means random seeding")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo. the terminal gui uses stdout for the display so
	// the log cannot be echoed
	if *log && !term {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM required for %s mode", md)
	case 1:
		ld := romloader.NewLoader(md.GetArg(0))
		err = ld.Load()
		if err != nil {
			return err
		}

		hw, err := hardwarePreferences(*override)
		if err != nil {
			return err
		}

		if strings.ToUpper(*wav) == "AUTO" {
			*wav, err = paths.CreateResourcePath("recordings", fmt.Sprintf("%s.wav", paths.UniqueFilename("wav", ld.ShortName())))
			if err != nil {
				return err
			}
		}

		// create gui
		sync.creator <- func() (GuiCreator, error) {
			if term {
				return termplay.NewTermPlay(os.Stdin, os.Stdout)
			}
			return sdlplay.NewSdlPlay(float32(*scaling))
		}

		// wait for creator result
		var scr gui.GUI
		select {
		case g := <-sync.creation:
			scr = g.(gui.GUI)
		case err := <-sync.creationError:
			return err
		}

		// turn off fallback ctrl-c handling. this so that the playmode can
		// end WAV recordings gracefully
		sync.state <- stateRequest{req: reqNoIntSig}

		err = playmode.Play(scr, &ld, hw, playmode.Options{
			WavFile:  *wav,
			ZeroSeed: *seed != 0,
			Seed:     *seed,
		})
		if err != nil {
			return err
		}

		// save preferences before finishing successfully
		err = scr.SetFeature(gui.ReqSavePrefs)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	flow := md.AddBool("flow", false, "include flow information in disassembly")
	linear := md.AddBool("linear", false, "include data that is not reachable from the origin")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM required for %s mode", md)
	case 1:
		attr := disassembly.WriteAttr{
			ByteCode: *bytecode,
			FlowInfo: *flow,
			Linear:   *linear,
		}

		dsm, err := disassembly.FromLoader(romloader.NewLoader(md.GetArg(0)))
		if err != nil {
			return err
		}

		dsm.Write(md.Output, attr)

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, MEMVIZ, ALL (comma sep)")
	uncapped := md.AddBool("uncapped", true, "run as fast as possible rather than at the preferred cpu rate")
	zeroSeed := md.AddBool("zeroseed", true, "use predictable random numbers so that the video digest can be compared")
	override := md.AddString("prefs", "", "preferences to override. eg. machine.cpurate::700")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM required for %s mode", md)
	case 1:
		prf, err := performance.ParseProfileString(*profile)
		if err != nil {
			return err
		}

		hw, err := hardwarePreferences(*override)
		if err != nil {
			return err
		}

		ld := romloader.NewLoader(md.GetArg(0))
		err = performance.Check(md.Output, prf, ld, hw, *uncapped, *zeroSeed, *duration)
		if err != nil {
			return err
		}

		// deliberately not saving preferences because we don't want the
		// performance check to change the preferences used by the play modes

	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(md.Output, version.String())
	return nil
}
