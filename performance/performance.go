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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/govern"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/preferences"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/romloader"
)

// PerformanceError is the pattern for errors returned by the package.
const PerformanceError = "performance: %v"

// sentinel error returned by Run() loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator using the supplied ROM.
//
// Emulation will run for the specified duration and will create a cpu and/or
// memory profile as defined by the Profile argument. If uncapped is false the
// emulation runs at the rate set in the preferences and the result is a
// measure of how accurately that rate is kept.
//
// When zeroSeed is true the random number generator is not seeded with the
// current time, and the video digest printed at the end of the check can be
// compared between runs.
func Check(output io.Writer, profile Profile, ld romloader.Loader, prefs *preferences.Preferences,
	uncapped bool, zeroSeed bool, duration string) error {

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	err = ld.Load()
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	// logging is suppressed for the performance machine
	m := hardware.NewMachine(prefs, logger.Deny)
	m.Random.ZeroSeed = zeroSeed

	video := digest.NewVideo(m.Display)
	m.AddRedrawer(video)

	err = m.LoadROM(ld.Data, ld.Origin)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	runner := func() error {
		timer := time.NewTimer(dur)
		defer timer.Stop()

		continueCheck := func() (govern.State, error) {
			select {
			case <-timer.C:
				return govern.Ending, timedOut
			default:
			}
			return govern.Running, nil
		}

		if uncapped {
			return m.RunUncapped(continueCheck)
		}
		return m.Run(continueCheck)
	}

	// profiling files are named after the ROM
	hdr := paths.UniqueFilename("performance", ld.ShortName())

	startTime := time.Now()

	err = RunProfiler(profile, hdr, runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf(PerformanceError, err)
	}

	elapsed := time.Since(startTime)

	rate := m.Prefs.CPURate.Get().(int)
	ips, accuracy := CalcIPS(m.Instructions(), elapsed.Seconds(), rate)
	output.Write([]byte(fmt.Sprintf("%.2f instructions/sec (%d instructions in %.2f seconds) %.1f%%\n",
		ips, m.Instructions(), elapsed.Seconds(), accuracy)))
	output.Write([]byte(fmt.Sprintf("%d frames, video digest %s\n", video.Frames(), video.Hash())))

	if profile&ProfileMemviz == ProfileMemviz {
		err = memvizDump(hdr, m)
		if err != nil {
			return curated.Errorf(PerformanceError, err)
		}
	}

	return nil
}

// CalcIPS takes the number of instructions and duration (in seconds) and
// returns the instructions-per-second and the accuracy of that value, as a
// percentage of the target rate.
func CalcIPS(instructions uint64, duration float64, rate int) (ips float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	ips = float64(instructions) / duration
	accuracy = 100 * ips / float64(rate)
	return ips, accuracy
}
