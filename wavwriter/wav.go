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

// Package wavwriter allows writing of the machine's tone to disk as a WAV
// file. Note that tone changes are buffered in memory and the WAV data is
// created and written to disk on program end.
package wavwriter

import (
	"os"
	"sync"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
)

// The format of the WAV file.
const (
	SampleFreq = 44100
	BitDepth   = 16
)

// Frequency of the tone in Hz.
const Frequency = 440

// amplitude of the square wave. a quarter of the maximum for 16 bit samples
const amplitude = 0x2000

type toneChange struct {
	at time.Duration
	on bool
}

// WavWriter implements the hardware.Beeper interface.
type WavWriter struct {
	crit sync.Mutex

	filename string

	start   time.Time
	changes []toneChange

	// returns the current time. replaced during testing
	now func() time.Time
}

// New is the preferred method of initialisation for the WavWriter type. The
// start of the WAV file is the moment New() is called.
func New(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename specified")
	}

	aw := &WavWriter{
		filename: filename,
		now:      time.Now,
	}
	aw.start = aw.now()

	return aw, nil
}

// Beep implements the hardware.Beeper interface.
func (aw *WavWriter) Beep(on bool) error {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	aw.changes = append(aw.changes, toneChange{at: aw.now().Sub(aw.start), on: on})
	return nil
}

// EndMixing writes the WAV file. The file is as long as the time between the
// call to New() and the call to EndMixing().
func (aw *WavWriter) EndMixing() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		Data:           aw.samples(aw.now().Sub(aw.start)),
		SourceBitDepth: BitDepth,
	}

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	// audio format 1 is PCM
	enc := wav.NewEncoder(f, SampleFreq, BitDepth, 1, 1)

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

func sampleIndex(d time.Duration) int {
	return int(d.Seconds() * SampleFreq)
}

// samples creates a square wave for every period the tone is on. the phase of
// the wave is taken from the absolute sample index so it is continuous
// across tone changes
func (aw *WavWriter) samples(end time.Duration) []int {
	data := make([]int, sampleIndex(end))

	for i, c := range aw.changes {
		if !c.on {
			continue
		}

		to := len(data)
		if i+1 < len(aw.changes) {
			to = sampleIndex(aw.changes[i+1].at)
		}
		if to > len(data) {
			to = len(data)
		}

		for s := sampleIndex(c.at); s < to; s++ {
			if (s*2*Frequency/SampleFreq)%2 == 0 {
				data[s] = amplitude
			} else {
				data[s] = -amplitude
			}
		}
	}

	return data
}
