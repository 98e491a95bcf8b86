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

package sdlaudio

import (
	"sync"
	"time"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/veandco/go-sdl2/sdl"
)

// the number of samples sent to the device in one go. the tone is topped up
// whenever the queue falls below two buffers, so this value determines the
// latency of the tone starting and stopping
const bufferLength = 1024

// Audio outputs the machine's tone using SDL. It implements the
// hardware.Beeper interface.
type Audio struct {
	Prefs *Preferences

	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// wave and on are accessed by the emulation goroutine (through Beep()),
	// the feeder goroutine and the prefs hooks
	crit   sync.Mutex
	wave   waveform
	on     bool
	buffer []byte

	quit chan bool
	done chan bool
}

// NewAudio is the preferred method of initialisation for the Audio Type.
//
// SDL must have been initialised with the INIT_AUDIO flag.
func NewAudio(p *Preferences) (*Audio, error) {
	if p == nil {
		p = NewDefaultPreferences()
	}

	aud := &Audio{
		Prefs:  p,
		buffer: make([]byte, bufferLength*sampleSize),
		quit:   make(chan bool),
		done:   make(chan bool),
	}

	spec := &sdl.AudioSpec{
		Freq:     SampleFreq,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	aud.setWaveform()

	// changes to the waveform preferences take effect immediately
	hook := func(_ prefs.Value) error {
		aud.setWaveform()
		return nil
	}
	p.Frequency.SetHookPost(hook)
	p.Volume.SetHookPost(hook)
	p.Sample.SetHookPost(hook)

	// turning the audio off while the tone is on stops the tone immediately
	p.Enabled.SetHookPost(func(v prefs.Value) error {
		if !v.(bool) {
			sdl.ClearQueuedAudio(aud.id)
		}
		return nil
	})

	go aud.feeder()

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

func (aud *Audio) setWaveform() {
	var w waveform

	volume := aud.Prefs.Volume.Get().(float64)

	if fn := aud.Prefs.Sample.Get().(string); fn != "" {
		data, rate, err := loadSample(fn)
		if err != nil {
			logger.Logf(logger.Allow, "sdlaudio", "using generated tone: %v", err)
		} else {
			w = sampleWave(data, rate, volume)
		}
	}

	if len(w.data) == 0 {
		w = squareWave(aud.Prefs.Frequency.Get().(int), volume)
	}

	aud.crit.Lock()
	aud.wave = w
	aud.crit.Unlock()
}

// feeder keeps the audio queue topped up while the tone is on
func (aud *Audio) feeder() {
	rate := time.Duration(bufferLength) * time.Second / SampleFreq
	tck := time.NewTicker(rate / 2)
	defer tck.Stop()

	for {
		select {
		case <-aud.quit:
			aud.done <- true
			return
		case <-tck.C:
			aud.crit.Lock()
			if aud.on && sdl.GetQueuedAudioSize(aud.id) < uint32(len(aud.buffer)*2) {
				if err := aud.queue(); err != nil {
					logger.Logf(logger.Allow, "sdlaudio", "%v", err)
				}
			}
			aud.crit.Unlock()
		}
	}
}

// queue the next buffer of audio. must be called with the crit lock held
func (aud *Audio) queue() error {
	aud.wave.fill(aud.buffer)
	return sdl.QueueAudio(aud.id, aud.buffer)
}

// Beep implements the hardware.Beeper interface.
func (aud *Audio) Beep(on bool) error {
	if !aud.Prefs.Enabled.Get().(bool) {
		return nil
	}

	aud.crit.Lock()
	defer aud.crit.Unlock()

	aud.on = on

	if on {
		// start the tone straight away rather than waiting for the feeder
		aud.wave.rewind()
		if err := aud.queue(); err != nil {
			return curated.Errorf("sdlaudio: %v", err)
		}
		return aud.queue()
	}

	sdl.ClearQueuedAudio(aud.id)
	return nil
}

// EndMixing stops the feeder and closes the audio device.
func (aud *Audio) EndMixing() error {
	aud.quit <- true
	<-aud.done

	aud.crit.Lock()
	defer aud.crit.Unlock()

	aud.on = false
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)

	return nil
}
