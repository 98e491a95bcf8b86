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

// SampleFreq is the frequency of the audio device.
const SampleFreq = 44100

// the number of bytes per sample. samples are signed 16 bit little endian
const sampleSize = 2

// waveform is the audio that is repeated for as long as the tone is on
type waveform struct {
	data []int16
	pos  int
}

// squareWave creates a single period of a square wave.
func squareWave(freq int, volume float64) waveform {
	n := SampleFreq / freq
	if n < 2 {
		n = 2
	}

	amp := int16(volume * 32767)

	w := waveform{data: make([]int16, n)}
	for i := range w.data {
		if i < n/2 {
			w.data[i] = amp
		} else {
			w.data[i] = -amp
		}
	}
	return w
}

// sampleWave converts PCM data in the range -1.0 to 1.0 and at the specified
// sample rate to a waveform suitable for the audio device. resampling uses the
// nearest neighbour method, which is good enough for a beep.
func sampleWave(pcm []float32, rate float64, volume float64) waveform {
	if len(pcm) == 0 || rate <= 0 {
		return waveform{}
	}

	n := int(float64(len(pcm)) * SampleFreq / rate)
	if n == 0 {
		n = 1
	}

	w := waveform{data: make([]int16, n)}
	for i := range w.data {
		j := int(float64(i) * rate / SampleFreq)
		if j >= len(pcm) {
			j = len(pcm) - 1
		}

		v := float64(pcm[j])
		if v > 1.0 {
			v = 1.0
		} else if v < -1.0 {
			v = -1.0
		}
		w.data[i] = int16(v * volume * 32767)
	}
	return w
}

// fill the buffer with the waveform, continuing from where the previous call
// to fill() finished. the length of buf must be a multiple of sampleSize.
func (w *waveform) fill(buf []byte) {
	if len(w.data) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}

	for i := 0; i+1 < len(buf); i += sampleSize {
		v := uint16(w.data[w.pos])
		buf[i] = uint8(v)
		buf[i+1] = uint8(v >> 8)

		w.pos++
		if w.pos >= len(w.data) {
			w.pos = 0
		}
	}
}

// rewind the waveform so that it starts from the beginning on the next call
// to fill().
func (w *waveform) rewind() {
	w.pos = 0
}
