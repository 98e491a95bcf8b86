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
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher8/logger"
)

// loadSample decodes a WAV or MP3 file. the returned data is mono (taken
// from the first channel in the case of stereo source files) and normalised
// to the range -1.0 to 1.0.
func loadSample(filename string) ([]float32, float64, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, 0, fmt.Errorf("sample: %w", err)
	}
	defer f.Close()

	var data []float32
	var rate float64

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if dec == nil {
			return nil, 0, fmt.Errorf("wav: error decoding")
		}

		if !dec.IsValidFile() {
			return nil, 0, fmt.Errorf("wav: not a valid wav file")
		}

		// load all data at once
		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return nil, 0, fmt.Errorf("wav: %w", err)
		}

		chans := int(dec.NumChans)
		if chans < 1 {
			chans = 1
		}

		// integer samples are scaled according to the bit depth
		scale := float32(int(1) << (dec.BitDepth - 1))

		// copy first channel only of data stream
		data = make([]float32, 0, len(buf.Data)/chans)
		for i := 0; i < len(buf.Data); i += chans {
			data = append(data, float32(buf.Data[i])/scale)
		}

		rate = float64(dec.SampleRate)

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return nil, 0, fmt.Errorf("mp3: %w", err)
		}

		// the decoded stream is always 16bit (little endian) 2 channels even if
		// the source is a single channel MP3. a sample always consists of 4
		// bytes and we only want the left channel
		err = nil
		chunk := make([]byte, 4096)
		for err != io.EOF {
			var chunkLen int
			chunkLen, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return nil, 0, fmt.Errorf("mp3: %w", err)
			}

			for i := 0; i+1 < chunkLen; i += 4 {
				v := int16(binary.LittleEndian.Uint16(chunk[i:]))
				data = append(data, float32(v)/32768)
			}
		}

		rate = float64(dec.SampleRate())

	default:
		return nil, 0, fmt.Errorf("sample: unsupported file type (%s)", filepath.Ext(filename))
	}

	logger.Logf(logger.Allow, "sdlaudio", "loaded sample %s (%d samples at %.0fHz)", filepath.Base(filename), len(data), rate)

	return data, rate, nil
}
