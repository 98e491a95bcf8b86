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

package wavwriter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8/test"
)

type clock struct {
	t time.Time
}

func (c *clock) now() time.Time {
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestWriter(t *testing.T) (*WavWriter, *clock) {
	t.Helper()
	aw, err := New(filepath.Join(t.TempDir(), "test.wav"))
	test.DemandSuccess(t, err)

	c := &clock{t: time.Unix(0, 0)}
	aw.now = c.now
	aw.start = c.now()
	return aw, c
}

func TestSamples(t *testing.T) {
	aw, c := newTestWriter(t)

	c.advance(100 * time.Millisecond)
	test.ExpectSuccess(t, aw.Beep(true))
	c.advance(100 * time.Millisecond)
	test.ExpectSuccess(t, aw.Beep(false))
	c.advance(100 * time.Millisecond)

	data := aw.samples(c.now().Sub(aw.start))
	test.ExpectEquality(t, len(data), SampleFreq*3/10)

	// silence before and after the tone
	test.ExpectEquality(t, data[0], 0)
	test.ExpectEquality(t, data[SampleFreq/10-1], 0)
	test.ExpectEquality(t, data[len(data)-1], 0)

	// the tone is a square wave
	var high, low int
	for _, s := range data[SampleFreq/10 : SampleFreq*2/10] {
		switch s {
		case amplitude:
			high++
		case -amplitude:
			low++
		default:
			t.Fatalf("unexpected sample value %d", s)
		}
	}
	test.ExpectApproximate(t, high, low, 0.05)
}

func TestNoFilename(t *testing.T) {
	_, err := New("")
	test.ExpectFailure(t, err)
}

func TestEndMixing(t *testing.T) {
	aw, c := newTestWriter(t)

	test.ExpectSuccess(t, aw.Beep(true))
	c.advance(time.Second)
	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(aw.filename)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, int(dec.SampleRate), SampleFreq)
	test.ExpectEquality(t, int(dec.NumChans), 1)
	test.ExpectEquality(t, int(dec.BitDepth), BitDepth)
}
