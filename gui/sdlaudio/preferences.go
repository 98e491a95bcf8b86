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
	"fmt"

	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Preferences for the sdlaudio package.
type Preferences struct {
	dsk *prefs.Disk

	Enabled prefs.Bool

	// frequency of the generated tone in Hz. not used if a sample is set
	Frequency prefs.Int

	// volume in the range 0.0 to 1.0
	Volume prefs.Float

	// filename of a WAV or MP3 file to play instead of the generated tone
	Sample prefs.String
}

func (p *Preferences) String() string {
	return fmt.Sprintf("enabled=%s frequency=%s volume=%s sample=%s",
		p.Enabled.String(), p.Frequency.String(), p.Volume.String(), p.Sample.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := newPreferences()

	pth := paths.ResourcePath("", prefs.DefaultPrefsFile)

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("audio.enabled", &p.Enabled)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.frequency", &p.Frequency)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.volume", &p.Volume)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("audio.sample", &p.Sample)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// NewDefaultPreferences returns preferences with default values and no
// connection to the preferences file.
func NewDefaultPreferences() *Preferences {
	return newPreferences()
}

func newPreferences() *Preferences {
	p := &Preferences{}
	p.Frequency.SetHookPre(func(v prefs.Value) error {
		if f := v.(int); f < 20 || f > 20000 {
			return fmt.Errorf("sdlaudio: tone frequency of %dHz is not audible", f)
		}
		return nil
	})
	p.Volume.SetHookPre(func(v prefs.Value) error {
		if f := v.(float64); f < 0.0 || f > 1.0 {
			return fmt.Errorf("sdlaudio: volume must be between 0.0 and 1.0")
		}
		return nil
	})
	p.SetDefaults()
	return p
}

// SetDefaults reverts all audio settings to default values.
func (p *Preferences) SetDefaults() {
	p.Enabled.Set(true)
	p.Frequency.Set(440)
	p.Volume.Set(0.25)
	p.Sample.Set("")
}

// Load audio preferences from disk. Does nothing if the preferences are not
// connected to the preferences file.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current audio preferences to disk. Does nothing if the preferences
// are not connected to the preferences file.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
