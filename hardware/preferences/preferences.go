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

package preferences

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware package.
type Preferences struct {
	dsk *prefs.Disk

	// number of instructions executed per second
	CPURate prefs.Int

	// I is incremented by the register block instructions
	IncrementI prefs.Bool

	// shift instructions operate on Vx only
	ShiftVxOnly prefs.Bool
}

func (p *Preferences) String() string {
	return fmt.Sprintf("cpurate=%s incrementi=%s shiftvxonly=%s", p.CPURate.String(), p.IncrementI.String(), p.ShiftVxOnly.String())
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are loaded from the preferences file.
func NewPreferences() (*Preferences, error) {
	p := newPreferences()

	pth := paths.ResourcePath("", prefs.DefaultPrefsFile)

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("machine.cpurate", &p.CPURate)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.quirks.incrementi", &p.IncrementI)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.quirks.shiftvxonly", &p.ShiftVxOnly)
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
// connection to the preferences file. Useful for tests and for emulations
// that should not be affected by the user's preferences.
func NewDefaultPreferences() *Preferences {
	return newPreferences()
}

func newPreferences() *Preferences {
	p := &Preferences{}
	p.CPURate.SetHookPre(func(v prefs.Value) error {
		if r := v.(int); r < clocks.MinCPURate || r > clocks.MaxCPURate {
			return fmt.Errorf("preferences: cpu rate of %d is outside the range %d to %d", r, clocks.MinCPURate, clocks.MaxCPURate)
		}
		return nil
	})
	p.SetDefaults()
	return p
}

// SetDefaults reverts all hardware settings to default values.
func (p *Preferences) SetDefaults() {
	p.CPURate.Set(clocks.DefaultCPURate)
	p.IncrementI.Set(false)
	p.ShiftVxOnly.Set(false)
}

// Load hardware preferences from disk. Does nothing if the preferences are not
// connected to the preferences file.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk. Does nothing if the preferences
// are not connected to the preferences file.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
