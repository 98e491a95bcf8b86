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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// sentinel error patterns.
const (
	TooLarge       = "romloader: %s is too large (%d bytes, maximum %d)"
	Empty          = "romloader: %s is empty"
	UnexpectedHash = "romloader: unexpected hash value for %s"
	LoadError      = "romloader: %v"
)

// Loader is used to specify the ROM to load into the machine.
type Loader struct {
	// filename of ROM to load. can be a http or https URL
	Filename string

	// expected hash of the loaded ROM. empty string indicates that the hash is
	// unknown and need not be validated. after a load operation the value will
	// be the hash of the loaded data
	Hash string

	// the address the data will be loaded at. the maximum size of the data is
	// determined by this value
	Origin uint16

	// copy of the loaded data. subsequent calls to Load() will not reload the
	// data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
		Origin:   memory.ProgramOrigin,
	}
}

// ShortName returns a shortened version of the filename, suitable for window
// titles and filenames.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// MaxSize returns the largest ROM that can be loaded at the Origin.
func (ld Loader) MaxSize() int {
	if int(ld.Origin) >= memory.Size {
		return 0
	}
	return memory.Size - int(ld.Origin)
}

// Load the ROM data. Filenames with a http or https scheme are fetched over
// the network, anything else is treated as a local file.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoadError, fmt.Sprintf("%s (%s)", ld.Filename, resp.Status))
		}

		// read one byte more than allowed so that oversized ROMs can be
		// detected without reading everything
		data, err = io.ReadAll(io.LimitReader(resp.Body, int64(ld.MaxSize())+1))
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file":
		fallthrough
	case "":
		data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		// single letter schemes are windows drive letters
		if len(scheme) == 1 {
			data, err = os.ReadFile(ld.Filename)
			if err != nil {
				return curated.Errorf(LoadError, err)
			}
			break
		}
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(data) == 0 {
		return curated.Errorf(Empty, ld.ShortName())
	}

	if len(data) > ld.MaxSize() {
		return curated.Errorf(TooLarge, ld.ShortName(), len(data), ld.MaxSize())
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash, ld.ShortName())
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}
