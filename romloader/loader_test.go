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

package romloader_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/test"
)

func writeROM(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestShortName(t *testing.T) {
	ld := romloader.NewLoader("roms/pong.ch8")
	test.ExpectEquality(t, ld.ShortName(), "pong")
	test.ExpectEquality(t, ld.Origin, memory.ProgramOrigin)
	test.ExpectEquality(t, ld.MaxSize(), memory.Size-int(memory.ProgramOrigin))

	ld = romloader.NewLoader("https://example.com/games/tetris.rom")
	test.ExpectEquality(t, ld.ShortName(), "tetris")
}

func TestLoadFile(t *testing.T) {
	fn := writeROM(t, "test.ch8", []byte{0x60, 0x0a, 0x12, 0x02})

	ld := romloader.NewLoader(fn)
	test.ExpectFailure(t, ld.HasLoaded())
	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.Data), 4)
	test.ExpectEquality(t, len(ld.Hash), 40)

	// loading with the correct hash succeeds
	hash := ld.Hash
	ld = romloader.NewLoader(fn)
	ld.Hash = hash
	test.ExpectSuccess(t, ld.Load())

	// loading with the wrong hash fails
	ld = romloader.NewLoader(fn)
	ld.Hash = "0000000000000000000000000000000000000000"
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.UnexpectedHash))
}

func TestLoadErrors(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "missing.ch8"))
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.LoadError))

	ld = romloader.NewLoader(writeROM(t, "empty.ch8", []byte{}))
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.Empty))

	ld = romloader.NewLoader(writeROM(t, "large.ch8", make([]byte, memory.Size-int(memory.ProgramOrigin)+1)))
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.TooLarge))

	// the same data fits if it is loaded lower in memory
	ld = romloader.NewLoader(writeROM(t, "large.ch8", make([]byte, memory.Size-int(memory.ProgramOrigin)+1)))
	ld.Origin = 0x100
	test.ExpectSuccess(t, ld.Load())

	ld = romloader.NewLoader("ftp://example.com/pong.ch8")
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.LoadError))
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pong.ch8" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, "\x00\xe0\x12\x00")
	}))
	defer srv.Close()

	ld := romloader.NewLoader(srv.URL + "/pong.ch8")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 4)
	test.ExpectEquality(t, ld.ShortName(), "pong")

	ld = romloader.NewLoader(srv.URL + "/missing.ch8")
	test.ExpectSuccess(t, curated.Is(ld.Load(), romloader.LoadError))
}
