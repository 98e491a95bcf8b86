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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/test"
)

func TestPaths(t *testing.T) {
	// run test in a temporary directory containing a local resource
	// directory so that the result is predictable
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(".gopher8", 0o700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), filepath.Join(".gopher8", "foo", "bar", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), filepath.Join(".gopher8", "foo", "bar"))
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), filepath.Join(".gopher8", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("", ""), ".gopher8")

	pth, err := paths.CreateResourcePath("recordings", "test.wav")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8", "recordings", "test.wav"))
	_, err = os.Stat(filepath.Join(".gopher8", "recordings"))
	test.ExpectSuccess(t, err)
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("wav", "pong")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "wav_pong_"))

	fn = paths.UniqueFilename("wav", "  ")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "wav_"))
	test.ExpectFailure(t, strings.Contains(fn, "__"))
}
