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

package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".gopher8"

// ResourcePath returns the path to the named resource, prepended with the
// base resource path. An empty subPth or file is ignored.
//
// The directories leading to the resource are not created. Use
// CreateResourcePath() when the resource is about to be written.
func ResourcePath(subPth string, file string) string {
	return filepath.Join(getBasePath(), subPth, file)
}

// CreateResourcePath is like ResourcePath() but creates any missing
// directories leading to the resource.
func CreateResourcePath(subPth string, file string) (string, error) {
	dir := filepath.Join(getBasePath(), subPth)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return filepath.Join(dir, file), nil
}

// getBasePath() returns baseResourcePath if it exists in the current
// directory. Otherwise the path is placed in the user's configuration
// directory, as reported by os.UserConfigDir().
//
// this means a developer can keep a local resource directory next to the
// source tree without it being picked up by a normal installation.
func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cnf, baseResourcePath[1:])
}
