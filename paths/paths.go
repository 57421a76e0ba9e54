// This file is part of Retroriv.
//
// Retroriv is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Retroriv is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Retroriv.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".retroriv"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. Empty elements
// are ignored.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, getBasePath())
	for _, r := range resource {
		if r != "" {
			p = append(p, r)
		}
	}
	return filepath.Join(p...)
}

// getBasePath() returns baseResourcePath with the user's config directory
// prepended if it the unadorned baseResourcePath cannot be found in the
// current directory.
//
// note that we're not checking for the existance of the resource requested by
// the caller, or even the existance of 'baseResourcePath' in the config
// directory.
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
