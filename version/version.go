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

// Package version reports the name and version of the application.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Retroriv"

// if number is empty then the project was probably not built using the makefile
var number string

// revision contains the vcs revision. If the source has been modified but
// has not been committed then the revision string will be suffixed with
// "+dirty"
var revision string

// version contains a the current version number of the project
//
// If the version string is "unreleased" then it means that the project has
// been manually built (ie. not with the makefile)
//
// If the version string is "local" then it means that there is no no version
// number and no vcs information. This can happen when compiling/running with
// "go run ."
var version string

// Version returns the version string, the revision string and whether this is a
// numbered "release" version. if release is true then the revision information
// should be used sparingly
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Banner returns a single line suitable for printing at startup.
func Banner() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

func init() {
	version, revision = fromBuildInfo(number)
}

func fromBuildInfo(number string) (string, string) {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	rev := "no revision information"
	if vcsRevision != "" {
		rev = vcsRevision
		if vcsModified {
			rev = fmt.Sprintf("%s+dirty", rev)
		}
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
