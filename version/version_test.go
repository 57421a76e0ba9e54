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

package version_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/retroriv/test"
	"github.com/jetsetilly/retroriv/version"
)

func TestBanner(t *testing.T) {
	v, r, release := version.Version()
	test.ExpectInequality(t, v, "")
	test.ExpectInequality(t, r, "")

	// test binaries are not built with the makefile
	test.ExpectEquality(t, release, false)
	test.ExpectEquality(t, strings.HasPrefix(version.Banner(), "Retroriv "), true)
}
