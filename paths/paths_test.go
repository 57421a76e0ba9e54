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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/retroriv/paths"
	"github.com/jetsetilly/retroriv/test"
)

func TestPaths(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".retroriv", 0o700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), filepath.Join(".retroriv", "foo", "bar", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), filepath.Join(".retroriv", "foo", "bar"))
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), filepath.Join(".retroriv", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("", ""), ".retroriv")
}

func TestConfigDir(t *testing.T) {
	t.Chdir(t.TempDir())

	cnf, err := os.UserConfigDir()
	if err != nil {
		t.Skip("no user config directory")
	}
	test.ExpectEquality(t, paths.ResourcePath("retroriv.toml"), filepath.Join(cnf, "retroriv", "retroriv.toml"))
}

func TestUniqueFilename(t *testing.T) {
	re := regexp.MustCompile(`^profile_tetris_\d{8}_\d{6}$`)
	fn := paths.UniqueFilename("profile", " tetris ")
	test.ExpectEquality(t, re.MatchString(fn), true)

	re = regexp.MustCompile(`^profile_\d{8}_\d{6}$`)
	fn = paths.UniqueFilename("profile", "")
	test.ExpectEquality(t, re.MatchString(fn), true)
}
