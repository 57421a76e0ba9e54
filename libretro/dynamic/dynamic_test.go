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

package dynamic_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jetsetilly/retroriv/libretro"
	"github.com/jetsetilly/retroriv/libretro/dynamic"
	"github.com/jetsetilly/retroriv/test"
)

func TestOpenMissing(t *testing.T) {
	mod, err := dynamic.Open(filepath.Join(t.TempDir(), "missing_libretro.so"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, mod == nil)
}

// libc is a shared library that is certain to exist on a linux system and
// which certainly does not export the libretro entry points
func openLibc(t *testing.T) libretro.Module {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("test requires linux")
	}
	mod, err := dynamic.Open("libc.so.6")
	if err != nil {
		t.Skipf("libc not available: %v", err)
	}
	return mod
}

func TestLookup(t *testing.T) {
	mod := openLibc(t)
	defer mod.Close()

	test.ExpectSuccess(t, mod.Lookup("malloc"))
	test.ExpectSuccess(t, mod.Lookup("malloc"))

	for _, s := range libretro.Symbols {
		test.ExpectFailure(t, mod.Lookup(s), s)
	}
}

func TestBindUnresolved(t *testing.T) {
	mod := openLibc(t)
	defer mod.Close()

	core, err := mod.Bind()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, core == nil)
}

func TestClose(t *testing.T) {
	mod := openLibc(t)

	test.ExpectSuccess(t, mod.Close())

	// closing a second time is not an error
	test.ExpectSuccess(t, mod.Close())

	// lookups on a closed module always fail
	test.ExpectFailure(t, mod.Lookup("malloc"))

	_, err := mod.Bind()
	test.ExpectFailure(t, err)
}
