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

package archivefs_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/retroriv/archivefs"
	"github.com/jetsetilly/retroriv/test"
)

func makeArchive(t *testing.T, dir string, name string, files map[string]string) string {
	t.Helper()

	fn := filepath.Join(dir, name)
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	w := zip.NewWriter(f)
	for n, c := range files {
		e, err := w.Create(n)
		test.DemandSuccess(t, err)
		_, err = e.Write([]byte(c))
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, w.Close())

	return fn
}

func TestRegularFile(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "testfile")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("abc"), 0o600))

	p, err := archivefs.Resolve(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.InArchive(), false)
	test.ExpectEquality(t, p.String(), fn)

	sz, err := p.Size()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sz, int64(3))

	_, err = archivefs.Resolve(filepath.Join(dir, "foo"))
	test.ExpectFailure(t, err)

	_, err = archivefs.Resolve(dir)
	test.ExpectFailure(t, err)
}

func TestArchive(t *testing.T) {
	dir := t.TempDir()
	arch := makeArchive(t, dir, "testarchive.zip", map[string]string{
		"a.gb":     "first",
		"sub/b.gb": "second!",
	})

	p, err := archivefs.Resolve(filepath.Join(arch, "sub", "b.gb"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.InArchive(), true)
	test.ExpectEquality(t, p.Archive, arch)
	test.ExpectEquality(t, p.Inner, "sub/b.gb")

	r, sz, err := p.Open()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sz, int64(7))
	d, err := io.ReadAll(r)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(d), "second!")
	test.ExpectSuccess(t, r.Close())

	sz, err = p.Size()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sz, int64(7))

	// missing file in archive
	_, err = archivefs.Resolve(filepath.Join(arch, "c.gb"))
	test.ExpectFailure(t, err)

	// directory in archive
	_, err = archivefs.Resolve(filepath.Join(arch, "sub"))
	test.ExpectFailure(t, err)

	// archive with more than one file cannot be selected directly
	_, err = archivefs.Resolve(arch)
	test.ExpectFailure(t, err)
}

func TestSingleFileArchive(t *testing.T) {
	arch := makeArchive(t, t.TempDir(), "single.ZIP", map[string]string{
		"only.gb": "data",
	})

	p, err := archivefs.Resolve(arch)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.InArchive(), true)
	test.ExpectEquality(t, p.Inner, "only.gb")
}
