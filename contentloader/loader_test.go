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

package contentloader_test

import (
	"archive/zip"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/retroriv/contentloader"
	"github.com/jetsetilly/retroriv/curated"
	"github.com/jetsetilly/retroriv/test"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

func TestLocal(t *testing.T) {
	fn := writeFile(t, "tetris.gb", []byte{0x00, 0xc3, 0x50, 0x01})

	cl := contentloader.NewLoader(fn)
	test.ExpectEquality(t, cl.IsLocal(), true)
	test.ExpectEquality(t, cl.ShortName(), "tetris")
	test.ExpectEquality(t, cl.HasLoaded(), false)

	sz, err := cl.Size()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sz, int64(4))
	test.ExpectEquality(t, cl.HasLoaded(), false)

	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 4)
	test.ExpectEquality(t, cl.Data[1], uint8(0xc3))
	test.ExpectEquality(t, cl.Hash, "1d2c5dba744db2a6f3a80d78bfe4b81a025eedfc")
}

func TestEmpty(t *testing.T) {
	fn := writeFile(t, "empty.bin", nil)

	cl := contentloader.NewLoader(fn)
	sz, err := cl.Size()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sz, int64(0))
}

func TestMissing(t *testing.T) {
	cl := contentloader.NewLoader(filepath.Join(t.TempDir(), "missing.gb"))
	_, err := cl.Size()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, contentloader.CannotOpen), true)

	err = cl.Load()
	test.ExpectEquality(t, curated.Is(err, contentloader.CannotOpen), true)
	test.ExpectEquality(t, cl.HasLoaded(), false)
}

func TestDirectory(t *testing.T) {
	cl := contentloader.NewLoader(t.TempDir())
	_, err := cl.Size()
	test.ExpectEquality(t, curated.Is(err, contentloader.CannotOpen), true)
}

func TestHash(t *testing.T) {
	fn := writeFile(t, "hash.bin", []byte("retroriv"))

	cl := contentloader.NewLoader(fn)
	test.DemandSuccess(t, cl.Load())
	hash := cl.Hash

	cl = contentloader.NewLoader(fn)
	cl.Hash = hash
	test.ExpectSuccess(t, cl.Load())

	cl = contentloader.NewLoader(fn)
	cl.Hash = "0000"
	test.ExpectEquality(t, curated.Is(cl.Load(), contentloader.BadHash), true)
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pong.bin" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte{1, 2, 3, 4, 5})
	}))
	defer srv.Close()

	cl := contentloader.NewLoader(srv.URL + "/pong.bin")
	test.ExpectEquality(t, cl.IsLocal(), false)
	test.ExpectEquality(t, cl.ShortName(), "pong")

	sz, err := cl.Size()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sz, int64(5))
	test.ExpectEquality(t, cl.HasLoaded(), true)

	cl = contentloader.NewLoader(srv.URL + "/missing.bin")
	test.ExpectEquality(t, curated.Is(cl.Load(), contentloader.CannotOpen), true)
}

func TestUnsupported(t *testing.T) {
	cl := contentloader.NewLoader("ftp://example.com/game.bin")
	test.ExpectEquality(t, cl.IsLocal(), false)
	_, err := cl.Size()
	test.ExpectEquality(t, curated.Is(err, contentloader.Unsupported), true)
}

func TestArchive(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "roms.zip")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	w := zip.NewWriter(f)
	e, err := w.Create("tetris.gb")
	test.DemandSuccess(t, err)
	_, err = e.Write([]byte{0x00, 0xc3, 0x50, 0x01})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, w.Close())
	test.DemandSuccess(t, f.Close())

	cl := contentloader.NewLoader(filepath.Join(fn, "tetris.gb"))
	test.ExpectEquality(t, cl.InArchive(), true)
	sz, err := cl.Size()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sz, int64(4))
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.Hash, "1d2c5dba744db2a6f3a80d78bfe4b81a025eedfc")

	// single file archive selects the file
	cl = contentloader.NewLoader(fn)
	test.ExpectEquality(t, cl.InArchive(), true)
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 4)

	// archive is loaded as is
	cl = contentloader.NewLoader(fn)
	cl.BlockExtract = true
	test.ExpectEquality(t, cl.InArchive(), false)
	test.DemandSuccess(t, cl.Load())
	test.ExpectInequality(t, len(cl.Data), 4)
}
