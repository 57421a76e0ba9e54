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

// Package archivefs resolves filesystem paths that may pass through a zip
// archive. A path such as "games/collection.zip/tetris.gb" names the file
// "tetris.gb" inside the archive "games/collection.zip".
//
// If the path names the archive itself and the archive contains exactly one
// file then that file is selected.
package archivefs

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Path is a resolved location of a file. The file is either a regular file
// on the filesystem or a file inside a zip archive.
type Path struct {
	// path of the zip archive. empty if the file is not in an archive
	Archive string

	// slash separated path of the file inside the archive
	Inner string

	// filesystem path of the file when it is not in an archive
	File string
}

func (p Path) String() string {
	if p.InArchive() {
		return filepath.Join(p.Archive, filepath.FromSlash(p.Inner))
	}
	return p.File
}

// InArchive returns true if the file is inside a zip archive.
func (p Path) InArchive() bool {
	return p.Archive != ""
}

func isArchive(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".zip")
}

// Resolve the filename. An error is returned if the filename does not refer
// to a readable regular file, either directly or inside an archive.
func Resolve(filename string) (Path, error) {
	filename = filepath.Clean(filename)

	fi, err := os.Stat(filename)
	if err == nil {
		if fi.IsDir() {
			return Path{}, fmt.Errorf("archivefs: %s is a directory", filename)
		}
		if !isArchive(filename) {
			return Path{File: filename}, nil
		}
		return single(filename)
	}

	// walk back along the path looking for an archive
	arch := filename
	var inner []string
	for {
		dir := filepath.Dir(arch)
		if dir == arch {
			return Path{}, err
		}
		inner = append([]string{filepath.Base(arch)}, inner...)
		arch = dir

		fi, serr := os.Stat(arch)
		if serr != nil {
			continue
		}
		if fi.IsDir() || !isArchive(arch) {
			return Path{}, err
		}
		break
	}

	p := Path{Archive: arch, Inner: strings.Join(inner, "/")}

	zf, err := zip.OpenReader(p.Archive)
	if err != nil {
		return Path{}, fmt.Errorf("archivefs: %w", err)
	}
	defer zf.Close()

	fi, err = statInner(zf, p.Inner)
	if err != nil {
		return Path{}, err
	}
	if fi.IsDir() {
		return Path{}, fmt.Errorf("archivefs: %s is a directory", p)
	}

	return p, nil
}

// select the only file in the archive
func single(archive string) (Path, error) {
	zf, err := zip.OpenReader(archive)
	if err != nil {
		return Path{}, fmt.Errorf("archivefs: %w", err)
	}
	defer zf.Close()

	var files []string
	for _, f := range zf.File {
		if !f.FileInfo().IsDir() {
			files = append(files, f.Name)
		}
	}

	if len(files) != 1 {
		return Path{}, fmt.Errorf("archivefs: %s contains %d files", archive, len(files))
	}

	return Path{Archive: archive, Inner: files[0]}, nil
}

func statInner(zf *zip.ReadCloser, inner string) (os.FileInfo, error) {
	f, err := zf.Open(inner)
	if err != nil {
		return nil, fmt.Errorf("archivefs: %w", err)
	}
	defer f.Close()
	return f.Stat()
}

type file struct {
	io.ReadCloser
	zf *zip.ReadCloser
}

func (f file) Close() error {
	err := f.ReadCloser.Close()
	if zerr := f.zf.Close(); err == nil {
		err = zerr
	}
	return err
}

// Open the file for reading. The size of the file is also returned.
func (p Path) Open() (io.ReadCloser, int64, error) {
	if !p.InArchive() {
		f, err := os.Open(p.File)
		if err != nil {
			return nil, 0, err
		}
		fi, err := f.Stat()
		if err != nil {
			f.Close()
			return nil, 0, err
		}
		return f, fi.Size(), nil
	}

	zf, err := zip.OpenReader(p.Archive)
	if err != nil {
		return nil, 0, fmt.Errorf("archivefs: %w", err)
	}

	r, err := zf.Open(p.Inner)
	if err != nil {
		zf.Close()
		return nil, 0, fmt.Errorf("archivefs: %w", err)
	}

	fi, err := r.Stat()
	if err != nil {
		r.Close()
		zf.Close()
		return nil, 0, fmt.Errorf("archivefs: %w", err)
	}

	return file{ReadCloser: r, zf: zf}, fi.Size(), nil
}

// Size of the file without reading it.
func (p Path) Size() (int64, error) {
	if !p.InArchive() {
		fi, err := os.Stat(p.File)
		if err != nil {
			return 0, err
		}
		return fi.Size(), nil
	}

	zf, err := zip.OpenReader(p.Archive)
	if err != nil {
		return 0, fmt.Errorf("archivefs: %w", err)
	}
	defer zf.Close()

	fi, err := statInner(zf, p.Inner)
	if err != nil {
		return 0, err
	}
	return fi.Size(), nil
}
