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

package contentloader

import (
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/retroriv/archivefs"
	"github.com/jetsetilly/retroriv/curated"
)

// MaxSize is the largest content that will be read into memory
const MaxSize = 1 << 30

// Sentinal error patterns
const (
	CannotOpen  = "contentloader: cannot open content: %v"
	TooLarge    = "contentloader: content is too large (%d bytes)"
	ShortRead   = "contentloader: content could not be read in full: %v"
	BadHash     = "contentloader: unexpected hash value"
	Unsupported = "contentloader: unsupported URL scheme (%s)"
)

// Loader is used to specify the content to load into a core.
type Loader struct {
	// filename of the content to load
	Filename string

	// expected hash of the loaded content. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte

	// treat zip archives as ordinary files rather than looking inside them
	BlockExtract bool

	// size of the content in bytes. -1 if the size is not yet known
	size int64
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
		size:     -1,
	}
}

// scheme of the Filename. local files have a scheme of "file"
func (cl Loader) scheme() string {
	u, err := url.Parse(cl.Filename)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// single letter schemes are windows drive letters
		return "file"
	}
	return strings.ToLower(u.Scheme)
}

// IsLocal returns true if the content is on the local filesystem.
func (cl Loader) IsLocal() bool {
	return cl.scheme() == "file"
}

// Path returns the filesystem path of local content. For remote content the
// Filename is returned unchanged.
func (cl Loader) Path() string {
	if u, err := url.Parse(cl.Filename); err == nil && u.Scheme == "file" {
		return u.Path
	}
	return cl.Filename
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	n := path.Base(cl.Filename)
	return strings.TrimSuffix(n, path.Ext(n))
}

// InArchive returns true if local content is a file inside a zip archive.
func (cl Loader) InArchive() bool {
	if !cl.IsLocal() {
		return false
	}
	p, err := cl.resolve()
	return err == nil && p.InArchive()
}

func (cl Loader) resolve() (archivefs.Path, error) {
	if !cl.BlockExtract {
		return archivefs.Resolve(cl.Path())
	}
	fi, err := os.Stat(cl.Path())
	if err != nil {
		return archivefs.Path{}, err
	}
	if fi.IsDir() {
		return archivefs.Path{}, fmt.Errorf("%s is a directory", cl.Filename)
	}
	return archivefs.Path{File: cl.Path()}, nil
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return cl.Data != nil
}

// Size returns the size of the content in bytes. For local content the
// content is not read. Remote content is loaded in order to find the size.
func (cl *Loader) Size() (int64, error) {
	if cl.size >= 0 {
		return cl.size, nil
	}

	switch cl.scheme() {
	case "file":
		p, err := cl.resolve()
		if err != nil {
			return 0, curated.Errorf(CannotOpen, err)
		}
		sz, err := p.Size()
		if err != nil {
			return 0, curated.Errorf(CannotOpen, err)
		}
		cl.size = sz

	case "http", "https":
		if err := cl.Load(); err != nil {
			return 0, err
		}

	default:
		return 0, curated.Errorf(Unsupported, cl.scheme())
	}

	return cl.size, nil
}

// Load the content data. The Data field will be exactly as long as the
// content. Subsequent calls to Load() do nothing.
func (cl *Loader) Load() error {
	if cl.HasLoaded() {
		return nil
	}

	var data []byte
	var err error

	switch cl.scheme() {
	case "file":
		data, err = cl.loadFile()
	case "http", "https":
		data, err = cl.loadHTTP()
	default:
		err = curated.Errorf(Unsupported, cl.scheme())
	}
	if err != nil {
		return err
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(BadHash)
	}

	cl.Hash = hash
	cl.Data = data
	cl.size = int64(len(data))

	return nil
}

func (cl *Loader) loadFile() ([]byte, error) {
	p, err := cl.resolve()
	if err != nil {
		return nil, curated.Errorf(CannotOpen, err)
	}

	f, size, err := p.Open()
	if err != nil {
		return nil, curated.Errorf(CannotOpen, err)
	}
	defer f.Close()

	if size > MaxSize {
		return nil, curated.Errorf(TooLarge, size)
	}

	data := make([]byte, size)
	_, err = io.ReadFull(f, data)
	if err != nil {
		return nil, curated.Errorf(ShortRead, err)
	}

	return data, nil
}

func (cl *Loader) loadHTTP() ([]byte, error) {
	resp, err := http.Get(cl.Filename)
	if err != nil {
		return nil, curated.Errorf(CannotOpen, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, curated.Errorf(CannotOpen, errors.New(resp.Status))
	}

	if resp.ContentLength > MaxSize {
		return nil, curated.Errorf(TooLarge, resp.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxSize+1))
	if err != nil {
		return nil, curated.Errorf(ShortRead, err)
	}
	if len(data) > MaxSize {
		return nil, curated.Errorf(TooLarge, len(data))
	}
	if resp.ContentLength >= 0 && int64(len(data)) != resp.ContentLength {
		return nil, curated.Errorf(ShortRead, fmt.Errorf("%d of %d bytes", len(data), resp.ContentLength))
	}

	return data, nil
}
