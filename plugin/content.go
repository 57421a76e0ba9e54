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

package plugin

import (
	"fmt"

	"github.com/jetsetilly/retroriv/contentloader"
	"github.com/jetsetilly/retroriv/curated"
	"github.com/jetsetilly/retroriv/libretro"
	"github.com/jetsetilly/retroriv/logger"
)

// WrongState is the pattern for errors returned when an operation is
// attempted in an unsuitable lifecycle state.
const WrongState = "plugin: %s not possible in %s state"

// ContentDescriptor describes content that has been accepted by the core.
type ContentDescriptor struct {
	Path string
	Size int64

	// nil if the core loaded the content itself
	Data []byte

	// sha1 of Data. empty if Data is nil
	Hash string
}

func (cd ContentDescriptor) String() string {
	if cd.Hash == "" {
		return fmt.Sprintf("%s (%d bytes)", cd.Path, cd.Size)
	}
	return fmt.Sprintf("%s (%d bytes) %s", cd.Path, cd.Size, cd.Hash)
}

// LoadContent hands the content specified by the Loader to the core. If the
// core does not need the full path of the content then the content is read
// into memory first.
//
// On success the Handle moves to the ContentLoaded state. On failure a
// ContentError is returned and the Handle state is unchanged.
func LoadContent(h *Handle, cl contentloader.Loader) (ContentDescriptor, error) {
	if h == nil || h.state != Initialized {
		var s State
		if h != nil {
			s = h.state
		}
		return ContentDescriptor{}, curated.Errorf(WrongState, "content load", s)
	}

	info := h.core.SystemInfo()
	cl.BlockExtract = info.BlockExtract

	size, err := cl.Size()
	if err != nil {
		return ContentDescriptor{}, contentError(cl, err)
	}
	if size == 0 {
		return ContentDescriptor{}, &ContentError{Reason: ZeroLength, Path: cl.Filename}
	}
	if size > contentloader.MaxSize {
		return ContentDescriptor{}, &ContentError{Reason: AllocationFailed, Path: cl.Filename,
			Err: curated.Errorf(contentloader.TooLarge, size)}
	}

	game := libretro.GameInfo{
		Path: cl.Path(),
		Size: int(size),
	}

	if info.NeedFullpath {
		if !cl.IsLocal() {
			return ContentDescriptor{}, &ContentError{Reason: FileUnreadable, Path: cl.Filename,
				Err: curated.Errorf("core requires a local file")}
		}
		if cl.InArchive() {
			return ContentDescriptor{}, &ContentError{Reason: FileUnreadable, Path: cl.Filename,
				Err: curated.Errorf("core cannot read from an archive")}
		}
	} else {
		if err := cl.Load(); err != nil {
			return ContentDescriptor{}, contentError(cl, err)
		}

		// the file may have changed since it was sized. the size given to
		// the core is always the length of the data
		size = int64(len(cl.Data))
		if size == 0 {
			return ContentDescriptor{}, &ContentError{Reason: ZeroLength, Path: cl.Filename}
		}
		game.Size = len(cl.Data)
		game.Data = cl.Data
	}

	if !h.core.LoadGame(game) {
		return ContentDescriptor{}, &ContentError{Reason: RejectedByPlugin, Path: cl.Filename}
	}

	h.av = h.core.SystemAVInfo()
	h.content = ContentDescriptor{
		Path: game.Path,
		Size: size,
		Data: game.Data,
		Hash: cl.Hash,
	}
	h.state = ContentLoaded

	logger.Logf(logger.Allow, "plugin", "content: %s", h.content)
	logger.Logf(logger.Allow, "plugin", "av: %s", h.av)

	return h.content, nil
}

// contentError converts a contentloader error into a ContentError.
func contentError(cl contentloader.Loader, err error) *ContentError {
	reason := FileUnreadable
	if curated.Is(err, contentloader.TooLarge) || curated.Is(err, contentloader.ShortRead) {
		reason = AllocationFailed
	}
	return &ContentError{Reason: reason, Path: cl.Filename, Err: err}
}
