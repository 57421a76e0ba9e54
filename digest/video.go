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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/retroriv/video"
)

// Video is an implementation of the host.Display interface. It generates a
// SHA-1 value of the framebuffer every frame. It does not display the image
// anywhere.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Video struct {
	digest [sha1.Size]byte

	// the previous digest followed by the frame dimensions and the pixels
	// of the frame
	pixels []byte

	// number of frames included in the digest
	Frames int

	// number of calls to Present() with no new frame
	Dupes int
}

// size of the frame dimensions in the pixels buffer
const dimensionsLen = 4

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements digest.Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.Frames = 0
	dig.Dupes = 0
}

// Present implements host.Display interface. The digest is chained by
// prefixing the frame data with the previous digest value.
func (dig *Video) Present(fb *video.Framebuffer) error {
	if !fb.Consume() {
		dig.Dupes++
		return nil
	}

	l := len(dig.digest) + dimensionsLen + len(fb.Pixels)
	if cap(dig.pixels) < l {
		dig.pixels = make([]byte, l)
	}
	dig.pixels = dig.pixels[:l]

	n := copy(dig.pixels, dig.digest[:])
	if n != len(dig.digest) {
		return fmt.Errorf("digest: video: digest error during new frame")
	}

	// frames of different dimensions with the same pixel data will have
	// different digests
	dig.pixels[n] = byte(fb.Width >> 8)
	dig.pixels[n+1] = byte(fb.Width)
	dig.pixels[n+2] = byte(fb.Height >> 8)
	dig.pixels[n+3] = byte(fb.Height)
	copy(dig.pixels[n+dimensionsLen:], fb.Pixels)

	dig.digest = sha1.Sum(dig.pixels)
	dig.Frames++

	return nil
}

// Service implements host.Display interface. A digest never asks the host to
// stop.
func (dig *Video) Service() bool {
	return true
}
