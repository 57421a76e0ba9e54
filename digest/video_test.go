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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/retroriv/digest"
	"github.com/jetsetilly/retroriv/host"
	"github.com/jetsetilly/retroriv/test"
	"github.com/jetsetilly/retroriv/video"
)

// digest.Video must satisfy the host.Display interface
var _ host.Display = (*digest.Video)(nil)

func framebuffer(t *testing.T) *video.Framebuffer {
	t.Helper()
	fb, err := video.NewFramebuffer(video.Descriptor{Width: 2, Height: 2, TargetFPS: 60, PixelFormat: video.PAL256})
	test.DemandSuccess(t, err)
	return fb
}

func frame(fb *video.Framebuffer, t *testing.T, xrgb ...byte) {
	t.Helper()
	test.DemandSuccess(t, fb.Transcode(xrgb, len(xrgb)/4, 1, len(xrgb)))
}

func TestDigest(t *testing.T) {
	fb := framebuffer(t)
	dig := digest.NewVideo()

	zero := dig.Hash()
	test.ExpectEquality(t, zero, "0000000000000000000000000000000000000000")

	// no frame has been written yet
	test.ExpectSuccess(t, dig.Present(fb))
	test.ExpectEquality(t, dig.Hash(), zero)
	test.ExpectEquality(t, dig.Dupes, 1)

	frame(fb, t, 0xff, 0x00, 0x00, 0x00)
	test.ExpectSuccess(t, dig.Present(fb))
	first := dig.Hash()
	test.ExpectInequality(t, first, zero)
	test.ExpectEquality(t, dig.Frames, 1)

	// the same frame again produces a different digest because digests are
	// chained
	frame(fb, t, 0xff, 0x00, 0x00, 0x00)
	test.ExpectSuccess(t, dig.Present(fb))
	test.ExpectInequality(t, dig.Hash(), first)
	test.ExpectEquality(t, dig.Frames, 2)

	// a second digest of the same sequence of frames matches
	fb = framebuffer(t)
	other := digest.NewVideo()
	frame(fb, t, 0xff, 0x00, 0x00, 0x00)
	test.ExpectSuccess(t, other.Present(fb))
	test.ExpectEquality(t, other.Hash(), first)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Hash(), zero)
	test.ExpectEquality(t, dig.Frames, 0)
	test.ExpectEquality(t, dig.Service(), true)
}

func TestDimensions(t *testing.T) {
	a := digest.NewVideo()
	fb := framebuffer(t)
	frame(fb, t, 0, 0, 0, 0, 0, 0, 0, 0)
	test.ExpectSuccess(t, a.Present(fb))

	b := digest.NewVideo()
	fb = framebuffer(t)
	test.DemandSuccess(t, fb.Transcode(make([]byte, 8), 1, 2, 4))
	test.ExpectSuccess(t, b.Present(fb))

	// same pixel data (two black pixels) but different shape
	test.ExpectInequality(t, a.Hash(), b.Hash())
}
