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

package video

import (
	"fmt"

	"github.com/jetsetilly/retroriv/curated"
)

// PixelFormat of the host framebuffer
type PixelFormat string

// PAL256 is the only pixel format supported by the host. Each pixel is one
// byte, packed as RGB332.
const PAL256 PixelFormat = "PAL256"

// Descriptor describes the framebuffer the host expects. It is fixed for
// the lifetime of the host and is not reconciled with the geometry reported
// by the core.
type Descriptor struct {
	Width       int
	Height      int
	TargetFPS   int
	PixelFormat PixelFormat
}

func (desc Descriptor) String() string {
	return fmt.Sprintf("%dx%d %dfps %s", desc.Width, desc.Height, desc.TargetFPS, desc.PixelFormat)
}

// Framebuffer is owned by the host and receives transcoded frames. The Width
// and Height fields are the dimensions of the most recent frame, which might
// not be the same as the dimensions in the Descriptor.
type Framebuffer struct {
	Desc Descriptor

	// indexed pixels of the most recent frame. length is always Width*Height
	Pixels []byte
	Width  int
	Height int

	// Fresh is true if a frame was written since the last call to Consume()
	Fresh bool

	// number of frames written to the framebuffer
	Frames int
}

// NewFramebuffer is the preferred method of initialisation for the
// Framebuffer type.
func NewFramebuffer(desc Descriptor) (*Framebuffer, error) {
	if desc.PixelFormat != PAL256 {
		return nil, curated.Errorf("video: unsupported host pixel format (%s)", desc.PixelFormat)
	}
	if desc.Width <= 0 || desc.Height <= 0 {
		return nil, curated.Errorf(InvalidDimensions, desc.Width, desc.Height)
	}

	fb := &Framebuffer{Desc: desc}
	fb.resize(desc.Width, desc.Height)

	return fb, nil
}

// resize the pixels array, reusing the existing memory where possible
func (fb *Framebuffer) resize(width int, height int) {
	n := width * height
	if cap(fb.Pixels) < n {
		fb.Pixels = make([]byte, n)
	}
	fb.Pixels = fb.Pixels[:n]
	fb.Width = width
	fb.Height = height
}

// Transcode an XRGB8888 frame into the framebuffer. See the Transcode()
// function for details about the arguments. The framebuffer is unchanged if
// the frame can not be transcoded.
func (fb *Framebuffer) Transcode(src []byte, width int, height int, pitch int) error {
	if err := checkSource(src, width, height, pitch); err != nil {
		return err
	}

	// empty frames are ignored
	if width == 0 || height == 0 {
		return nil
	}

	fb.resize(width, height)
	transcode(fb.Pixels, src, width, height, pitch)

	fb.Fresh = true
	fb.Frames++

	return nil
}

// Consume returns whether a new frame has been written since the last call
// to Consume()
func (fb *Framebuffer) Consume() bool {
	fresh := fb.Fresh
	fb.Fresh = false
	return fresh
}
