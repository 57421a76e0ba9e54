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
	"encoding/binary"

	"github.com/jetsetilly/retroriv/curated"
)

// BytesPerPixel of the truecolor source format
const BytesPerPixel = 4

// Sentinal error patterns returned by Transcode()
const (
	InvalidDimensions = "video: invalid frame dimensions (%dx%d)"
	InvalidPitch      = "video: pitch (%d) is shorter than a row of pixels (%d)"
	ShortSource       = "video: source frame is too short (%d bytes, wanted %d)"
	ShortDestination  = "video: destination is too short (%d bytes, wanted %d)"
)

// PackRGB332 reduces an XRGB8888 pixel to a single packed RGB332 byte.
func PackRGB332(xrgb uint32) uint8 {
	red := uint8(xrgb >> 16)
	green := uint8(xrgb >> 8)
	blue := uint8(xrgb)
	return (red>>5)<<5 | (green>>5)<<2 | blue>>6
}

// Transcode converts one XRGB8888 frame into RGB332. The first byte of row y
// of the source is at y * pitch. The pitch may be larger than a row of pixels
// and padding bytes are never read.
//
// The source must be at least (height-1)*pitch + width*BytesPerPixel bytes
// long and the destination at least width*height bytes long. Nothing is
// written if either is too short.
func Transcode(dst []byte, src []byte, width int, height int, pitch int) error {
	if err := checkSource(src, width, height, pitch); err != nil {
		return err
	}
	if len(dst) < width*height {
		return curated.Errorf(ShortDestination, len(dst), width*height)
	}
	transcode(dst, src, width, height, pitch)
	return nil
}

// checkSource makes sure that a frame of the specified dimensions can be read
// from src without going out of bounds
func checkSource(src []byte, width int, height int, pitch int) error {
	if width < 0 || height < 0 {
		return curated.Errorf(InvalidDimensions, width, height)
	}
	if width == 0 || height == 0 {
		return nil
	}

	row := width * BytesPerPixel
	if pitch < row {
		return curated.Errorf(InvalidPitch, pitch, row)
	}

	need := (height-1)*pitch + row
	if len(src) < need {
		return curated.Errorf(ShortSource, len(src), need)
	}

	return nil
}

// transcode without checking bounds. checkSource() must have been called
func transcode(dst []byte, src []byte, width int, height int, pitch int) {
	row := width * BytesPerPixel
	for y := 0; y < height; y++ {
		in := src[y*pitch : y*pitch+row]
		out := dst[y*width : (y+1)*width]
		for x := range out {
			out[x] = PackRGB332(binary.NativeEndian.Uint32(in[x*BytesPerPixel:]))
		}
	}
}
