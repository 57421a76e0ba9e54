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

// RGBA is the truecolor equivalent of an indexed pixel.
type RGBA [4]uint8

// Palette maps every RGB332 index to its RGBA value. The three and two bit
// channels are scaled to the full eight bit range.
var Palette [256]RGBA

func init() {
	for i := range Palette {
		r := uint8(i>>5) & 0x07
		g := uint8(i>>2) & 0x07
		b := uint8(i) & 0x03
		Palette[i] = RGBA{
			uint8(uint(r) * 255 / 7),
			uint8(uint(g) * 255 / 7),
			uint8(uint(b) * 255 / 3),
			255,
		}
	}
}

// ExpandRGBA writes the RGBA equivalent of each indexed pixel in src to dst.
// The dst slice must be at least four times the length of src. Returns the
// number of pixels expanded.
func ExpandRGBA(dst []byte, src []byte) int {
	n := len(dst) / 4
	if n > len(src) {
		n = len(src)
	}
	for i, p := range src[:n] {
		copy(dst[i*4:], Palette[p][:])
	}
	return n
}
