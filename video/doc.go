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

// Package video converts frames produced by a core into the 8-bit indexed
// format consumed by the host.
//
// Frames from the core are XRGB8888: 32 bits per pixel in native byte order,
// with 8 bits each for (unused) X, red, green and blue. The indexed format is
// packed RGB 3-3-2: three bits of red in the top of the byte, three bits of
// green in the middle and two bits of blue at the bottom.
//
// Ownership of transcoded pixels is simple. The destination is always memory
// owned by the host, the Framebuffer type, and the transcoder writes into it
// directly. No intermediate buffer is allocated and no pointer to the source
// frame is retained once Transcode() has returned. The host must consume the
// contents of the Framebuffer before the next tick overwrites it.
package video
