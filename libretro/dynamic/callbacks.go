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

package dynamic

// #include <stdbool.h>
// #include <stddef.h>
// #include "bridge.h"
import "C"

import (
	"unsafe"

	"github.com/jetsetilly/retroriv/libretro"
)

// payload is the implementation of libretro.Payload for a raw pointer
// supplied by the core
type payload struct {
	data unsafe.Pointer
	mod  *module
}

// SetBool implements the libretro.Payload interface.
func (p payload) SetBool(v bool) {
	*(*C.bool)(p.data) = C.bool(v)
}

// PixelFormat implements the libretro.Payload interface.
func (p payload) PixelFormat() libretro.PixelFormat {
	return libretro.PixelFormat(*(*C.int)(p.data))
}

// SetString implements the libretro.Payload interface.
func (p payload) SetString(s string) {
	*(**C.char)(p.data) = p.mod.cstring(s)
}

// SetLogInterface implements the libretro.Payload interface.
func (p payload) SetLogInterface() {
	C.bridge_set_log_interface(p.data)
}

//export goEnvironment
func goEnvironment(cmd C.uint, data unsafe.Pointer) C.bool {
	if active == nil || active.caps.Environment == nil || data == nil {
		return false
	}

	command := libretro.EnvironmentCommand(cmd)
	p := payload{data: data, mod: active}

	ok := active.caps.Environment(command, p)

	// note the accepted pixel format. the size of the video frames depends on it
	if ok && command == libretro.EnvSetPixelFormat {
		active.format = p.PixelFormat()
	}

	return C.bool(ok)
}

//export goVideoRefresh
func goVideoRefresh(data unsafe.Pointer, width C.uint, height C.uint, pitch C.size_t) {
	if active == nil || active.caps.VideoRefresh == nil {
		return
	}

	frame := libretro.VideoFrame{
		Width:  int(width),
		Height: int(height),
		Pitch:  int(pitch),
	}

	// a nil data pointer is a duplicate frame. the frame is sent anyway so
	// that the receiver can make a decision about what to do
	if data != nil && frame.Width > 0 && frame.Height > 0 {
		n := (frame.Height-1)*frame.Pitch + frame.Width*active.bytesPerPixel()
		frame.Data = unsafe.Slice((*byte)(data), n)
	}

	active.caps.VideoRefresh(frame)
}

//export goLog
func goLog(level C.int, msg *C.char) {
	if active == nil || active.caps.Log == nil {
		return
	}
	active.caps.Log(libretro.LogLevel(level), C.GoString(msg))
}
