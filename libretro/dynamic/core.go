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

// #include <stdlib.h>
// #include "bridge.h"
import "C"

import (
	"unsafe"

	"github.com/jetsetilly/retroriv/libretro"
)

// core is the native implementation of the libretro.Core interface
type core struct {
	mod *module
}

func (c *core) sym(name string) unsafe.Pointer {
	return c.mod.symbols[name]
}

// Register implements the libretro.Core interface.
func (c *core) Register(caps libretro.Capabilities) {
	// the core is allowed to issue environment commands from inside
	// retro_set_environment() so the capabilities must be in place before
	// any of the setters are called
	c.mod.caps = caps

	C.bridge_register(
		c.sym(libretro.SymSetEnvironment),
		c.sym(libretro.SymSetVideoRefresh),
		c.sym(libretro.SymSetInputPoll),
		c.sym(libretro.SymSetInputState),
		c.sym(libretro.SymSetAudioSample),
		c.sym(libretro.SymSetAudioSampleBatch),
	)
}

// Init implements the libretro.Core interface.
func (c *core) Init() {
	C.bridge_call_void(c.sym(libretro.SymInit))
}

// Deinit implements the libretro.Core interface.
func (c *core) Deinit() {
	C.bridge_call_void(c.sym(libretro.SymDeinit))
}

// APIVersion implements the libretro.Core interface.
func (c *core) APIVersion() uint {
	return uint(C.bridge_call_api_version(c.sym(libretro.SymAPIVersion)))
}

// SystemInfo implements the libretro.Core interface.
func (c *core) SystemInfo() libretro.SystemInfo {
	var info C.struct_retro_system_info
	C.bridge_call_system_info(c.sym(libretro.SymGetSystemInfo), &info)

	return libretro.SystemInfo{
		LibraryName:     goString(info.library_name),
		LibraryVersion:  goString(info.library_version),
		ValidExtensions: goString(info.valid_extensions),
		NeedFullpath:    bool(info.need_fullpath),
		BlockExtract:    bool(info.block_extract),
	}
}

// SystemAVInfo implements the libretro.Core interface.
func (c *core) SystemAVInfo() libretro.SystemAVInfo {
	var av C.struct_retro_system_av_info
	C.bridge_call_system_av_info(c.sym(libretro.SymGetSystemAVInfo), &av)

	return libretro.SystemAVInfo{
		Geometry: libretro.Geometry{
			BaseWidth:   int(av.geometry.base_width),
			BaseHeight:  int(av.geometry.base_height),
			MaxWidth:    int(av.geometry.max_width),
			MaxHeight:   int(av.geometry.max_height),
			AspectRatio: float32(av.geometry.aspect_ratio),
		},
		Timing: libretro.Timing{
			FPS:        float64(av.timing.fps),
			SampleRate: float64(av.timing.sample_rate),
		},
	}
}

// SetControllerPortDevice implements the libretro.Core interface.
func (c *core) SetControllerPortDevice(port uint, device uint) {
	C.bridge_call_set_controller_port_device(c.sym(libretro.SymSetControllerPortDevice), C.uint(port), C.uint(device))
}

// Reset implements the libretro.Core interface.
func (c *core) Reset() {
	C.bridge_call_void(c.sym(libretro.SymReset))
}

// Run implements the libretro.Core interface.
func (c *core) Run() {
	C.bridge_call_void(c.sym(libretro.SymRun))
}

// SerializeSize implements the libretro.Core interface.
func (c *core) SerializeSize() int {
	return int(C.bridge_call_serialize_size(c.sym(libretro.SymSerializeSize)))
}

// Serialize implements the libretro.Core interface.
func (c *core) Serialize(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return bool(C.bridge_call_serialize(c.sym(libretro.SymSerialize), unsafe.Pointer(&data[0]), C.size_t(len(data))))
}

// Unserialize implements the libretro.Core interface.
func (c *core) Unserialize(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	return bool(C.bridge_call_unserialize(c.sym(libretro.SymUnserialize), unsafe.Pointer(&data[0]), C.size_t(len(data))))
}

// LoadGame implements the libretro.Core interface.
//
// The content data is copied to C memory owned by the module. The core may
// keep referring to it until the module is closed.
func (c *core) LoadGame(game libretro.GameInfo) bool {
	c.mod.releaseContent()

	var info C.struct_retro_game_info

	c.mod.contentPath = C.CString(game.Path)
	info.path = c.mod.contentPath
	info.size = C.size_t(game.Size)

	if len(game.Data) > 0 {
		c.mod.content = C.CBytes(game.Data)
		info.data = c.mod.content
		info.size = C.size_t(len(game.Data))
	}

	return bool(C.bridge_call_load_game(c.sym(libretro.SymLoadGame), &info))
}

// UnloadGame implements the libretro.Core interface.
func (c *core) UnloadGame() {
	C.bridge_call_void(c.sym(libretro.SymUnloadGame))
}

func goString(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}
