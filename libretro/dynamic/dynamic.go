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

// Package dynamic binds the libretro ABI to a core compiled as a shared
// library. The library is opened with dlopen() and entry points are found with
// dlsym(). Calls into the core, and the callbacks the core makes into the
// frontend, pass through small C trampolines in bridge.c.
//
// Callbacks from the core carry no context pointer so the package keeps track
// of the one module that has been bound with Bind(). Only one core can be
// bound at any one time.
//
// Memory handed to the core (content data, content path and directory
// strings) is allocated with C.malloc() and is owned by the module. It remains
// valid until Close() is called, which should be after the core has been
// deinitialised.
package dynamic

// #cgo linux LDFLAGS: -ldl
// #include <dlfcn.h>
// #include <stdlib.h>
// #include "bridge.h"
import "C"

import (
	"fmt"
	"unsafe"

	"github.com/jetsetilly/retroriv/curated"
	"github.com/jetsetilly/retroriv/libretro"
)

// the module that has been bound to a core. callbacks from the core are
// directed to this module.
var active *module

type module struct {
	path   string
	handle unsafe.Pointer

	// entry points found with Lookup()
	symbols map[string]unsafe.Pointer

	// capabilities given to the core with Register()
	caps libretro.Capabilities

	// pixel format as accepted by the environment capability. used to size
	// the video frames sent by the core
	format libretro.PixelFormat

	// memory given to the core
	strings     map[string]*C.char
	content     unsafe.Pointer
	contentPath *C.char
}

// Open is an implementation of libretro.Opener. The path should be the
// filename of a shared library.
func Open(path string) (libretro.Module, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	handle := C.dlopen(cpath, C.RTLD_LAZY)
	if handle == nil {
		return nil, curated.Errorf("dynamic: %v", dlerror())
	}

	return &module{
		path:    path,
		handle:  handle,
		symbols: make(map[string]unsafe.Pointer),
		strings: make(map[string]*C.char),
		format:  libretro.PixelFormat0RGB1555,
	}, nil
}

func dlerror() string {
	err := C.dlerror()
	if err == nil {
		return "unknown error"
	}
	return C.GoString(err)
}

// Lookup implements the libretro.Module interface.
func (m *module) Lookup(symbol string) bool {
	if m.handle == nil {
		return false
	}

	if _, ok := m.symbols[symbol]; ok {
		return true
	}

	csym := C.CString(symbol)
	defer C.free(unsafe.Pointer(csym))

	// clear any outstanding error before the call to dlsym()
	C.dlerror()

	p := C.dlsym(m.handle, csym)
	if p == nil {
		return false
	}
	m.symbols[symbol] = p

	return true
}

// Bind implements the libretro.Module interface.
func (m *module) Bind() (libretro.Core, error) {
	if m.handle == nil {
		return nil, curated.Errorf("dynamic: %s: module is closed", m.path)
	}

	for _, s := range libretro.Symbols {
		if _, ok := m.symbols[s]; !ok {
			return nil, curated.Errorf("dynamic: %s: symbol not resolved (%s)", m.path, s)
		}
	}

	if active != nil && active != m {
		return nil, curated.Errorf("dynamic: %s: a core is already bound (%s)", m.path, active.path)
	}
	active = m

	return &core{mod: m}, nil
}

// Close implements the libretro.Module interface.
func (m *module) Close() error {
	if m.handle == nil {
		return nil
	}

	if active == m {
		active = nil
	}

	for s, cs := range m.strings {
		C.free(unsafe.Pointer(cs))
		delete(m.strings, s)
	}
	m.releaseContent()

	handle := m.handle
	m.handle = nil
	m.symbols = make(map[string]unsafe.Pointer)

	if C.dlclose(handle) != 0 {
		return curated.Errorf("dynamic: %s: %v", m.path, dlerror())
	}

	return nil
}

// cstring returns a C copy of the string. the copy is owned by the module and
// remains valid until Close()
func (m *module) cstring(s string) *C.char {
	if cs, ok := m.strings[s]; ok {
		return cs
	}
	cs := C.CString(s)
	m.strings[s] = cs
	return cs
}

func (m *module) releaseContent() {
	if m.content != nil {
		C.free(m.content)
		m.content = nil
	}
	if m.contentPath != nil {
		C.free(unsafe.Pointer(m.contentPath))
		m.contentPath = nil
	}
}

// bytesPerPixel for the current pixel format
func (m *module) bytesPerPixel() int {
	if m.format == libretro.PixelFormatXRGB8888 {
		return 4
	}
	return 2
}

func (m *module) String() string {
	return fmt.Sprintf("%s (%d symbols)", m.path, len(m.symbols))
}
