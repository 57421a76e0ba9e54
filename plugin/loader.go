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
	"errors"

	"github.com/jetsetilly/retroriv/curated"
	"github.com/jetsetilly/retroriv/libretro"
	"github.com/jetsetilly/retroriv/logger"
)

// Load opens the core at path and checks that every required entry point is
// present. All missing entry points are reported together in a LoadError and
// in that case the module is closed without any lifecycle function being
// called.
//
// Once the core is bound the capabilities are registered with the core and
// the core is initialised. The returned Handle is in the Initialized state.
func Load(open libretro.Opener, path string, caps libretro.Capabilities) (*Handle, error) {
	mod, err := open(path)
	if err != nil {
		lerr := &LoadError{Reason: OpenFailed, Path: path, Err: err}
		logger.Log(logger.Allow, "plugin", lerr)
		return nil, lerr
	}

	var missing []string
	for _, sym := range libretro.Symbols {
		if !mod.Lookup(sym) {
			missing = append(missing, sym)
		}
	}

	if len(missing) > 0 {
		lerr := &LoadError{Reason: SymbolMissing, Path: path, Symbols: missing}
		if err := mod.Close(); err != nil {
			lerr.Err = err
		}
		logger.Log(logger.Allow, "plugin", lerr)
		return nil, lerr
	}

	core, err := mod.Bind()
	if err != nil {
		if cerr := mod.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
		lerr := &LoadError{Reason: OpenFailed, Path: path, Err: err}
		logger.Log(logger.Allow, "plugin", lerr)
		return nil, lerr
	}

	h := &Handle{
		path:  path,
		mod:   mod,
		core:  core,
		state: Loaded,
	}

	core.Register(caps)
	h.info = core.SystemInfo()

	core.Init()
	h.state = Initialized

	logger.Logf(logger.Allow, "plugin", "api version %d", core.APIVersion())
	logger.Logf(logger.Allow, "plugin", "%s", h.info)

	return h, nil
}

// Unload releases the core. Content is unloaded and the core deinitialised
// as required by the state of the Handle. Calling Unload() on an unloaded
// Handle does nothing.
func Unload(h *Handle) error {
	if h == nil || h.state == Unloaded {
		return nil
	}

	if h.state >= ContentLoaded {
		h.core.UnloadGame()
	}
	if h.state >= Initialized {
		h.core.Deinit()
	}

	err := h.mod.Close()

	h.state = Unloaded
	h.core = nil
	h.mod = nil
	h.content = ContentDescriptor{}

	if err != nil {
		return curated.Errorf("plugin: unload: %v", err)
	}

	logger.Logf(logger.Allow, "plugin", "unloaded %s", h.path)

	return nil
}
