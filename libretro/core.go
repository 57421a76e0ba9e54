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

package libretro

// Core is the bound function table of a loaded core. All methods must be
// called from the same thread.
type Core interface {
	// Register hands the frontend's capabilities to the core by calling each
	// of the retro_set_* entry points. Input and audio callbacks are
	// registered as no-ops.
	Register(caps Capabilities)

	Init()
	Deinit()
	APIVersion() uint
	SystemInfo() SystemInfo
	SystemAVInfo() SystemAVInfo
	SetControllerPortDevice(port uint, device uint)
	Reset()
	Run()
	SerializeSize() int
	Serialize(data []byte) bool
	Unserialize(data []byte) bool
	LoadGame(game GameInfo) bool
	UnloadGame()
}

// Module is an opened core binary.
type Module interface {
	// Lookup reports whether the named entry point is exported by the module.
	Lookup(symbol string) bool

	// Bind returns the Core for the module. It is an error to call Bind()
	// unless every name in Symbols has been found with Lookup().
	Bind() (Core, error)

	// Close releases the module and any memory that was handed to the core.
	Close() error
}

// Opener opens the core binary at path.
type Opener func(path string) (Module, error)
