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
	"github.com/jetsetilly/retroriv/libretro"
)

// State is the lifecycle state of a Handle.
type State int

// List of valid State values.
const (
	Unloaded State = iota
	Loaded
	Initialized
	ContentLoaded
	Running
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Loaded:
		return "loaded"
	case Initialized:
		return "initialized"
	case ContentLoaded:
		return "content loaded"
	case Running:
		return "running"
	}
	return "unknown state"
}

// Handle is a loaded core. A Handle is only ever returned once every entry
// point of the core has been found.
type Handle struct {
	path  string
	mod   libretro.Module
	core  libretro.Core
	state State

	info    libretro.SystemInfo
	av      libretro.SystemAVInfo
	content ContentDescriptor
}

// State returns the current lifecycle state.
func (h *Handle) State() State {
	return h.state
}

// Path of the core binary.
func (h *Handle) Path() string {
	return h.path
}

// SystemInfo returns the information reported by the core when it was
// loaded.
func (h *Handle) SystemInfo() libretro.SystemInfo {
	return h.info
}

// SystemAVInfo returns the audio/video information reported by the core
// after content was loaded. The zero value is returned if no content has been
// loaded.
func (h *Handle) SystemAVInfo() libretro.SystemAVInfo {
	return h.av
}

// Content returns the descriptor of the loaded content.
func (h *Handle) Content() ContentDescriptor {
	return h.content
}
