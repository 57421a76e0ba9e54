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
	"fmt"

	"github.com/jetsetilly/retroriv/curated"
)

// Tick runs the core for one frame. Any callbacks made by the core, including
// video refresh, happen before Tick() returns and on the same goroutine.
//
// Tick panics if content has not been loaded.
func Tick(h *Handle) {
	if h == nil {
		panic("plugin: tick on nil handle")
	}
	if h.state != ContentLoaded && h.state != Running {
		panic(fmt.Sprintf("plugin: tick in %s state", h.state))
	}
	h.core.Run()
	h.state = Running
}

// Reset the core. The core must have content loaded.
func Reset(h *Handle) error {
	if h == nil || (h.state != ContentLoaded && h.state != Running) {
		var s State
		if h != nil {
			s = h.state
		}
		return curated.Errorf(WrongState, "reset", s)
	}
	h.core.Reset()
	return nil
}
