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

package sdlplay

import (
	"github.com/jetsetilly/retroriv/logger"
	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly. these take
	// time to service and for no good reason
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements the host.Display interface. Returns false if the window
// has been closed or the escape key has been pressed. F5 resets the core and
// F11 toggles fullscreen.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() bool {
	// loop until there are no more events to retrieve. the host limits the
	// rate at which Service() is called so we don't want to leave events in
	// the queue until the next frame
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			logger.Log(logger.Allow, "sdlplay", "window closed")
			return false

		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN || ev.Repeat != 0 {
				continue // for loop
			}

			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				logger.Log(logger.Allow, "sdlplay", "quit requested")
				return false
			case sdl.K_F5:
				if scr.OnReset != nil {
					scr.OnReset()
				}
			case sdl.K_F11:
				scr.toggleFullscreen()
			}
		}
	}

	return true
}
