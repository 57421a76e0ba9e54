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

// Package host is the runtime that drives a bridge. The host owns the tick
// loop: it initialises the bridge, ticks it at the rate set by the limiter and
// cleans up when the loop ends.
//
// Everything happens on the goroutine that called Run(), which is locked to
// its OS thread for the duration. Native cores and SDL both require that all
// calls are made from the same thread.
package host

import (
	"runtime"

	"github.com/jetsetilly/retroriv/logger"
	"github.com/jetsetilly/retroriv/video"
)

// Display receives the framebuffer at the end of every tick.
type Display interface {
	// Present is called with the host owned framebuffer. The framebuffer
	// must not be retained once Present() returns.
	Present(fb *video.Framebuffer) error

	// Service is called once per tick before the bridge is ticked. It should
	// return false if the host should stop (the window was closed for
	// example).
	Service() bool
}

// Hooks are the entry points of a bridge.
type Hooks interface {
	Init() error
	Tick() error
	Cleanup()
}

// Limiter stalls the tick loop.
type Limiter interface {
	Wait()
}

// Run the bridge for the specified number of frames. A frames value of zero or
// less means that Run() continues until the display asks to stop or until an
// error occurs. The limiter can be nil, in which case the loop runs as fast as
// possible.
func Run(hooks Hooks, display Display, limiter Limiter, frames int) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := hooks.Init(); err != nil {
		return err
	}
	defer hooks.Cleanup()

	var n int
	for frames <= 0 || n < frames {
		if !display.Service() {
			logger.Logf(logger.Allow, "host", "stopped by display after %d frames", n)
			break // for loop
		}

		if limiter != nil {
			limiter.Wait()
		}

		if err := hooks.Tick(); err != nil {
			return err
		}
		n++
	}

	return nil
}
