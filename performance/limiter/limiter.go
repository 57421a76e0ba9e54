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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//	defer fps.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
package limiter

import (
	"sync"
	"time"

	"github.com/jetsetilly/retroriv/curated"
)

// this is a really rough attempt at frame rate limiting. probably only any
// good if base performance of the machine is well above the required rate.

// FpsLimiter will trigger every frames per second.
type FpsLimiter struct {
	crit            sync.Mutex
	framesPerSecond float64
	secondsPerFrame time.Duration

	tick chan bool
	done chan bool
	stop sync.Once
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond float64) (*FpsLimiter, error) {
	lim := &FpsLimiter{
		tick: make(chan bool),
		done: make(chan bool),
	}

	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}

	// run ticker concurrently
	go func() {
		t := time.Now()
		adjustedSecondPerFrame := lim.perFrame()
		for {
			select {
			case lim.tick <- true:
			case <-lim.done:
				return
			}

			time.Sleep(adjustedSecondPerFrame)
			nt := time.Now()
			spf := lim.perFrame()
			adjustedSecondPerFrame -= nt.Sub(t) - spf

			// do not let the adjustment run away after a long stall
			if adjustedSecondPerFrame < 0 || adjustedSecondPerFrame > spf*2 {
				adjustedSecondPerFrame = spf
			}
			t = nt
		}
	}()

	return lim, nil
}

func (lim *FpsLimiter) perFrame() time.Duration {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.secondsPerFrame
}

// SetLimit changes the limit at which the FpsLimiter waits.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) error {
	if framesPerSecond <= 0 {
		return curated.Errorf("limiter: frame rate must be positive (%v)", framesPerSecond)
	}

	lim.crit.Lock()
	defer lim.crit.Unlock()
	lim.framesPerSecond = framesPerSecond
	lim.secondsPerFrame = time.Duration(float64(time.Second) / framesPerSecond)

	return nil
}

// Wait will block until trigger. Wait returns immediately once the limiter
// has been stopped.
func (lim *FpsLimiter) Wait() {
	select {
	case <-lim.tick:
	case <-lim.done:
	}
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the limiter. It is safe to call Stop() more than once.
func (lim *FpsLimiter) Stop() {
	lim.stop.Do(func() {
		close(lim.done)
	})
}
