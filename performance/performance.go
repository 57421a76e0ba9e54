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

package performance

import (
	"fmt"
	"io"
	"time"
)

// Ticker is the minimum interface required by Check().
type Ticker interface {
	Tick() error
}

// Check the performance of a core by ticking it as quickly as possible for
// the specified duration. The measured frame rate is written to output.
//
// A cpu, memory profile, a trace (or a combination of those) is created as
// defined by the Profile argument. Profile files are named with filenameHeader
// as a prefix.
func Check(output io.Writer, profile Profile, filenameHeader string, t Ticker, targetFPS float64, duration time.Duration) error {
	var numFrames int
	var elapsed time.Duration

	runner := func() error {
		// signals when duration has expired
		timesUp := make(chan bool, 1)
		time.AfterFunc(duration, func() {
			timesUp <- true
		})

		start := time.Now()
		defer func() {
			elapsed = time.Since(start)
		}()

		for {
			select {
			case <-timesUp:
				return nil
			default:
			}

			if err := t.Tick(); err != nil {
				return err
			}
			numFrames++
		}
	}

	if err := RunProfiler(profile, filenameHeader, runner); err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	fps, accuracy := CalcFPS(targetFPS, numFrames, elapsed.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, elapsed.Seconds(), accuracy)

	return nil
}
