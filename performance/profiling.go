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
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"strings"

	"github.com/jetsetilly/retroriv/curated"
)

// Profile specifies which profiling (if any) is to be performed.
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0
	ProfileCPU  Profile = 1 << iota
	ProfileMem
	ProfileTrace
	ProfileAll = ProfileCPU | ProfileMem | ProfileTrace
)

// ParseProfile converts a comma separated list of profile names into a
// Profile value. Valid names are "none", "cpu", "mem", "trace" and "all".
func ParseProfile(s string) (Profile, error) {
	var p Profile
	for _, n := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "trace":
			p |= ProfileTrace
		case "all":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf("performance: unknown profile type (%s)", n)
		}
	}
	return p, nil
}

// RunProfiler runs the supplied function with the profiling specified. Profile
// files are named with the filenameHeader as a prefix.
func RunProfiler(profile Profile, filenameHeader string, run func() error) (rerr error) {
	if profile&ProfileCPU == ProfileCPU {
		f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf("performance: %v", err)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	if profile&ProfileTrace == ProfileTrace {
		f, err := os.Create(fmt.Sprintf("%s_trace.profile", filenameHeader))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rerr = curated.Errorf("performance: %v", err)
			}
		}()

		if err := trace.Start(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer trace.Stop()
	}

	if err := run(); err != nil {
		return err
	}

	if profile&ProfileMem == ProfileMem {
		f, err := os.Create(fmt.Sprintf("%s_mem.profile", filenameHeader))
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
		defer f.Close()

		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	return nil
}
