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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Arguments are given to the Modes type with NewArgs() and then parsed with
// Parse(). For example (note that no error handling of the Parse() function is
// shown here):
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "headless", "info")
//	_, _ = md.Parse()
//
// For simplicity, all sub-mode comparisons are case insensitive and the
// first sub-mode is the default.
//
// Parse() will process flags in the normal way but unlike flag.Parse() will
// check to see if the first argument after the flags is one of the sub-modes.
// If it is, then the RemainingArgs() function will return all the arguments
// after the flags AND the mode selector.
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 0, "number of frames to run")
//		p, err := md.Parse()
//		switch p {
//		case ParseError:
//			fmt.Println(err)
//			return
//		case ParseHelp:
//			return
//		}
//		doRun(md.GetArg(0), *frames)
//	}
//
// Modes can be chained as deeply as required by calling NewMode() and Parse()
// again after a mode has been selected.
//
// The Visited() function reports whether a flag was set on the command line.
// This is useful when flag values are used to override values taken from
// elsewhere, for example a configuration file.
package modalflag
