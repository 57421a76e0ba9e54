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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The pattern is what differentiates curated errors from
// one another. For example:
//
//	e := curated.Errorf("plugin: %v", err)
//
//	if curated.Is(e, "plugin: %v") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. The practical advantage of this is that it
// alleviates the problem of when and how to wrap errors. For example, if
// both the bridge and the plugin loader wrap an error with "plugin: %v" the
// message will be:
//
//	plugin: missing symbols: retro_run
//
// and not:
//
//	plugin: plugin: missing symbols: retro_run
//
// For the purposes of this package we think of chains as being composed of
// parts separted by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Curated errors also implement Unwrap(), returning the first error value
// passed to Errorf(). This means that errors.As() from the standard library
// will find the typed errors of the plugin and bridge packages through any
// number of curated layers.
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented.
package curated
