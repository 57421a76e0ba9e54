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

// Package assert contains checks that the program is running as expected.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// Goroutine identifies a goroutine. The zero value is not a valid goroutine.
type Goroutine uint64

// CurrentGoroutine returns the identity of the calling goroutine.
//
// The identity is parsed from the stack trace header and so the function is
// not fast. It should not be called more than a few times per frame.
func CurrentGoroutine() Goroutine {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return Goroutine(n)
}

// IsCurrent returns true if the calling goroutine is g.
func (g Goroutine) IsCurrent() bool {
	return g != 0 && g == CurrentGoroutine()
}
