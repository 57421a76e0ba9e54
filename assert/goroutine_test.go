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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/retroriv/assert"
	"github.com/jetsetilly/retroriv/test"
)

func TestGoroutine(t *testing.T) {
	g := assert.CurrentGoroutine()
	test.ExpectInequality(t, g, assert.Goroutine(0))
	test.ExpectEquality(t, g.IsCurrent(), true)
	test.ExpectEquality(t, assert.Goroutine(0).IsCurrent(), false)

	done := make(chan bool)
	go func() {
		done <- g.IsCurrent()
	}()
	test.ExpectEquality(t, <-done, false)
}
