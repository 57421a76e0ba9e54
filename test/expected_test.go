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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/retroriv/test"
)

func TestExpect(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)

	var err error
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("failure"))

	test.ExpectEquality(t, 10, 10)
	test.ExpectEquality(t, "foo", "foo")
	test.ExpectInequality(t, uint8(0xe0), 0x1c)
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, tw.Compare(""))

	tw.Write([]byte("foo"))
	tw.Write([]byte("bar"))
	test.ExpectSuccess(t, tw.Compare("foobar"))
	test.ExpectEquality(t, tw.String(), "foobar")

	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}
