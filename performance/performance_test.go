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

package performance_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/retroriv/performance"
	"github.com/jetsetilly/retroriv/test"
)

type ticker struct {
	frames int
	err    error
}

func (t *ticker) Tick() error {
	t.frames++
	return t.err
}

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(60, 300, 10)
	test.ExpectEquality(t, fps, 30.0)
	test.ExpectEquality(t, accuracy, 50.0)

	fps, accuracy = performance.CalcFPS(60, 300, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu,mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("ALL")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfile("cpu,disk")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	tck := &ticker{}
	w := &strings.Builder{}
	err := performance.Check(w, performance.ProfileNone, "test", tck, 60, 20*time.Millisecond)
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, tck.frames, 0)
	test.ExpectEquality(t, strings.Contains(w.String(), " fps ("), true)
}

func TestCheckError(t *testing.T) {
	tck := &ticker{err: errors.New("core error")}
	w := &strings.Builder{}
	err := performance.Check(w, performance.ProfileNone, "test", tck, 60, time.Second)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, tck.frames, 1)
	test.ExpectEquality(t, w.Len(), 0)
}
