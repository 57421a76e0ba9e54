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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/retroriv/curated"
	"github.com/jetsetilly/retroriv/test"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))

	// Has() should fail because we haven't included testErrorB anywhere in the error
	test.ExpectFailure(t, curated.Has(e, testErrorB))

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testErrorB, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Is(f, testErrorB))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testErrorB))

	// IsAny should return true for these errors also
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.IsAny(f))

	// plain errors are not curated
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))
}

type typedError struct {
	reason string
}

func (e *typedError) Error() string {
	return e.reason
}

func TestUnwrap(t *testing.T) {
	base := &typedError{reason: "missing symbol"}
	e := curated.Errorf("plugin: %v", curated.Errorf("loader: %v", base))
	test.ExpectEquality(t, e.Error(), "plugin: loader: missing symbol")

	var te *typedError
	test.ExpectSuccess(t, errors.As(e, &te))
	test.ExpectEquality(t, te.reason, "missing symbol")

	// no error value in the chain
	test.ExpectSuccess(t, errors.Unwrap(curated.Errorf("no values")) == nil)
}
