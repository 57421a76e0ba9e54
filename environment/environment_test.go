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

package environment_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/retroriv/environment"
	"github.com/jetsetilly/retroriv/libretro"
	"github.com/jetsetilly/retroriv/logger"
	"github.com/jetsetilly/retroriv/test"
)

// payload records the answers written by the negotiator
type payload struct {
	format libretro.PixelFormat

	boolean      bool
	booleanSet   bool
	str          string
	strSet       bool
	logInterface bool
}

func (p *payload) SetBool(v bool) {
	p.boolean = v
	p.booleanSet = true
}

func (p *payload) PixelFormat() libretro.PixelFormat {
	return p.format
}

func (p *payload) SetString(s string) {
	p.str = s
	p.strSet = true
}

func (p *payload) SetLogInterface() {
	p.logInterface = true
}

func (p *payload) untouched() bool {
	return !p.booleanSet && !p.strSet && !p.logInterface
}

func TestCanDupe(t *testing.T) {
	neg := environment.NewNegotiator(".", ".")
	p := &payload{}
	test.ExpectSuccess(t, neg.Dispatch(libretro.EnvGetCanDupe, p))
	test.ExpectSuccess(t, p.booleanSet)
	test.ExpectSuccess(t, p.boolean)
}

func TestLogInterface(t *testing.T) {
	neg := environment.NewNegotiator(".", ".")
	p := &payload{}
	test.ExpectSuccess(t, neg.Dispatch(libretro.EnvGetLogInterface, p))
	test.ExpectSuccess(t, p.logInterface)
}

func TestDirectories(t *testing.T) {
	neg := environment.NewNegotiator("/usr/share/system", "/home/user/saves")

	p := &payload{}
	test.ExpectSuccess(t, neg.Dispatch(libretro.EnvGetSystemDirectory, p))
	test.ExpectEquality(t, p.str, "/usr/share/system")

	p = &payload{}
	test.ExpectSuccess(t, neg.Dispatch(libretro.EnvGetSaveDirectory, p))
	test.ExpectEquality(t, p.str, "/home/user/saves")
}

func TestPixelFormat(t *testing.T) {
	neg := environment.NewNegotiator(".", ".")

	_, ok := neg.PixelFormat()
	test.ExpectFailure(t, ok)

	// unsupported formats are rejected and nothing is committed
	for _, f := range []libretro.PixelFormat{libretro.PixelFormat0RGB1555, libretro.PixelFormatRGB565, 99} {
		test.ExpectFailure(t, neg.Dispatch(libretro.EnvSetPixelFormat, &payload{format: f}), f)
		_, ok = neg.PixelFormat()
		test.ExpectFailure(t, ok, f)
	}

	test.ExpectSuccess(t, neg.Dispatch(libretro.EnvSetPixelFormat, &payload{format: libretro.PixelFormatXRGB8888}))
	f, ok := neg.PixelFormat()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, libretro.PixelFormatXRGB8888)

	// a later request for an unsupported format does not change what has
	// already been agreed
	test.ExpectFailure(t, neg.Dispatch(libretro.EnvSetPixelFormat, &payload{format: libretro.PixelFormatRGB565}))
	f, ok = neg.PixelFormat()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, f, libretro.PixelFormatXRGB8888)
}

func TestUnhandled(t *testing.T) {
	logger.Clear()
	logger.SetDebug(true)
	defer logger.SetDebug(false)

	neg := environment.NewNegotiator(".", ".")

	// GET_VARIABLE and the experimental GET_INPUT_BITMASKS
	for _, cmd := range []libretro.EnvironmentCommand{15, 51 | libretro.EnvExperimental} {
		p := &payload{}
		test.ExpectFailure(t, neg.Dispatch(cmd, p), cmd)
		test.ExpectSuccess(t, p.untouched(), cmd)
	}

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "environment: unhandled command #15\nenvironment: unhandled command #51 (experimental)\n")
}
