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

package host_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/retroriv/host"
	"github.com/jetsetilly/retroriv/test"
	"github.com/jetsetilly/retroriv/video"
)

type hooks struct {
	calls   []string
	initErr error
	tickErr error
	ticks   int
}

func (h *hooks) Init() error {
	h.calls = append(h.calls, "init")
	return h.initErr
}

func (h *hooks) Tick() error {
	h.ticks++
	return h.tickErr
}

func (h *hooks) Cleanup() {
	h.calls = append(h.calls, "cleanup")
}

type display struct {
	services int
	stopAt   int
}

func (d *display) Present(_ *video.Framebuffer) error {
	return nil
}

func (d *display) Service() bool {
	d.services++
	return d.stopAt == 0 || d.services < d.stopAt
}

type limiter struct {
	waits int
}

func (l *limiter) Wait() {
	l.waits++
}

func TestFrames(t *testing.T) {
	h := &hooks{}
	lim := &limiter{}
	test.ExpectSuccess(t, host.Run(h, &display{}, lim, 10))
	test.ExpectEquality(t, h.ticks, 10)
	test.ExpectEquality(t, lim.waits, 10)
	test.DemandEquality(t, len(h.calls), 2)
	test.ExpectEquality(t, h.calls[0], "init")
	test.ExpectEquality(t, h.calls[1], "cleanup")
}

func TestStopByDisplay(t *testing.T) {
	h := &hooks{}
	test.ExpectSuccess(t, host.Run(h, &display{stopAt: 4}, nil, 0))
	test.ExpectEquality(t, h.ticks, 3)
	test.ExpectEquality(t, len(h.calls), 2)
}

func TestInitError(t *testing.T) {
	h := &hooks{initErr: errors.New("no core")}
	test.ExpectFailure(t, host.Run(h, &display{}, nil, 10))
	test.ExpectEquality(t, h.ticks, 0)

	// cleanup is not called if init fails
	test.ExpectEquality(t, len(h.calls), 1)
}

func TestTickError(t *testing.T) {
	h := &hooks{tickErr: errors.New("core error")}
	test.ExpectFailure(t, host.Run(h, &display{}, nil, 10))
	test.ExpectEquality(t, h.ticks, 1)
	test.ExpectEquality(t, len(h.calls), 2)
}
