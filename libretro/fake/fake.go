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

// Package fake implements the libretro.Module and libretro.Core interfaces
// without a native core. It records the calls made against it and can
// simulate a core calling back into the frontend from Init() and Run().
package fake

import (
	"errors"
	"strings"

	"github.com/jetsetilly/retroriv/libretro"
)

// Core is a scriptable implementation of libretro.Core.
type Core struct {
	Info    libretro.SystemInfo
	AV      libretro.SystemAVInfo
	Version uint

	// LoadGame() returns this value
	AcceptGame bool

	// the game given to LoadGame(). the data is copied
	Game libretro.GameInfo

	// capabilities given to Register()
	Caps libretro.Capabilities

	// called by Init() and Run() respectively
	OnInit func(caps libretro.Capabilities)
	OnRun  func(caps libretro.Capabilities)

	// names of methods called, in order
	Calls []string

	state []byte
}

// NewCore returns a core that accepts every game.
func NewCore() *Core {
	return &Core{
		Info: libretro.SystemInfo{
			LibraryName:     "fake",
			LibraryVersion:  "v1",
			ValidExtensions: "bin",
		},
		AV: libretro.SystemAVInfo{
			Geometry: libretro.Geometry{BaseWidth: 160, BaseHeight: 144, MaxWidth: 160, MaxHeight: 144, AspectRatio: 10.0 / 9.0},
			Timing:   libretro.Timing{FPS: 59.73, SampleRate: 44100},
		},
		Version:    libretro.APIVersion,
		AcceptGame: true,
	}
}

// Called returns the list of calls as a comma separated string.
func (c *Core) Called() string {
	return strings.Join(c.Calls, ",")
}

// Count returns the number of times the named method was called.
func (c *Core) Count(name string) int {
	var n int
	for _, s := range c.Calls {
		if s == name {
			n++
		}
	}
	return n
}

func (c *Core) call(name string) {
	c.Calls = append(c.Calls, name)
}

// Register implements the libretro.Core interface.
func (c *Core) Register(caps libretro.Capabilities) {
	c.call("register")
	c.Caps = caps
}

// Init implements the libretro.Core interface.
func (c *Core) Init() {
	c.call("init")
	if c.OnInit != nil {
		c.OnInit(c.Caps)
	}
}

// Deinit implements the libretro.Core interface.
func (c *Core) Deinit() {
	c.call("deinit")
}

// APIVersion implements the libretro.Core interface.
func (c *Core) APIVersion() uint {
	c.call("api_version")
	return c.Version
}

// SystemInfo implements the libretro.Core interface.
func (c *Core) SystemInfo() libretro.SystemInfo {
	c.call("system_info")
	return c.Info
}

// SystemAVInfo implements the libretro.Core interface.
func (c *Core) SystemAVInfo() libretro.SystemAVInfo {
	c.call("system_av_info")
	return c.AV
}

// SetControllerPortDevice implements the libretro.Core interface.
func (c *Core) SetControllerPortDevice(port uint, device uint) {
	c.call("set_controller_port_device")
}

// Reset implements the libretro.Core interface.
func (c *Core) Reset() {
	c.call("reset")
}

// Run implements the libretro.Core interface.
func (c *Core) Run() {
	c.call("run")
	if c.OnRun != nil {
		c.OnRun(c.Caps)
	}
}

// SerializeSize implements the libretro.Core interface.
func (c *Core) SerializeSize() int {
	c.call("serialize_size")
	return len(c.Game.Data)
}

// Serialize implements the libretro.Core interface.
func (c *Core) Serialize(data []byte) bool {
	c.call("serialize")
	return copy(data, c.Game.Data) == len(c.Game.Data)
}

// Unserialize implements the libretro.Core interface.
func (c *Core) Unserialize(data []byte) bool {
	c.call("unserialize")
	c.state = append(c.state[:0], data...)
	return true
}

// LoadGame implements the libretro.Core interface.
func (c *Core) LoadGame(game libretro.GameInfo) bool {
	c.call("load_game")
	c.Game = game
	c.Game.Data = append([]byte(nil), game.Data...)
	return c.AcceptGame
}

// UnloadGame implements the libretro.Core interface.
func (c *Core) UnloadGame() {
	c.call("unload_game")
}

// Module is an implementation of libretro.Module that binds to a Core.
type Module struct {
	Core *Core

	// symbols that Lookup() will not find
	Missing []string

	// number of times Close() has been called
	Closed int

	// errors returned by Bind() and Close()
	BindErr  error
	CloseErr error
}

// NewModule returns a module with every symbol present.
func NewModule(core *Core) *Module {
	return &Module{Core: core}
}

// Lookup implements the libretro.Module interface.
func (m *Module) Lookup(symbol string) bool {
	for _, s := range m.Missing {
		if s == symbol {
			return false
		}
	}
	return true
}

// Bind implements the libretro.Module interface.
func (m *Module) Bind() (libretro.Core, error) {
	if len(m.Missing) > 0 {
		return nil, errors.New("fake: module is incomplete")
	}
	if m.BindErr != nil {
		return nil, m.BindErr
	}
	return m.Core, nil
}

// Close implements the libretro.Module interface.
func (m *Module) Close() error {
	m.Closed++
	return m.CloseErr
}

// Opener returns a libretro.Opener that always opens the module. The path
// argument is ignored.
func (m *Module) Opener() libretro.Opener {
	return func(_ string) (libretro.Module, error) {
		return m, nil
	}
}

// FailingOpener returns a libretro.Opener that always fails with err.
func FailingOpener(err error) libretro.Opener {
	return func(_ string) (libretro.Module, error) {
		return nil, err
	}
}

// Payload is an implementation of libretro.Payload that records the answers
// given to a command.
type Payload struct {
	// the format returned by PixelFormat()
	Format libretro.PixelFormat

	Bool         bool
	String       string
	LogInterface bool
}

// SetBool implements the libretro.Payload interface.
func (p *Payload) SetBool(v bool) {
	p.Bool = v
}

// PixelFormat implements the libretro.Payload interface.
func (p *Payload) PixelFormat() libretro.PixelFormat {
	return p.Format
}

// SetString implements the libretro.Payload interface.
func (p *Payload) SetString(s string) {
	p.String = s
}

// SetLogInterface implements the libretro.Payload interface.
func (p *Payload) SetLogInterface() {
	p.LogInterface = true
}
