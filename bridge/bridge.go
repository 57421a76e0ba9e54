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

// Package bridge joins a host to a libretro core. The Bridge type implements
// the host.Hooks interface: Init() loads the core and the content, Tick() runs
// the core for one frame and presents the framebuffer to the display, and
// Cleanup() releases the core.
//
// The bridge builds the capabilities given to the core. Video frames are
// transcoded directly into the host owned framebuffer for the duration of the
// video refresh callback. Log messages from the core are forwarded to the
// logger package. A message logged at the error level is fatal.
package bridge

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/retroriv/assert"
	"github.com/jetsetilly/retroriv/config"
	"github.com/jetsetilly/retroriv/contentloader"
	"github.com/jetsetilly/retroriv/curated"
	"github.com/jetsetilly/retroriv/environment"
	"github.com/jetsetilly/retroriv/host"
	"github.com/jetsetilly/retroriv/libretro"
	"github.com/jetsetilly/retroriv/logger"
	"github.com/jetsetilly/retroriv/plugin"
	"github.com/jetsetilly/retroriv/video"
)

// RuntimeError is raised when the core reports an error through the log
// interface.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("bridge: core error: %s", e.Message)
}

// Bridge is an implementation of the host.Hooks interface.
type Bridge struct {
	cfg     config.Config
	open    libretro.Opener
	display host.Display

	neg    *environment.Negotiator
	fb     *video.Framebuffer
	handle *plugin.Handle

	// the first fatal error raised by the core
	fatal error

	// the goroutine running the core, noted on the first Tick(). frames from
	// any other goroutine are dropped
	runner assert.Goroutine

	// OnFatal is called when the core logs a message at the error level. The
	// default handler logs the error and exits the program. If OnFatal is nil
	// then the error is returned by the next call to Init() or Tick()
	OnFatal func(err error)

	// number of video frames that could not be transcoded
	Dropped int

	// core messages that are not debug messages are also written here. nil
	// if the central logger is already echoing
	CoreOutput io.Writer
}

// NewBridge is the preferred method of initialisation for the Bridge type. The
// configuration should have been validated.
func NewBridge(cfg config.Config, open libretro.Opener, display host.Display) (*Bridge, error) {
	fb, err := video.NewFramebuffer(cfg.Descriptor())
	if err != nil {
		return nil, curated.Errorf("bridge: %v", err)
	}

	b := &Bridge{
		cfg:     cfg,
		open:    open,
		display: display,
		neg:     environment.NewNegotiator(cfg.SystemDirectory, cfg.SaveDirectory),
		fb:      fb,
	}

	if !cfg.Log {
		b.CoreOutput = os.Stderr
	}

	b.OnFatal = func(err error) {
		logger.Log(logger.Allow, "bridge", err)
		logger.Tail(os.Stderr, 1)
		os.Exit(1)
	}

	return b, nil
}

// Capabilities returns the capabilities given to the core.
func (b *Bridge) Capabilities() libretro.Capabilities {
	return libretro.Capabilities{
		Log:          b.log,
		VideoRefresh: b.videoRefresh,
		Environment:  b.neg.Dispatch,
	}
}

// Framebuffer returns the host owned framebuffer.
func (b *Bridge) Framebuffer() *video.Framebuffer {
	return b.fb
}

// Handle returns the handle of the loaded core. Returns nil if Init() has not
// been called successfully.
func (b *Bridge) Handle() *plugin.Handle {
	return b.handle
}

// Init implements the host.Hooks interface. The core is loaded and the
// content is loaded into the core. If the content cannot be loaded the core is
// unloaded before returning.
func (b *Bridge) Init() error {
	if b.handle != nil {
		return curated.Errorf("bridge: already initialised")
	}

	h, err := plugin.Load(b.open, b.cfg.Core, b.Capabilities())
	if err != nil {
		return curated.Errorf("bridge: %v", err)
	}

	if b.fatal != nil {
		_ = plugin.Unload(h)
		return b.fatal
	}

	_, err = plugin.LoadContent(h, contentloader.NewLoader(b.cfg.Content))
	if err != nil {
		_ = plugin.Unload(h)
		return curated.Errorf("bridge: %v", err)
	}

	if b.fatal != nil {
		_ = plugin.Unload(h)
		return b.fatal
	}

	if f, ok := b.neg.PixelFormat(); !ok {
		logger.Logf(logger.Allow, "bridge", "core has not requested a pixel format. frames will be dropped until %s is requested", environment.SupportedPixelFormat)
	} else {
		logger.Logf(logger.Allow, "bridge", "%s -> %s", f, b.fb.Desc)
	}

	b.handle = h

	return nil
}

// Tick implements the host.Hooks interface. The core is run for one frame and
// the framebuffer is presented to the display. Tick() must always be called
// from the same goroutine, which is noted on the first call.
func (b *Bridge) Tick() error {
	if b.runner == 0 {
		b.runner = assert.CurrentGoroutine()
	}
	plugin.Tick(b.handle)

	if b.fatal != nil {
		return b.fatal
	}

	if b.display != nil {
		if err := b.display.Present(b.fb); err != nil {
			return curated.Errorf("bridge: %v", err)
		}
	}

	return nil
}

// Reset the core.
func (b *Bridge) Reset() error {
	if err := plugin.Reset(b.handle); err != nil {
		return curated.Errorf("bridge: %v", err)
	}
	logger.Log(logger.Allow, "bridge", "reset")
	return nil
}

// Cleanup implements the host.Hooks interface. It is safe to call Cleanup()
// more than once.
func (b *Bridge) Cleanup() {
	if b.handle == nil {
		return
	}
	if err := plugin.Unload(b.handle); err != nil {
		logger.Log(logger.Allow, "bridge", err)
	}
	b.handle = nil
}

// Inspect loads the core, without content, and returns the information it
// reports. The core is unloaded before returning.
func (b *Bridge) Inspect() (libretro.SystemInfo, error) {
	h, err := plugin.Load(b.open, b.cfg.Core, b.Capabilities())
	if err != nil {
		return libretro.SystemInfo{}, curated.Errorf("bridge: %v", err)
	}
	info := h.SystemInfo()
	if err := plugin.Unload(h); err != nil {
		return info, curated.Errorf("bridge: %v", err)
	}
	return info, nil
}

// log implements the libretro.LogFunc type.
func (b *Bridge) log(level libretro.LogLevel, msg string) {
	msg = strings.TrimRight(msg, "\n")

	switch level {
	case libretro.LogDebug:
		logger.Log(logger.Debug, "core", msg)
	case libretro.LogInfo, libretro.LogWarn:
		logger.Logf(logger.Allow, "core", "[%s] %s", level, msg)
		b.echo(level, msg)
	default:
		logger.Logf(logger.Allow, "core", "[%s] %s", level, msg)
		b.echo(level, msg)
		b.raise(&RuntimeError{Message: msg})
	}
}

func (b *Bridge) echo(level libretro.LogLevel, msg string) {
	if b.CoreOutput != nil {
		fmt.Fprintf(b.CoreOutput, "core: [%s] %s\n", level, msg)
	}
}

func (b *Bridge) raise(err error) {
	if b.fatal == nil {
		b.fatal = err
	}
	if b.OnFatal != nil {
		b.OnFatal(err)
	}
}

// videoRefresh implements the libretro.VideoRefreshFunc type. The frame is
// transcoded into the framebuffer. The frame data is not retained.
func (b *Bridge) videoRefresh(frame libretro.VideoFrame) {
	// duplicate frame. the framebuffer already holds the previous frame
	if frame.Data == nil {
		return
	}

	if !b.runner.IsCurrent() {
		b.Dropped++
		logger.Logf(logger.Allow, "bridge", "dropped frame: video refresh outside of run")
		return
	}

	if f, ok := b.neg.PixelFormat(); !ok || f != environment.SupportedPixelFormat {
		b.Dropped++
		logger.Logf(logger.Debug, "bridge", "dropped frame: no pixel format")
		return
	}

	if err := b.fb.Transcode(frame.Data, frame.Width, frame.Height, frame.Pitch); err != nil {
		b.Dropped++
		logger.Logf(logger.Allow, "bridge", "dropped frame: %v", err)
	}
}
