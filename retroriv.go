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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/jetsetilly/retroriv/bridge"
	"github.com/jetsetilly/retroriv/contentloader"
	"github.com/jetsetilly/retroriv/digest"
	"github.com/jetsetilly/retroriv/gui/sdlplay"
	"github.com/jetsetilly/retroriv/host"
	"github.com/jetsetilly/retroriv/libretro/dynamic"
	"github.com/jetsetilly/retroriv/logger"
	"github.com/jetsetilly/retroriv/modalflag"
	"github.com/jetsetilly/retroriv/paths"
	"github.com/jetsetilly/retroriv/performance"
	"github.com/jetsetilly/retroriv/performance/limiter"
	"github.com/jetsetilly/retroriv/statsview"
	"github.com/jetsetilly/retroriv/version"
)

// the core and SDL must be called from the main thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "HEADLESS", "PERFORMANCE", "INFO", "CONFIG")
	md.AdditionalHelp(fmt.Sprintf("%s: libretro core host with 8-bit indexed video", version.Banner()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "HEADLESS":
		err = headless(md)
	case "PERFORMANCE":
		err = perform(md)
	case "INFO":
		err = info(md)
	case "CONFIG":
		err = showConfig(md)
	}

	if err != nil {
		if err == errHelp {
			os.Exit(0)
		}
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// interruptible wraps a host.Display so that the host stops when an interrupt
// signal is received.
type interruptible struct {
	host.Display
	intChan chan os.Signal
}

func newInterruptible(display host.Display) *interruptible {
	d := &interruptible{
		Display: display,
		intChan: make(chan os.Signal, 1),
	}
	signal.Notify(d.intChan, os.Interrupt)
	return d
}

// Service implements the host.Display interface.
func (d *interruptible) Service() bool {
	select {
	case <-d.intChan:
		fmt.Print("\r")
		logger.Log(logger.Allow, "retroriv", "interrupted")
		return false
	default:
	}
	return d.Display.Service()
}

// launchStats starts the statsview server if requested. The returned function
// stops the server.
func launchStats(requested bool) (func(), error) {
	if !requested {
		return func() {}, nil
	}
	if !statsview.Available() {
		return nil, fmt.Errorf("statsview not available in this build")
	}
	return statsview.Launch(os.Stdout), nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addConfigFlags(md)
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	cfg, err := parseConfig(md, flgs, "core", "content")
	if err != nil {
		return err
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	stop, err := launchStats(*stats)
	if err != nil {
		return err
	}
	defer stop()

	title := fmt.Sprintf("%s - %s", version.ApplicationName, contentloader.NewLoader(cfg.Content).ShortName())
	scr, err := sdlplay.NewSdlPlay(title, cfg.Descriptor(), float32(cfg.Scale))
	if err != nil {
		return err
	}
	defer scr.Destroy()

	b, err := bridge.NewBridge(cfg, dynamic.Open, scr)
	if err != nil {
		return err
	}

	scr.OnReset = func() {
		if err := b.Reset(); err != nil {
			logger.Log(logger.Allow, "retroriv", err)
		}
	}

	var lim host.Limiter
	if cfg.FPSCap {
		fps, err := limiter.NewFPSLimiter(float64(cfg.FPS))
		if err != nil {
			return err
		}
		defer fps.Stop()
		lim = fps
	}

	return host.Run(b, newInterruptible(scr), lim, 0)
}

func headless(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addConfigFlags(md)
	frames := md.AddInt("frames", 60, "number of frames to run")

	cfg, err := parseConfig(md, flgs, "core", "content")
	if err != nil {
		return err
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	if *frames <= 0 {
		return fmt.Errorf("number of frames must be positive")
	}

	dig := digest.NewVideo()

	b, err := bridge.NewBridge(cfg, dynamic.Open, dig)
	if err != nil {
		return err
	}

	err = host.Run(b, newInterruptible(dig), nil, *frames)
	if err != nil {
		return err
	}

	fmt.Printf("%d frames (%d duplicates, %d dropped)\n", dig.Frames, dig.Dupes, b.Dropped)
	fmt.Println(dig.Hash())

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addConfigFlags(md)
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "profile types: cpu, mem, trace, all (comma separated)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	cfg, err := parseConfig(md, flgs, "core", "content")
	if err != nil {
		return err
	}

	err = cfg.Validate()
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	stop, err := launchStats(*stats)
	if err != nil {
		return err
	}
	defer stop()

	dig := digest.NewVideo()

	b, err := bridge.NewBridge(cfg, dynamic.Open, dig)
	if err != nil {
		return err
	}

	err = b.Init()
	if err != nil {
		return err
	}
	defer b.Cleanup()

	filenameHeader := paths.UniqueFilename("performance", contentloader.NewLoader(cfg.Content).ShortName())

	return performance.Check(md.Output, prf, filenameHeader, b, float64(cfg.FPS), *duration)
}

func info(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addConfigFlags(md)

	cfg, err := parseConfig(md, flgs, "core")
	if err != nil {
		return err
	}

	if cfg.Core == "" {
		return fmt.Errorf("core is required")
	}

	b, err := bridge.NewBridge(cfg, dynamic.Open, nil)
	if err != nil {
		return err
	}

	inf, err := b.Inspect()
	if err != nil {
		return err
	}

	fmt.Printf("library:       %s\n", inf.LibraryName)
	fmt.Printf("version:       %s\n", inf.LibraryVersion)
	fmt.Printf("extensions:    %s\n", inf.ValidExtensions)
	fmt.Printf("need fullpath: %v\n", inf.NeedFullpath)
	fmt.Printf("block extract: %v\n", inf.BlockExtract)

	return nil
}

func showConfig(md *modalflag.Modes) error {
	md.NewMode()
	flgs := addConfigFlags(md)

	cfg, err := parseConfig(md, flgs, "core", "content")
	if err != nil {
		return err
	}

	return cfg.Write(md.Output)
}
