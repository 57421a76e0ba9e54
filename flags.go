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
	"errors"
	"fmt"
	"os"

	"github.com/jetsetilly/retroriv/config"
	"github.com/jetsetilly/retroriv/logger"
	"github.com/jetsetilly/retroriv/modalflag"
	"github.com/jetsetilly/retroriv/paths"
)

// returned by parseConfig() when help has been printed
var errHelp = errors.New("help requested")

// the default configuration file. it is not an error for it to be missing
var defaultConfigFile = paths.ResourcePath("retroriv.toml")

// configFlags are the command line flags that override the values in the
// configuration file
type configFlags struct {
	config  *string
	core    *string
	width   *int
	height  *int
	fps     *int
	sysdir  *string
	savedir *string
	scale   *float64
	fpscap  *bool
	log     *bool
	debug   *bool
}

func addConfigFlags(md *modalflag.Modes) *configFlags {
	def := config.Defaults()
	return &configFlags{
		config:  md.AddString("config", defaultConfigFile, "configuration file"),
		core:    md.AddString("core", def.Core, "path to libretro core"),
		width:   md.AddInt("width", def.Width, "framebuffer width"),
		height:  md.AddInt("height", def.Height, "framebuffer height"),
		fps:     md.AddInt("fps", def.FPS, "target frames per second"),
		sysdir:  md.AddString("sysdir", def.SystemDirectory, "system directory reported to the core"),
		savedir: md.AddString("savedir", def.SaveDirectory, "save directory reported to the core"),
		scale:   md.AddFloat64("scale", def.Scale, "window scaling"),
		fpscap:  md.AddBool("fpscap", def.FPSCap, "cap frame rate to target fps"),
		log:     md.AddBool("log", def.Log, "echo log to stderr"),
		debug:   md.AddBool("debug", def.Debug, "include debug messages in log"),
	}
}

// parseConfig parses the command line and builds the configuration. The
// configuration file is loaded first and then overridden by any flags that
// were set on the command line. Remaining arguments are assigned to the named
// positional fields, with the last argument always assigned to the last
// field.
//
// The configuration is not validated.
func parseConfig(md *modalflag.Modes, flgs *configFlags, positional ...string) (config.Config, error) {
	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return config.Config{}, errHelp
	case modalflag.ParseError:
		return config.Config{}, err
	}

	// a missing file is only an error if it was explicitly asked for
	cfg, err := config.Load(*flgs.config, !md.Visited("config"))
	if err != nil {
		return cfg, err
	}

	if md.Visited("core") {
		cfg.Core = *flgs.core
	}
	if md.Visited("width") {
		cfg.Width = *flgs.width
	}
	if md.Visited("height") {
		cfg.Height = *flgs.height
	}
	if md.Visited("fps") {
		cfg.FPS = *flgs.fps
	}
	if md.Visited("sysdir") {
		cfg.SystemDirectory = *flgs.sysdir
	}
	if md.Visited("savedir") {
		cfg.SaveDirectory = *flgs.savedir
	}
	if md.Visited("scale") {
		cfg.Scale = *flgs.scale
	}
	if md.Visited("fpscap") {
		cfg.FPSCap = *flgs.fpscap
	}
	if md.Visited("log") {
		cfg.Log = *flgs.log
	}
	if md.Visited("debug") {
		cfg.Debug = *flgs.debug
	}

	args := md.RemainingArgs()
	if len(args) > len(positional) {
		return cfg, fmt.Errorf("too many arguments")
	}

	offset := len(positional) - len(args)
	for i, a := range args {
		switch positional[offset+i] {
		case "core":
			cfg.Core = a
		case "content":
			cfg.Content = a
		}
	}

	if cfg.Log {
		logger.SetEcho(os.Stderr)
	}
	logger.SetDebug(cfg.Debug)

	return cfg, nil
}
