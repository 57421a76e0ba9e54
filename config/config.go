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

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/jetsetilly/retroriv/curated"
	"github.com/jetsetilly/retroriv/video"
)

// Sentinal error patterns
const (
	FileError    = "config: %s: %v"
	UnknownKeys  = "config: %s: unknown keys: %s"
	InvalidValue = "config: %v"
)

// Config is the complete configuration of the bridge.
type Config struct {
	// path to the core binary
	Core string `toml:"core" validate:"required"`

	// content to load into the core. can be a http or https URL
	Content string `toml:"content" validate:"required"`

	// the framebuffer descriptor of the host
	Width       int    `toml:"width" validate:"min=1,max=4096"`
	Height      int    `toml:"height" validate:"min=1,max=4096"`
	FPS         int    `toml:"fps" validate:"min=1,max=240"`
	PixelFormat string `toml:"pixel_format" validate:"eq=PAL256"`

	// directories reported to the core
	SystemDirectory string `toml:"system_directory" validate:"required"`
	SaveDirectory   string `toml:"save_directory" validate:"required"`

	// display options
	Scale  float64 `toml:"scale" validate:"gt=0,lte=16"`
	FPSCap bool    `toml:"fps_cap"`

	// echo log to stderr
	Log bool `toml:"log"`

	// allow debug level log entries
	Debug bool `toml:"debug"`
}

// Defaults returns the default configuration. The Core and Content fields are
// empty and must be set before the configuration will validate.
func Defaults() Config {
	return Config{
		Width:           160,
		Height:          144,
		FPS:             60,
		PixelFormat:     string(video.PAL256),
		SystemDirectory: ".",
		SaveDirectory:   ".",
		Scale:           3.0,
		FPSCap:          true,
	}
}

// Load the named TOML file over the top of the default configuration. Keys
// missing from the file keep their default values. Unknown keys are an error.
//
// If optional is true then a file that does not exist is not an error and the
// default configuration is returned.
func Load(filename string, optional bool) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(filename)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, curated.Errorf(FileError, filename, err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Defaults(), curated.Errorf(FileError, filename, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Defaults(), curated.Errorf(UnknownKeys, filename, strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Write the configuration as TOML.
func (cfg Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// validate is a package-level singleton. Creating a new validator on each call
// is expensive.
var validate = validator.New()

// Validate the configuration. All invalid fields are listed in the returned
// error.
func (cfg Config) Validate() error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return curated.Errorf(InvalidValue, err)
	}

	s := make([]string, len(verrs))
	for i, fe := range verrs {
		if fe.Param() == "" {
			s[i] = fmt.Sprintf("%s is %s", fe.Field(), fe.Tag())
		} else {
			s[i] = fmt.Sprintf("%s (%v) fails %s=%s", fe.Field(), fe.Value(), fe.Tag(), fe.Param())
		}
	}

	return curated.Errorf(InvalidValue, strings.Join(s, "; "))
}

// Descriptor returns the framebuffer descriptor described by the
// configuration.
func (cfg Config) Descriptor() video.Descriptor {
	return video.Descriptor{
		Width:       cfg.Width,
		Height:      cfg.Height,
		TargetFPS:   cfg.FPS,
		PixelFormat: video.PixelFormat(cfg.PixelFormat),
	}
}
