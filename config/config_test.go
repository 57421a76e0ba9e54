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

package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/retroriv/config"
	"github.com/jetsetilly/retroriv/curated"
	"github.com/jetsetilly/retroriv/test"
	"github.com/jetsetilly/retroriv/video"
)

func writeConfig(t *testing.T, s string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "retroriv.toml")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(s), 0o600))
	return fn
}

func TestDefaults(t *testing.T) {
	cfg := config.Defaults()
	test.ExpectEquality(t, cfg.Descriptor(), video.Descriptor{Width: 160, Height: 144, TargetFPS: 60, PixelFormat: video.PAL256})
	test.ExpectEquality(t, cfg.SystemDirectory, ".")
	test.ExpectEquality(t, cfg.SaveDirectory, ".")

	// core and content are required
	err := cfg.Validate()
	test.ExpectEquality(t, curated.Is(err, config.InvalidValue), true)
	test.ExpectEquality(t, strings.Contains(err.Error(), "Core is required"), true)
	test.ExpectEquality(t, strings.Contains(err.Error(), "Content is required"), true)

	cfg.Core = "core.so"
	cfg.Content = "game.bin"
	test.ExpectSuccess(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	fn := writeConfig(t, `
core = "gambatte_libretro.so"
content = "tetris.gb"
width = 256
save_directory = "saves"
fps_cap = false
`)

	cfg, err := config.Load(fn, false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Core, "gambatte_libretro.so")
	test.ExpectEquality(t, cfg.Width, 256)
	test.ExpectEquality(t, cfg.FPSCap, false)
	test.ExpectEquality(t, cfg.SaveDirectory, "saves")

	// keys not in the file keep their default value
	test.ExpectEquality(t, cfg.Height, 144)
	test.ExpectEquality(t, cfg.SystemDirectory, ".")
	test.ExpectSuccess(t, cfg.Validate())
}

func TestLoadMissing(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "missing.toml")

	cfg, err := config.Load(fn, true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cfg, config.Defaults())

	_, err = config.Load(fn, false)
	test.ExpectEquality(t, curated.Is(err, config.FileError), true)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(writeConfig(t, `width = "wide"`), false)
	test.ExpectEquality(t, curated.Is(err, config.FileError), true)

	_, err = config.Load(writeConfig(t, "colour = true\nwidth = 100\n"), false)
	test.ExpectEquality(t, curated.Is(err, config.UnknownKeys), true)
	test.ExpectEquality(t, strings.HasSuffix(err.Error(), "unknown keys: colour"), true)
}

func TestValidate(t *testing.T) {
	cfg := config.Defaults()
	cfg.Core = "core.so"
	cfg.Content = "game.bin"

	cfg.Width = 0
	cfg.FPS = 1000
	cfg.PixelFormat = "RGB565"
	err := cfg.Validate()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, strings.Contains(err.Error(), "Width (0) fails min=1"), true)
	test.ExpectEquality(t, strings.Contains(err.Error(), "FPS (1000) fails max=240"), true)
	test.ExpectEquality(t, strings.Contains(err.Error(), "PixelFormat (RGB565) fails eq=PAL256"), true)
}

func TestWrite(t *testing.T) {
	cfg := config.Defaults()
	cfg.Core = "core.so"

	w := &strings.Builder{}
	test.DemandSuccess(t, cfg.Write(w))

	fn := writeConfig(t, w.String())
	rcfg, err := config.Load(fn, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, rcfg, cfg)
}
