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

// Package config holds the configuration of the bridge. Values come from
// three places, in order of increasing precedence: the defaults returned by
// Defaults(), an optional TOML file, and the command line.
//
// An example configuration file:
//
//	core = "/usr/lib/libretro/gambatte_libretro.so"
//	content = "roms/tetris.gb"
//	width = 160
//	height = 144
//	fps = 60
//	system_directory = "."
//	save_directory = "saves"
//	scale = 3.0
//
// The configuration must be validated with Validate() before it is used.
package config
