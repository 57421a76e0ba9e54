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

// Package plugin manages the lifecycle of a libretro core. A core is loaded
// with Load(), given content with LoadContent() and advanced one frame at a
// time with Tick(). Unload() releases the core.
//
// The Handle type records the lifecycle state of the core. Operations called
// in the wrong state return an error, with the exception of Tick() which
// panics. Calling Tick() before content is loaded is a programming error.
//
// The native side of a core is reached through the libretro.Module and
// libretro.Core interfaces. Native cores are opened with dynamic.Open.
package plugin
