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

// Package libretro models the plugin ABI that a core exports and the services
// a frontend offers the core in return. The package has no dependency on cgo.
// The native binding of the ABI is in the dynamic sub-package.
//
// A core is opened as a Module. The Module is asked whether each of the
// Symbols is present and, when all of them are, it is bound into a Core. The
// Core is given the frontend's Capabilities exactly once, with Register(),
// before Init() is called.
//
// Environment commands issued by the core are delivered to the Environment
// capability with a Payload. The Payload is the typed view of the raw pointer
// that accompanies the command.
package libretro
