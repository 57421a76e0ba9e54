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

// Package contentloader reads the content (the game or program) that is to be
// loaded into a core.
//
// Content is identified by a filename. Filenames with a http or https scheme
// are fetched over the network, everything else is read from the local
// filesystem.
//
// The simplest use of the Loader type:
//
//	cl := contentloader.NewLoader("roms/red.gb")
//	err := cl.Load()
//
// Not every core wants the content to be read. Some cores prefer to open the
// file themselves, in which case only the Size() function need be called.
package contentloader
