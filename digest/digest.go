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

// Package digest is used to create fingerprints of video output. A digest
// display can be used in place of a window so that a core can be run without
// a GUI, and the fingerprint compared against a known value.
package digest

// Digest implementations compute a hash of the data presented to them.
type Digest interface {
	Hash() string
	ResetDigest()
}
