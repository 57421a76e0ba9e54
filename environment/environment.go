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

// Package environment answers the environment commands issued by a core. The
// commands are how a core negotiates its capabilities with the frontend.
//
// Only a small number of commands are handled. Every other command is answered
// with false, which a core should interpret as "use default behaviour". An
// unhandled command is not an error and is only noted in the log when debug
// logging is enabled.
package environment

import (
	"github.com/jetsetilly/retroriv/libretro"
	"github.com/jetsetilly/retroriv/logger"
)

// SupportedPixelFormat is the only pixel format the frontend will accept from
// a core
const SupportedPixelFormat = libretro.PixelFormatXRGB8888

// Negotiator handles environment commands. The zero value answers directory
// requests with the empty string so it is better to initialise with
// NewNegotiator()
type Negotiator struct {
	// directories reported to the core
	SystemDirectory string
	SaveDirectory   string

	format    libretro.PixelFormat
	committed bool
}

// NewNegotiator is the preferred method of initialisation for the Negotiator
// type.
func NewNegotiator(systemDirectory string, saveDirectory string) *Negotiator {
	return &Negotiator{
		SystemDirectory: systemDirectory,
		SaveDirectory:   saveDirectory,
	}
}

// PixelFormat returns the pixel format that has been agreed with the core.
// The second return value is false if no pixel format has been agreed.
func (n *Negotiator) PixelFormat() (libretro.PixelFormat, bool) {
	return n.format, n.committed
}

// Dispatch answers an environment command. Suitable for use as a
// libretro.EnvironmentFunc.
func (n *Negotiator) Dispatch(cmd libretro.EnvironmentCommand, payload libretro.Payload) bool {
	switch cmd {
	case libretro.EnvGetLogInterface:
		payload.SetLogInterface()
		return true

	case libretro.EnvGetCanDupe:
		payload.SetBool(true)
		return true

	case libretro.EnvSetPixelFormat:
		format := payload.PixelFormat()
		if format != SupportedPixelFormat {
			logger.Logf(logger.Allow, "environment", "rejected pixel format %s", format)
			return false
		}
		if !n.committed {
			logger.Logf(logger.Allow, "environment", "pixel format %s", format)
		}
		n.format = format
		n.committed = true
		return true

	case libretro.EnvGetSystemDirectory:
		payload.SetString(n.SystemDirectory)
		return true

	case libretro.EnvGetSaveDirectory:
		payload.SetString(n.SaveDirectory)
		return true
	}

	logger.Logf(logger.Debug, "environment", "unhandled command %s", cmd)

	return false
}
