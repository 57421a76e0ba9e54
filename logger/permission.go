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

package logger

import "sync/atomic"

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries. Good for controlling when or if
// log entries are to be made
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should be allowed. A good default to
// use if a log entry should always be made.
var Allow Permission = allow{}

type debug struct {
	enabled atomic.Bool
}

func (d *debug) AllowLogging() bool {
	return d.enabled.Load()
}

var debugPermission = &debug{}

// Debug allows a logging request only if debug logging has been enabled with
// SetDebug()
var Debug Permission = debugPermission

// SetDebug turns on or off logging requests made with the Debug permission
func SetDebug(enabled bool) {
	debugPermission.enabled.Store(enabled)
}
