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

package plugin

import (
	"fmt"
	"strings"
)

// LoadReason is the cause of a LoadError.
type LoadReason int

// List of valid LoadReason values.
const (
	OpenFailed LoadReason = iota
	SymbolMissing
)

func (r LoadReason) String() string {
	switch r {
	case OpenFailed:
		return "open failed"
	case SymbolMissing:
		return "symbol missing"
	}
	return "unknown reason"
}

// LoadError is returned by Load().
type LoadError struct {
	Reason LoadReason
	Path   string

	// every required symbol that is missing from the module. only set for
	// the SymbolMissing reason
	Symbols []string

	Err error
}

func (e *LoadError) Error() string {
	switch e.Reason {
	case SymbolMissing:
		return fmt.Sprintf("plugin: %s: missing symbols: %s", e.Path, strings.Join(e.Symbols, ", "))
	default:
		if e.Err != nil {
			return fmt.Sprintf("plugin: %s: %s: %v", e.Path, e.Reason, e.Err)
		}
		return fmt.Sprintf("plugin: %s: %s", e.Path, e.Reason)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ContentReason is the cause of a ContentError.
type ContentReason int

// List of valid ContentReason values.
const (
	FileUnreadable ContentReason = iota
	ZeroLength
	AllocationFailed
	RejectedByPlugin
)

func (r ContentReason) String() string {
	switch r {
	case FileUnreadable:
		return "file unreadable"
	case ZeroLength:
		return "zero length"
	case AllocationFailed:
		return "allocation failed"
	case RejectedByPlugin:
		return "rejected by core"
	}
	return "unknown reason"
}

// ContentError is returned by LoadContent().
type ContentError struct {
	Reason ContentReason
	Path   string
	Err    error
}

func (e *ContentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("plugin: content: %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("plugin: content: %s: %s", e.Path, e.Reason)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}
