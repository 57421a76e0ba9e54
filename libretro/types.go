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

package libretro

import "fmt"

// SystemInfo is the static information about a core. It is available before
// Init() is called.
type SystemInfo struct {
	LibraryName     string
	LibraryVersion  string
	ValidExtensions string

	// the core wants to load content from a path and does not want the
	// frontend to read the file into memory
	NeedFullpath bool

	BlockExtract bool
}

func (info SystemInfo) String() string {
	return fmt.Sprintf("%s %s [%s]", info.LibraryName, info.LibraryVersion, info.ValidExtensions)
}

// Geometry describes the video output of a core.
type Geometry struct {
	BaseWidth   int
	BaseHeight  int
	MaxWidth    int
	MaxHeight   int
	AspectRatio float32
}

// Timing describes the rate at which a core expects to be run.
type Timing struct {
	FPS        float64
	SampleRate float64
}

// SystemAVInfo is the audio/video information about a core once content has
// been loaded.
type SystemAVInfo struct {
	Geometry Geometry
	Timing   Timing
}

func (av SystemAVInfo) String() string {
	return fmt.Sprintf("%dx%d (max %dx%d) %.2ffps %.0fHz",
		av.Geometry.BaseWidth, av.Geometry.BaseHeight,
		av.Geometry.MaxWidth, av.Geometry.MaxHeight,
		av.Timing.FPS, av.Timing.SampleRate)
}

// GameInfo is the content handed to a core by LoadGame().
type GameInfo struct {
	Path string

	// size of the content in bytes. filled in even when Data is nil
	Size int

	// nil if the core needs a full path
	Data []byte
}

// VideoFrame is one frame of video as produced by the core. The Data field
// refers to memory owned by the core and is only valid for the duration of
// the VideoRefreshFunc call it was passed to. It must not be retained.
//
// Data is exactly (Height-1)*Pitch + Width*bytes-per-pixel long.
type VideoFrame struct {
	Data   []byte
	Width  int
	Height int

	// distance in bytes between the start of consecutive rows
	Pitch int
}

// LogFunc receives messages from the core's log interface.
type LogFunc func(level LogLevel, msg string)

// VideoRefreshFunc receives a frame of video from the core. A nil Data field
// indicates a duplicate of the previous frame.
type VideoRefreshFunc func(frame VideoFrame)

// EnvironmentFunc answers environment commands. Unhandled commands should
// return false.
type EnvironmentFunc func(cmd EnvironmentCommand, payload Payload) bool

// Capabilities is the set of services the frontend offers the core. It is
// built once and given to the core once, before initialisation.
type Capabilities struct {
	Log          LogFunc
	VideoRefresh VideoRefreshFunc
	Environment  EnvironmentFunc
}

// Payload is the data accompanying an environment command. Only the methods
// appropriate to the command should be used.
type Payload interface {
	// SetBool writes a boolean answer.
	SetBool(v bool)

	// PixelFormat reads the format requested by SET_PIXEL_FORMAT.
	PixelFormat() PixelFormat

	// SetString writes a string answer. The string remains valid until the
	// module is closed.
	SetString(s string)

	// SetLogInterface writes the frontend's log function. Messages logged
	// through it are delivered to the Log capability.
	SetLogInterface()
}
