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

// Entry point names exported by a core. Names are case-sensitive.
const (
	SymInit                    = "retro_init"
	SymDeinit                  = "retro_deinit"
	SymAPIVersion              = "retro_api_version"
	SymGetSystemInfo           = "retro_get_system_info"
	SymGetSystemAVInfo         = "retro_get_system_av_info"
	SymSetControllerPortDevice = "retro_set_controller_port_device"
	SymReset                   = "retro_reset"
	SymRun                     = "retro_run"
	SymSerializeSize           = "retro_serialize_size"
	SymSerialize               = "retro_serialize"
	SymUnserialize             = "retro_unserialize"
	SymLoadGame                = "retro_load_game"
	SymUnloadGame              = "retro_unload_game"

	SymSetEnvironment      = "retro_set_environment"
	SymSetVideoRefresh     = "retro_set_video_refresh"
	SymSetInputPoll        = "retro_set_input_poll"
	SymSetInputState       = "retro_set_input_state"
	SymSetAudioSample      = "retro_set_audio_sample"
	SymSetAudioSampleBatch = "retro_set_audio_sample_batch"
)

// Symbols is the list of every entry point that must be present for a core to
// be usable. The order is the order in which they are reported when missing.
var Symbols = []string{
	SymInit,
	SymDeinit,
	SymAPIVersion,
	SymGetSystemInfo,
	SymGetSystemAVInfo,
	SymSetControllerPortDevice,
	SymReset,
	SymRun,
	SymSerializeSize,
	SymSerialize,
	SymUnserialize,
	SymLoadGame,
	SymUnloadGame,
	SymSetEnvironment,
	SymSetVideoRefresh,
	SymSetInputPoll,
	SymSetInputState,
	SymSetAudioSample,
	SymSetAudioSampleBatch,
}

// APIVersion is the version of the ABI this frontend was written against.
const APIVersion = 1

// EnvironmentCommand identifies a request made by a core through the
// environment callback.
type EnvironmentCommand uint

// List of environment commands that have meaning to the frontend. Any other
// value is answered with false.
const (
	EnvGetCanDupe         EnvironmentCommand = 3
	EnvGetSystemDirectory EnvironmentCommand = 9
	EnvSetPixelFormat     EnvironmentCommand = 10
	EnvGetLogInterface    EnvironmentCommand = 27
	EnvGetSaveDirectory   EnvironmentCommand = 31

	// bit set on commands that are not part of the stable ABI
	EnvExperimental EnvironmentCommand = 0x10000
)

func (cmd EnvironmentCommand) String() string {
	switch cmd {
	case EnvGetCanDupe:
		return "GET_CAN_DUPE"
	case EnvGetSystemDirectory:
		return "GET_SYSTEM_DIRECTORY"
	case EnvSetPixelFormat:
		return "SET_PIXEL_FORMAT"
	case EnvGetLogInterface:
		return "GET_LOG_INTERFACE"
	case EnvGetSaveDirectory:
		return "GET_SAVE_DIRECTORY"
	}
	if cmd&EnvExperimental == EnvExperimental {
		return fmt.Sprintf("#%d (experimental)", cmd&^EnvExperimental)
	}
	return fmt.Sprintf("#%d", uint(cmd))
}

// PixelFormat is the format of video frames produced by a core.
type PixelFormat int

// List of valid PixelFormat values. The value of PixelFormat0RGB1555 is the
// format assumed by a core until SET_PIXEL_FORMAT has been accepted.
const (
	PixelFormat0RGB1555 PixelFormat = 0
	PixelFormatXRGB8888 PixelFormat = 1
	PixelFormatRGB565   PixelFormat = 2
)

func (f PixelFormat) String() string {
	switch f {
	case PixelFormat0RGB1555:
		return "0RGB1555"
	case PixelFormatXRGB8888:
		return "XRGB8888"
	case PixelFormatRGB565:
		return "RGB565"
	}
	return fmt.Sprintf("unknown pixel format (%d)", int(f))
}

// LogLevel is the severity of a message sent by the core to the log
// interface.
type LogLevel int

// List of valid LogLevel values.
const (
	LogDebug LogLevel = iota
	LogInfo
	LogWarn
	LogError
)

func (l LogLevel) String() string {
	switch l {
	case LogDebug:
		return "dbg"
	case LogInfo:
		return "inf"
	case LogWarn:
		return "wrn"
	case LogError:
		return "err"
	}
	return fmt.Sprintf("level %d", int(l))
}
