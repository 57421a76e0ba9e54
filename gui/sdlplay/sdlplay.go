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

// Package sdlplay is a simple SDL display for the host. The indexed
// framebuffer is expanded to RGBA with the RGB332 palette and copied to a
// streaming texture every frame.
//
// All functions MUST be called from the same locked OS thread.
package sdlplay

import (
	"fmt"

	"github.com/jetsetilly/retroriv/curated"
	"github.com/jetsetilly/retroriv/logger"
	"github.com/jetsetilly/retroriv/video"
	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// SdlPlay is an implementation of the host.Display interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// dimensions of the texture. the texture is recreated if the dimensions
	// of the framebuffer change
	width  int32
	height int32

	// the amount of scaling applied to each pixel
	scale float32

	fullscreen bool

	// OnReset is called when the reset key (F5) is pressed
	OnReset func()
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. The
// window is sized according to the descriptor and scale values.
func NewSdlPlay(title string, desc video.Descriptor, scale float32) (*SdlPlay, error) {
	if scale <= 0 {
		return nil, curated.Errorf("sdlplay: scale must be positive (%v)", scale)
	}

	scr := &SdlPlay{scale: scale}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(float32(desc.Width)*scale), int32(float32(desc.Height)*scale),
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		scr.Destroy()
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	setupService()

	err = scr.resize(int32(desc.Width), int32(desc.Height))
	if err != nil {
		scr.Destroy()
		return nil, err
	}

	logger.Logf(logger.Allow, "sdlplay", "window %dx%d (scale %.1f)", desc.Width, desc.Height, scale)

	return scr, nil
}

// resize the texture. the window size is only changed if the dimensions are
// different to the existing dimensions
func (scr *SdlPlay) resize(width int32, height int32) error {
	if scr.texture != nil {
		if width == scr.width && height == scr.height {
			return nil
		}
		_ = scr.texture.Destroy()
		scr.texture = nil
	}

	var err error

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING), width, height)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	// the renderer scales the texture to fit the window while keeping the
	// aspect ratio
	err = scr.renderer.SetLogicalSize(width, height)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	if !scr.fullscreen {
		scr.window.SetSize(int32(float32(width)*scr.scale), int32(float32(height)*scr.scale))
	}

	scr.width = width
	scr.height = height

	logger.Logf(logger.Allow, "sdlplay", "texture %dx%d", width, height)

	return nil
}

// Present implements the host.Display interface.
func (scr *SdlPlay) Present(fb *video.Framebuffer) error {
	if !fb.Consume() {
		// nothing new to show. the previous frame remains in the window
		return nil
	}

	err := scr.resize(int32(fb.Width), int32(fb.Height))
	if err != nil {
		return err
	}

	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	// the texture pitch might be larger than the width of the frame
	for y := range fb.Height {
		row := fb.Pixels[y*fb.Width : (y+1)*fb.Width]
		video.ExpandRGBA(pixels[y*pitch:y*pitch+fb.Width*pixelDepth], row)
	}

	scr.texture.Unlock()

	err = scr.renderer.Clear()
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// SetTitle changes the title of the window.
func (scr *SdlPlay) SetTitle(title string) {
	scr.window.SetTitle(title)
}

func (scr *SdlPlay) toggleFullscreen() {
	scr.fullscreen = !scr.fullscreen

	var flags uint32
	if scr.fullscreen {
		flags = uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	}

	if err := scr.window.SetFullscreen(flags); err != nil {
		logger.Log(logger.Allow, "sdlplay", fmt.Errorf("fullscreen: %w", err))
	}
}

// Destroy the window and release SDL.
func (scr *SdlPlay) Destroy() {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
		scr.texture = nil
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
		scr.renderer = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
	sdl.Quit()
}
