// This file is part of GoBoy.
//
// GoBoy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoBoy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoBoy.  If not, see <https://www.gnu.org/licenses/>.

package television

import (
	"github.com/hexedcoder/goboy/curated"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	depth = 4
	pitch = screenWidth * depth
)

// SDLScreen presents the DMG's fixed 160x144 framebuffer in a scaled
// SDL2 window, streaming pixels into an ABGR8888 texture one frame at
// a time the way the teacher's sdltv screen drives its own texture.
type SDLScreen struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	palette Palette
	pixels  []byte
}

// NewSDLScreen opens a window scaled by pixelScale and ready to
// receive pixels via PixelOut.
func NewSDLScreen(palette Palette, pixelScale int) (*SDLScreen, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf("television: %v", err)
	}

	scr := &SDLScreen{palette: palette}

	w := int32(screenWidth * pixelScale)
	h := int32(screenHeight * pixelScale)

	var err error
	scr.window, err = sdl.CreateWindow("GoBoy", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, w, h, sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, curated.Errorf("television: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf("television: %v", err)
	}
	if err := scr.renderer.SetLogicalSize(int32(screenWidth), int32(screenHeight)); err != nil {
		return nil, curated.Errorf("television: %v", err)
	}

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING, int32(screenWidth), int32(screenHeight))
	if err != nil {
		return nil, curated.Errorf("television: %v", err)
	}

	scr.pixels = make([]byte, screenWidth*screenHeight*depth)

	return scr, nil
}

// PixelOut writes one pixel's palette-mapped color into the pending
// frame buffer. Matches the ppu.PixelOut signature.
func (scr *SDLScreen) PixelOut(x, y int, shade byte) {
	rgb := scr.palette.Shade(shade)
	i := (y*screenWidth + x) * depth
	if i < 0 || i+3 >= len(scr.pixels) {
		return
	}
	scr.pixels[i] = 0xff // A
	scr.pixels[i+1] = rgb.B
	scr.pixels[i+2] = rgb.G
	scr.pixels[i+3] = rgb.R
}

// Present blits the completed frame to the window. Called once per
// drained video frame by the host's Run(present) callback.
func (scr *SDLScreen) Present() error {
	if err := scr.texture.Update(nil, scr.pixels, pitch); err != nil {
		return curated.Errorf("television: %v", err)
	}
	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf("television: %v", err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf("television: %v", err)
	}
	scr.renderer.Present()
	return nil
}

// Close releases the SDL window, renderer and texture.
func (scr *SDLScreen) Close() {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()
}
