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

// Package television maps the PPU's 0..3 shade output to displayable
// RGB and hosts the two ppu.PixelOut sinks this emulator ships: an
// SDL2 window (SDLScreen) and a sha1-chained digest (DigestScreen) for
// deterministic regression testing. Shade-to-RGB mapping is the host's
// business, not the PPU's (spec.md §4.4), so it lives here rather than
// in the ppu package.
package television

import "github.com/hexedcoder/goboy/config"

// RGB is one displayable color.
type RGB struct {
	R, G, B byte
}

// Palette maps the four shades 0..3 (lightest to darkest) to RGB.
type Palette [4]RGB

var palettes = map[string]Palette{
	config.PaletteGreen: {
		{R: 0x9b, G: 0xbc, B: 0x0f},
		{R: 0x8b, G: 0xac, B: 0x0f},
		{R: 0x30, G: 0x62, B: 0x30},
		{R: 0x0f, G: 0x38, B: 0x0f},
	},
	config.PaletteGrey: {
		{R: 0xff, G: 0xff, B: 0xff},
		{R: 0xaa, G: 0xaa, B: 0xaa},
		{R: 0x55, G: 0x55, B: 0x55},
		{R: 0x00, G: 0x00, B: 0x00},
	},
}

// LookupPalette returns the named palette, falling back to the green
// palette (the DMG's original screen tint) for an unrecognised name.
func LookupPalette(name string) Palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[config.PaletteGreen]
}

// Shade maps a 0..3 shade value to RGB under this palette.
func (p Palette) Shade(shade byte) RGB {
	return p[shade&0x3]
}
