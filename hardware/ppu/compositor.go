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

package ppu

import "github.com/hexedcoder/goboy/hardware/memory"

// renderScanline composites one row of 160 pixels at the close of
// DRAWING and emits each to PixelOut, following spec.md §4.4's
// background -> window -> sprite layering order.
func (p *PPU) renderScanline(bus *memory.Bus) {
	ly := int(bus.Peek(memory.LY))
	lcdc := bus.Peek(memory.LCDC)
	scx := int(bus.Peek(memory.SCX))
	scy := int(bus.Peek(memory.SCY))
	bgp := bus.Peek(memory.BGP)

	windowOn := lcdc&0x20 != 0
	wy := int(bus.Peek(memory.WY))
	wx := int(bus.Peek(memory.WX))
	spritesOn := lcdc&0x02 != 0

	for x := 0; x < 160; x++ {
		colorNum := p.backgroundColorNumber(bus, lcdc, scx, scy, ly, x)

		if windowOn && ly >= wy && x >= wx-7 {
			colorNum = p.windowColorNumber(bus, lcdc, wy, wx, ly, x)
		}

		shade := (bgp >> (colorNum * 2)) & 0x3

		if spritesOn {
			if sc, spriteShade, ok := p.spriteColor(bus, ly, x, colorNum); ok {
				_ = sc
				shade = spriteShade
			}
		}

		if p.out != nil {
			p.out(x, ly, shade)
		}
	}
}

// tileAddress resolves a tile id to its 16-byte pattern base address,
// honouring LCDC bit 4's signed/unsigned addressing mode switch.
func tileAddress(lcdc, id byte) uint16 {
	if lcdc&0x10 != 0 {
		return 0x8000 + uint16(id)*16
	}
	return uint16(int(0x9000) + int(int8(id))*16)
}

// backgroundColorNumber fetches the background color-number at pixel x
// of scanline ly, per spec.md §4.4 step 1.
func (p *PPU) backgroundColorNumber(bus *memory.Bus, lcdc byte, scx, scy, ly, x int) byte {
	worldX := (scx + x) & 0xff
	worldY := (scy + ly) & 0xff

	mapBase := uint16(0x9800)
	if lcdc&0x08 != 0 {
		mapBase = 0x9c00
	}

	tileIdxAddr := mapBase + uint16((worldY/8)*32+worldX/8)
	id := bus.Peek(tileIdxAddr)
	pattern := tileAddress(lcdc, id)

	return fetchColorNumber(bus, pattern, worldY%8, worldX%8, false, false)
}

// windowColorNumber fetches the window color-number at pixel x of
// scanline ly, per spec.md §4.4 step 2.
func (p *PPU) windowColorNumber(bus *memory.Bus, lcdc byte, wy, wx, ly, x int) byte {
	localX := x - (wx - 7)
	localY := ly - wy

	mapBase := uint16(0x9800)
	if lcdc&0x40 != 0 {
		mapBase = 0x9c00
	}

	tileIdxAddr := mapBase + uint16((localY/8)*32+localX/8)
	id := bus.Peek(tileIdxAddr)
	pattern := tileAddress(lcdc, id)

	return fetchColorNumber(bus, pattern, localY%8, localX%8, false, false)
}

// fetchColorNumber reads the two bitplane bytes of one tile row and
// extracts the color-number for one pixel column, with optional X/Y
// flip applied before extraction (used by sprite rendering).
func fetchColorNumber(bus *memory.Bus, pattern uint16, rowInTile, colInTile int, flipX, flipY bool) byte {
	if flipY {
		rowInTile = 7 - rowInTile
	}
	lo := bus.Peek(pattern + uint16(rowInTile)*2)
	hi := bus.Peek(pattern + uint16(rowInTile)*2 + 1)

	bitCol := colInTile
	if flipX {
		bitCol = 7 - bitCol
	}
	shift := 7 - bitCol

	b0 := (lo >> shift) & 1
	b1 := (hi >> shift) & 1
	return (b1 << 1) | b0
}

// spriteColor resolves the final shade for pixel x of scanline ly if a
// visible sprite covers it and wins priority, per spec.md §4.4 step 3.
// bgColorNum is the background/window color-number already computed
// for this pixel, needed for the low-priority (attr bit 7) rule.
func (p *PPU) spriteColor(bus *memory.Bus, ly, x int, bgColorNum byte) (byte, byte, bool) {
	height := 8
	if bus.Peek(memory.LCDC)&0x04 != 0 {
		height = 16
	}

	for _, s := range p.visible {
		if x < s.x-8 || x >= s.x {
			continue
		}

		flipX := s.attrs&0x20 != 0
		flipY := s.attrs&0x40 != 0

		yInSprite := ly - (s.y - 16)
		if flipY {
			yInSprite = height - 1 - yInSprite
		}

		tile := s.tile
		rowInTile := yInSprite
		if height == 16 {
			tile &^= 1
			if yInSprite >= 8 {
				tile |= 1
				rowInTile = yInSprite - 8
			}
		}

		pattern := uint16(0x8000) + uint16(tile)*16
		colInTile := x - (s.x - 8)

		colorNum := fetchColorNumber(bus, pattern, rowInTile, colInTile, flipX, false)
		if colorNum == 0 {
			continue
		}

		if s.attrs&0x80 != 0 && bgColorNum != 0 {
			continue
		}

		palette := memory.OBP0
		if s.attrs&0x10 != 0 {
			palette = memory.OBP1
		}
		shade := (bus.Peek(uint16(palette)) >> (colorNum * 2)) & 0x3
		return colorNum, shade, true
	}

	return 0, 0, false
}
