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

// Package ppu implements the DMG's four-mode scanline state machine and
// the per-pixel background/window/sprite compositor described in
// spec.md §4.4. PixelOut is called once per produced pixel, mirroring
// the teacher's television.PixelRenderer callback shape rather than
// handing back a whole framebuffer at once.
package ppu

import "github.com/hexedcoder/goboy/hardware/memory"

const (
	cyclesOAMScan    = 80
	cyclesDrawing    = 172
	cyclesHBlank     = 204
	cyclesVBlankLine = 456

	lastVisibleLine = 143
	lastLine        = 153
)

// PixelOut receives one composited pixel at a time, x in 0..159, y in
// 0..143, shade in 0..3. It must not retain the slice or pointer
// arguments, if any, beyond the call - there are none here, so the
// constraint is trivially satisfied, but the signature matches the
// spec's synchronous, non-retaining callback contract.
type PixelOut func(x, y int, shade byte)

// sprite is a decoded OAM entry, ready for scanline rendering.
type sprite struct {
	y, x  int
	tile  byte
	attrs byte
}

// PPU owns the scanline state machine's accumulator and the current
// line's visible-sprite list. It is stepped once per CPU step alongside
// the timer and DMA controller.
type PPU struct {
	acc     int
	visible []sprite

	out PixelOut
}

// New returns a freshly powered-on PPU. out may be nil, in which case
// pixels are composited but discarded - useful for headless throughput
// testing.
func New(out PixelOut) *PPU {
	return &PPU{out: out}
}

// Step advances the state machine by cycles T-cycles, performing mode
// transitions, interrupt requests and scanline emission as thresholds
// are crossed. It is a no-op when the LCD is off, matching real
// hardware's behaviour of freezing the PPU while LCDC bit 7 is clear.
func (p *PPU) Step(bus *memory.Bus, cycles int) {
	if !bus.LCDOn() {
		return
	}

	p.acc += cycles
	for {
		switch bus.Mode() {
		case memory.ModeOAMScan:
			if p.acc < cyclesOAMScan {
				return
			}
			p.acc -= cyclesOAMScan
			p.scanOAM(bus)
			bus.SetMode(memory.ModeDrawing)

		case memory.ModeDrawing:
			if p.acc < cyclesDrawing {
				return
			}
			p.acc -= cyclesDrawing
			p.renderScanline(bus)
			bus.SetMode(memory.ModeHBlank)
			if bus.Peek(memory.STAT)&0x08 != 0 {
				bus.RequestInterrupt(memory.IntSTAT)
			}

		case memory.ModeHBlank:
			if p.acc < cyclesHBlank {
				return
			}
			p.acc -= cyclesHBlank
			p.endOfLine(bus)

		case memory.ModeVBlank:
			if p.acc < cyclesVBlankLine {
				return
			}
			p.acc -= cyclesVBlankLine
			p.endOfVBlankLine(bus)
		}
	}
}

// endOfLine advances LY at the close of HBLANK, updates the LYC
// coincidence bit and enters either the next OAM_SCAN or VBLANK.
func (p *PPU) endOfLine(bus *memory.Bus) {
	ly := bus.Peek(memory.LY) + 1
	bus.Poke(memory.LY, ly)
	p.updateCoincidence(bus)

	if int(ly) > lastVisibleLine {
		bus.SetMode(memory.ModeVBlank)
		bus.RequestInterrupt(memory.IntVBlank)
		if bus.Peek(memory.STAT)&0x10 != 0 {
			bus.RequestInterrupt(memory.IntSTAT)
		}
		return
	}

	bus.SetMode(memory.ModeOAMScan)
	if bus.Peek(memory.STAT)&0x20 != 0 {
		bus.RequestInterrupt(memory.IntSTAT)
	}
}

// endOfVBlankLine advances LY through the ten VBLANK lines and wraps
// back to OAM_SCAN at LY=0.
func (p *PPU) endOfVBlankLine(bus *memory.Bus) {
	ly := bus.Peek(memory.LY) + 1
	if int(ly) > lastLine {
		ly = 0
	}
	bus.Poke(memory.LY, ly)
	p.updateCoincidence(bus)

	if ly == 0 {
		bus.SetMode(memory.ModeOAMScan)
		if bus.Peek(memory.STAT)&0x20 != 0 {
			bus.RequestInterrupt(memory.IntSTAT)
		}
	}
}

// updateCoincidence sets or clears STAT bit 2 depending on LY vs LYC,
// raising the STAT interrupt on the LY==LYC transition when STAT bit 6
// (the coincidence source enable) is set.
func (p *PPU) updateCoincidence(bus *memory.Bus) {
	stat := bus.Peek(memory.STAT)
	if bus.Peek(memory.LY) == bus.Peek(memory.LYC) {
		if stat&0x04 == 0 && stat&0x40 != 0 {
			bus.RequestInterrupt(memory.IntSTAT)
		}
		bus.Poke(memory.STAT, stat|0x04)
	} else {
		bus.Poke(memory.STAT, stat&^0x04)
	}
}

// scanOAM walks the 40 OAM entries in index order, selecting up to 10
// visible on the current scanline and sorting the result by X (spec.md
// §4.4's OAM scan rule).
func (p *PPU) scanOAM(bus *memory.Bus) {
	p.visible = p.visible[:0]

	ly := int(bus.Peek(memory.LY))
	height := 8
	if bus.Peek(memory.LCDC)&0x04 != 0 {
		height = 16
	}

	for i := 0; i < 40 && len(p.visible) < 10; i++ {
		base := uint16(memory.OAMStart + i*4)
		y := int(bus.Peek(base))
		x := int(bus.Peek(base + 1))
		tile := bus.Peek(base + 2)
		attrs := bus.Peek(base + 3)

		if ly >= y-16 && ly < y-16+height {
			p.visible = append(p.visible, sprite{y: y, x: x, tile: tile, attrs: attrs})
		}
	}

	// stable sort by X ascending; ties keep OAM order.
	for i := 1; i < len(p.visible); i++ {
		for j := i; j > 0 && p.visible[j-1].x > p.visible[j].x; j-- {
			p.visible[j-1], p.visible[j] = p.visible[j], p.visible[j-1]
		}
	}
}
