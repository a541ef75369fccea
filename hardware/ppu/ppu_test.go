package ppu

import (
	"testing"

	"github.com/hexedcoder/goboy/hardware/memory"
)

func setupLCDOn(bus *memory.Bus) {
	bus.Poke(memory.LCDC, 0x91) // LCD on, BG on, tile data at 0x8000
}

// writeSolidTile writes a tile whose every pixel has color-number 3 at
// the given VRAM pattern address.
func writeSolidTile(bus *memory.Bus, addr uint16) {
	for row := 0; row < 8; row++ {
		bus.Poke(addr+uint16(row)*2, 0xff)
		bus.Poke(addr+uint16(row)*2+1, 0xff)
	}
}

func TestOAMScanCapsAtTenSprites(t *testing.T) {
	bus := memory.NewBus()
	p := New(nil)
	bus.Poke(memory.LY, 10)

	for i := 0; i < 20; i++ {
		base := uint16(memory.OAMStart + i*4)
		bus.Poke(base, 20) // Y, visible at LY=10 (rows Y-16=4..11)
		bus.Poke(base+1, byte(20-i))
		bus.Poke(base+2, 0)
		bus.Poke(base+3, 0)
	}

	p.scanOAM(bus)

	if len(p.visible) != 10 {
		t.Fatalf("visible sprite count = %d, want 10", len(p.visible))
	}
	for i := 1; i < len(p.visible); i++ {
		if p.visible[i-1].x > p.visible[i].x {
			t.Fatalf("visible list not sorted by X: %+v", p.visible)
		}
	}
}

func TestBackgroundScrollWraps(t *testing.T) {
	bus := memory.NewBus()
	setupLCDOn(bus)
	bus.Poke(memory.SCX, 0xf8)
	bus.Poke(memory.SCY, 0x00)
	bus.Poke(memory.BGP, 0xe4)
	bus.Poke(memory.LY, 0)

	// tile map entry (0,0) -> tile id 0, a solid color-3 tile at 0x8000.
	bus.Poke(0x9800, 0x00)
	writeSolidTile(bus, 0x8000)

	var shades [8]byte
	p := New(func(x, y int, shade byte) {
		if y == 0 && x < 8 {
			shades[x] = shade
		}
	})

	p.renderScanline(bus)

	want := byte((0xe4 >> 6) & 3)
	for x := 0; x < 8; x++ {
		if shades[x] != want {
			t.Fatalf("shade at x=%d = %d, want %d (scroll wrap)", x, shades[x], want)
		}
	}
}

func TestSpriteLowPriorityHiddenBehindBackground(t *testing.T) {
	bus := memory.NewBus()
	setupLCDOn(bus)
	bus.Poke(memory.LCDC, bus.Peek(memory.LCDC)|0x02) // sprites on
	bus.Poke(memory.BGP, 0xe4)
	bus.Poke(memory.OBP0, 0x93)
	bus.Poke(memory.LY, 0)

	bus.Poke(0x9800, 0)
	writeSolidTile(bus, 0x8000) // background color-number 3 everywhere

	// sprite tile at 0x8010, also solid color-number 3, low priority.
	writeSolidTile(bus, 0x8010)
	bus.Poke(memory.OAMStart, 16)     // Y=16 -> sprite row 0 at LY=0
	bus.Poke(memory.OAMStart+1, 8)    // X=8 -> covers x=0..7
	bus.Poke(memory.OAMStart+2, 1)    // tile 1 -> pattern at 0x8010
	bus.Poke(memory.OAMStart+3, 0x80) // low priority

	p := New(nil)
	p.scanOAM(bus)

	var got byte
	p.out = func(x, y int, shade byte) {
		if x == 0 {
			got = shade
		}
	}
	p.renderScanline(bus)

	bgShade := byte((0xe4 >> 6) & 3)
	if got != bgShade {
		t.Fatalf("low-priority sprite shade = %d, want background shade %d", got, bgShade)
	}

	// flipping attr bit 7 off should let the sprite win.
	bus.Poke(memory.OAMStart+3, 0x00)
	p.scanOAM(bus)
	p.renderScanline(bus)

	spriteShade := byte((0x93 >> 6) & 3)
	if got != spriteShade {
		t.Fatalf("high-priority sprite shade = %d, want sprite shade %d", got, spriteShade)
	}
}
