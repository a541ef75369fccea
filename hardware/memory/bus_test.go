package memory

import "testing"

type fakeDMA struct{ running bool }

func (f *fakeDMA) Running() bool { return f.running }
func (f *fakeDMA) Trigger()      { f.running = true }

type fakeTimer struct{ reset bool }

func (f *fakeTimer) Reset() { f.reset = true }

func TestEchoRAMAliasesWRAM(t *testing.T) {
	b := NewBus()
	b.Write(WRAMStart, 0x42)
	if got := b.Read(EchoRAMStart); got != 0x42 {
		t.Fatalf("echo read = %#x, want 0x42", got)
	}

	b.Write(EchoRAMStart+1, 0x99)
	if got := b.Read(WRAMStart + 1); got != 0x99 {
		t.Fatalf("wram read = %#x, want 0x99", got)
	}
}

func TestDMALockout(t *testing.T) {
	b := NewBus()
	dma := &fakeDMA{running: true}
	b.AttachDMA(dma)

	b.Poke(WRAMStart, 0x11)
	if got := b.Read(WRAMStart); got != 0xff {
		t.Fatalf("locked-out read = %#x, want 0xff", got)
	}

	b.Poke(HRAMStart, 0x22)
	if got := b.Read(HRAMStart); got != 0x22 {
		t.Fatalf("HRAM read during lockout = %#x, want 0x22", got)
	}
}

func TestVRAMGatingDuringDrawing(t *testing.T) {
	b := NewBus()
	b.Poke(LCDC, 0x80)
	b.SetMode(ModeDrawing)
	b.Poke(VRAMStart, 0x55)

	if got := b.Read(VRAMStart); got != 0xff {
		t.Fatalf("gated VRAM read = %#x, want 0xff", got)
	}

	b.Write(VRAMStart, 0xaa)
	if got := b.Peek(VRAMStart); got != 0x55 {
		t.Fatalf("gated VRAM write took effect, got %#x", got)
	}
}

func TestBootROMShadow(t *testing.T) {
	b := NewBus()
	boot := make([]byte, BootROMSizeForTest)
	boot[0] = 0xcb
	b.LoadBootROM(boot)
	b.LoadCartridge([]byte{0x00})

	if got := b.Read(0x0000); got != 0xcb {
		t.Fatalf("boot rom read = %#x, want 0xcb", got)
	}

	b.Write(BOOT, 1)
	if b.BootROMEnabled() {
		t.Fatalf("boot rom still enabled after disabling write")
	}
	if got := b.Read(0x0000); got != 0x00 {
		t.Fatalf("cartridge read after boot disable = %#x, want 0x00", got)
	}
}

func TestDIVWriteResetsTimer(t *testing.T) {
	b := NewBus()
	tmr := &fakeTimer{}
	b.AttachTimer(tmr)

	b.Poke(DIV, 0x80)
	b.Write(DIV, 0xff)

	if got := b.Read(DIV); got != 0 {
		t.Fatalf("DIV after write = %#x, want 0", got)
	}
	if !tmr.reset {
		t.Fatalf("timer.Reset() was not called")
	}
}

func TestDMATriggerCopiesOAM(t *testing.T) {
	b := NewBus()
	for i := 0; i < 0xa0; i++ {
		b.Poke(0xc000+uint16(i), byte(i))
	}

	b.Write(DMA, 0xc0)

	for i := 0; i < 0xa0; i++ {
		if got := b.Peek(OAMStart + uint16(i)); got != byte(i) {
			t.Fatalf("OAM[%d] = %#x, want %#x", i, got, byte(i))
		}
	}
}

// BootROMSizeForTest avoids importing cartridgeloader just for the
// size constant.
const BootROMSizeForTest = 0x100
