package hardware

import (
	"testing"

	"github.com/hexedcoder/goboy/hardware/memory"
)

func nopROM(n int) []byte {
	rom := make([]byte, n)
	for i := range rom {
		rom[i] = 0x00
	}
	return rom
}

func TestTimerOverflowVectorEndToEnd(t *testing.T) {
	gb := New(nil, nil)
	rom := nopROM(0x200)
	rom[memory.VecTimer] = 0x18   // JR -2: the handler spins in place,
	rom[memory.VecTimer+1] = 0xfe // so PC stays on the vector
	gb.AttachCartridge(rom)

	gb.Bus.Poke(memory.TMA, 0xab)
	gb.Bus.Poke(memory.TIMA, 0xfe)
	gb.Bus.Poke(memory.TAC, 0x05)
	gb.CPU.IME = true
	gb.Bus.Poke(memory.IE, memory.IntTimer)

	// run NOPs until TIMA wraps and requests the timer interrupt
	for i := 0; i < 10 && gb.Bus.Peek(memory.IF)&memory.IntTimer == 0; i++ {
		gb.Step()
	}

	if gb.Bus.Peek(memory.TIMA) != 0xab {
		t.Fatalf("TIMA = %#x, want 0xab", gb.Bus.Peek(memory.TIMA))
	}

	// the next Step services the interrupt, then runs the handler's
	// first instruction
	gb.Step()

	if gb.CPU.Regs.PC != memory.VecTimer {
		t.Fatalf("PC = %#x, want %#x after timer overflow", gb.CPU.Regs.PC, memory.VecTimer)
	}
	if gb.Bus.Peek(memory.IF)&memory.IntTimer != 0 {
		t.Fatalf("timer IF bit still set")
	}
}

func TestHaltWakeupWithoutServiceEndToEnd(t *testing.T) {
	gb := New(nil, nil)
	rom := nopROM(0x200)
	rom[0] = 0x76 // HALT
	rom[1] = 0x00 // NOP
	gb.AttachCartridge(rom)

	gb.CPU.IME = false
	gb.Bus.Poke(memory.IE, memory.IntJoypad)
	gb.Bus.Poke(memory.IF, 0x00)

	gb.Step() // executes HALT

	if !gb.CPU.Halted {
		t.Fatalf("CPU did not halt")
	}

	gb.Bus.Poke(memory.IF, memory.IntJoypad)
	gb.Step()

	if gb.CPU.Halted {
		t.Fatalf("CPU still halted after interrupt request appeared")
	}
	if gb.CPU.IME {
		t.Fatalf("IME changed by wake-without-service")
	}
}

func TestDMALockoutEndToEnd(t *testing.T) {
	gb := New(nil, nil)
	gb.AttachCartridge(nopROM(0x200))

	for i := 0; i < 0xa0; i++ {
		gb.Bus.Poke(0xc000+uint16(i), byte(i))
	}
	gb.Bus.Write(memory.DMA, 0xc0)

	if gb.Bus.Peek(memory.OAMStart) != 0x00 || gb.Bus.Peek(memory.OAMStart+1) != 0x01 {
		t.Fatalf("OAM did not mirror source page immediately")
	}

	if got := gb.Bus.Read(0xc000); got != 0xff {
		t.Fatalf("locked-out read = %#x, want 0xff", got)
	}
	if got := gb.Bus.Read(0xff80); got != gb.Bus.Peek(0xff80) {
		t.Fatalf("HRAM read affected by lockout")
	}

	gb.DMA.Step(639)
	if !gb.DMA.Running() {
		t.Fatalf("lockout ended early")
	}
	gb.DMA.Step(1)
	if gb.DMA.Running() {
		t.Fatalf("lockout did not end at 640 cycles")
	}
}

func TestLYCoincidenceVectorsToSTAT(t *testing.T) {
	gb := New(nil, nil)
	rom := nopROM(0x10000)
	rom[0x0000] = 0x18 // JR -2: main code spins at 0x0000 so PC
	rom[0x0001] = 0xfe // cannot reach the vector by itself
	rom[memory.VecSTAT] = 0x18
	rom[memory.VecSTAT+1] = 0xfe
	gb.AttachCartridge(rom)

	gb.Bus.Poke(memory.LYC, 0x05)
	gb.Bus.Poke(memory.STAT, 0x40) // coincidence source enable
	gb.Bus.Poke(memory.LCDC, 0x80)
	gb.CPU.IME = true
	gb.Bus.Poke(memory.IE, memory.IntSTAT)

	for i := 0; i < 200000 && gb.CPU.Regs.PC != memory.VecSTAT; i++ {
		gb.Step()
	}

	if gb.CPU.Regs.PC != memory.VecSTAT {
		t.Fatalf("PC = %#x, want %#x after LY==LYC", gb.CPU.Regs.PC, memory.VecSTAT)
	}
	if gb.Bus.Peek(memory.STAT)&0x04 == 0 {
		t.Fatalf("STAT coincidence bit not set")
	}
}
