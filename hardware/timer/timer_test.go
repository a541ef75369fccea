package timer

import (
	"testing"

	"github.com/hexedcoder/goboy/hardware/memory"
)

func TestDIVIncrementsAt256Cycles(t *testing.T) {
	bus := memory.NewBus()
	tmr := New()

	tmr.Step(bus, 255)
	if got := bus.Peek(memory.DIV); got != 0 {
		t.Fatalf("DIV after 255 cycles = %d, want 0", got)
	}

	tmr.Step(bus, 1)
	if got := bus.Peek(memory.DIV); got != 1 {
		t.Fatalf("DIV after 256 cycles = %d, want 1", got)
	}
}

func TestTIMAOverflowReloadsFromTMAAndRequestsInterrupt(t *testing.T) {
	bus := memory.NewBus()
	tmr := New()

	bus.Poke(memory.TMA, 0xab)
	bus.Poke(memory.TIMA, 0xfe)
	bus.Poke(memory.TAC, 0x05) // enabled, 262144 Hz (threshold 16)

	tmr.Step(bus, 32) // two ticks: 0xfe -> 0xff, then the overflow

	if got := bus.Peek(memory.TIMA); got != 0xab {
		t.Fatalf("TIMA after overflow = %#x, want 0xab", got)
	}
	if bus.Peek(memory.IF)&memory.IntTimer == 0 {
		t.Fatalf("timer interrupt not requested")
	}
}

func TestTimerDisabledWhenTACBit2Clear(t *testing.T) {
	bus := memory.NewBus()
	tmr := New()

	bus.Poke(memory.TAC, 0x01) // rate bits set, enable bit clear
	bus.Poke(memory.TIMA, 0x00)

	tmr.Step(bus, 1000)

	if got := bus.Peek(memory.TIMA); got != 0 {
		t.Fatalf("TIMA incremented while disabled: %#x", got)
	}
}
