package joypad

import (
	"testing"

	"github.com/hexedcoder/goboy/hardware/memory"
)

// selectActions is bit4=1 (direction deselected), bit5=0 (actions selected).
const selectActions = 0x10

// selectDirections is bit4=0 (direction selected), bit5=1 (actions deselected).
const selectDirections = 0x20

func TestUnselectedLinesReadHigh(t *testing.T) {
	bus := memory.NewBus()
	m := New(bus)
	m.SetButton(ButtonA, true)

	if got := m.Read(); got&0x0f != 0x0f {
		t.Fatalf("JOYP low nibble = %#x, want all high when nothing selected", got&0x0f)
	}
}

func TestSelectedPressedButtonReadsLow(t *testing.T) {
	bus := memory.NewBus()
	m := New(bus)
	m.Write(selectActions)
	m.SetButton(ButtonA, true)

	if got := m.Read(); got&0x01 != 0 {
		t.Fatalf("bit for pressed+selected A = %#x, want 0", got&0x01)
	}
	if got := m.Read(); got&0x02 == 0 {
		t.Fatalf("bit for unpressed B = %#x, want 1", got&0x02)
	}
}

func TestPressEdgeRaisesJoypadInterrupt(t *testing.T) {
	bus := memory.NewBus()
	m := New(bus)
	m.Write(selectActions)

	m.SetButton(ButtonA, true)
	if bus.Peek(memory.IF)&memory.IntJoypad == 0 {
		t.Fatalf("joypad interrupt not requested on press edge")
	}
}

func TestPressEdgeOnUnselectedLineRaisesInterrupt(t *testing.T) {
	bus := memory.NewBus()
	m := New(bus)
	m.Write(selectDirections)

	m.SetButton(ButtonA, true)
	if bus.Peek(memory.IF)&memory.IntJoypad == 0 {
		t.Fatalf("joypad interrupt not requested for a press on an unselected line")
	}
}
