package cpu

import (
	"testing"

	"github.com/hexedcoder/goboy/hardware/memory"
)

func newTestMachine() (*CPU, *memory.Bus) {
	return New(), memory.NewBus()
}

func TestAddOverflowFlags(t *testing.T) {
	c, bus := newTestMachine()
	c.Regs.A = 0xff
	bus.Poke(0xc000, 0x3e) // LD A,n would go through fetch; exercise add8 directly
	result := c.add8(c.Regs.A, 0x01, false)
	if result != 0x00 || !c.Regs.F.Z || !c.Regs.F.H || !c.Regs.F.C || c.Regs.F.N {
		t.Fatalf("ADD A,n flags = %+v result=%#x, want Z=H=C=1 N=0 result=0", c.Regs.F, result)
	}
}

func TestSubUnderflowFlags(t *testing.T) {
	c, _ := newTestMachine()
	c.Regs.A = 0x00
	result := c.sub8(c.Regs.A, 0x01, false)
	if result != 0xff || c.Regs.F.Z || !c.Regs.F.H || !c.Regs.F.C || !c.Regs.F.N {
		t.Fatalf("SUB A,n flags = %+v result=%#x, want Z=0 H=C=N=1 result=0xff", c.Regs.F, result)
	}
}

func TestDAAAfterAdd(t *testing.T) {
	c, _ := newTestMachine()
	c.Regs.A = 0x3a
	c.Regs.A = c.add8(c.Regs.A, 0x06, false)
	if c.Regs.A != 0x40 || !c.Regs.F.H {
		t.Fatalf("setup failed: A=%#x H=%v", c.Regs.A, c.Regs.F.H)
	}

	c.daa()
	if c.Regs.A != 0x46 || c.Regs.F.Z || c.Regs.F.H || c.Regs.F.C {
		t.Fatalf("DAA result = A=%#x Z=%v H=%v C=%v, want A=0x46 Z=H=C=0", c.Regs.A, c.Regs.F.Z, c.Regs.F.H, c.Regs.F.C)
	}
}

func TestPushPopRoundTrip(t *testing.T) {
	c, bus := newTestMachine()
	c.Regs.SP = 0xfffe
	c.Regs.SetBC(0x1234)

	c.push(bus, c.Regs.BC())
	c.Regs.SetBC(0)
	c.Regs.SetBC(c.pop(bus))

	if c.Regs.BC() != 0x1234 {
		t.Fatalf("BC after push/pop = %#x, want 0x1234", c.Regs.BC())
	}
	if c.Regs.SP != 0xfffe {
		t.Fatalf("SP after push/pop = %#x, want 0xfffe", c.Regs.SP)
	}
}

func TestPopAFForcesLowNibbleZero(t *testing.T) {
	c, bus := newTestMachine()
	c.Regs.SP = 0xfffe
	c.push(bus, 0x12ff)
	c.Regs.SetAF(c.pop(bus))

	if c.Regs.AF() != 0x12f0 {
		t.Fatalf("AF after POP of 0x12FF = %#x, want 0x12f0", c.Regs.AF())
	}
}

func TestCPLTwiceIsIdentity(t *testing.T) {
	c, bus := newTestMachine()
	c.Regs.A = 0x5a
	c.Regs.F = Flags{Z: true, C: true}

	dispatch[0x2f](c, bus)
	dispatch[0x2f](c, bus)

	if c.Regs.A != 0x5a {
		t.Fatalf("A after CPL;CPL = %#x, want 0x5a", c.Regs.A)
	}
	if !c.Regs.F.Z || !c.Regs.F.C {
		t.Fatalf("Z/C changed by CPL;CPL: %+v", c.Regs.F)
	}
	if !c.Regs.F.N || !c.Regs.F.H {
		t.Fatalf("N/H not set by CPL: %+v", c.Regs.F)
	}
}

func TestSCFThenCCFClearsCarry(t *testing.T) {
	c, bus := newTestMachine()
	dispatch[0x37](c, bus) // SCF
	dispatch[0x3f](c, bus) // CCF

	if c.Regs.F.C || c.Regs.F.N || c.Regs.F.H {
		t.Fatalf("flags after SCF;CCF = %+v, want all clear", c.Regs.F)
	}
}

func TestHaltWithPendingDisabledInterruptHaltsWithoutHaltBug(t *testing.T) {
	c, bus := newTestMachine()
	c.IME = false
	bus.Poke(memory.IE, 0x00)
	bus.Poke(memory.IF, 0x01)

	dispatch[0x76](c, bus) // HALT

	if c.haltBug {
		t.Fatalf("halt_bug set when IE&IF == 0")
	}
	if !c.Halted {
		t.Fatalf("CPU did not halt")
	}
}

func TestHaltBugSetsWhenIMEClearAndInterruptPending(t *testing.T) {
	c, bus := newTestMachine()
	c.IME = false
	bus.Poke(memory.IE, 0x01)
	bus.Poke(memory.IF, 0x01)

	dispatch[0x76](c, bus)

	if c.Halted {
		t.Fatalf("CPU halted when IME=0 and interrupt pending, want halt_bug instead")
	}
	if !c.haltBug {
		t.Fatalf("halt_bug not set")
	}
}

func TestTimerOverflowVectorsToPC0050(t *testing.T) {
	c, bus := newTestMachine()
	c.IME = true
	bus.Poke(memory.IE, memory.IntTimer)
	bus.Poke(memory.IF, memory.IntTimer)
	c.Regs.PC = 0x0100
	c.Regs.SP = 0xfffe

	cycles := c.serviceInterrupts(bus)

	if c.Regs.PC != memory.VecTimer {
		t.Fatalf("PC after timer interrupt = %#x, want %#x", c.Regs.PC, memory.VecTimer)
	}
	if cycles != 20 {
		t.Fatalf("interrupt service cost = %d, want 20", cycles)
	}
	if bus.Peek(memory.IF)&memory.IntTimer != 0 {
		t.Fatalf("IF timer bit not cleared")
	}
	if c.IME {
		t.Fatalf("IME not cleared on service")
	}
	top := c.pop(bus)
	if top != 0x0100 {
		t.Fatalf("pushed PC = %#x, want 0x0100", top)
	}
}

func TestEIDelaysOneInstruction(t *testing.T) {
	c, bus := newTestMachine()
	bus.Poke(0x0000, 0xfb) // EI
	bus.Poke(0x0001, 0x00) // NOP
	c.Regs.PC = 0x0000

	c.Step(bus)
	if c.IME {
		t.Fatalf("IME set immediately after EI, want delayed by one instruction")
	}

	c.Step(bus)
	if !c.IME {
		t.Fatalf("IME not set after the instruction following EI")
	}
}
