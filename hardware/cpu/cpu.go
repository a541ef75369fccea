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

package cpu

import (
	"github.com/hexedcoder/goboy/curated"
	"github.com/hexedcoder/goboy/hardware/memory"
	"github.com/hexedcoder/goboy/logger"
)

// UnknownOpcode is returned by Step when a dispatch slot has no
// handler. Per spec.md §7 this stops the emulator; it is never
// retried.
const UnknownOpcode = "cpu: unknown opcode %#02x at %#04x"

// CPU is the LR35902 core: the register file plus the handful of
// control flags spec.md §3 lists outside the register file proper.
type CPU struct {
	Regs Registers

	IME        bool
	imePending bool
	Halted     bool
	haltBug    bool
	Running    bool

	// LastError is set when Step clears Running because of an unknown
	// opcode (spec.md §7). nil otherwise.
	LastError error
}

// New returns a freshly powered-on CPU with Running set, ready for the
// tick loop to drive. Register contents are left zeroed; the boot ROM
// (if attached) is responsible for bringing them to their documented
// post-boot values, matching real hardware's division of labour.
func New() *CPU {
	return &CPU{Running: true}
}

// fetchByte reads the byte at PC, implementing the HALT-bug quirk
// (spec.md §4.1): if haltBug is set, PC is read without incrementing
// and the bug flag is cleared; otherwise PC is post-incremented as
// usual.
func (c *CPU) fetchByte(bus *memory.Bus) byte {
	v := bus.Read(c.Regs.PC)
	if c.haltBug {
		c.haltBug = false
		return v
	}
	c.Regs.PC++
	return v
}

// fetchWord reads a little-endian 16-bit value at PC, advancing PC by
// two via two calls to fetchByte.
func (c *CPU) fetchWord(bus *memory.Bus) uint16 {
	lo := c.fetchByte(bus)
	hi := c.fetchByte(bus)
	return uint16(hi)<<8 | uint16(lo)
}

// push writes a 16-bit value to the stack, high byte at SP-1, low byte
// at SP-2, then decrements SP by 2 (spec.md §4.5 stack discipline).
func (c *CPU) push(bus *memory.Bus, v uint16) {
	c.Regs.SP--
	bus.Write(c.Regs.SP, byte(v>>8))
	c.Regs.SP--
	bus.Write(c.Regs.SP, byte(v))
}

// pop reads a 16-bit value from the stack, low byte at SP, high byte
// at SP+1, then increments SP by 2.
func (c *CPU) pop(bus *memory.Bus) uint16 {
	lo := bus.Read(c.Regs.SP)
	c.Regs.SP++
	hi := bus.Read(c.Regs.SP)
	c.Regs.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// serviceInterrupts implements spec.md §4.5's interrupt service
// sequence. It must be called at every instruction boundary, before
// fetch. Returns the T-cycles consumed by servicing - 20 if an
// interrupt was dispatched, 0 otherwise.
func (c *CPU) serviceInterrupts(bus *memory.Bus) int {
	pending := bus.Peek(memory.IE) & bus.Peek(memory.IF)
	if pending == 0 {
		return 0
	}

	if c.Halted {
		c.Halted = false
	}

	if !c.IME {
		return 0
	}

	c.IME = false
	c.push(bus, c.Regs.PC)

	var bit byte
	var vector uint16
	switch {
	case pending&memory.IntVBlank != 0:
		bit, vector = memory.IntVBlank, memory.VecVBlank
	case pending&memory.IntSTAT != 0:
		bit, vector = memory.IntSTAT, memory.VecSTAT
	case pending&memory.IntTimer != 0:
		bit, vector = memory.IntTimer, memory.VecTimer
	case pending&memory.IntSerial != 0:
		bit, vector = memory.IntSerial, memory.VecSerial
	case pending&memory.IntJoypad != 0:
		bit, vector = memory.IntJoypad, memory.VecJoypad
	}

	bus.Poke(memory.IF, bus.Peek(memory.IF)&^bit)
	c.Regs.PC = vector

	return 20
}

// Step services pending interrupts, then (unless halted) fetches,
// decodes and executes one instruction, returning the total T-cycle
// cost per spec.md §4.6's tick loop body.
func (c *CPU) Step(bus *memory.Bus) int {
	cycles := c.serviceInterrupts(bus)

	wasPending := c.imePending
	if c.Halted {
		cycles += 4
		if wasPending {
			c.imePending = false
			c.IME = true
		}
		return cycles
	}

	op := c.fetchByte(bus)
	handler := dispatch[op]
	if handler == nil {
		logger.Logf("cpu", UnknownOpcode, op, c.Regs.PC-1)
		c.LastError = curated.Errorf(UnknownOpcode, op, c.Regs.PC-1)
		c.Running = false
		return cycles
	}

	cycles += handler(c, bus)

	if wasPending {
		c.imePending = false
		c.IME = true
	}

	return cycles
}

// SerialTap implements spec.md §6's acceptance-test serial hook:
// whenever SC (0xFF02) reads 0x81 and SB (0xFF01) holds a 7-bit ASCII
// value, emit that byte and clear SC. Called once per Step by the
// owning hardware.GameBoy, mirroring the spec's "checks on every inner
// step" wording.
func SerialTap(bus *memory.Bus, emit func(byte)) {
	if bus.Peek(memory.SC) != 0x81 {
		return
	}
	b := bus.Peek(memory.SB)
	if b > 0x7f {
		return
	}
	if emit != nil {
		emit(b)
	}
	bus.Poke(memory.SC, 0)
}
