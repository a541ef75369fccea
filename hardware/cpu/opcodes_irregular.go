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

import "github.com/hexedcoder/goboy/hardware/memory"

// buildIrregularOpcodes assigns every opcode that does not belong to
// one of the bit-field-shaped families buildRegularFamilies decodes:
// immediate loads, the indirect A loads, rotates on A, block control
// flow and the handful of single-purpose opcodes (DAA, CPL, SCF, CCF,
// HALT, STOP, EI, DI, LDH, ...).
func buildIrregularOpcodes() {
	dispatch[0x00] = opNOP

	// LD r,d8 for the eight r8 operands, opcode = base + row*16, col fixed to 6/E.
	ldImm := map[byte]r8{
		0x06: r8B, 0x0e: r8C,
		0x16: r8D, 0x1e: r8E,
		0x26: r8H, 0x2e: r8L,
		0x36: r8HLInd, 0x3e: r8A,
	}
	for op, r := range ldImm {
		r := r
		cost := 8
		if r == r8HLInd {
			cost = 12
		}
		dispatch[op] = func(c *CPU, bus *memory.Bus) int {
			c.writeR8(bus, r, c.fetchByte(bus))
			return cost
		}
	}

	dispatch[0x02] = func(c *CPU, bus *memory.Bus) int { bus.Write(c.Regs.BC(), c.Regs.A); return 8 }
	dispatch[0x12] = func(c *CPU, bus *memory.Bus) int { bus.Write(c.Regs.DE(), c.Regs.A); return 8 }
	dispatch[0x22] = func(c *CPU, bus *memory.Bus) int {
		bus.Write(c.Regs.HL(), c.Regs.A)
		c.Regs.SetHL(c.Regs.HL() + 1)
		return 8
	}
	dispatch[0x32] = func(c *CPU, bus *memory.Bus) int {
		bus.Write(c.Regs.HL(), c.Regs.A)
		c.Regs.SetHL(c.Regs.HL() - 1)
		return 8
	}
	dispatch[0x0a] = func(c *CPU, bus *memory.Bus) int { c.Regs.A = bus.Read(c.Regs.BC()); return 8 }
	dispatch[0x1a] = func(c *CPU, bus *memory.Bus) int { c.Regs.A = bus.Read(c.Regs.DE()); return 8 }
	dispatch[0x2a] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.A = bus.Read(c.Regs.HL())
		c.Regs.SetHL(c.Regs.HL() + 1)
		return 8
	}
	dispatch[0x3a] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.A = bus.Read(c.Regs.HL())
		c.Regs.SetHL(c.Regs.HL() - 1)
		return 8
	}

	dispatch[0x08] = func(c *CPU, bus *memory.Bus) int {
		addr := c.fetchWord(bus)
		bus.Write(addr, byte(c.Regs.SP))
		bus.Write(addr+1, byte(c.Regs.SP>>8))
		return 20
	}

	dispatch[0x07] = func(c *CPU, bus *memory.Bus) int {
		v, carry := rotateLeft(c.Regs.A, false, c.Regs.F.C)
		c.Regs.A = v
		c.Regs.F = Flags{C: carry}
		return 4
	}
	dispatch[0x0f] = func(c *CPU, bus *memory.Bus) int {
		v, carry := rotateRight(c.Regs.A, false, c.Regs.F.C)
		c.Regs.A = v
		c.Regs.F = Flags{C: carry}
		return 4
	}
	dispatch[0x17] = func(c *CPU, bus *memory.Bus) int {
		v, carry := rotateLeft(c.Regs.A, true, c.Regs.F.C)
		c.Regs.A = v
		c.Regs.F = Flags{C: carry}
		return 4
	}
	dispatch[0x1f] = func(c *CPU, bus *memory.Bus) int {
		v, carry := rotateRight(c.Regs.A, true, c.Regs.F.C)
		c.Regs.A = v
		c.Regs.F = Flags{C: carry}
		return 4
	}

	dispatch[0x10] = func(c *CPU, bus *memory.Bus) int {
		c.fetchByte(bus)
		bus.Write(memory.DIV, 0)
		c.Halted = true
		return 4
	}

	dispatch[0x18] = func(c *CPU, bus *memory.Bus) int {
		offset := int8(c.fetchByte(bus))
		c.Regs.PC = uint16(int32(c.Regs.PC) + int32(offset))
		return 12
	}

	dispatch[0x27] = func(c *CPU, bus *memory.Bus) int { c.daa(); return 4 }
	dispatch[0x2f] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.A = ^c.Regs.A
		c.Regs.F.N = true
		c.Regs.F.H = true
		return 4
	}
	dispatch[0x37] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.F.N = false
		c.Regs.F.H = false
		c.Regs.F.C = true
		return 4
	}
	dispatch[0x3f] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.F.N = false
		c.Regs.F.H = false
		c.Regs.F.C = !c.Regs.F.C
		return 4
	}

	dispatch[0x76] = func(c *CPU, bus *memory.Bus) int {
		pending := bus.Peek(memory.IE) & bus.Peek(memory.IF)
		switch {
		case c.IME:
			c.Halted = true
		case pending != 0:
			c.haltBug = true
		default:
			c.Halted = true
		}
		return 4
	}

	dispatch[0xc3] = func(c *CPU, bus *memory.Bus) int { c.Regs.PC = c.fetchWord(bus); return 16 }
	dispatch[0xc9] = func(c *CPU, bus *memory.Bus) int { c.Regs.PC = c.pop(bus); return 16 }
	dispatch[0xcd] = func(c *CPU, bus *memory.Bus) int {
		addr := c.fetchWord(bus)
		c.push(bus, c.Regs.PC)
		c.Regs.PC = addr
		return 24
	}
	dispatch[0xd9] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.PC = c.pop(bus)
		c.IME = true
		c.imePending = false
		return 16
	}
	dispatch[0xe9] = func(c *CPU, bus *memory.Bus) int { c.Regs.PC = c.Regs.HL(); return 4 }

	dispatch[0xc6] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.A = c.add8(c.Regs.A, c.fetchByte(bus), false)
		return 8
	}
	dispatch[0xce] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.A = c.add8(c.Regs.A, c.fetchByte(bus), c.Regs.F.C)
		return 8
	}
	dispatch[0xd6] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.A = c.sub8(c.Regs.A, c.fetchByte(bus), false)
		return 8
	}
	dispatch[0xde] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.A = c.sub8(c.Regs.A, c.fetchByte(bus), c.Regs.F.C)
		return 8
	}
	dispatch[0xe6] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.A = c.and8(c.Regs.A, c.fetchByte(bus))
		return 8
	}
	dispatch[0xee] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.A = c.xor8(c.Regs.A, c.fetchByte(bus))
		return 8
	}
	dispatch[0xf6] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.A = c.or8(c.Regs.A, c.fetchByte(bus))
		return 8
	}
	dispatch[0xfe] = func(c *CPU, bus *memory.Bus) int {
		c.sub8(c.Regs.A, c.fetchByte(bus), false)
		return 8
	}

	dispatch[0xe0] = func(c *CPU, bus *memory.Bus) int {
		bus.Write(0xff00+uint16(c.fetchByte(bus)), c.Regs.A)
		return 12
	}
	dispatch[0xf0] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.A = bus.Read(0xff00 + uint16(c.fetchByte(bus)))
		return 12
	}
	dispatch[0xe2] = func(c *CPU, bus *memory.Bus) int { bus.Write(0xff00+uint16(c.Regs.C), c.Regs.A); return 8 }
	dispatch[0xf2] = func(c *CPU, bus *memory.Bus) int { c.Regs.A = bus.Read(0xff00 + uint16(c.Regs.C)); return 8 }
	dispatch[0xea] = func(c *CPU, bus *memory.Bus) int { bus.Write(c.fetchWord(bus), c.Regs.A); return 16 }
	dispatch[0xfa] = func(c *CPU, bus *memory.Bus) int { c.Regs.A = bus.Read(c.fetchWord(bus)); return 16 }

	dispatch[0xe8] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.SP = c.addSPOffset(int8(c.fetchByte(bus)))
		return 16
	}
	dispatch[0xf8] = func(c *CPU, bus *memory.Bus) int {
		c.Regs.SetHL(c.addSPOffset(int8(c.fetchByte(bus))))
		return 12
	}
	dispatch[0xf9] = func(c *CPU, bus *memory.Bus) int { c.Regs.SP = c.Regs.HL(); return 8 }

	dispatch[0xf3] = func(c *CPU, bus *memory.Bus) int {
		c.IME = false
		c.imePending = false
		return 4
	}
	dispatch[0xfb] = func(c *CPU, bus *memory.Bus) int {
		c.imePending = true
		return 4
	}

	dispatch[0xcb] = func(c *CPU, bus *memory.Bus) int {
		op := c.fetchByte(bus)
		return 4 + dispatchCB[op](c, bus)
	}
}
