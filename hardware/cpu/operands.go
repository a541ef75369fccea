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

// r8 identifies one of the eight 3-bit register-field operands shared
// by LD r,r', the ALU A,r family and CB-prefixed bit operations. Index
// 6 is the (HL) memory operand, not a register.
type r8 int

const (
	r8B r8 = iota
	r8C
	r8D
	r8E
	r8H
	r8L
	r8HLInd
	r8A
)

// readR8 reads an r8 operand, costing a bus access when it is (HL).
func (c *CPU) readR8(bus *memory.Bus, r r8) byte {
	switch r {
	case r8B:
		return c.Regs.B
	case r8C:
		return c.Regs.C
	case r8D:
		return c.Regs.D
	case r8E:
		return c.Regs.E
	case r8H:
		return c.Regs.H
	case r8L:
		return c.Regs.L
	case r8HLInd:
		return bus.Read(c.Regs.HL())
	default:
		return c.Regs.A
	}
}

// writeR8 writes an r8 operand.
func (c *CPU) writeR8(bus *memory.Bus, r r8, v byte) {
	switch r {
	case r8B:
		c.Regs.B = v
	case r8C:
		c.Regs.C = v
	case r8D:
		c.Regs.D = v
	case r8E:
		c.Regs.E = v
	case r8H:
		c.Regs.H = v
	case r8L:
		c.Regs.L = v
	case r8HLInd:
		bus.Write(c.Regs.HL(), v)
	default:
		c.Regs.A = v
	}
}

// rp identifies one of the four 16-bit register-pair operands used by
// 16-bit loads, INC/DEC rr and ADD HL,rr.
type rp int

const (
	rpBC rp = iota
	rpDE
	rpHL
	rpSP
)

func (c *CPU) readRP(r rp) uint16 {
	switch r {
	case rpBC:
		return c.Regs.BC()
	case rpDE:
		return c.Regs.DE()
	case rpHL:
		return c.Regs.HL()
	default:
		return c.Regs.SP
	}
}

func (c *CPU) writeRP(r rp, v uint16) {
	switch r {
	case rpBC:
		c.Regs.SetBC(v)
	case rpDE:
		c.Regs.SetDE(v)
	case rpHL:
		c.Regs.SetHL(v)
	default:
		c.Regs.SP = v
	}
}

// rp2 identifies the four register-pair operands used by PUSH/POP,
// which substitute AF for SP.
type rp2 int

const (
	rp2BC rp2 = iota
	rp2DE
	rp2HL
	rp2AF
)

func (c *CPU) readRP2(r rp2) uint16 {
	switch r {
	case rp2BC:
		return c.Regs.BC()
	case rp2DE:
		return c.Regs.DE()
	case rp2HL:
		return c.Regs.HL()
	default:
		return c.Regs.AF()
	}
}

func (c *CPU) writeRP2(r rp2, v uint16) {
	switch r {
	case rp2BC:
		c.Regs.SetBC(v)
	case rp2DE:
		c.Regs.SetDE(v)
	case rp2HL:
		c.Regs.SetHL(v)
	default:
		c.Regs.SetAF(v)
	}
}

// cond identifies one of the four branch conditions used by JP/JR/CALL/RET cc.
type cond int

const (
	condNZ cond = iota
	condZ
	condNC
	condC
)

func (c *CPU) testCond(cc cond) bool {
	switch cc {
	case condNZ:
		return !c.Regs.F.Z
	case condZ:
		return c.Regs.F.Z
	case condNC:
		return !c.Regs.F.C
	default:
		return c.Regs.F.C
	}
}
