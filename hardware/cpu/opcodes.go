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

// handler is a dispatch-table entry: given the CPU and bus, it performs
// one instruction's effect and returns its T-cycle cost.
//
// The primary table is built in three passes: an init() pass decodes the
// regular, bit-field-shaped opcode families (LD r,r', ALU A,r,
// INC/DEC r, INC/DEC rr, PUSH/POP rr, conditional jumps, RST n) the way
// spec.md §9 suggests, a second pass overwrites the irregular
// single-purpose opcodes individually, and a third maps every entry of
// illegalOpcodes to a 4-cycle NOP. A slot left nil is an unknown
// opcode: CPU.Step logs it and stops the CPU.
package cpu

import "github.com/hexedcoder/goboy/hardware/memory"

type handler func(c *CPU, bus *memory.Bus) int

var dispatch [256]handler
var dispatchCB [256]handler

// illegalOpcodes lists the eleven opcodes real hardware locks up on;
// this emulator treats every one of them as a 4-cycle NOP (spec.md §7,
// §9).
var illegalOpcodes = []byte{0xd3, 0xdb, 0xdd, 0xe3, 0xe4, 0xeb, 0xec, 0xed, 0xf4, 0xfc, 0xfd}

func init() {
	buildRegularFamilies()
	buildIrregularOpcodes()
	for _, op := range illegalOpcodes {
		dispatch[op] = opNOP
	}
	buildCBTable()
}

func opNOP(c *CPU, bus *memory.Bus) int { return 4 }

// buildRegularFamilies decodes the opcode map's bit-field-shaped
// regions programmatically instead of enumerating 200-odd near
// duplicates by hand.
func buildRegularFamilies() {
	r8s := [8]r8{r8B, r8C, r8D, r8E, r8H, r8L, r8HLInd, r8A}
	rps := [4]rp{rpBC, rpDE, rpHL, rpSP}
	rp2s := [4]rp2{rp2BC, rp2DE, rp2HL, rp2AF}
	conds := [4]cond{condNZ, condZ, condNC, condC}

	// 0x40-0x7F: LD r,r' (0x76 is HALT, overwritten later).
	for dst := 0; dst < 8; dst++ {
		for src := 0; src < 8; src++ {
			op := byte(0x40 + dst*8 + src)
			d, s := r8s[dst], r8s[src]
			dispatch[op] = func(d, s r8) handler {
				return func(c *CPU, bus *memory.Bus) int {
					v := c.readR8(bus, s)
					c.writeR8(bus, d, v)
					if d == r8HLInd || s == r8HLInd {
						return 8
					}
					return 4
				}
			}(d, s)
		}
	}

	// 0x80-0xBF: ALU A,r' (ADD/ADC/SUB/SBC/AND/XOR/OR/CP).
	alu := [8]func(c *CPU, n byte) byte{
		func(c *CPU, n byte) byte { return c.add8(c.Regs.A, n, false) },
		func(c *CPU, n byte) byte { return c.add8(c.Regs.A, n, c.Regs.F.C) },
		func(c *CPU, n byte) byte { return c.sub8(c.Regs.A, n, false) },
		func(c *CPU, n byte) byte { return c.sub8(c.Regs.A, n, c.Regs.F.C) },
		func(c *CPU, n byte) byte { return c.and8(c.Regs.A, n) },
		func(c *CPU, n byte) byte { return c.xor8(c.Regs.A, n) },
		func(c *CPU, n byte) byte { return c.or8(c.Regs.A, n) },
		func(c *CPU, n byte) byte { v := c.sub8(c.Regs.A, n, false); return v },
	}
	for op8 := 0; op8 < 8; op8++ {
		for src := 0; src < 8; src++ {
			op := byte(0x80 + op8*8 + src)
			s := r8s[src]
			isCP := op8 == 7
			fn := alu[op8]
			dispatch[op] = func(s r8, fn func(*CPU, byte) byte, isCP bool) handler {
				return func(c *CPU, bus *memory.Bus) int {
					n := c.readR8(bus, s)
					a := c.Regs.A
					result := fn(c, n)
					if !isCP {
						c.Regs.A = result
					} else {
						c.Regs.A = a
					}
					if s == r8HLInd {
						return 8
					}
					return 4
				}
			}(s, fn, isCP)
		}
	}

	// 0x04/0x0C/... INC r8 (column stride 8, row within 0x00-0x3F).
	for row := 0; row < 4; row++ {
		for col := 0; col < 2; col++ {
			idx := row*2 + col
			r := r8s[idx]
			incOp := byte(0x04 + row*16 + col*8)
			decOp := byte(0x05 + row*16 + col*8)
			dispatch[incOp] = func(r r8) handler {
				return func(c *CPU, bus *memory.Bus) int {
					v := c.readR8(bus, r)
					c.writeR8(bus, r, c.inc8(v))
					if r == r8HLInd {
						return 12
					}
					return 4
				}
			}(r)
			dispatch[decOp] = func(r r8) handler {
				return func(c *CPU, bus *memory.Bus) int {
					v := c.readR8(bus, r)
					c.writeR8(bus, r, c.dec8(v))
					if r == r8HLInd {
						return 12
					}
					return 4
				}
			}(r)
		}
	}

	// 0x01/0x11/0x21/0x31: LD rr,d16. 0x03/.../0x0B/...: INC/DEC rr. 0x09/...: ADD HL,rr.
	for i, pair := range rps {
		op01 := byte(0x01 + i*16)
		op03 := byte(0x03 + i*16)
		op09 := byte(0x09 + i*16)
		op0B := byte(0x0b + i*16)
		dispatch[op01] = func(rp rp) handler {
			return func(c *CPU, bus *memory.Bus) int {
				c.writeRP(rp, c.fetchWord(bus))
				return 12
			}
		}(pair)
		dispatch[op03] = func(rp rp) handler {
			return func(c *CPU, bus *memory.Bus) int {
				c.writeRP(rp, c.readRP(rp)+1)
				return 8
			}
		}(pair)
		dispatch[op09] = func(rp rp) handler {
			return func(c *CPU, bus *memory.Bus) int {
				c.addHL(c.readRP(rp))
				return 8
			}
		}(pair)
		dispatch[op0B] = func(rp rp) handler {
			return func(c *CPU, bus *memory.Bus) int {
				c.writeRP(rp, c.readRP(rp)-1)
				return 8
			}
		}(pair)
	}

	// PUSH/POP rr: 0xC1/0xC5, 0xD1/0xD5, 0xE1/0xE5, 0xF1/0xF5.
	for i, pair := range rp2s {
		popOp := byte(0xc1 + i*16)
		pushOp := byte(0xc5 + i*16)
		dispatch[popOp] = func(rp2 rp2) handler {
			return func(c *CPU, bus *memory.Bus) int {
				c.writeRP2(rp2, c.pop(bus))
				return 12
			}
		}(pair)
		dispatch[pushOp] = func(rp2 rp2) handler {
			return func(c *CPU, bus *memory.Bus) int {
				c.push(bus, c.readRP2(rp2))
				return 16
			}
		}(pair)
	}

	// Conditional JP/JR/CALL/RET: 0xC0/0xC2/0xC4/0xC8/0xCA/0xCC/0xD0/0xD2/0xD4/0xD8/0xDA/0xDC.
	for i, cc := range conds {
		retOp := byte(0xc0 + i*8)
		jpOp := byte(0xc2 + i*8)
		callOp := byte(0xc4 + i*8)
		jrOp := byte(0x20 + i*8)
		dispatch[retOp] = func(cc cond) handler {
			return func(c *CPU, bus *memory.Bus) int {
				if c.testCond(cc) {
					c.Regs.PC = c.pop(bus)
					return 20
				}
				return 8
			}
		}(cc)
		dispatch[jpOp] = func(cc cond) handler {
			return func(c *CPU, bus *memory.Bus) int {
				addr := c.fetchWord(bus)
				if c.testCond(cc) {
					c.Regs.PC = addr
					return 16
				}
				return 12
			}
		}(cc)
		dispatch[callOp] = func(cc cond) handler {
			return func(c *CPU, bus *memory.Bus) int {
				addr := c.fetchWord(bus)
				if c.testCond(cc) {
					c.push(bus, c.Regs.PC)
					c.Regs.PC = addr
					return 24
				}
				return 12
			}
		}(cc)
		dispatch[jrOp] = func(cc cond) handler {
			return func(c *CPU, bus *memory.Bus) int {
				offset := int8(c.fetchByte(bus))
				if c.testCond(cc) {
					c.Regs.PC = uint16(int32(c.Regs.PC) + int32(offset))
					return 12
				}
				return 8
			}
		}(cc)
	}

	// RST n: 0xC7,0xCF,0xD7,0xDF,0xE7,0xEF,0xF7,0xFF -> 0x00,0x08,...,0x38.
	for i := 0; i < 8; i++ {
		op := byte(0xc7 + i*8)
		vector := uint16(i * 8)
		dispatch[op] = func(vector uint16) handler {
			return func(c *CPU, bus *memory.Bus) int {
				c.push(bus, c.Regs.PC)
				c.Regs.PC = vector
				return 16
			}
		}(vector)
	}
}
