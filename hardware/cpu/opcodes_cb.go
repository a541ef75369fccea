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

// buildCBTable decodes the CB-prefixed opcode map, which is fully
// regular: bits 5..3 select the operation (8 rotate/shift variants,
// then BIT/RES/SET each spanning bits 0..7), bits 2..0 select the r8
// operand. The returned cost excludes the CB prefix's own 4 cycles,
// added by dispatch[0xCB].
func buildCBTable() {
	r8s := [8]r8{r8B, r8C, r8D, r8E, r8H, r8L, r8HLInd, r8A}

	shiftOps := [8]func(c *CPU, v byte) byte{
		func(c *CPU, v byte) byte {
			res, carry := rotateLeft(v, false, c.Regs.F.C)
			c.Regs.F = Flags{Z: res == 0, C: carry}
			return res
		},
		func(c *CPU, v byte) byte {
			res, carry := rotateRight(v, false, c.Regs.F.C)
			c.Regs.F = Flags{Z: res == 0, C: carry}
			return res
		},
		func(c *CPU, v byte) byte {
			res, carry := rotateLeft(v, true, c.Regs.F.C)
			c.Regs.F = Flags{Z: res == 0, C: carry}
			return res
		},
		func(c *CPU, v byte) byte {
			res, carry := rotateRight(v, true, c.Regs.F.C)
			c.Regs.F = Flags{Z: res == 0, C: carry}
			return res
		},
		func(c *CPU, v byte) byte { // SLA
			carry := v&0x80 != 0
			res := v << 1
			c.Regs.F = Flags{Z: res == 0, C: carry}
			return res
		},
		func(c *CPU, v byte) byte { // SRA
			carry := v&0x01 != 0
			res := byte(int8(v) >> 1)
			c.Regs.F = Flags{Z: res == 0, C: carry}
			return res
		},
		func(c *CPU, v byte) byte { // SWAP
			res := v<<4 | v>>4
			c.Regs.F = Flags{Z: res == 0}
			return res
		},
		func(c *CPU, v byte) byte { // SRL
			carry := v&0x01 != 0
			res := v >> 1
			c.Regs.F = Flags{Z: res == 0, C: carry}
			return res
		},
	}

	for group := 0; group < 8; group++ {
		for src := 0; src < 8; src++ {
			op := byte(group*8 + src)
			r := r8s[src]
			fn := shiftOps[group]
			dispatchCB[op] = func(r r8, fn func(*CPU, byte) byte) handler {
				return func(c *CPU, bus *memory.Bus) int {
					v := c.readR8(bus, r)
					c.writeR8(bus, r, fn(c, v))
					if r == r8HLInd {
						return 12
					}
					return 4
				}
			}(r, fn)
		}
	}

	for bit := 0; bit < 8; bit++ {
		for src := 0; src < 8; src++ {
			r := r8s[src]
			bit := byte(bit)

			bitOp := byte(0x40 + int(bit)*8 + src)
			dispatchCB[bitOp] = func(r r8, bit byte) handler {
				return func(c *CPU, bus *memory.Bus) int {
					v := c.readR8(bus, r)
					c.Regs.F.Z = v&(1<<bit) == 0
					c.Regs.F.N = false
					c.Regs.F.H = true
					if r == r8HLInd {
						return 8
					}
					return 4
				}
			}(r, bit)

			resOp := byte(0x80 + int(bit)*8 + src)
			dispatchCB[resOp] = func(r r8, bit byte) handler {
				return func(c *CPU, bus *memory.Bus) int {
					v := c.readR8(bus, r)
					c.writeR8(bus, r, v&^(1<<bit))
					if r == r8HLInd {
						return 12
					}
					return 4
				}
			}(r, bit)

			setOp := byte(0xc0 + int(bit)*8 + src)
			dispatchCB[setOp] = func(r r8, bit byte) handler {
				return func(c *CPU, bus *memory.Bus) int {
					v := c.readR8(bus, r)
					c.writeR8(bus, r, v|(1<<bit))
					if r == r8HLInd {
						return 12
					}
					return 4
				}
			}(r, bit)
		}
	}
}
