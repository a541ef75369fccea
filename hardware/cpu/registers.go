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

// Package cpu implements the Sharp LR35902 instruction set: the
// register file, the two 256-entry dispatch tables, HALT/STOP/EI/DI and
// interrupt servicing (spec.md §4.5).
//
// Following the teacher's convention of splitting a packed register
// pair into two addressable halves rather than carrying bitfield
// arithmetic throughout the instruction set (spec.md §9's "AF low
// nibble hygiene" note), flags are held as four independent bools and
// only packed into the F byte when AF itself is read or pushed.
package cpu

// Flags holds the four condition bits as independent bools, avoiding
// the "ghost bit" bugs that bitfield arithmetic on a packed F invites.
type Flags struct {
	Z, N, H, C bool
}

// Pack assembles Flags into the byte layout of the F register: Z in
// bit 7, N in bit 6, H in bit 5, C in bit 4, low nibble always zero.
func (f Flags) Pack() byte {
	var v byte
	if f.Z {
		v |= 0x80
	}
	if f.N {
		v |= 0x40
	}
	if f.H {
		v |= 0x20
	}
	if f.C {
		v |= 0x10
	}
	return v
}

// Unpack decodes a byte in F's layout into Flags, discarding the low
// nibble regardless of its value.
func Unpack(v byte) Flags {
	return Flags{
		Z: v&0x80 != 0,
		N: v&0x40 != 0,
		H: v&0x20 != 0,
		C: v&0x10 != 0,
	}
}

// Registers is the LR35902 register file: four accumulator/general
// register pairs plus the stack pointer and program counter.
type Registers struct {
	A, B, C, D, E, H, L byte
	F                   Flags
	SP, PC              uint16
}

// AF returns the packed AF register pair, with F's low nibble forced
// to zero per spec.md §3.
func (r *Registers) AF() uint16 { return uint16(r.A)<<8 | uint16(r.F.Pack()) }

// SetAF writes both halves of AF, forcing F's low nibble to zero.
func (r *Registers) SetAF(v uint16) {
	r.A = byte(v >> 8)
	r.F = Unpack(byte(v))
}

// BC returns the packed BC register pair.
func (r *Registers) BC() uint16 { return uint16(r.B)<<8 | uint16(r.C) }

// SetBC writes both halves of BC.
func (r *Registers) SetBC(v uint16) { r.B = byte(v >> 8); r.C = byte(v) }

// DE returns the packed DE register pair.
func (r *Registers) DE() uint16 { return uint16(r.D)<<8 | uint16(r.E) }

// SetDE writes both halves of DE.
func (r *Registers) SetDE(v uint16) { r.D = byte(v >> 8); r.E = byte(v) }

// HL returns the packed HL register pair.
func (r *Registers) HL() uint16 { return uint16(r.H)<<8 | uint16(r.L) }

// SetHL writes both halves of HL.
func (r *Registers) SetHL(v uint16) { r.H = byte(v >> 8); r.L = byte(v) }
