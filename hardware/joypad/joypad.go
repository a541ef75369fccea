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

// Package joypad implements the JOYP (0xFF00) button matrix: eight
// buttons multiplexed two-at-a-time onto four bus lines, selected by bits
// 4 and 5 of JOYP, with all unpressed/unselected lines reading high
// (spec.md §6.3 and the DMG's active-low button wiring).
package joypad

import "github.com/hexedcoder/goboy/hardware/memory"

// Button identifies one of the eight physical buttons.
type Button int

const (
	ButtonRight Button = iota
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonA
	ButtonB
	ButtonSelect
	ButtonStart
)

// bitPosition gives each button's position within its nibble of the
// button matrix. Direction and action buttons share the
// same four bit positions, selected by which nibble JOYP exposes.
var bitPosition = [8]byte{
	ButtonRight: 0, ButtonLeft: 1, ButtonUp: 2, ButtonDown: 3,
	ButtonA: 0, ButtonB: 1, ButtonSelect: 2, ButtonStart: 3,
}

// Matrix is the button-state collaborator wired into memory.Bus's
// Joypad capability interface.
type Matrix struct {
	// directions and actions hold pressed state per bit position, one bit
	// per button, set means pressed.
	directions byte
	actions    byte

	// selectDirections/selectActions mirror JOYP bits 4/5 as last written
	// by software; both clear means both nibbles are multiplexed onto the
	// low nibble simultaneously, which real software never relies on.
	selectDirections bool
	selectActions    bool

	bus *memory.Bus
}

// New returns a Matrix with no buttons held and both select lines
// inactive (matching JOYP's 0xFF power-on value).
func New(bus *memory.Bus) *Matrix {
	return &Matrix{bus: bus}
}

// SetButton updates a button's held state. A press edge (released to
// pressed) raises a joypad interrupt whether or not JOYP currently
// selects the button's line.
func (m *Matrix) SetButton(b Button, pressed bool) {
	bit := byte(1) << bitPosition[b]

	isDirection := b <= ButtonDown
	var line *byte
	if isDirection {
		line = &m.directions
	} else {
		line = &m.actions
	}

	was := *line&bit != 0
	if pressed {
		*line |= bit
	} else {
		*line &^= bit
	}

	if pressed && !was && m.bus != nil {
		m.bus.RequestInterrupt(memory.IntJoypad)
	}
}

// Read composes the current JOYP value: bits 4/5 reflect the select
// lines as last written, bits 0-3 are the active-low state of whichever
// nibble (or both) is selected, and bits 6/7 always read high.
func (m *Matrix) Read() byte {
	v := byte(0xc0)

	if !m.selectDirections {
		v |= 0x10
	}
	if !m.selectActions {
		v |= 0x20
	}

	var pressed byte
	if m.selectDirections {
		pressed |= m.directions
	}
	if m.selectActions {
		pressed |= m.actions
	}

	return v | (^pressed & 0x0f)
}

// Write updates the select lines from bits 4/5 of the value written to
// JOYP. Bits 0-3 are read-only from software's point of view.
func (m *Matrix) Write(v byte) {
	m.selectDirections = v&0x10 == 0
	m.selectActions = v&0x20 == 0
}
