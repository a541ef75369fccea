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

// Package timer implements the DIV/TIMA/TMA/TAC timer block described in
// spec.md §4.2: two independent T-cycle accumulators, one driving DIV at a
// fixed 256-cycle rate and the other driving TIMA at a rate selected by
// TAC's clock-select bits.
package timer

import "github.com/hexedcoder/goboy/hardware/memory"

// divPeriod is the fixed T-cycle period of the DIV accumulator.
const divPeriod = 256

// timaPeriods maps TAC's two clock-select bits to the TIMA accumulator's
// T-cycle period.
var timaPeriods = [4]int{1024, 16, 64, 256}

// Timer owns the two accumulators. It satisfies memory.Bus's Timer
// capability interface, and is stepped once per CPU step alongside the PPU
// and DMA controller.
type Timer struct {
	divAcc  int
	timaAcc int
}

// New returns a freshly powered-on Timer.
func New() *Timer {
	return &Timer{}
}

// Reset discards both accumulators' in-flight surplus. Called by
// memory.Bus.Write when software writes to DIV (0xFF04), which always
// resets DIV to 0 regardless of the value written.
func (t *Timer) Reset() {
	t.divAcc = 0
	t.timaAcc = 0
}

// Step advances both accumulators by cycles T-cycles, reading and writing
// DIV/TIMA/TMA/TAC/IF directly through the bus's ungated Peek/Poke - the
// timer is wired straight to those latches on real hardware, not
// arbitrating for them the way the CPU does.
func (t *Timer) Step(bus *memory.Bus, cycles int) {
	t.divAcc += cycles
	for t.divAcc >= divPeriod {
		t.divAcc -= divPeriod
		bus.Poke(memory.DIV, bus.Peek(memory.DIV)+1)
	}

	tac := bus.Peek(memory.TAC)
	if tac&0x4 == 0 {
		return
	}

	period := timaPeriods[tac&0x3]
	t.timaAcc += cycles
	for t.timaAcc >= period {
		t.timaAcc -= period
		t.tick(bus)
	}
}

// tick increments TIMA by one, handling the overflow-and-reload-from-TMA
// behaviour and the timer interrupt request.
func (t *Timer) tick(bus *memory.Bus) {
	v := bus.Peek(memory.TIMA)
	if v == 0xff {
		bus.Poke(memory.TIMA, bus.Peek(memory.TMA))
		bus.RequestInterrupt(memory.IntTimer)
		return
	}
	bus.Poke(memory.TIMA, v+1)
}
