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

// Package hardware is the aggregate that owns every subsystem and
// drives the tick loop from spec.md §4.6. Following the teacher's
// hardware.VCS convention, GameBoy holds the bus and every component
// by value/pointer but never hands a component a back-pointer to
// itself; components that need the bus receive it as a Step parameter.
package hardware

import (
	"github.com/hexedcoder/goboy/hardware/cpu"
	"github.com/hexedcoder/goboy/hardware/dma"
	"github.com/hexedcoder/goboy/hardware/joypad"
	"github.com/hexedcoder/goboy/hardware/memory"
	"github.com/hexedcoder/goboy/hardware/ppu"
	"github.com/hexedcoder/goboy/hardware/timer"
)

// CyclesPerFrame is the nominal T-cycle length of one video frame:
// 154 lines of 456 T-cycles, which at 4194304 Hz gives about 59.7
// frames per second (spec.md §4.6).
const CyclesPerFrame = 70224

// GameBoy is the complete emulated machine.
type GameBoy struct {
	Bus    *memory.Bus
	CPU    *cpu.CPU
	PPU    *ppu.PPU
	Timer  *timer.Timer
	DMA    *dma.Controller
	Joypad *joypad.Matrix

	// SerialOut receives bytes emitted by the serial debug tap
	// (spec.md §6). May be nil to discard them.
	SerialOut func(byte)
}

// New assembles a powered-on GameBoy. pixelOut may be nil for headless
// use; serialOut may be nil to discard the debug tap's output.
func New(pixelOut ppu.PixelOut, serialOut func(byte)) *GameBoy {
	bus := memory.NewBus()
	gb := &GameBoy{
		Bus:       bus,
		CPU:       cpu.New(),
		PPU:       ppu.New(pixelOut),
		Timer:     timer.New(),
		DMA:       dma.NewController(),
		Joypad:    joypad.New(bus),
		SerialOut: serialOut,
	}

	bus.AttachDMA(gb.DMA)
	bus.AttachTimer(gb.Timer)
	bus.AttachJoypad(gb.Joypad)

	return gb
}

// AttachCartridge loads cartridge ROM bytes at 0x0000.
func (gb *GameBoy) AttachCartridge(data []byte) {
	gb.Bus.LoadCartridge(data)
}

// AttachBootROM loads a 256-byte boot ROM image, shadowing cartridge
// ROM at 0x0000-0x00FF until software disables it.
func (gb *GameBoy) AttachBootROM(data []byte) {
	gb.Bus.LoadBootROM(data)
}

// SetTestLogMode turns on the debug LY override used by acceptance
// test ROMs (spec.md §4.1 rule 2).
func (gb *GameBoy) SetTestLogMode(on bool) {
	gb.Bus.SetTestLogMode(on)
}

// Step advances the machine by exactly one CPU instruction (or one
// halted no-op), stepping PPU, timer and DMA by the same number of
// T-cycles and running the serial debug tap, per spec.md §4.6 and §5's
// ordering guarantee that side effects become visible only at the next
// instruction boundary.
func (gb *GameBoy) Step() int {
	c := gb.CPU.Step(gb.Bus)

	gb.PPU.Step(gb.Bus, c)
	gb.Timer.Step(gb.Bus, c)
	gb.DMA.Step(c)

	cpu.SerialTap(gb.Bus, gb.SerialOut)

	return c
}

// RunForFrameCount advances the machine for exactly n video frames, or
// until Running becomes false, returning early in the latter case.
// Mirrors the teacher's RunForFrameCount helper used by digest-based
// regression tests.
func (gb *GameBoy) RunForFrameCount(n int) {
	for f := 0; f < n && gb.CPU.Running; f++ {
		frameCycles := 0
		for frameCycles < CyclesPerFrame && gb.CPU.Running {
			frameCycles += gb.Step()
		}
	}
}

// Run drains frames forever until Running is cleared (by an unknown
// opcode, per spec.md §7, or by the host calling Stop). present is
// called once per drained frame so the host can blit a completed
// framebuffer and pace to wall-clock time; it may be nil.
func (gb *GameBoy) Run(present func()) {
	for gb.CPU.Running {
		frameCycles := 0
		for frameCycles < CyclesPerFrame && gb.CPU.Running {
			frameCycles += gb.Step()
		}
		if present != nil {
			present()
		}
	}
}

// Stop requests that Run/RunForFrameCount return once the current
// instruction completes, per spec.md §5's cancellation model; Run still
// calls present once for the partial frame before it returns.
func (gb *GameBoy) Stop() {
	gb.CPU.Running = false
}
