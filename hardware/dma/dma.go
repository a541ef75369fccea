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

// Package dma implements the OAM DMA controller: a write to 0xFF46 copies
// 160 bytes into OAM immediately (memory.Bus does the copy itself) and
// locks out the rest of the bus from the CPU for 640 T-cycles (spec.md
// §4.3). The controller's only job is to own that lockout window.
package dma

// lockoutCycles is the number of T-cycles a transfer locks out non-HRAM
// bus access, per spec.md §4.3.
const lockoutCycles = 640

// Controller tracks the OAM DMA lockout window. It satisfies
// memory.Bus's DMA capability interface.
type Controller struct {
	remaining int
}

// NewController returns an idle DMA controller.
func NewController() *Controller {
	return &Controller{}
}

// Running reports whether a transfer's lockout window is still active.
func (c *Controller) Running() bool { return c.remaining > 0 }

// Trigger starts (or restarts) the 640-cycle lockout. The actual 160-byte
// OAM copy already happened synchronously in memory.Bus.Write; this only
// tracks how long the bus stays locked out afterwards.
func (c *Controller) Trigger() { c.remaining = lockoutCycles }

// Step advances the lockout window by the given number of T-cycles,
// called once per CPU step alongside the timer and PPU.
func (c *Controller) Step(cycles int) {
	if c.remaining <= 0 {
		return
	}
	c.remaining -= cycles
	if c.remaining < 0 {
		c.remaining = 0
	}
}
