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

// Package controller is the host input collaborator that spec.md §6
// leaves unspecified beyond "eight bools, mutable by host": it reads
// raw keystrokes from the terminal and translates them into
// joypad.Matrix button transitions. It is the only input collaborator in
// this repository: the SDL window does not read the keyboard.
package controller

import (
	"time"

	"github.com/hexedcoder/goboy/curated"
	"github.com/hexedcoder/goboy/hardware/joypad"
	"github.com/pkg/term"
)

// keymap associates a raw byte read from the terminal with a button.
// A terminal in raw mode delivers key-down only, with no key-up event,
// so Terminal synthesizes a release after releaseDelay - short enough
// to feel responsive, long enough that a human's keypress is reliably
// still down for the emulator to see it.
var keymap = map[byte]joypad.Button{
	'w':  joypad.ButtonUp,
	's':  joypad.ButtonDown,
	'a':  joypad.ButtonLeft,
	'd':  joypad.ButtonRight,
	'j':  joypad.ButtonA,
	'k':  joypad.ButtonB,
	'\r': joypad.ButtonStart,
	' ':  joypad.ButtonSelect,
}

const releaseDelay = 100 * time.Millisecond

// Terminal reads raw keystrokes and drives a joypad.Matrix.
type Terminal struct {
	t      *term.Term
	matrix *joypad.Matrix
	stop   chan struct{}
}

// NewTerminal puts the controlling terminal into raw mode and starts
// reading keystrokes in a background goroutine.
func NewTerminal(matrix *joypad.Matrix) (*Terminal, error) {
	t, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, curated.Errorf("controller: %v", err)
	}

	c := &Terminal{t: t, matrix: matrix, stop: make(chan struct{})}
	go c.run()

	return c, nil
}

// run reads one byte at a time until Close is called, translating
// recognised keys into button presses with a synthesized release.
func (c *Terminal) run() {
	buf := make([]byte, 1)
	for {
		select {
		case <-c.stop:
			return
		default:
		}

		n, err := c.t.Read(buf)
		if err != nil || n == 0 {
			continue
		}

		button, ok := keymap[buf[0]]
		if !ok {
			continue
		}

		c.matrix.SetButton(button, true)
		go func(b joypad.Button) {
			time.Sleep(releaseDelay)
			c.matrix.SetButton(b, false)
		}(button)
	}
}

// Close restores the terminal's canonical mode and stops reading.
func (c *Terminal) Close() error {
	close(c.stop)
	return c.t.Restore()
}
