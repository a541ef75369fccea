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

// Package cartridgeloader reads cartridge ROM and boot ROM images from a
// local file or an http(s) URL, ready to be attached to the bus with
// hardware.GameBoy.AttachCartridge() and hardware.GameBoy.AttachBootROM().
//
// There is no bank switching: per spec.md's Non-goals, a cartridge larger
// than 32 KiB has only its first bank loaded.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.NewLoader("roms/tetris.gb")
//	if err := cl.Load(); err != nil {
//		...
//	}
package cartridgeloader
