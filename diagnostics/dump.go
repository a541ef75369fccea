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

// Package diagnostics dumps a graphviz rendering of the live machine
// state graph - registers, bus, PPU and timer all reachable from one
// *hardware.GameBoy pointer - for the -dump-state CLI flag. Intended
// for debugging a stuck ROM, not for regular use.
package diagnostics

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// DumpState writes a graphviz dot graph of v (normally a
// *hardware.GameBoy) to output. The caller is responsible for
// rendering the dot output with a tool such as `dot -Tpng`.
func DumpState(output io.Writer, v interface{}) {
	memviz.Map(output, v)
}
