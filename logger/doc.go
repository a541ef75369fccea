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

// Package logger provides a single process-wide log of short, tagged
// entries. It is not intended for high-volume tracing - the emulation core
// logs sparingly (an unknown opcode; the CLI also logs a failed cartridge
// load and a failed frame present) and the log exists so that a CLI or
// debugger can show the
// operator what happened without the core package depending on fmt.Println
// scattered through hot paths.
package logger
