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

//go:build !statsview
// +build !statsview

package statsview

import "io"

// Launch reports that the dashboard was not compiled in. Present so that
// callers can invoke statsview.Launch unconditionally regardless of which
// way the statsview build tag went.
func Launch(output io.Writer) {
	io.WriteString(output, "stats dashboard not available: rebuild with -tags statsview\n")
}

// Available returns false: this build was not compiled with the
// statsview tag.
func Available() bool {
	return false
}
