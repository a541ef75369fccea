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

// Package stats publishes the tick loop's frame-pacing counters for the
// optional statsview dashboard to read, the way logger publishes its most
// recent timestamp via atomic.Value: the tick loop is the only writer, any
// number of readers can load a consistent snapshot without locking it.
package stats

import "sync/atomic"

// Snapshot is one frame's pacing counters, published once per video frame
// by the host's present callback.
type Snapshot struct {
	Frame int
	FPS   float64
}

var current atomic.Value

func init() {
	current.Store(Snapshot{})
}

// Publish replaces the current snapshot. Called once per frame by the
// host's tick loop.
func Publish(s Snapshot) {
	current.Store(s)
}

// Current returns the most recently published snapshot.
func Current() Snapshot {
	return current.Load().(Snapshot)
}
