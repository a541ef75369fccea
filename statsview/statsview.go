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

//go:build statsview
// +build statsview

package statsview

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/hexedcoder/goboy/performance/stats"
)

const Address = "localhost:12600"
const url = "/debug/statsview"

// FramePacingAddress serves the tick loop's published stats.Snapshot as
// JSON, alongside the Go-runtime dashboard served on Address.
const FramePacingAddress = "localhost:12601"
const framePacingURL = "/debug/goboy/framepacing"

// Launch starts the Go-runtime statsview dashboard and a small HTTP
// server publishing the emulator's own frame-pacing counters (spec.md §7),
// both on their own goroutines.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		mgr.Start()
	}()

	go serveFramePacing()

	output.Write([]byte(fmt.Sprintf("stats server available at %s%s\n", Address, url)))
	output.Write([]byte(fmt.Sprintf("frame pacing counters available at %s%s\n", FramePacingAddress, framePacingURL)))
}

func serveFramePacing() {
	mux := http.NewServeMux()
	mux.HandleFunc(framePacingURL, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats.Current())
	})
	_ = http.ListenAndServe(FramePacingAddress, mux)
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
