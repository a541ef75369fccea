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

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hexedcoder/goboy/cartridgeloader"
	"github.com/hexedcoder/goboy/config"
	"github.com/hexedcoder/goboy/controller"
	"github.com/hexedcoder/goboy/diagnostics"
	"github.com/hexedcoder/goboy/hardware"
	"github.com/hexedcoder/goboy/logger"
	"github.com/hexedcoder/goboy/performance/limiter"
	"github.com/hexedcoder/goboy/performance/stats"
	"github.com/hexedcoder/goboy/statsview"
	"github.com/hexedcoder/goboy/television"
)

const framesPerSecond = 60

func main() {
	os.Exit(run())
}

func run() int {
	bootPath := flag.String("boot", "", "path to a 256-byte boot ROM image")
	palette := flag.String("palette", config.PaletteGreen, "palette: green or grey")
	testLog := flag.Bool("testlog", false, "enable the LY debug override used by acceptance test ROMs")
	headless := flag.Bool("headless", false, "run without an SDL window")
	useTerm := flag.Bool("term", false, "read controls from the terminal")
	dumpState := flag.Bool("dump-state", false, "dump a graphviz rendering of machine state to stderr on exit")
	frames := flag.Int("frames", 0, "run for exactly this many frames, then exit (0 means run forever)")
	showStats := flag.Bool("stats", false, "serve a live frame-pacing dashboard (requires building with -tags statsview)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: goboy [flags] <rom path>")
		return 1
	}

	cl := cartridgeloader.NewLoader(flag.Arg(0))
	if err := cl.Load(); err != nil {
		logger.Logf("main", "failed to load cartridge: %v", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cfg := config.Default()
	cfg.Palette = *palette
	cfg.TestLogMode = *testLog

	var screen *television.SDLScreen
	var pixelOut func(x, y int, shade byte)

	if !*headless {
		var err error
		screen, err = television.NewSDLScreen(television.LookupPalette(cfg.Palette), 4)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer screen.Close()
		pixelOut = screen.PixelOut
	}

	serialOut := func(b byte) { fmt.Fprintf(os.Stdout, "%c", b) }

	gb := hardware.New(pixelOut, serialOut)
	gb.AttachCartridge(cl.Data)
	gb.SetTestLogMode(cfg.TestLogMode)

	if *bootPath != "" {
		bl := cartridgeloader.BootLoader{Filename: *bootPath}
		if err := bl.Load(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		gb.AttachBootROM(bl.Data)
	}

	if *useTerm {
		term, err := controller.NewTerminal(gb.Joypad)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer term.Close()
	}

	if *dumpState {
		defer diagnostics.DumpState(os.Stderr, gb)
	}

	if *showStats {
		if !statsview.Available() {
			fmt.Fprintln(os.Stderr, "stats dashboard requested but this binary was not built with -tags statsview")
		} else {
			statsview.Launch(os.Stdout)
		}
	}

	if *frames > 0 {
		gb.RunForFrameCount(*frames)
		return 0
	}

	fps, err := limiter.NewFPSLimiter(framesPerSecond)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	frameCount := 0
	lastFrame := time.Now()

	gb.Run(func() {
		if screen != nil {
			if err := screen.Present(); err != nil {
				logger.Logf("main", "present failed: %v", err)
			}
		}
		fps.Wait()

		frameCount++
		now := time.Now()
		elapsed := now.Sub(lastFrame)
		lastFrame = now

		var fpsActual float64
		if elapsed > 0 {
			fpsActual = float64(time.Second) / float64(elapsed)
		}
		stats.Publish(stats.Snapshot{Frame: frameCount, FPS: fpsActual})
	})

	return 0
}
