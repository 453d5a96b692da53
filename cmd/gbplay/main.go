// This file is part of gbcore.
//
// gbcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbcore.  If not, see <https://www.gnu.org/licenses/>.

// Command gbplay is a minimal SDL2 playback frontend for gbcore: it opens a
// window, blits Machine.Framebuffer() every VBlank, and maps keyboard
// scancodes to joypad button presses. It is a reference consumer, not part
// of the core; gbcore itself has no import-time dependency on it.
package main

import (
	"flag"
	"fmt"
	"os"

	"gbcore"
	"gbcore/cartridgeloader"
	"gbcore/config"
	"gbcore/hardware/joypad"
	"gbcore/perf"
)

func main() {
	scale := flag.Int("scale", 3, "window scale factor")
	stats := flag.Bool("stats", false, "launch the runtime-stats dashboard, if this build includes it")
	targetCyclesPerFrame := flag.Int("cycles-per-frame", 70224, "T-cycles advanced per rendered frame")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gbplay [flags] rom-path")
		os.Exit(1)
	}
	romPath := flag.Arg(0)

	if *stats {
		if perf.Available() {
			perf.Launch(os.Stdout)
		} else {
			fmt.Fprintln(os.Stderr, "gbplay: built without the statsview tag, -stats ignored")
		}
	}

	data, err := os.ReadFile(romPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gbplay:", err)
		os.Exit(1)
	}

	m := gbcore.NewMachine(config.NewConfig())
	loader := cartridgeloader.NewLoader(romPath, data)
	if err := m.LoadROM(loader); err != nil {
		fmt.Fprintln(os.Stderr, "gbplay:", err)
		os.Exit(1)
	}

	scr, err := newScreen(m, *scale)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gbplay:", err)
		os.Exit(1)
	}
	defer scr.destroy()

	scr.run(*targetCyclesPerFrame)
}

// keymap is the default keyboard layout: arrow keys for the D-pad, Z/X for
// B/A, Return/RShift for Start/Select.
var keymap = map[string]joypad.Button{
	"Up":          joypad.Up,
	"Down":        joypad.Down,
	"Left":        joypad.Left,
	"Right":       joypad.Right,
	"Z":           joypad.B,
	"X":           joypad.A,
	"Return":      joypad.Start,
	"Right Shift": joypad.Select,
}
