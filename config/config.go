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

// Package config carries the knobs a host can set on a Machine. A *Config
// is threaded by pointer through the step loop rather than read from
// process-wide mutable state, so two Machine values in the same process
// (for example a playback instance and a test instance) never interfere
// with each other.
package config

// Config holds everything a host may want to change about how a Machine
// runs, short of the ROM itself.
type Config struct {
	// DebugInstructions causes every retired instruction to be traced
	// through the logger package.
	DebugInstructions bool

	// DrawBackgroundLayer and DrawSpriteLayer gate the corresponding PPU
	// compositing stage, useful for isolating rendering bugs to one layer.
	DrawBackgroundLayer bool
	DrawSpriteLayer     bool

	// RandomizeUninitializedRAM pre-fills WRAM and HRAM with a pseudo-random
	// poison pattern when the console is constructed (Console.Reset does
	// not refill them), rather than zeroing them, so that ROMs
	// relying on zeroed RAM at power-on fail loudly instead of silently.
	RandomizeUninitializedRAM bool
}

// NewConfig returns a Config with the drawing layers enabled, matching what
// real hardware always shows, and debugging/randomisation off.
func NewConfig() *Config {
	return &Config{
		DrawBackgroundLayer: true,
		DrawSpriteLayer:     true,
	}
}
