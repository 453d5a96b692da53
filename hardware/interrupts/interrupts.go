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

// Package interrupts names the five interrupt sources shared by IF (0xFF0F)
// and IE (0xFFFF), instead of leaving callers to fiddle with raw bit
// literals. The wire-level bit layout (bit 0..4 in the order below) and the
// vector each interrupt services are exact.
package interrupts

// Flag identifies one interrupt source.
type Flag uint8

// Interrupt sources, in priority order (lowest bit wins on simultaneous
// requests).
const (
	VBlank  Flag = 1 << 0
	LCDSTAT Flag = 1 << 1
	Timer   Flag = 1 << 2
	Serial  Flag = 1 << 3
	Joypad  Flag = 1 << 4
)

// All is the set of implemented interrupt bits; the top three bits of
// IF/IE are unused and always read high on IF.
const All = VBlank | LCDSTAT | Timer | Serial | Joypad

// Vector returns the service address for a single interrupt bit.
func Vector(f Flag) uint16 {
	switch f {
	case VBlank:
		return 0x0040
	case LCDSTAT:
		return 0x0048
	case Timer:
		return 0x0050
	case Serial:
		return 0x0058
	case Joypad:
		return 0x0060
	}
	return 0
}

// Pending returns the highest-priority interrupt that is both requested (in
// if_) and enabled (in ie), or 0 if none is pending.
func Pending(ie, if_ byte) Flag {
	set := Flag(ie) & Flag(if_) & All
	if set == 0 {
		return 0
	}
	// lowest set bit wins
	return set & (^set + 1)
}
