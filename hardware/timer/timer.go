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

// Package timer implements the DIV/TIMA/TMA/TAC counters. It has no clock of
// its own; the CPU calls Tick with however many T-cycles just elapsed on
// every memory access, exactly as it drives the PPU and DMA engine.
package timer

import "gbcore/hardware/clocks"

// tacFrequencies are the four TIMA increment rates TAC bits 1..0 select, in
// Hz, matched against clocks.Frequency to derive a T-cycle period.
var tacFrequencies = clocks.TIMAFrequencies

// Timer holds the DIV/TIMA/TMA/TAC registers and their internal
// sub-increment counters.
type Timer struct {
	DIV  byte
	TIMA byte
	TMA  byte
	TAC  byte

	divCycle   int
	timerCycle int
}

// New returns a Timer in its post-reset state.
func New() *Timer {
	return &Timer{}
}

// Reset clears the timer to its power-on state.
func (t *Timer) Reset() {
	*t = Timer{}
}

// WriteDIV handles a write to 0xFF04: any value written resets DIV (and its
// internal sub-counter) to zero.
func (t *Timer) WriteDIV() {
	t.DIV = 0
	t.divCycle = 0
}

// period returns the T-cycle period, at 1x speed, between TIMA increments
// for the frequency currently selected by TAC bits 1..0.
func (t *Timer) period() int {
	return clocks.Frequency / tacFrequencies[t.TAC&0x03]
}

// enabled reports whether TAC bit 2 (timer enable) is set.
func (t *Timer) enabled() bool {
	return t.TAC&0x04 != 0
}

// Tick advances DIV unconditionally and TIMA when enabled, by delta T-cycles
// (already halved for double-speed mode by the caller, per this core's
// timer/PPU tick-rate policy). It reports whether TIMA just overflowed, so
// the caller can set IF bit 2.
func (t *Timer) Tick(delta int) (overflowed bool) {
	t.divCycle += delta
	for t.divCycle >= clocks.DIVCycles {
		t.divCycle -= clocks.DIVCycles
		t.DIV++
	}

	if !t.enabled() {
		return false
	}

	period := t.period()
	t.timerCycle += delta
	for t.timerCycle >= period {
		t.timerCycle -= period
		t.TIMA++
		if t.TIMA == 0 {
			t.TIMA = t.TMA
			overflowed = true
		}
	}
	return overflowed
}
