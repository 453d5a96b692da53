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

package timer

import (
	"testing"

	"gbcore/hardware/clocks"
)

func TestDIVIncrementsEvery256Cycles(t *testing.T) {
	tm := New()
	tm.Tick(255)
	if tm.DIV != 0 {
		t.Fatalf("DIV = %d, want 0", tm.DIV)
	}
	tm.Tick(1)
	if tm.DIV != 1 {
		t.Fatalf("DIV = %d, want 1", tm.DIV)
	}
}

func TestWriteDIVClearsToZero(t *testing.T) {
	tm := New()
	tm.Tick(1000)
	if tm.DIV == 0 {
		t.Fatal("expected DIV to have advanced")
	}
	tm.WriteDIV()
	if tm.DIV != 0 {
		t.Fatalf("DIV = %d after write, want 0", tm.DIV)
	}
}

func TestTIMADisabledByDefault(t *testing.T) {
	tm := New()
	tm.Tick(clocks.Frequency)
	if tm.TIMA != 0 {
		t.Fatalf("TIMA = %d, want 0 while TAC bit 2 is clear", tm.TIMA)
	}
}

func TestTIMAOverflowReloadsAndSignals(t *testing.T) {
	tm := New()
	tm.TAC = 0x05 // enabled, 262144 Hz (period 16 cycles)
	tm.TMA = 0xFE
	tm.TIMA = 0xFE

	period := clocks.Frequency / 262144
	var overflowed bool
	for i := 0; i < 2; i++ {
		if tm.Tick(period) {
			overflowed = true
		}
	}

	if !overflowed {
		t.Fatal("expected TIMA to overflow")
	}
	if tm.TIMA != 0xFE {
		t.Fatalf("TIMA = %#02x after overflow, want reload to TMA (0xFE)", tm.TIMA)
	}
}
