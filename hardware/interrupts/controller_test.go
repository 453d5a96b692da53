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

package interrupts

import "testing"

func TestPendingPriorityOrder(t *testing.T) {
	c := NewController()
	c.WriteIE(byte(All))
	c.Request(Timer)
	c.Request(VBlank)

	if got := c.Pending(); got != VBlank {
		t.Fatalf("Pending = %d, want VBlank (lowest bit wins)", got)
	}
}

func TestClearRemovesOnlyThatBit(t *testing.T) {
	c := NewController()
	c.WriteIE(byte(All))
	c.Request(VBlank)
	c.Request(Timer)
	c.Clear(VBlank)

	if got := c.Pending(); got != Timer {
		t.Fatalf("Pending = %d, want Timer after clearing VBlank", got)
	}
}

func TestReadIFUnusedBitsReadHigh(t *testing.T) {
	c := NewController()
	if got := c.ReadIF(); got&0xE0 != 0xE0 {
		t.Fatalf("ReadIF = %#02x, want top 3 bits set", got)
	}
}

func TestAnyIgnoresIME(t *testing.T) {
	c := NewController()
	if c.Any() {
		t.Fatal("expected no pending interrupt on a fresh controller")
	}
	c.WriteIE(byte(Joypad))
	c.Request(Joypad)
	if !c.Any() {
		t.Fatal("expected Any to report true once IE and IF agree")
	}
}
