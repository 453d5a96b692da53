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

package ppu

import (
	"testing"

	"gbcore/config"
	"gbcore/hardware/interrupts"
)

type fakeIRQ struct{ got []interrupts.Flag }

func (f *fakeIRQ) Request(flag interrupts.Flag) { f.got = append(f.got, flag) }

func (f *fakeIRQ) has(flag interrupts.Flag) bool {
	for _, g := range f.got {
		if g == flag {
			return true
		}
	}
	return false
}

type countingHBlank struct{ count int }

func (c *countingHBlank) NotifyHBlank() { c.count++ }

func newTestPPU() (*PPU, *fakeIRQ, *countingHBlank) {
	irq := &fakeIRQ{}
	hb := &countingHBlank{}
	p := New(irq, hb, config.NewConfig(), false)
	return p, irq, hb
}

func TestModeSequencePerLine(t *testing.T) {
	p, _, _ := newTestPPU()

	if p.mode != ModeOAM {
		t.Fatalf("initial mode = %d, want OAM", p.mode)
	}
	p.Tick(cyclesOAM - 1)
	if p.mode != ModeOAM {
		t.Fatalf("mode at cycle %d = %d, want OAM", cyclesOAM-1, p.mode)
	}
	p.Tick(1)
	if p.mode != ModeDraw {
		t.Fatalf("mode at cycle %d = %d, want Draw", cyclesOAM, p.mode)
	}
	p.Tick(cyclesDraw)
	if p.mode != ModeHBlank {
		t.Fatalf("mode after draw window = %d, want HBlank", p.mode)
	}
}

func TestFrameRaisesOneVBlankInterrupt(t *testing.T) {
	p, irq, _ := newTestPPU()
	for i := 0; i < cyclesLine*totalLines; i++ {
		p.Tick(1)
	}
	vblanks := 0
	for _, f := range irq.got {
		if f == interrupts.VBlank {
			vblanks++
		}
	}
	if vblanks != 1 {
		t.Fatalf("VBlank interrupt requests over one full frame = %d, want 1", vblanks)
	}
	if p.ly != 0 {
		t.Fatalf("LY after one full frame = %d, want wrap to 0", p.ly)
	}
}

func TestHBlankDMAPumpedOncePerLine(t *testing.T) {
	p, _, hb := newTestPPU()
	p.Tick(cyclesLine * 5)
	if hb.count != 5 {
		t.Fatalf("NotifyHBlank called %d times, want 5", hb.count)
	}
}

func TestLYCCoincidence(t *testing.T) {
	p, irq, _ := newTestPPU()
	p.WriteReg(0xFF45, 1) // LYC = 1
	p.WriteReg(0xFF41, p.ReadReg(0xFF41)|0x40) // enable LYC STAT interrupt
	p.Tick(cyclesLine)
	if p.ReadReg(0xFF44) != 1 {
		t.Fatalf("LY = %d, want 1", p.ReadReg(0xFF44))
	}
	if p.ReadReg(0xFF41)&0x04 == 0 {
		t.Fatal("expected coincidence flag set")
	}
	if !irq.has(interrupts.LCDSTAT) {
		t.Fatal("expected a STAT interrupt on LYC match")
	}
}

func TestVRAMGatedDuringDraw(t *testing.T) {
	p, _, _ := newTestPPU()
	p.WriteVRAM(0x8000, 0x42) // mode 2, writable
	p.Tick(cyclesOAM)         // now mode 3 (draw)
	if got := p.ReadVRAM(0x8000); got != 0xFF {
		t.Fatalf("VRAM read during mode 3 = %#02x, want 0xFF", got)
	}
	p.WriteVRAM(0x8000, 0x99) // should be dropped
	p.Tick(cyclesDraw)        // now mode 0 (hblank)
	if got := p.ReadVRAM(0x8000); got != 0x42 {
		t.Fatalf("VRAM after gated write = %#02x, want unchanged 0x42", got)
	}
}

func TestLCDDisableResetsLY(t *testing.T) {
	p, _, _ := newTestPPU()
	p.Tick(cyclesLine * 3)
	if p.ly == 0 {
		t.Fatal("expected LY to have advanced")
	}
	p.WriteReg(0xFF40, p.lcdc&^0x80) // disable LCD
	if p.ly != 0 {
		t.Fatalf("LY after LCD disable = %d, want 0", p.ly)
	}
	p.WriteReg(0xFF40, p.lcdc|0x80) // re-enable
	if p.mode != ModeOAM {
		t.Fatalf("mode after LCD re-enable = %d, want OAM", p.mode)
	}
}
