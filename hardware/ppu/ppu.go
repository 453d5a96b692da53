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

// Package ppu renders the 160x144 LCD. It has no clock of its own; the CPU
// (via the owning Console) drives it forward with Tick, exactly as it
// drives the timer and the H-Blank DMA engine.
package ppu

import (
	"gbcore/config"
	"gbcore/hardware/interrupts"
)

const (
	ScreenWidth  = 160
	ScreenHeight = 144

	cyclesOAM    = 80
	cyclesDraw   = 172
	cyclesHBlank = 204
	cyclesLine   = cyclesOAM + cyclesDraw + cyclesHBlank

	totalLines   = 154
	vblankStartY = 144
)

// Mode is the PPU's current scanline phase, mirrored in STAT bits 0-1.
type Mode byte

const (
	ModeHBlank Mode = 0
	ModeVBlank Mode = 1
	ModeOAM    Mode = 2
	ModeDraw   Mode = 3
)

// HBlankNotifier is implemented by the owning Console so the PPU can pump
// one H-Blank DMA block per H-Blank entry without holding a pointer to the
// concrete DMA engine.
type HBlankNotifier interface {
	NotifyHBlank()
}

// PPU owns VRAM, OAM, and every LCD-related register. The MMU routes the
// 0x8000-0x9FFF and 0xFE00-0xFE9F windows, and the 0xFF40-0xFF4B/0xFF68-0xFF6B
// I/O registers, through it directly.
type PPU struct {
	irq    interrupts.Requester
	hblank HBlankNotifier
	cfg    *config.Config
	cgb    bool

	vram [2][0x2000]byte
	oam  [0xA0]byte
	vbk  byte

	lcdc, stat                byte
	scy, scx, ly, lyc, wy, wx byte
	bgp, obp0, obp1           byte

	bgColours  cgbColourRAM
	objColours cgbColourRAM

	mode       Mode
	cycle      int
	windowLine int

	front, back []rgb
}

// New returns a PPU wired to irq for interrupt requests and hblank for
// H-Blank DMA pumping, operating in CGB register-space mode when cgb is
// true (affects VBK/BCPS/OCPS visibility, not rendering correctness).
func New(irq interrupts.Requester, hblank HBlankNotifier, cfg *config.Config, cgb bool) *PPU {
	p := &PPU{irq: irq, hblank: hblank, cfg: cfg, cgb: cgb}
	p.back = make([]rgb, ScreenWidth*ScreenHeight)
	p.front = make([]rgb, ScreenWidth*ScreenHeight)
	p.Reset()
	return p
}

// Reset returns the PPU to its post-power-on state.
func (p *PPU) Reset() {
	p.lcdc = 0x91
	p.stat = 0x85
	p.scy, p.scx = 0, 0
	p.ly, p.lyc = 0, 0
	p.wy, p.wx = 0, 0
	p.bgp, p.obp0, p.obp1 = 0xFC, 0xFF, 0xFF
	p.vbk = 0
	p.mode = ModeOAM
	p.cycle = 0
	p.windowLine = 0
	for i := range p.back {
		p.back[i] = rgb{}
	}
}

// lcdEnabled reports whether LCDC bit 7 (LCD/PPU enable) is set.
func (p *PPU) lcdEnabled() bool { return p.lcdc&0x80 != 0 }

// Tick advances the PPU's mode/line sequencer by delta T-cycles at 1x
// speed (the PPU is never handed a double-speed-halved delta; it always
// observes real time, per this core's double-speed policy). It steps to
// the next mode/line boundary at a time so that callers ticking by large
// deltas never skip the mode3->mode0 render-and-DMA-pump boundary.
func (p *PPU) Tick(delta int) {
	if !p.lcdEnabled() {
		return
	}
	for delta > 0 {
		next := p.nextBoundary()
		step := next - p.cycle
		if step > delta {
			step = delta
		}
		p.cycle += step
		delta -= step
		if p.cycle >= next {
			p.onBoundary(next)
		}
	}
}

// nextBoundary returns the line-relative cycle of the next mode or
// line-end transition, given the current line and cycle position.
func (p *PPU) nextBoundary() int {
	if p.ly >= vblankStartY {
		return cyclesLine
	}
	switch {
	case p.cycle < cyclesOAM:
		return cyclesOAM
	case p.cycle < cyclesOAM+cyclesDraw:
		return cyclesOAM + cyclesDraw
	default:
		return cyclesLine
	}
}

// onBoundary fires the side effects owned by the boundary just reached:
// entering Draw, entering HBlank (rendering the line and pumping one
// H-Blank DMA block), or ending the line (LY++, possibly VBlank entry).
func (p *PPU) onBoundary(cycle int) {
	switch {
	case cycle == cyclesOAM && p.ly < vblankStartY:
		p.setMode(ModeDraw)
	case cycle == cyclesOAM+cyclesDraw && p.ly < vblankStartY:
		p.renderScanline(p.ly)
		// enter HBlank before pumping DMA, so the block's VRAM writes are
		// not dropped by the mode-3 access gate.
		p.setMode(ModeHBlank)
		if p.hblank != nil {
			p.hblank.NotifyHBlank()
		}
	case cycle == cyclesLine:
		p.cycle = 0
		p.ly++
		if p.ly == vblankStartY {
			p.enterVBlank()
		} else if p.ly >= totalLines {
			p.ly = 0
			p.windowLine = 0
		}
		if p.ly < vblankStartY {
			p.setMode(ModeOAM)
		} else {
			p.setMode(ModeVBlank)
		}
		p.checkLYC()
	}
}

func (p *PPU) setMode(m Mode) {
	if p.mode == m {
		return
	}
	p.mode = m
	p.stat = p.stat&0xFC | byte(m)

	var statBit byte
	switch m {
	case ModeHBlank:
		statBit = 0x08
	case ModeVBlank:
		statBit = 0x10
	case ModeOAM:
		statBit = 0x20
	case ModeDraw:
		return
	}
	if p.stat&statBit != 0 {
		p.irq.Request(interrupts.LCDSTAT)
	}
}

// enterVBlank requests the VBlank interrupt and publishes the completed
// frame; the VBlank STAT source is requested separately by the subsequent
// setMode(ModeVBlank) call.
func (p *PPU) enterVBlank() {
	p.irq.Request(interrupts.VBlank)
	p.front, p.back = p.back, p.front
}

func (p *PPU) checkLYC() {
	if p.ly == p.lyc {
		p.stat |= 0x04
		if p.stat&0x40 != 0 {
			p.irq.Request(interrupts.LCDSTAT)
		}
	} else {
		p.stat &^= 0x04
	}
}

// Framebuffer returns the most recently completed frame as packed RGB
// triples, row-major, ScreenWidth*ScreenHeight*3 bytes long. The returned
// slice is a fresh copy; callers may retain it freely.
func (p *PPU) Framebuffer() []byte {
	out := make([]byte, len(p.front)*3)
	for i, c := range p.front {
		out[i*3] = c.r
		out[i*3+1] = c.g
		out[i*3+2] = c.b
	}
	return out
}
