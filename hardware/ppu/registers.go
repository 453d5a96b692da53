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

// ReadVRAM reads from the 0x8000-0x9FFF window, through the bank currently
// selected by VBK. During mode 3 this returns 0xFF, matching real hardware
// locking the CPU out of VRAM while the PPU is drawing.
func (p *PPU) ReadVRAM(addr uint16) byte {
	if p.lcdEnabled() && p.mode == ModeDraw {
		return 0xFF
	}
	return p.vram[p.vbk&0x01][addr-0x8000]
}

// WriteVRAM writes to the 0x8000-0x9FFF window; writes during mode 3 are
// silently dropped.
func (p *PPU) WriteVRAM(addr uint16, v byte) {
	if p.lcdEnabled() && p.mode == ModeDraw {
		return
	}
	p.vram[p.vbk&0x01][addr-0x8000] = v
}

// vramBank reads a byte from an explicit bank, bypassing mode gating. Used
// internally by the renderer (which must see tiles/attributes regardless of
// the access-gating rules that apply to the CPU). DMA transfers write
// through the gated WriteVRAM instead.
func (p *PPU) vramBank(bank int, addr uint16) byte {
	return p.vram[bank&0x01][addr-0x8000]
}

// ReadOAM reads from the 0xFE00-0xFE9F window. During modes 2 and 3 this
// returns 0xFF.
func (p *PPU) ReadOAM(addr uint16) byte {
	if p.lcdEnabled() && (p.mode == ModeOAM || p.mode == ModeDraw) {
		return 0xFF
	}
	return p.oam[addr-0xFE00]
}

// WriteOAM writes to the 0xFE00-0xFE9F window; writes during modes 2 and 3
// are silently dropped.
func (p *PPU) WriteOAM(addr uint16, v byte) {
	if p.lcdEnabled() && (p.mode == ModeOAM || p.mode == ModeDraw) {
		return
	}
	p.oam[addr-0xFE00] = v
}

// WriteOAMRaw writes to OAM unconditionally, bypassing mode gating; used by
// the (instantaneous) OAM DMA transfer.
func (p *PPU) WriteOAMRaw(i int, v byte) { p.oam[i] = v }

// ReadReg reads one of the LCD I/O registers at 0xFF40-0xFF4B or, in CGB
// mode, 0xFF4F/0xFF68-0xFF6B.
func (p *PPU) ReadReg(addr uint16) byte {
	switch addr {
	case 0xFF40:
		return p.lcdc
	case 0xFF41:
		return p.stat | 0x80
	case 0xFF42:
		return p.scy
	case 0xFF43:
		return p.scx
	case 0xFF44:
		return p.ly
	case 0xFF45:
		return p.lyc
	case 0xFF47:
		return p.bgp
	case 0xFF48:
		return p.obp0
	case 0xFF49:
		return p.obp1
	case 0xFF4A:
		return p.wy
	case 0xFF4B:
		return p.wx
	case 0xFF4F:
		if !p.cgb {
			return 0xFE
		}
		return p.vbk | 0xFE
	case 0xFF68:
		return p.bgColours.readSpec()
	case 0xFF69:
		return p.bgColours.readData()
	case 0xFF6A:
		return p.objColours.readSpec()
	case 0xFF6B:
		return p.objColours.readData()
	}
	return 0xFF
}

// WriteReg writes one of the LCD I/O registers.
func (p *PPU) WriteReg(addr uint16, v byte) {
	switch addr {
	case 0xFF40:
		p.writeLCDC(v)
	case 0xFF41:
		p.stat = p.stat&0x07 | v&0x78
	case 0xFF42:
		p.scy = v
	case 0xFF43:
		p.scx = v
	case 0xFF44:
		// LY is read-only on real hardware; writes are ignored.
	case 0xFF45:
		p.lyc = v
		p.checkLYC()
	case 0xFF47:
		p.bgp = v
	case 0xFF48:
		p.obp0 = v
	case 0xFF49:
		p.obp1 = v
	case 0xFF4A:
		p.wy = v
	case 0xFF4B:
		p.wx = v
	case 0xFF4F:
		if p.cgb {
			p.vbk = v & 0x01
		}
	case 0xFF68:
		p.bgColours.writeSpec(v)
	case 0xFF69:
		p.bgColours.writeData(v)
	case 0xFF6A:
		p.objColours.writeSpec(v)
	case 0xFF6B:
		p.objColours.writeData(v)
	}
}

// writeLCDC handles a write to LCDC, including the 0->1 LCD-enable
// transition resetting LY and restarting the mode sequencer at mode 2.
func (p *PPU) writeLCDC(v byte) {
	wasEnabled := p.lcdEnabled()
	p.lcdc = v
	if !wasEnabled && p.lcdEnabled() {
		p.ly = 0
		p.cycle = 0
		p.windowLine = 0
		p.mode = ModeOAM
		p.stat = p.stat&0xFC | byte(ModeOAM)
	}
	if !p.lcdEnabled() {
		p.ly = 0
		p.stat = p.stat & 0xFC
	}
}
