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

// bgPixel is one resolved background or window pixel, before sprite
// compositing.
type bgPixel struct {
	colour   byte // 0-3, index into BGP or the CGB background palette
	palette  byte // CGB palette number, 0-7 (always 0 in DMG mode)
	priority bool // CGB "BG-over-OBJ" attribute bit
}

func (p *PPU) bgTileMapBase() uint16 {
	if p.lcdc&0x08 != 0 {
		return 0x9C00
	}
	return 0x9800
}

func (p *PPU) windowTileMapBase() uint16 {
	if p.lcdc&0x40 != 0 {
		return 0x9C00
	}
	return 0x9800
}

// tileDataAddr resolves a tile index to its first byte's address, honouring
// LCDC bit4's unsigned (0x8000-based) vs signed (0x8800-based, indices
// -128..127 centred on 0x9000) addressing modes.
func (p *PPU) tileDataAddr(index byte) uint16 {
	if p.lcdc&0x10 != 0 {
		return 0x8000 + uint16(index)*16
	}
	return uint16(0x9000 + int(int8(index))*16)
}

// fetchTileRow reads the two bitplane bytes for one row of a tile, applying
// a CGB vertical flip if requested.
func (p *PPU) fetchTileRow(tileAddr uint16, bank int, row byte, yflip bool) (lo, hi byte) {
	if yflip {
		row = 7 - row
	}
	base := tileAddr + uint16(row)*2
	return p.vramBank(bank, base), p.vramBank(bank, base+1)
}

// colourAt extracts the 2-bit colour number for pixel column bit (0 = the
// leftmost pixel of the tile) from a fetched row, honouring horizontal flip.
func colourAt(lo, hi byte, bit byte, xflip bool) byte {
	if !xflip {
		bit = 7 - bit
	}
	c := (hi>>bit)&0x01<<1 | (lo>>bit)&0x01
	return c
}

// bgWindowPixel resolves the background-or-window pixel at screen column x,
// scanline y.
func (p *PPU) bgWindowPixel(x, y byte) bgPixel {
	if p.lcdc&0x01 == 0 && !p.cgb {
		return bgPixel{}
	}

	useWindow := p.lcdc&0x20 != 0 && y >= p.wy && int(x) >= int(p.wx)-7
	var mapBase uint16
	var tileX, tileY, fineX, fineY byte

	if useWindow {
		mapBase = p.windowTileMapBase()
		wx := int(x) - (int(p.wx) - 7)
		tileX, fineX = byte(wx/8), byte(wx%8)
		tileY, fineY = byte(p.windowLine/8), byte(p.windowLine%8)
	} else {
		mapBase = p.bgTileMapBase()
		sx := x + p.scx
		sy := y + p.scy
		tileX, fineX = sx/8, sx%8
		tileY, fineY = sy/8, sy%8
	}

	mapOffset := uint16(tileY)*32 + uint16(tileX)
	tileIndex := p.vramBank(0, mapBase+mapOffset)

	var attr byte
	if p.cgb {
		attr = p.vramBank(1, mapBase+mapOffset)
	}
	bank := int(attr>>3) & 0x01
	xflip := attr&0x20 != 0
	yflip := attr&0x40 != 0
	priority := attr&0x80 != 0
	palette := attr & 0x07

	lo, hi := p.fetchTileRow(p.tileDataAddr(tileIndex), bank, fineY, yflip)
	colour := colourAt(lo, hi, fineX, xflip)

	return bgPixel{colour: colour, palette: palette, priority: priority}
}
