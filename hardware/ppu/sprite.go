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

import "sort"

const maxSpritesPerLine = 10

// oamEntry is one decoded 4-byte OAM record. y and x are already shifted by
// the OAM-to-screen offset (-16, -8) and kept signed, since a sprite
// clipped at the top or left edge of the screen has a raw OAM coordinate
// in [1,15] / [1,7] that would wrap were it stored back into a byte.
type oamEntry struct {
	index int
	y, x  int
	tile  byte
	attr  byte
}

func (e oamEntry) yFlip() bool       { return e.attr&0x40 != 0 }
func (e oamEntry) xFlip() bool       { return e.attr&0x20 != 0 }
func (e oamEntry) bgPriority() bool  { return e.attr&0x80 != 0 }
func (e oamEntry) dmgPalette() byte  { return (e.attr >> 4) & 0x01 }
func (e oamEntry) cgbBank() int      { return int(e.attr>>3) & 0x01 }
func (e oamEntry) cgbPalette() byte  { return e.attr & 0x07 }

// spriteHeight returns 8 or 16 depending on LCDC bit 2.
func (p *PPU) spriteHeight() byte {
	if p.lcdc&0x04 != 0 {
		return 16
	}
	return 8
}

// scanLine returns, in render-priority order (first entry draws first),
// the sprites visible on scanline y.
func (p *PPU) scanLine(y byte) []oamEntry {
	height := p.spriteHeight()
	var hits []oamEntry
	for i := 0; i < 40 && len(hits) < maxSpritesPerLine; i++ {
		base := i * 4
		top := int(p.oam[base]) - 16
		if int(y) < top || int(y) >= top+int(height) {
			continue
		}
		hits = append(hits, oamEntry{
			index: i,
			y:     top,
			x:     int(p.oam[base+1]) - 8,
			tile:  p.oam[base+2],
			attr:  p.oam[base+3],
		})
	}

	if !p.cgb {
		sort.SliceStable(hits, func(a, b int) bool { return hits[a].x < hits[b].x })
	}
	return hits
}

// spritePixel resolves the tile-relative colour number for sprite e at
// scanline y, or ok==false if the pixel is fully transparent (colour 0,
// which sprites never draw).
func (p *PPU) spritePixel(e oamEntry, y byte, height byte, x int) (colour byte, ok bool) {
	if x < e.x || x >= e.x+8 {
		return 0, false
	}
	row := byte(int(y) - e.y)
	tile := e.tile
	if height == 16 {
		tile &^= 0x01
		if (row >= 8) != e.yFlip() {
			tile |= 0x01
		}
		row %= 8
	}

	lo, hi := p.fetchTileRow(0x8000+uint16(tile)*16, e.cgbBank(), row, e.yFlip())
	fineX := byte(x - e.x)
	c := colourAt(lo, hi, fineX, e.xFlip())
	if c == 0 {
		return 0, false
	}
	return c, true
}
