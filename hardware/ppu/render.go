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

// renderScanline composes one full 160-pixel row of the background/window
// and sprite layers into p.back, following §4.8's compositing order:
// background-or-window first, then sprites, then BG-over-OBJ priority.
func (p *PPU) renderScanline(y byte) {
	drewWindow := false
	sprites := p.scanLine(y)
	height := p.spriteHeight()

	for x := 0; x < ScreenWidth; x++ {
		var pixel rgb

		bg := p.bgWindowPixel(byte(x), y)
		if p.lcdc&0x20 != 0 && y >= p.wy && x >= int(p.wx)-7 {
			drewWindow = true
		}
		if p.cfg == nil || p.cfg.DrawBackgroundLayer {
			pixel = p.resolveBG(bg)
		}

		if (p.cfg == nil || p.cfg.DrawSpriteLayer) && p.lcdc&0x02 != 0 {
			if s, sc, ok := p.topSprite(sprites, y, height, x); ok {
				if !(s.bgPriority() || bg.priority) || bg.colour == 0 {
					pixel = p.resolveOBJ(s, sc)
				}
			}
		}

		p.back[int(y)*ScreenWidth+x] = pixel
	}

	if drewWindow {
		p.windowLine++
	}
}

// topSprite returns the highest-priority sprite (in the order scanLine
// already sorted) with an opaque pixel at column x.
func (p *PPU) topSprite(sprites []oamEntry, y byte, height byte, x int) (oamEntry, byte, bool) {
	for _, s := range sprites {
		if c, ok := p.spritePixel(s, y, height, x); ok {
			return s, c, true
		}
	}
	return oamEntry{}, 0, false
}

func (p *PPU) resolveBG(px bgPixel) rgb {
	if p.cgb {
		return p.bgColours.colour(px.palette, px.colour)
	}
	return dmgShade(p.bgp, px.colour)
}

func (p *PPU) resolveOBJ(s oamEntry, colour byte) rgb {
	if p.cgb {
		return p.objColours.colour(s.cgbPalette(), colour)
	}
	reg := p.obp0
	if s.dmgPalette() == 1 {
		reg = p.obp1
	}
	return dmgShade(reg, colour)
}
