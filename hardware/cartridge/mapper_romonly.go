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

package cartridge

// ROMOnly is the trivial mapper for cartridges with no bank switching.
// Writes to the ROM window are simply ignored; RAM, if present at all, is
// always enabled (no cartridges in this class gate it).
type ROMOnly struct {
	baseMapper
}

func newROMOnly(rom []byte, ramSize int, battery bool) *ROMOnly {
	return &ROMOnly{baseMapper: newBaseMapper(rom, ramSize, battery)}
}

func (m *ROMOnly) ReadROM(addr uint16) byte {
	if int(addr) < len(m.rom) {
		return m.rom[addr]
	}
	return 0xFF
}

func (m *ROMOnly) WriteROM(addr uint16, v byte) {}

func (m *ROMOnly) ReadRAM(addr uint16) byte {
	i := int(addr - 0xA000)
	if i < len(m.ram) {
		return m.ram[i]
	}
	return 0xFF
}

func (m *ROMOnly) WriteRAM(addr uint16, v byte) {
	i := int(addr - 0xA000)
	if i < len(m.ram) {
		m.ram[i] = v
	}
}
