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

// MBC1 implements the most common bank-switching scheme: a 5-bit ROM bank
// register, a 2-bit register that is either the RAM bank or the high bits
// of a large ROM's bank number (selected by mode), and a mode-select latch.
type MBC1 struct {
	baseMapper

	bank5 byte // low 5 bits of the rom bank, from 0x2000-0x3FFF
	bank2 byte // either ram bank or rom bank bits 5-6, from 0x4000-0x5FFF
	mode  byte // 0 = rom banking, 1 = ram banking, from 0x6000-0x7FFF

	romBanks int
	large    bool // true for carts >512KiB, wiring bank2 into the rom bank
}

func newMBC1(rom []byte, ramSize int, battery bool) *MBC1 {
	banks := len(rom) / 0x4000
	return &MBC1{
		baseMapper: newBaseMapper(rom, ramSize, battery),
		bank5:      1,
		romBanks:   banks,
		large:      banks > 32,
	}
}

func (m *MBC1) romBank() int {
	bank5 := m.bank5
	if bank5 == 0 {
		bank5 = 1
	}
	bank := int(bank5)
	if m.large && m.mode == 0 {
		bank |= int(m.bank2) << 5
	}
	return bank % m.romBanks
}

func (m *MBC1) ramBank() int {
	if m.mode == 1 {
		return int(m.bank2)
	}
	return 0
}

func (m *MBC1) ReadROM(addr uint16) byte {
	if addr < 0x4000 {
		offset := 0
		if m.large && m.mode == 1 {
			offset = int(m.bank2) << 5 * 0x4000
		}
		i := offset + int(addr)
		if i < len(m.rom) {
			return m.rom[i]
		}
		return 0xFF
	}
	i := m.romBank()*0x4000 + int(addr-0x4000)
	if i < len(m.rom) {
		return m.rom[i]
	}
	return 0xFF
}

func (m *MBC1) WriteROM(addr uint16, v byte) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = v&0x0F == 0x0A
	case addr < 0x4000:
		m.bank5 = v & 0x1F
	case addr < 0x6000:
		m.bank2 = v & 0x03
	default:
		m.mode = v & 0x01
	}
}

func (m *MBC1) ReadRAM(addr uint16) byte {
	if !m.ramEnabled {
		return 0xFF
	}
	i := m.ramBank()*0x2000 + int(addr-0xA000)
	if i < len(m.ram) {
		return m.ram[i]
	}
	return 0xFF
}

func (m *MBC1) WriteRAM(addr uint16, v byte) {
	if !m.ramEnabled {
		return
	}
	i := m.ramBank()*0x2000 + int(addr-0xA000)
	if i < len(m.ram) {
		m.ram[i] = v
	}
}
