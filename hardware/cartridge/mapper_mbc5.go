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

// MBC5 uses a 9-bit ROM bank number, split across two write-only registers,
// and unlike MBC1 allows bank 0 to be selected in the switchable window.
type MBC5 struct {
	baseMapper

	romBankLow byte // 0x2000-0x2FFF, all 8 low bits
	romBankHi  byte // 0x3000-0x3FFF, bit 8 only
	ramBankReg byte // 0x4000-0x5FFF, 0x00-0x0F (0x00-0x07 on rumble carts)
	romBanks   int
	rumble     bool
}

func newMBC5(rom []byte, ramSize int, battery, rumble bool) *MBC5 {
	banks := len(rom) / 0x4000
	return &MBC5{
		baseMapper: newBaseMapper(rom, ramSize, battery),
		romBankLow: 1,
		romBanks:   banks,
		rumble:     rumble,
	}
}

func (m *MBC5) romBank() int {
	bank := int(m.romBankHi&0x01)<<8 | int(m.romBankLow)
	return bank % m.romBanks
}

func (m *MBC5) ReadROM(addr uint16) byte {
	if addr < 0x4000 {
		return m.rom[addr]
	}
	i := m.romBank()*0x4000 + int(addr-0x4000)
	if i < len(m.rom) {
		return m.rom[i]
	}
	return 0xFF
}

func (m *MBC5) WriteROM(addr uint16, v byte) {
	switch {
	case addr < 0x2000:
		m.ramEnabled = v&0x0F == 0x0A
	case addr < 0x3000:
		m.romBankLow = v
	case addr < 0x4000:
		m.romBankHi = v & 0x01
	case addr < 0x6000:
		// bit 3 selects the rumble motor on rumble carts and is masked out
		// of the ram bank number rather than driving any emulated motor.
		if m.rumble {
			m.ramBankReg = v & 0x07
		} else {
			m.ramBankReg = v & 0x0F
		}
	}
}

func (m *MBC5) ReadRAM(addr uint16) byte {
	if !m.ramEnabled || len(m.ram) == 0 {
		return 0xFF
	}
	i := int(m.ramBankReg)*0x2000 + int(addr-0xA000)
	if i < len(m.ram) {
		return m.ram[i]
	}
	return 0xFF
}

func (m *MBC5) WriteRAM(addr uint16, v byte) {
	if !m.ramEnabled || len(m.ram) == 0 {
		return
	}
	i := int(m.ramBankReg)*0x2000 + int(addr-0xA000)
	if i < len(m.ram) {
		m.ram[i] = v
	}
}
