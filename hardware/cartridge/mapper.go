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

// Mapper is implemented by every Memory Bank Controller variant. The MMU
// routes the whole 0x0000-0x7FFF and 0xA000-0xBFFF windows through it
// unconditionally; a Mapper that doesn't support RAM simply ignores reads
// and writes in the RAM window (returning 0xFF for reads).
type Mapper interface {
	// ReadROM reads from the 0x0000-0x7FFF window.
	ReadROM(addr uint16) byte

	// WriteROM handles a write anywhere in 0x0000-0x7FFF; on every real
	// mapper this is configuration (bank/RAM-enable selection), not data.
	WriteROM(addr uint16, v byte)

	// ReadRAM and WriteRAM handle the 0xA000-0xBFFF cartridge RAM window.
	ReadRAM(addr uint16) byte
	WriteRAM(addr uint16, v byte)

	// Tick advances any mapper-internal clock (currently only MBC3's RTC).
	Tick(cycles int)

	// HasBattery reports whether this cartridge's RAM should be persisted.
	HasBattery() bool

	// SaveRAM and LoadRAM implement the battery round-trip. LoadRAM returns
	// an error if data's length does not match the cartridge's RAM size.
	SaveRAM() []byte
	LoadRAM(data []byte) error
}

// baseMapper holds the ROM image and plain cartridge RAM shared by every
// mapper variant, following the BaseMBC embedding pattern common across the
// retrieval pack's smaller Game Boy emulators (each concrete mapper embeds
// this and only overrides the bank-selection logic that differs).
type baseMapper struct {
	rom []byte
	ram []byte

	ramEnabled bool
	battery    bool
}

func newBaseMapper(rom []byte, ramSize int, battery bool) baseMapper {
	return baseMapper{
		rom:     rom,
		ram:     make([]byte, ramSize),
		battery: battery,
	}
}

func (m *baseMapper) HasBattery() bool { return m.battery }

func (m *baseMapper) SaveRAM() []byte {
	out := make([]byte, len(m.ram))
	copy(out, m.ram)
	return out
}

func (m *baseMapper) LoadRAM(data []byte) error {
	if len(data) != len(m.ram) {
		return ramSizeMismatch(len(data), len(m.ram))
	}
	copy(m.ram, data)
	return nil
}

func (m *baseMapper) Tick(cycles int) {}
