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

import "gbcore/errors"

// Cartridge wraps a parsed header and the Mapper selected for its cart-type
// byte. All ROM/RAM access goes through the Mapper; Cartridge itself only
// owns battery persistence and header inspection.
type Cartridge struct {
	Header Header
	mapper Mapper
}

// Load parses rom's header and builds the Mapper its cartridge-type byte
// requires.
func Load(rom []byte) (*Cartridge, error) {
	h, err := parseHeader(rom)
	if err != nil {
		return nil, err
	}

	ramSize := ramSizeBytes(h.RAMSize)
	battery := hasBatteryType(h.CartType)

	var m Mapper
	switch h.CartType {
	case 0x00, 0x08, 0x09:
		m = newROMOnly(rom, ramSize, battery)
	case 0x01, 0x02, 0x03:
		m = newMBC1(rom, ramSize, battery)
	case 0x05, 0x06:
		m = newMBC2(rom, battery)
	case 0x0F, 0x10, 0x11, 0x12, 0x13:
		m = newMBC3(rom, ramSize, battery)
	case 0x19, 0x1A, 0x1B:
		m = newMBC5(rom, ramSize, battery, false)
	case 0x1C, 0x1D, 0x1E:
		m = newMBC5(rom, ramSize, battery, true)
	default:
		return nil, errors.New(errors.UnsupportedMbc, h.CartType)
	}

	return &Cartridge{Header: h, mapper: m}, nil
}

func (c *Cartridge) ReadROM(addr uint16) byte      { return c.mapper.ReadROM(addr) }
func (c *Cartridge) WriteROM(addr uint16, v byte)  { c.mapper.WriteROM(addr, v) }
func (c *Cartridge) ReadRAM(addr uint16) byte      { return c.mapper.ReadRAM(addr) }
func (c *Cartridge) WriteRAM(addr uint16, v byte)  { c.mapper.WriteRAM(addr, v) }
func (c *Cartridge) Tick(cycles int)               { c.mapper.Tick(cycles) }

// HasBattery reports whether this cartridge's RAM should be persisted
// between sessions. MBC3 RTC state is not part of the saved data.
func (c *Cartridge) HasBattery() bool { return c.mapper.HasBattery() }

// SaveBattery returns a copy of the cartridge's battery-backed RAM, suitable
// for writing to a host-side save file. It returns nil if the cartridge has
// no battery.
func (c *Cartridge) SaveBattery() []byte {
	if !c.mapper.HasBattery() {
		return nil
	}
	return c.mapper.SaveRAM()
}

// LoadBattery restores previously saved battery RAM. It returns an error if
// data's length doesn't match the cartridge's RAM size. For a cartridge
// without a battery, data is ignored and nil is returned.
func (c *Cartridge) LoadBattery(data []byte) error {
	if !c.mapper.HasBattery() {
		return nil
	}
	return c.mapper.LoadRAM(data)
}
