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

import "testing"

// makeROM builds a minimal cartridge image of the given bank count with a
// valid header checksum for the given cart-type/rom-size/ram-size codes.
func makeROM(banks int, cartType, romSizeCode, ramSizeCode byte) []byte {
	rom := make([]byte, banks*0x4000)
	copy(rom[0x134:0x144], []byte("TESTROM"))
	rom[0x143] = 0x00 // dmg only
	rom[0x147] = cartType
	rom[0x148] = romSizeCode
	rom[0x149] = ramSizeCode

	var sum byte
	for _, b := range rom[0x134:0x14D] {
		sum = sum - b - 1
	}
	rom[0x14D] = sum
	return rom
}

func TestLoadROMOnly(t *testing.T) {
	rom := makeROM(2, 0x00, 0x00, 0x00)
	c, err := Load(rom)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Header.Title != "TESTROM" {
		t.Errorf("Title = %q, want TESTROM", c.Header.Title)
	}
	if c.HasBattery() {
		t.Errorf("ROMOnly cart reported a battery")
	}
}

func TestLoadUnsupportedMbc(t *testing.T) {
	rom := makeROM(2, 0xFE, 0x00, 0x00)
	if _, err := Load(rom); err == nil {
		t.Fatal("expected an error for an unsupported cart type")
	}
}

func TestLoadTruncatedRom(t *testing.T) {
	if _, err := Load(make([]byte, 0x100)); err == nil {
		t.Fatal("expected an error for a too-short image")
	}
}

func TestMBC1BankSwitch(t *testing.T) {
	rom := makeROM(4, 0x01, 0x01, 0x02) // MBC1, 4 banks, 8KiB ram
	rom[1*0x4000] = 0xAA
	rom[3*0x4000] = 0xBB

	c, err := Load(rom)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := c.ReadROM(0x4000); got != 0xAA {
		t.Errorf("bank 1 byte 0 = %#02x, want 0xAA", got)
	}

	c.WriteROM(0x2000, 0x03)
	if got := c.ReadROM(0x4000); got != 0xBB {
		t.Errorf("bank 3 byte 0 = %#02x, want 0xBB", got)
	}

	c.WriteROM(0x0000, 0x0A) // enable ram
	c.WriteRAM(0xA000, 0x42)
	if got := c.ReadRAM(0xA000); got != 0x42 {
		t.Errorf("ram readback = %#02x, want 0x42", got)
	}
}

func TestMBC1BankZeroAliasesOne(t *testing.T) {
	rom := makeROM(4, 0x01, 0x01, 0x00)
	c, _ := Load(rom)
	c.WriteROM(0x2000, 0x00)
	// writing bank 0 to the 5-bit register should alias to bank 1
	rom[1*0x4000] = 0x77
	if got := c.ReadROM(0x4000); got != 0x77 {
		t.Errorf("bank register 0 = %#02x, want 0x77 (aliased to bank 1)", got)
	}
}

func TestMBC2RamIsNibbleWide(t *testing.T) {
	rom := makeROM(2, 0x05, 0x00, 0x00)
	c, err := Load(rom)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.WriteROM(0x0000, 0x0A) // enable ram (bit 8 clear)
	c.WriteRAM(0xA000, 0xFF)
	if got := c.ReadRAM(0xA000); got != 0xFF {
		t.Errorf("ram readback = %#02x, want 0xFF", got)
	}
	c.WriteRAM(0xA000, 0x03)
	if got := c.ReadRAM(0xA000); got != 0xF3 {
		t.Errorf("ram readback = %#02x, want 0xF3 (high nibble forced)", got)
	}
}

func TestMBC3RTCLatch(t *testing.T) {
	rom := makeROM(4, 0x10, 0x01, 0x02)
	c, err := Load(rom)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.WriteROM(0x0000, 0x0A)

	// advance one simulated second
	c.Tick(rtcTickPeriod)

	c.WriteROM(0x4000, 0x08) // select seconds register
	c.WriteROM(0x6000, 0x00)
	c.WriteROM(0x6000, 0x01) // latch

	if got := c.ReadRAM(0xA000); got != 1 {
		t.Errorf("latched seconds = %d, want 1", got)
	}
}

func TestMBC5BankZeroIsValid(t *testing.T) {
	rom := makeROM(2, 0x19, 0x00, 0x00)
	rom[0] = 0x11
	c, err := Load(rom)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.WriteROM(0x2000, 0x00)
	// unlike MBC1, a write of 0 really selects bank 0 in the switchable
	// window rather than being turned into bank 1.
	if got := c.ReadROM(0x4000); got != 0x11 {
		t.Errorf("switchable window with bank 0 selected = %#02x, want 0x11", got)
	}
}

func TestBatteryRoundTrip(t *testing.T) {
	rom := makeROM(2, 0x03, 0x00, 0x02) // MBC1+RAM+BATTERY
	c, err := Load(rom)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.HasBattery() {
		t.Fatal("expected cart type 0x03 to report a battery")
	}

	c.WriteROM(0x0000, 0x0A)
	c.WriteRAM(0xA000, 0x99)

	saved := c.SaveBattery()
	c2, _ := Load(rom)
	if err := c2.LoadBattery(saved); err != nil {
		t.Fatalf("LoadBattery: %v", err)
	}
	c2.WriteROM(0x0000, 0x0A)
	if got := c2.ReadRAM(0xA000); got != 0x99 {
		t.Errorf("restored ram = %#02x, want 0x99", got)
	}

	if err := c2.LoadBattery(make([]byte, 1)); err == nil {
		t.Fatal("expected a size-mismatch error")
	}
}
