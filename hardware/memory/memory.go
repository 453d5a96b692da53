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

// Package memory implements the flat 16-bit address space dispatch: the
// MMU routes every read_byte/write_byte to the region that owns it
// (cartridge, VRAM/OAM via the PPU, work RAM, or an I/O register), exactly
// as the teacher lineage's memory controller dispatches the VCS's much
// smaller address space.
package memory

import (
	"gbcore/config"
	"gbcore/hardware/cartridge"
	"gbcore/hardware/interrupts"
	"gbcore/hardware/joypad"
	"gbcore/hardware/memory/memorymap"
	"gbcore/hardware/timer"
	"gbcore/random"
)

// VideoMemory is the narrow view of the PPU the MMU dispatches VRAM/OAM
// access and LCD register I/O through.
type VideoMemory interface {
	ReadVRAM(addr uint16) byte
	WriteVRAM(addr uint16, v byte)
	ReadOAM(addr uint16) byte
	WriteOAM(addr uint16, v byte)
	WriteOAMRaw(i int, v byte)
	ReadReg(addr uint16) byte
	WriteReg(addr uint16, v byte)
}

// HDMARegs is the narrow view of the DMA engine the MMU dispatches
// HDMA1-5 I/O through.
type HDMARegs interface {
	ReadReg(addr uint16) byte
	WriteReg(addr uint16, v byte)
}

// MMU owns work RAM, high RAM, and the serial/speed-switch register slots,
// and dispatches everything else to the Cartridge, PPU, timer, interrupt
// controller, joypad, and DMA engine it is constructed with.
type MMU struct {
	cart  *cartridge.Cartridge
	ppu   VideoMemory
	tmr   *timer.Timer
	irq   *interrupts.Controller
	pad   *joypad.Joypad
	hdma  HDMARegs
	rnd   *random.Random
	cfg   *config.Config
	cgb   bool

	wram [8][0x1000]byte
	hram [0x7F]byte
	svbk byte

	sb, sc byte
	key1   byte // bit0: speed-switch armed, bit7: current speed
	boot   byte // 0xFF50
}

// New returns an MMU dispatching to the given subsystems. rnd, if non-nil
// and cfg.RandomizeUninitializedRAM is set, poisons WRAM/HRAM at
// construction the way real hardware's undefined power-on RAM contents are
// often approximated by emulators, instead of zero-filling it.
func New(cart *cartridge.Cartridge, ppu VideoMemory, tmr *timer.Timer, irq *interrupts.Controller, pad *joypad.Joypad, hdma HDMARegs, rnd *random.Random, cfg *config.Config, cgb bool) *MMU {
	m := &MMU{cart: cart, ppu: ppu, tmr: tmr, irq: irq, pad: pad, hdma: hdma, rnd: rnd, cfg: cfg, cgb: cgb}
	if cfg != nil && cfg.RandomizeUninitializedRAM && rnd != nil {
		m.poisonRAM()
	}
	return m
}

func (m *MMU) poisonRAM() {
	for b := range m.wram {
		for i := range m.wram[b] {
			m.wram[b][i] = m.rnd.Byte()
		}
	}
	for i := range m.hram {
		m.hram[i] = m.rnd.Byte()
	}
}

// wramBankN resolves the 4KiB bank index 0xD000-0xDFFF currently maps to,
// honouring SVBK (GBC only; DMG always uses bank 1).
func (m *MMU) wramBankN() int {
	if !m.cgb {
		return 1
	}
	bank := int(m.svbk & 0x07)
	if bank == 0 {
		bank = 1
	}
	return bank
}

// ReadByte reads a single byte, dispatching by memorymap.Area.
func (m *MMU) ReadByte(addr uint16) byte {
	switch memorymap.MapAddress(addr) {
	case memorymap.ROMBank0, memorymap.ROMBankN:
		return m.cart.ReadROM(addr)
	case memorymap.VRAM:
		return m.ppu.ReadVRAM(addr)
	case memorymap.CartRAM:
		return m.cart.ReadRAM(addr)
	case memorymap.WRAMBank0:
		return m.wram[0][addr-0xC000]
	case memorymap.WRAMBankN:
		return m.wram[m.wramBankN()][addr-0xD000]
	case memorymap.EchoRAM:
		return m.ReadByte(addr - 0x2000)
	case memorymap.OAM:
		return m.ppu.ReadOAM(addr)
	case memorymap.Unusable:
		return 0xFF
	case memorymap.IORegisters:
		return m.readIO(addr)
	case memorymap.HRAM:
		return m.hram[addr-0xFF80]
	case memorymap.InterruptEnable:
		return m.irq.ReadIE()
	}
	return 0xFF
}

// WriteByte writes a single byte, dispatching by memorymap.Area.
func (m *MMU) WriteByte(addr uint16, v byte) {
	switch memorymap.MapAddress(addr) {
	case memorymap.ROMBank0, memorymap.ROMBankN:
		m.cart.WriteROM(addr, v)
	case memorymap.VRAM:
		m.ppu.WriteVRAM(addr, v)
	case memorymap.CartRAM:
		m.cart.WriteRAM(addr, v)
	case memorymap.WRAMBank0:
		m.wram[0][addr-0xC000] = v
	case memorymap.WRAMBankN:
		m.wram[m.wramBankN()][addr-0xD000] = v
	case memorymap.EchoRAM:
		m.WriteByte(addr-0x2000, v)
	case memorymap.OAM:
		m.ppu.WriteOAM(addr, v)
	case memorymap.Unusable:
		// absorbed
	case memorymap.IORegisters:
		m.writeIO(addr, v)
	case memorymap.HRAM:
		m.hram[addr-0xFF80] = v
	case memorymap.InterruptEnable:
		m.irq.WriteIE(v)
	}
}

// DoubleSpeed reports whether KEY1 bit 7 (current speed) is set.
func (m *MMU) DoubleSpeed() bool { return m.key1&0x80 != 0 }

// SpeedSwitchArmed reports whether KEY1 bit 0 is set (a STOP instruction
// should perform the speed switch rather than entering the stopped wait
// state).
func (m *MMU) SpeedSwitchArmed() bool { return m.key1&0x01 != 0 }

// CommitSpeedSwitch toggles KEY1 bit 7 and clears the arm bit, called by
// the CPU once it has actually performed the switch.
func (m *MMU) CommitSpeedSwitch() {
	m.key1 ^= 0x80
	m.key1 &^= 0x01
}
