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

// Package hardware wires the CPU, MMU, PPU, timer, HDMA engine, joypad and
// interrupt controller into one running console, the way the teacher
// lineage's own hardware package wires VCS+TIA+RIOT+cartridge together
// behind narrow interfaces instead of back-pointers.
//
// Three of those subsystems form a genuine dependency cycle: the MMU routes
// VRAM/OAM/LCD-register access to the PPU and HDMA1-5 I/O to the HDMA
// engine; the PPU notifies the HDMA engine on every H-Blank; and the HDMA
// engine reads through the MMU and writes through the PPU. Go gives no way
// to construct three values that each need a finished pointer to one of the
// others. Console breaks the cycle the same way §3.1 prescribes for every
// other cross-subsystem reference: the small proxy types below hold
// only a back-pointer to the (already allocated) Console and resolve the
// real subsystem at call time, by which point construction has finished.
package hardware

import (
	"gbcore/config"
	"gbcore/hardware/cartridge"
	"gbcore/hardware/cpu"
	"gbcore/hardware/cpu/execution"
	"gbcore/hardware/cpu/registers"
	"gbcore/hardware/dma"
	"gbcore/hardware/instance"
	"gbcore/hardware/interrupts"
	"gbcore/hardware/joypad"
	"gbcore/hardware/memory"
	"gbcore/hardware/ppu"
	"gbcore/hardware/timer"
)

// videoMemoryProxy satisfies memory.VideoMemory without the MMU ever
// holding a pointer to the concrete PPU.
type videoMemoryProxy struct{ console *Console }

func (p videoMemoryProxy) ReadVRAM(addr uint16) byte     { return p.console.ppu.ReadVRAM(addr) }
func (p videoMemoryProxy) WriteVRAM(addr uint16, v byte)  { p.console.ppu.WriteVRAM(addr, v) }
func (p videoMemoryProxy) ReadOAM(addr uint16) byte      { return p.console.ppu.ReadOAM(addr) }
func (p videoMemoryProxy) WriteOAM(addr uint16, v byte)   { p.console.ppu.WriteOAM(addr, v) }
func (p videoMemoryProxy) WriteOAMRaw(i int, v byte)      { p.console.ppu.WriteOAMRaw(i, v) }
func (p videoMemoryProxy) ReadReg(addr uint16) byte       { return p.console.ppu.ReadReg(addr) }
func (p videoMemoryProxy) WriteReg(addr uint16, v byte)   { p.console.ppu.WriteReg(addr, v) }

// hdmaRegsProxy satisfies memory.HDMARegs without the MMU holding a
// pointer to the concrete HDMA engine.
type hdmaRegsProxy struct{ console *Console }

func (p hdmaRegsProxy) ReadReg(addr uint16) byte     { return p.console.dma.ReadReg(addr) }
func (p hdmaRegsProxy) WriteReg(addr uint16, v byte)  { p.console.dma.WriteReg(addr, v) }

// hblankNotifierProxy satisfies ppu.HBlankNotifier without the PPU holding
// a pointer to the concrete HDMA engine.
type hblankNotifierProxy struct{ console *Console }

func (p hblankNotifierProxy) NotifyHBlank() { p.console.dma.NotifyHBlank() }

// systemTickerProxy satisfies dma.SystemTicker without the HDMA engine
// holding a pointer to the concrete CPU.
type systemTickerProxy struct{ console *Console }

func (p systemTickerProxy) Tick(cycles int) { p.console.cpu.Tick(cycles) }

// Console owns one running Game Boy: the CPU at its centre, and the MMU,
// PPU, timer, HDMA engine, joypad and interrupt controller it drives
// forward one T-cycle at a time.
type Console struct {
	cpu  *cpu.CPU
	mmu  *memory.MMU
	ppu  *ppu.PPU
	dma  *dma.HDMA
	tmr  *timer.Timer
	irq  *interrupts.Controller
	pad  *joypad.Joypad
	cart *cartridge.Cartridge
	ins  *instance.Instance

	cgb bool
}

// NewConsole wires a fresh console around cart. cgb selects GBC register
// visibility and post-boot-ROM register state; callers typically derive it
// from cart.Header.CGBSupport() rather than hard-coding it. cfg may be nil,
// in which case instance.NewInstance's defaults apply.
func NewConsole(cart *cartridge.Cartridge, cfg *config.Config, cgb bool) *Console {
	cs := &Console{cart: cart, cgb: cgb}

	// cs is used as its own random.Clocker below, before cs.cpu exists;
	// Clocks() nil-guards for exactly that window. WRAM/HRAM poisoning
	// (the only caller of Random.Byte() at construction time) therefore
	// always draws from clock 0, which is fine: it only needs to vary run
	// to run, not reflect real elapsed time at the instant of poisoning.
	cs.ins = instance.NewInstance(cs, cfg)

	cs.irq = interrupts.NewController()
	cs.tmr = timer.New()
	cs.pad = joypad.New()

	cs.mmu = memory.New(cart, videoMemoryProxy{cs}, cs.tmr, cs.irq, cs.pad, hdmaRegsProxy{cs}, cs.ins.Random, cs.ins.Config, cgb)
	cs.ppu = ppu.New(cs.irq, hblankNotifierProxy{cs}, cs.ins.Config, cgb)
	cs.dma = dma.New(cs.mmu, cs.ppu, systemTickerProxy{cs}, cs.mmu.DoubleSpeed)
	cs.cpu = cpu.New(cs.mmu, cs.ppu, cart, cs.tmr, cs.irq, cs.ins.Config)

	cs.Reset()
	return cs
}

// Reset returns every subsystem to its post-boot-ROM state without
// replacing the cartridge or any of the wiring above.
func (cs *Console) Reset() {
	cs.cpu.Reset(cs.cgb)
	cs.ppu.Reset()
	cs.tmr.Reset()
	cs.irq.Reset()
	cs.dma.Reset()
}

// Step executes one CPU.Step and returns what it did.
func (cs *Console) Step() execution.Result {
	return cs.cpu.Step()
}

// Registers exposes the CPU's register file for debug snapshots.
func (cs *Console) Registers() registers.File {
	return cs.cpu.Registers()
}

// Clocks returns the monotonic T-cycle count since the last Reset. It also
// satisfies random.Clocker, so the Console itself seeds its own Random
// rather than needing one handed in from outside.
func (cs *Console) Clocks() int64 {
	if cs.cpu == nil {
		return 0
	}
	return int64(cs.cpu.Clocks())
}

// Config returns the Config this console's subsystems were wired with, for
// a host that wants to flip DebugInstructions/draw-layer flags afterward.
func (cs *Console) Config() *config.Config {
	return cs.ins.Config
}

// Framebuffer returns the most recently completed frame; see ppu.PPU.Framebuffer.
func (cs *Console) Framebuffer() []byte {
	return cs.ppu.Framebuffer()
}

// ButtonDown presses b. A 1->0 transition on a currently-selected joypad
// line both requests the joypad interrupt and, independent of whether that
// interrupt is enabled in IE, wakes the CPU from STOP; real hardware's
// STOP exit is wired to the same physical edge, not to IF/IE state (§4.7.1).
func (cs *Console) ButtonDown(b joypad.Button) {
	if cs.pad.Down(b) {
		cs.irq.Request(interrupts.Joypad)
		cs.cpu.NotifyJoypadEdge()
	}
}

// ButtonUp releases b.
func (cs *Console) ButtonUp(b joypad.Button) {
	cs.pad.Up(b)
}

// HasBattery reports whether the loaded cartridge persists RAM between
// sessions.
func (cs *Console) HasBattery() bool {
	return cs.cart.HasBattery()
}

// SaveBattery returns a copy of the cartridge's battery-backed state, or
// nil if it has none.
func (cs *Console) SaveBattery() []byte {
	return cs.cart.SaveBattery()
}

// LoadBattery restores previously saved battery-backed state.
func (cs *Console) LoadBattery(data []byte) error {
	return cs.cart.LoadBattery(data)
}

// Header returns the cartridge's decoded header, for title/CGB-support
// display by a host.
func (cs *Console) Header() cartridge.Header {
	return cs.cart.Header
}
