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

// Package cpu implements the Sharp LR35902 fetch/decode/dispatch loop,
// interrupt servicing, and the STOP/double-speed handshake. It has no
// notion of PPU or timer semantics of its own; every memory access ticks
// the Bus forward, and the owning Console's timer/PPU observe that same
// clock, exactly as the teacher lineage's CPU threads a single tick
// callback out to TIA and RIOT rather than stepping them itself.
package cpu

import (
	"gbcore/config"
	"gbcore/hardware/cpu/execution"
	"gbcore/hardware/cpu/registers"
	"gbcore/hardware/interrupts"
	"gbcore/hardware/timer"
	"gbcore/logger"
)

// Bus is the narrow view of the MMU the CPU needs: byte-addressed memory
// access plus the KEY1 double-speed handshake, reached through the owning
// Console rather than a stored pointer to the concrete MMU.
type Bus interface {
	ReadByte(addr uint16) byte
	WriteByte(addr uint16, v byte)
	DoubleSpeed() bool
	SpeedSwitchArmed() bool
	CommitSpeedSwitch()
}

// Ticker is implemented by the PPU; the CPU advances it by the same raw
// T-cycle delta every memory access consumes, since the PPU is tied to
// real time regardless of CPU double-speed (§4.7's resolution of Open
// Question (b)).
type Ticker interface {
	Tick(delta int)
}

// CartTicker is implemented by the Cartridge, for mappers (MBC3's RTC)
// that advance internal state with real elapsed time.
type CartTicker interface {
	Tick(cycles int)
}

// CPU is the LR35902 core: register file, fetch/decode/dispatch tables,
// and the interrupt/HALT/STOP state machine.
type CPU struct {
	reg registers.File

	mem  Bus
	ppu  Ticker
	cart CartTicker
	tmr  *timer.Timer
	irq  *interrupts.Controller
	cfg  *config.Config

	ime      bool
	imeDelay int // counts down to 0, at which point EI's effect lands

	halted   bool
	haltBug  bool
	stopped  bool

	// clocks is a monotonic count of T-cycles consumed since Reset. Step
	// derives Result.Cycles from it, the owning Console exposes it for
	// cycle budgets and the random package's seed, and no instruction
	// reads it back.
	clocks int
}

// New returns a CPU wired to its collaborators. cgb selects the GBC vs.
// DMG post-boot-ROM register state on the next Reset.
func New(mem Bus, ppu Ticker, cart CartTicker, tmr *timer.Timer, irq *interrupts.Controller, cfg *config.Config) *CPU {
	return &CPU{mem: mem, ppu: ppu, cart: cart, tmr: tmr, irq: irq, cfg: cfg}
}

// Reset returns the CPU to its post-boot-ROM state.
func (c *CPU) Reset(cgb bool) {
	c.reg.Reset(cgb)
	c.ime = false
	c.imeDelay = 0
	c.halted = false
	c.haltBug = false
	c.stopped = false
	c.clocks = 0
}

// Registers exposes the register file read-only, for tracing/debug
// snapshots; instruction execution never goes through this accessor.
func (c *CPU) Registers() registers.File { return c.reg }

// Clocks returns the monotonic T-cycle counter.
func (c *CPU) Clocks() int { return c.clocks }

// Tick lets a collaborator that consumes CPU time without going through a
// memory access (a general-purpose HDMA transfer) advance the shared clock
// directly, reached through the owning Console rather than a stored
// pointer back to the concrete CPU.
func (c *CPU) Tick(cycles int) {
	c.tick(cycles)
}

// NotifyJoypadEdge wakes the CPU from the STOP wait state. Real hardware
// exits STOP on any joypad line transitioning while selected, regardless
// of whether the joypad interrupt is itself enabled in IE; the owning
// Console calls this directly from its button-press path rather than
// relying on IF/IE state; §4.7.1.
func (c *CPU) NotifyJoypadEdge() {
	c.stopped = false
}

// tick advances the shared clock by delta T-cycles, always at real
// (1x) pace for the PPU, and at half rate for the timer under double
// speed so that DIV/TIMA track real elapsed time; §4.7's timer bookkeeping.
func (c *CPU) tick(delta int) {
	c.clocks += delta
	c.ppu.Tick(delta)
	if c.cart != nil {
		c.cart.Tick(delta)
	}

	timerDelta := delta
	if c.mem.DoubleSpeed() {
		timerDelta /= 2
	}
	if c.tmr.Tick(timerDelta) {
		c.irq.Request(interrupts.Timer)
	}
}

func (c *CPU) readMem(addr uint16) byte {
	v := c.mem.ReadByte(addr)
	c.tick(4)
	return v
}

func (c *CPU) writeMem(addr uint16, v byte) {
	c.mem.WriteByte(addr, v)
	c.tick(4)
}

func (c *CPU) fetch() byte {
	v := c.readMem(c.reg.PC)
	c.reg.PC++
	return v
}

func (c *CPU) fetch16() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

func (c *CPU) push16(v uint16) {
	c.reg.SP--
	c.writeMem(c.reg.SP, byte(v>>8))
	c.reg.SP--
	c.writeMem(c.reg.SP, byte(v))
}

func (c *CPU) pop16() uint16 {
	lo := c.readMem(c.reg.SP)
	c.reg.SP++
	hi := c.readMem(c.reg.SP)
	c.reg.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// Step executes exactly one instruction, or services one pending
// interrupt, or advances one idle tick while HALTed/STOPped; §4.7.
func (c *CPU) Step() execution.Result {
	if c.halted {
		if c.irq.Any() {
			c.halted = false
		} else {
			c.tick(4)
			return execution.Result{Mnemonic: "halted", Cycles: 4}
		}
	}

	if pending := c.irq.Pending(); pending != 0 && c.ime {
		return c.serviceInterrupt(pending)
	}

	if c.stopped {
		c.tick(4)
		return execution.Result{Mnemonic: "stopped", Cycles: 4}
	}

	addr := c.reg.PC
	cyclesBefore := c.clocks

	opcode := c.fetch()
	if c.haltBug {
		c.reg.PC--
		c.haltBug = false
	}

	var mnemonic string
	var cbOpcode byte
	if opcode == 0xCB {
		cbOpcode = c.fetch()
		mnemonic = cbMnemonics[cbOpcode]
		cbTable[cbOpcode](c)
	} else {
		mnemonic = mnemonics[opcode]
		primaryTable[opcode](c)
	}

	if c.imeDelay > 0 {
		c.imeDelay--
		if c.imeDelay == 0 {
			c.ime = true
		}
	}

	result := execution.Result{
		Address:  addr,
		Opcode:   opcode,
		CBOpcode: cbOpcode,
		Mnemonic: mnemonic,
		Cycles:   c.clocks - cyclesBefore,
		Illegal:  illegalOpcodes[opcode],
	}
	if c.cfg != nil && c.cfg.DebugInstructions {
		logger.Logf(logger.Allow, "cpu", "%#04x: %s (%d cycles)", addr, mnemonic, result.Cycles)
	}
	return result
}

// serviceInterrupt pushes PC and jumps to the vector for f, costing the
// documented 20 T-cycles; §4.7.
func (c *CPU) serviceInterrupt(f interrupts.Flag) execution.Result {
	c.halted = false
	c.tick(8)
	c.push16(c.reg.PC)
	c.irq.Clear(f)
	c.ime = false
	vector := interrupts.Vector(f)
	c.reg.PC = vector
	c.tick(4)
	return execution.Result{Serviced: true, Cycles: 20, Address: vector}
}
