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

// Package gbcore is a cycle-accurate Game Boy / Game Boy Color core: a
// Sharp LR35902 CPU, MMU, PPU, timer, HDMA engine, joypad and interrupt
// controller, all driven forward by the CPU's own clock rather than by
// independent goroutines. Machine is the one type a host imports; every
// other package under hardware/ is implementation detail reached only
// through it.
package gbcore

import (
	"fmt"

	"gbcore/cartridgeloader"
	"gbcore/config"
	"gbcore/errors"
	"gbcore/hardware"
	"gbcore/hardware/cartridge"
	"gbcore/hardware/cpu/execution"
	"gbcore/hardware/joypad"
)

// State is Machine's position in the Waiting/Ready/Running/Fatal state
// machine a host drives it through.
type State int

const (
	// Waiting: no cartridge loaded. The only legal call is LoadROM.
	Waiting State = iota

	// Ready: a cartridge is loaded and the console is paused at a known
	// instruction boundary. Step and Run are legal; so is another LoadROM.
	Ready

	// Running: a Run call is in progress, driving the CPU forward.
	// Host code never observes this state directly, since Run is
	// synchronous, but Pause (called from within a callback a future host
	// integration might hook into the step loop) targets it.
	Running

	// Fatal: the step loop raised an error. Only Reset leaves this state.
	Fatal
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Fatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Machine is the host-facing handle on one running console. It is not
// internally synchronized: exactly one goroutine may call its methods at a
// time, matching the teacher's own single-goroutine-driven VCS (§5.1).
type Machine struct {
	cfg     *config.Config
	console *hardware.Console
	state   State
	err     error
}

// NewMachine returns a Machine in the Waiting state. cfg may be nil, in
// which case config.NewConfig's defaults apply.
func NewMachine(cfg *config.Config) *Machine {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Machine{cfg: cfg, state: Waiting}
}

// State reports the machine's current position in the state machine.
func (m *Machine) State() State { return m.state }

// Err returns the error that put the machine into the Fatal state, or nil.
func (m *Machine) Err() error { return m.err }

// LoadROM parses loader's image, builds a fresh console around it, and
// transitions the machine to Ready. On error the machine is left in
// Waiting, per §7's propagation rule; any previously running cartridge's
// session is discarded either way.
func (m *Machine) LoadROM(loader cartridgeloader.Loader) error {
	if err := loader.Load(); err != nil {
		m.toWaiting()
		return err
	}

	cart, err := cartridge.Load(loader.Data)
	if err != nil {
		m.toWaiting()
		return err
	}

	cgb := cart.Header.CGBSupport() != cartridge.DMGOnly
	m.console = hardware.NewConsole(cart, m.cfg, cgb)
	m.state = Ready
	m.err = nil
	return nil
}

func (m *Machine) toWaiting() {
	m.console = nil
	m.state = Waiting
	m.err = nil
}

// Reset discards all console state, including the loaded cartridge, and
// returns the machine to Waiting; a new ROM must be loaded before Step or
// Run is legal again.
func (m *Machine) Reset() {
	m.toWaiting()
}

// Step executes exactly one instruction (or interrupt service, or idle
// HALT/STOP tick) and returns what it did. Legal only in Ready.
func (m *Machine) Step() (execution.Result, error) {
	if m.state != Ready {
		return execution.Result{}, errors.New(errors.InvalidState, m.state.String())
	}
	res := m.console.Step()
	if res.Illegal {
		m.state = Fatal
		m.err = errors.New(errors.UnsupportedOpcode, res.Opcode, res.Address)
		return res, m.err
	}
	return res, nil
}

// Run drives the console forward by Step until at least targetCycles
// T-cycles have elapsed or a step fails, returning to Ready on normal
// completion. Legal only in Ready; transitions through Running for the
// duration of the call (§5's cooperative, single-goroutine step loop).
func (m *Machine) Run(targetCycles int) error {
	if m.state != Ready {
		return errors.New(errors.InvalidState, m.state.String())
	}
	m.state = Running

	start := m.console.Clocks()
	for m.console.Clocks()-start < int64(targetCycles) {
		res := m.console.Step()
		if res.Illegal {
			m.state = Fatal
			m.err = errors.New(errors.UnsupportedOpcode, res.Opcode, res.Address)
			return m.err
		}
		if m.state == Ready {
			// a Pause call landed while this loop was running (possible
			// only if Step/Run were reentered from within a host callback
			// hooked into one of the CPU's side effects); honour it and
			// stop short of the budget.
			return nil
		}
	}

	m.state = Ready
	return nil
}

// Pause transitions Running to Ready, ending an in-progress Run call
// before its cycle budget is met. Legal only while Running.
func (m *Machine) Pause() error {
	if m.state != Running {
		return errors.New(errors.InvalidState, m.state.String())
	}
	m.state = Ready
	return nil
}

// ButtonDown presses joypad button b.
func (m *Machine) ButtonDown(b joypad.Button) {
	if m.console != nil {
		m.console.ButtonDown(b)
	}
}

// ButtonUp releases joypad button b.
func (m *Machine) ButtonUp(b joypad.Button) {
	if m.console != nil {
		m.console.ButtonUp(b)
	}
}

// Framebuffer returns the most recently completed frame as packed RGB
// triples, row-major, 160*144*3 bytes long; see ppu.PPU.Framebuffer.
func (m *Machine) Framebuffer() []byte {
	if m.console == nil {
		return nil
	}
	return m.console.Framebuffer()
}

// DebugSnapshot formats the CPU's register file and clock for diagnostics.
func (m *Machine) DebugSnapshot() string {
	if m.console == nil {
		return fmt.Sprintf("state=%s (no cartridge loaded)", m.state)
	}
	reg := m.console.Registers()
	return fmt.Sprintf(
		"state=%s pc=%#04x sp=%#04x af=%#04x bc=%#04x de=%#04x hl=%#04x clocks=%d",
		m.state, reg.PC, reg.SP, reg.AF(), reg.BC(), reg.DE(), reg.HL(), m.console.Clocks(),
	)
}

// HasBattery reports whether the loaded cartridge persists RAM between
// sessions. False if no cartridge is loaded.
func (m *Machine) HasBattery() bool {
	return m.console != nil && m.console.HasBattery()
}

// BatterySize returns the byte length a save/load call will use: the size
// of the cartridge's battery-backed RAM, or 0 if the cartridge has none or
// none is loaded. MBC3 RTC registers are not part of the saved data.
func (m *Machine) BatterySize() int {
	if m.console == nil {
		return 0
	}
	return len(m.console.SaveBattery())
}

// SaveBattery returns a copy of the cartridge's battery-backed state,
// suitable for the host to write to disk. Saving/loading files is the
// host's own responsibility; the core has no filesystem access (§1).
func (m *Machine) SaveBattery() ([]byte, error) {
	if m.console == nil {
		return nil, errors.New(errors.InvalidState, m.state.String())
	}
	return m.console.SaveBattery(), nil
}

// LoadBattery restores previously saved battery-backed state. data's
// length must equal BatterySize(), or errors.BadBatteryFile is returned.
// For a cartridge without a battery, data is ignored and nil is returned.
func (m *Machine) LoadBattery(data []byte) error {
	if m.console == nil {
		return errors.New(errors.InvalidState, m.state.String())
	}
	return m.console.LoadBattery(data)
}
