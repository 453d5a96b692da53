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

package interrupts

// Controller owns the IF (0xFF0F) / IE (0xFFFF) register pair. The PPU
// raises its interrupts through the narrow Requester interface; the CPU,
// the MMU and the owning Console hold the concrete *Controller. The timer
// and joypad never touch it: the CPU raises the timer interrupt and the
// Console the joypad one.
type Controller struct {
	ifReg byte
	ieReg byte
}

// Requester is implemented by *Controller and handed to the PPU, so the
// PPU depends only on this one method rather than on the whole Controller.
type Requester interface {
	Request(f Flag)
}

// NewController returns a Controller in its post-reset state.
func NewController() *Controller {
	return &Controller{}
}

// Reset clears IF and IE to zero.
func (c *Controller) Reset() {
	c.ifReg = 0
	c.ieReg = 0
}

// Request sets one or more bits in IF.
func (c *Controller) Request(f Flag) {
	c.ifReg |= byte(f)
}

// Clear clears a single serviced bit in IF.
func (c *Controller) Clear(f Flag) {
	c.ifReg &^= byte(f)
}

// ReadIF returns IF with its unused top three bits reading high.
func (c *Controller) ReadIF() byte { return c.ifReg | 0xE0 }

// WriteIF sets IF's low five bits directly (used by the MMU and by test
// harnesses; normal interrupt sources go through Request instead).
func (c *Controller) WriteIF(v byte) { c.ifReg = v & 0x1F }

// ReadIE returns IE.
func (c *Controller) ReadIE() byte { return c.ieReg }

// WriteIE sets IE.
func (c *Controller) WriteIE(v byte) { c.ieReg = v }

// Pending returns the highest-priority interrupt that is both requested and
// enabled, or 0 if none is pending.
func (c *Controller) Pending() Flag {
	return Pending(c.ieReg, c.ifReg)
}

// Any reports whether any enabled interrupt is currently requested,
// irrespective of IME — used to decide whether HALT/STOP should wake.
func (c *Controller) Any() bool {
	return c.ieReg&c.ifReg&byte(All) != 0
}
