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

// Package joypad implements the 8-button matrix and the P1 (0xFF00)
// register logic that multiplexes it onto two nibbles.
package joypad

// Button indexes the 8-entry button vector.
type Button int

// Button indices, matching the P1 nibble layout.
const (
	Right Button = iota
	Left
	Up
	Down
	A
	B
	Select
	Start
)

// Joypad tracks button state and the P1 select lines.
type Joypad struct {
	pressed [8]bool

	// select lines, mirrored from writes to P1 bits 4 and 5.
	selectDirection bool
	selectAction    bool
}

// New returns a Joypad with nothing pressed.
func New() *Joypad {
	return &Joypad{}
}

// Down marks a button as held. Returns true if this is a 1->0 transition on
// a currently-selected line (the condition for raising the joypad
// interrupt), matching real hardware's edge-triggered wake-up behaviour.
func (j *Joypad) Down(b Button) bool {
	was := j.pressed[b]
	j.pressed[b] = true
	if was {
		return false
	}
	return j.selects(b)
}

// Up marks a button as released.
func (j *Joypad) Up(b Button) {
	j.pressed[b] = false
}

func (j *Joypad) selects(b Button) bool {
	if b <= Down {
		return j.selectDirection
	}
	return j.selectAction
}

// WriteP1 handles a write to 0xFF00; only bits 4 and 5 (the select lines)
// are writable.
func (j *Joypad) WriteP1(v byte) {
	j.selectDirection = v&0x10 == 0
	j.selectAction = v&0x20 == 0
}

// ReadP1 returns the current value of 0xFF00: the unwritable high bits read
// high, the select lines read back what was written, and pressed buttons on
// a selected line read as 0.
func (j *Joypad) ReadP1() byte {
	v := byte(0xC0)
	if !j.selectDirection {
		v |= 0x10
	}
	if !j.selectAction {
		v |= 0x20
	}

	lo := byte(0x0F)
	if j.selectDirection {
		lo &= j.nibble(Right, Left, Up, Down)
	}
	if j.selectAction {
		lo &= j.nibble(A, B, Select, Start)
	}
	return v | lo
}

func (j *Joypad) nibble(b0, b1, b2, b3 Button) byte {
	var n byte = 0x0F
	if j.pressed[b0] {
		n &^= 0x01
	}
	if j.pressed[b1] {
		n &^= 0x02
	}
	if j.pressed[b2] {
		n &^= 0x04
	}
	if j.pressed[b3] {
		n &^= 0x08
	}
	return n
}
