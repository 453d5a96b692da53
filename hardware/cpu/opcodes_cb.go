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

package cpu

import (
	"fmt"

	"gbcore/hardware/cpu/registers"
)

var cbTable [256]func(*CPU)
var cbMnemonics [256]string

// cbRotateFamilies lists the eight CB-prefixed rotate/shift families in
// opcode order (0x00-0x3F, 8 operands each); §4.6.
var cbRotateFamilies = []struct {
	name string
	fn   func(c *CPU, v byte) byte
}{
	{"RLC", (*CPU).rlc},
	{"RRC", (*CPU).rrc},
	{"RL", (*CPU).rl},
	{"RR", (*CPU).rr},
	{"SLA", (*CPU).sla},
	{"SRA", (*CPU).sra},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).srl},
}

func init() {
	for family, op := range cbRotateFamilies {
		family, op := family, op
		for r := byte(0); r < 8; r++ {
			r := r
			opcode := byte(family)*8 + r
			cbMnemonics[opcode] = op.name + " " + r8Names[r]
			cbTable[opcode] = func(c *CPU) { c.writeR8(r, op.fn(c, c.readR8(r))) }
		}
	}

	for b := byte(0); b < 8; b++ {
		for r := byte(0); r < 8; r++ {
			b, r := b, r

			bitOp := 0x40 + b<<3 + r
			cbMnemonics[bitOp] = fmt.Sprintf("BIT %d,%s", b, r8Names[r])
			cbTable[bitOp] = func(c *CPU) { opBIT(c, b, c.readR8(r)) }

			resOp := 0x80 + b<<3 + r
			cbMnemonics[resOp] = fmt.Sprintf("RES %d,%s", b, r8Names[r])
			cbTable[resOp] = func(c *CPU) { c.writeR8(r, c.readR8(r)&^(1<<b)) }

			setOp := 0xC0 + b<<3 + r
			cbMnemonics[setOp] = fmt.Sprintf("SET %d,%s", b, r8Names[r])
			cbTable[setOp] = func(c *CPU) { c.writeR8(r, c.readR8(r)|1<<b) }
		}
	}
}

func opBIT(c *CPU, bit, v byte) {
	c.reg.SetFlag(registers.FlagZ, v&(1<<bit) == 0)
	c.reg.SetFlag(registers.FlagN, false)
	c.reg.SetFlag(registers.FlagH, true)
}
