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
	"gbcore/logger"
)

// r8Names indexes the 3-bit register field used throughout the primary
// opcode space: 0=B,1=C,2=D,3=E,4=H,5=L,6=(HL),7=A.
var r8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// rrNames indexes the 2-bit register-pair field used by LD rr,d16 /
// INC rr / DEC rr / ADD HL,rr.
var rrNames = [4]string{"BC", "DE", "HL", "SP"}

// stackNames indexes the same 2-bit field as used by PUSH/POP, where slot
// 3 is AF rather than SP.
var stackNames = [4]string{"BC", "DE", "HL", "AF"}

func (c *CPU) readR8(i byte) byte {
	switch i {
	case 0:
		return c.reg.B
	case 1:
		return c.reg.C
	case 2:
		return c.reg.D
	case 3:
		return c.reg.E
	case 4:
		return c.reg.H
	case 5:
		return c.reg.L
	case 6:
		return c.readMem(c.reg.HL())
	default:
		return c.reg.A
	}
}

func (c *CPU) writeR8(i byte, v byte) {
	switch i {
	case 0:
		c.reg.B = v
	case 1:
		c.reg.C = v
	case 2:
		c.reg.D = v
	case 3:
		c.reg.E = v
	case 4:
		c.reg.H = v
	case 5:
		c.reg.L = v
	case 6:
		c.writeMem(c.reg.HL(), v)
	default:
		c.reg.A = v
	}
}

func (c *CPU) readRR(i byte) uint16 {
	switch i {
	case 0:
		return c.reg.BC()
	case 1:
		return c.reg.DE()
	case 2:
		return c.reg.HL()
	default:
		return c.reg.SP
	}
}

func (c *CPU) writeRR(i byte, v uint16) {
	switch i {
	case 0:
		c.reg.SetBC(v)
	case 1:
		c.reg.SetDE(v)
	case 2:
		c.reg.SetHL(v)
	default:
		c.reg.SP = v
	}
}

func (c *CPU) readStackRR(i byte) uint16 {
	switch i {
	case 0:
		return c.reg.BC()
	case 1:
		return c.reg.DE()
	case 2:
		return c.reg.HL()
	default:
		return c.reg.AF()
	}
}

func (c *CPU) writeStackRR(i byte, v uint16) {
	switch i {
	case 0:
		c.reg.SetBC(v)
	case 1:
		c.reg.SetDE(v)
	case 2:
		c.reg.SetHL(v)
	default:
		c.reg.SetAF(v)
	}
}

func (c *CPU) cond(i byte) bool {
	switch i {
	case 0:
		return !c.reg.Z()
	case 1:
		return c.reg.Z()
	case 2:
		return !c.reg.C()
	default:
		return c.reg.C()
	}
}

var primaryTable [256]func(*CPU)
var mnemonics [256]string

// illegalOpcodes marks the eleven genuinely undefined primary opcode
// bytes, so Step can report execution.Result.Illegal without the caller
// having to pattern-match a mnemonic string.
var illegalOpcodes [256]bool

func reg(opcode byte, mnemonic string, fn func(*CPU)) {
	primaryTable[opcode] = fn
	mnemonics[opcode] = mnemonic
	illegalOpcodes[opcode] = false
}

func illegal(c *CPU) {
	// Real hardware locks the bus up solid on these eleven bytes. This
	// core models that as an unrecoverable halt rather than a panic, since
	// a malformed or corrupted ROM should not bring down the host process.
	logger.Logf(logger.Allow, "cpu", "illegal opcode at %#04x, CPU locked", c.reg.PC-1)
	c.reg.PC--
	c.halted = true
}

func init() {
	for i := range primaryTable {
		primaryTable[i] = illegal
		mnemonics[i] = fmt.Sprintf("DB %#02x", i)
		illegalOpcodes[i] = true
	}

	reg(0x00, "NOP", func(c *CPU) {})
	reg(0x10, "STOP", opSTOP)
	reg(0x76, "HALT", opHALT)
	reg(0xF3, "DI", func(c *CPU) { c.ime, c.imeDelay = false, 0 })
	reg(0xFB, "EI", func(c *CPU) { c.imeDelay = 2 })
	reg(0xCB, "PREFIX CB", func(c *CPU) {}) // dispatch handled in Step

	reg(0x07, "RLCA", func(c *CPU) { c.reg.A = c.rlc(c.reg.A); c.reg.SetFlag(registers.FlagZ, false) })
	reg(0x0F, "RRCA", func(c *CPU) { c.reg.A = c.rrc(c.reg.A); c.reg.SetFlag(registers.FlagZ, false) })
	reg(0x17, "RLA", func(c *CPU) { c.reg.A = c.rl(c.reg.A); c.reg.SetFlag(registers.FlagZ, false) })
	reg(0x1F, "RRA", func(c *CPU) { c.reg.A = c.rr(c.reg.A); c.reg.SetFlag(registers.FlagZ, false) })
	reg(0x27, "DAA", func(c *CPU) { c.daa() })
	reg(0x2F, "CPL", func(c *CPU) {
		c.reg.A = ^c.reg.A
		c.reg.SetFlag(registers.FlagN, true)
		c.reg.SetFlag(registers.FlagH, true)
	})
	reg(0x37, "SCF", func(c *CPU) {
		c.reg.SetFlag(registers.FlagN, false)
		c.reg.SetFlag(registers.FlagH, false)
		c.reg.SetFlag(registers.FlagC, true)
	})
	reg(0x3F, "CCF", func(c *CPU) {
		c.reg.SetFlag(registers.FlagN, false)
		c.reg.SetFlag(registers.FlagH, false)
		c.reg.SetFlag(registers.FlagC, !c.reg.C())
	})

	reg(0x08, "LD (a16),SP", func(c *CPU) {
		addr := c.fetch16()
		c.writeMem(addr, byte(c.reg.SP))
		c.writeMem(addr+1, byte(c.reg.SP>>8))
	})

	reg(0x02, "LD (BC),A", func(c *CPU) { c.writeMem(c.reg.BC(), c.reg.A) })
	reg(0x12, "LD (DE),A", func(c *CPU) { c.writeMem(c.reg.DE(), c.reg.A) })
	reg(0x22, "LD (HL+),A", func(c *CPU) { c.writeMem(c.reg.HL(), c.reg.A); c.reg.SetHL(c.reg.HL() + 1) })
	reg(0x32, "LD (HL-),A", func(c *CPU) { c.writeMem(c.reg.HL(), c.reg.A); c.reg.SetHL(c.reg.HL() - 1) })
	reg(0x0A, "LD A,(BC)", func(c *CPU) { c.reg.A = c.readMem(c.reg.BC()) })
	reg(0x1A, "LD A,(DE)", func(c *CPU) { c.reg.A = c.readMem(c.reg.DE()) })
	reg(0x2A, "LD A,(HL+)", func(c *CPU) { c.reg.A = c.readMem(c.reg.HL()); c.reg.SetHL(c.reg.HL() + 1) })
	reg(0x3A, "LD A,(HL-)", func(c *CPU) { c.reg.A = c.readMem(c.reg.HL()); c.reg.SetHL(c.reg.HL() - 1) })

	reg(0x18, "JR e8", func(c *CPU) { opJR(c, true) })
	reg(0x20, "JR NZ,e8", func(c *CPU) { opJRcc(c, 0) })
	reg(0x28, "JR Z,e8", func(c *CPU) { opJRcc(c, 1) })
	reg(0x30, "JR NC,e8", func(c *CPU) { opJRcc(c, 2) })
	reg(0x38, "JR C,e8", func(c *CPU) { opJRcc(c, 3) })

	reg(0xC3, "JP a16", func(c *CPU) { opJP(c, true) })
	reg(0xC2, "JP NZ,a16", func(c *CPU) { opJPcc(c, 0) })
	reg(0xCA, "JP Z,a16", func(c *CPU) { opJPcc(c, 1) })
	reg(0xD2, "JP NC,a16", func(c *CPU) { opJPcc(c, 2) })
	reg(0xDA, "JP C,a16", func(c *CPU) { opJPcc(c, 3) })
	reg(0xE9, "JP (HL)", func(c *CPU) { c.reg.PC = c.reg.HL() })

	reg(0xCD, "CALL a16", func(c *CPU) { opCALL(c, true) })
	reg(0xC4, "CALL NZ,a16", func(c *CPU) { opCALLcc(c, 0) })
	reg(0xCC, "CALL Z,a16", func(c *CPU) { opCALLcc(c, 1) })
	reg(0xD4, "CALL NC,a16", func(c *CPU) { opCALLcc(c, 2) })
	reg(0xDC, "CALL C,a16", func(c *CPU) { opCALLcc(c, 3) })

	reg(0xC9, "RET", func(c *CPU) { opRET(c, true) })
	reg(0xC0, "RET NZ", func(c *CPU) { opRETcc(c, 0) })
	reg(0xC8, "RET Z", func(c *CPU) { opRETcc(c, 1) })
	reg(0xD0, "RET NC", func(c *CPU) { opRETcc(c, 2) })
	reg(0xD8, "RET C", func(c *CPU) { opRETcc(c, 3) })
	reg(0xD9, "RETI", func(c *CPU) { c.reg.PC = c.pop16(); c.tick(4); c.ime = true })

	reg(0xE0, "LDH (a8),A", func(c *CPU) { addr := 0xFF00 + uint16(c.fetch()); c.writeMem(addr, c.reg.A) })
	reg(0xF0, "LDH A,(a8)", func(c *CPU) { addr := 0xFF00 + uint16(c.fetch()); c.reg.A = c.readMem(addr) })
	reg(0xE2, "LD (C),A", func(c *CPU) { c.writeMem(0xFF00+uint16(c.reg.C), c.reg.A) })
	reg(0xF2, "LD A,(C)", func(c *CPU) { c.reg.A = c.readMem(0xFF00 + uint16(c.reg.C)) })
	reg(0xEA, "LD (a16),A", func(c *CPU) { c.writeMem(c.fetch16(), c.reg.A) })
	reg(0xFA, "LD A,(a16)", func(c *CPU) { c.reg.A = c.readMem(c.fetch16()) })

	reg(0xE8, "ADD SP,e8", func(c *CPU) {
		e := int8(c.fetch())
		c.tick(4)
		c.reg.SP = c.addSPe8(e)
		c.tick(4)
	})
	reg(0xF8, "LD HL,SP+e8", func(c *CPU) {
		e := int8(c.fetch())
		c.tick(4)
		c.reg.SetHL(c.addSPe8(e))
	})
	reg(0xF9, "LD SP,HL", func(c *CPU) { c.reg.SP = c.reg.HL(); c.tick(4) })

	reg(0xE6, "AND d8", func(c *CPU) { c.and8(c.fetch()) })
	reg(0xF6, "OR d8", func(c *CPU) { c.or8(c.fetch()) })
	reg(0xEE, "XOR d8", func(c *CPU) { c.xor8(c.fetch()) })
	reg(0xFE, "CP d8", func(c *CPU) { c.sub8(c.fetch(), false, true) })
	reg(0xC6, "ADD A,d8", func(c *CPU) { c.add8(c.fetch(), false) })
	reg(0xCE, "ADC A,d8", func(c *CPU) { c.add8(c.fetch(), c.reg.C()) })
	reg(0xD6, "SUB d8", func(c *CPU) { c.sub8(c.fetch(), false, false) })
	reg(0xDE, "SBC A,d8", func(c *CPU) { c.sub8(c.fetch(), c.reg.C(), false) })

	for i := byte(0); i < 4; i++ {
		i := i
		reg(0x01+i<<4, fmt.Sprintf("LD %s,d16", rrNames[i]), func(c *CPU) { c.writeRR(i, c.fetch16()) })
		reg(0x03+i<<4, fmt.Sprintf("INC %s", rrNames[i]), func(c *CPU) { c.writeRR(i, c.readRR(i)+1); c.tick(4) })
		reg(0x0B+i<<4, fmt.Sprintf("DEC %s", rrNames[i]), func(c *CPU) { c.writeRR(i, c.readRR(i)-1); c.tick(4) })
		reg(0x09+i<<4, fmt.Sprintf("ADD HL,%s", rrNames[i]), func(c *CPU) { c.addHL16(c.readRR(i)); c.tick(4) })

		reg(0xC1+i<<4, fmt.Sprintf("POP %s", stackNames[i]), func(c *CPU) { c.writeStackRR(i, c.pop16()) })
		reg(0xC5+i<<4, fmt.Sprintf("PUSH %s", stackNames[i]), func(c *CPU) { c.tick(4); c.push16(c.readStackRR(i)) })

		reg(0xC7+i<<4, fmt.Sprintf("RST %#02x", i*0x10), func(c *CPU) { opRST(c, uint16(i)*0x10) })
		reg(0xCF+i<<4, fmt.Sprintf("RST %#02x", i*0x10+8), func(c *CPU) { opRST(c, uint16(i)*0x10+8) })
	}

	for dst := byte(0); dst < 8; dst++ {
		dst := dst
		if dst != 6 {
			reg(0x04+dst<<3, "INC "+r8Names[dst], func(c *CPU) { c.writeR8(dst, c.inc8(c.readR8(dst))) })
			reg(0x05+dst<<3, "DEC "+r8Names[dst], func(c *CPU) { c.writeR8(dst, c.dec8(c.readR8(dst))) })
		} else {
			reg(0x04+dst<<3, "INC (HL)", func(c *CPU) {
				v := c.inc8(c.readMem(c.reg.HL()))
				c.writeMem(c.reg.HL(), v)
			})
			reg(0x05+dst<<3, "DEC (HL)", func(c *CPU) {
				v := c.dec8(c.readMem(c.reg.HL()))
				c.writeMem(c.reg.HL(), v)
			})
		}
		reg(0x06+dst<<3, "LD "+r8Names[dst]+",d8", func(c *CPU) { c.writeR8(dst, c.fetch()) })
	}

	for dst := byte(0); dst < 8; dst++ {
		for src := byte(0); src < 8; src++ {
			dst, src := dst, src
			opcode := 0x40 + dst<<3 + src
			if opcode == 0x76 {
				continue // HALT, registered explicitly above
			}
			reg(opcode, "LD "+r8Names[dst]+","+r8Names[src], func(c *CPU) { c.writeR8(dst, c.readR8(src)) })
		}
	}

	aluOps := []struct {
		base byte
		name string
		fn   func(c *CPU, v byte)
	}{
		{0x80, "ADD A,", func(c *CPU, v byte) { c.add8(v, false) }},
		{0x88, "ADC A,", func(c *CPU, v byte) { c.add8(v, c.reg.C()) }},
		{0x90, "SUB ", func(c *CPU, v byte) { c.sub8(v, false, false) }},
		{0x98, "SBC A,", func(c *CPU, v byte) { c.sub8(v, c.reg.C(), false) }},
		{0xA0, "AND ", func(c *CPU, v byte) { c.and8(v) }},
		{0xA8, "XOR ", func(c *CPU, v byte) { c.xor8(v) }},
		{0xB0, "OR ", func(c *CPU, v byte) { c.or8(v) }},
		{0xB8, "CP ", func(c *CPU, v byte) { c.sub8(v, false, true) }},
	}
	for _, op := range aluOps {
		op := op
		for src := byte(0); src < 8; src++ {
			src := src
			reg(op.base+src, op.name+r8Names[src], func(c *CPU) { op.fn(c, c.readR8(src)) })
		}
	}
}

func opJR(c *CPU, _ bool) {
	e := int8(c.fetch())
	c.reg.PC = uint16(int32(c.reg.PC) + int32(e))
	c.tick(4)
}

func opJRcc(c *CPU, cc byte) {
	e := int8(c.fetch())
	if c.cond(cc) {
		c.reg.PC = uint16(int32(c.reg.PC) + int32(e))
		c.tick(4)
	}
}

func opJP(c *CPU, _ bool) {
	addr := c.fetch16()
	c.reg.PC = addr
	c.tick(4)
}

func opJPcc(c *CPU, cc byte) {
	addr := c.fetch16()
	if c.cond(cc) {
		c.reg.PC = addr
		c.tick(4)
	}
}

func opCALL(c *CPU, _ bool) {
	addr := c.fetch16()
	c.tick(4)
	c.push16(c.reg.PC)
	c.reg.PC = addr
}

func opCALLcc(c *CPU, cc byte) {
	addr := c.fetch16()
	if c.cond(cc) {
		c.tick(4)
		c.push16(c.reg.PC)
		c.reg.PC = addr
	}
}

func opRET(c *CPU, _ bool) {
	c.reg.PC = c.pop16()
	c.tick(4)
}

func opRETcc(c *CPU, cc byte) {
	c.tick(4)
	if c.cond(cc) {
		c.reg.PC = c.pop16()
		c.tick(4)
	}
}

func opRST(c *CPU, vector uint16) {
	c.tick(4)
	c.push16(c.reg.PC)
	c.reg.PC = vector
}

func opHALT(c *CPU) {
	if !c.ime && c.irq.Any() {
		c.haltBug = true
		return
	}
	c.halted = true
}

func opSTOP(c *CPU) {
	c.fetch() // the padding byte following STOP
	if c.mem.SpeedSwitchArmed() {
		c.mem.CommitSpeedSwitch()
		c.tick(0x20000)
		return
	}
	c.stopped = true
}
