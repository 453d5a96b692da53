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

// Package execution describes the outcome of a single CPU.Step call, for
// tracing and for the invariant checks in the test suite.
package execution

// Result records what a single Step produced.
type Result struct {
	// Address the instruction was fetched from.
	Address uint16

	// Opcode is the first byte fetched; CBOpcode is the second byte when
	// Opcode was the CB prefix (0xCB), else 0.
	Opcode   byte
	CBOpcode byte

	// Mnemonic names the instruction for tracing.
	Mnemonic string

	// Cycles is the number of T-cycles the instruction actually consumed
	// (conditional branches vary this from the table's base cost).
	Cycles int

	// Serviced is set when this Step instead serviced a pending interrupt.
	Serviced bool

	// Illegal is set when Opcode was one of the eleven genuinely undefined
	// primary opcodes; the CPU has locked up (halted) and will not
	// progress again until Reset.
	Illegal bool
}

func (r Result) String() string {
	if r.Serviced {
		return "interrupt service"
	}
	return r.Mnemonic
}
