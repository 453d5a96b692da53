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

// OpcodeInfo describes one slot of the primary or CB-prefixed dispatch
// table, for tooling that wants to inspect the table's shape without
// executing anything (cmd/opcodegraph).
type OpcodeInfo struct {
	Opcode   byte
	Mnemonic string
	Illegal  bool
}

// PrimaryOpcodes returns the shape of the 256-entry primary dispatch table.
func PrimaryOpcodes() [256]OpcodeInfo {
	var out [256]OpcodeInfo
	for i := range out {
		out[i] = OpcodeInfo{Opcode: byte(i), Mnemonic: mnemonics[i], Illegal: illegalOpcodes[i]}
	}
	return out
}

// CBOpcodes returns the shape of the 256-entry CB-prefixed dispatch table.
// None of these slots are illegal; 0xCB dispatches unconditionally into
// this table for every second byte.
func CBOpcodes() [256]OpcodeInfo {
	var out [256]OpcodeInfo
	for i := range out {
		out[i] = OpcodeInfo{Opcode: byte(i), Mnemonic: cbMnemonics[i]}
	}
	return out
}
