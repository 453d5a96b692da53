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

// Command opcodegraph renders the LR35902 primary and CB-prefixed dispatch
// tables as a Graphviz dot graph, so an unpopulated (illegal) opcode slot
// shows up as a visibly different node rather than requiring a manual scan
// of a 256-entry table.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"

	"gbcore/hardware/cpu"
)

// opcodeTable is the value memviz walks: two named slices, one per
// dispatch table, so the rendered graph groups nodes by table.
type opcodeTable struct {
	Primary [256]cpu.OpcodeInfo
	CB      [256]cpu.OpcodeInfo
}

func main() {
	out := flag.String("o", "opcodes.dot", "output path for the generated dot graph")
	flag.Parse()

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, "opcodegraph:", err)
		os.Exit(1)
	}
	defer f.Close()

	table := opcodeTable{
		Primary: cpu.PrimaryOpcodes(),
		CB:      cpu.CBOpcodes(),
	}
	memviz.Map(f, &table)

	illegal := 0
	for _, o := range table.Primary {
		if o.Illegal {
			illegal++
		}
	}
	fmt.Printf("wrote %s (%d illegal primary opcodes)\n", *out, illegal)
}
