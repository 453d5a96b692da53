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

// Package instance defines those parts of the emulation that might change
// from instance to instance of the Machine type, but are not the Machine
// itself. Particularly useful when running more than one instance of the
// emulation in parallel, e.g. a test harness comparing two ROMs.
package instance

import (
	"gbcore/config"
	"gbcore/random"
)

// Label indicates the context an instance is running in.
type Label string

// List of valid Label values.
const (
	Main Label = ""
	Test Label = "test"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the Machine type, but is not the Machine
// itself.
type Instance struct {
	Label Label

	Config *config.Config
	Random *random.Random
}

// NewInstance is the preferred method of initialisation for the Instance
// type. cfg may be nil, in which case config.NewConfig defaults are used.
func NewInstance(clk random.Clocker, cfg *config.Config) *Instance {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Instance{
		Config: cfg,
		Random: random.NewRandom(clk),
	}
}

// Normalise puts the instance into a known default state, useful for
// regression testing where the initial state must be identical run to run.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
}
