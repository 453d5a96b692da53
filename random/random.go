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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Clocker is implemented by anything that can report the CPU's monotonic
// T-cycle count, used to vary the random sequence as emulation progresses.
type Clocker interface {
	Clocks() int64
}

// Random is a random number generator sensitive to the CPU clock it is
// attached to, so that WRAM/HRAM poisoning is reproducible for a given run.
type Random struct {
	clk Clocker

	// use zero seed rather than the process-wide base seed. useful for
	// tests where random numbers must be predictable.
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(clk Clocker) *Random {
	return &Random{clk: clk}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(rnd.clk.Clocks()))
	}
	return rand.New(rand.NewSource(baseSeed + rnd.clk.Clocks()))
}

// Intn returns a non-negative random number in [0,n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Byte returns a random byte, used to poison uninitialised RAM when the
// MMU is constructed.
func (rnd *Random) Byte() byte {
	return byte(rnd.rand().Intn(256))
}
