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

// Package random should be used in preference to the math/rand package
// whenever a random number is required inside the emulation.
//
// Numbers returned are a function of the CPU's monotonic T-cycle counter at
// the moment of the call, so repeated runs of the same ROM from the same
// starting state draw the same sequence. Set ZeroSeed to disregard the
// process-wide base seed entirely and derive numbers purely from the clock
// value passed in; this is what tests use to get reproducible poison
// patterns.
package random
