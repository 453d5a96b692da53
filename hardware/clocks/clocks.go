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

// Package clocks defines the constant values that describe the timing of
// the main clock in the console, at both 1x and GBC double speed.
package clocks

// Frequency is the base T-cycle frequency, in Hz, of the system clock.
const Frequency = 4194304

// CyclesPerScanline is the number of T-cycles occupied by one PPU scanline,
// whether the line is visible or part of VBlank.
const CyclesPerScanline = 456

// VisibleScanlines is the number of scanlines the PPU actually draws.
const VisibleScanlines = 144

// TotalScanlines is the number of scanlines the PPU counts through per
// frame, including the 10 lines of VBlank.
const TotalScanlines = 154

// CyclesPerFrame is the number of T-cycles in one complete frame at 1x
// speed: 456 * 154.
const CyclesPerFrame = CyclesPerScanline * TotalScanlines

// FrameRate is the refresh rate implied by CyclesPerFrame at Frequency,
// approximately 59.73 Hz.
const FrameRate = float64(Frequency) / float64(CyclesPerFrame)

// DoubleSpeedDivisor is how much more slowly the DIV/TIMA timers and the
// CPU's own instruction throughput must be read relative to the PPU's
// constant real-time pace once GBC double-speed mode is armed.
const DoubleSpeedDivisor = 2

// DIVCycles is the number of T-cycles, at 1x speed, between increments of
// the DIV register.
const DIVCycles = 256

// StopSwitchLatency is the number of T-cycles a STOP-triggered double-speed
// switch is modelled as consuming.
const StopSwitchLatency = 0x20000

// TIMA frequencies selectable via TAC bits 1-0, in Hz, at 1x speed.
var TIMAFrequencies = [4]int{4096, 262144, 65536, 16384}
