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

package logger

import (
	"fmt"
	"io"
)

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should always be allowed.
var Allow Permission = allow{}

// only one central log for the whole process. the CPU's instruction tracer,
// the cartridge loader and the PPU's diagnostics all write through it rather
// than to fmt.Println directly.
var central *logger

// maximum number of entries retained by the central logger.
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(perm Permission, tag, detail string) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag, detail string, args ...interface{}) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, fmt.Sprintf(detail, args...))
	}
}

// Clear removes all entries from the central logger.
func Clear() {
	central.clear()
}

// Write the contents of the central logger to w.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last number entries to w.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho causes every new log entry to also be written to stdout as it
// arrives, useful when running a ROM from the command line.
func SetEcho(enabled bool) {
	central.echo = enabled
}
