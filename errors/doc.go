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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package errors defines the core's error kinds. A CoreError pairs an Errno
// with the values needed to format its message, so callers can compare
// kinds with Is() instead of matching against Error() strings:
//
//	if _, err := cart.Load(rom); err != nil {
//		if errors.Is(err, errors.InvalidRom) {
//			// ask for a different file
//		}
//	}
package errors
