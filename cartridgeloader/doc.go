// This file is part of gbcore.
//
// gbcore is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
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

// Package cartridgeloader is used to specify the data that is to be
// attached to the emulated console.
//
// Loading a file from disk, over HTTP, or from any other source is the
// host's responsibility (the core has no filesystem or network access of
// its own); cartridgeloader.Loader wraps whatever []byte the host already
// obtained and computes the hash gbcore.Machine.LoadROM checks its
// fingerprinting against.
package cartridgeloader
