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

package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"path"
	"strings"
)

// Loader wraps a ROM image already read into memory by the host, plus
// bookkeeping the core uses to validate it.
type Loader struct {
	// Name is used only for diagnostics (debug_snapshot, log tags); it need
	// not correspond to a real filename.
	Name string

	// Data is the raw ROM image.
	Data []byte

	// Hash, once Load has run, is the sha1 of Data. A caller may set it
	// beforehand to have Load verify the image against a known-good hash.
	Hash string
}

// NewLoader wraps an already-read ROM image.
func NewLoader(name string, data []byte) Loader {
	return Loader{Name: name, Data: data}
}

// ShortName returns name without any path or extension, for display.
func (cl Loader) ShortName() string {
	short := path.Base(cl.Name)
	return strings.TrimSuffix(short, path.Ext(cl.Name))
}

// HasData reports whether the loader has any ROM bytes at all.
func (cl Loader) HasData() bool {
	return len(cl.Data) > 0
}

// Load computes the hash of Data and, if Hash was set beforehand, verifies
// it. Unlike the host-facing file/network loading this replaces, there is no
// I/O here: the bytes already arrived via NewLoader.
func (cl *Loader) Load() error {
	if len(cl.Data) == 0 {
		return fmt.Errorf("cartridgeloader: no data to load")
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		return fmt.Errorf("cartridgeloader: hash mismatch (got %s, want %s)", hash, cl.Hash)
	}
	cl.Hash = hash

	return nil
}
