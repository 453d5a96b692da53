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

//go:build !statsview
// +build !statsview

package perf

import "io"

// Launch is a no-op in builds without the statsview tag.
func Launch(output io.Writer) {}

// Available returns false: this binary was built without the statsview tag.
func Available() bool { return false }

// ReportFPS is a no-op in builds without the statsview tag.
func ReportFPS(fps float64) {}
