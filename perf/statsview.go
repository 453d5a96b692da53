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

//go:build statsview
// +build statsview

package perf

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"gbcore/logger"
)

const Address = "localhost:12600"
const url = "/debug/statsview"

// Launch starts a new goroutine running the stats dashboard.
func Launch(output io.Writer) {
	go func() {
		viewer.SetConfiguration(viewer.WithAddr(Address))
		mgr := statsview.New()
		mgr.Start()
	}()

	output.Write([]byte(fmt.Sprintf("stats server available at %s%s\n", Address, url)))
}

// Available returns true if a dashboard is available to launch.
func Available() bool {
	return true
}

// ReportFPS records the most recently measured frames-per-second figure,
// logged alongside the Go runtime stats the dashboard is already serving.
func ReportFPS(fps float64) {
	logger.Logf(logger.Allow, "perf", "%.1f fps", fps)
}
