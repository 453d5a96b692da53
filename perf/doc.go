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

// Package perf is an optional runtime-stats dashboard, built only when the
// "statsview" build tag is present.
//
//	It provides an HTTP server running locally offering runtime statistics,
//	underlying functionality provided by "github.com/go-echarts/statsview".
//	The frames-per-second figure cmd/gbplay reports each second through
//	ReportFPS is written to the central logger, not served by this dashboard.
//
//	After Launch, graphical statistics are viewable at:
//
//		localhost:12600/debug/statsview
//
//	And standard Go pprof statistics are available at:
//
//		localhost:12600/debug/pprof/
//
// Without the build tag, Available reports false and Launch/ReportFPS are
// no-ops, so cmd/gbplay links either way.
package perf
