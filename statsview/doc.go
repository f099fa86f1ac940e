// This file is part of widegb.
//
// widegb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// widegb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with widegb.  If not, see <https://www.gnu.org/licenses/>.

// Package statsview provides a HTTP server running locally offering runtime
// statistics while frames are being stitched. Underlying functionality is
// provided by "github.com/go-echarts/statsview".
//
// The server is only available when the statsview build constraint is
// present. Without it, Launch() does nothing and Available() returns false.
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12160/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12160/debug/pprof/
package statsview

// Address is the default address of the statistics server.
const Address = "localhost:12160"

const url = "/debug/statsview"
