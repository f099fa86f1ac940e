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

package version

import (
	"runtime/debug"
	"testing"

	"github.com/jetsetilly/widegb/test"
)

func TestVersion(t *testing.T) {
	inf := fromBuildInfo(nil, "")
	test.ExpectEquality(t, inf.Version, "local")
	test.ExpectFailure(t, inf.Release)

	bi := &debug.BuildInfo{
		GoVersion: "go1.24.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs", Value: "git"},
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	inf = fromBuildInfo(bi, "")
	test.ExpectEquality(t, inf.Version, "unreleased")
	test.ExpectEquality(t, inf.Revision, "abc123+dirty")
	test.ExpectEquality(t, inf.String(), "widegb unreleased (abc123+dirty) go1.24.0")

	inf = fromBuildInfo(bi, "v0.1.0")
	test.ExpectSuccess(t, inf.Release)
	test.ExpectEquality(t, inf.String(), "widegb v0.1.0")
}
