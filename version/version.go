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

// Package version reports the version of the application. A release number
// can be set at build time with:
//
//	-ldflags "-X github.com/jetsetilly/widegb/version.number=v0.1.0"
//
// Otherwise the version is derived from the build information embedded by
// the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "widegb"

// set by the linker for release builds
var number string

// Info describes the build.
type Info struct {
	// release number, "unreleased" if built from a VCS checkout without a
	// number, or "local" if there is no VCS information at all
	Version string

	// VCS revision with "+dirty" appended if the working tree was modified
	Revision string

	// Go version used to build the application
	GoVersion string

	Release bool
}

func (inf Info) String() string {
	if inf.Release {
		return fmt.Sprintf("%s %s", ApplicationName, inf.Version)
	}
	return fmt.Sprintf("%s %s (%s) %s", ApplicationName, inf.Version, inf.Revision, inf.GoVersion)
}

// Version returns information about the current build.
func Version() Info {
	bi, _ := debug.ReadBuildInfo()
	return fromBuildInfo(bi, number)
}

func fromBuildInfo(bi *debug.BuildInfo, number string) Info {
	inf := Info{
		Version:  number,
		Revision: "no revision information",
		Release:  number != "",
	}

	if bi == nil {
		if number == "" {
			inf.Version = "local"
		}
		return inf
	}

	inf.GoVersion = bi.GoVersion

	var vcs bool
	var modified bool
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			inf.Revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if modified {
		inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
	}

	if number == "" {
		if vcs {
			inf.Version = "unreleased"
		} else {
			inf.Version = "local"
		}
	}

	return inf
}
