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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes, each of which can have its own set of
// flags.
//
// Arguments are given to NewArgs() and processed by Parse(). Flags must be
// added between the two calls, in the same way as for a flag.FlagSet:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("STITCH", "DIGEST")
//	p, err := md.Parse()
//
// If sub-modes have been added, the first argument after the flags is
// compared against them (case insensitively). If it matches, Mode() returns
// it and the argument is consumed. Otherwise the first sub-mode is the
// default.
//
// Once a mode has been selected, NewMode() prepares for the next round of
// parsing. Flags specific to the mode are added and Parse() is called again:
//
//	switch md.Mode() {
//	case "STITCH":
//		md.NewMode()
//		frames := md.AddInt("frames", 600, "number of frames")
//		p, err := md.Parse()
//		...
//	}
//
// Modes can be nested as deep as required. Path() returns the modes selected
// so far, separated by a slash.
//
// Parse() prints help when the -help flag is seen and returns ParseHelp.
package modalflag
