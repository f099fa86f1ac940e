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

// Package test contains helper functions to remove common boilerplate and make
// testing easier. The functions are meant to be used in conjunction with the
// standard go test harness.
//
// The Expect*() functions report a failure and allow the test to continue.
// The Demand*() functions end the test immediately. Use the Demand*() variants
// when later parts of the test depend on the value being correct, for example
// testing the length of a slice before indexing it.
//
// ExpectSuccess() and ExpectFailure() interpret the value according to its
// type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// Note that an untyped nil is considered a success. This is consistent with
// how errors are normally reported in Go and is what we want in the great
// majority of cases.
//
// The CompareWriter type implements io.Writer and should be used to capture
// output that is to be compared against an expected string.
package test
