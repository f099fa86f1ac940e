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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
// The pattern is remembered and is what distinguishes one curated error from
// another:
//
//	const capacity = "capacity exceeded (%d)"
//
//	e := curated.Errorf(capacity, 10)
//	if curated.Is(e, capacity) {
//		fmt.Println("true")
//	}
//
// Has() checks whether the pattern occurs anywhere in the error chain. A chain
// is formed by using a curated error as one of the placeholder values of
// another curated error:
//
//	f := curated.Errorf("stitching: %v", e)
//	curated.Has(f, capacity)  // true
//	curated.Is(f, capacity)   // false
//
// IsAny() answers whether an error was created by Errorf() at all. We think of
// curated errors as 'expected' errors and of uncurated errors as 'unexpected'.
//
// The Error() implementation normalises the message by removing duplicate
// adjacent parts, where parts are separated by the sub-string ": ". This means
// that an error can be wrapped with the same prefix at several levels without
// the prefix being repeated in the final message:
//
//	widescreen: widescreen: capacity exceeded (10)
//
// is reported as:
//
//	widescreen: capacity exceeded (10)
//
// Curated errors also implement Unwrap() so the first error found among the
// placeholder values is visible to errors.Is() and errors.As() from the
// standard library.
package curated
