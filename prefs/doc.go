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

// Package prefs facilitates the storage of preference values. Values are
// stored atomically so they can be read from any goroutine while being
// changed from another.
//
// The supported types are Bool, Int, Float and Duration. Each type can be
// given a pre and post hook, called either side of a change to the value.
// Returning an error from the pre hook prevents the change.
//
// Preferences are collected into a Group under a key, for example
// "widescreen.sceneCutThreshold". A Group can apply values from the command
// line preference stack. The stack is a list of groups of key/value pairs,
// each group is parsed from a string of the form:
//
//	key::value; key::value
//
// Values on the command line stack are consumed when they are applied, so a
// value only ever affects the first Group that claims it.
//
// Preferences are not saved to disk. Their lifetime is that of the process.
package prefs
