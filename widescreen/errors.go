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

package widescreen

// Sentinel patterns for curated errors returned or logged by the package.
const (
	// returned when a new tile or scene would exceed the limits set by the
	// MaxTiles and MaxScenes preferences. the engine remains usable
	CapacityExceeded = "widescreen: %s capacity exceeded (%d)"

	// logged when a registered frame refers to a scene that no longer
	// exists. never returned
	RecallTargetMissing = "widescreen: recall target scene %d not found"

	// returned by Update() and UpdateScreen() when the buffers in a frame
	// are not the correct size
	BadFrame = "widescreen: frame: %v"
)

// tag used for all log entries made by the package
const logTag = "widescreen"
