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

// Package widescreen stitches the frames of a 160x144 display into a larger,
// persistent view of the background.
//
// The hardware only ever shows a screen-sized window into a background map
// that wraps at 256 pixels. By following the scroll registers from frame to
// frame the Engine unwraps them into an unbounded logical scroll offset and
// writes every frame into a grid of screen-sized tiles at that offset. Over
// time the tiles accumulate a picture of everything that has been scrolled
// past.
//
// Tiles belong to a Scene. When the perceptual hash of a frame differs
// sufficiently from the previous frame the display is assumed to have cut to
// a different place, and a new Scene is started. Every frame's exact hash is
// recorded against the scene and scroll position it was seen at, so that
// when a recognised frame is seen shortly after a cut the earlier scene is
// recalled rather than being duplicated.
//
// Scenes younger than the YoungSceneDelay preference are treated with
// suspicion. A young scene that is cut away from is deleted, on the basis
// that it was probably a screen transition full of garbage. A young scene is
// also the only kind of scene that will be replaced by a recall.
//
// The Engine is driven by a single call to Update() for every completed
// frame. It is not safe for concurrent use. The view layer reads the tiles of
// the active scene between calls. The dirty flag of a tile is set if the tile
// was changed by the most recent call to Update() or UpdateScreen().
package widescreen
