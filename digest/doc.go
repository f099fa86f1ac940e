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

// Package digest computes the two per-frame fingerprints used by the
// stitching engine.
//
// The exact hash is a cheap accumulator over the RGB sum of every pixel. It is
// fully deterministic, so byte-identical frames always produce the same value,
// and is used as a content address when looking for a previously seen frame.
// The accumulator is order dependent but makes no attempt to be collision
// resistant. A collision causes at worst a brief mis-stitch.
//
// The perceptual hash is a difference hash over an 8x8 grid of average
// luminance values. The number of grid cells brighter than their upper-left
// neighbour is encoded as a run of set bits, so that the Hamming distance
// between two perceptual hashes is the difference in that count. Small
// changes to the frame, such as a moving sprite, barely move the count. A
// change of scene moves it a lot.
//
// The Screen type accumulates a frame one pixel at a time, in the manner of a
// television pixel renderer, and latches both hashes when the frame is
// complete.
package digest
