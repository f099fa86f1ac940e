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

// Package atlas exports the tiles of a scene as a single image. Each tile is
// placed at its grid position so the result is the stitched view of the
// scene. Parts of the grid without a tile, and parts of a tile that have
// never been written to, are transparent.
//
// The atlas is a diagnostic aid. It does not composite the window layer or
// blend tiles in any way.
package atlas
