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

import (
	"fmt"

	"github.com/jetsetilly/widegb/display"
)

// TilePosition is the coordinate of a tile in the grid of a scene. Each grid
// cell is the size of the screen.
type TilePosition struct {
	Horizontal int
	Vertical   int
}

func (pos TilePosition) String() string {
	return fmt.Sprintf("{%d,%d}", pos.Horizontal, pos.Vertical)
}

// Origin returns the logical coordinate of the top-left pixel of the tile.
func (pos TilePosition) Origin() display.Point {
	return display.Point{
		X: pos.Horizontal * display.Width,
		Y: pos.Vertical * display.Height,
	}
}

// floorDiv is integer division rounding towards negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// TilePositionAt returns the position of the tile containing the logical
// coordinate.
func TilePositionAt(p display.Point) TilePosition {
	return TilePosition{
		Horizontal: floorDiv(p.X, display.Width),
		Vertical:   floorDiv(p.Y, display.Height),
	}
}

// Tile is a screen-sized patch of stitched pixels. A tile is owned by exactly
// one Scene and its pixel buffer is never shared with another tile.
type Tile struct {
	Position TilePosition

	// ARGB pixels in row order. always display.PixelCount entries long
	Pixels []uint32

	// the tile was changed by the most recent frame
	Dirty bool
}

func newTile(pos TilePosition) *Tile {
	return &Tile{
		Position: pos,
		Pixels:   make([]uint32, display.PixelCount),
	}
}

func (t *Tile) String() string {
	return fmt.Sprintf("tile %s", t.Position)
}

// Pixel returns the colour at the tile-local coordinate.
func (t *Tile) Pixel(x, y int) uint32 {
	return t.Pixels[x+y*display.Width]
}

// set the colour at the logical coordinate, which must lie inside the tile
func (t *Tile) set(logical display.Point, color uint32) {
	o := t.Position.Origin()
	t.Pixels[(logical.X-o.X)+(logical.Y-o.Y)*display.Width] = color
	t.Dirty = true
}

// ClearDirty should be called by the view layer once the tile has been
// consumed. Calling it is optional because the engine clears the flag itself
// at the start of every frame.
func (t *Tile) ClearDirty() {
	t.Dirty = false
}
