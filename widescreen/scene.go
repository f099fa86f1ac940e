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
	"time"

	"github.com/jetsetilly/widegb/curated"
	"github.com/jetsetilly/widegb/display"
)

// Scene is an accumulation of tiles sharing one logical scroll origin. It
// represents one "place" that the background has shown.
type Scene struct {
	ID        int
	CreatedAt time.Time

	// the logical scroll of the scene. unbounded in both directions
	Scroll display.Point

	// tiles in order of creation. the index is keyed by tile position and
	// is kept in step with the tiles slice
	tiles []*Tile
	index map[TilePosition]*Tile
}

func newScene(id int, createdAt time.Time) *Scene {
	return &Scene{
		ID:        id,
		CreatedAt: createdAt,
		index:     make(map[TilePosition]*Tile),
	}
}

func (s *Scene) String() string {
	return fmt.Sprintf("scene %d (%d tiles, scroll %s)", s.ID, len(s.tiles), s.Scroll)
}

// Age returns how long the scene has existed at the time given.
func (s *Scene) Age(now time.Time) time.Duration {
	return now.Sub(s.CreatedAt)
}

// TileCount returns the number of tiles in the scene.
func (s *Scene) TileCount() int {
	return len(s.tiles)
}

// TileAt returns the tile at the index. Tiles are indexed in order of
// creation.
func (s *Scene) TileAt(i int) *Tile {
	return s.tiles[i]
}

// Tiles returns every tile in the scene in order of creation. The returned
// slice is a copy but the tiles are not.
func (s *Scene) Tiles() []*Tile {
	return append([]*Tile(nil), s.tiles...)
}

// TileAtPosition returns the tile at the grid position or nil if there is no
// tile there.
func (s *Scene) TileAtPosition(pos TilePosition) *Tile {
	return s.index[pos]
}

func (s *Scene) createTile(pos TilePosition, maxTiles int) (*Tile, error) {
	if len(s.tiles) >= maxTiles {
		return nil, curated.Errorf(CapacityExceeded, "tile", maxTiles)
	}
	t := newTile(pos)
	s.tiles = append(s.tiles, t)
	s.index[pos] = t
	return t, nil
}

// writePixel writes the colour at the screen coordinate into the tile that
// the current scroll position maps it to. the tile is created if necessary
func (s *Scene) writePixel(p display.Point, color uint32, maxTiles int) (*Tile, error) {
	logical := s.Scroll.Offset(p)
	pos := TilePositionAt(logical)

	t := s.index[pos]
	if t == nil {
		var err error
		t, err = s.createTile(pos, maxTiles)
		if err != nil {
			return nil, err
		}
	}

	t.set(logical, color)

	return t, nil
}

// writeFrame writes every pixel of the frame not in the mask. pixels that
// would require a new tile beyond the capacity limit are dropped and the
// first such error is returned after the rest of the frame is written
func (s *Scene) writeFrame(pixels []uint32, mask display.Rect, maxTiles int) error {
	var err error

	// tiles that could not be created this frame
	var refused map[TilePosition]bool

	// the most recently used tile. consecutive pixels nearly always map to
	// the same tile
	var last *Tile

	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			p := display.Point{X: x, Y: y}
			if mask.Contains(p) {
				continue
			}

			logical := s.Scroll.Offset(p)
			pos := TilePositionAt(logical)

			t := last
			if t == nil || t.Position != pos {
				t = s.index[pos]
				if t == nil {
					if refused[pos] {
						continue
					}
					var cerr error
					t, cerr = s.createTile(pos, maxTiles)
					if cerr != nil {
						if err == nil {
							err = cerr
						}
						if refused == nil {
							refused = make(map[TilePosition]bool)
						}
						refused[pos] = true
						continue
					}
				}
				last = t
			}

			t.set(logical, pixels[x+y*display.Width])
		}
	}

	return err
}

func (s *Scene) markAllDirty() {
	for _, t := range s.tiles {
		t.Dirty = true
	}
}

func (s *Scene) clearDirty() {
	for _, t := range s.tiles {
		t.Dirty = false
	}
}

// destroy releases the tiles of the scene. the scene must not be used
// afterwards
func (s *Scene) destroy() {
	for _, t := range s.tiles {
		t.Pixels = nil
	}
	s.tiles = nil
	s.index = nil
}
