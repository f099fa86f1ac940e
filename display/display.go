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

package display

import "fmt"

// Dimensions of the visible LCD. These are also the dimensions of a single
// stitched tile.
const (
	Width  = 160
	Height = 144
)

// PixelCount is the number of pixels in a single frame.
const PixelCount = Width * Height

// BackgroundSize is the width and height of the hardware background map. The
// scroll registers wrap at this value.
const BackgroundSize = 256

// Point is a position in screen or logical space.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Offset returns the point moved by the offset.
func (p Point) Offset(offset Point) Point {
	p.X += offset.X
	p.Y += offset.Y
	return p
}

// Rect is a rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) String() string {
	return fmt.Sprintf("{%d,%d %dx%d}", r.X, r.Y, r.W, r.H)
}

// Empty returns true if the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains returns true if the point lies inside the rectangle. The right and
// bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X < r.X+r.W &&
		r.Y <= p.Y && p.Y < r.Y+r.H
}

// Intersects returns true if the two rectangles overlap.
func (r Rect) Intersects(o Rect) bool {
	return o.X < r.X+r.W && r.X < o.X+o.W &&
		o.Y < r.Y+r.H && r.Y < o.Y+o.H
}

// Offset returns the rectangle moved by dx and dy.
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Scale returns the rectangle with every field multiplied by the scaling
// factors. Results are truncated towards zero.
func (r Rect) Scale(sx, sy float64) Rect {
	r.X = int(float64(r.X) * sx)
	r.Y = int(float64(r.Y) * sy)
	r.W = int(float64(r.W) * sx)
	r.H = int(float64(r.H) * sy)
	return r
}
