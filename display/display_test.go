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

package display_test

import (
	"testing"

	"github.com/jetsetilly/widegb/display"
	"github.com/jetsetilly/widegb/test"
)

func TestContains(t *testing.T) {
	r := display.Rect{X: 20, Y: 10, W: 140, H: 134}

	test.ExpectSuccess(t, r.Contains(display.Point{X: 20, Y: 10}))
	test.ExpectSuccess(t, r.Contains(display.Point{X: 159, Y: 143}))
	test.ExpectFailure(t, r.Contains(display.Point{X: 19, Y: 10}))
	test.ExpectFailure(t, r.Contains(display.Point{X: 20, Y: 9}))
	test.ExpectFailure(t, r.Contains(display.Point{X: 160, Y: 10}))

	// zero area rectangles contain nothing
	e := display.Rect{X: 160, Y: 144}
	test.ExpectSuccess(t, e.Empty())
	test.ExpectFailure(t, e.Contains(display.Point{X: 160, Y: 144}))
}

func TestIntersects(t *testing.T) {
	vp := display.Rect{X: 0, Y: 0, W: display.Width, H: display.Height}

	test.ExpectSuccess(t, vp.Intersects(display.Rect{X: -10, Y: -10, W: 11, H: 11}))
	test.ExpectFailure(t, vp.Intersects(display.Rect{X: -10, Y: -10, W: 10, H: 10}))
	test.ExpectFailure(t, vp.Intersects(display.Rect{X: 160, Y: 0, W: 160, H: 144}))
	test.ExpectSuccess(t, vp.Intersects(display.Rect{X: 159, Y: 143, W: 160, H: 144}))
}

func TestOffsetAndScale(t *testing.T) {
	r := display.Rect{X: 1, Y: 2, W: 3, H: 4}
	test.ExpectEquality(t, r.Offset(10, 20), display.Rect{X: 11, Y: 22, W: 3, H: 4})
	test.ExpectEquality(t, r.Scale(2, 0.5), display.Rect{X: 2, Y: 1, W: 6, H: 2})

	p := display.Point{X: -5, Y: 5}
	test.ExpectEquality(t, p.Offset(display.Point{X: 5, Y: -5}), display.Point{})
	test.ExpectEquality(t, p.String(), "(-5,5)")
}
