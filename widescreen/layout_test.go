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

package widescreen_test

import (
	"testing"

	"github.com/jetsetilly/widegb/display"
	"github.com/jetsetilly/widegb/test"
	"github.com/jetsetilly/widegb/widescreen"
)

func TestRectForTile(t *testing.T) {
	eng, _ := newEngine(t)
	eng.UpdateHardwareScroll(30, 0)
	test.DemandSuccess(t, eng.UpdateScreen(uniform(1), 1, 0))
	test.DemandEquality(t, eng.TileCount(), 2)

	viewport := display.Rect{W: display.Width, H: display.Height}

	t0 := eng.TileAtPosition(widescreen.TilePosition{})
	test.ExpectEquality(t, eng.RectForTile(t0), display.Rect{X: -30, W: 160, H: 144})
	test.ExpectSuccess(t, eng.IsTileVisible(t0, viewport))

	t1 := eng.TileAtPosition(widescreen.TilePosition{Horizontal: 1})
	test.ExpectEquality(t, eng.RectForTile(t1), display.Rect{X: 130, W: 160, H: 144})
	test.ExpectSuccess(t, eng.IsTileVisible(t1, viewport))

	// scrolling right takes the first tile out of view
	eng.UpdateHardwareScroll(190, 0)
	test.ExpectFailure(t, eng.IsTileVisible(t0, viewport))
	test.ExpectSuccess(t, eng.IsTileVisible(t0, viewport.Offset(-100, 0)))
}

func TestScreenLayout(t *testing.T) {
	eng, _ := newEngine(t)

	bg1, bg2, wnd := eng.ScreenLayout()
	test.ExpectEquality(t, bg1, display.Rect{W: 160, H: 144})
	test.ExpectEquality(t, bg2, display.Rect{Y: 144, W: 160})
	test.ExpectEquality(t, wnd, display.Rect{X: 160, Y: 144})

	eng.UpdateWindow(true, 20, 10)
	bg1, bg2, wnd = eng.ScreenLayout()
	test.ExpectEquality(t, bg1, display.Rect{W: 160, H: 10})
	test.ExpectEquality(t, bg2, display.Rect{Y: 10, W: 20, H: 134})
	test.ExpectEquality(t, wnd, display.Rect{X: 20, Y: 10, W: 140, H: 134})
}

func TestWindowCoveringScreen(t *testing.T) {
	eng, _ := newEngine(t)

	eng.UpdateWindow(false, 0, 0)
	test.ExpectFailure(t, eng.IsWindowCoveringScreen(8))

	eng.UpdateWindow(true, 7, 0)
	test.ExpectSuccess(t, eng.IsWindowCoveringScreen(8))

	eng.UpdateWindow(true, 8, 0)
	test.ExpectFailure(t, eng.IsWindowCoveringScreen(8))

	eng.UpdateWindow(true, 0, 100)
	test.ExpectFailure(t, eng.IsWindowCoveringScreen(8))
}
