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
	"github.com/jetsetilly/widegb/display"
)

// RectForTile returns the area of the tile in screen space, given the scroll
// of the active scene.
func (eng *Engine) RectForTile(t *Tile) display.Rect {
	o := t.Position.Origin()
	return display.Rect{
		X: o.X - eng.active.Scroll.X,
		Y: o.Y - eng.active.Scroll.Y,
		W: display.Width,
		H: display.Height,
	}
}

// IsTileVisible returns true if any part of the tile lies inside the
// viewport. The viewport is in screen space.
func (eng *Engine) IsTileVisible(t *Tile, viewport display.Rect) bool {
	return viewport.Intersects(eng.RectForTile(t))
}

// ScreenLayout splits the LCD into the areas showing the background and the
// area showing the window. The first background rectangle is the full width
// band above the window. The second is the band to the left of the window.
//
// If the window is disabled the window rectangle is the empty rectangle at
// the bottom-right corner of the screen.
func (eng *Engine) ScreenLayout() (bg1 display.Rect, bg2 display.Rect, wnd display.Rect) {
	wnd = display.Rect{X: display.Width, Y: display.Height}
	if eng.windowEnabled {
		wnd = eng.windowRect
	}

	bg1 = display.Rect{X: 0, Y: 0, W: display.Width, H: wnd.Y}
	bg2 = display.Rect{X: 0, Y: wnd.Y, W: wnd.X, H: display.Height - wnd.Y}

	return bg1, bg2, wnd
}

// IsWindowCoveringScreen returns true if the window is enabled and its origin
// is less than tolerance pixels from the top-left corner of the screen.
func (eng *Engine) IsWindowCoveringScreen(tolerance int) bool {
	if !eng.windowEnabled {
		return false
	}
	return eng.windowRect.X < tolerance && eng.windowRect.Y < tolerance
}
