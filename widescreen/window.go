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

// WindowRect returns the screen area covered by the window layer when it is
// positioned at wx, wy. The window extends to the bottom-right corner of the
// screen.
func WindowRect(wx, wy int) display.Rect {
	return display.Rect{
		X: min(wx, display.Width),
		Y: min(wy, display.Height),
		W: max(0, display.Width-wx),
		H: max(0, display.Height-wy),
	}
}

// UpdateWindow should be called once per frame with the state of the window
// layer. The window does not scroll with the background and pixels under it
// are never stitched.
func (eng *Engine) UpdateWindow(enabled bool, wx, wy int) display.Rect {
	eng.windowEnabled = enabled
	eng.windowRect = WindowRect(wx, wy)
	return eng.windowRect
}

// WindowEnabled returns true if the window layer was enabled for the most
// recent frame.
func (eng *Engine) WindowEnabled() bool {
	return eng.windowEnabled
}

// WindowRect returns the window rectangle from the most recent frame. The
// rectangle is meaningful only if WindowEnabled() is true.
func (eng *Engine) WindowRect() display.Rect {
	return eng.windowRect
}

// windowMask is the screen area excluded from stitching
func (eng *Engine) windowMask() display.Rect {
	if !eng.windowEnabled {
		return display.Rect{}
	}
	return eng.windowRect
}
