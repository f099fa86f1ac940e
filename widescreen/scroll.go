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

// unwrap reinterprets a large jump in a scroll register as the register
// wrapping around the background. this cannot be correct for scroll speeds
// of more than about (BackgroundSize - fuzz) pixels per frame
//
//	255 -> 0 | delta is negative: scrolling right or down
//	0 -> 255 | delta is positive: scrolling left or up
func unwrap(delta int, fuzz int) int {
	threshold := display.BackgroundSize - fuzz
	if delta <= -threshold {
		return delta + display.BackgroundSize
	}
	if delta >= threshold {
		return delta - display.BackgroundSize
	}
	return delta
}

// UpdateHardwareScroll should be called once per frame with the values of the
// background scroll registers. Values are taken modulo 256.
//
// The change from the previous values is added to the logical scroll of the
// active scene, after correcting for the registers wrapping.
func (eng *Engine) UpdateHardwareScroll(scx, scy int) {
	n := display.Point{
		X: scx & (display.BackgroundSize - 1),
		Y: scy & (display.BackgroundSize - 1),
	}

	fuzz := eng.Prefs.WrapFuzz.Get().(int)
	delta := display.Point{
		X: unwrap(n.X-eng.hardwareScroll.X, fuzz),
		Y: unwrap(n.Y-eng.hardwareScroll.Y, fuzz),
	}

	eng.hardwareScroll = n
	eng.active.Scroll = eng.active.Scroll.Offset(delta)
}

// HardwareScroll returns the most recent scroll register values.
func (eng *Engine) HardwareScroll() display.Point {
	return eng.hardwareScroll
}

// Scroll returns the logical scroll of the active scene.
func (eng *Engine) Scroll() display.Point {
	return eng.active.Scroll
}
