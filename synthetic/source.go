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

package synthetic

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jetsetilly/widegb/digest"
	"github.com/jetsetilly/widegb/display"
	"github.com/jetsetilly/widegb/widescreen"
	"golang.org/x/image/draw"
)

// WindowColor is the colour used for the window layer.
const WindowColor = 0xff101010

// CutColor is a suitable colour for a background that will cause a scene cut
// when switched to from a background created by Pattern().
var CutColor = color.NRGBA{R: 0x80, G: 0x20, B: 0x20, A: 0xff}

// Source is a producer of frames for the widescreen engine.
type Source struct {
	background *image.NRGBA

	// unbounded camera position. the view of the background wraps
	camera   image.Point
	velocity image.Point

	windowEnabled bool
	wx, wy        int

	frameNum int

	// buffers reused by each call to Next()
	pixels []uint32
	rgb    []byte
}

// NewSource is the preferred method of initialisation for the Source type.
func NewSource(background image.Image) *Source {
	src := &Source{
		pixels: make([]uint32, display.PixelCount),
		rgb:    make([]byte, digest.RGBLength),
	}
	src.Switch(background)
	return src
}

func (src *Source) String() string {
	b := src.background.Bounds()
	return fmt.Sprintf("%dx%d background, camera %v, velocity %v", b.Dx(), b.Dy(), src.camera, src.velocity)
}

// Switch replaces the background image and returns the camera to the origin.
//
// Backgrounds smaller than the screen are scaled up so that a single frame
// never shows the same part of the background twice.
func (src *Source) Switch(background image.Image) {
	src.background = prepare(background)
	src.camera = image.Point{}
}

func prepare(img image.Image) *image.NRGBA {
	b := img.Bounds()

	scale := 1
	for b.Dx()*scale < display.Width || b.Dy()*scale < display.Height {
		scale++
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	if scale == 1 {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	} else {
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	}

	return dst
}

// SetVelocity sets the number of pixels the camera moves after each frame.
func (src *Source) SetVelocity(dx, dy int) {
	src.velocity = image.Point{X: dx, Y: dy}
}

// SetWindow sets the state of the window layer for future frames.
func (src *Source) SetWindow(enabled bool, wx, wy int) {
	src.windowEnabled = enabled
	src.wx = wx
	src.wy = wy
}

// Camera returns the position of the camera for the next frame.
func (src *Source) Camera() image.Point {
	return src.camera
}

// FrameNum returns the number of frames produced.
func (src *Source) FrameNum() int {
	return src.frameNum
}

// Background returns the current background after any scaling.
func (src *Source) Background() *image.NRGBA {
	return src.background
}

// Next returns the frame at the current camera position and then moves the
// camera. The buffers in the returned frame are reused by the next call to
// Next().
func (src *Source) Next() widescreen.Frame {
	b := src.background.Bounds()

	var wnd display.Rect
	if src.windowEnabled {
		wnd = widescreen.WindowRect(src.wx, src.wy)
	}

	for y := 0; y < display.Height; y++ {
		by := mod(src.camera.Y+y, b.Dy())
		for x := 0; x < display.Width; x++ {
			i := x + y*display.Width
			if wnd.Contains(display.Point{X: x, Y: y}) {
				src.pixels[i] = WindowColor
				continue
			}
			bx := mod(src.camera.X+x, b.Dx())
			src.pixels[i] = argb(src.background.NRGBAAt(bx, by))
		}
	}
	src.rgb = digest.RGBFromARGB(src.rgb, src.pixels)

	f := widescreen.Frame{
		Pixels:        src.pixels,
		RGB:           src.rgb,
		SCX:           uint8(mod(src.camera.X, display.BackgroundSize)),
		SCY:           uint8(mod(src.camera.Y, display.BackgroundSize)),
		WindowEnabled: src.windowEnabled,
		WX:            src.wx,
		WY:            src.wy,
	}

	src.camera = src.camera.Add(src.velocity)
	src.frameNum++

	return f
}

// alpha is ignored. backgrounds are assumed to be opaque
func argb(c color.NRGBA) uint32 {
	return 0xff000000 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
