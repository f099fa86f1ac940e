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

package atlas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/jetsetilly/widegb/curated"
	"github.com/jetsetilly/widegb/display"
	"github.com/jetsetilly/widegb/widescreen"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// bounds returns the smallest and largest tile positions
func bounds(tiles []*widescreen.Tile) (widescreen.TilePosition, widescreen.TilePosition) {
	lo := tiles[0].Position
	hi := tiles[0].Position
	for _, t := range tiles[1:] {
		lo.Horizontal = min(lo.Horizontal, t.Position.Horizontal)
		lo.Vertical = min(lo.Vertical, t.Position.Vertical)
		hi.Horizontal = max(hi.Horizontal, t.Position.Horizontal)
		hi.Vertical = max(hi.Vertical, t.Position.Vertical)
	}
	return lo, hi
}

// Origin returns the tile position that is drawn at the top-left corner of
// the atlas.
func Origin(tiles []*widescreen.Tile) widescreen.TilePosition {
	if len(tiles) == 0 {
		return widescreen.TilePosition{}
	}
	lo, _ := bounds(tiles)
	return lo
}

// Compose draws every tile into a new image. An empty list of tiles results
// in an empty image.
func Compose(tiles []*widescreen.Tile) *image.NRGBA {
	if len(tiles) == 0 {
		return image.NewNRGBA(image.Rectangle{})
	}

	lo, hi := bounds(tiles)
	img := image.NewNRGBA(image.Rect(0, 0,
		(hi.Horizontal-lo.Horizontal+1)*display.Width,
		(hi.Vertical-lo.Vertical+1)*display.Height))

	for _, t := range tiles {
		ox := (t.Position.Horizontal - lo.Horizontal) * display.Width
		oy := (t.Position.Vertical - lo.Vertical) * display.Height
		for y := 0; y < display.Height; y++ {
			i := img.PixOffset(ox, oy+y)
			for x := 0; x < display.Width; x++ {
				p := t.Pixel(x, y)
				img.Pix[i] = uint8(p >> 16)
				img.Pix[i+1] = uint8(p >> 8)
				img.Pix[i+2] = uint8(p)
				img.Pix[i+3] = uint8(p >> 24)
				i += 4
			}
		}
	}

	return img
}

var (
	labelShadow = image.NewUniform(color.NRGBA{A: 0xff})
	labelText   = image.NewUniform(color.NRGBA{R: 0xff, G: 0xff, A: 0xff})
)

// Label writes the grid position of each tile in its top-left corner. The
// image should be one returned by Compose() for the same list of tiles.
func Label(img draw.Image, tiles []*widescreen.Tile) {
	lo := Origin(tiles)
	for _, t := range tiles {
		x := (t.Position.Horizontal-lo.Horizontal)*display.Width + 2
		y := (t.Position.Vertical-lo.Vertical)*display.Height + 14
		s := fmt.Sprintf("%d,%d", t.Position.Horizontal, t.Position.Vertical)

		(&font.Drawer{
			Dst:  img,
			Src:  labelShadow,
			Face: inconsolata.Regular8x16,
			Dot:  fixed.Point26_6{X: fixed.I(x + 1), Y: fixed.I(y + 1)},
		}).DrawString(s)
		(&font.Drawer{
			Dst:  img,
			Src:  labelText,
			Face: inconsolata.Regular8x16,
			Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
		}).DrawString(s)
	}
}

// WritePNG encodes the image as a PNG. If scale is greater than one the
// image is enlarged first.
func WritePNG(w io.Writer, img image.Image, scale int) error {
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
		img = dst
	}

	err := png.Encode(w, img)
	if err != nil {
		return curated.Errorf("atlas: %v", err)
	}
	return nil
}
