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
	"image"
	"image/color"
)

// Pattern returns a background of the given size. The red channel increases
// from left to right and the green channel from top to bottom. A faint blue
// checkerboard of 32 pixel squares is laid over the gradient.
//
// Because the brightness increases down the image, panning the camera does
// not change the perceptual hash of the frames, so long as the view doesn't
// wrap vertically.
func Pattern(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				A: 0xff,
			}
			if (x/32+y/32)%2 == 1 {
				c.B = 0x20
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// Flat returns a background of a single colour.
func Flat(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}
