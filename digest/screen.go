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

package digest

import (
	"fmt"

	"github.com/jetsetilly/widegb/display"
)

// Screen accumulates the pixels of a frame and generates both hashes when the
// frame is complete. It does not display the image anywhere.
type Screen struct {
	pixels []byte

	exact      ExactHash
	perceptual PerceptualHash

	frameNum int
}

// NewScreen is the preferred method of initialisation for the Screen type.
func NewScreen() *Screen {
	return &Screen{
		pixels: make([]byte, RGBLength),
	}
}

// Hash implements the Digest interface. The exact and perceptual hashes are
// returned together.
func (dig *Screen) Hash() string {
	return fmt.Sprintf("%s/%s", dig.exact, dig.perceptual)
}

// ResetDigest implements the Digest interface.
func (dig *Screen) ResetDigest() {
	dig.exact = 0
	dig.perceptual = 0
	dig.frameNum = 0
	clear(dig.pixels)
}

// SetPixel sets the colour of a single pixel in the current frame. Pixels
// outside the screen are ignored.
func (dig *Screen) SetPixel(x, y int, red, green, blue byte) {
	if x < 0 || x >= display.Width || y < 0 || y >= display.Height {
		return
	}
	i := (x + y*display.Width) * PixelDepth
	dig.pixels[i] = red
	dig.pixels[i+1] = green
	dig.pixels[i+2] = blue
}

// SetFrame copies an entire RGB frame into the accumulator. The buffer must
// be RGBLength bytes long.
func (dig *Screen) SetFrame(rgb []byte) error {
	if len(rgb) != RGBLength {
		return fmt.Errorf("digest: frame has %d bytes, expected %d", len(rgb), RGBLength)
	}
	copy(dig.pixels, rgb)
	return nil
}

// NewFrame latches the hashes of the pixels accumulated so far. The pixels
// are not cleared. Pixels that are not set for the next frame keep their
// previous value.
func (dig *Screen) NewFrame() {
	dig.exact = Exact(dig.pixels)
	dig.perceptual = Perceptual(dig.pixels)
	dig.frameNum++
}

// Exact returns the exact hash latched by the most recent call to NewFrame().
func (dig *Screen) Exact() ExactHash {
	return dig.exact
}

// Perceptual returns the perceptual hash latched by the most recent call to
// NewFrame().
func (dig *Screen) Perceptual() PerceptualHash {
	return dig.perceptual
}

// FrameNum returns the number of calls to NewFrame() since the last reset.
func (dig *Screen) FrameNum() int {
	return dig.frameNum
}

// RGB returns the accumulated frame. The slice must not be retained.
func (dig *Screen) RGB() []byte {
	return dig.pixels
}
