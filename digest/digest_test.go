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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/widegb/digest"
	"github.com/jetsetilly/widegb/display"
	"github.com/jetsetilly/widegb/test"
)

// uniform returns an RGB frame of a single colour
func uniform(r, g, b byte) []byte {
	rgb := make([]byte, digest.RGBLength)
	for i := 0; i < len(rgb); i += digest.PixelDepth {
		rgb[i] = r
		rgb[i+1] = g
		rgb[i+2] = b
	}
	return rgb
}

// blocks returns an RGB frame where every 20x18 block of the 8x8 grid is
// filled with the grey value returned by f
func blocks(f func(bx, by int) byte) []byte {
	rgb := make([]byte, digest.RGBLength)
	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			v := f(x/(display.Width/8), y/(display.Height/8))
			i := (x + y*display.Width) * digest.PixelDepth
			rgb[i] = v
			rgb[i+1] = v
			rgb[i+2] = v
		}
	}
	return rgb
}

func TestExactKnownValues(t *testing.T) {
	test.ExpectEquality(t, digest.Exact(nil), digest.ExactHash(0))
	test.ExpectEquality(t, digest.Exact([]byte{1, 2, 3}), digest.ExactHash(0x15d775f8be))
	test.ExpectEquality(t, digest.Exact([]byte{1, 2, 3, 255, 255, 255}), digest.ExactHash(0x2effffea))

	// trailing bytes that do not make a whole pixel are ignored
	test.ExpectEquality(t, digest.Exact([]byte{1, 2, 3, 9}), digest.ExactHash(0x15d775f8be))
}

func TestExactIsPure(t *testing.T) {
	a := uniform(10, 20, 30)
	b := uniform(10, 20, 30)
	c := uniform(30, 20, 10)

	ha := digest.Exact(a)

	// hashing something else in between makes no difference
	_ = digest.Exact(c)
	test.ExpectEquality(t, digest.Exact(b), ha)
	test.ExpectEquality(t, digest.Exact(a), ha)

	// changing a single pixel changes the hash
	b[len(b)/2] = 11
	test.ExpectInequality(t, digest.Exact(b), ha)
}

func TestPerceptualUniform(t *testing.T) {
	// no block can be brighter than its neighbour
	test.ExpectEquality(t, digest.Perceptual(uniform(0, 0, 0)), digest.PerceptualHash(0))
	test.ExpectEquality(t, digest.Perceptual(uniform(255, 255, 255)), digest.PerceptualHash(0))
	test.ExpectEquality(t, digest.Perceptual(uniform(12, 200, 7)), digest.PerceptualHash(0))
}

func TestPerceptualGradient(t *testing.T) {
	// every interior block is brighter than the block on its upper-left
	rgb := blocks(func(bx, by int) byte {
		return byte(18 * (bx + by))
	})
	h := digest.Perceptual(rgb)
	test.ExpectEquality(t, h, digest.PerceptualHash(1<<49-1))
	test.ExpectEquality(t, digest.Distance(h, 0), 49)
	test.ExpectSuccess(t, digest.Distance(h, 0) >= digest.SceneCutThreshold)
}

func TestPerceptualCount(t *testing.T) {
	// bright blocks in odd columns never sit on the diagonal of another
	// bright block so every one of them counts
	rgb := blocks(func(bx, by int) byte {
		if bx%2 == 1 && by == 3 {
			return 200
		}
		return 20
	})
	test.ExpectEquality(t, digest.Perceptual(rgb), digest.PerceptualHash(0b1111))
}

func TestPerceptualTolerance(t *testing.T) {
	rgb := blocks(func(bx, by int) byte {
		return byte(18 * (bx + by))
	})
	h := digest.Perceptual(rgb)

	// a small "sprite" in the middle of the frame does not change the hash
	// enough to be a cut
	for y := 60; y < 76; y++ {
		for x := 70; x < 78; x++ {
			i := (x + y*display.Width) * digest.PixelDepth
			rgb[i] = 255
		}
	}
	test.ExpectSuccess(t, digest.Distance(h, digest.Perceptual(rgb)) < digest.SceneCutThreshold)
}

func TestShortBuffer(t *testing.T) {
	rgb := blocks(func(bx, by int) byte {
		if by < 4 {
			return byte(18 * (bx + by))
		}
		return 0
	})

	// the bottom half of the frame is black so cutting it off makes no
	// difference to the perceptual hash
	short := rgb[:digest.RGBLength/2]
	test.ExpectEquality(t, digest.Grayscale(short), digest.Grayscale(rgb))
	test.ExpectEquality(t, digest.Perceptual(short), digest.Perceptual(rgb))
	test.ExpectEquality(t, digest.Perceptual(nil), digest.PerceptualHash(0))

	// the exact hash covers only the pixels that are present
	test.ExpectSuccess(t, digest.Exact(short) != digest.Exact(rgb))
}

func TestDistance(t *testing.T) {
	test.ExpectEquality(t, digest.Distance(0, 0), 0)
	test.ExpectEquality(t, digest.Distance(0b1111, 0b0011), 2)
	test.ExpectEquality(t, digest.Distance(1<<20-1, 0), 20)
	test.ExpectEquality(t, digest.Distance(1<<20-1, 1<<8-1), 12)
	test.ExpectEquality(t, digest.Distance(1<<20-1, 1<<9-1), 11)
}

func TestRGBFromARGB(t *testing.T) {
	argb := []uint32{0xff102030, 0x00a0b0c0}
	rgb := digest.RGBFromARGB(nil, argb)
	test.DemandEquality(t, len(rgb), 6)
	test.ExpectEquality(t, rgb[0], uint8(0x10))
	test.ExpectEquality(t, rgb[1], uint8(0x20))
	test.ExpectEquality(t, rgb[2], uint8(0x30))
	test.ExpectEquality(t, rgb[3], uint8(0xa0))
	test.ExpectEquality(t, rgb[5], uint8(0xc0))

	// buffer with enough capacity is reused
	buf := make([]byte, 0, 16)
	out := digest.RGBFromARGB(buf, argb)
	test.ExpectEquality(t, &out[0], &buf[:1][0])
}

func TestScreen(t *testing.T) {
	var _ digest.Digest = digest.NewScreen()

	dig := digest.NewScreen()
	rgb := blocks(func(bx, by int) byte {
		return byte(18 * (bx + by))
	})

	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			i := (x + y*display.Width) * digest.PixelDepth
			dig.SetPixel(x, y, rgb[i], rgb[i+1], rgb[i+2])
		}
	}

	// out of range pixels are ignored
	dig.SetPixel(-1, 0, 1, 1, 1)
	dig.SetPixel(display.Width, display.Height, 1, 1, 1)

	dig.NewFrame()
	test.ExpectEquality(t, dig.Exact(), digest.Exact(rgb))
	test.ExpectEquality(t, dig.Perceptual(), digest.Perceptual(rgb))
	test.ExpectEquality(t, dig.FrameNum(), 1)
	test.ExpectEquality(t, dig.Hash(), digest.Exact(rgb).String()+"/0001ffffffffffff")

	// whole frame copy
	test.ExpectFailure(t, dig.SetFrame(rgb[:10]))
	test.ExpectSuccess(t, dig.SetFrame(uniform(1, 2, 3)))
	dig.NewFrame()
	test.ExpectEquality(t, dig.Perceptual(), digest.PerceptualHash(0))
	test.ExpectEquality(t, dig.FrameNum(), 2)

	dig.ResetDigest()
	test.ExpectEquality(t, dig.Exact(), digest.ExactHash(0))
	test.ExpectEquality(t, dig.FrameNum(), 0)
}
