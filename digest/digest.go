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
	"math"
	"math/bits"

	"github.com/jetsetilly/widegb/display"
)

// Digest implementations return a hash of the most recent frame in response
// to a Hash() request.
type Digest interface {
	Hash() string
	ResetDigest()
}

// PixelDepth is the number of bytes per pixel in an RGB buffer.
const PixelDepth = 3

// RGBLength is the length of an RGB buffer holding one frame.
const RGBLength = display.PixelCount * PixelDepth

// ExactHash is the content hash of a frame.
type ExactHash uint64

func (h ExactHash) String() string {
	return fmt.Sprintf("%016x", uint64(h))
}

// PerceptualHash is the similarity tolerant fingerprint of a frame.
type PerceptualHash uint64

func (h PerceptualHash) String() string {
	return fmt.Sprintf("%016x", uint64(h))
}

// SceneCutThreshold is the perceptual distance at or above which two frames
// are considered to show different scenes.
const SceneCutThreshold = 12

// constants for the exact hash accumulator
const (
	exactAddend = 324723947
	exactMask   = 93485734985
)

// Exact returns the exact hash of a frame. The rgb buffer should be
// RGBLength bytes long. A shorter buffer is hashed as far as it goes.
func Exact(rgb []byte) ExactHash {
	var h uint64
	for i := 0; i+PixelDepth <= len(rgb); i += PixelDepth {
		sum := uint64(rgb[i]) + uint64(rgb[i+1]) + uint64(rgb[i+2])
		h = (h + exactAddend + sum*2) ^ exactMask
	}
	return ExactHash(h)
}

// the perceptual hash works on an 8x8 grid of blocks
const (
	gridSize    = 8
	blockWidth  = display.Width / gridSize
	blockHeight = display.Height / gridSize
	blockSize   = blockWidth * blockHeight
)

// luminance weights for linear RGB
const (
	lumaR = 0.212671
	lumaG = 0.715160
	lumaB = 0.072169
)

// Grayscale downsamples the frame to an 8x8 grid of average luminance values,
// indexed by x + y*8. The rgb buffer should be RGBLength bytes long. Pixels
// missing from a shorter buffer are treated as black.
func Grayscale(rgb []byte) [gridSize * gridSize]uint8 {
	if len(rgb) < RGBLength {
		padded := make([]byte, RGBLength)
		copy(padded, rgb)
		rgb = padded
	}

	var grey [gridSize * gridSize]uint8

	for by := 0; by < gridSize; by++ {
		for bx := 0; bx < gridSize; bx++ {
			var avg float32
			top := bx*blockWidth + by*blockHeight*display.Width

			for py := 0; py < blockHeight; py++ {
				i := (top + py*display.Width) * PixelDepth
				for px := 0; px < blockWidth; px++ {
					r := float32(rgb[i])
					g := float32(rgb[i+1])
					b := float32(rgb[i+2])
					avg += (lumaR*r + lumaG*g + lumaB*b) / blockSize
					i += PixelDepth
				}
			}

			if avg > 255 {
				avg = 255
			}
			grey[bx+by*gridSize] = uint8(math.Floor(float64(avg)))
		}
	}

	return grey
}

// Perceptual returns the perceptual hash of a frame. The rgb buffer should be
// RGBLength bytes long. A shorter buffer is hashed as though the missing
// pixels were black.
func Perceptual(rgb []byte) PerceptualHash {
	grey := Grayscale(rgb)

	// count the blocks brighter than the block on the upper-left diagonal
	var n int
	for x := 1; x < gridSize; x++ {
		for y := 1; y < gridSize; y++ {
			if grey[x+y*gridSize] > grey[(x-1)+(y-1)*gridSize] {
				n++
			}
		}
	}

	// the first n bits of the hash are set
	return PerceptualHash(uint64(1)<<n - 1)
}

// Distance returns the Hamming distance between two perceptual hashes.
func Distance(a, b PerceptualHash) int {
	return bits.OnesCount64(uint64(a ^ b))
}

// RGBFromARGB reinterprets a buffer of 32-bit ARGB pixels as packed RGB
// bytes. The dst slice is reused if it has the capacity, otherwise a new
// slice is allocated.
func RGBFromARGB(dst []byte, argb []uint32) []byte {
	n := len(argb) * PixelDepth
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]

	for i, p := range argb {
		j := i * PixelDepth
		dst[j] = uint8(p >> 16)
		dst[j+1] = uint8(p >> 8)
		dst[j+2] = uint8(p)
	}

	return dst
}
