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

// Package synthetic produces frames for the widescreen engine without an
// emulation core. A background image is viewed through a camera that moves
// by a fixed velocity every frame, with the scroll registers derived from
// the camera position in the same way as the hardware would report them.
//
// The package is used by the command line tool to exercise the engine and by
// tests that need realistic sequences of frames.
package synthetic
