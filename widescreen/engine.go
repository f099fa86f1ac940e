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
	"fmt"
	"time"

	"github.com/jetsetilly/widegb/curated"
	"github.com/jetsetilly/widegb/digest"
	"github.com/jetsetilly/widegb/display"
	"github.com/jetsetilly/widegb/logger"
)

// Clock is the source of time for deciding the age of a scene.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Frame is everything the engine needs to know about a completed frame.
type Frame struct {
	// composited ARGB pixels. must be display.PixelCount entries long
	Pixels []uint32

	// packed RGB bytes used for hashing. if nil the RGB values are taken
	// from Pixels
	RGB []byte

	// background scroll registers
	SCX, SCY uint8

	// window layer
	WindowEnabled bool
	WX, WY        int
}

// Engine is the root of the stitching state.
type Engine struct {
	Prefs *Preferences

	clock Clock

	// hashing of frames given to Update()
	digest *digest.Screen

	// most recent values of the scroll registers
	hardwareScroll display.Point

	// most recent state of the window layer
	windowEnabled bool
	windowRect    display.Rect

	// perceptual hashes of the previous and current frame
	previousPerceptual digest.PerceptualHash
	framePerceptual    digest.PerceptualHash

	// all live scenes in order of creation. active always points to one of
	// them and must be reassigned before the scene it points to is deleted
	scenes []*Scene
	active *Scene

	// scene IDs are never reused by an engine
	nextSceneID int

	frames *registry
}

// NewEngine is the preferred method of initialisation for the Engine type. If
// clock is nil the system clock is used.
//
// The engine starts with a single empty scene.
func NewEngine(clock Clock) (*Engine, error) {
	if clock == nil {
		clock = systemClock{}
	}

	eng := &Engine{
		clock:  clock,
		digest: digest.NewScreen(),
		frames: newRegistry(),
	}

	var err error
	eng.Prefs, err = newPreferences()
	if err != nil {
		return nil, curated.Errorf("widescreen: %v", err)
	}

	eng.active = eng.createScene()

	return eng, nil
}

func (eng *Engine) String() string {
	return fmt.Sprintf("%d scenes, active %s", len(eng.scenes), eng.active)
}

// AllowLogging implements the logger.Permission interface. Debugging output
// is only logged if the Debug preference is set.
func (eng *Engine) AllowLogging() bool {
	return eng.Prefs.Debug.Get().(bool)
}

// Update is the single entry point for a completed frame. It updates the
// scroll and window state, hashes the frame and stitches it into the active
// scene.
//
// The only errors returned are BadFrame, in which case nothing has changed,
// and CapacityExceeded, in which case the frame has been handled as well as
// the limits allow.
func (eng *Engine) Update(f Frame) error {
	if len(f.Pixels) != display.PixelCount {
		return curated.Errorf(BadFrame, fmt.Sprintf("pixel buffer has %d entries, expected %d", len(f.Pixels), display.PixelCount))
	}

	if f.RGB == nil {
		for i, p := range f.Pixels {
			eng.digest.SetPixel(i%display.Width, i/display.Width, uint8(p>>16), uint8(p>>8), uint8(p))
		}
	} else if err := eng.digest.SetFrame(f.RGB); err != nil {
		return curated.Errorf(BadFrame, err)
	}
	eng.digest.NewFrame()

	eng.UpdateHardwareScroll(int(f.SCX), int(f.SCY))
	eng.UpdateWindow(f.WindowEnabled, f.WX, f.WY)

	return eng.UpdateScreen(f.Pixels, eng.digest.Exact(), eng.digest.Perceptual())
}

// ActiveScene returns the scene currently being stitched. The scene should
// not be retained between frames.
func (eng *Engine) ActiveScene() *Scene {
	return eng.active
}

// Scenes returns every live scene in order of creation.
func (eng *Engine) Scenes() []*Scene {
	return append([]*Scene(nil), eng.scenes...)
}

// SceneByID returns the live scene with the ID or nil if there is no such
// scene.
func (eng *Engine) SceneByID(id int) *Scene {
	for _, s := range eng.scenes {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// TileCount returns the number of tiles in the active scene.
func (eng *Engine) TileCount() int {
	return eng.active.TileCount()
}

// TileAt returns the tile at the index in the active scene.
func (eng *Engine) TileAt(i int) *Tile {
	return eng.active.TileAt(i)
}

// Tiles returns every tile in the active scene.
func (eng *Engine) Tiles() []*Tile {
	return eng.active.Tiles()
}

// TileAtPosition returns the tile at the grid position in the active scene or
// nil if there is no tile there.
func (eng *Engine) TileAtPosition(pos TilePosition) *Tile {
	return eng.active.TileAtPosition(pos)
}

// SceneFrame returns the registered frame for the exact hash.
func (eng *Engine) SceneFrame(hash digest.ExactHash) (SceneFrame, bool) {
	if f := eng.frames.find(hash); f != nil {
		return *f, true
	}
	return SceneFrame{}, false
}

// SceneFrames returns every registered frame sorted by hash.
func (eng *Engine) SceneFrames() []SceneFrame {
	return eng.frames.list()
}

// PerceptualHash returns the perceptual hash of the most recent frame.
func (eng *Engine) PerceptualHash() digest.PerceptualHash {
	return eng.framePerceptual
}

// WritePixel writes a single pixel at the screen coordinate into the active
// scene and returns the tile that was written to.
func (eng *Engine) WritePixel(p display.Point, color uint32) (*Tile, error) {
	return eng.active.writePixel(p, color, eng.Prefs.MaxTiles.Get().(int))
}

// WriteFrame writes every pixel of the frame not covered by the window into
// the active scene. Pixels that cannot be written because the tile limit has
// been reached are dropped and a CapacityExceeded error is returned once the
// rest of the frame has been written.
//
// WriteFrame does not clear the dirty flags of the scene's tiles. That is
// done by UpdateScreen().
func (eng *Engine) WriteFrame(pixels []uint32) error {
	if len(pixels) != display.PixelCount {
		return curated.Errorf(BadFrame, fmt.Sprintf("pixel buffer has %d entries, expected %d", len(pixels), display.PixelCount))
	}
	return eng.active.writeFrame(pixels, eng.windowMask(), eng.Prefs.MaxTiles.Get().(int))
}

// createScene adds a new scene to the list of scenes. it does not change the
// active scene
func (eng *Engine) createScene() *Scene {
	s := newScene(eng.nextSceneID, eng.clock.Now())
	eng.nextSceneID++
	eng.scenes = append(eng.scenes, s)
	logger.Logf(eng, logTag, "create scene %d", s.ID)
	return s
}

// switchScene makes the scene active. if discard is true the previously
// active scene is deleted
func (eng *Engine) switchScene(s *Scene, discard bool) {
	prev := eng.active
	eng.active = s
	if discard && prev != s {
		eng.deleteScene(prev)
	}
}

// deleteScene removes the scene and every registered frame referring to it.
// the active scene cannot be deleted
func (eng *Engine) deleteScene(s *Scene) {
	if s == eng.active {
		logger.Logf(logger.Allow, logTag, "refusing to delete active scene %d", s.ID)
		return
	}

	for i, t := range eng.scenes {
		if t == s {
			eng.scenes = append(eng.scenes[:i], eng.scenes[i+1:]...)
			break
		}
	}

	n := eng.frames.forget(s.ID)
	s.destroy()

	logger.Logf(eng, logTag, "delete scene %d (%d frames forgotten)", s.ID, n)
}

// isYoung returns true if the scene was created recently enough to be
// considered transitional
func (eng *Engine) isYoung(s *Scene) bool {
	return s.Age(eng.clock.Now()) < eng.Prefs.YoungSceneDelay.Get().(time.Duration)
}

// IsYoung returns true if the scene is young enough to be deleted when cut
// away from, or replaced by a recalled scene.
func (eng *Engine) IsYoung(s *Scene) bool {
	return eng.isYoung(s)
}
