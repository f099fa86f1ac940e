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

	"github.com/jetsetilly/widegb/curated"
	"github.com/jetsetilly/widegb/digest"
	"github.com/jetsetilly/widegb/display"
	"github.com/jetsetilly/widegb/logger"
)

// UpdateScreen should be called once per completed frame, after the scroll
// and window state for the frame have been updated. The hashes must be those
// of the frame in pixels.
//
// The active scene may change as a result of the call. Either because the
// perceptual hash indicates a scene cut or because the exact hash matches a
// frame previously seen in another scene.
//
// Tiles written to by the frame are marked dirty. Dirty flags from the
// previous frame are cleared first.
func (eng *Engine) UpdateScreen(pixels []uint32, exact digest.ExactHash, perceptual digest.PerceptualHash) error {
	if len(pixels) != display.PixelCount {
		return curated.Errorf(BadFrame, fmt.Sprintf("pixel buffer has %d entries, expected %d", len(pixels), display.PixelCount))
	}

	eng.active.clearDirty()

	eng.previousPerceptual = eng.framePerceptual
	eng.framePerceptual = perceptual

	if eng.Prefs.Recall.Get().(bool) {
		distance := digest.Distance(eng.previousPerceptual, perceptual)
		if distance >= eng.Prefs.SceneCutThreshold.Get().(int) {
			if err := eng.cut(distance); err != nil {
				// the frame belongs to a scene that could not be created. it
				// is not written anywhere and the perceptual hash is not
				// adopted, so the next frame tests for the cut again
				eng.framePerceptual = eng.previousPerceptual
				return err
			}
		}

		if eng.isYoung(eng.active) {
			eng.recall(exact)
		}

		eng.frames.store(exact, eng.active)
	}

	return eng.WriteFrame(pixels)
}

// cut replaces the active scene with a new empty scene
func (eng *Engine) cut(distance int) error {
	prev := eng.active
	young := eng.isYoung(prev)

	// a young scene will be deleted so it doesn't count towards the limit
	if !young {
		limit := eng.Prefs.MaxScenes.Get().(int)
		if len(eng.scenes) >= limit {
			logger.Logf(eng, logTag, "scene cut (distance %d) ignored: scene limit reached", distance)
			return curated.Errorf(CapacityExceeded, "scene", limit)
		}
	}

	logger.Logf(eng, logTag, "scene cut (distance %d) from scene %d", distance, prev.ID)

	eng.switchScene(eng.createScene(), young)

	return nil
}

// recall switches to the scene in which the frame was previously seen, if
// it is not the active scene. the active scene is deleted
func (eng *Engine) recall(exact digest.ExactHash) {
	f := eng.frames.find(exact)
	if f == nil || f.SceneID == eng.active.ID {
		return
	}

	s := eng.SceneByID(f.SceneID)
	if s == nil {
		logger.Log(logger.Allow, logTag, curated.Errorf(RecallTargetMissing, f.SceneID))
		return
	}

	logger.Logf(eng, logTag, "recalling scene %d for frame %s", s.ID, exact)

	s.Scroll = f.Scroll
	s.markAllDirty()
	eng.switchScene(s, true)
}
