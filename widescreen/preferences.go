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

	"github.com/jetsetilly/widegb/digest"
	"github.com/jetsetilly/widegb/prefs"
)

// Preferences for the stitching engine. The values can be changed at any time
// and take effect on the next frame.
type Preferences struct {
	group *prefs.Group

	// perceptual distance at or above which a frame is a scene cut
	SceneCutThreshold prefs.Int

	// scenes younger than this are eligible for deletion and replacement
	YoungSceneDelay prefs.Duration

	// a scroll delta within this many pixels of the background size is
	// treated as the scroll register wrapping
	WrapFuzz prefs.Int

	// limits on the number of tiles in a scene and the number of scenes
	MaxTiles  prefs.Int
	MaxScenes prefs.Int

	// with recall disabled the engine never cuts to a new scene and never
	// looks up previous frames. all frames are stitched into a single scene
	Recall prefs.Bool

	// log scene creation, deletion and recall
	Debug prefs.Bool
}

// default values for the preferences
const (
	defaultYoungSceneDelay = 2 * time.Second
	defaultWrapFuzz        = 10
	defaultMaxTiles        = 1024
	defaultMaxScenes       = 256
)

func (p *Preferences) String() string {
	return p.group.String()
}

// newPreferences is the preferred method of initialisation for the
// Preferences type. Values on the top of the command line preferences stack
// are applied.
func newPreferences() (*Preferences, error) {
	p := &Preferences{group: prefs.NewGroup()}

	// defaults are set before the validation hooks are installed
	p.SceneCutThreshold.Set(digest.SceneCutThreshold)
	p.YoungSceneDelay.Set(defaultYoungSceneDelay)
	p.WrapFuzz.Set(defaultWrapFuzz)
	p.MaxTiles.Set(defaultMaxTiles)
	p.MaxScenes.Set(defaultMaxScenes)
	p.Recall.Set(true)
	p.Debug.Set(false)

	p.SceneCutThreshold.SetHookPre(intRange("scene cut threshold", 1, 64))
	p.WrapFuzz.SetHookPre(intRange("wrap fuzz", 0, 127))
	p.MaxTiles.SetHookPre(intRange("max tiles", 1, 1<<20))
	p.MaxScenes.SetHookPre(intRange("max scenes", 1, 1<<20))
	p.YoungSceneDelay.SetHookPre(func(v prefs.Value) error {
		if v.(time.Duration) < 0 {
			return fmt.Errorf("young scene delay cannot be negative")
		}
		return nil
	})

	var err error

	err = p.group.Add("widescreen.sceneCutThreshold", &p.SceneCutThreshold)
	if err != nil {
		return nil, err
	}
	err = p.group.Add("widescreen.youngSceneDelay", &p.YoungSceneDelay)
	if err != nil {
		return nil, err
	}
	err = p.group.Add("widescreen.wrapFuzz", &p.WrapFuzz)
	if err != nil {
		return nil, err
	}
	err = p.group.Add("widescreen.maxTiles", &p.MaxTiles)
	if err != nil {
		return nil, err
	}
	err = p.group.Add("widescreen.maxScenes", &p.MaxScenes)
	if err != nil {
		return nil, err
	}
	err = p.group.Add("widescreen.recall", &p.Recall)
	if err != nil {
		return nil, err
	}
	err = p.group.Add("widescreen.debug", &p.Debug)
	if err != nil {
		return nil, err
	}

	err = p.group.ApplyCommandLine()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Set the value of a preference by its key. For example:
//
//	eng.Prefs.Set("widescreen.sceneCutThreshold", 16)
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.group.Set(key, v)
}

func intRange(name string, lo, hi int) func(prefs.Value) error {
	return func(v prefs.Value) error {
		if n := v.(int); n < lo || n > hi {
			return fmt.Errorf("%s must be between %d and %d", name, lo, hi)
		}
		return nil
	}
}
