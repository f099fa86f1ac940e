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
	"strings"
	"time"

	"github.com/jetsetilly/widegb/digest"
	"github.com/jetsetilly/widegb/display"
)

// SceneState is a summary of a single scene.
type SceneState struct {
	ID     int
	Age    time.Duration
	Young  bool
	Active bool
	Scroll display.Point
	Tiles  []TilePosition
}

// State is a summary of the engine that contains no pixel data. It is
// suitable for printing or for visualising with a tool like memviz.
type State struct {
	HardwareScroll display.Point
	WindowEnabled  bool
	WindowRect     display.Rect
	Perceptual     digest.PerceptualHash
	Scenes         []SceneState
	Frames         []SceneFrame
}

// Snapshot returns a summary of the current state of the engine.
func (eng *Engine) Snapshot() *State {
	now := eng.clock.Now()

	st := &State{
		HardwareScroll: eng.hardwareScroll,
		WindowEnabled:  eng.windowEnabled,
		WindowRect:     eng.windowRect,
		Perceptual:     eng.framePerceptual,
		Frames:         eng.frames.list(),
	}

	for _, s := range eng.scenes {
		ss := SceneState{
			ID:     s.ID,
			Age:    s.Age(now),
			Young:  eng.isYoung(s),
			Active: s == eng.active,
			Scroll: s.Scroll,
		}
		for _, t := range s.tiles {
			ss.Tiles = append(ss.Tiles, t.Position)
		}
		st.Scenes = append(st.Scenes, ss)
	}

	return st
}

func (st *State) String() string {
	s := &strings.Builder{}
	s.WriteString(fmt.Sprintf("hardware scroll %s", st.HardwareScroll))
	if st.WindowEnabled {
		s.WriteString(fmt.Sprintf(", window %s", st.WindowRect))
	}
	s.WriteString("\n")
	for _, sc := range st.Scenes {
		a := " "
		if sc.Active {
			a = "*"
		}
		y := ""
		if sc.Young {
			y = " young"
		}
		s.WriteString(fmt.Sprintf("%s %d: scroll %s, %d tiles, age %s%s\n", a, sc.ID, sc.Scroll, len(sc.Tiles), sc.Age.Round(time.Millisecond), y))
	}
	s.WriteString(fmt.Sprintf("%d frames registered\n", len(st.Frames)))
	return s.String()
}
