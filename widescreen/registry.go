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
	"sort"

	"github.com/jetsetilly/widegb/digest"
	"github.com/jetsetilly/widegb/display"
)

// SceneFrame records the scene and scroll position at which a frame was most
// recently seen.
type SceneFrame struct {
	Hash    digest.ExactHash
	SceneID int
	Scroll  display.Point
}

// registry is the index of frames keyed by exact hash
type registry struct {
	frames map[digest.ExactHash]*SceneFrame
}

func newRegistry() *registry {
	return &registry{
		frames: make(map[digest.ExactHash]*SceneFrame),
	}
}

func (r *registry) find(hash digest.ExactHash) *SceneFrame {
	return r.frames[hash]
}

// store the scene and scroll position for the hash. an existing entry is
// updated in place. the key of an entry never changes
func (r *registry) store(hash digest.ExactHash, scene *Scene) {
	f, ok := r.frames[hash]
	if !ok {
		f = &SceneFrame{Hash: hash}
		r.frames[hash] = f
	}
	f.SceneID = scene.ID
	f.Scroll = scene.Scroll
}

// forget every entry referring to the scene. returns the number of entries
// removed
func (r *registry) forget(sceneID int) int {
	var n int
	for h, f := range r.frames {
		if f.SceneID == sceneID {
			delete(r.frames, h)
			n++
		}
	}
	return n
}

// references returns true if any entry refers to the scene
func (r *registry) references(sceneID int) bool {
	for _, f := range r.frames {
		if f.SceneID == sceneID {
			return true
		}
	}
	return false
}

// list returns a copy of every entry sorted by hash
func (r *registry) list() []SceneFrame {
	l := make([]SceneFrame, 0, len(r.frames))
	for _, f := range r.frames {
		l = append(l, *f)
	}
	sort.Slice(l, func(i, j int) bool {
		return l[i].Hash < l[j].Hash
	})
	return l
}
