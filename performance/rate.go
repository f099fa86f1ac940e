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

package performance

import (
	"fmt"
	"time"
)

// Rate measures the number of frames processed over a period of time.
type Rate struct {
	start  time.Time
	end    time.Time
	frames int
}

// Start the measurement. Any previous measurement is forgotten.
func (r *Rate) Start(now time.Time) {
	r.start = now
	r.end = now
	r.frames = 0
}

// Tick should be called once for every frame processed.
func (r *Rate) Tick(now time.Time) {
	r.frames++
	r.end = now
}

// Frames returns the number of frames counted since Start().
func (r *Rate) Frames() int {
	return r.frames
}

// PerSecond returns the number of frames per second. Zero is returned if no
// time has elapsed.
func (r *Rate) PerSecond() float64 {
	d := r.end.Sub(r.start)
	if d <= 0 {
		return 0
	}
	return float64(r.frames) / d.Seconds()
}

func (r *Rate) String() string {
	return fmt.Sprintf("%d frames in %s (%.2f fps)", r.frames, r.end.Sub(r.start).Round(time.Millisecond), r.PerSecond())
}
