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

package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/widegb/atlas"
	"github.com/jetsetilly/widegb/curated"
	"github.com/jetsetilly/widegb/digest"
	"github.com/jetsetilly/widegb/display"
	"github.com/jetsetilly/widegb/logger"
	"github.com/jetsetilly/widegb/modalflag"
	"github.com/jetsetilly/widegb/performance"
	"github.com/jetsetilly/widegb/prefs"
	"github.com/jetsetilly/widegb/statsview"
	"github.com/jetsetilly/widegb/synthetic"
	"github.com/jetsetilly/widegb/version"
	"github.com/jetsetilly/widegb/widescreen"
)

func main() {
	os.Exit(launch(os.Args[1:]))
}

// launch returns the value to be used with os.Exit()
func launch(args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("STITCH", "DIGEST", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "STITCH":
		err = stitch(md)

	case "DIGEST":
		err = digestFiles(md)

	case "VERSION":
		fmt.Println(version.Version())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func stitch(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("The optional argument is a PNG file to use as the background. A\n" +
		"generated pattern is used if no file is given.")

	frames := md.AddInt("frames", 600, "number of frames to stitch")
	dx := md.AddInt("dx", 2, "horizontal camera movement per frame")
	dy := md.AddInt("dy", 0, "vertical camera movement per frame")
	size := md.AddPair("size", 1024, display.Height, "size of the generated background")
	window := md.AddPair("window", 0, 0, "enable window layer at the position")
	cut := md.AddInt("cut", 0, "switch to a second background at this frame (0 for never)")
	young := md.AddDuration("young", 0, "scenes younger than this are transitional (overrides widescreen.youngSceneDelay)")
	out := md.AddString("out", "", "write the atlas of the active scene to PNG file")
	scale := md.AddInt("scale", 1, "scaling of the atlas PNG")
	label := md.AddBool("label", false, "label tiles in the atlas with their position")
	prefsArg := md.AddString("prefs", "", "preferences for this run, eg. \"widescreen.recall::false\"")
	memvizOut := md.AddString("memviz", "", "write graphviz description of the final engine state to file")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	log := md.AddBool("log", false, "echo debugging log to stdout")
	profile := md.AddString("profile", "none", "run with profiling: cpu, mem, all")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, false)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout, "")
		} else {
			fmt.Println("* statsview not available in this build")
		}
	}

	var background image.Image
	switch len(md.RemainingArgs()) {
	case 0:
		background = synthetic.Pattern(size.A, size.B)
	case 1:
		background, err = loadPNG(md.GetArg(0))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prefs.PushCommandLineStack(*prefsArg)
	eng, err := widescreen.NewEngine(nil)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "widegb", "unused preferences: %s", unused)
	}
	if err != nil {
		return err
	}

	md.Visit(func(flag string) {
		if flag == "young" && err == nil {
			err = eng.Prefs.YoungSceneDelay.Set(*young)
		}
	})
	if err != nil {
		return err
	}

	src := synthetic.NewSource(background)
	src.SetVelocity(*dx, *dy)
	if window.Specified {
		src.SetWindow(true, window.A, window.B)
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	var rate performance.Rate

	err = performance.RunProfiler(prf, "widegb", func() error {
		var capacityReported bool

		rate.Start(time.Now())
		for i := 0; i < *frames; i++ {
			select {
			case <-intChan:
				fmt.Printf("\rinterrupted after %d frames\n", i)
				return nil
			default:
			}

			if *cut > 0 && i == *cut {
				src.Switch(synthetic.Flat(display.Width, display.Height, synthetic.CutColor))
			}

			err := eng.Update(src.Next())
			if err != nil {
				if !curated.Is(err, widescreen.CapacityExceeded) {
					return err
				}

				// the engine continues after capacity errors. no need to
				// report every one of them
				if !capacityReported {
					logger.Log(logger.Allow, "widegb", err)
					capacityReported = true
				}
			}
			rate.Tick(time.Now())
		}
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println(&rate)

	st := eng.Snapshot()
	fmt.Print(st)

	if *out != "" {
		err = writeAtlas(*out, eng.Tiles(), *scale, *label)
		if err != nil {
			return err
		}
	}

	if *memvizOut != "" {
		f, err := os.Create(*memvizOut)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()
		memviz.Map(f, st)
	}

	return nil
}

func writeAtlas(filename string, tiles []*widescreen.Tile, scale int, label bool) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("atlas: %v", err)
	}
	defer f.Close()

	img := atlas.Compose(tiles)
	if label {
		atlas.Label(img, tiles)
	}

	return atlas.WritePNG(f, img, scale)
}

func loadPNG(filename string) (image.Image, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf("png: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, curated.Errorf("png: %s: %v", filename, err)
	}

	return img, nil
}

func digestFiles(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Arguments are PNG files of exactly 160x144 pixels. Files are\n" +
		"compared with the preceding file in the list.")

	threshold := md.AddInt("threshold", digest.SceneCutThreshold, "perceptual distance at which a scene cut occurs")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one PNG file required for %s mode", md)
	}

	dig := digest.NewScreen()

	var prev digest.PerceptualHash
	for i, filename := range md.RemainingArgs() {
		img, err := loadPNG(filename)
		if err != nil {
			return err
		}

		b := img.Bounds()
		if b.Dx() != display.Width || b.Dy() != display.Height {
			return fmt.Errorf("%s: image is %dx%d, expected %dx%d", filename, b.Dx(), b.Dy(), display.Width, display.Height)
		}

		for y := 0; y < display.Height; y++ {
			for x := 0; x < display.Width; x++ {
				r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				dig.SetPixel(x, y, byte(r>>8), byte(g>>8), byte(bl>>8))
			}
		}
		dig.NewFrame()

		s := &strings.Builder{}
		s.WriteString(fmt.Sprintf("%s: %s", filename, dig.Hash()))
		if i > 0 {
			d := digest.Distance(prev, dig.Perceptual())
			s.WriteString(fmt.Sprintf(" distance %d", d))
			if d >= *threshold {
				s.WriteString(" (cut)")
			}
		}
		fmt.Println(s.String())

		prev = dig.Perceptual()
	}

	return nil
}
