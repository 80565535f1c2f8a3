// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"runtime/pprof"
	"time"

	"github.com/jetsetilly/presentation/digest"
	"github.com/jetsetilly/presentation/geometry"
	"github.com/jetsetilly/presentation/logger"
	"github.com/jetsetilly/presentation/modalflag"
	"github.com/jetsetilly/presentation/presenter"
	"github.com/jetsetilly/presentation/softgpu"
	"github.com/jetsetilly/presentation/testcard"
	"github.com/jetsetilly/presentation/video"
)

// headless presents test card frames with the software backend. With the
// -nosurface flag there is no backbuffer and frames are only dumped.
func headless(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	flags := addCommonFlags(md, 600)
	surfaceW := md.AddInt("surfacewidth", 1920, "width of the backbuffer")
	surfaceH := md.AddInt("surfaceheight", 1080, "height of the backbuffer")
	noSurface := md.AddBool("nosurface", false, "present without a backbuffer")
	realtime := md.AddBool("realtime", false, "produce frames at the test card frame rate")
	screenshot := md.AddString("png", "", "save the final backbuffer to a PNG file")
	cpuProfile := md.AddString("cpuprofile", "", "write cpu profile to file")
	printDigest := md.AddBool("digest", false, "print digest of presented frames")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	env, err := flags.environment(md)
	if err != nil {
		return err
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			return err
		}
		defer f.Close()
		err = pprof.StartCPUProfile(f)
		if err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	backend := softgpu.NewBackend(softgpu.Options{
		Width:      *surfaceW,
		Height:     *surfaceH,
		Scale:      1.0,
		Headless:   *noSurface,
		QuadBuffer: env.Prefs.StereoMode() == geometry.StereoQuadBuffer,
	})

	dumper := video.NewFFMPEG(env, env.OSD)
	err = flags.enableDump(dumper, "headless")
	if err != nil {
		return err
	}
	defer dumper.Destroy()

	card := testcard.NewCard(flags.card(!*realtime))

	var fd presenter.FrameDumper = dumper
	var dig *digest.Frames
	if *printDigest {
		dig = digest.NewFrames(dumper)
		fd = dig
	}

	pres, err := presenter.NewPresenter(env, presenter.Collaborators{
		Backend:       backend,
		PostProcessor: softgpu.NewPostProcessor(backend, env),
		Overlay:       softgpu.NewOverlay(backend, env.OSD),
		FrameDumper:   fd,
		Source:        card,
	})
	if err != nil {
		return err
	}

	// presentation happens on this goroutine
	err = pres.Initialize()
	if err != nil {
		return err
	}
	defer pres.Destroy()

	// the interrupt signal ends the test card so that the frame dump is
	// closed properly
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frames := make(chan testcard.Frame)
	done := make(chan error, 1)
	go func() {
		done <- card.Run(ctx, frames, env.OSD)
	}()

	start := time.Now()
	var presented, duplicates int

	for f := range frames {
		if changes := env.Prefs.TakeChanges(); changes != 0 {
			pres.CheckForConfigChanges(changes)
		}
		if f.Submit(pres) {
			duplicates++
		} else {
			presented++
		}
	}

	err = <-done
	if err != nil && err != context.Canceled {
		return err
	}

	elapsed := time.Since(start)
	fmt.Printf("%d frames presented, %d duplicates in %s\n", presented, duplicates, elapsed.Round(time.Millisecond))
	logger.Logf(env, "main", "%d frames presented, %d duplicates", presented, duplicates)
	if dumper.IsRecording() {
		fmt.Printf("frame dump: %s (%d frames)\n", dumper.Filename(), dumper.Frames())
	}

	if dig != nil {
		fmt.Printf("digest: %s\n", dig)
	}

	if *screenshot != "" {
		err = savePNG(*screenshot, backend)
		if err != nil {
			return err
		}
	}

	l := pres.Layout()
	return flags.finish(env, &l)
}

func savePNG(pth string, backend *softgpu.Backend) error {
	img, n := backend.Front()
	if n == 0 || img == nil {
		return fmt.Errorf("png: no backbuffer has been presented")
	}

	f, err := os.Create(pth)
	if err != nil {
		return err
	}
	defer f.Close()

	err = png.Encode(f, img)
	if err != nil {
		return err
	}

	fmt.Printf("backbuffer saved to %s\n", pth)
	return nil
}
