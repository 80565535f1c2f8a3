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
	"io"
	"maps"
	"slices"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/presentation/environment"
	"github.com/jetsetilly/presentation/geometry"
	"github.com/jetsetilly/presentation/gui/glbackend"
	"github.com/jetsetilly/presentation/gui/glbackend/shaders"
	"github.com/jetsetilly/presentation/gui/imguiosd"
	"github.com/jetsetilly/presentation/gui/sdlhost"
	"github.com/jetsetilly/presentation/logger"
	"github.com/jetsetilly/presentation/modalflag"
	"github.com/jetsetilly/presentation/osd"
	"github.com/jetsetilly/presentation/presenter"
	"github.com/jetsetilly/presentation/testcard"
	"github.com/jetsetilly/presentation/version"
	"github.com/jetsetilly/presentation/video"
	"github.com/veandco/go-sdl2/sdl"
)

// the interval between UI frames when there is no frame to present
const uiFrameInterval = time.Second / 30

// window is the GuiCreator for the RUN mode. All of its functions are called
// from the main thread.
type window struct {
	env *environment.Environment

	host    *sdlhost.Host
	backend *glbackend.Backend
	overlay *imguiosd.Overlay
	dumper  *video.FFMPEG
	pres    *presenter.Presenter

	frames <-chan testcard.Frame

	// closed when the window has been closed by the user
	quit   chan struct{}
	closed bool

	fullScreen bool
	duplicates int

	// snapshot of the presenter layout after the most recent present. read
	// by the launch goroutine
	layout atomic.Pointer[geometry.Layout]
}

func newWindow(env *environment.Environment, flags *commonFlags, card *testcard.Card, frames <-chan testcard.Frame) (*window, error) {
	win := &window{
		env:    env,
		frames: frames,
		quit:   make(chan struct{}),
	}

	v, _, _ := version.Version()

	var err error
	win.host, err = sdlhost.NewHost(env, sdlhost.Options{
		Title:  fmt.Sprintf("%s (%s)", version.ApplicationName, v),
		Stereo: env.Prefs.StereoMode() == geometry.StereoQuadBuffer,
		VSync:  true,
	})
	if err != nil {
		return nil, err
	}

	win.backend, err = glbackend.NewBackend(win.host, glbackend.Options{
		QuadBuffer: win.host.QuadBuffered(),
	}, env)
	if err != nil {
		_ = win.host.Destroy()
		return nil, err
	}

	win.overlay, err = imguiosd.NewOverlay(env.OSD, env)
	if err != nil {
		win.backend.Destroy()
		_ = win.host.Destroy()
		return nil, err
	}
	win.overlay.SetDisplaySize(win.host.WindowSize())

	win.dumper = video.NewFFMPEG(env, env.OSD)
	err = flags.enableDump(win.dumper, "run")
	if err != nil {
		logger.Log(env, "main", err)
		env.OSD.PostUntyped(err.Error(), osd.DurationNormal, osd.ColorRed)
	}

	win.pres, err = presenter.NewPresenter(env, presenter.Collaborators{
		Backend:       win.backend,
		PostProcessor: win.backend,
		Overlay:       win.overlay,
		FrameDumper:   win.dumper,
		Host:          win.host,
		Source:        card,
	})
	if err != nil {
		win.destroyGUI()
		return nil, err
	}

	err = win.pres.Initialize()
	if err != nil {
		win.destroyGUI()
		return nil, err
	}
	win.pres.SetKeyMap(win.host.KeyMap())

	return win, nil
}

func (win *window) destroyGUI() {
	win.overlay.Destroy()
	win.backend.Destroy()
	if err := win.host.Destroy(); err != nil {
		logger.Log(win.env, "main", err)
	}
}

// Destroy implements the GuiCreator interface.
func (win *window) Destroy(output io.Writer) {
	win.pres.Destroy()
	win.dumper.Destroy()
	win.destroyGUI()
	fmt.Fprintf(output, "%d duplicate frames\n", win.duplicates)
}

// Service implements the GuiCreator interface.
func (win *window) Service() {
	if win.closed {
		return
	}

	keys, running := win.host.Service(win.pres)
	if !running {
		win.close()
		return
	}

	for _, k := range keys {
		if k.Down {
			win.hotkey(k.Scancode)
		}
	}
	if win.closed {
		return
	}

	win.overlay.SetDisplaySize(win.host.WindowSize())

	if changes := win.env.Prefs.TakeChanges(); changes != 0 {
		win.pres.CheckForConfigChanges(changes)
	}

	if win.frames == nil {
		win.uiFrame()
		<-time.After(uiFrameInterval)
		return
	}

	select {
	case f, ok := <-win.frames:
		if !ok {
			win.frames = nil
			return
		}
		if f.Submit(win.pres) {
			win.duplicates++
		}
	case <-time.After(uiFrameInterval):
		win.uiFrame()
	}

	l := win.pres.Layout()
	win.layout.Store(&l)
}

func (win *window) close() {
	if !win.closed {
		win.closed = true
		close(win.quit)
	}
}

// uiFrame presents the overlay without a new frame.
func (win *window) uiFrame() {
	win.pres.BeginUIFrame()
	win.pres.EndUIFrame()
}

func (win *window) hotkey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		win.close()

	case sdl.SCANCODE_F9:
		// cycle through post-processing shaders
		names := slices.Sorted(maps.Keys(shaders.Post))
		i := slices.Index(names, win.backend.Shader())
		next := names[(i+1)%len(names)]
		_ = win.env.Prefs.PostProcessingShader.Set(next)
		if next == "" {
			next = "default"
		}
		win.env.OSD.PostUntyped(fmt.Sprintf("Shader: %s", next), osd.DurationShort, osd.ColorCyan)

	case sdl.SCANCODE_F10:
		crop := !win.env.Prefs.Crop.Get().(bool)
		_ = win.env.Prefs.Crop.Set(crop)
		win.env.OSD.PostUntyped(fmt.Sprintf("Crop: %v", crop), osd.DurationShort, osd.ColorCyan)

	case sdl.SCANCODE_F11:
		win.fullScreen = !win.fullScreen
		win.host.SetFullScreen(win.fullScreen)
	}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	flags := addCommonFlags(md, 0)

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

	card := testcard.NewCard(flags.card(false))
	frames := make(chan testcard.Frame)

	sync.creator <- func() (GuiCreator, error) {
		return newWindow(env, flags, card, frames)
	}

	var win *window
	select {
	case g := <-sync.creation:
		win = g.(*window)
	case err := <-sync.creationError:
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- card.Run(ctx, frames, env.OSD)
	}()

	// the program ends when the window is closed. the test card finishing is
	// not the end of the program if the number of frames is unlimited
	select {
	case <-win.quit:
		cancel()
		<-done
	case err := <-done:
		if err != nil {
			return err
		}
		if *flags.frames == 0 {
			<-win.quit
		}
	}

	return flags.finish(env, win.layout.Load())
}
