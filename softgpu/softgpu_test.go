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

package softgpu_test

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/presentation/config"
	"github.com/jetsetilly/presentation/environment"
	"github.com/jetsetilly/presentation/frame"
	"github.com/jetsetilly/presentation/geometry"
	"github.com/jetsetilly/presentation/osd"
	"github.com/jetsetilly/presentation/presenter"
	"github.com/jetsetilly/presentation/softgpu"
	"github.com/jetsetilly/presentation/test"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

type gpu struct {
	env     *environment.Environment
	backend *softgpu.Backend
	post    *softgpu.PostProcessor
	overlay *softgpu.Overlay
	p       *presenter.Presenter
}

func newGPU(t *testing.T, opts softgpu.Options) gpu {
	t.Helper()

	prf, err := config.NewPreferences(filepath.Join(t.TempDir(), config.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	g := gpu{env: environment.NewEnvironment(environment.MainPresentation, prf, nil)}
	g.backend = softgpu.NewBackend(opts)
	g.post = softgpu.NewPostProcessor(g.backend, g.env)
	g.overlay = softgpu.NewOverlay(g.backend, g.env.OSD)

	g.p, err = presenter.NewPresenter(g.env, presenter.Collaborators{
		Backend:       g.backend,
		PostProcessor: g.post,
		Overlay:       g.overlay,
	})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, g.p.Initialize())
	t.Cleanup(g.p.Destroy)

	return g
}

func filled(id uint64, w, h int, c color.Color) *frame.Entry {
	tex := frame.NewImageTexture(w, h)
	draw.Draw(tex, tex.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return &frame.Entry{ID: id, Texture: tex}
}

func TestPresentFrame(t *testing.T) {
	g := newGPU(t, softgpu.Options{Width: 1920, Height: 1080})

	img, n := g.backend.Front()
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, img == nil)

	g.p.SubmitFrame(filled(1, 640, 480, red), geometry.NewRectangle(640, 480), 0, 0)

	img, n = g.backend.Front()
	test.DemandEquality(t, n, 1)
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 1920, 1080))

	// a 4:3 image is pillarboxed
	test.ExpectEquality(t, img.RGBAAt(960, 540), red)
	test.ExpectEquality(t, img.RGBAAt(100, 540), black)
	test.ExpectEquality(t, img.RGBAAt(1820, 540), black)
	test.ExpectEquality(t, img.RGBAAt(g.p.TargetRectangle().Left, 540), red)
	test.ExpectEquality(t, img.RGBAAt(g.p.TargetRectangle().Left-1, 540), black)
}

func TestFlippedSource(t *testing.T) {
	g := newGPU(t, softgpu.Options{Width: 640, Height: 480})

	// red top half and blue bottom half
	e := filled(1, 320, 240, red)
	draw.Draw(e.Texture.(*frame.ImageTexture), image.Rect(0, 120, 320, 240), image.NewUniform(blue), image.Point{}, draw.Src)

	g.p.SubmitFrame(e, geometry.NewRectangle(320, 240), 0, 0)
	img, _ := g.backend.Front()
	test.ExpectEquality(t, img.RGBAAt(320, 10), red)
	test.ExpectEquality(t, img.RGBAAt(320, 470), blue)

	flipped := geometry.Rectangle{Left: 0, Top: 240, Right: 320, Bottom: 0}
	g.p.SubmitFrame(filled(2, 320, 240, red), flipped, 0, 0)
	g.p.SubmitFrame(e, flipped, 0, 0)
	img, _ = g.backend.Front()
	test.ExpectEquality(t, img.RGBAAt(320, 10), blue)
	test.ExpectEquality(t, img.RGBAAt(320, 470), red)
}

func TestShaders(t *testing.T) {
	g := newGPU(t, softgpu.Options{Width: 640, Height: 480})
	test.ExpectEquality(t, g.post.Shader(), "")

	test.ExpectSuccess(t, g.env.Prefs.PostProcessingShader.Set("nearest"))
	g.p.CheckForConfigChanges(g.env.Prefs.TakeChanges())
	test.ExpectEquality(t, g.post.Shader(), "nearest")
	test.ExpectEquality(t, g.backend.Stats.Waits, 1)

	// unknown shaders are accepted but use the default kernel
	test.ExpectSuccess(t, g.env.Prefs.PostProcessingShader.Set("crt"))
	g.p.CheckForConfigChanges(g.env.Prefs.TakeChanges())
	test.ExpectEquality(t, g.post.Shader(), "crt")

	g.p.SubmitFrame(filled(1, 320, 240, red), geometry.NewRectangle(320, 240), 0, 0)
	img, _ := g.backend.Front()
	test.ExpectEquality(t, img.RGBAAt(320, 240), red)
}

func TestStereo(t *testing.T) {
	g := newGPU(t, softgpu.Options{Width: 1920, Height: 1080})
	test.ExpectSuccess(t, g.env.Prefs.Stereo.Set("sbs"))
	g.p.CheckForConfigChanges(g.env.Prefs.TakeChanges())
	test.ExpectEquality(t, g.post.Pipelines, 1)
	test.ExpectEquality(t, g.overlay.Pipelines, 1)

	g.p.SubmitFrame(filled(1, 640, 480, red), geometry.NewRectangle(640, 480), 0, 0)
	img, _ := g.backend.Front()

	left, right := g.p.Layout().ConvertStereoRectangle(g.p.TargetRectangle())
	test.ExpectEquality(t, img.RGBAAt((left.Left+left.Right)/2, 540), red)
	test.ExpectEquality(t, img.RGBAAt((right.Left+right.Right)/2, 540), red)

	// the gap between the two eyes
	test.ExpectEquality(t, img.RGBAAt(left.Right+1, 540), black)
}

func TestQuadBuffer(t *testing.T) {
	g := newGPU(t, softgpu.Options{Width: 800, Height: 600, QuadBuffer: true})
	test.ExpectSuccess(t, g.env.Prefs.Stereo.Set("quadbuffer"))
	g.p.CheckForConfigChanges(g.env.Prefs.TakeChanges())

	g.p.SubmitFrame(filled(1, 640, 480, red), geometry.NewRectangle(640, 480), 0, 0)
	img, _ := g.backend.Front()

	// both eyes are presented side by side
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 1600, 600))
	test.ExpectEquality(t, img.RGBAAt(400, 300), red)
	test.ExpectEquality(t, img.RGBAAt(1200, 300), red)
}

func TestResize(t *testing.T) {
	g := newGPU(t, softgpu.Options{Width: 640, Height: 480, Scale: 2.0})
	test.ExpectEquality(t, g.p.Backbuffer().Scale, float32(2.0))

	g.backend.Resize(800, 600)
	g.p.ResizeSurface()
	g.p.SubmitFrame(filled(1, 320, 240, red), geometry.NewRectangle(320, 240), 0, 0)
	test.ExpectEquality(t, g.p.Backbuffer().Width, 800)
	test.ExpectEquality(t, g.p.Backbuffer().Height, 600)

	img, _ := g.backend.Front()
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 800, 600))

	g.p.ChangeSurface(image.Pt(1024, 768))
	g.p.BeginUIFrame()
	g.p.EndUIFrame()
	img, _ = g.backend.Front()
	test.ExpectEquality(t, img.Bounds(), image.Rect(0, 0, 1024, 768))

	w, h := g.overlay.FrameSize()
	test.ExpectEquality(t, w, 1024)
	test.ExpectEquality(t, h, 768)
}

func TestHeadless(t *testing.T) {
	g := newGPU(t, softgpu.Options{Headless: true})
	test.ExpectEquality(t, g.backend.SurfaceInfo(), presenter.SurfaceInfo{})

	g.p.SubmitFrame(filled(1, 320, 240, red), geometry.NewRectangle(320, 240), 0, 0)
	test.ExpectEquality(t, g.backend.Stats.Presents, 1)

	img, n := g.backend.Front()
	test.ExpectEquality(t, n, 0)
	test.ExpectSuccess(t, img == nil)
}

func TestOverlay(t *testing.T) {
	g := newGPU(t, softgpu.Options{Width: 640, Height: 480})

	g.env.OSD.PostUntyped("hello", osd.DurationNormal, osd.ColorRed)
	g.env.OSD.PostUntyped("world", osd.DurationNormal, osd.ColorGreen)

	g.p.SubmitFrame(filled(1, 320, 240, black), geometry.NewRectangle(320, 240), 0, 0)

	d := g.overlay.Drawn()
	test.DemandEquality(t, len(d), 2)
	test.ExpectEquality(t, d[0].Text, "hello")
	test.ExpectEquality(t, d[0].X, float32(osd.LeftMargin))
	test.ExpectEquality(t, d[0].Y, float32(osd.TopMargin))
	test.ExpectSuccess(t, d[1].Y > d[0].Y)

	// some of the text is drawn in the message colour
	img, _ := g.backend.Front()
	var found bool
	for y := int(d[0].Y); y < int(d[1].Y) && !found; y++ {
		for x := int(d[0].X); x < int(d[0].X)+60; x++ {
			if img.RGBAAt(x, y) == red {
				found = true
				break
			}
		}
	}
	test.ExpectSuccess(t, found)

	// messages are not drawn when disabled
	test.ExpectSuccess(t, g.env.Prefs.OSDMessages.Set(false))
	g.p.SubmitFrame(filled(2, 320, 240, black), geometry.NewRectangle(320, 240), 0, 0)
	test.ExpectEquality(t, len(g.overlay.Drawn()), 0)
}

func TestInput(t *testing.T) {
	g := newGPU(t, softgpu.Options{Width: 640, Height: 480})

	g.p.SetKey(65, true, "a")
	g.p.SetKey(66, false, "b")
	g.p.SetMousePos(1, 2)
	g.p.SetMousePress(3)
	test.ExpectSuccess(t, g.overlay.Keys[65])
	test.ExpectFailure(t, g.overlay.Keys[66])
	test.ExpectEquality(t, g.overlay.Chars, "ab")
	test.ExpectEquality(t, g.overlay.MouseX, float32(1))
	test.ExpectEquality(t, g.overlay.MouseY, float32(2))
	test.ExpectEquality(t, g.overlay.Buttons, uint32(3))
}
