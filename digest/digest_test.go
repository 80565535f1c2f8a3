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

package digest_test

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/presentation/config"
	"github.com/jetsetilly/presentation/digest"
	"github.com/jetsetilly/presentation/environment"
	"github.com/jetsetilly/presentation/frame"
	"github.com/jetsetilly/presentation/geometry"
	"github.com/jetsetilly/presentation/presenter"
	"github.com/jetsetilly/presentation/softgpu"
	"github.com/jetsetilly/presentation/test"
)

// two colour image. top half is c1 and bottom half is c2
func halves(w, h int, c1, c2 color.Color) *frame.ImageTexture {
	tex := frame.NewImageTexture(w, h)
	draw.Draw(tex, image.Rect(0, 0, w, h/2), image.NewUniform(c1), image.Point{}, draw.Src)
	draw.Draw(tex, image.Rect(0, h/2, w, h), image.NewUniform(c2), image.Point{}, draw.Src)
	return tex
}

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

type recorder struct {
	active bool
	frames []int
}

func (r *recorder) IsActive() bool {
	return r.active
}

func (r *recorder) DumpFrame(_ frame.Texture, _ geometry.Rectangle, _ geometry.Rectangle, _ uint64, frameCount int) {
	r.frames = append(r.frames, frameCount)
}

func TestChaining(t *testing.T) {
	a := halves(16, 16, red, blue)
	b := halves(16, 16, blue, red)
	rect := geometry.NewRectangle(16, 16)

	dig := digest.NewFrames(nil)
	test.ExpectEquality(t, dig.Hash(), strings.Repeat("0", 40))

	dig.DumpFrame(a, rect, rect, 0, 0)
	dig.DumpFrame(b, rect, rect, 0, 1)
	ab := dig.Hash()
	test.ExpectEquality(t, dig.Frames(), 2)

	// same frames in the same order
	dig.ResetDigest()
	test.ExpectEquality(t, dig.Frames(), 0)
	dig.DumpFrame(a, rect, rect, 0, 0)
	dig.DumpFrame(b, rect, rect, 0, 1)
	test.ExpectEquality(t, dig.Hash(), ab)

	// same frames in a different order
	dig.ResetDigest()
	dig.DumpFrame(b, rect, rect, 0, 0)
	dig.DumpFrame(a, rect, rect, 0, 1)
	test.ExpectInequality(t, dig.Hash(), ab)
}

func TestSourceArea(t *testing.T) {
	a := halves(16, 16, red, blue)

	top := digest.NewFrames(nil)
	top.DumpFrame(a, geometry.NewRectangle(16, 8), geometry.NewRectangle(16, 8), 0, 0)

	bottom := digest.NewFrames(nil)
	bottom.DumpFrame(a, geometry.Rectangle{Top: 8, Right: 16, Bottom: 16}, geometry.NewRectangle(16, 8), 0, 0)
	test.ExpectInequality(t, top.Hash(), bottom.Hash())

	// the bottom half of a frame with the halves swapped is the same as the
	// top half of the original frame
	b := halves(16, 16, blue, red)
	swapped := digest.NewFrames(nil)
	swapped.DumpFrame(b, geometry.Rectangle{Top: 8, Right: 16, Bottom: 16}, geometry.NewRectangle(16, 8), 0, 0)
	test.ExpectEquality(t, swapped.Hash(), top.Hash())

	// the target does not matter
	other := digest.NewFrames(nil)
	other.DumpFrame(a, geometry.NewRectangle(16, 8), geometry.NewRectangle(1920, 1080), 0, 0)
	test.ExpectEquality(t, other.Hash(), top.Hash())
}

func TestFlipped(t *testing.T) {
	a := halves(16, 16, red, blue)
	b := halves(16, 16, blue, red)

	flipped := digest.NewFrames(nil)
	flipped.DumpFrame(a, geometry.Rectangle{Top: 16, Right: 16, Bottom: 0}, geometry.NewRectangle(16, 16), 0, 0)

	upright := digest.NewFrames(nil)
	upright.DumpFrame(b, geometry.NewRectangle(16, 16), geometry.NewRectangle(16, 16), 0, 0)

	test.ExpectEquality(t, flipped.Hash(), upright.Hash())
}

func TestForwarding(t *testing.T) {
	a := halves(16, 16, red, blue)
	rect := geometry.NewRectangle(16, 16)

	rec := &recorder{}
	dig := digest.NewFrames(rec)
	test.ExpectSuccess(t, dig.IsActive())

	dig.DumpFrame(a, rect, rect, 0, 0)
	test.ExpectEquality(t, len(rec.frames), 0)

	rec.active = true
	dig.DumpFrame(a, rect, rect, 0, 1)
	dig.DumpFrame(a, rect, rect, 0, 2)
	test.ExpectEquality(t, len(rec.frames), 2)
	test.ExpectEquality(t, rec.frames[1], 2)
	test.ExpectEquality(t, dig.Frames(), 3)
}

func TestUnsupportedTexture(t *testing.T) {
	dig := digest.NewFrames(nil)
	test.ExpectPanic(t, func() {
		dig.DumpFrame(image.NewGray(image.Rect(0, 0, 4, 4)), geometry.NewRectangle(4, 4), geometry.NewRectangle(4, 4), 0, 0)
	})
}

// the digest of presented frames does not include skipped duplicates
func TestPresentedFrames(t *testing.T) {
	run := func(skip bool, ids ...uint64) *digest.Frames {
		prf, err := config.NewPreferences(filepath.Join(t.TempDir(), config.DefaultPrefsFile))
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, prf.SkipDuplicateFrames.Set(skip))
		env := environment.NewEnvironment(environment.MainPresentation, prf, nil)

		backend := softgpu.NewBackend(softgpu.Options{Headless: true})
		dig := digest.NewFrames(nil)
		p, err := presenter.NewPresenter(env, presenter.Collaborators{
			Backend:       backend,
			PostProcessor: softgpu.NewPostProcessor(backend, env),
			Overlay:       softgpu.NewOverlay(backend, env.OSD),
			FrameDumper:   dig,
		})
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, p.Initialize())
		defer p.Destroy()

		entries := map[uint64]*frame.Entry{
			1: {ID: 1, Texture: halves(16, 16, red, blue)},
			2: {ID: 2, Texture: halves(16, 16, blue, red)},
		}
		for i, id := range ids {
			p.SubmitFrame(entries[id], geometry.NewRectangle(16, 16), 0, i)
		}
		return dig
	}

	withDuplicates := run(true, 1, 1, 1, 2, 2)
	test.ExpectEquality(t, withDuplicates.Frames(), 2)

	withoutDuplicates := run(true, 1, 2)
	test.ExpectEquality(t, withDuplicates.Hash(), withoutDuplicates.Hash())

	notSkipped := run(false, 1, 1, 1, 2, 2)
	test.ExpectEquality(t, notSkipped.Frames(), 5)
	test.ExpectInequality(t, notSkipped.Hash(), withoutDuplicates.Hash())
}
