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

package softgpu

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/jetsetilly/presentation/curated"
	"github.com/jetsetilly/presentation/frame"
	"github.com/jetsetilly/presentation/geometry"
	"github.com/jetsetilly/presentation/presenter"
	xdraw "golang.org/x/image/draw"
)

// Sentinel errors.
const (
	UnsupportedTexture = "softgpu: unsupported texture type (%T)"
	NotDrawing         = "softgpu: %s called outside of utility drawing"
)

// Options for a new Backend.
type Options struct {
	Width  int
	Height int
	Scale  float32

	// a headless backend has no surface
	Headless bool

	// left and right buffers are kept separately when quad buffering is
	// enabled
	QuadBuffer bool
}

// Backend is an image backed implementation of presenter.Backend.
type Backend struct {
	opts Options

	// the buffer currently being drawn to
	selected *image.RGBA

	back  *image.RGBA
	left  *image.RGBA
	right *image.RGBA

	drawing bool

	// statistics
	Stats Stats

	// the most recently presented image and the pending size applied by
	// ResizeSurface(). accessed by more than one goroutine
	crit struct {
		section sync.Mutex
		front   *image.RGBA
		frames  int

		pendingW, pendingH int
	}
}

// Stats counts calls made to the backend.
type Stats struct {
	Presents int
	Waits    int
	Flushes  int
	Shows    int
}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend(opts Options) *Backend {
	if opts.Scale <= 0 {
		opts.Scale = 1.0
	}
	b := &Backend{opts: opts}
	if !opts.Headless {
		b.allocate(opts.Width, opts.Height)
	}
	return b
}

func (b *Backend) allocate(width, height int) {
	width = max(width, 1)
	height = max(height, 1)
	b.opts.Width = width
	b.opts.Height = height

	r := image.Rect(0, 0, width, height)
	b.back = image.NewRGBA(r)
	if b.opts.QuadBuffer {
		b.left = image.NewRGBA(r)
		b.right = image.NewRGBA(r)
	}
	b.selected = b.back
}

func (b *Backend) mustBeDrawing(function string) {
	if !b.drawing {
		panic(curated.Errorf(NotDrawing, function))
	}
}

// IsHeadless implements the presenter.Backend interface.
func (b *Backend) IsHeadless() bool {
	return b.opts.Headless
}

// BeginUtilityDrawing implements the presenter.Backend interface.
func (b *Backend) BeginUtilityDrawing() {
	b.drawing = true
}

// EndUtilityDrawing implements the presenter.Backend interface.
func (b *Backend) EndUtilityDrawing() {
	b.drawing = false
}

// BindBackbuffer implements the presenter.Backend interface.
func (b *Backend) BindBackbuffer(c presenter.ClearColor) {
	b.mustBeDrawing("BindBackbuffer")
	b.selected = b.back

	col := color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(c.A * 255),
	}
	for _, img := range []*image.RGBA{b.back, b.left, b.right} {
		if img != nil {
			draw.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
		}
	}
}

// PresentBackbuffer implements the presenter.Backend interface. The
// backbuffer is copied and made available through the Front() function.
func (b *Backend) PresentBackbuffer() {
	b.Stats.Presents++
	if b.opts.Headless {
		return
	}

	front := image.NewRGBA(b.back.Bounds())
	if b.opts.QuadBuffer {
		// the two eyes are presented side by side
		front = image.NewRGBA(image.Rect(0, 0, b.back.Bounds().Dx()*2, b.back.Bounds().Dy()))
		draw.Draw(front, b.left.Bounds(), b.left, image.Point{}, draw.Src)
		draw.Draw(front, b.right.Bounds().Add(image.Pt(b.back.Bounds().Dx(), 0)), b.right, image.Point{}, draw.Src)
	} else {
		copy(front.Pix, b.back.Pix)
	}

	b.crit.section.Lock()
	defer b.crit.section.Unlock()
	b.crit.front = front
	b.crit.frames++
}

// Front returns the most recently presented image and the number of frames
// presented so far. The image is nil if nothing has been presented. Safe to
// call from any goroutine.
func (b *Backend) Front() (*image.RGBA, int) {
	b.crit.section.Lock()
	defer b.crit.section.Unlock()
	return b.crit.front, b.crit.frames
}

// ShowImage implements the presenter.Backend interface.
func (b *Backend) ShowImage(tex frame.Texture, source geometry.Rectangle) {
	b.mustBeDrawing("ShowImage")
	b.Stats.Shows++
	blit(b.back, b.back.Bounds(), tex, source, xdraw.ApproxBiLinear)
}

// SelectLeftBuffer implements the presenter.Backend interface.
func (b *Backend) SelectLeftBuffer() {
	if b.left != nil {
		b.selected = b.left
	}
}

// SelectRightBuffer implements the presenter.Backend interface.
func (b *Backend) SelectRightBuffer() {
	if b.right != nil {
		b.selected = b.right
	}
}

// SelectMainBuffer implements the presenter.Backend interface.
func (b *Backend) SelectMainBuffer() {
	b.selected = b.back
}

// WaitForGPUIdle implements the presenter.Backend interface. All drawing is
// synchronous so there is nothing to wait for.
func (b *Backend) WaitForGPUIdle() {
	b.Stats.Waits++
}

// Flush implements the presenter.Backend interface.
func (b *Backend) Flush() {
	b.Stats.Flushes++
}

// SupportsPostProcessing implements the presenter.Backend interface.
func (b *Backend) SupportsPostProcessing() bool {
	return true
}

// UsesExplicitQuadBuffering implements the presenter.Backend interface.
func (b *Backend) UsesExplicitQuadBuffering() bool {
	return b.opts.QuadBuffer
}

// SurfaceInfo implements the presenter.Backend interface.
func (b *Backend) SurfaceInfo() presenter.SurfaceInfo {
	if b.opts.Headless {
		return presenter.SurfaceInfo{}
	}
	return presenter.SurfaceInfo{
		Width:  b.opts.Width,
		Height: b.opts.Height,
		Scale:  b.opts.Scale,
		Format: presenter.FormatRGBA8,
	}
}

// ChangeSurface implements the presenter.Backend interface. The handle should
// be an image.Point giving the size of the new surface. Any other handle
// recreates the surface at the current size.
func (b *Backend) ChangeSurface(handle presenter.SurfaceHandle) {
	w, h := b.opts.Width, b.opts.Height
	if p, ok := handle.(image.Point); ok {
		w, h = p.X, p.Y
	}
	b.allocate(w, h)
}

// Resize sets the size that is applied by the next call to ResizeSurface().
// Should be followed by a call to the presenter's ResizeSurface() function.
func (b *Backend) Resize(width, height int) {
	b.crit.section.Lock()
	defer b.crit.section.Unlock()
	b.crit.pendingW = width
	b.crit.pendingH = height
}

// ResizeSurface implements the presenter.Backend interface.
func (b *Backend) ResizeSurface() {
	b.crit.section.Lock()
	w, h := b.crit.pendingW, b.crit.pendingH
	b.crit.pendingW = 0
	b.crit.pendingH = 0
	b.crit.section.Unlock()

	if w == 0 || h == 0 {
		return
	}
	b.allocate(w, h)
}
