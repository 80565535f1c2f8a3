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

package presenter

import (
	"github.com/jetsetilly/presentation/curated"
	"github.com/jetsetilly/presentation/frame"
	"github.com/jetsetilly/presentation/geometry"
)

// abs is used for the dimensions of flipped rectangles
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// SubmitFrame hands a frame to the presenter. The presenter holds a content
// lock on the entry until the next frame is submitted.
//
// Returns true if the frame is a duplicate of the most recently presented
// frame. A duplicate frame is not presented if the SkipDuplicateFrames
// preference is set.
//
// The entry must not be nil and must have a texture.
func (p *Presenter) SubmitFrame(entry *frame.Entry, rect geometry.Rectangle, ticks uint64, frameCount int) bool {
	p.owner.Check("SubmitFrame")

	if entry == nil {
		panic(curated.Errorf(InvalidFrame, "nil entry"))
	}
	if entry.Texture == nil {
		panic(curated.Errorf(InvalidFrame, "nil texture"))
	}

	// the previous frame will not be drawn again
	prev := p.xfb.Move()
	p.xfb = frame.Acquire(entry)
	prev.Release()

	p.xfbRect = rect

	duplicate := p.presented && p.lastID == entry.ID
	if duplicate && p.env.Prefs.SkipDuplicateFrames.Get().(bool) {
		return true
	}

	p.Present()

	if p.dumper != nil && p.dumper.IsActive() {
		var target geometry.Rectangle
		if !p.env.Prefs.InternalResolutionFrameDumps.Get().(bool) && !p.headless {
			target = p.target
		} else {
			w, h := p.layout().CalculateOutputDimensions(abs(rect.Width()), abs(rect.Height()))
			target = geometry.NewRectangle(w, h)
		}
		p.dumper.DumpFrame(entry.Texture, rect, target, ticks, frameCount)
	}

	return duplicate
}

// Present draws the most recently submitted frame and the overlay to the
// backbuffer and presents it.
func (p *Presenter) Present() {
	p.owner.Check("Present")

	// the overlay is still drawn when there is no frame
	var entry *frame.Entry
	if p.xfb.Held() {
		entry = p.xfb.Entry()
		p.lastID = entry.ID
		p.presented = true
	}

	p.serviceSurface()

	// drawing shares buffers with batched drawing that might still be in
	// progress
	p.backend.Flush()

	p.overlay.Finalize()

	p.backend.BeginUtilityDrawing()

	if !p.headless {
		p.backend.BindBackbuffer(Black)

		p.updateDrawRectangle()

		if entry != nil {
			// clip the target to the backbuffer and adjust the source to match
			target := p.target
			source := p.xfbRect
			geometry.AdjustRectanglesToFitBounds(&target, &source, p.backbuffer.Width, p.backbuffer.Height)
			p.renderFrameToScreen(target, entry.Texture, source)
		}

		p.overlay.DrawOverlay()

		p.WithSwapLock(p.backend.PresentBackbuffer)

		// the size of the frame depends on the source so this is checked
		// every frame
		if entry != nil {
			p.SetWindowSize(abs(p.xfbRect.Width()), abs(p.xfbRect.Height()))
		}
	} else {
		p.WithSwapLock(p.backend.PresentBackbuffer)
	}

	p.overlay.BeginFrame(p.backbuffer.Width, p.backbuffer.Height)

	p.backend.EndUtilityDrawing()
}

// renderFrameToScreen draws the texture using the draw strategy for the
// current stereo mode.
func (p *Presenter) renderFrameToScreen(target geometry.Rectangle, tex frame.Texture, source geometry.Rectangle) {
	if !p.backend.SupportsPostProcessing() {
		p.backend.ShowImage(tex, source)
		return
	}

	l := p.layout()

	switch {
	case l.Stereo == geometry.StereoQuadBuffer && p.backend.UsesExplicitQuadBuffering():
		p.backend.SelectLeftBuffer()
		p.post.BlitFromTexture(target, source, tex, LeftEye)
		p.backend.SelectRightBuffer()
		p.post.BlitFromTexture(target, source, tex, RightEye)
		p.backend.SelectMainBuffer()

	case l.Stereo.IsSplit():
		left, right := l.ConvertStereoRectangle(target)
		p.post.BlitFromTexture(left, source, tex, LeftEye)
		p.post.BlitFromTexture(right, source, tex, RightEye)

	default:
		p.post.BlitFromTexture(target, source, tex, LeftEye)
	}
}

// BeginUIFrame prepares the backbuffer for an overlay-only frame. Used when
// no frames are being submitted, for example when the source is paused.
func (p *Presenter) BeginUIFrame() {
	p.owner.Check("BeginUIFrame")

	if p.headless {
		return
	}

	p.serviceSurface()

	p.backend.BeginUtilityDrawing()
	p.backend.BindBackbuffer(Black)
}

// EndUIFrame draws the overlay and presents the backbuffer. Must be paired
// with BeginUIFrame().
func (p *Presenter) EndUIFrame() {
	p.owner.Check("EndUIFrame")

	p.overlay.Finalize()

	if !p.headless {
		p.overlay.DrawOverlay()
		p.WithSwapLock(p.backend.PresentBackbuffer)
		p.backend.EndUtilityDrawing()
	}

	p.overlay.BeginFrame(p.backbuffer.Width, p.backbuffer.Height)
}
