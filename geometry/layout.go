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

package geometry

import (
	"math"
)

// the aspect ratio of a standard definition television
const standardAspect = float32(4.0 / 3.0)

// the aspect ratio of a widescreen television
const widescreenAspect = float32(16.0 / 9.0)

// toWidescreen widens an aspect ratio by the ratio of 16:9 to 4:3.
func toWidescreen(aspect float32) float32 {
	return aspect * (widescreenAspect / standardAspect)
}

// multipleOfFour rounds up to the nearest whole number and then down to the
// nearest multiple of four.
func multipleOfFour(v float32) int {
	c := int(math.Ceil(float64(v)))
	return c - c%4
}

// Config is the part of the Layout that is set by the user.
type Config struct {
	Aspect         AspectMode
	Crop           bool
	Stereo         StereoMode
	WidescreenHack bool
}

// Layout is the complete set of inputs for the geometry functions. The zero
// value is valid but not useful.
type Layout struct {
	Config

	// the aspect ratio of the image produced by the source. a value of zero
	// or less is treated as 4:3
	SourceAspect float32

	// whether the source content has been detected as being widescreen
	GameWidescreen bool

	// dimensions of the surface being drawn to
	BackbufferWidth  int
	BackbufferHeight int
}

func (l Layout) sourceAspect() float32 {
	if l.SourceAspect <= 0 {
		return standardAspect
	}
	return l.SourceAspect
}

// backbuffer dimensions are never less than one
func (l Layout) backbuffer() (float32, float32) {
	return float32(max(l.BackbufferWidth, 1)), float32(max(l.BackbufferHeight, 1))
}

// IsWidescreen returns true if the image should be drawn in widescreen. This
// is the case when the aspect mode is ForceWide or when it is Auto and the
// source content has been detected as widescreen.
func (l Layout) IsWidescreen() bool {
	return l.Aspect == AspectForceWide || (l.Aspect == AspectAuto && l.GameWidescreen)
}

// CalculateDrawAspectRatio returns the aspect ratio of the image as it should
// appear on the display.
func (l Layout) CalculateDrawAspectRatio() float32 {
	if l.Aspect == AspectStretch {
		w, h := l.backbuffer()
		return w / h
	}

	if l.IsWidescreen() {
		return toWidescreen(l.sourceAspect())
	}

	return l.sourceAspect()
}

// ApplyStandardAspectCrop crops the dimensions to exactly 4:3 or 16:9. The
// dimension that overshoots is reduced and the other is preserved. Returns
// the dimensions unchanged if cropping is disabled or if the aspect mode is
// Stretch.
func (l Layout) ApplyStandardAspectCrop(width, height float32) (float32, float32) {
	if !l.Crop || l.Aspect == AspectStretch {
		return width, height
	}

	expected := standardAspect
	if l.IsWidescreen() {
		expected = widescreenAspect
	}

	if width/height > expected {
		// keep height, crop width
		width = height * expected
	} else {
		// keep width, crop height
		height = width / expected
	}

	return width, height
}

// TargetRectangle returns the area of the backbuffer the image is drawn to.
// The image is scaled to fit inside the backbuffer and is centred in the
// remaining space.
func (l Layout) TargetRectangle() Rectangle {
	drawAspect := l.CalculateDrawAspectRatio()
	winWidth, winHeight := l.backbuffer()

	drawWidth := drawAspect
	drawHeight := float32(1.0)
	cropWidth, cropHeight := l.ApplyStandardAspectCrop(drawWidth, drawHeight)

	// scale the cropped picture to fit the backbuffer. the uncropped picture
	// is scaled by the same amount and may be larger than the backbuffer
	var scale float32
	if winWidth/winHeight >= cropWidth/cropHeight {
		// backbuffer is flatter than the picture
		scale = winHeight / cropHeight
	} else {
		// backbuffer is skinnier than the picture
		scale = winWidth / cropWidth
	}
	drawWidth *= scale
	drawHeight *= scale

	w := multipleOfFour(drawWidth)
	h := multipleOfFour(drawHeight)

	var r Rectangle
	r.Left = int(math.RoundToEven(float64(winWidth)/2.0 - float64(w)/2.0))
	r.Top = int(math.RoundToEven(float64(winHeight)/2.0 - float64(h)/2.0))
	r.Right = r.Left + w
	r.Bottom = r.Top + h

	return r
}

// ConvertStereoRectangle splits a target rectangle into two rectangles, one
// for each eye. For TopAndBottom the split is on the vertical axis, otherwise
// the split is on the horizontal axis.
//
// The rectangle is reduced to half size by removing a quarter from each side
// of the split axis. The left eye is then moved a quarter of the backbuffer
// towards the origin and the right eye is placed half the backbuffer beyond
// the left eye.
func (l Layout) ConvertStereoRectangle(rc Rectangle) (Rectangle, Rectangle) {
	drawRc := rc
	if l.Stereo == StereoTopAndBottom {
		// height may be negative for flipped rectangles
		height := rc.Height()
		drawRc.Top += height / 4
		drawRc.Bottom -= height / 4
	} else {
		width := rc.Width()
		drawRc.Left += width / 4
		drawRc.Right -= width / 4
	}

	leftRc := drawRc
	rightRc := drawRc
	if l.Stereo == StereoTopAndBottom {
		quarter := l.BackbufferHeight / 4
		remainder := l.BackbufferHeight/2 - quarter
		leftRc.Top -= quarter
		leftRc.Bottom -= quarter
		rightRc.Top += remainder
		rightRc.Bottom += remainder
	} else {
		quarter := l.BackbufferWidth / 4
		remainder := l.BackbufferWidth/2 - quarter
		leftRc.Left -= quarter
		leftRc.Right -= quarter
		rightRc.Left += remainder
		rightRc.Right += remainder
	}

	return leftRc, rightRc
}

// AdjustRectanglesToFitBounds clips the target rectangle to the bounds. When
// an edge of the target is clipped the same edge of the source rectangle is
// reduced in proportion, so that the visible part of the source is drawn to
// the visible part of the target at the original scale.
func AdjustRectanglesToFitBounds(target *Rectangle, source *Rectangle, width, height int) {
	origTargetWidth := target.Width()
	origTargetHeight := target.Height()
	origSourceWidth := source.Width()
	origSourceHeight := source.Height()

	// the ratio is undefined for a zero width target
	if origTargetWidth == 0 {
		origTargetWidth = 1
	}
	if origTargetHeight == 0 {
		origTargetHeight = 1
	}

	if target.Left < 0 {
		offset := -target.Left
		target.Left = 0
		source.Left += offset * origSourceWidth / origTargetWidth
	}
	if target.Right > width {
		offset := target.Right - width
		target.Right -= offset
		source.Right -= offset * origSourceWidth / origTargetWidth
	}
	if target.Top < 0 {
		offset := -target.Top
		target.Top = 0
		source.Top += offset * origSourceHeight / origTargetHeight
	}
	if target.Bottom > height {
		offset := target.Bottom - height
		target.Bottom -= offset
		source.Bottom -= offset * origSourceHeight / origTargetHeight
	}
}

// ScaleToDisplayAspectRatio scales one of the dimensions so that the result
// has the draw aspect ratio. The dimension that is short relative to the
// aspect ratio is increased, so no resolution is lost.
func (l Layout) ScaleToDisplayAspectRatio(width, height int) (float32, float32) {
	scaledWidth := float32(max(width, 1))
	scaledHeight := float32(max(height, 1))
	drawAspect := l.CalculateDrawAspectRatio()
	if scaledWidth/scaledHeight >= drawAspect {
		scaledHeight = scaledWidth / drawAspect
	} else {
		scaledWidth = scaledHeight * drawAspect
	}
	return scaledWidth, scaledHeight
}

// CalculateOutputDimensions returns the size of the image for the given
// source size, scaled to the draw aspect ratio and cropped. The result is
// rounded in the same way as TargetRectangle().
func (l Layout) CalculateOutputDimensions(width, height int) (int, int) {
	width = max(width, 1)
	height = max(height, 1)

	scaledWidth, scaledHeight := l.ScaleToDisplayAspectRatio(width, height)
	scaledWidth, scaledHeight = l.ApplyStandardAspectCrop(scaledWidth, scaledHeight)

	return multipleOfFour(scaledWidth), multipleOfFour(scaledHeight)
}

// AspectHack returns the horizontal and vertical projection factors that
// the source should use so that the scene fills the draw area. When the
// widescreen hack is disabled both factors are one.
func (l Layout) AspectHack() (float32, float32) {
	if !l.WidescreenHack {
		return 1, 1
	}

	source := l.sourceAspect()
	if l.GameWidescreen {
		source = toWidescreen(source)
	}

	adjust := source / l.CalculateDrawAspectRatio()
	if adjust > 1 {
		// vert+
		return 1, 1 / adjust
	}

	// hor+
	return adjust, 1
}

// CursorAspectAdjustment returns the ratio of the draw aspect to the
// backbuffer aspect. Input handling uses this to map the cursor to the
// region of the backbuffer that is being drawn to.
func (l Layout) CursorAspectAdjustment() float32 {
	w, h := l.backbuffer()
	return l.CalculateDrawAspectRatio() / (w / h)
}
