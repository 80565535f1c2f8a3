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

package testcard

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync/atomic"

	"github.com/jetsetilly/presentation/frame"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// the number of ticks in one second of emulated time
const TicksPerSecond = 486000000

// Options for a new Card.
type Options struct {
	// size of the frames. 640x480 if zero
	Width  int
	Height int

	// frames per second. 60 if zero
	Hz float32

	// do not wait between frames
	Unlimited bool

	// each frame is sent Repeat additional times
	Repeat int

	// the number of frames to produce. no limit if zero
	Frames int

	// whether the content is widescreen
	Widescreen bool
}

// colour bars
var bars = []color.RGBA{
	{0xc0, 0xc0, 0xc0, 0xff},
	{0xc0, 0xc0, 0x00, 0xff},
	{0x00, 0xc0, 0xc0, 0xff},
	{0x00, 0xc0, 0x00, 0xff},
	{0xc0, 0x00, 0xc0, 0xff},
	{0xc0, 0x00, 0x00, 0xff},
	{0x00, 0x00, 0xc0, 0xff},
}

// Card produces test card frames. The presenter's Source functions can be
// called from any goroutine.
type Card struct {
	opts Options
	pool *frame.Pool

	// float32 values stored as bits
	hackW  atomic.Uint32
	hackH  atomic.Uint32
	cursor atomic.Uint32
}

// NewCard is the preferred method of initialisation for the Card type.
func NewCard(opts Options) *Card {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width = 640
		opts.Height = 480
	}
	if opts.Hz <= 0 {
		opts.Hz = 60
	}
	opts.Repeat = max(opts.Repeat, 0)

	c := &Card{
		opts: opts,
		pool: frame.NewPool(),
	}
	c.hackW.Store(math.Float32bits(1))
	c.hackH.Store(math.Float32bits(1))
	c.cursor.Store(math.Float32bits(1))

	return c
}

// Aspect implements the presenter.Source interface.
func (c *Card) Aspect() float32 {
	return 4.0 / 3.0
}

// IsWidescreen implements the presenter.Source interface.
func (c *Card) IsWidescreen() bool {
	return c.opts.Widescreen
}

// SetAspectHack implements the presenter.Source interface.
func (c *Card) SetAspectHack(w, h float32) {
	c.hackW.Store(math.Float32bits(w))
	c.hackH.Store(math.Float32bits(h))
}

// AspectHack returns the values most recently given to SetAspectHack().
func (c *Card) AspectHack() (float32, float32) {
	return math.Float32frombits(c.hackW.Load()), math.Float32frombits(c.hackH.Load())
}

// SetCursorAspect implements the presenter.Source interface.
func (c *Card) SetCursorAspect(adjust float32) {
	c.cursor.Store(math.Float32bits(adjust))
}

// CursorAspect returns the value most recently given to SetCursorAspect().
func (c *Card) CursorAspect() float32 {
	return math.Float32frombits(c.cursor.Load())
}

// Ticks returns the emulated time at the start of the frame.
func (c *Card) Ticks(count int) uint64 {
	return uint64(float64(count) * TicksPerSecond / float64(c.opts.Hz))
}

// draw the test card for the frame count into the image
func (c *Card) draw(img *image.RGBA, count int) {
	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()

	// colour bars in the top two thirds
	barsBottom := b.Min.Y + h*2/3
	for i, col := range bars {
		r := image.Rect(b.Min.X+w*i/len(bars), b.Min.Y, b.Min.X+w*(i+1)/len(bars), barsBottom)
		draw.Draw(img, r, image.NewUniform(col), image.Point{}, draw.Src)
	}

	// greyscale ramp in the bottom third
	for x := range w {
		v := uint8(x * 255 / max(w-1, 1))
		r := image.Rect(b.Min.X+x, barsBottom, b.Min.X+x+1, b.Max.Y)
		draw.Draw(img, r, image.NewUniform(color.RGBA{v, v, v, 0xff}), image.Point{}, draw.Src)
	}

	// box in the centre shaped by the aspect hack
	hw, hh := c.AspectHack()
	side := float32(h) / 4
	bw := int(side * hw)
	bh := int(side * hh)
	cx := b.Min.X + w/2
	cy := b.Min.Y + h/2
	box := image.Rect(cx-bw/2, cy-bh/2, cx+bw/2, cy+bh/2)
	draw.Draw(img, box, image.Black, image.Point{}, draw.Src)
	draw.Draw(img, box.Inset(2), image.White, image.Point{}, draw.Src)

	// moving line shows that the image is changing
	x := b.Min.X + (count*4)%w
	draw.Draw(img, image.Rect(x, b.Min.Y, x+2, b.Max.Y), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(cx-bw/2+6, cy),
	}
	d.DrawString(fmt.Sprintf("%d", count))
}

// Draw returns a content-locked entry containing the test card for the frame
// count.
func (c *Card) Draw(count int) frame.Lease {
	l := c.pool.Acquire(c.opts.Width, c.opts.Height)
	if tex, ok := l.Entry().Texture.(*frame.ImageTexture); ok {
		c.draw(tex.RGBA, count)
	}
	return l
}
