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

	"github.com/jetsetilly/presentation/osd"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// the padding around the text of a message
const textPadding = 4

// background colour of message windows
var windowBackground = color.NRGBA{A: 0xa0}

// Overlay implements presenter.Overlay by drawing the messages in an OSD
// queue into the backbuffer of a Backend.
type Overlay struct {
	backend *Backend
	queue   *osd.Queue
	face    font.Face

	// messages collected by Finalize() and drawn by DrawOverlay()
	draws []osd.Draw

	width, height int

	// input state
	KeyMap  [][2]int
	Keys    map[uint32]bool
	Chars   string
	MouseX  float32
	MouseY  float32
	Buttons uint32

	// number of times the pipeline has been recompiled
	Pipelines int
}

// NewOverlay is the preferred method of initialisation for the Overlay type.
func NewOverlay(backend *Backend, queue *osd.Queue) *Overlay {
	return &Overlay{
		backend: backend,
		queue:   queue,
		face:    basicfont.Face7x13,
		Keys:    make(map[uint32]bool),
	}
}

// Finalize implements the presenter.Overlay interface. Expired messages are
// removed from the queue and the remaining messages are laid out.
func (ovl *Overlay) Finalize() {
	ovl.draws = ovl.draws[:0]
	ovl.queue.DrainAndRenderLive(func(d osd.Draw) float32 {
		ovl.draws = append(ovl.draws, d)
		return float32(ovl.face.Metrics().Height.Ceil() + textPadding*2)
	})
}

// Drawn returns the messages laid out by the most recent call to Finalize().
func (ovl *Overlay) Drawn() []osd.Draw {
	return ovl.draws
}

// DrawOverlay implements the presenter.Overlay interface.
func (ovl *Overlay) DrawOverlay() {
	ovl.backend.mustBeDrawing("DrawOverlay")
	dst := ovl.backend.back

	for _, d := range ovl.draws {
		adv := font.MeasureString(ovl.face, d.Text).Ceil()
		lineHeight := ovl.face.Metrics().Height.Ceil()
		x := int(d.X)
		y := int(d.Y)

		win := image.Rect(x, y, x+adv+textPadding*2, y+lineHeight+textPadding*2)
		bg := windowBackground
		bg.A = uint8(float32(bg.A) * d.Alpha)
		draw.Draw(dst, win, image.NewUniform(bg), image.Point{}, draw.Over)

		r, g, b, a := d.Color.RGBA()
		col := color.NRGBA{
			R: uint8(r * 255),
			G: uint8(g * 255),
			B: uint8(b * 255),
			A: uint8(a * d.Alpha * 255),
		}

		dr := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(col),
			Face: ovl.face,
			Dot: fixed.Point26_6{
				X: fixed.I(x + textPadding),
				Y: fixed.I(y+textPadding) + ovl.face.Metrics().Ascent,
			},
		}
		dr.DrawString(d.Text)
	}
}

// BeginFrame implements the presenter.Overlay interface.
func (ovl *Overlay) BeginFrame(width, height int) {
	ovl.width = width
	ovl.height = height
}

// FrameSize returns the size given to the most recent call to BeginFrame().
func (ovl *Overlay) FrameSize() (int, int) {
	return ovl.width, ovl.height
}

// RecompilePipeline implements the presenter.Overlay interface.
func (ovl *Overlay) RecompilePipeline() {
	ovl.Pipelines++
}

// SetKeyMap implements the presenter.Overlay interface.
func (ovl *Overlay) SetKeyMap(keymap [][2]int) {
	ovl.KeyMap = keymap
}

// SetKey implements the presenter.Overlay interface.
func (ovl *Overlay) SetKey(key uint32, down bool, chars string) {
	ovl.Keys[key] = down
	ovl.Chars += chars
}

// SetMousePos implements the presenter.Overlay interface.
func (ovl *Overlay) SetMousePos(x, y float32) {
	ovl.MouseX = x
	ovl.MouseY = y
}

// SetMousePress implements the presenter.Overlay interface.
func (ovl *Overlay) SetMousePress(buttons uint32) {
	ovl.Buttons = buttons
}
