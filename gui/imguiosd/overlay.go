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

package imguiosd

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/presentation/curated"
	"github.com/jetsetilly/presentation/gui/glbackend"
	"github.com/jetsetilly/presentation/gui/glbackend/shaders"
	"github.com/jetsetilly/presentation/logger"
	"github.com/jetsetilly/presentation/osd"
)

// Sentinel errors.
const (
	InitError = "imguiosd: %v"
)

// window flags for message windows
const messageFlags = imgui.WindowFlagsAlwaysAutoResize |
	imgui.WindowFlagsNoScrollbar | imgui.WindowFlagsNoTitleBar |
	imgui.WindowFlagsNoDecoration | imgui.WindowFlagsNoSavedSettings |
	imgui.WindowFlagsNoFocusOnAppearing | imgui.WindowFlagsNoNav |
	imgui.WindowFlagsNoInputs

// Overlay implements presenter.Overlay with Dear ImGui.
type Overlay struct {
	perm  logger.Permission
	queue *osd.Queue

	context *imgui.Context
	io      imgui.IO

	program        *glbackend.Program
	fontTexture    uint32
	vboHandle      uint32
	elementsHandle uint32

	// size of the display in window coordinates and pixels
	displayW, displayH float32
	pixelsW, pixelsH   float32

	// a frame has been started with NewFrame() and not yet rendered
	inFrame bool

	lastFrame time.Time
}

// NewOverlay creates the ImGui context and the GL objects used to render it.
// The GL context must be current.
func NewOverlay(queue *osd.Queue, perm logger.Permission) (*Overlay, error) {
	if perm == nil {
		perm = logger.Allow
	}

	ovl := &Overlay{
		perm:    perm,
		queue:   queue,
		context: imgui.CreateContext(nil),
	}

	ovl.io = imgui.CurrentIO()

	// the overlay does not persist window settings
	ovl.io.SetIniFilename("")

	var err error
	ovl.program, err = glbackend.NewProgram(string(shaders.StraightVertexShader), string(shaders.GUIShader))
	if err != nil {
		ovl.context.Destroy()
		return nil, curated.Errorf(InitError, err)
	}

	gl.GenBuffers(1, &ovl.vboHandle)
	gl.GenBuffers(1, &ovl.elementsHandle)

	atlas := ovl.io.Fonts()
	image := atlas.TextureDataAlpha8()
	gl.GenTextures(1, &ovl.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, ovl.fontTexture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(image.Width), int32(image.Height), 0, gl.RED, gl.UNSIGNED_BYTE, image.Pixels)
	atlas.SetTextureID(imgui.TextureID(ovl.fontTexture))

	return ovl, nil
}

// Destroy releases the GL objects and the ImGui context.
func (ovl *Overlay) Destroy() {
	if ovl.inFrame {
		imgui.EndFrame()
		ovl.inFrame = false
	}
	if ovl.vboHandle != 0 {
		gl.DeleteBuffers(1, &ovl.vboHandle)
		ovl.vboHandle = 0
	}
	if ovl.elementsHandle != 0 {
		gl.DeleteBuffers(1, &ovl.elementsHandle)
		ovl.elementsHandle = 0
	}
	if ovl.fontTexture != 0 {
		gl.DeleteTextures(1, &ovl.fontTexture)
		ovl.io.Fonts().SetTextureID(0)
		ovl.fontTexture = 0
	}
	ovl.program.Destroy()
	ovl.context.Destroy()
}

// SetDisplaySize sets the size of the display in window coordinates. The
// size given to BeginFrame() is in pixels and may be larger on high DPI
// displays.
func (ovl *Overlay) SetDisplaySize(width, height int) {
	ovl.displayW = float32(width)
	ovl.displayH = float32(height)
}

// BeginFrame implements the presenter.Overlay interface.
func (ovl *Overlay) BeginFrame(width, height int) {
	if ovl.inFrame {
		imgui.EndFrame()
	}

	ovl.pixelsW = float32(width)
	ovl.pixelsH = float32(height)
	if ovl.displayW <= 0 || ovl.displayH <= 0 {
		ovl.displayW = ovl.pixelsW
		ovl.displayH = ovl.pixelsH
	}
	ovl.io.SetDisplaySize(imgui.Vec2{X: ovl.displayW, Y: ovl.displayH})

	now := time.Now()
	if !ovl.lastFrame.IsZero() {
		ovl.io.SetDeltaTime(float32(now.Sub(ovl.lastFrame).Seconds()))
	}
	ovl.lastFrame = now

	imgui.NewFrame()
	ovl.inFrame = true
}

// Finalize implements the presenter.Overlay interface. Each live message in
// the OSD queue is added to the ImGui frame as a window and the frame is
// rendered to draw data.
func (ovl *Overlay) Finalize() {
	if !ovl.inFrame {
		ovl.BeginFrame(int(ovl.pixelsW), int(ovl.pixelsH))
	}

	ovl.queue.DrainAndRenderLive(func(d osd.Draw) float32 {
		return ovl.drawMessage(d)
	})

	imgui.Render()
	ovl.inFrame = false
}

func (ovl *Overlay) drawMessage(d osd.Draw) float32 {
	// message positions are in pixels
	scale := float32(1.0)
	if ovl.displayW > 0 {
		scale = ovl.pixelsW / ovl.displayW
	}

	imgui.SetNextWindowPos(imgui.Vec2{X: d.X / scale, Y: d.Y / scale})
	imgui.SetNextWindowBgAlpha(0.6 * d.Alpha)

	r, g, b, a := d.Color.RGBA()
	imgui.PushStyleColor(imgui.StyleColorText, imgui.Vec4{X: r, Y: g, Z: b, W: a * d.Alpha})
	imgui.PushStyleColor(imgui.StyleColorBorder, imgui.Vec4{})
	defer imgui.PopStyleColorV(2)

	open := true
	imgui.BeginV(fmt.Sprintf("##osd%d", d.Index), &open, messageFlags)
	imgui.Text(d.Text)
	height := imgui.WindowHeight()
	imgui.End()

	return height * scale
}

// RecompilePipeline implements the presenter.Overlay interface.
func (ovl *Overlay) RecompilePipeline() {
	prg, err := glbackend.NewProgram(string(shaders.StraightVertexShader), string(shaders.GUIShader))
	if err != nil {
		logger.Log(ovl.perm, "imguiosd", err)
		return
	}
	ovl.program.Destroy()
	ovl.program = prg
}
