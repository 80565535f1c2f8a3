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
	"fmt"

	"github.com/jetsetilly/presentation/frame"
	"github.com/jetsetilly/presentation/geometry"
)

// PixelFormat of a surface.
type PixelFormat int

// List of valid PixelFormat values.
const (
	FormatUndefined PixelFormat = iota
	FormatRGBA8
	FormatBGRA8
)

func (f PixelFormat) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	}
	return "undefined"
}

// SurfaceInfo describes the surface being drawn to.
type SurfaceInfo struct {
	Width  int
	Height int
	Scale  float32
	Format PixelFormat
}

func (s SurfaceInfo) String() string {
	return fmt.Sprintf("%dx%d (scale %.2f, %s)", s.Width, s.Height, s.Scale, s.Format)
}

// SurfaceHandle is an opaque reference to a native window surface. The
// presenter passes it from the host to the backend without looking at it.
type SurfaceHandle any

// ClearColor is the colour used when binding the backbuffer.
type ClearColor struct {
	R, G, B, A float32
}

// Black is the clear colour used for the backbuffer.
var Black = ClearColor{A: 1.0}

// Eye indicates which image of a stereo pair is being drawn. Non-stereo
// drawing uses LeftEye.
type Eye int

// List of valid Eye values.
const (
	LeftEye Eye = iota
	RightEye
)

// Backend is the graphics API used to present frames.
type Backend interface {
	// IsHeadless returns true if there is no display surface
	IsHeadless() bool

	BeginUtilityDrawing()
	EndUtilityDrawing()

	// BindBackbuffer makes the backbuffer the render target and clears it
	BindBackbuffer(ClearColor)

	// PresentBackbuffer displays the backbuffer. in headless mode this
	// flushes outstanding work
	PresentBackbuffer()

	// ShowImage draws the source rectangle of the texture to the entire
	// backbuffer. used when post-processing is not supported
	ShowImage(tex frame.Texture, source geometry.Rectangle)

	// buffer selection for explicit quad-buffered stereo
	SelectLeftBuffer()
	SelectRightBuffer()
	SelectMainBuffer()

	// WaitForGPUIdle blocks until all submitted work has completed
	WaitForGPUIdle()

	// Flush submits any batched drawing that has yet to be drawn
	Flush()

	SupportsPostProcessing() bool
	UsesExplicitQuadBuffering() bool

	// SurfaceInfo returns information about the current surface
	SurfaceInfo() SurfaceInfo

	// ChangeSurface replaces the display surface. ResizeSurface updates the
	// backend after the host window has changed size
	ChangeSurface(SurfaceHandle)
	ResizeSurface()
}

// PostProcessor draws frames to the backbuffer through a shader.
type PostProcessor interface {
	BlitFromTexture(target geometry.Rectangle, source geometry.Rectangle, tex frame.Texture, eye Eye)

	// the name of the currently compiled shader
	Shader() string

	RecompileShader(shader string)
	RecompilePipeline()
}

// Overlay draws user interface elements, including on-screen messages, over
// the presented frame.
type Overlay interface {
	// Finalize prepares the overlay for drawing. called once per frame
	Finalize()

	// DrawOverlay draws the finalised overlay to the backbuffer
	DrawOverlay()

	// BeginFrame starts a new overlay frame for a backbuffer of the specified
	// size
	BeginFrame(width, height int)

	RecompilePipeline()

	// input forwarding
	SetKeyMap(keymap [][2]int)
	SetKey(key uint32, down bool, chars string)
	SetMousePos(x, y float32)
	SetMousePress(buttons uint32)
}

// FrameDumper consumes presented frames, for example to write them to a
// video file.
type FrameDumper interface {
	IsActive() bool
	DumpFrame(tex frame.Texture, source geometry.Rectangle, target geometry.Rectangle, ticks uint64, frameCount int)
}

// Host is the window system.
type Host interface {
	// RequestRenderWindowSize asks the host to resize the window. the host may
	// ignore the request
	RequestRenderWindowSize(width, height int)
}

// Source is the producer of frames.
type Source interface {
	// Aspect ratio of the produced image
	Aspect() float32

	// IsWidescreen returns true if the content has been detected as being
	// widescreen
	IsWidescreen() bool

	// SetAspectHack sets the projection factors the source should use
	SetAspectHack(w, h float32)

	// SetCursorAspect sets the adjustment input handling should apply to the
	// cursor position
	SetCursorAspect(adjust float32)
}

// Collaborators are the implementations used by the presenter. The
// FrameDumper, Host and Source fields can be nil.
type Collaborators struct {
	Backend       Backend
	PostProcessor PostProcessor
	Overlay       Overlay
	FrameDumper   FrameDumper
	Host          Host
	Source        Source
}
