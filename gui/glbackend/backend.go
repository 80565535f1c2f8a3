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

package glbackend

import (
	"image"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/presentation/curated"
	"github.com/jetsetilly/presentation/frame"
	"github.com/jetsetilly/presentation/geometry"
	"github.com/jetsetilly/presentation/gui/glbackend/shaders"
	"github.com/jetsetilly/presentation/logger"
	"github.com/jetsetilly/presentation/presenter"
	xdraw "golang.org/x/image/draw"
)

// Sentinel errors.
const (
	InitError          = "glbackend: %v"
	UnsupportedTexture = "glbackend: unsupported texture type (%T)"
)

// Surface is the window and GL context the backend draws to.
type Surface interface {
	// DrawableSize is the size of the window in pixels
	DrawableSize() (int, int)

	// Scale is the ratio of pixels to window coordinates
	Scale() float32

	// MakeCurrent makes the GL context of the surface current
	MakeCurrent() error

	// Swap displays the back buffer of the surface
	Swap()
}

// Options for a new Backend.
type Options struct {
	// the surface has separate left and right back buffers
	QuadBuffer bool
}

// Backend implements presenter.Backend and presenter.PostProcessor with
// OpenGL 3.2.
type Backend struct {
	surface Surface
	opts    Options
	perm    logger.Permission

	// program used for post-processing and the name of the fragment shader
	program *Program
	shader  string

	// a single quad covering the viewport
	vao uint32
	vbo uint32

	// texture of the most recently uploaded frame
	texture    uint32
	textureW   int
	textureH   int
	uploaded   frame.Texture
	conversion *image.RGBA

	// size of backbuffer as of the last call to ResizeSurface()
	width, height int

	state *State
}

// NewBackend initialises OpenGL and creates a Backend for the surface. The GL
// context of the surface must be current.
func NewBackend(surface Surface, opts Options, perm logger.Permission) (*Backend, error) {
	if perm == nil {
		perm = logger.Allow
	}

	err := gl.Init()
	if err != nil {
		return nil, curated.Errorf(InitError, err)
	}

	logger.Logf(perm, "glbackend", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(perm, "glbackend", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(perm, "glbackend", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	b := &Backend{
		surface: surface,
		opts:    opts,
		perm:    perm,
	}

	b.program, err = NewProgram(string(shaders.PostVertexShader), string(shaders.DefaultShader))
	if err != nil {
		return nil, curated.Errorf(InitError, err)
	}

	quad := []float32{
		-1, -1,
		1, -1,
		-1, 1,
		1, 1,
	}
	gl.GenVertexArrays(1, &b.vao)
	gl.GenBuffers(1, &b.vbo)
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	b.bindQuad()
	gl.BindVertexArray(0)

	gl.GenTextures(1, &b.texture)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	b.width, b.height = surface.DrawableSize()

	return b, nil
}

// bindQuad sets the vertex attribute of the post-processing program to the
// quad buffer. the VAO and VBO must be bound.
func (b *Backend) bindQuad() {
	gl.EnableVertexAttribArray(uint32(b.program.Position))
	gl.VertexAttribPointerWithOffset(uint32(b.program.Position), 2, gl.FLOAT, false, 0, 0)
}

// Destroy releases all GL resources.
func (b *Backend) Destroy() {
	b.program.Destroy()
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
	if b.texture != 0 {
		gl.DeleteTextures(1, &b.texture)
		b.texture = 0
	}
}

// IsHeadless implements the presenter.Backend interface. A GL backend always
// has a surface.
func (b *Backend) IsHeadless() bool {
	return false
}

// BeginUtilityDrawing implements the presenter.Backend interface.
func (b *Backend) BeginUtilityDrawing() {
	if err := b.surface.MakeCurrent(); err != nil {
		logger.Log(b.perm, "glbackend", err)
	}
	b.state = StoreState()
}

// EndUtilityDrawing implements the presenter.Backend interface.
func (b *Backend) EndUtilityDrawing() {
	if b.state != nil {
		b.state.Restore()
		b.state = nil
	}
}

// BindBackbuffer implements the presenter.Backend interface.
func (b *Backend) BindBackbuffer(c presenter.ClearColor) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.DrawBuffer(gl.BACK)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, int32(b.width), int32(b.height))
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	// frame textures are uploaded once per backbuffer
	b.uploaded = nil
}

// PresentBackbuffer implements the presenter.Backend interface.
func (b *Backend) PresentBackbuffer() {
	b.surface.Swap()
}

// ShowImage implements the presenter.Backend interface.
func (b *Backend) ShowImage(tex frame.Texture, source geometry.Rectangle) {
	b.draw(geometry.NewRectangle(b.width, b.height), source, tex)
}

// SelectLeftBuffer implements the presenter.Backend interface.
func (b *Backend) SelectLeftBuffer() {
	gl.DrawBuffer(gl.BACK_LEFT)
}

// SelectRightBuffer implements the presenter.Backend interface.
func (b *Backend) SelectRightBuffer() {
	gl.DrawBuffer(gl.BACK_RIGHT)
}

// SelectMainBuffer implements the presenter.Backend interface.
func (b *Backend) SelectMainBuffer() {
	gl.DrawBuffer(gl.BACK)
}

// WaitForGPUIdle implements the presenter.Backend interface.
func (b *Backend) WaitForGPUIdle() {
	gl.Finish()
}

// Flush implements the presenter.Backend interface.
func (b *Backend) Flush() {
	gl.Flush()
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
	return presenter.SurfaceInfo{
		Width:  b.width,
		Height: b.height,
		Scale:  b.surface.Scale(),
		Format: presenter.FormatRGBA8,
	}
}

// ChangeSurface implements the presenter.Backend interface. The handle must
// be a Surface. The GL context of the new surface must share objects with the
// context of the previous surface.
func (b *Backend) ChangeSurface(handle presenter.SurfaceHandle) {
	s, ok := handle.(Surface)
	if !ok {
		logger.Logf(b.perm, "glbackend", "cannot change surface to %T", handle)
		return
	}
	b.surface = s
	if err := b.surface.MakeCurrent(); err != nil {
		logger.Log(b.perm, "glbackend", err)
	}
	b.width, b.height = b.surface.DrawableSize()
}

// ResizeSurface implements the presenter.Backend interface.
func (b *Backend) ResizeSurface() {
	b.width, b.height = b.surface.DrawableSize()
}

// BlitFromTexture implements the presenter.PostProcessor interface. The eye
// is not used because the presenter has already selected the buffer for that
// eye.
func (b *Backend) BlitFromTexture(target geometry.Rectangle, source geometry.Rectangle, tex frame.Texture, _ presenter.Eye) {
	b.draw(target, source, tex)
}

// Shader implements the presenter.PostProcessor interface.
func (b *Backend) Shader() string {
	return b.shader
}

// RecompileShader implements the presenter.PostProcessor interface. An
// unknown shader or one that fails to compile is replaced by the default
// shader.
func (b *Backend) RecompileShader(shader string) {
	frag, ok := shaders.Post[shader]
	if !ok {
		logger.Logf(b.perm, "glbackend", "unknown shader %q. using default", shader)
		shader = ""
		frag = shaders.Post[shader]
	}

	prg, err := NewProgram(string(shaders.PostVertexShader), string(frag))
	if err != nil {
		logger.Logf(b.perm, "glbackend", "shader %q: %v", shader, err)
		if shader == "" {
			return
		}
		shader = ""
		prg, err = NewProgram(string(shaders.PostVertexShader), string(shaders.DefaultShader))
		if err != nil {
			logger.Log(b.perm, "glbackend", err)
			return
		}
	}

	b.program.Destroy()
	b.program = prg
	b.shader = shader

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	b.bindQuad()
	gl.BindVertexArray(0)
}

// RecompilePipeline implements the presenter.PostProcessor interface. The
// program does not depend on the surface format so nothing needs to be done
// beyond noting the request.
func (b *Backend) RecompilePipeline() {
	logger.Log(b.perm, "glbackend", "pipeline recompiled")
}

// draw the source area of the texture to the target area of the backbuffer.
// a flipped source rectangle is handled by the vertex shader.
func (b *Backend) draw(target geometry.Rectangle, source geometry.Rectangle, tex frame.Texture) {
	target = target.Normalised()
	if target.IsEmpty() || source.IsEmpty() {
		return
	}

	b.upload(tex)

	gl.UseProgram(b.program.Handle)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.Uniform1i(b.program.Texture, 0)
	gl.BindSampler(0, 0)

	w := float32(b.textureW)
	h := float32(b.textureH)
	gl.Uniform4f(b.program.SourceRect,
		float32(source.Left)/w, float32(source.Top)/h,
		float32(source.Right)/w, float32(source.Bottom)/h)
	if b.program.TextureSize >= 0 {
		gl.Uniform2f(b.program.TextureSize, w, h)
	}

	// GL viewport origin is the bottom-left of the backbuffer
	gl.Viewport(int32(target.Left), int32(b.height-target.Bottom), int32(target.Width()), int32(target.Height()))

	gl.Disable(gl.BLEND)
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
}

// upload the texture to the GL texture unless it is the texture already
// uploaded for the current backbuffer.
func (b *Backend) upload(tex frame.Texture) {
	if tex == b.uploaded {
		return
	}
	b.uploaded = tex

	var img *image.RGBA
	switch t := tex.(type) {
	case *frame.ImageTexture:
		img = t.RGBA
	case *image.RGBA:
		img = t
	case image.Image:
		if b.conversion == nil || b.conversion.Bounds() != t.Bounds() {
			b.conversion = image.NewRGBA(t.Bounds())
		}
		xdraw.Copy(b.conversion, t.Bounds().Min, t, t.Bounds(), xdraw.Src, nil)
		img = b.conversion
	default:
		panic(curated.Errorf(UnsupportedTexture, tex))
	}

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	gl.BindTexture(gl.TEXTURE_2D, b.texture)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	if w != b.textureW || h != b.textureH {
		b.textureW = w
		b.textureH = h
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
}
