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
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/presentation/gui/glbackend"
)

// DrawOverlay implements the presenter.Overlay interface. It translates the
// draw data of the most recent call to Finalize() to OpenGL commands.
func (ovl *Overlay) DrawOverlay() {
	drawData := imgui.RenderedDrawData()
	if !drawData.Valid() {
		return
	}

	winw, winh := ovl.displayW, ovl.displayH
	fbw, fbh := ovl.pixelsW, ovl.pixelsH

	// avoid rendering when minimised
	if fbw <= 0 || fbh <= 0 || winw <= 0 || winh <= 0 {
		return
	}

	st := glbackend.StoreState()
	defer st.Restore()

	// scale coordinates for high DPI displays
	drawData.ScaleClipRects(imgui.Vec2{
		X: fbw / winw,
		Y: fbh / winh,
	})

	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Viewport(0, 0, int32(fbw), int32(fbh))

	projMtx := [4][4]float32{
		{2.0 / winw, 0.0, 0.0, 0.0},
		{0.0, 2.0 / -winh, 0.0, 0.0},
		{0.0, 0.0, -1.0, 0.0},
		{-1.0, 1.0, 0.0, 1.0},
	}

	gl.UseProgram(ovl.program.Handle)
	gl.Uniform1i(ovl.program.Texture, 0)
	gl.UniformMatrix4fv(ovl.program.ProjMtx, 1, false, &projMtx[0][0])
	gl.BindSampler(0, 0)

	// the VAO is recreated every frame. VAOs are not shared between GL
	// contexts and the surface can change
	var vaoHandle uint32
	gl.GenVertexArrays(1, &vaoHandle)
	defer gl.DeleteVertexArrays(1, &vaoHandle)
	gl.BindVertexArray(vaoHandle)
	gl.BindBuffer(gl.ARRAY_BUFFER, ovl.vboHandle)

	gl.EnableVertexAttribArray(uint32(ovl.program.UV))
	gl.EnableVertexAttribArray(uint32(ovl.program.Position))
	gl.EnableVertexAttribArray(uint32(ovl.program.Color))

	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	gl.VertexAttribPointerWithOffset(uint32(ovl.program.UV), 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetUv))
	gl.VertexAttribPointerWithOffset(uint32(ovl.program.Position), 2, gl.FLOAT, false, int32(vertexSize), uintptr(vertexOffsetPos))
	gl.VertexAttribPointerWithOffset(uint32(ovl.program.Color), 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), uintptr(vertexOffsetCol))

	indexSize := imgui.IndexBufferLayout()
	drawType := gl.UNSIGNED_SHORT
	if indexSize == 4 {
		drawType = gl.UNSIGNED_INT
	}

	for _, list := range drawData.CommandLists() {
		var indexBufferOffset uintptr

		vertexBuffer, vertexBufferSize := list.VertexBuffer()
		gl.BindBuffer(gl.ARRAY_BUFFER, ovl.vboHandle)
		gl.BufferData(gl.ARRAY_BUFFER, vertexBufferSize, vertexBuffer, gl.STREAM_DRAW)

		indexBuffer, indexBufferSize := list.IndexBuffer()
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ovl.elementsHandle)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, indexBufferSize, indexBuffer, gl.STREAM_DRAW)

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				cmd.CallUserCallback(list)
			} else {
				gl.ActiveTexture(gl.TEXTURE0)
				gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
				clipRect := cmd.ClipRect()
				gl.Scissor(int32(clipRect.X), int32(fbh)-int32(clipRect.W), int32(clipRect.Z-clipRect.X), int32(clipRect.W-clipRect.Y))
				gl.DrawElementsWithOffset(gl.TRIANGLES, int32(cmd.ElementCount()), uint32(drawType), indexBufferOffset)
			}
			indexBufferOffset += uintptr(cmd.ElementCount() * indexSize)
		}
	}
}
