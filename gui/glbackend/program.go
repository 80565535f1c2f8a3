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
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/presentation/curated"
)

// Sentinel errors.
const (
	ShaderCompile = "glsl: compile: %s"
	ShaderLink    = "glsl: link: %s"
)

// Program is a linked shader program and the locations of the attributes and
// uniforms that are common to the shaders in this module. A location is -1 if
// the program does not use it.
type Program struct {
	Handle uint32

	// vertex
	ProjMtx    int32
	Position   int32
	UV         int32
	Color      int32
	SourceRect int32

	// fragment
	Texture     int32
	TextureSize int32
}

// Destroy the shader program.
func (sh *Program) Destroy() {
	if sh.Handle != 0 {
		gl.DeleteProgram(sh.Handle)
		sh.Handle = 0
	}
}

// NewProgram compiles and links the vertex and fragment programs.
func NewProgram(vertProgram string, fragProgram string) (*Program, error) {
	sh := &Program{}
	sh.Handle = gl.CreateProgram()

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	// now that the shader program has linked we no longer need the
	// individual shaders
	defer gl.DeleteShader(fragHandle)
	defer gl.DeleteShader(vertHandle)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()
		gl.ShaderSource(handle, 1, csource, nil)
	}

	glShaderSource(vertHandle, vertProgram)
	glShaderSource(fragHandle, fragProgram)

	gl.CompileShader(vertHandle)
	if log := compileError(vertHandle); log != "" {
		sh.Destroy()
		return nil, curated.Errorf(ShaderCompile, log)
	}

	gl.CompileShader(fragHandle)
	if log := compileError(fragHandle); log != "" {
		sh.Destroy()
		return nil, curated.Errorf(ShaderCompile, log)
	}

	gl.AttachShader(sh.Handle, vertHandle)
	gl.AttachShader(sh.Handle, fragHandle)
	gl.LinkProgram(sh.Handle)

	var linked int32
	gl.GetProgramiv(sh.Handle, gl.LINK_STATUS, &linked)
	if linked == 0 {
		var logLength int32
		gl.GetProgramiv(sh.Handle, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(sh.Handle, logLength, nil, gl.Str(log))
		sh.Destroy()
		return nil, curated.Errorf(ShaderLink, strings.TrimRight(log, "\x00"))
	}

	// get references to shader attributes and uniforms variables
	sh.ProjMtx = gl.GetUniformLocation(sh.Handle, gl.Str("ProjMtx"+"\x00"))
	sh.Position = gl.GetAttribLocation(sh.Handle, gl.Str("Position"+"\x00"))
	sh.UV = gl.GetAttribLocation(sh.Handle, gl.Str("UV"+"\x00"))
	sh.Color = gl.GetAttribLocation(sh.Handle, gl.Str("Color"+"\x00"))
	sh.SourceRect = gl.GetUniformLocation(sh.Handle, gl.Str("SourceRect"+"\x00"))
	sh.Texture = gl.GetUniformLocation(sh.Handle, gl.Str("Texture"+"\x00"))
	sh.TextureSize = gl.GetUniformLocation(sh.Handle, gl.Str("TextureSize"+"\x00"))

	return sh, nil
}

// compileError returns the most recent error generated by the shader
// compiler.
func compileError(shader uint32) string {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			// the length includes the NULL character
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
			return strings.TrimRight(log, "\x00")
		}
		return "unknown error"
	}
	return ""
}
