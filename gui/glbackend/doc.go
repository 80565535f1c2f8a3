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

// Package glbackend is the OpenGL 3.2 implementation of the presenter's
// Backend and PostProcessor interfaces.
//
// The backend draws to the default framebuffer of the current GL context.
// The context and the window it belongs to are provided by a Surface, which
// is normally the SDL host window. All functions must be called from the
// goroutine that created the GL context.
//
// Post-processing shaders are selected by name from the shaders package. The
// Program type is also used by the overlay to render Dear ImGui draw data.
package glbackend
