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

package shaders

import _ "embed"

//go:embed "straight.vert"
var StraightVertexShader []byte

//go:embed "gui.frag"
var GUIShader []byte

//go:embed "post.vert"
var PostVertexShader []byte

//go:embed "default.frag"
var DefaultShader []byte

//go:embed "scanlines.frag"
var ScanlinesShader []byte

//go:embed "grayscale.frag"
var GrayscaleShader []byte

// Post lists the post-processing fragment shaders by name. The empty string
// is the default shader.
var Post = map[string][]byte{
	"":          DefaultShader,
	"scanlines": ScanlinesShader,
	"grayscale": GrayscaleShader,
}
