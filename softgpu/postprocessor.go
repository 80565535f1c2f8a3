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

	"github.com/jetsetilly/presentation/curated"
	"github.com/jetsetilly/presentation/frame"
	"github.com/jetsetilly/presentation/geometry"
	"github.com/jetsetilly/presentation/logger"
	"github.com/jetsetilly/presentation/presenter"
	xdraw "golang.org/x/image/draw"
)

// the scaling kernels available as post-processing shaders. the empty string
// is the default shader
var shaders = map[string]xdraw.Interpolator{
	"":           xdraw.ApproxBiLinear,
	"nearest":    xdraw.NearestNeighbor,
	"bilinear":   xdraw.BiLinear,
	"catmullrom": xdraw.CatmullRom,
}

// PostProcessor implements presenter.PostProcessor by scaling the texture into
// the selected buffer of a Backend.
type PostProcessor struct {
	backend *Backend
	perm    logger.Permission

	shader string
	kernel xdraw.Interpolator

	// number of times the pipeline has been recompiled
	Pipelines int
}

// NewPostProcessor is the preferred method of initialisation for the
// PostProcessor type.
func NewPostProcessor(backend *Backend, perm logger.Permission) *PostProcessor {
	if perm == nil {
		perm = logger.Allow
	}
	return &PostProcessor{
		backend: backend,
		perm:    perm,
		kernel:  shaders[""],
	}
}

// BlitFromTexture implements the presenter.PostProcessor interface. The eye
// is not used because the backend has already selected the buffer for that
// eye.
func (pp *PostProcessor) BlitFromTexture(target geometry.Rectangle, source geometry.Rectangle, tex frame.Texture, _ presenter.Eye) {
	pp.backend.mustBeDrawing("BlitFromTexture")
	blit(pp.backend.selected, target.Normalised().Image(), tex, source, pp.kernel)
}

// Shader implements the presenter.PostProcessor interface.
func (pp *PostProcessor) Shader() string {
	return pp.shader
}

// RecompileShader implements the presenter.PostProcessor interface. An
// unknown shader name selects the default shader.
func (pp *PostProcessor) RecompileShader(shader string) {
	k, ok := shaders[shader]
	if !ok {
		logger.Logf(pp.perm, "softgpu", "unknown shader %q. using default", shader)
		k = shaders[""]
	}
	pp.shader = shader
	pp.kernel = k
}

// RecompilePipeline implements the presenter.PostProcessor interface.
func (pp *PostProcessor) RecompilePipeline() {
	pp.Pipelines++
}

// blit scales the source area of the texture to the destination rectangle. A
// source rectangle with a negative height is drawn upside down.
func blit(dst *image.RGBA, dr image.Rectangle, tex frame.Texture, source geometry.Rectangle, kernel xdraw.Interpolator) {
	src, ok := tex.(image.Image)
	if !ok {
		panic(curated.Errorf(UnsupportedTexture, tex))
	}

	sr := source.Normalised().Image().Add(src.Bounds().Min)
	if sr.Empty() || dr.Empty() {
		return
	}

	kernel.Scale(dst, dr, src, sr, xdraw.Src, nil)

	if source.Height() < 0 {
		frame.FlipVertical(dst, dr)
	}
}
