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

package frame

import "image"

// FlipVertical swaps the rows of the area of the image. Used to draw frames
// with a source rectangle that has a negative height.
func FlipVertical(img *image.RGBA, r image.Rectangle) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	w := r.Dx() * 4
	tmp := make([]byte, w)
	for top, bottom := r.Min.Y, r.Max.Y-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := img.PixOffset(r.Min.X, top)
		b := img.PixOffset(r.Min.X, bottom)
		copy(tmp, img.Pix[a:a+w])
		copy(img.Pix[a:a+w], img.Pix[b:b+w])
		copy(img.Pix[b:b+w], tmp)
	}
}
