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

package geometry

import (
	"fmt"
	"image"
)

// Rectangle is an area of a surface in pixels. Source rectangles may be
// flipped, in which case Width() or Height() is negative.
type Rectangle struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// NewRectangle returns a rectangle with the top-left corner at the origin.
func NewRectangle(width, height int) Rectangle {
	return Rectangle{Right: width, Bottom: height}
}

func (r Rectangle) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Width of rectangle. Can be negative.
func (r Rectangle) Width() int {
	return r.Right - r.Left
}

// Height of rectangle. Can be negative.
func (r Rectangle) Height() int {
	return r.Bottom - r.Top
}

// IsEmpty returns true if the rectangle covers no pixels.
func (r Rectangle) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Normalised returns a copy of the rectangle with the edges swapped where
// necessary so that Width() and Height() are not negative.
func (r Rectangle) Normalised() Rectangle {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// Image returns the normalised rectangle as an image.Rectangle.
func (r Rectangle) Image() image.Rectangle {
	n := r.Normalised()
	return image.Rect(n.Left, n.Top, n.Right, n.Bottom)
}

// FromImage converts an image.Rectangle.
func FromImage(r image.Rectangle) Rectangle {
	return Rectangle{Left: r.Min.X, Top: r.Min.Y, Right: r.Max.X, Bottom: r.Max.Y}
}
