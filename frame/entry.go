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

import (
	"image"
	"sync/atomic"
)

// Texture is the image data of a frame as understood by a GPU backend.
type Texture interface {
	Bounds() image.Rectangle
}

// ImageTexture is a Texture backed by an RGBA image in main memory.
type ImageTexture struct {
	*image.RGBA
}

// NewImageTexture allocates a texture of the specified size.
func NewImageTexture(width, height int) *ImageTexture {
	return &ImageTexture{
		RGBA: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Entry is a single frame produced by a source.
type Entry struct {
	// identifies the frame. two submissions with the same ID are the same
	// image
	ID uint64

	Texture Texture

	// number of outstanding content locks
	locks atomic.Int32
}

// Locked returns true if the entry has at least one content lock.
func (e *Entry) Locked() bool {
	return e.locks.Load() > 0
}

// LockCount returns the number of outstanding content locks.
func (e *Entry) LockCount() int {
	return int(e.locks.Load())
}
