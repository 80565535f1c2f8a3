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

package digest

import (
	"crypto/sha1"
	"fmt"
	"image"

	"github.com/jetsetilly/presentation/curated"
	"github.com/jetsetilly/presentation/frame"
	"github.com/jetsetilly/presentation/geometry"
	"github.com/jetsetilly/presentation/presenter"
)

// Sentinel errors.
const (
	UnsupportedTexture = "digest: unsupported texture type (%T)"
)

// Frames implements the presenter.FrameDumper interface by computing a
// chained sha1 digest of the source area of each frame. Frames are also
// passed to the next FrameDumper, if there is one.
type Frames struct {
	next presenter.FrameDumper

	digest [sha1.Size]byte

	// the previous digest followed by the pixels of the frame. reused
	// between frames
	pixels []byte

	frames int
}

// NewFrames is the preferred method of initialisation for the Frames type.
// The next argument can be nil.
func NewFrames(next presenter.FrameDumper) *Frames {
	return &Frames{next: next}
}

// Hash returns the current digest value as a string.
func (dig *Frames) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

func (dig *Frames) String() string {
	return fmt.Sprintf("%s (%d frames)", dig.Hash(), dig.frames)
}

// Frames returns the number of frames included in the digest.
func (dig *Frames) Frames() int {
	return dig.frames
}

// ResetDigest resets the current digest value to zero.
func (dig *Frames) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// IsActive implements the presenter.FrameDumper interface. The digest is
// always active.
func (dig *Frames) IsActive() bool {
	return true
}

// DumpFrame implements the presenter.FrameDumper interface. The digest is of
// the pixels in the source area. The target rectangle does not affect the
// digest but a flipped source does.
func (dig *Frames) DumpFrame(tex frame.Texture, source geometry.Rectangle, target geometry.Rectangle, ticks uint64, frameCount int) {
	dig.add(tex, source)
	if dig.next != nil && dig.next.IsActive() {
		dig.next.DumpFrame(tex, source, target, ticks, frameCount)
	}
}

func (dig *Frames) add(tex frame.Texture, source geometry.Rectangle) {
	var img *image.RGBA
	switch t := tex.(type) {
	case *frame.ImageTexture:
		img = t.RGBA
	case *image.RGBA:
		img = t
	default:
		panic(curated.Errorf(UnsupportedTexture, tex))
	}

	sr := source.Image().Add(img.Bounds().Min).Intersect(img.Bounds())
	rowLen := sr.Dx() * 4

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the frame data
	l := len(dig.digest) + rowLen*sr.Dy()
	if cap(dig.pixels) < l {
		dig.pixels = make([]byte, l)
	}
	dig.pixels = dig.pixels[:l]
	copy(dig.pixels, dig.digest[:])

	i := len(dig.digest)
	for n := range sr.Dy() {
		y := sr.Min.Y + n
		if source.Height() < 0 {
			y = sr.Max.Y - 1 - n
		}
		o := img.PixOffset(sr.Min.X, y)
		i += copy(dig.pixels[i:i+rowLen], img.Pix[o:o+rowLen])
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}
