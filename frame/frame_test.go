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

package frame_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/jetsetilly/presentation/frame"
	"github.com/jetsetilly/presentation/test"
)

func TestLease(t *testing.T) {
	e := &frame.Entry{ID: 1, Texture: frame.NewImageTexture(4, 4)}
	test.ExpectFailure(t, e.Locked())

	l := frame.Acquire(e)
	test.ExpectSuccess(t, l.Held())
	test.ExpectSuccess(t, e.Locked())
	test.ExpectEquality(t, l.Entry(), e)

	l.Release()
	test.ExpectFailure(t, l.Held())
	test.ExpectFailure(t, e.Locked())

	// double release
	test.ExpectPanic(t, func() { l.Release() })

	// use after release
	test.ExpectPanic(t, func() { l.Entry() })
}

func TestLeaseMove(t *testing.T) {
	e := &frame.Entry{ID: 1, Texture: frame.NewImageTexture(4, 4)}

	a := frame.Acquire(e)
	b := a.Move()
	test.ExpectFailure(t, a.Held())
	test.ExpectSuccess(t, b.Held())
	test.ExpectEquality(t, e.LockCount(), 1)

	// releasing the moved-from lease does not release the lock
	a.Release()
	test.ExpectEquality(t, e.LockCount(), 1)
	test.ExpectPanic(t, func() { a.Entry() })

	b.Release()
	test.ExpectEquality(t, e.LockCount(), 0)
}

func TestLeaseEmpty(t *testing.T) {
	var l frame.Lease
	test.ExpectFailure(t, l.Held())
	test.ExpectPanic(t, func() { l.Entry() })
	l.Release()

	test.ExpectPanic(t, func() { frame.Acquire(nil) })
}

func TestMultipleLeases(t *testing.T) {
	e := &frame.Entry{ID: 1, Texture: frame.NewImageTexture(4, 4)}
	a := frame.Acquire(e)
	b := frame.Acquire(e)
	test.ExpectEquality(t, e.LockCount(), 2)
	a.Release()
	test.ExpectSuccess(t, e.Locked())
	b.Release()
	test.ExpectFailure(t, e.Locked())
}

func TestPool(t *testing.T) {
	p := frame.NewPool()

	a := p.Get(320, 240)
	test.ExpectEquality(t, a.ID, 1)
	test.ExpectEquality(t, a.Texture.Bounds().Dx(), 320)

	// an unlocked entry is recycled with a new ID
	b := p.Get(320, 240)
	test.ExpectEquality(t, b, a)
	test.ExpectEquality(t, b.ID, 2)
	test.ExpectEquality(t, p.Len(), 1)

	// a locked entry is never recycled
	l := frame.Acquire(b)
	c := p.Get(320, 240)
	test.ExpectInequality(t, c, b)
	test.ExpectEquality(t, c.ID, 3)
	test.ExpectEquality(t, p.Len(), 2)

	// nor is an entry of a different size
	d := p.Get(160, 120)
	test.ExpectInequality(t, d, c)
	test.ExpectEquality(t, p.Len(), 3)

	l.Release()
	e := p.Get(320, 240)
	test.ExpectEquality(t, e, b)
}

func TestPoolAcquire(t *testing.T) {
	p := frame.NewPool()

	a := p.Acquire(64, 64)
	test.ExpectSuccess(t, a.Entry().Locked())

	// the acquired entry is not returned again until it is released
	b := p.Acquire(64, 64)
	test.ExpectInequality(t, a.Entry(), b.Entry())

	e := a.Entry()
	a.Release()
	c := p.Acquire(64, 64)
	test.ExpectEquality(t, c.Entry(), e)
	test.ExpectEquality(t, p.Len(), 2)

	b.Release()
	c.Release()
}

func TestFlipVertical(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 3))
	for y := range 3 {
		img.SetRGBA(0, y, color.RGBA{R: uint8(y), A: 0xff})
		img.SetRGBA(1, y, color.RGBA{G: uint8(y), A: 0xff})
	}

	// only the first column
	frame.FlipVertical(img, image.Rect(0, 0, 1, 3))
	test.ExpectEquality(t, img.RGBAAt(0, 0).R, uint8(2))
	test.ExpectEquality(t, img.RGBAAt(0, 1).R, uint8(1))
	test.ExpectEquality(t, img.RGBAAt(0, 2).R, uint8(0))
	test.ExpectEquality(t, img.RGBAAt(1, 0).G, uint8(0))

	// the area is clipped to the image
	frame.FlipVertical(img, image.Rect(1, 0, 5, 5))
	test.ExpectEquality(t, img.RGBAAt(1, 0).G, uint8(2))
	test.ExpectEquality(t, img.RGBAAt(1, 2).G, uint8(0))
}
