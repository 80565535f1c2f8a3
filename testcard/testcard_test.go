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

package testcard_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/presentation/frame"
	"github.com/jetsetilly/presentation/geometry"
	"github.com/jetsetilly/presentation/notifications"
	"github.com/jetsetilly/presentation/osd"
	"github.com/jetsetilly/presentation/test"
	"github.com/jetsetilly/presentation/testcard"
)

type submitter struct {
	ids    []uint64
	locked []bool
	counts []int
}

func (s *submitter) SubmitFrame(entry *frame.Entry, rect geometry.Rectangle, ticks uint64, frameCount int) bool {
	dup := len(s.ids) > 0 && s.ids[len(s.ids)-1] == entry.ID
	s.ids = append(s.ids, entry.ID)
	s.locked = append(s.locked, entry.Locked())
	s.counts = append(s.counts, frameCount)
	return dup
}

type messages struct {
	crit      sync.Mutex
	untyped   []string
	playtimes []string
}

func (m *messages) PostCategorized(category notifications.Notice, text string, _ time.Duration, _ osd.Color) {
	m.crit.Lock()
	defer m.crit.Unlock()
	if category == notifications.NotifyAchievementPlayTime {
		m.playtimes = append(m.playtimes, text)
	}
}

func (m *messages) PostUntyped(text string, _ time.Duration, _ osd.Color) {
	m.crit.Lock()
	defer m.crit.Unlock()
	m.untyped = append(m.untyped, text)
}

func TestRun(t *testing.T) {
	c := testcard.NewCard(testcard.Options{
		Width:     320,
		Height:    240,
		Hz:        4,
		Unlimited: true,
		Repeat:    1,
		Frames:    9,
	})

	var m messages
	out := make(chan testcard.Frame)
	done := make(chan error, 1)
	go func() {
		done <- c.Run(context.Background(), out, &m)
	}()

	var s submitter
	var dups int
	for f := range out {
		test.ExpectEquality(t, f.Rect, geometry.NewRectangle(320, 240))
		test.ExpectEquality(t, f.Ticks, c.Ticks(f.Count))
		if f.Submit(&s) {
			dups++
		}
	}
	test.ExpectSuccess(t, <-done)

	test.DemandEquality(t, len(s.ids), 9)
	test.ExpectEquality(t, dups, 4)
	for i := range s.ids {
		test.ExpectSuccess(t, s.locked[i], i)
		test.ExpectEquality(t, s.counts[i], i, i)
	}

	// every image is sent twice
	test.ExpectEquality(t, s.ids[0], s.ids[1])
	test.ExpectInequality(t, s.ids[1], s.ids[2])

	test.ExpectEquality(t, len(m.untyped), 1)
	test.ExpectEquality(t, len(m.playtimes), 2)
	test.ExpectEquality(t, m.playtimes[0], "Play time 00:00:01")
}

func TestCancel(t *testing.T) {
	c := testcard.NewCard(testcard.Options{Hz: 1000})

	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan testcard.Frame)
	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx, out, nil)
	}()

	f := <-out
	f.Lease.Release()
	cancel()

	// drain anything sent before the cancellation was noticed
	for f := range out {
		f.Lease.Release()
	}
	test.ExpectEquality(t, <-done, context.Canceled)
}

func TestSource(t *testing.T) {
	c := testcard.NewCard(testcard.Options{Widescreen: true})
	test.ExpectSuccess(t, c.IsWidescreen())
	test.ExpectApproximate(t, c.Aspect(), 4.0/3.0, 0.0001)

	w, h := c.AspectHack()
	test.ExpectEquality(t, w, float32(1))
	test.ExpectEquality(t, h, float32(1))

	c.SetAspectHack(0.75, 1)
	w, _ = c.AspectHack()
	test.ExpectEquality(t, w, float32(0.75))

	c.SetCursorAspect(0.5)
	test.ExpectEquality(t, c.CursorAspect(), float32(0.5))

	test.ExpectEquality(t, c.Ticks(60), uint64(testcard.TicksPerSecond))
}

func TestDraw(t *testing.T) {
	c := testcard.NewCard(testcard.Options{Width: 70, Height: 60})

	a := c.Draw(0)
	b := c.Draw(1)
	test.ExpectInequality(t, a.Entry(), b.Entry())

	img := a.Entry().Texture.(*frame.ImageTexture)
	test.ExpectEquality(t, img.Bounds().Dx(), 70)

	// first colour bar
	test.ExpectEquality(t, img.RGBAAt(5, 5).R, uint8(0xc0))

	// the line moves
	imgB := b.Entry().Texture.(*frame.ImageTexture)
	test.ExpectEquality(t, img.RGBAAt(0, 35).R, uint8(0xff))
	test.ExpectEquality(t, imgB.RGBAAt(4, 35).R, uint8(0xff))

	a.Release()
	b.Release()
}
