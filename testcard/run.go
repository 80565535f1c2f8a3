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

package testcard

import (
	"context"
	"fmt"
	"time"

	"github.com/jetsetilly/presentation/frame"
	"github.com/jetsetilly/presentation/geometry"
	"github.com/jetsetilly/presentation/notifications"
	"github.com/jetsetilly/presentation/osd"
)

// Frame is a single frame produced by the Card.
type Frame struct {
	// the lease must be released by the consumer. Submit() does this
	Lease frame.Lease

	Rect  geometry.Rectangle
	Ticks uint64
	Count int
}

// Submitter is implemented by the presenter.
type Submitter interface {
	SubmitFrame(entry *frame.Entry, rect geometry.Rectangle, ticks uint64, frameCount int) bool
}

// Submit the frame and release the lease. Returns the result of
// SubmitFrame(), which is true if the frame was a duplicate.
func (f *Frame) Submit(s Submitter) bool {
	defer f.Lease.Release()
	return s.SubmitFrame(f.Lease.Entry(), f.Rect, f.Ticks, f.Count)
}

// Messages is implemented by the osd.Queue.
type Messages interface {
	PostCategorized(category notifications.Notice, text string, duration time.Duration, color osd.Color)
	PostUntyped(text string, duration time.Duration, color osd.Color)
}

// Run produces frames and sends them to the out channel until the context is
// cancelled or the number of frames in the Options has been produced. The out
// channel is closed when Run() returns.
//
// The msgs argument can be nil.
func (c *Card) Run(ctx context.Context, out chan<- Frame, msgs Messages) error {
	defer close(out)

	if msgs != nil {
		msgs.PostUntyped(fmt.Sprintf("Test card %dx%d at %.2fHz", c.opts.Width, c.opts.Height, c.opts.Hz),
			osd.DurationNormal, osd.ColorCyan)
	}

	var tck *time.Ticker
	if !c.opts.Unlimited {
		tck = time.NewTicker(time.Duration(float64(time.Second) / float64(c.opts.Hz)))
		defer tck.Stop()
	}

	rect := geometry.NewRectangle(c.opts.Width, c.opts.Height)
	perSecond := max(int(c.opts.Hz), 1)
	var count int

	for img := 0; c.opts.Frames == 0 || count < c.opts.Frames; img++ {
		l := c.Draw(img)

		for r := 0; r <= c.opts.Repeat && (c.opts.Frames == 0 || count < c.opts.Frames); r++ {
			if tck != nil {
				select {
				case <-ctx.Done():
					l.Release()
					return ctx.Err()
				case <-tck.C:
				}
			}

			f := Frame{
				Lease: frame.Acquire(l.Entry()),
				Rect:  rect,
				Ticks: c.Ticks(count),
				Count: count,
			}

			select {
			case <-ctx.Done():
				f.Lease.Release()
				l.Release()
				return ctx.Err()
			case out <- f:
			}

			// play time once a second of emulated time
			if msgs != nil && count > 0 && count%perSecond == 0 {
				secs := count / perSecond
				msgs.PostCategorized(notifications.NotifyAchievementPlayTime,
					fmt.Sprintf("Play time %02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60),
					osd.DurationShort, osd.ColorGreen)
			}

			count++
		}

		l.Release()
	}

	return nil
}
