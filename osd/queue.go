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

package osd

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/presentation/logger"
	"github.com/jetsetilly/presentation/notifications"
)

type message struct {
	category notifications.Notice
	text     string
	duration time.Duration
	color    Color
	created  time.Time

	// set after the message has been passed to a DrawFunc
	everDrawn bool

	// insertion order
	seq uint64
}

func (m *message) timeLeft(now time.Time) time.Duration {
	return m.duration - now.Sub(m.created)
}

// Draw is the information required to draw a single message.
type Draw struct {
	// count of messages drawn so far in this pass. useful for creating unique
	// window names
	Index int

	Category notifications.Notice
	Text     string
	Color    Color
	Alpha    float32
	TimeLeft time.Duration

	// top-left position of message
	X, Y float32
}

// DrawFunc draws a single message and returns the height of the drawn
// message in pixels.
type DrawFunc func(Draw) float32

// Queue of on-screen messages. Safe to use from more than one goroutine.
type Queue struct {
	crit     sync.Mutex
	messages []*message
	seq      uint64

	perm  logger.Permission
	clock Clock

	// whether messages are drawn. the queue still drops expired messages if
	// drawing is disabled
	enabled func() bool

	scaleX float32
	scaleY float32

	// area of the screen covered by other interface elements
	obscuredLeft atomic.Int32
	obscuredTop  atomic.Int32
}

// NewQueue is the preferred method of initialisation for the Queue type. If
// the clock is nil then SystemClock is used. Posted messages are also logged
// if the permission allows it.
func NewQueue(perm logger.Permission, clock Clock) *Queue {
	if clock == nil {
		clock = SystemClock
	}
	if perm == nil {
		perm = logger.Allow
	}
	return &Queue{
		perm:   perm,
		clock:  clock,
		scaleX: 1.0,
		scaleY: 1.0,
	}
}

// SetEnabled sets the function that decides whether messages are drawn.
func (q *Queue) SetEnabled(enabled func() bool) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.enabled = enabled
}

// SetScale sets the framebuffer scale. Margins and padding are multiplied by
// the scale.
func (q *Queue) SetScale(x, y float32) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.scaleX = x
	q.scaleY = y
}

// SetObscuredPixelsLeft sets the number of pixels on the left of the screen
// that messages should not be drawn over.
func (q *Queue) SetObscuredPixelsLeft(px int) {
	q.obscuredLeft.Store(int32(px))
}

// SetObscuredPixelsTop sets the number of pixels at the top of the screen
// that messages should not be drawn over.
func (q *Queue) SetObscuredPixelsTop(px int) {
	q.obscuredTop.Store(int32(px))
}

// insert message in category order and then insertion order. must be called
// with the critical section locked
func (q *Queue) insert(m *message) {
	q.seq++
	m.seq = q.seq
	m.created = q.clock.Now()

	ord := m.category.Order()
	i := sort.Search(len(q.messages), func(i int) bool {
		return q.messages[i].category.Order() > ord
	})

	q.messages = append(q.messages, nil)
	copy(q.messages[i+1:], q.messages[i:])
	q.messages[i] = m

	logger.Log(q.perm, "osd", m.text)
}

// PostCategorized adds a message to the queue, replacing any existing message
// of the same category. Posting a message with the NotifyTypeless category is
// the same as calling PostUntyped().
func (q *Queue) PostCategorized(category notifications.Notice, text string, duration time.Duration, color Color) {
	q.crit.Lock()
	defer q.crit.Unlock()

	if !category.IsTypeless() {
		n := q.messages[:0]
		for _, m := range q.messages {
			if m.category != category {
				n = append(n, m)
			}
		}
		clear(q.messages[len(n):])
		q.messages = n
	}

	q.insert(&message{
		category: category,
		text:     text,
		duration: duration,
		color:    color,
	})
}

// PostUntyped adds a message to the queue.
func (q *Queue) PostUntyped(text string, duration time.Duration, color Color) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.insert(&message{
		category: notifications.NotifyTypeless,
		text:     text,
		duration: duration,
		color:    color,
	})
}

// Notify implements the notifications.Notify interface.
func (q *Queue) Notify(notice notifications.Notice, text string) error {
	q.PostCategorized(notice, text, DurationNormal, ColorYellow)
	return nil
}

// Clear removes all messages from the queue.
func (q *Queue) Clear() {
	q.crit.Lock()
	defer q.crit.Unlock()
	clear(q.messages)
	q.messages = q.messages[:0]
}

// Len returns the number of messages in the queue, including messages that
// have expired but have yet to be dropped.
func (q *Queue) Len() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.messages)
}

// shouldDrop returns true if a message should be removed from the queue. An
// expired message is kept until it has been drawn at least once, or until it
// has been expired for DropTime.
func shouldDrop(timeLeft time.Duration, everDrawn bool) bool {
	return timeLeft <= 0 && (everDrawn || -timeLeft >= DropTime)
}

// fade returns the opacity of a message with the remaining time and
// duration. The fade time is never shorter than one millisecond.
func fade(timeLeft time.Duration, duration time.Duration) float32 {
	fadeTime := max(min(FadeTime, duration), time.Millisecond)
	return min(max(float32(timeLeft)/float32(fadeTime), 0.0), 1.0)
}

// DrainAndRenderLive removes expired messages from the queue and calls the
// DrawFunc for every remaining message, unless drawing is disabled. Messages
// are stacked from the top-left of the screen.
//
// The DrawFunc is called with the queue locked. It must not call any other
// Queue function.
func (q *Queue) DrainAndRenderLive(draw DrawFunc) {
	q.crit.Lock()
	defer q.crit.Unlock()

	enabled := draw != nil && (q.enabled == nil || q.enabled())

	x := LeftMargin*q.scaleX + float32(q.obscuredLeft.Load())
	y := TopMargin*q.scaleY + float32(q.obscuredTop.Load())
	now := q.clock.Now()

	var index int
	n := q.messages[:0]
	for _, m := range q.messages {
		timeLeft := m.timeLeft(now)
		if shouldDrop(timeLeft, m.everDrawn) {
			continue
		}
		n = append(n, m)

		if !enabled {
			continue
		}

		alpha := float32(1.0)
		if m.everDrawn {
			alpha = fade(timeLeft, m.duration)
		}

		h := draw(Draw{
			Index:    index,
			Category: m.category,
			Text:     m.text,
			Color:    m.color,
			Alpha:    alpha,
			TimeLeft: timeLeft,
			X:        x,
			Y:        y,
		})
		if h > 0 {
			y += h + WindowPadding*q.scaleY
		}

		m.everDrawn = true
		index++
	}
	clear(q.messages[len(n):])
	q.messages = n
}
