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

import "time"

// Layout and timing values. Margins and padding are in pixels and are
// multiplied by the framebuffer scale.
const (
	LeftMargin    = 10.0
	TopMargin     = 10.0
	WindowPadding = 4.0

	// time at the end of a message's life over which it fades out
	FadeTime = 1000 * time.Millisecond

	// time after expiry that a message that has never been drawn is dropped
	DropTime = 5000 * time.Millisecond
)

// Commonly used message durations.
const (
	DurationShort    = 2000 * time.Millisecond
	DurationNormal   = 5000 * time.Millisecond
	DurationVeryLong = 10000 * time.Millisecond
)

// Color is a packed colour value in the form 0xAARRGGBB.
type Color uint32

// Commonly used message colours.
const (
	ColorCyan   Color = 0xff00ffff
	ColorGreen  Color = 0xff00ff00
	ColorRed    Color = 0xffff0000
	ColorYellow Color = 0xffffff30
)

// RGBA returns the colour components as values between zero and one.
func (c Color) RGBA() (r, g, b, a float32) {
	r = float32((c>>16)&0xff) / 255.0
	g = float32((c>>8)&0xff) / 255.0
	b = float32(c&0xff) / 255.0
	a = float32((c>>24)&0xff) / 255.0
	return r, g, b, a
}

// Clock is the source of time for the queue.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock is the Clock used when no other Clock is specified.
var SystemClock Clock = systemClock{}
