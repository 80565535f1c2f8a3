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
	"testing"
	"time"

	"github.com/jetsetilly/presentation/test"
)

func TestDropNeverDrawn(t *testing.T) {
	// a message that has not expired is never dropped
	test.ExpectFailure(t, shouldDrop(time.Millisecond, false))
	test.ExpectFailure(t, shouldDrop(time.Millisecond, true))

	// an expired message that has never been drawn is kept until the drop
	// time has passed
	test.ExpectFailure(t, shouldDrop(0, false))
	test.ExpectFailure(t, shouldDrop(-DropTime+time.Millisecond, false))
	test.ExpectSuccess(t, shouldDrop(-DropTime, false))
	test.ExpectSuccess(t, shouldDrop(-DropTime-time.Millisecond, false))
}

func TestDropEverDrawn(t *testing.T) {
	// an expired message that has been drawn is dropped immediately
	test.ExpectSuccess(t, shouldDrop(0, true))
	test.ExpectSuccess(t, shouldDrop(-time.Millisecond, true))
}

func TestFade(t *testing.T) {
	test.ExpectApproximate(t, fade(500*time.Millisecond, 1000*time.Millisecond), 0.5, 0.001)
	test.ExpectEquality(t, fade(2000*time.Millisecond, 5000*time.Millisecond), 1.0)
	test.ExpectEquality(t, fade(0, 5000*time.Millisecond), 0.0)
	test.ExpectEquality(t, fade(-time.Second, 5000*time.Millisecond), 0.0)

	// short messages fade over their entire duration
	test.ExpectApproximate(t, fade(100*time.Millisecond, 400*time.Millisecond), 0.25, 0.001)

	// zero duration does not divide by zero
	test.ExpectEquality(t, fade(0, 0), 0.0)
}
