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
	"github.com/jetsetilly/presentation/curated"
)

// Sentinel error patterns. Used as panic values.
const (
	NilEntry      = "frame: cannot acquire nil entry"
	LeaseReleased = "frame: lease has already been released"
	LeaseEmpty    = "frame: lease is empty"
)

// Lease is a content lock on an Entry. The zero value is an empty lease and
// can be safely released.
//
// A Lease should not be copied. Use Move() to transfer the content lock to a
// new owner. The old Lease becomes empty.
type Lease struct {
	entry    *Entry
	released bool
}

// Acquire a content lock on the entry.
func Acquire(e *Entry) Lease {
	if e == nil {
		panic(curated.Errorf(NilEntry))
	}
	e.locks.Add(1)
	return Lease{entry: e}
}

// Held returns true if the lease holds a content lock.
func (l *Lease) Held() bool {
	return l.entry != nil
}

// Entry returns the entry the lease holds the content lock for. Panics if the
// lease is empty or has been released.
func (l *Lease) Entry() *Entry {
	if l.released {
		panic(curated.Errorf(LeaseReleased))
	}
	if l.entry == nil {
		panic(curated.Errorf(LeaseEmpty))
	}
	return l.entry
}

// Move transfers the content lock to a new Lease. The receiver becomes empty.
func (l *Lease) Move() Lease {
	if l.released {
		panic(curated.Errorf(LeaseReleased))
	}
	m := Lease{entry: l.entry}
	l.entry = nil
	return m
}

// Release the content lock. Releasing an empty lease does nothing. Releasing
// a lease twice panics.
func (l *Lease) Release() {
	if l.released {
		panic(curated.Errorf(LeaseReleased))
	}
	if l.entry == nil {
		return
	}
	if l.entry.locks.Add(-1) < 0 {
		panic(curated.Errorf(LeaseReleased))
	}
	l.entry = nil
	l.released = true
}
