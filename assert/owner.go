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

package assert

import (
	"fmt"
	"sync/atomic"
)

// Owner records the goroutine that is allowed to call a set of functions. The
// zero value has no owner and Check() will succeed from any goroutine.
type Owner struct {
	id atomic.Uint64
}

// Claim makes the calling goroutine the owner.
func (o *Owner) Claim() {
	o.id.Store(GetGoRoutineID())
}

// Release forgets the owner.
func (o *Owner) Release() {
	o.id.Store(0)
}

// IsOwner returns true if the calling goroutine is the owner or if there is no
// owner.
func (o *Owner) IsOwner() bool {
	id := o.id.Load()
	return id == 0 || id == GetGoRoutineID()
}

// Check panics if the calling goroutine is not the owner. Checking is only
// active when the assertions build tag is specified.
func (o *Owner) Check(function string) {
	if !enabled {
		return
	}
	if !o.IsOwner() {
		panic(fmt.Sprintf("%s: called from goroutine %d but owned by goroutine %d", function, GetGoRoutineID(), o.id.Load()))
	}
}
