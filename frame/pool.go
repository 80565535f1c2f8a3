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
	"sync"
)

// Pool recycles entries for a producer. It is safe to use from more than one
// goroutine.
type Pool struct {
	crit    sync.Mutex
	entries []*Entry
	nextID  uint64
}

// NewPool is the preferred method of initialisation for the Pool type.
func NewPool() *Pool {
	return &Pool{
		nextID: 1,
	}
}

// Get returns an entry of the specified size that is not content-locked. The
// entry is given a new ID.
func (p *Pool) Get(width, height int) *Entry {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.get(width, height)
}

// Acquire returns a content-locked entry of the specified size. Unlike Get()
// no other call to the Pool can return the same entry before the lease is
// released.
func (p *Pool) Acquire(width, height int) Lease {
	p.crit.Lock()
	defer p.crit.Unlock()
	return Acquire(p.get(width, height))
}

func (p *Pool) get(width, height int) *Entry {
	var e *Entry
	for _, c := range p.entries {
		if c.Locked() {
			continue
		}
		b := c.Texture.Bounds()
		if b.Dx() == width && b.Dy() == height {
			e = c
			break
		}
	}

	if e == nil {
		e = &Entry{Texture: NewImageTexture(width, height)}
		p.entries = append(p.entries, e)
	}

	e.ID = p.nextID
	p.nextID++

	return e
}

// Len returns the number of entries allocated by the pool.
func (p *Pool) Len() int {
	p.crit.Lock()
	defer p.crit.Unlock()
	return len(p.entries)
}
