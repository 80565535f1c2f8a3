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

package config

import (
	"strings"
	"sync/atomic"
)

// ChangeBits records which preferences have changed since the last call to
// TakeChanges().
type ChangeBits uint32

// List of valid ChangeBits.
const (
	ChangeAspect ChangeBits = 1 << iota
	ChangeCrop
	ChangeStereo
	ChangeWidescreenHack
	ChangeShader
	ChangeOSD
)

func (c ChangeBits) String() string {
	if c == 0 {
		return "none"
	}

	var s []string
	for _, b := range []struct {
		bit  ChangeBits
		name string
	}{
		{ChangeAspect, "aspect"},
		{ChangeCrop, "crop"},
		{ChangeStereo, "stereo"},
		{ChangeWidescreenHack, "widescreen hack"},
		{ChangeShader, "shader"},
		{ChangeOSD, "osd"},
	} {
		if c&b.bit == b.bit {
			s = append(s, b.name)
		}
	}
	return strings.Join(s, ", ")
}

// Has returns true if any of the bits in b are set.
func (c ChangeBits) Has(b ChangeBits) bool {
	return c&b != 0
}

// changes accumulates change bits from any goroutine
type changes struct {
	bits atomic.Uint32
}

func (c *changes) set(b ChangeBits) {
	c.bits.Or(uint32(b))
}

func (c *changes) take() ChangeBits {
	return ChangeBits(c.bits.Swap(0))
}
