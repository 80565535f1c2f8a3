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

// Package frame represents images produced by a source and handed to the
// presenter for display.
//
// An Entry can be content-locked. While an entry is locked its pixels must not
// be reused by the producer because the presenter may still draw them. The
// lock is held through a Lease, which can be moved but not copied in any
// meaningful way: only one Lease value is live for each acquisition and
// releasing it twice is a programming error.
//
// The Pool type is used by a producer to recycle entries. It never returns an
// entry that is content-locked.
package frame
