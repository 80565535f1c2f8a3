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

// Package osd is the on-screen display message queue. Messages can be posted
// from any goroutine and are drawn by the goroutine that renders the overlay.
//
// Each message has a duration. Towards the end of its life a message fades
// out, except on the first frame it is drawn, when it is always drawn fully
// opaque. A message that has expired is dropped once it has been drawn at
// least once. A message that is never drawn (eg. because on-screen messages
// are disabled) is dropped when it has been expired for longer than DropTime.
//
// The queue does not draw anything itself. The DrainAndRenderLive() function
// calls a DrawFunc for every live message with the position and opacity the
// message should be drawn with.
package osd
