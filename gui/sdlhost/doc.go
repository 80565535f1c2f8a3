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

// Package sdlhost is the window system for the presentation layer. It creates
// an SDL window with an OpenGL 3.2 core context, satisfies the presenter's
// Host interface and the glbackend Surface interface, and forwards window and
// input events.
//
// SDL requires that all window functions are called from the main thread.
// NewHost() locks the calling goroutine to its OS thread.
package sdlhost
