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

// Package presenter draws frames produced by a source to the display surface.
//
// Frames are submitted with SubmitFrame(). A frame that has the same ID as the
// most recently presented frame is a duplicate and is not presented if the
// SkipDuplicateFrames preference is set. Otherwise the frame is drawn to the
// backbuffer in the area decided by the geometry package, the overlay is drawn
// on top and the backbuffer is presented.
//
// The presenter does not talk to a graphics API directly. The Backend,
// PostProcessor and Overlay interfaces are implemented by the gui/glbackend
// and gui/imguiosd packages for windowed presentation and by the softgpu
// package for headless presentation and testing.
//
// # Goroutines
//
// SubmitFrame(), Present(), BeginUIFrame() and EndUIFrame() must be called from
// the goroutine that called Initialize(). This is the goroutine that owns the
// graphics context.
//
// ChangeSurface() and ResizeSurface() can be called from any goroutine, most
// likely the goroutine servicing the host window. They only record that the
// surface needs attention. The surface is updated by the presentation
// goroutine at the start of the next present.
//
// Presenting the backbuffer happens with the swap lock held. A host that needs
// to destroy a surface should do so inside WithSwapLock() so that the surface
// is never presented while it is being destroyed.
package presenter
