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

// Package softgpu is a GPU backend that draws into images in main memory. It
// implements the presenter's Backend, PostProcessor and Overlay interfaces.
//
// It is used for headless runs, where the frame dumper is the only consumer
// of presented frames, and for testing. The presented image can be retrieved
// from any goroutine with the Front() function.
//
// Post-processing "shaders" are the scaling kernels of the x/image/draw
// package. The overlay draws on-screen messages with a fixed size bitmap
// font.
package softgpu
