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

// Package geometry computes where a source image is drawn on the display
// surface. All functions are pure and depend only on the values in the Layout
// type, so the same inputs always produce the same rectangles.
//
// Every dimension that is used to size an output (the target rectangle and
// the output dimensions used for window size requests and frame dumps) is
// rounded down to a multiple of four. Video encoders require this.
package geometry
