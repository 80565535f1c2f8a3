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

// Package testcard is a synthetic frame producer. It stands in for an
// emulated console when running the presentation layer on its own.
//
// The Card type draws a test card into frames taken from a frame.Pool and
// sends them to a channel from its own goroutine. The consumer submits each
// frame to the presenter with Frame.Submit(). Frames can be repeated to
// exercise duplicate frame detection.
//
// Card also implements the presenter's Source interface. The aspect hack
// factors given to the card change the shape of the box drawn in the centre
// of the card.
package testcard
