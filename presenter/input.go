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

package presenter

// SetKeyMap forwards the key map to the overlay.
func (p *Presenter) SetKeyMap(keymap [][2]int) {
	p.overlay.SetKeyMap(keymap)
}

// SetKey forwards a key event to the overlay.
func (p *Presenter) SetKey(key uint32, down bool, chars string) {
	p.overlay.SetKey(key, down, chars)
}

// SetMousePos forwards the mouse position to the overlay.
func (p *Presenter) SetMousePos(x, y float32) {
	p.overlay.SetMousePos(x, y)
}

// SetMousePress forwards the state of the mouse buttons to the overlay.
func (p *Presenter) SetMousePress(buttons uint32) {
	p.overlay.SetMousePress(buttons)
}
