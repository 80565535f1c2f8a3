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

package imguiosd

import "github.com/inkyblackness/imgui-go/v4"

// number of mouse buttons forwarded to ImGui
const mouseButtons = 3

// SetKeyMap implements the presenter.Overlay interface. Each entry pairs an
// ImGui key with the native key code used by SetKey().
func (ovl *Overlay) SetKeyMap(keymap [][2]int) {
	for _, k := range keymap {
		ovl.io.KeyMap(k[0], k[1])
	}
}

// SetKey implements the presenter.Overlay interface. Text input is sent with
// a key of zero, in which case only the characters are forwarded.
func (ovl *Overlay) SetKey(key uint32, down bool, chars string) {
	if key != 0 {
		if down {
			ovl.io.KeyPress(int(key))
		} else {
			ovl.io.KeyRelease(int(key))
		}
	}
	if chars != "" {
		ovl.io.AddInputCharacters(chars)
	}
}

// SetMousePos implements the presenter.Overlay interface.
func (ovl *Overlay) SetMousePos(x, y float32) {
	ovl.io.SetMousePosition(imgui.Vec2{X: x, Y: y})
}

// SetMousePress implements the presenter.Overlay interface. Bit n of buttons
// is the state of mouse button n.
func (ovl *Overlay) SetMousePress(buttons uint32) {
	for i := range mouseButtons {
		ovl.io.SetMouseButtonDown(i, buttons&(1<<i) != 0)
	}
}
