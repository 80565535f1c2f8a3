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

// Package imguiosd draws the on-screen display with Dear ImGui. It
// implements the presenter's Overlay interface and renders with the same GL
// context as the glbackend package.
//
// Each message in the OSD queue is drawn as a small undecorated window. Input
// received by the presenter is forwarded to the ImGui IO so that future
// interactive overlays see the same keyboard and mouse state.
package imguiosd
