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

// Package config contains the preferences that control how frames are
// presented and how on-screen messages are displayed.
//
// Changes to preferences that require the presenter to do work (eg.
// recompiling the post-processing pipeline) are recorded as ChangeBits. The
// presenter collects them once per frame with TakeChanges().
//
// In addition to the preferences file managed by the prefs package,
// preferences can be imported from a YAML profile. For example:
//
//	display:
//	  aspect: stretch
//	  crop: false
//	  stereo: sbs
//	osd:
//	  messages: true
//	  scale: 1.5
//
// Keys that are not present in the profile leave the preference unchanged.
// Unknown keys are an error.
package config
