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

package geometry

import (
	"strings"

	"github.com/jetsetilly/presentation/curated"
)

// Sentinel error patterns.
const (
	UnknownAspectMode = "geometry: unknown aspect mode (%s)"
	UnknownStereoMode = "geometry: unknown stereo mode (%s)"
)

// AspectMode selects the aspect ratio of the drawn image.
type AspectMode int

// List of valid AspectMode values.
const (
	// widescreen if the source content is detected as being widescreen
	AspectAuto AspectMode = iota

	// the aspect ratio of the source
	AspectNormal

	// the aspect ratio of the source widened to 16:9
	AspectForceWide

	// the aspect ratio of the backbuffer
	AspectStretch
)

func (m AspectMode) String() string {
	switch m {
	case AspectAuto:
		return "auto"
	case AspectNormal:
		return "normal"
	case AspectForceWide:
		return "widescreen"
	case AspectStretch:
		return "stretch"
	}
	return "unknown"
}

// ParseAspectMode converts a string to an AspectMode. The comparison is case
// insensitive.
func ParseAspectMode(s string) (AspectMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		return AspectAuto, nil
	case "normal", "4:3":
		return AspectNormal, nil
	case "widescreen", "wide", "16:9":
		return AspectForceWide, nil
	case "stretch":
		return AspectStretch, nil
	}
	return AspectAuto, curated.Errorf(UnknownAspectMode, s)
}

// StereoMode selects how the images for each eye are composed.
type StereoMode int

// List of valid StereoMode values.
const (
	StereoOff StereoMode = iota
	StereoSideBySide
	StereoTopAndBottom
	StereoQuadBuffer
)

func (m StereoMode) String() string {
	switch m {
	case StereoOff:
		return "off"
	case StereoSideBySide:
		return "sbs"
	case StereoTopAndBottom:
		return "tab"
	case StereoQuadBuffer:
		return "quadbuffer"
	}
	return "unknown"
}

// ParseStereoMode converts a string to a StereoMode. The comparison is case
// insensitive.
func ParseStereoMode(s string) (StereoMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "":
		return StereoOff, nil
	case "sbs", "sidebyside":
		return StereoSideBySide, nil
	case "tab", "topandbottom":
		return StereoTopAndBottom, nil
	case "quadbuffer", "quad":
		return StereoQuadBuffer, nil
	}
	return StereoOff, curated.Errorf(UnknownStereoMode, s)
}

// IsSplit returns true if both eyes are drawn into the same buffer.
func (m StereoMode) IsSplit() bool {
	return m == StereoSideBySide || m == StereoTopAndBottom
}
