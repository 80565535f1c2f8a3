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

// Package video dumps presented frames to a video file with the help of the
// ffmpeg program. The FFMPEG type implements the presenter's FrameDumper
// interface.
//
// Frames are sent to ffmpeg as raw RGBA data over a pipe. The ffmpeg and
// encoding arguments are selected by the Profile in the Session given to
// Enable().
package video
