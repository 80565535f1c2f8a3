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

// Package digest fingerprints the frames that reach the frame dumper stage of
// the presenter. The fingerprint of each frame is chained with the
// fingerprint of the previous frame, so the final value identifies the
// entire sequence of presented frames. Useful for regression testing of the
// presentation path without a display.
//
// Note that the use of sha1 is fine for this application because this is not
// a cryptographic task.
package digest
