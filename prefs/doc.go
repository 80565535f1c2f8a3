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

// Package prefs facilitates the storage of preferences values to disk.
//
// The preference types (Bool, String, Int, Float and Generic) are safe to
// read from any goroutine. Each can have a hook function that is called before
// and after a value has changed. The Disk type associates preference values
// with a key and saves/loads them to a file.
//
// Preference values can be overridden from the command line with a string of
// the form:
//
//	display.aspect::stretch; osd.messages::false
//
// The string should be pushed with PushCommandLineStack() before the values are
// added to a Disk instance.
package prefs
