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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are given to NewArgs() and each layer of the command line is
// parsed with Parse(). Flags are added to the current layer with the AddBool(),
// AddString(), etc. functions. For example:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		// help message has already been printed
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "HEADLESS":
//		md.NewMode()
//		frames := md.AddInt("frames", 600, "number of frames to produce")
//		_, _ = md.Parse()
//		...
//	}
//
// The first sub-mode in the list is the default sub-mode and is selected if
// the next argument is not the name of a sub-mode. Sub-mode comparisons are
// case insensitive. Mode() returns the most recently selected mode and Path()
// returns all modes selected so far, separated by a forward slash.
//
// IsSet() reports whether a flag was given on the command line, which allows
// flags to override values from other sources (a preferences file for
// example) only when the user has asked for it.
//
// Help is printed automatically when the -help flag is found. The help
// message lists the flags and the available sub-modes of the current layer.
package modalflag
