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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions are the same except that they call
// t.Fatalf() and so end the test immediately. Use the Demand*() functions when
// the value being tested is required to be correct for later tests to make
// sense. For example, the length of a slice before iterating over it.
//
// ExpectSuccess() and ExpectFailure() test for success under generic
// conditions. The documentation for those functions describe the currently
// supported types.
//
// It is worth describing how the success functions handle the nil type
// because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to succeed.
// This is because of how errors usually work (nil to indicate no error).
//
// All functions accept an optional list of tags. The tags are printed before
// the failure message and are useful for identifying which iteration of a
// loop has failed.
package test
