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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the output of the flag package so that it can be
// amended with the mode path and the list of sub-modes.
type helpWriter struct {
	buffer strings.Builder
}

// Clear contents of output buffer.
func (hw *helpWriter) Clear() {
	hw.buffer.Reset()
}

// Help writes the amended help message to output.
func (hw *helpWriter) Help(output io.Writer, path string, subModes []string, additionalHelp string) {
	s := hw.buffer.String()
	usage, defaults, _ := strings.Cut(s, "\n")

	// there is no flag information and no sub-modes
	if defaults == "" && len(subModes) == 0 {
		if path != "" {
			fmt.Fprintf(output, "No help available for %s\n", path)
		} else {
			fmt.Fprintln(output, "No help available")
		}
		return
	}

	if path != "" {
		fmt.Fprintf(output, "%s for %s mode\n", usage, path)
	} else {
		fmt.Fprintln(output, usage)
	}
	fmt.Fprint(output, defaults)

	if len(subModes) > 0 {
		if defaults != "" {
			fmt.Fprintln(output)
		}
		fmt.Fprintf(output, "  available sub-modes: %s\n", strings.Join(subModes, ", "))
		fmt.Fprintf(output, "    default: %s\n", subModes[0])
	}

	if additionalHelp != "" {
		fmt.Fprintf(output, "\n%s\n", additionalHelp)
	}
}

// Write buffers all output.
func (hw *helpWriter) Write(p []byte) (n int, err error) {
	return hw.buffer.Write(p)
}
