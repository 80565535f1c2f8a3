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


package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// command line overrides are stacked in groups. only the top group is
// consulted by GetCommandLinePref()
var commandLine struct {
	crit  sync.Mutex
	stack []map[string]string
}

// parseCommandLine splits a string of the form "key::value; key::value" into
// its key/value pairs. Entries without the separator are ignored.
func parseCommandLine(prefs string) map[string]string {
	group := make(map[string]string)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok {
			continue
		}
		group[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return group
}

// PushCommandLineStack parses the string and adds it as a new group.
func PushCommandLineStack(prefs string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, parseCommandLine(prefs))
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the values in the group that were never
// used, in the same form as accepted by PushCommandLineStack().
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return ""
	}

	top := commandLine.stack[len(commandLine.stack)-1]
	commandLine.stack = commandLine.stack[:len(commandLine.stack)-1]

	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	unused := make([]string, 0, len(keys))
	for _, k := range keys {
		unused = append(unused, fmt.Sprintf("%s::%s", k, top[k]))
	}

	return strings.Join(unused, "; ")
}

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// GetCommandLinePref returns the value for the key in the top group. The
// value is removed from the group.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	if len(commandLine.stack) == 0 {
		return false, nil
	}

	top := commandLine.stack[len(commandLine.stack)-1]
	if v, ok := top[key]; ok {
		delete(top, key)
		return true, v
	}

	return false, nil
}
