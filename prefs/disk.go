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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"
)

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value in the preferences file.
const keySep = " :: "

// Sentinel error patterns.
const (
	DuplicateKey  = "prefs: duplicate key (%s)"
	NotAPrefsFile = "prefs: not a valid prefs file (%s)"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]Pref

	// values taken from the command line stack. these take priority over the
	// values in the file
	overrides map[string]Value
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:      path,
		entries:   make(map[string]Pref),
		overrides: make(map[string]Value),
	}, nil
}

// Add preference value to list of values to store/load from disk. If a
// command line override is present for the key it is applied immediately.
func (dsk *Disk) Add(key string, p Pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
		dsk.overrides[key] = v
	}

	return nil
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}
	return nil
}

// Save current preference values to disk. Values in the file that have not
// been added to this Disk instance are preserved. Defunct values are
// discarded.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	data, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		if !isDefunct(k) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(k)
		s.WriteString(keySep)
		s.WriteString(data[k])
		s.WriteString("\n")
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. If saveOnFail is true then a missing
// preferences file is created with the current values. Values that were
// overridden from the command line are not changed.
func (dsk *Disk) Load(saveOnFail bool) error {
	dsk.crit.Lock()

	data, err := dsk.read()
	if err != nil {
		dsk.crit.Unlock()
		return err
	}

	if len(data) == 0 && saveOnFail {
		dsk.crit.Unlock()
		return dsk.Save()
	}
	defer dsk.crit.Unlock()

	for k, v := range data {
		if _, ok := dsk.overrides[k]; ok {
			continue
		}
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}

// read the key/value pairs from the preferences file. A missing file is not
// an error and results in an empty map.
func (dsk *Disk) read() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf(NotAPrefsFile, dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), keySep)
		if !ok {
			continue
		}
		data[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	return data, nil
}
