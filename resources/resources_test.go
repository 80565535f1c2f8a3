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

package resources_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/presentation/resources"
	"github.com/jetsetilly/presentation/test"
)

func TestJoinPath(t *testing.T) {
	// run in a temporary directory because JoinPath() creates directories
	t.Chdir(t.TempDir())

	pth, err := resources.JoinPath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".presentation", "foo", "bar", "baz"))

	// the parent directory is created but the file is not
	_, err = os.Stat(filepath.Join(".presentation", "foo", "bar"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	// base path is not prepended twice
	pth, err = resources.JoinPath(pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".presentation", "foo", "bar", "baz"))
}

func TestUniqueFilename(t *testing.T) {
	re := regexp.MustCompile(`^dump_testcard_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(resources.UniqueFilename("dump", " testcard ")))

	re = regexp.MustCompile(`^dump_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(resources.UniqueFilename("dump", "")))
}
