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

package environment_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/presentation/config"
	"github.com/jetsetilly/presentation/environment"
	"github.com/jetsetilly/presentation/logger"
	"github.com/jetsetilly/presentation/osd"
	"github.com/jetsetilly/presentation/test"
)

func TestEnvironment(t *testing.T) {
	prf, err := config.NewPreferences(filepath.Join(t.TempDir(), config.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	main := environment.NewEnvironment(environment.MainPresentation, prf, nil)
	thumb := environment.NewEnvironment("thumbnail", prf, nil)

	test.ExpectSuccess(t, main.AllowLogging())
	test.ExpectFailure(t, thumb.AllowLogging())

	// queues are separate
	main.OSD.PostUntyped("main", osd.DurationNormal, osd.ColorYellow)
	test.ExpectEquality(t, main.OSD.Len(), 1)
	test.ExpectEquality(t, thumb.OSD.Len(), 0)

	// preferences are shared and control whether messages are drawn
	test.ExpectSuccess(t, prf.OSDMessages.Set(false))
	var n int
	main.OSD.DrainAndRenderLive(func(osd.Draw) float32 { n++; return 0 })
	test.ExpectEquality(t, n, 0)

	main.Normalise()
	test.ExpectEquality(t, main.OSD.Len(), 0)
	test.ExpectEquality(t, prf.OSDMessages.Get().(bool), true)
}

func TestPermission(t *testing.T) {
	prf, err := config.NewPreferences(filepath.Join(t.TempDir(), config.DefaultPrefsFile))
	test.DemandSuccess(t, err)

	log := logger.NewLogger(10)
	w := &strings.Builder{}

	thumb := environment.NewEnvironment("thumbnail", prf, nil)
	log.Log(thumb, "test", "not logged")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	main := environment.NewEnvironment(environment.MainPresentation, prf, nil)
	log.Log(main, "test", "logged")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: logged\n")
}
