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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/presentation/config"
	"github.com/jetsetilly/presentation/curated"
	"github.com/jetsetilly/presentation/geometry"
	"github.com/jetsetilly/presentation/test"
)

func newPreferences(t *testing.T) *config.Preferences {
	t.Helper()
	p, err := config.NewPreferences(filepath.Join(t.TempDir(), config.DefaultPrefsFile))
	test.DemandSuccess(t, err)
	return p
}

func TestDefaults(t *testing.T) {
	p := newPreferences(t)

	test.ExpectEquality(t, p.Geometry(), geometry.Config{
		Aspect: geometry.AspectAuto,
		Stereo: geometry.StereoOff,
	})
	test.ExpectEquality(t, p.SkipDuplicateFrames.Get().(bool), true)
	test.ExpectEquality(t, p.OSDMessages.Get().(bool), true)

	// construction does not count as a change
	test.ExpectEquality(t, p.TakeChanges(), 0)
}

func TestChangeBits(t *testing.T) {
	p := newPreferences(t)

	test.ExpectSuccess(t, p.Aspect.Set("stretch"))
	test.ExpectSuccess(t, p.Stereo.Set("tab"))
	test.ExpectEquality(t, p.AspectMode(), geometry.AspectStretch)
	test.ExpectEquality(t, p.StereoMode(), geometry.StereoTopAndBottom)

	c := p.TakeChanges()
	test.ExpectSuccess(t, c.Has(config.ChangeAspect))
	test.ExpectSuccess(t, c.Has(config.ChangeStereo))
	test.ExpectFailure(t, c.Has(config.ChangeShader))
	test.ExpectEquality(t, c.String(), "aspect, stereo")

	// changes are cleared when taken
	test.ExpectEquality(t, p.TakeChanges(), 0)

	test.ExpectSuccess(t, p.PostProcessingShader.Set("crt"))
	test.ExpectEquality(t, p.TakeChanges(), config.ChangeShader)
}

func TestInvalidMode(t *testing.T) {
	p := newPreferences(t)

	err := p.Aspect.Set("tall")
	test.ExpectSuccess(t, curated.Is(err, geometry.UnknownAspectMode))
	test.ExpectEquality(t, p.Aspect.String(), "auto")
	test.ExpectEquality(t, p.TakeChanges(), 0)
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), config.DefaultPrefsFile)

	p, err := config.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Crop.Set(true))
	test.ExpectSuccess(t, p.Aspect.Set("widescreen"))
	test.ExpectSuccess(t, p.Save())

	q, err := config.NewPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, q.Load())
	test.ExpectEquality(t, q.Geometry(), geometry.Config{
		Aspect: geometry.AspectForceWide,
		Crop:   true,
	})
}

func TestYAMLProfile(t *testing.T) {
	p := newPreferences(t)

	err := p.DecodeYAML([]byte(`
display:
  aspect: stretch
  crop: true
  stereo: sbs
  skip_duplicate_frames: false
osd:
  scale: 2.0
`))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Geometry(), geometry.Config{
		Aspect: geometry.AspectStretch,
		Crop:   true,
		Stereo: geometry.StereoSideBySide,
	})
	test.ExpectEquality(t, p.SkipDuplicateFrames.Get().(bool), false)
	test.ExpectEquality(t, p.OSDScale.Get().(float64), 2.0)

	// absent keys are unchanged
	test.ExpectEquality(t, p.OSDMessages.Get().(bool), true)

	// empty profile
	test.ExpectSuccess(t, p.DecodeYAML(nil))
}

func TestYAMLProfileErrors(t *testing.T) {
	p := newPreferences(t)

	// unknown keys
	err := p.DecodeYAML([]byte("display:\n  colour: red\n"))
	test.ExpectSuccess(t, curated.Is(err, config.ProfileError))

	// invalid mode leaves all preferences unchanged
	err = p.DecodeYAML([]byte("display:\n  crop: true\n  aspect: tall\n"))
	test.ExpectSuccess(t, curated.Has(err, geometry.UnknownAspectMode))
	test.ExpectEquality(t, p.Crop.Get().(bool), false)
}

func TestLoadYAML(t *testing.T) {
	p := newPreferences(t)

	pth := filepath.Join(t.TempDir(), "profile.yaml")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("display:\n  stereo: quadbuffer\n"), 0o600))
	test.ExpectSuccess(t, p.LoadYAML(pth))
	test.ExpectEquality(t, p.StereoMode(), geometry.StereoQuadBuffer)

	err := p.LoadYAML(filepath.Join(t.TempDir(), "missing.yaml"))
	test.ExpectSuccess(t, curated.Is(err, config.ProfileError))
}
