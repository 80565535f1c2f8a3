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

package config

import (
	"sync/atomic"

	"github.com/jetsetilly/presentation/geometry"
	"github.com/jetsetilly/presentation/logger"
	"github.com/jetsetilly/presentation/prefs"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences"

// Preferences for the presentation of frames and on-screen messages.
type Preferences struct {
	dsk *prefs.Disk

	// geometry
	Aspect         prefs.String
	Crop           prefs.Bool
	Stereo         prefs.String
	WidescreenHack prefs.Bool

	// frame submission
	SkipDuplicateFrames          prefs.Bool
	InternalResolutionFrameDumps prefs.Bool
	PostProcessingShader         prefs.String

	// on-screen display
	OSDMessages prefs.Bool
	OSDScale    prefs.Float

	// parsed values of the Aspect and Stereo strings
	aspect atomic.Int32
	stereo atomic.Int32

	changes changes
}

const (
	aspect                       = "auto"
	crop                         = false
	stereo                       = "off"
	widescreenHack               = false
	skipDuplicateFrames          = true
	internalResolutionFrameDumps = false
	postProcessingShader         = ""
	osdMessages                  = true
	osdScale                     = 1.0
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences are associated with the file at the
// path but are not loaded until Load() is called.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.Aspect.SetHookPre(func(v prefs.Value) error {
		_, err := geometry.ParseAspectMode(v.(string))
		return err
	})
	p.Aspect.SetHookPost(func(v prefs.Value) error {
		m, _ := geometry.ParseAspectMode(v.(string))
		p.aspect.Store(int32(m))
		p.changes.set(ChangeAspect)
		return nil
	})
	p.Stereo.SetHookPre(func(v prefs.Value) error {
		_, err := geometry.ParseStereoMode(v.(string))
		return err
	})
	p.Stereo.SetHookPost(func(v prefs.Value) error {
		m, _ := geometry.ParseStereoMode(v.(string))
		p.stereo.Store(int32(m))
		p.changes.set(ChangeStereo)
		return nil
	})
	p.Crop.SetHookPost(p.hook(ChangeCrop))
	p.WidescreenHack.SetHookPost(p.hook(ChangeWidescreenHack))
	p.PostProcessingShader.SetHookPost(p.hook(ChangeShader))
	p.OSDMessages.SetHookPost(p.hook(ChangeOSD))
	p.OSDScale.SetHookPost(p.hook(ChangeOSD))

	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key  string
		pref prefs.Pref
	}{
		{"display.aspect", &p.Aspect},
		{"display.crop", &p.Crop},
		{"display.stereo", &p.Stereo},
		{"display.widescreenHack", &p.WidescreenHack},
		{"display.skipDuplicateFrames", &p.SkipDuplicateFrames},
		{"display.internalResolutionFrameDumps", &p.InternalResolutionFrameDumps},
		{"display.postProcessingShader", &p.PostProcessingShader},
		{"osd.messages", &p.OSDMessages},
		{"osd.scale", &p.OSDScale},
	} {
		if err := p.dsk.Add(e.key, e.pref); err != nil {
			return nil, err
		}
	}

	// the initial values are not changes
	p.changes.take()

	return p, nil
}

func (p *Preferences) hook(bit ChangeBits) func(prefs.Value) error {
	return func(prefs.Value) error {
		p.changes.set(bit)
		return nil
	}
}

// SetDefaults reverts all preferences to default values.
func (p *Preferences) SetDefaults() {
	p.Aspect.Set(aspect)
	p.Crop.Set(crop)
	p.Stereo.Set(stereo)
	p.WidescreenHack.Set(widescreenHack)
	p.SkipDuplicateFrames.Set(skipDuplicateFrames)
	p.InternalResolutionFrameDumps.Set(internalResolutionFrameDumps)
	p.PostProcessingShader.Set(postProcessingShader)
	p.OSDMessages.Set(osdMessages)
	p.OSDScale.Set(osdScale)
}

// Load preferences from disk. A missing preferences file is created with the
// current values.
func (p *Preferences) Load() error {
	return p.dsk.Load(true)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	if err := p.dsk.Save(); err != nil {
		return err
	}
	logger.Log(logger.Allow, "config", "preferences saved")
	return nil
}

// AspectMode returns the current aspect mode.
func (p *Preferences) AspectMode() geometry.AspectMode {
	return geometry.AspectMode(p.aspect.Load())
}

// StereoMode returns the current stereo mode.
func (p *Preferences) StereoMode() geometry.StereoMode {
	return geometry.StereoMode(p.stereo.Load())
}

// Geometry returns a snapshot of the preferences used by the geometry
// package.
func (p *Preferences) Geometry() geometry.Config {
	return geometry.Config{
		Aspect:         p.AspectMode(),
		Crop:           p.Crop.Get().(bool),
		Stereo:         p.StereoMode(),
		WidescreenHack: p.WidescreenHack.Get().(bool),
	}
}

// TakeChanges returns the preferences that have changed since the previous
// call to TakeChanges().
func (p *Preferences) TakeChanges() ChangeBits {
	return p.changes.take()
}
