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
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/presentation/curated"
	"github.com/jetsetilly/presentation/logger"
)

// ProfileError is the sentinel error pattern for all profile errors.
const ProfileError = "profile: %v"

// pointer fields so that absent keys can be distinguished from zero values
type profile struct {
	Display *struct {
		Aspect                       *string `yaml:"aspect"`
		Crop                         *bool   `yaml:"crop"`
		Stereo                       *string `yaml:"stereo"`
		WidescreenHack               *bool   `yaml:"widescreen_hack"`
		SkipDuplicateFrames          *bool   `yaml:"skip_duplicate_frames"`
		InternalResolutionFrameDumps *bool   `yaml:"internal_resolution_frame_dumps"`
		PostProcessingShader         *string `yaml:"post_processing_shader"`
	} `yaml:"display"`

	OSD *struct {
		Messages *bool    `yaml:"messages"`
		Scale    *float64 `yaml:"scale"`
	} `yaml:"osd"`
}

// LoadYAML imports preferences from the YAML profile at the path.
func (p *Preferences) LoadYAML(pth string) error {
	data, err := os.ReadFile(pth)
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}
	if err := p.DecodeYAML(data); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "config", "profile imported from %s", pth)
	return nil
}

// DecodeYAML imports preferences from YAML data. Preferences are only
// changed if the entire profile is valid.
func (p *Preferences) DecodeYAML(data []byte) error {
	var prf profile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&prf); err != nil {
		if err == io.EOF {
			return nil
		}
		return curated.Errorf(ProfileError, err)
	}

	// values with a pre hook are validated before any preference is changed
	var s []func() error

	if d := prf.Display; d != nil {
		if d.Aspect != nil {
			if err := p.Aspect.Validate(*d.Aspect); err != nil {
				return curated.Errorf(ProfileError, err)
			}
			s = append(s, func() error { return p.Aspect.Set(*d.Aspect) })
		}
		if d.Stereo != nil {
			if err := p.Stereo.Validate(*d.Stereo); err != nil {
				return curated.Errorf(ProfileError, err)
			}
			s = append(s, func() error { return p.Stereo.Set(*d.Stereo) })
		}
		if d.Crop != nil {
			s = append(s, func() error { return p.Crop.Set(*d.Crop) })
		}
		if d.WidescreenHack != nil {
			s = append(s, func() error { return p.WidescreenHack.Set(*d.WidescreenHack) })
		}
		if d.SkipDuplicateFrames != nil {
			s = append(s, func() error { return p.SkipDuplicateFrames.Set(*d.SkipDuplicateFrames) })
		}
		if d.InternalResolutionFrameDumps != nil {
			s = append(s, func() error { return p.InternalResolutionFrameDumps.Set(*d.InternalResolutionFrameDumps) })
		}
		if d.PostProcessingShader != nil {
			s = append(s, func() error { return p.PostProcessingShader.Set(*d.PostProcessingShader) })
		}
	}

	if o := prf.OSD; o != nil {
		if o.Messages != nil {
			s = append(s, func() error { return p.OSDMessages.Set(*o.Messages) })
		}
		if o.Scale != nil {
			s = append(s, func() error { return p.OSDScale.Set(*o.Scale) })
		}
	}

	for _, f := range s {
		if err := f(); err != nil {
			return curated.Errorf(ProfileError, err)
		}
	}

	return nil
}
