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

package main

import (
	"fmt"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/presentation/config"
	"github.com/jetsetilly/presentation/environment"
	"github.com/jetsetilly/presentation/logger"
	"github.com/jetsetilly/presentation/modalflag"
	"github.com/jetsetilly/presentation/prefs"
	"github.com/jetsetilly/presentation/resources"
	"github.com/jetsetilly/presentation/testcard"
	"github.com/jetsetilly/presentation/video"
)

// flags common to the RUN and HEADLESS modes.
type commonFlags struct {
	aspect     *string
	crop       *bool
	stereo     *string
	widescreen *bool
	skipdup    *bool
	shader     *string
	osd        *bool
	profile    *string
	prefs      *string
	savePrefs  *bool

	width  *int
	height *int
	hz     *float64
	frames *int
	repeat *int
	wide   *bool

	dump        *bool
	dumpProfile *string
	dumpDir     *string

	log    *bool
	memviz *string
}

func addCommonFlags(md *modalflag.Modes, defaultFrames int) *commonFlags {
	return &commonFlags{
		aspect:     md.AddString("aspect", "auto", "aspect mode: auto, normal, wide, stretch"),
		crop:       md.AddBool("crop", false, "crop to standard aspect ratio"),
		stereo:     md.AddString("stereo", "off", "stereo mode: off, sbs, tab, quad"),
		widescreen: md.AddBool("widescreenhack", false, "project widescreen content to the full draw area"),
		skipdup:    md.AddBool("skipdup", true, "do not present duplicate frames"),
		shader:     md.AddString("shader", "", "post-processing shader"),
		osd:        md.AddBool("osd", true, "show on-screen messages"),
		profile:    md.AddString("profile", "", "YAML file of presentation preferences"),
		prefs:      md.AddString("prefs", "", "preferences overrides, eg. \"display.crop::true; osd.scale::1.5\""),
		savePrefs:  md.AddBool("saveprefs", false, "save preferences on exit"),

		width:  md.AddInt("width", 640, "width of test card frames"),
		height: md.AddInt("height", 480, "height of test card frames"),
		hz:     md.AddFloat64("hz", 60, "test card frame rate"),
		frames: md.AddInt("frames", defaultFrames, "number of frames to produce (0 is unlimited)"),
		repeat: md.AddInt("repeat", 1, "number of times each test card image is repeated"),
		wide:   md.AddBool("wide", false, "test card content is widescreen"),

		dump:        md.AddBool("dump", false, "dump presented frames to a video file with ffmpeg"),
		dumpProfile: md.AddString("dumpprofile", string(video.ProfileFast), "ffmpeg profile: FAST, 1080, YouTube1080, YouTube4k"),
		dumpDir:     md.AddString("dumpdir", "", "directory for frame dumps"),

		log:    md.AddBool("log", false, "echo log to stdout"),
		memviz: md.AddString("memviz", "", "write graphviz dump of the presentation layout to file on exit"),
	}
}

// environment creates the presentation environment. Preferences are loaded
// from disk and then overridden by the profile file and by any flags that
// have been set on the command line.
func (f *commonFlags) environment(md *modalflag.Modes) (*environment.Environment, error) {
	if *f.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	pth, err := resources.JoinPath(config.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}

	prf, err := config.NewPreferences(pth)
	if *f.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "main", "unused preferences: %s", unused)
		}
	}
	if err != nil {
		return nil, err
	}

	err = prf.Load()
	if err != nil {
		return nil, err
	}

	if *f.profile != "" {
		err = prf.LoadYAML(*f.profile)
		if err != nil {
			return nil, err
		}
	}

	// flags that have been set explicitly take priority
	set := map[string]func() error{
		"aspect":         func() error { return prf.Aspect.Set(*f.aspect) },
		"crop":           func() error { return prf.Crop.Set(*f.crop) },
		"stereo":         func() error { return prf.Stereo.Set(*f.stereo) },
		"widescreenhack": func() error { return prf.WidescreenHack.Set(*f.widescreen) },
		"skipdup":        func() error { return prf.SkipDuplicateFrames.Set(*f.skipdup) },
		"shader":         func() error { return prf.PostProcessingShader.Set(*f.shader) },
		"osd":            func() error { return prf.OSDMessages.Set(*f.osd) },
	}
	for flag, fn := range set {
		if md.IsSet(flag) {
			if err := fn(); err != nil {
				return nil, fmt.Errorf("-%s: %w", flag, err)
			}
		}
	}

	// changes made before the presenter exists are not changes
	prf.TakeChanges()

	return environment.NewEnvironment(environment.MainPresentation, prf, nil), nil
}

func (f *commonFlags) card(unlimited bool) testcard.Options {
	return testcard.Options{
		Width:      *f.width,
		Height:     *f.height,
		Hz:         float32(*f.hz),
		Unlimited:  unlimited,
		Repeat:     *f.repeat,
		Frames:     *f.frames,
		Widescreen: *f.wide,
	}
}

// enableDump starts the frame dumper if requested.
func (f *commonFlags) enableDump(dumper *video.FFMPEG, label string) error {
	if !*f.dump {
		return nil
	}

	profile, err := video.ParseProfile(*f.dumpProfile)
	if err != nil {
		return err
	}

	return dumper.Enable(true, video.Session{
		Dir:       *f.dumpDir,
		Label:     label,
		Profile:   profile,
		Hz:        float32(*f.hz),
		Log:       os.Stdout,
		LastFrame: *f.frames,
	})
}

// finish saves preferences and writes the memviz file if requested.
func (f *commonFlags) finish(env *environment.Environment, state any) error {
	if *f.savePrefs {
		if err := env.Prefs.Save(); err != nil {
			return err
		}
	}

	if *f.memviz != "" {
		out, err := os.Create(*f.memviz)
		if err != nil {
			return err
		}
		defer out.Close()
		memviz.Map(out, state)
		logger.Logf(env, "main", "memviz written to %s", *f.memviz)
	}

	return nil
}
