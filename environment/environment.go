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

package environment

import (
	"github.com/jetsetilly/presentation/config"
	"github.com/jetsetilly/presentation/osd"
)

// Label is used to name the environment
type Label string

// MainPresentation is the label of the presentation that owns the display.
// Other presentations exist for things like thumbnails and tests.
const MainPresentation = Label("")

// Environment is used to provide context for a presentation. The on-screen
// message queue and the preferences are owned by the environment and not by
// the process, so that more than one presentation can exist at the same time
type Environment struct {
	Label Label

	// the presentation preferences
	Prefs *config.Preferences

	// on-screen messages
	OSD *osd.Queue
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type.
//
// The prefs argument must not be nil. Providing the same Preferences
// instance to more than one environment allows the preferences of those
// environments to be synchronised. The clock argument can be nil.
func NewEnvironment(label Label, prefs *config.Preferences, clock osd.Clock) *Environment {
	env := &Environment{
		Label: label,
		Prefs: prefs,
	}

	env.OSD = osd.NewQueue(env, clock)
	env.OSD.SetEnabled(func() bool {
		return env.Prefs.OSDMessages.Get().(bool)
	})

	return env
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Prefs.SetDefaults()
	env.Prefs.TakeChanges()
	env.OSD.Clear()
}

// IsMainPresentation returns true if the environment is intended for the
// main presentation in the system
func (env *Environment) IsMainPresentation() bool {
	return env.Label == MainPresentation
}

// AllowLogging implements the logger.Permission interface. Only the main
// presentation is allowed to log.
func (env *Environment) AllowLogging() bool {
	return env.IsMainPresentation()
}
