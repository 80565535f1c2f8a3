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

package presenter

import (
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/presentation/assert"
	"github.com/jetsetilly/presentation/config"
	"github.com/jetsetilly/presentation/curated"
	"github.com/jetsetilly/presentation/environment"
	"github.com/jetsetilly/presentation/frame"
	"github.com/jetsetilly/presentation/geometry"
	"github.com/jetsetilly/presentation/logger"
)

// Sentinel error patterns.
const (
	MissingCollaborator = "presenter: missing collaborator (%s)"
	InvalidFrame        = "presenter: invalid frame: %s"
)

// Presenter draws submitted frames to the backbuffer.
type Presenter struct {
	env *environment.Environment

	backend  Backend
	post     PostProcessor
	overlay  Overlay
	dumper   FrameDumper
	host     Host
	source   Source
	headless bool

	// the goroutine that owns the graphics context
	owner assert.Owner

	// the fields below are only accessed by the presentation goroutine
	backbuffer SurfaceInfo
	target     geometry.Rectangle

	// the most recently submitted frame. the content lock is held until the
	// next frame is submitted or until Destroy()
	xfb     frame.Lease
	xfbRect geometry.Rectangle

	lastID    uint64
	presented bool

	lastWindowWidth  int
	lastWindowHeight int

	// held while presenting the backbuffer and while the surface is being
	// changed
	swap sync.Mutex

	// pending surface changes. set by any goroutine and serviced by the
	// presentation goroutine
	crit struct {
		section          sync.Mutex
		newSurfaceHandle SurfaceHandle
	}
	surfaceChanged atomic.Bool
	surfaceResized atomic.Bool
}

// NewPresenter is the preferred method of initialisation for the Presenter
// type.
func NewPresenter(env *environment.Environment, c Collaborators) (*Presenter, error) {
	if c.Backend == nil {
		return nil, curated.Errorf(MissingCollaborator, "backend")
	}
	if c.PostProcessor == nil {
		return nil, curated.Errorf(MissingCollaborator, "post-processor")
	}
	if c.Overlay == nil {
		return nil, curated.Errorf(MissingCollaborator, "overlay")
	}

	p := &Presenter{
		env:      env,
		backend:  c.Backend,
		post:     c.PostProcessor,
		overlay:  c.Overlay,
		dumper:   c.FrameDumper,
		host:     c.Host,
		source:   c.Source,
		headless: c.Backend.IsHeadless(),
	}

	return p, nil
}

// Initialize must be called from the goroutine that owns the graphics context.
// That goroutine becomes the only goroutine allowed to present frames.
func (p *Presenter) Initialize() error {
	p.owner.Claim()

	p.updateDrawRectangle()
	if !p.headless {
		p.SetBackbuffer(p.backend.SurfaceInfo())
	}

	shader := p.env.Prefs.PostProcessingShader.String()
	if p.post.Shader() != shader {
		p.post.RecompileShader(shader)
	}

	p.overlay.BeginFrame(p.backbuffer.Width, p.backbuffer.Height)

	if p.headless {
		logger.Log(p.env, "presenter", "initialised headless")
	} else {
		logger.Logf(p.env, "presenter", "initialised with surface %s", p.backbuffer)
	}

	return nil
}

// Destroy releases the most recently submitted frame. The presenter should
// not be used after Destroy() has been called.
func (p *Presenter) Destroy() {
	p.owner.Check("Destroy")
	p.xfb.Release()
	p.xfb = frame.Lease{}

	// cursor input is no longer adjusted for the draw area
	if p.source != nil {
		p.source.SetCursorAspect(1)
	}

	p.owner.Release()
}

// layout returns the inputs for the geometry functions.
func (p *Presenter) layout() geometry.Layout {
	l := geometry.Layout{
		Config:           p.env.Prefs.Geometry(),
		BackbufferWidth:  p.backbuffer.Width,
		BackbufferHeight: p.backbuffer.Height,
	}
	if p.source != nil {
		l.SourceAspect = p.source.Aspect()
		l.GameWidescreen = p.source.IsWidescreen()
	}
	return l
}

// Layout returns the current inputs of the geometry functions.
func (p *Presenter) Layout() geometry.Layout {
	return p.layout()
}

// updateDrawRectangle recalculates the target rectangle and tells the source
// about the projection and cursor adjustments for the new geometry.
func (p *Presenter) updateDrawRectangle() {
	l := p.layout()

	if p.source != nil {
		p.source.SetAspectHack(l.AspectHack())
		p.source.SetCursorAspect(l.CursorAspectAdjustment())
	}

	p.target = l.TargetRectangle()
}

// updateOSDScale sets the scale of the on-screen message layout.
func (p *Presenter) updateOSDScale() {
	s := float32(p.env.Prefs.OSDScale.Get().(float64))
	if p.backbuffer.Scale > 0 {
		s *= p.backbuffer.Scale
	}
	p.env.OSD.SetScale(s, s)
}

// CheckForConfigChanges reacts to preferences that have changed. Use the
// value returned by config.Preferences.TakeChanges().
func (p *Presenter) CheckForConfigChanges(changes config.ChangeBits) {
	p.owner.Check("CheckForConfigChanges")

	// the shader must not be in use when it is destroyed
	shader := p.env.Prefs.PostProcessingShader.String()
	if changes.Has(config.ChangeShader) || p.post.Shader() != shader {
		p.backend.WaitForGPUIdle()
		p.post.RecompileShader(shader)
		logger.Logf(p.env, "presenter", "post-processing shader: %q", shader)
	}

	// stereo mode changes the pipelines of both the overlay and the
	// post-processor
	if changes.Has(config.ChangeStereo) {
		p.overlay.RecompilePipeline()
		p.post.RecompilePipeline()
	}

	if changes.Has(config.ChangeAspect | config.ChangeCrop | config.ChangeWidescreenHack) {
		p.updateDrawRectangle()
	}

	if changes.Has(config.ChangeOSD) {
		p.updateOSDScale()
	}
}

// TargetRectangle returns the area of the backbuffer frames are drawn to.
func (p *Presenter) TargetRectangle() geometry.Rectangle {
	return p.target
}

// Backbuffer returns information about the current backbuffer.
func (p *Presenter) Backbuffer() SurfaceInfo {
	return p.backbuffer
}

// LastPresentedID returns the ID of the most recently presented frame. The
// boolean is false if no frame has been presented.
func (p *Presenter) LastPresentedID() (uint64, bool) {
	return p.lastID, p.presented
}
