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
	"fmt"

	"github.com/jetsetilly/presentation/logger"
	"github.com/jetsetilly/presentation/notifications"
)

// SetBackbufferSize changes the size of the backbuffer, keeping the scale and
// pixel format.
func (p *Presenter) SetBackbufferSize(width, height int) {
	p.backbuffer.Width = width
	p.backbuffer.Height = height
	p.updateDrawRectangle()
}

// SetBackbuffer replaces the backbuffer information.
func (p *Presenter) SetBackbuffer(info SurfaceInfo) {
	p.backbuffer = info
	p.updateDrawRectangle()
	p.updateOSDScale()
}

// ChangeSurface records that the display surface should be replaced. Can be
// called from any goroutine. The surface is replaced at the start of the next
// present.
func (p *Presenter) ChangeSurface(handle SurfaceHandle) {
	p.crit.section.Lock()
	defer p.crit.section.Unlock()
	p.crit.newSurfaceHandle = handle
	p.surfaceChanged.Store(true)
}

// ResizeSurface records that the display surface has changed size. Can be
// called from any goroutine.
func (p *Presenter) ResizeSurface() {
	p.crit.section.Lock()
	defer p.crit.section.Unlock()
	p.surfaceResized.Store(true)
}

// NewSurfaceHandle returns the handle recorded by ChangeSurface(). The handle
// is consumed and subsequent calls return nil until ChangeSurface() is called
// again.
func (p *Presenter) NewSurfaceHandle() SurfaceHandle {
	p.crit.section.Lock()
	defer p.crit.section.Unlock()
	h := p.crit.newSurfaceHandle
	p.crit.newSurfaceHandle = nil
	return h
}

// WithSwapLock runs the function with the swap lock held. The backbuffer is
// never presented while the function is running.
func (p *Presenter) WithSwapLock(f func()) {
	p.swap.Lock()
	defer p.swap.Unlock()
	f()
}

// serviceSurface applies pending surface changes. Called at the start of every
// present by the presentation goroutine.
func (p *Presenter) serviceSurface() {
	if p.headless {
		return
	}

	var changed bool

	if p.surfaceChanged.Swap(false) {
		h := p.NewSurfaceHandle()
		p.WithSwapLock(func() {
			p.backend.ChangeSurface(h)
		})
		changed = true
	}

	if p.surfaceResized.Swap(false) {
		p.WithSwapLock(func() {
			p.backend.ResizeSurface()
		})
		changed = true
	}

	if changed {
		p.SetBackbuffer(p.backend.SurfaceInfo())
		logger.Logf(p.env, "presenter", "surface %s", p.backbuffer)
		p.env.OSD.Notify(notifications.NotifySurface,
			fmt.Sprintf("Display %dx%d", p.backbuffer.Width, p.backbuffer.Height))
	}
}

// SetWindowSize asks the host to resize the window to fit a frame of the
// specified size. The host is only asked if the size is different from the
// previous request.
func (p *Presenter) SetWindowSize(width, height int) {
	w, h := p.layout().CalculateOutputDimensions(width, height)

	if w == p.lastWindowWidth && h == p.lastWindowHeight {
		return
	}

	p.lastWindowWidth = w
	p.lastWindowHeight = h

	if p.host != nil {
		p.host.RequestRenderWindowSize(w, h)
	}
}
