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

package sdlhost

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/presentation/curated"
	"github.com/jetsetilly/presentation/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinel errors.
const (
	SDLError = "sdl: %v"
)

// Options for a new Host.
type Options struct {
	Title  string
	Width  int
	Height int

	// request a GL context with separate left and right back buffers
	Stereo bool

	// synchronise buffer swaps with the vertical retrace
	VSync bool
}

// Sink receives the events serviced by the host. It is implemented by the
// presenter.
type Sink interface {
	ResizeSurface()
	SetKey(key uint32, down bool, chars string)
	SetMousePos(x, y float32)
	SetMousePress(buttons uint32)
}

// Host is an SDL window with an OpenGL context.
type Host struct {
	perm      logger.Permission
	window    *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode

	// the most recent size requested by RequestRenderWindowSize()
	requestW, requestH int

	fullScreen bool
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost(perm logger.Permission, opts Options) (*Host, error) {
	if perm == nil {
		perm = logger.Allow
	}

	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	type attr struct {
		attr  sdl.GLattr
		value int
	}
	attrs := []attr{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	if opts.Stereo {
		attrs = append(attrs, attr{sdl.GL_STEREO, 1})
	}
	for _, a := range attrs {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, curated.Errorf(SDLError, err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(perm, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	h := &Host{
		perm: perm,
	}

	h.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}
	logger.Logf(perm, "sdl", "refresh rate: %dHz", h.mode.RefreshRate)

	w, ht := opts.Width, opts.Height
	if w <= 0 || ht <= 0 {
		w = int(float32(h.mode.W) * 0.80)
		ht = int(float32(h.mode.H) * 0.80)
	}

	title := opts.Title
	if title == "" {
		title = "presentation"
	}

	h.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(w), int32(ht),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	h.glContext, err = h.window.GLCreateContext()
	if err != nil {
		_ = h.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	err = h.MakeCurrent()
	if err != nil {
		_ = h.Destroy()
		return nil, err
	}

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	logger.Logf(perm, "sdl", "using GL version %d.%d core", major, minor)

	if opts.Stereo {
		if stereo, _ := sdl.GLGetAttribute(sdl.GL_STEREO); stereo == 0 {
			logger.Log(perm, "sdl", "quad buffered stereo not available")
		}
	}

	interval := 0
	if opts.VSync {
		interval = 1
	}
	err = sdl.GLSetSwapInterval(interval)
	if err != nil {
		logger.Logf(perm, "sdl", "GLSetSwapInterval(%d): %v", interval, err)
	}

	sdl.StartTextInput()

	return h, nil
}

// Destroy the window and quit SDL.
func (h *Host) Destroy() error {
	if h.glContext != nil {
		sdl.GLDeleteContext(h.glContext)
		h.glContext = nil
	}
	if h.window != nil {
		err := h.window.Destroy()
		if err != nil {
			return curated.Errorf(SDLError, err)
		}
		h.window = nil
	}
	sdl.Quit()
	return nil
}

// QuadBuffered returns true if the GL context has separate left and right
// back buffers.
func (h *Host) QuadBuffered() bool {
	stereo, err := sdl.GLGetAttribute(sdl.GL_STEREO)
	return err == nil && stereo != 0
}

// RefreshRate of the display the window was created on.
func (h *Host) RefreshRate() float32 {
	return float32(h.mode.RefreshRate)
}

// SetTitle changes the window title.
func (h *Host) SetTitle(title string) {
	h.window.SetTitle(title)
}

// RequestRenderWindowSize implements the presenter.Host interface. The
// request is ignored when the window is full screen.
func (h *Host) RequestRenderWindowSize(width, height int) {
	if h.fullScreen || width <= 0 || height <= 0 {
		return
	}
	if width == h.requestW && height == h.requestH {
		return
	}
	h.requestW = width
	h.requestH = height

	// the requested size is in pixels and the window size is in window
	// coordinates
	s := h.Scale()
	h.window.SetSize(int32(float32(width)/s), int32(float32(height)/s))
	logger.Logf(h.perm, "sdl", "window size requested: %dx%d", width, height)
}

// SetFullScreen toggles the full screen state of the window.
func (h *Host) SetFullScreen(fullScreen bool) {
	if fullScreen {
		_ = h.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		_ = h.window.SetFullscreen(0)
	}
	h.fullScreen = fullScreen

	// a short delay gives the system time to make the changes to the full
	// screen state
	<-time.After(100 * time.Millisecond)
}

// WindowSize returns the size of the window in window coordinates.
func (h *Host) WindowSize() (int, int) {
	w, ht := h.window.GetSize()
	return int(w), int(ht)
}

// DrawableSize implements the glbackend.Surface interface.
func (h *Host) DrawableSize() (int, int) {
	w, ht := h.window.GLGetDrawableSize()
	return int(w), int(ht)
}

// Scale implements the glbackend.Surface interface.
func (h *Host) Scale() float32 {
	w, _ := h.window.GetSize()
	dw, _ := h.window.GLGetDrawableSize()
	if w <= 0 || dw <= 0 {
		return 1.0
	}
	return float32(dw) / float32(w)
}

// MakeCurrent implements the glbackend.Surface interface.
func (h *Host) MakeCurrent() error {
	err := h.window.GLMakeCurrent(h.glContext)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}
	return nil
}

// Swap implements the glbackend.Surface interface.
func (h *Host) Swap() {
	h.window.GLSwap()
}

// KeyMap pairs ImGui keys with the SDL scancodes forwarded by Service().
func (h *Host) KeyMap() [][2]int {
	return [][2]int{
		{imgui.KeyTab, sdl.SCANCODE_TAB},
		{imgui.KeyLeftArrow, sdl.SCANCODE_LEFT},
		{imgui.KeyRightArrow, sdl.SCANCODE_RIGHT},
		{imgui.KeyUpArrow, sdl.SCANCODE_UP},
		{imgui.KeyDownArrow, sdl.SCANCODE_DOWN},
		{imgui.KeyPageUp, sdl.SCANCODE_PAGEUP},
		{imgui.KeyPageDown, sdl.SCANCODE_PAGEDOWN},
		{imgui.KeyHome, sdl.SCANCODE_HOME},
		{imgui.KeyEnd, sdl.SCANCODE_END},
		{imgui.KeyInsert, sdl.SCANCODE_INSERT},
		{imgui.KeyDelete, sdl.SCANCODE_DELETE},
		{imgui.KeyBackspace, sdl.SCANCODE_BACKSPACE},
		{imgui.KeySpace, sdl.SCANCODE_SPACE},
		{imgui.KeyEnter, sdl.SCANCODE_RETURN},
		{imgui.KeyEscape, sdl.SCANCODE_ESCAPE},
		{imgui.KeyA, sdl.SCANCODE_A},
		{imgui.KeyC, sdl.SCANCODE_C},
		{imgui.KeyV, sdl.SCANCODE_V},
		{imgui.KeyX, sdl.SCANCODE_X},
		{imgui.KeyY, sdl.SCANCODE_Y},
		{imgui.KeyZ, sdl.SCANCODE_Z},
	}
}

// Event is a keyboard event that the host does not consume itself.
type Event struct {
	Scancode sdl.Scancode
	Down     bool
}

// Service polls SDL for events and forwards them to the sink. Key presses
// are also returned so that the caller can act on them. Returns false if the
// window has been closed.
func (h *Host) Service(sink Sink) ([]Event, bool) {
	var keys []Event
	running := true

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			running = false

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				sink.ResizeSurface()
			case sdl.WINDOWEVENT_CLOSE:
				running = false
			}

		case *sdl.TextInputEvent:
			sink.SetKey(0, true, strings.TrimRight(string(ev.Text[:]), "\x00"))

		case *sdl.KeyboardEvent:
			down := ev.Type == sdl.KEYDOWN
			sink.SetKey(uint32(ev.Keysym.Scancode), down, "")
			if ev.Repeat == 0 {
				keys = append(keys, Event{Scancode: ev.Keysym.Scancode, Down: down})
			}
		}
	}

	// mouse position is in window coordinates
	x, y, state := sdl.GetMouseState()
	sink.SetMousePos(float32(x), float32(y))

	var buttons uint32
	for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
		if state&sdl.Button(button) != 0 {
			buttons |= 1 << i
		}
	}
	sink.SetMousePress(buttons)

	return keys, running
}

func (h *Host) String() string {
	w, ht := h.DrawableSize()
	return fmt.Sprintf("sdl window %dx%d", w, ht)
}
