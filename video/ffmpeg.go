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

package video

import (
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/jetsetilly/presentation/curated"
	"github.com/jetsetilly/presentation/frame"
	"github.com/jetsetilly/presentation/geometry"
	"github.com/jetsetilly/presentation/logger"
	"github.com/jetsetilly/presentation/notifications"
	"github.com/jetsetilly/presentation/resources"
	xdraw "golang.org/x/image/draw"
)

// Sentinel errors.
const (
	FFmpegUnavailable = "ffmpeg: not installed"
	UnknownProfile    = "ffmpeg: unknown profile: %s"
	EncoderError      = "ffmpeg: %v"
)

type Profile string

const (
	ProfileFast        Profile = "FAST"
	Profile1080        Profile = "1080"
	ProfileYouTube1080 Profile = "YouTube1080"
	ProfileYouTube4k   Profile = "YouTube4k"
)

// Session is used to configure the dump on the call to Enable()
type Session struct {
	// the directory in which the dump files are created. the current
	// directory if empty
	Dir string

	// label included in the dump filename
	Label string

	Profile Profile

	// frame rate of the incoming frames. 60 if zero
	Hz float32

	// progress is written to Log if it is not nil
	Log io.Writer

	// LastFrame is the expected number of frames. used for progress output
	LastFrame int
}

// Encoder receives raw RGBA frames. Close() must wait for the encoding to
// complete.
type Encoder interface {
	io.Writer
	Close() error
}

// EncoderFactory creates an Encoder that writes to the named file.
type EncoderFactory func(filename string, args []string) (Encoder, error)

// FFMPEG implements the presenter's FrameDumper interface by writing frames to
// a running ffmpeg process.
//
// Frames are scaled to the dump geometry. A change in the dump geometry
// closes the current file and starts a new one.
type FFMPEG struct {
	perm   logger.Permission
	notify notifications.Notify

	factory EncoderFactory

	crit struct {
		section sync.Mutex

		// session configuration set during the Enable() function
		conf    Session
		enabled bool
	}

	// the fields below are only accessed by the presentation goroutine
	encoder  Encoder
	filename string
	width    int
	height   int
	segment  int

	// the time the recording started
	start time.Time

	pixels *image.RGBA

	frames            int
	lastFrameRendered int
	firstTicks        uint64
	lastTicks         uint64
}

// NewFFMPEG is the preferred method of initialisation for the FFMPEG type.
// The notify argument can be nil.
func NewFFMPEG(perm logger.Permission, notify notifications.Notify) *FFMPEG {
	if perm == nil {
		perm = logger.Allow
	}
	return &FFMPEG{
		perm:   perm,
		notify: notify,
	}
}

// SetEncoderFactory replaces the function that starts the ffmpeg process.
// Must be called before Enable().
func (vid *FFMPEG) SetEncoderFactory(f EncoderFactory) {
	vid.factory = f
}

// Enable or disable dumping. Disabling closes the current dump file.
func (vid *FFMPEG) Enable(enable bool, conf Session) error {
	if enable {
		if conf.Profile == "" {
			conf.Profile = ProfileFast
		}
		if _, err := profileArgs(conf.Profile); err != nil {
			return err
		}

		// check that ffmpeg is available in the executable path
		if vid.factory == nil {
			if _, err := exec.LookPath("ffmpeg"); err != nil {
				return curated.Errorf(FFmpegUnavailable)
			}
		}
	}

	vid.crit.section.Lock()
	defer vid.crit.section.Unlock()
	vid.crit.conf = conf
	vid.crit.enabled = enable

	return nil
}

// IsActive implements the presenter.FrameDumper interface.
func (vid *FFMPEG) IsActive() bool {
	vid.crit.section.Lock()
	defer vid.crit.section.Unlock()
	return vid.crit.enabled
}

func (vid *FFMPEG) session() (Session, bool) {
	vid.crit.section.Lock()
	defer vid.crit.section.Unlock()
	return vid.crit.conf, vid.crit.enabled
}

// IsRecording returns true if a dump file is open.
func (vid *FFMPEG) IsRecording() bool {
	return vid.encoder != nil
}

// Filename of the current or most recent dump file.
func (vid *FFMPEG) Filename() string {
	return vid.filename
}

// Frames returns the number of frames written to the current or most recent
// dump file.
func (vid *FFMPEG) Frames() int {
	return vid.frames
}

// DumpFrame implements the presenter.FrameDumper interface. The source area
// of the texture is scaled to the size of the target rectangle.
func (vid *FFMPEG) DumpFrame(tex frame.Texture, source geometry.Rectangle, target geometry.Rectangle, ticks uint64, frameCount int) {
	conf, enabled := vid.session()
	if !enabled {
		if vid.encoder != nil {
			vid.Destroy()
		}
		return
	}

	src, ok := tex.(image.Image)
	if !ok {
		logger.Logf(vid.perm, "ffmpeg", "unsupported texture type (%T)", tex)
		return
	}

	// ffmpeg requires even dimensions
	w := target.Normalised().Width() &^ 1
	h := target.Normalised().Height() &^ 1
	if w <= 0 || h <= 0 {
		return
	}

	if vid.encoder != nil && (w != vid.width || h != vid.height) {
		logger.Logf(vid.perm, "ffmpeg", "frame size changed from %dx%d to %dx%d", vid.width, vid.height, w, h)
		vid.Destroy()
		vid.segment++
	}

	if vid.encoder == nil {
		if err := vid.begin(conf, w, h); err != nil {
			logger.Log(vid.perm, "ffmpeg", err)
			vid.post(fmt.Sprintf("Frame dump failed: %v", err))

			vid.crit.section.Lock()
			vid.crit.enabled = false
			vid.crit.section.Unlock()
			return
		}
		vid.firstTicks = ticks
	}

	if vid.frames > 0 && frameCount <= vid.lastFrameRendered {
		return
	}
	vid.lastFrameRendered = frameCount
	vid.lastTicks = ticks

	if conf.Log != nil {
		if frameCount > conf.LastFrame {
			fmt.Fprintf(conf.Log, "frame %d\r", frameCount)
		} else {
			fmt.Fprintf(conf.Log, "frame %d of %d\r", frameCount, conf.LastFrame)
		}
	}

	sr := source.Normalised().Image().Add(src.Bounds().Min)
	xdraw.ApproxBiLinear.Scale(vid.pixels, vid.pixels.Bounds(), src, sr, xdraw.Src, nil)
	if source.Height() < 0 {
		frame.FlipVertical(vid.pixels, vid.pixels.Bounds())
	}

	if _, err := vid.encoder.Write(vid.pixels.Pix); err != nil {
		logger.Log(vid.perm, "ffmpeg", curated.Errorf(EncoderError, err))
		vid.Destroy()
		return
	}
	vid.frames++
}

func (vid *FFMPEG) begin(conf Session, width, height int) error {
	opts, err := profileArgs(conf.Profile)
	if err != nil {
		return err
	}

	hz := conf.Hz
	if hz <= 0 {
		hz = 60
	}

	name := resources.UniqueFilename("framedump", conf.Label)
	if vid.segment > 0 {
		name = fmt.Sprintf("%s_%d", name, vid.segment)
	}
	filename := filepath.Join(conf.Dir, fmt.Sprintf("%s.mp4", name))

	args := []string{
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", width, height),
		"-r", fmt.Sprintf("%.02f", hz), // incoming frame rate
		"-i", "-", // stdin pipe
	}
	args = append(args, opts...)
	args = append(args,
		"-v", "error", // less noisy output from the ffmpeg command
		"-y", // always overwrite output file
		filename,
	)

	factory := vid.factory
	if factory == nil {
		factory = execEncoder
	}

	vid.encoder, err = factory(filename, args)
	if err != nil {
		return curated.Errorf(EncoderError, err)
	}

	vid.filename = filename
	vid.width = width
	vid.height = height
	vid.pixels = image.NewRGBA(image.Rect(0, 0, width, height))
	vid.frames = 0
	vid.lastFrameRendered = 0
	vid.start = time.Now()

	logger.Logf(vid.perm, "ffmpeg", "dumping %dx%d frames to %s", width, height, filename)
	vid.post(fmt.Sprintf("Frame dump started: %s", filepath.Base(filename)))

	return nil
}

// Destroy closes the current dump file.
func (vid *FFMPEG) Destroy() {
	if vid.encoder == nil {
		return
	}

	if err := vid.encoder.Close(); err != nil {
		logger.Log(vid.perm, "ffmpeg", curated.Errorf(EncoderError, err))
	}
	vid.encoder = nil
	vid.pixels = nil

	conf, _ := vid.session()
	summary := fmt.Sprintf("%d frames recorded in%s", vid.frames, duration(time.Since(vid.start)))
	if conf.Log != nil {
		fmt.Fprintln(conf.Log, summary)
	}
	logger.Logf(vid.perm, "ffmpeg", "%s (ticks %d to %d)", summary, vid.firstTicks, vid.lastTicks)
	vid.post(fmt.Sprintf("Frame dump stopped: %s", filepath.Base(vid.filename)))
}

func (vid *FFMPEG) post(text string) {
	if vid.notify != nil {
		_ = vid.notify.Notify(notifications.NotifyFrameDump, text)
	}
}

// duration formats the time for the recording summary
func duration(d time.Duration) string {
	hrs := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	secs := int(d.Seconds()) % 60

	var dur strings.Builder
	if hrs > 0 {
		fmt.Fprintf(&dur, " %dhr", hrs)
		if hrs > 1 {
			fmt.Fprintf(&dur, "s")
		}
	}
	if mins > 0 {
		fmt.Fprintf(&dur, " %dmin", mins)
		if mins > 1 {
			fmt.Fprintf(&dur, "s")
		}
	}
	if secs > 0 || dur.Len() == 0 {
		fmt.Fprintf(&dur, " %dsec", secs)
		if secs != 1 {
			fmt.Fprintf(&dur, "s")
		}
	}
	return dur.String()
}

func profileArgs(profile Profile) ([]string, error) {
	switch profile {
	case ProfileFast:
		return []string{
			"-crf", "18", // amount of compression. 12 and higher starts to lose colour fidelity
			"-preset", "fast", // the amount of time spent optimising compression between frames
			"-pix_fmt", "yuv420p",
		}, nil
	case Profile1080:
		return []string{
			"-crf", "11",
			"-preset", "medium",
			"-pix_fmt", "yuv420p",
			"-vf", "scale=-2:1080,pad=1920:1080:(ow-iw)/2:(oh-ih)/2",
		}, nil
	case ProfileYouTube1080:
		return []string{
			"-c:v", "libx264",
			"-preset", "slow",
			"-pix_fmt", "yuv420p10le",
			"-crf", "15", // 15 is a good value for yuv420p10le
			"-profile:v", "high10",
			"-vf", "scale=-2:1080,pad=1920:1080:(ow-iw)/2:(oh-ih)/2",
		}, nil
	case ProfileYouTube4k:
		return []string{
			"-c:v", "libx264",
			"-preset", "slow",
			"-pix_fmt", "yuv420p10le",
			"-crf", "15",
			"-profile:v", "high10",
			"-vf", "scale=-2:2160,pad=3840:2160:(ow-iw)/2:(oh-ih)/2",
		}, nil
	}
	return nil, curated.Errorf(UnknownProfile, profile)
}

// ParseProfile returns the Profile with the name. The name is not case
// sensitive.
func ParseProfile(s string) (Profile, error) {
	for _, p := range []Profile{ProfileFast, Profile1080, ProfileYouTube1080, ProfileYouTube4k} {
		if strings.EqualFold(s, string(p)) {
			return p, nil
		}
	}
	return "", curated.Errorf(UnknownProfile, s)
}

// the running ffmpeg command and the data pipe to it
type process struct {
	cmd  *exec.Cmd
	pipe io.WriteCloser
}

func execEncoder(_ string, args []string) (Encoder, error) {
	p := &process{
		cmd: exec.Command("ffmpeg", args...),
	}

	var err error
	p.pipe, err = p.cmd.StdinPipe()
	if err != nil {
		return nil, err
	}

	p.cmd.Stderr = os.Stderr
	p.cmd.Stdout = os.Stdout

	if err := p.cmd.Start(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *process) Write(b []byte) (int, error) {
	return p.pipe.Write(b)
}

func (p *process) Close() error {
	p.pipe.Close()
	return p.cmd.Wait()
}
