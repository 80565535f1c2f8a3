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
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/presentation/curated"
	"github.com/jetsetilly/presentation/frame"
	"github.com/jetsetilly/presentation/geometry"
	"github.com/jetsetilly/presentation/notifications"
	"github.com/jetsetilly/presentation/test"
)

type encoder struct {
	filename string
	args     []string
	buf      bytes.Buffer
	closed   bool
}

func (e *encoder) Write(b []byte) (int, error) { return e.buf.Write(b) }
func (e *encoder) Close() error {
	e.closed = true
	return nil
}

type notices []string

func (n *notices) Notify(notice notifications.Notice, text string) error {
	*n = append(*n, string(notice)+": "+text)
	return nil
}

func newDumper(t *testing.T) (*FFMPEG, *[]*encoder, *notices) {
	t.Helper()
	var encs []*encoder
	var n notices
	vid := NewFFMPEG(nil, &n)
	vid.SetEncoderFactory(func(filename string, args []string) (Encoder, error) {
		e := &encoder{filename: filename, args: args}
		encs = append(encs, e)
		return e, nil
	})
	return vid, &encs, &n
}

func texture(w, h int, top, bottom color.Color) *frame.ImageTexture {
	tex := frame.NewImageTexture(w, h)
	draw.Draw(tex, image.Rect(0, 0, w, h/2), image.NewUniform(top), image.Point{}, draw.Src)
	draw.Draw(tex, image.Rect(0, h/2, w, h), image.NewUniform(bottom), image.Point{}, draw.Src)
	return tex
}

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

func TestInactive(t *testing.T) {
	vid, encs, _ := newDumper(t)
	test.ExpectFailure(t, vid.IsActive())

	vid.DumpFrame(texture(4, 4, red, blue), geometry.NewRectangle(4, 4), geometry.NewRectangle(4, 4), 0, 0)
	test.ExpectEquality(t, len(*encs), 0)
	test.ExpectFailure(t, vid.IsRecording())
}

func TestDump(t *testing.T) {
	vid, encs, n := newDumper(t)
	dir := t.TempDir()
	test.DemandSuccess(t, vid.Enable(true, Session{Dir: dir, Label: "test"}))
	test.ExpectSuccess(t, vid.IsActive())

	tex := texture(320, 240, red, blue)
	src := geometry.NewRectangle(320, 240)
	tgt := geometry.Rectangle{Left: 240, Top: 0, Right: 1680, Bottom: 1080}

	vid.DumpFrame(tex, src, tgt, 100, 1)
	vid.DumpFrame(tex, src, tgt, 200, 2)
	test.ExpectSuccess(t, vid.IsRecording())
	test.ExpectEquality(t, vid.Frames(), 2)

	test.DemandEquality(t, len(*encs), 1)
	e := (*encs)[0]
	test.ExpectEquality(t, e.buf.Len(), 1440*1080*4*2)
	test.ExpectSuccess(t, strings.HasPrefix(e.filename, dir))
	test.ExpectSuccess(t, strings.Contains(e.filename, "framedump_test_"))
	test.ExpectSuccess(t, strings.Contains(strings.Join(e.args, " "), "-s 1440x1080"))

	// the first pixel is from the top of the texture
	test.ExpectEquality(t, string(e.buf.Bytes()[:4]), "\xff\x00\x00\xff")

	vid.Destroy()
	test.ExpectSuccess(t, e.closed)
	test.ExpectFailure(t, vid.IsRecording())

	test.DemandEquality(t, len(*n), 2)
	test.ExpectSuccess(t, strings.HasPrefix((*n)[0], "NotifyFrameDump: Frame dump started"))
	test.ExpectSuccess(t, strings.HasPrefix((*n)[1], "NotifyFrameDump: Frame dump stopped"))
}

func TestRepeatedFrameCount(t *testing.T) {
	vid, encs, _ := newDumper(t)
	test.DemandSuccess(t, vid.Enable(true, Session{Dir: t.TempDir()}))

	tex := texture(4, 4, red, blue)
	r := geometry.NewRectangle(4, 4)
	vid.DumpFrame(tex, r, r, 0, 5)
	vid.DumpFrame(tex, r, r, 0, 5)
	vid.DumpFrame(tex, r, r, 0, 4)
	vid.DumpFrame(tex, r, r, 0, 6)
	test.ExpectEquality(t, vid.Frames(), 2)
	test.ExpectEquality(t, (*encs)[0].buf.Len(), 4*4*4*2)
}

func TestFlippedSource(t *testing.T) {
	vid, encs, _ := newDumper(t)
	test.DemandSuccess(t, vid.Enable(true, Session{Dir: t.TempDir()}))

	tex := texture(8, 8, red, blue)
	flipped := geometry.Rectangle{Left: 0, Top: 8, Right: 8, Bottom: 0}
	vid.DumpFrame(tex, flipped, geometry.NewRectangle(8, 8), 0, 0)

	b := (*encs)[0].buf.Bytes()
	test.ExpectEquality(t, string(b[:4]), "\x00\x00\xff\xff")
	test.ExpectEquality(t, string(b[len(b)-4:]), "\xff\x00\x00\xff")
}

func TestSizeChange(t *testing.T) {
	vid, encs, _ := newDumper(t)
	test.DemandSuccess(t, vid.Enable(true, Session{Dir: t.TempDir()}))

	tex := texture(8, 8, red, blue)
	vid.DumpFrame(tex, geometry.NewRectangle(8, 8), geometry.NewRectangle(640, 480), 0, 1)
	vid.DumpFrame(tex, geometry.NewRectangle(8, 8), geometry.NewRectangle(800, 600), 0, 2)

	// a new file is started
	test.DemandEquality(t, len(*encs), 2)
	test.ExpectSuccess(t, (*encs)[0].closed)
	test.ExpectFailure(t, (*encs)[1].closed)
	test.ExpectInequality(t, (*encs)[0].filename, (*encs)[1].filename)
	test.ExpectSuccess(t, strings.HasSuffix((*encs)[1].filename, "_1.mp4"))

	// odd sizes are made even
	vid.DumpFrame(tex, geometry.NewRectangle(8, 8), geometry.NewRectangle(801, 601), 0, 3)
	test.ExpectEquality(t, len(*encs), 2)
}

func TestDisable(t *testing.T) {
	vid, encs, _ := newDumper(t)
	test.DemandSuccess(t, vid.Enable(true, Session{Dir: t.TempDir()}))

	r := geometry.NewRectangle(4, 4)
	vid.DumpFrame(texture(4, 4, red, blue), r, r, 0, 0)
	test.DemandSuccess(t, vid.Enable(false, Session{}))
	test.ExpectFailure(t, vid.IsActive())

	// a dump while disabled closes the file
	vid.DumpFrame(texture(4, 4, red, blue), r, r, 0, 1)
	test.ExpectSuccess(t, (*encs)[0].closed)
}

func TestProfiles(t *testing.T) {
	vid, _, _ := newDumper(t)
	err := vid.Enable(true, Session{Profile: "VHS"})
	test.ExpectSuccess(t, curated.Is(err, UnknownProfile))
	test.ExpectFailure(t, vid.IsActive())

	p, err := ParseProfile("youtube4K")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, ProfileYouTube4k)

	_, err = ParseProfile("")
	test.ExpectFailure(t, err)
}

func TestDuration(t *testing.T) {
	test.ExpectEquality(t, duration(0), " 0secs")
	test.ExpectEquality(t, duration(time.Second), " 1sec")
	test.ExpectEquality(t, duration(61*time.Second), " 1min 1sec")
	test.ExpectEquality(t, duration(2*time.Hour+2*time.Minute), " 2hrs 2mins")
}
