// Package sheet composes portrait frames into a single sprite sheet and
// writes it out.
//
// Frames are laid out left to right, in the order they were added, with no
// padding between them. The resulting image is as tall as one frame.
package sheet

import (
	"image"
	"image/draw"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/portraits/frame"
)

// ErrFrameSize is returned when adding a frame of the wrong size.
var ErrFrameSize = errors.New("frame has the wrong size")

// Sheet is a row of equally sized frames.
type Sheet struct {
	Frame  frame.Size
	Frames []image.Image
}

// New returns an empty sheet of frames of size fs.
func New(fs frame.Size) *Sheet {
	return &Sheet{Frame: fs}
}

// Add appends img as the next frame.
func (s *Sheet) Add(img image.Image) error {
	if sz := img.Bounds().Size(); sz != s.Frame.Point() {
		return errors.Wrapf(ErrFrameSize, "got %v, want %v", sz, s.Frame)
	}
	s.Frames = append(s.Frames, img)
	return nil
}

// Len returns the number of frames.
func (s *Sheet) Len() int {
	return len(s.Frames)
}

// Size returns the size of the composited sheet.
func (s *Sheet) Size() image.Point {
	return image.Pt(s.Frame.W*len(s.Frames), s.Frame.H)
}

// Composite draws all frames onto a transparent canvas, frame i at
// (i*W, 0).
func (s *Sheet) Composite() *image.NRGBA {
	img := image.NewNRGBA(image.Rectangle{Max: s.Size()})
	for i, f := range s.Frames {
		dst := image.Rect(i*s.Frame.W, 0, (i+1)*s.Frame.W, s.Frame.H)
		draw.Draw(img, dst, f, f.Bounds().Min, draw.Src)
	}
	glog.V(1).Infof("sheet.Composite(): %d frames into %v", len(s.Frames), img.Bounds().Size())
	return img
}
