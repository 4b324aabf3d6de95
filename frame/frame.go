// Package frame cuts a single portrait frame out of an arbitrary source
// image.
//
// The source is scaled so that it covers the frame in both dimensions, and
// then a frame-sized rectangle is cut out of it. Horizontally the rectangle is
// centered; vertically it is placed so that the estimated eye line of the
// subject (by default one third down the source) lands one third down the
// frame.
package frame

import (
	"fmt"
	"image"
	"math"

	"github.com/pkg/errors"
)

// Size is the width and height of a frame, in pixels.
type Size struct {
	W, H int
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Point returns the size as an image.Point.
func (s Size) Point() image.Point {
	return image.Pt(s.W, s.H)
}

var (
	// Portrait is the canonical frame size the game client expects.
	Portrait = Size{W: 600, H: 900}
)

// EyeLine is where, as a fraction of the height, the eye line of a subject
// is assumed to sit in a typical portrait.
const EyeLine = 1.0 / 3

// ErrEmptySource is returned when the source image has no pixels.
var ErrEmptySource = errors.New("source image is empty")

// Geometry describes how a source of a certain size is turned into a frame.
type Geometry struct {
	// Resized is the size the source is scaled to before cropping.
	Resized image.Point
	// EyeY is the estimated eye line in the resized image.
	EyeY int
	// Crop is the rectangle cut out of the resized image.
	Crop image.Rectangle
}

// Compute returns the geometry for cropping a source of size src into a
// frame of size dst. It does not look at pixels.
func Compute(src image.Point, dst Size, eyeFrac float64) (Geometry, error) {
	if src.X <= 0 || src.Y <= 0 {
		return Geometry{}, errors.Wrapf(ErrEmptySource, "source is %dx%d", src.X, src.Y)
	}
	if dst.W <= 0 || dst.H <= 0 {
		return Geometry{}, fmt.Errorf("invalid frame size %s", dst)
	}

	iw, ih := float64(src.X), float64(src.Y)
	scale := math.Max(float64(dst.W)/iw, float64(dst.H)/ih)

	nw, nh := int(iw*scale), int(ih*scale)
	// Truncation may leave the scaled side a pixel short of the frame.
	if nw < dst.W {
		nw = dst.W
	}
	if nh < dst.H {
		nh = dst.H
	}

	eyeY := int(float64(nh) * eyeFrac)
	top := eyeY - dst.H/3
	if top < 0 {
		top = 0
	}
	left := (nw - dst.W) / 2

	// Keep the crop inside the resized image.
	if top+dst.H > nh {
		top = nh - dst.H
	}
	if left+dst.W > nw {
		left = nw - dst.W
	}

	return Geometry{
		Resized: image.Pt(nw, nh),
		EyeY:    eyeY,
		Crop:    image.Rect(left, top, left+dst.W, top+dst.H),
	}, nil
}
