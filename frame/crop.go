package frame

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/golang/glog"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// Crop scales img to cover a frame of size dst using a Lanczos-3 filter, and
// cuts the frame out of it as described by Compute.
//
// The returned image always has bounds (0,0)-(dst.W,dst.H). The result only
// depends on the pixels of img.
func Crop(img image.Image, dst Size, eyeFrac float64) (*image.NRGBA, error) {
	g, err := Compute(img.Bounds().Size(), dst, eyeFrac)
	if err != nil {
		return nil, errors.Wrap(err, "computing crop geometry")
	}
	glog.V(2).Infof("frame.Crop(): %v -> resized %v, eye line %d, crop %v", img.Bounds().Size(), g.Resized, g.EyeY, g.Crop)

	resized := resize.Resize(uint(g.Resized.X), uint(g.Resized.Y), img, resize.Lanczos3)

	// resize hands back the source itself when no scaling is needed, and that
	// one need not be anchored at (0,0).
	out := imaging.Crop(resized, g.Crop.Add(resized.Bounds().Min))
	if out.Bounds().Size() != dst.Point() {
		return nil, errors.Errorf("cropped frame is %v, want %v", out.Bounds().Size(), dst)
	}
	return out, nil
}
