package imageprint

import (
	"image"

	"github.com/golang/glog"
	"github.com/nfnt/resize"
)

// TermSize is the size of a terminal in cells and, where the terminal
// reports it, in pixels.
type TermSize struct {
	Cols, Rows     uint
	XPixel, YPixel uint
}

// fallbackTermSize is used when the terminal size cannot be determined.
var fallbackTermSize = TermSize{Cols: 80, Rows: 25}

// Fit shrinks img so that printing it in mode fits on the terminal. Images
// that already fit are returned as they are.
func Fit(img image.Image, mode Mode) image.Image {
	ts, err := GetTermSize()
	if err != nil {
		glog.V(1).Infof("imageprint.Fit(): no terminal size, assuming %dx%d: %v", fallbackTermSize.Cols, fallbackTermSize.Rows, err)
		ts = fallbackTermSize
	}
	return FitTo(img, mode, ts)
}

// FitTo is like Fit for a terminal of size ts.
func FitTo(img image.Image, mode Mode, ts TermSize) image.Image {
	var maxW, maxH uint
	switch {
	case mode.Cells():
		// Every pixel takes two cells horizontally.
		maxW, maxH = ts.Cols/2, ts.Rows
	case ts.XPixel != 0 && ts.YPixel != 0:
		maxW, maxH = ts.XPixel, ts.YPixel/2
	default:
		// Guess at a cell being roughly 8x16 pixels.
		maxW, maxH = ts.Cols*8, ts.Rows*8
	}
	if maxW == 0 || maxH == 0 {
		return img
	}
	return resize.Thumbnail(maxW, maxH, img, resize.Lanczos3)
}
