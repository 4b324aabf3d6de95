//go:build !windows

package imageprint

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/BourgeoisBear/rasterm"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/pkg/errors"
)

// PrintRasTerm draws an image using the RasTerm library.
//
// This enables drawing in kitty, iTerm2 and sixel capable terminals. Nothing
// is drawn if the terminal supports none of them.
func PrintRasTerm(w io.Writer, i image.Image) error {
	if rasterm.IsTermKitty() {
		if err := (rasterm.Settings{}).KittyWriteImage(w, i); err != nil {
			return errors.Wrap(err, "kitty preview")
		}
		fmt.Fprint(w, "\n")
		return nil
	}
	if rasterm.IsTermItermWez() {
		if err := (rasterm.Settings{}).ItermWriteImage(w, i); err != nil {
			return errors.Wrap(err, "iterm preview")
		}
		fmt.Fprint(w, "\n")
		return nil
	}
	if capable, err := rasterm.IsSixelCapable(); capable && err == nil {
		if err := (rasterm.Settings{}).SixelWriteImage(w, paletted(i, 64)); err != nil {
			return errors.Wrap(err, "sixel preview")
		}
		fmt.Fprint(w, "\n")
		return nil
	}
	return nil
}

// paletted maps i onto a median cut palette of at most n colors, plus a
// transparent entry at index 0 so empty areas stay empty.
func paletted(i image.Image, n int) *image.Paletted {
	q := quantize.MedianCutQuantizer{}
	pal := q.Quantize(make(color.Palette, 0, n), i)
	pal = append(color.Palette{color.Transparent}, pal...)

	p := image.NewPaletted(i.Bounds(), pal)
	draw.Draw(p, i.Bounds(), i, i.Bounds().Min, draw.Over)
	return p
}
