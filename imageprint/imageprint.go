// Package imageprint prints images on a terminal, so a freshly built sheet
// can be eyeballed without leaving the shell.
//
// This package has an API with no stability guarantees.
package imageprint

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/pkg/errors"
)

// Mode selects how an image is drawn.
type Mode int

const (
	// None draws nothing.
	None Mode = iota
	// TrueColor draws each pixel as a block with a 24 bit background color.
	TrueColor
	// Color256 draws each pixel as a block using gookit/color, which falls
	// back to the 256 color palette where true color is not supported.
	Color256
	// ASCII draws pixels as characters picked by brightness, without any
	// color.
	ASCII
	// ITerm sends the image with iTerm2's inline image escape code.
	ITerm
	// RasTerm uses whichever of kitty, iTerm2 or sixel graphics the terminal
	// supports.
	RasTerm
)

var modeNames = map[Mode]string{
	None:      "none",
	TrueColor: "24bit",
	Color256:  "256",
	ASCII:     "ascii",
	ITerm:     "iterm",
	RasTerm:   "rasterm",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Set parses s into m. It makes Mode usable with flag.Var.
func (m *Mode) Set(s string) error {
	for mode, name := range modeNames {
		if strings.EqualFold(s, name) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("unknown preview mode %q", s)
}

// Cells reports whether the mode draws each pixel as a terminal cell, as
// opposed to sending a real image.
func (m Mode) Cells() bool {
	return m == TrueColor || m == Color256 || m == ASCII
}

// Print draws img on w using the passed mode.
func Print(w io.Writer, img image.Image, mode Mode) error {
	switch mode {
	case None:
		return nil
	case TrueColor:
		Print24bit(w, img)
	case Color256:
		Print256Color(w, img)
	case ASCII:
		PrintNoColor(w, img)
	case ITerm:
		return PrintITerm(w, img, "portraits.png")
	case RasTerm:
		return PrintRasTerm(w, img)
	default:
		return fmt.Errorf("unknown preview mode %v", mode)
	}
	return nil
}

func shade(w io.Writer, col ic.Color, mode Mode) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		if mode == ASCII {
			fmt.Fprint(w, "  ")
		} else {
			fmt.Fprint(w, "\x1b[0m  ")
		}
		return
	}
	r, g, b := uint8(cR>>8), uint8(cG>>8), uint8(cB>>8)
	switch mode {
	case TrueColor:
		fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm  \x1b[0m", r, g, b)
	case Color256:
		fmt.Fprint(w, color.RGB(r, g, b, true).Sprint("  "))
	default:
		switch a := (cR + cG + cB) / 3 >> 8; {
		case a < 32:
			fmt.Fprint(w, "..")
		case a < 64:
			fmt.Fprint(w, "--")
		case a < 128:
			fmt.Fprint(w, "==")
		default:
			fmt.Fprint(w, "##")
		}
	}
}

func printCells(w io.Writer, i image.Image, mode Mode) {
	b := i.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			shade(w, i.At(x, y), mode)
		}
		if mode != ASCII {
			fmt.Fprint(w, "\x1b[0m")
		}
		fmt.Fprint(w, "\n")
	}
}

// Print256Color draws an image using 256color'd blocks.
func Print256Color(w io.Writer, i image.Image) {
	printCells(w, i, Color256)
}

// Print24bit draws an image using 24bit color escape sequences by changing background.
func Print24bit(w io.Writer, i image.Image) {
	printCells(w, i, TrueColor)
}

// PrintNoColor draws an image as ascii art, without color escape sequences.
func PrintNoColor(w io.Writer, i image.Image) {
	printCells(w, i, ASCII)
}

// PrintITerm draws an image using iTerm2's escape sequences.
//
// https://www.iterm2.com/documentation-images.html
func PrintITerm(w io.Writer, i image.Image, fn string) error {
	name := base64.StdEncoding.EncodeToString([]byte(fn))
	b := &bytes.Buffer{}
	bEnc := base64.NewEncoder(base64.StdEncoding, b)
	if err := png.Encode(bEnc, i); err != nil {
		return errors.Wrap(err, "encoding preview")
	}
	if err := bEnc.Close(); err != nil {
		return errors.Wrap(err, "encoding preview")
	}
	sz := i.Bounds().Size()
	_, err := fmt.Fprintf(w, "\n\033]1337;File=name=%s;inline=1;size=%d;width=%dpx;height=%dpx:%s\a\n", name, b.Len(), sz.X, sz.Y, b.String())
	return err
}
