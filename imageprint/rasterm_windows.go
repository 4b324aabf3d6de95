//go:build windows

package imageprint

import (
	"fmt"
	"image"
	"io"
)

func PrintRasTerm(w io.Writer, i image.Image) error {
	_, err := fmt.Fprintf(w, "rasterm not supported on windows\n")
	return err
}
