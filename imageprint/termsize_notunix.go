//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package imageprint

import (
	"os"

	"golang.org/x/crypto/ssh/terminal"
)

// GetTermSize returns the size of the terminal attached to stdout.
func GetTermSize() (TermSize, error) {
	w, h, err := terminal.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return TermSize{}, err
	}
	return TermSize{Cols: uint(w), Rows: uint(h)}, nil
}
