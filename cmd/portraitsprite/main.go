// Command portraitsprite builds the portrait sprite sheet used by the game
// client.
//
// It reads every leader*.png, leader*.jpg and leader*.jpeg file in a
// directory, crops each one to a 600x900 portrait frame, and writes the
// frames side by side into portraits.png. Run it in the client's image
// directory:
//
//	portraitsprite -dir client/img
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"badc0de.net/pkg/flagutil/v1"
	"github.com/golang/glog"

	"badc0de.net/pkg/portraits/imageprint"
	"badc0de.net/pkg/portraits/sheet"
)

var (
	dir     = flag.String("dir", ".", "directory to read portraits from")
	output  = flag.String("output", sheet.OutputName, "path of the sheet to write; relative paths are relative to -dir")
	preview imageprint.Mode
)

func init() {
	flag.Var(&preview, "preview", "draw the finished sheet on the terminal: none, 24bit, 256, ascii, iterm or rasterm")
}

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")
	defer glog.Flush()

	if err := run(os.Stdout); err != nil {
		glog.Errorf("building sheet: %v", err)
		glog.Flush()
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	c := sheet.DefaultConfig(*dir)
	c.Output = *output

	res, err := sheet.Build(c, func(i, n int, name string) {
		fmt.Fprintf(w, "Processing %d/%d: %s\n", i, n, name)
	})
	if err != nil {
		return err
	}
	if !res.Written {
		fmt.Fprintf(w, "No portraits found in %s, nothing to do.\n", c.Dir)
		return nil
	}
	fmt.Fprintf(w, "Generating %s complete! (%d portraits, %dx%d)\n", res.Output, len(res.Files), res.Size.X, res.Size.Y)

	if preview != imageprint.None {
		if err := imageprint.Print(w, imageprint.Fit(res.Sheet, preview), preview); err != nil {
			glog.Warningf("preview: %v", err)
		}
	}
	return nil
}
