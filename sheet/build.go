package sheet

import (
	"image"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"badc0de.net/pkg/portraits/frame"
	"badc0de.net/pkg/portraits/source"
)

// OutputName is the file name the game client loads the sheet from.
const OutputName = "portraits.png"

// Config describes one sheet build.
type Config struct {
	// Dir is scanned for source images.
	Dir string
	// Output is the path of the sheet. Relative paths are taken relative
	// to Dir.
	Output string

	Source  source.Config
	Frame   frame.Size
	EyeLine float64
}

// DefaultConfig returns the configuration of the client's portrait sheet,
// built from the leader portraits in dir.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:     dir,
		Output:  OutputName,
		Source:  source.Default,
		Frame:   frame.Portrait,
		EyeLine: frame.EyeLine,
	}
}

// OutputPath returns where the sheet is written.
func (c Config) OutputPath() string {
	if filepath.IsAbs(c.Output) {
		return c.Output
	}
	return filepath.Join(c.Dir, c.Output)
}

// Progress is told about each source before it is processed. i counts from
// 1 to n.
type Progress func(i, n int, name string)

// Result describes a finished build.
type Result struct {
	// Files are the source names, in sheet order.
	Files []string
	// Output is the path the sheet was written to.
	Output string
	// Size is the size of the sheet.
	Size image.Point
	// Written is false if there were no sources and nothing was written.
	Written bool
	// Sheet holds the composited image when Written is true.
	Sheet *image.NRGBA
}

// Build scans c.Dir, crops every selected source into a frame and writes
// the frames as one sheet to c.OutputPath().
//
// The first source that cannot be decoded or cropped aborts the build, and
// nothing is written. Finding no sources is not an error; the returned
// result then has Written set to false. progress may be nil.
func Build(c Config, progress Progress) (*Result, error) {
	out := c.OutputPath()

	names, err := source.Scan(c.Dir, c.Source)
	if err != nil {
		return nil, errors.Wrap(err, "scanning for sources")
	}
	names = withoutOutput(c.Dir, names, out)

	res := &Result{Files: names, Output: out}
	if len(names) == 0 {
		glog.Infof("sheet.Build(): no sources in %q matching %q", c.Dir, c.Source.Prefix)
		return res, nil
	}

	s := New(c.Frame)
	for i, name := range names {
		if progress != nil {
			progress(i+1, len(names), name)
		}
		img, err := source.Decode(filepath.Join(c.Dir, name))
		if err != nil {
			return nil, err
		}
		f, err := frame.Crop(img, c.Frame, c.EyeLine)
		if err != nil {
			return nil, errors.Wrapf(err, "cropping %q", name)
		}
		if err := s.Add(f); err != nil {
			return nil, errors.Wrapf(err, "adding %q", name)
		}
	}

	img := s.Composite()
	if err := WriteFile(out, img); err != nil {
		return nil, err
	}
	res.Size = img.Bounds().Size()
	res.Written = true
	res.Sheet = img
	glog.Infof("sheet.Build(): wrote %d frames to %q (%v)", s.Len(), out, res.Size)
	return res, nil
}

// withoutOutput drops the sheet itself from names, in case its name looks
// like a source.
func withoutOutput(dir string, names []string, out string) []string {
	absOut, err := filepath.Abs(out)
	if err != nil {
		return names
	}
	kept := names[:0]
	for _, name := range names {
		if abs, err := filepath.Abs(filepath.Join(dir, name)); err == nil && abs == absOut {
			glog.Infof("sheet.Build(): not using output %q as a source", name)
			continue
		}
		kept = append(kept, name)
	}
	return kept
}
