package sheet

import (
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Encode writes img to w as a PNG.
func Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return errors.Wrap(enc.Encode(w, img), "encoding png")
}

// WriteFile encodes img into the file at path. The image is first written
// next to path and then renamed over it, so path either keeps its previous
// contents or receives the whole new image.
func WriteFile(path string, img image.Image) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "creating temporary file for %q", path)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = Encode(f, img); err != nil {
		return errors.Wrapf(err, "writing %q", tmp)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "closing %q", tmp)
	}
	if err = os.Chmod(tmp, 0o644); err != nil {
		return errors.Wrapf(err, "setting mode of %q", tmp)
	}
	if err = os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "renaming %q to %q", tmp, path)
	}
	glog.V(1).Infof("sheet.WriteFile(%q): %v", path, img.Bounds().Size())
	return nil
}
