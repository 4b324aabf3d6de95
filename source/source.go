// Package source selects and decodes the portrait images a sheet is built
// from.
package source

import (
	"image"
	"os"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Config selects which files in a directory are portraits.
type Config struct {
	// Prefix every selected file name starts with, compared without regard
	// to case.
	Prefix string
	// Extensions, including the leading dot, that a selected file name may
	// end with. Compared without regard to case.
	Extensions []string
}

// Default selects the leader portraits shipped with the client.
var Default = Config{
	Prefix:     "leader",
	Extensions: []string{".png", ".jpg", ".jpeg"},
}

// Match reports whether a file called name is selected by c.
func (c Config) Match(name string) bool {
	lower := strings.ToLower(name)
	if !strings.HasPrefix(lower, strings.ToLower(c.Prefix)) {
		return false
	}
	for _, ext := range c.Extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// Scan lists dir, without descending into subdirectories, and returns the
// names of files selected by c. Directories are never selected.
//
// Names are sorted case-insensitively; names differing only in case are
// ordered by their raw bytes. No matches is not an error.
func Scan(dir string, c Config) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "listing %q", dir)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			glog.V(2).Infof("source.Scan(): skipping directory %q", e.Name())
			continue
		}
		if !c.Match(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}

	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
	glog.V(1).Infof("source.Scan(%q): %d of %d entries selected", dir, len(names), len(entries))
	return names, nil
}

// Decode opens and decodes the image at path. EXIF orientation of JPEG
// files is applied, so the returned image is upright.
func Decode(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %q", path)
	}
	glog.V(2).Infof("source.Decode(%q): %v", path, img.Bounds())
	return img, nil
}
