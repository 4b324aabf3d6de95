package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"badc0de.net/pkg/portraits/imageprint"
	"badc0de.net/pkg/portraits/sheet"
)

func withFlags(t *testing.T, d string) {
	t.Helper()
	oldDir, oldOutput, oldPreview := *dir, *output, preview
	t.Cleanup(func() {
		*dir, *output, preview = oldDir, oldOutput, oldPreview
	})
	*dir = d
	*output = sheet.OutputName
	preview = imageprint.None
}

func TestRun(t *testing.T) {
	d := t.TempDir()
	for _, name := range []string{"leader2.png", "leader1.png"} {
		f, err := os.Create(filepath.Join(d, name))
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 60, 90))); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}
	withFlags(t, d)

	var buf bytes.Buffer
	if err := run(&buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Processing 1/2: leader1.png\n",
		"Processing 2/2: leader2.png\n",
		"Generating " + filepath.Join(d, sheet.OutputName) + " complete!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q lacks %q", out, want)
		}
	}
	if strings.Index(out, "leader1.png") > strings.Index(out, "leader2.png") {
		t.Errorf("sources processed out of order: %q", out)
	}
}

func TestRunNothingToDo(t *testing.T) {
	d := t.TempDir()
	withFlags(t, d)

	var buf bytes.Buffer
	if err := run(&buf); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(buf.String(), "No portraits found") {
		t.Errorf("got %q", buf.String())
	}
	if _, err := os.Stat(filepath.Join(d, sheet.OutputName)); !os.IsNotExist(err) {
		t.Errorf("sheet written for empty input, stat err %v", err)
	}
}

func TestRunCorrupt(t *testing.T) {
	d := t.TempDir()
	if err := os.WriteFile(filepath.Join(d, "leader.png"), []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	withFlags(t, d)

	var buf bytes.Buffer
	if err := run(&buf); err == nil {
		t.Errorf("run: got nil error for corrupt source")
	}
}
