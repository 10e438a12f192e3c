package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateWritesAllIcons(t *testing.T) {
	dir := t.TempDir()
	if err := generate(dir); err != nil {
		t.Fatal(err)
	}

	want := map[string]int{
		"tray_iconTemplate.png":           22,
		"tray_iconTemplate@2x.png":        44,
		"tray_icon_activeTemplate.png":    22,
		"tray_icon_activeTemplate@2x.png": 44,
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(want) {
		t.Errorf("got %d files, want %d", len(entries), len(want))
	}

	for name, size := range want {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s not written: %v", name, err)
			continue
		}
		img, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Errorf("%s: invalid PNG: %v", name, err)
			continue
		}
		if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
			t.Errorf("%s: bounds %v, want %dx%d", name, b, size, size)
		}
		// template icons need a transparent background
		if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
			t.Errorf("%s: corner pixel not transparent", name)
		}
		if r, g, b, a := img.At(size/2, size/2).RGBA(); r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
			t.Errorf("%s: center pixel not opaque white", name)
		}
	}
}

func TestGenerateMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	if err := generate(dir); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}
