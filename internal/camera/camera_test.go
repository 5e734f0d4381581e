package camera

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/disintegration/imaging"
)

func TestPatternCamera(t *testing.T) {
	c := NewPatternCamera(16, 8)
	a, err := c.Capture(context.Background())
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if got := a.Bounds().Size(); got != image.Pt(16, 8) {
		t.Errorf("size = %v, want 16x8", got)
	}
	b, _ := c.Capture(context.Background())
	if a.At(3, 3) == b.At(3, 3) {
		t.Error("consecutive frames should differ")
	}

	c.Close()
	if !c.Closed() {
		t.Error("Closed() = false after Close")
	}
	if _, err := c.Capture(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("Capture after Close = %v, want ErrClosed", err)
	}
}

func TestCapture_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewPatternCamera(4, 4).Capture(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestFileCamera(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "still.png")
	if err := imaging.Save(imaging.New(10, 6, color.NRGBA{R: 200, A: 255}), path); err != nil {
		t.Fatal(err)
	}

	cam := Open(path)
	img, err := cam.Capture(context.Background())
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	if img.Bounds().Dx() != 10 {
		t.Errorf("width = %d, want 10", img.Bounds().Dx())
	}
	cam.Close()
	if _, err := cam.Capture(context.Background()); !errors.Is(err, ErrClosed) {
		t.Errorf("err = %v, want ErrClosed", err)
	}

	missing := &FileCamera{Path: filepath.Join(dir, "nope.png")}
	if _, err := missing.Capture(context.Background()); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestOpen_DefaultsToPattern(t *testing.T) {
	if _, ok := Open("").(*PatternCamera); !ok {
		t.Error("Open(\"\") should return a PatternCamera")
	}
}

func TestFilters(t *testing.T) {
	src := imaging.New(4, 4, color.NRGBA{R: 200, G: 100, B: 50, A: 255})

	for _, f := range Filters {
		out, err := Apply(src, f)
		if err != nil {
			t.Errorf("Apply(%s): %v", f, err)
			continue
		}
		if out.Bounds() != src.Bounds() {
			t.Errorf("Apply(%s) bounds = %v", f, out.Bounds())
		}
	}

	inv, _ := Apply(src, FilterInvert)
	if got := color.NRGBAModel.Convert(inv.At(1, 1)).(color.NRGBA); got.R != 55 || got.G != 155 || got.B != 205 {
		t.Errorf("invert = %v", got)
	}

	gray, _ := Apply(src, FilterGrayscale)
	if g := color.NRGBAModel.Convert(gray.At(0, 0)).(color.NRGBA); g.R != g.G || g.G != g.B {
		t.Errorf("grayscale not gray: %v", g)
	}

	if _, err := Apply(src, Filter("vhs")); err == nil {
		t.Error("expected error for unknown filter")
	}
}

func TestFilterCycle(t *testing.T) {
	f := FilterNone
	for range Filters {
		f = f.Next()
	}
	if f != FilterNone {
		t.Errorf("full Next cycle = %s, want none", f)
	}
	if FilterNone.Prev() != FilterSharpen {
		t.Errorf("Prev(none) = %s", FilterNone.Prev())
	}
}

func TestWatermarkAndSave(t *testing.T) {
	src := imaging.New(120, 40, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	when := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	marked := Watermark(src, Stamp(when))

	bottom := color.NRGBAModel.Convert(marked.At(119, 39)).(color.NRGBA)
	if bottom.R == 255 {
		t.Error("watermark band should darken the bottom edge")
	}
	top := color.NRGBAModel.Convert(marked.At(0, 0)).(color.NRGBA)
	if top.R != 255 {
		t.Error("watermark should not touch the top of the image")
	}

	dir := filepath.Join(t.TempDir(), "photos")
	path, err := Save(dir, "photo", marked, when)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "photo-20260301-093000") {
		t.Errorf("path = %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestPreview(t *testing.T) {
	img := imaging.New(8, 8, color.NRGBA{B: 255, A: 255})
	out := Preview(img, 4, 2)
	if got := strings.Count(out, "▀"); got != 8 {
		t.Errorf("cells = %d, want 8", got)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows")
	}
	if Preview(nil, 4, 2) != "" {
		t.Error("nil image should render empty")
	}
}
