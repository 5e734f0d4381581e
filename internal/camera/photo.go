package camera

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Watermark returns a copy of img with text stamped in the bottom-left
// corner on a dark band.
func Watermark(img image.Image, text string) *image.NRGBA {
	dst := imaging.Clone(img)
	b := dst.Bounds()
	face := basicfont.Face7x13
	band := face.Metrics().Height.Ceil() + 6
	bandRect := image.Rect(b.Min.X, b.Max.Y-band, b.Max.X, b.Max.Y)
	draw.Draw(dst, bandRect, image.NewUniform(color.NRGBA{A: 160}), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.P(b.Min.X+4, b.Max.Y-4-face.Metrics().Descent.Ceil()),
	}
	d.DrawString(text)
	return dst
}

// Stamp is the watermark text for a photo taken at t.
func Stamp(t time.Time) string {
	return "wolfchan " + t.Format("2006-01-02 15:04:05")
}

// Save writes img as PNG into dir, creating it if needed, and returns the
// file path. The name is derived from t and prefix.
func Save(dir, prefix string, img image.Image, t time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create photo dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.png", prefix, t.Format("20060102-150405.000"))
	path := filepath.Join(dir, name)
	if err := imaging.Save(img, path); err != nil {
		return "", fmt.Errorf("save photo: %w", err)
	}
	return path, nil
}

// DefaultPhotoDir returns $XDG_PICTURES_DIR/wolfchan or ~/Pictures/wolfchan.
func DefaultPhotoDir() string {
	if dir := os.Getenv("XDG_PICTURES_DIR"); dir != "" {
		return filepath.Join(dir, "wolfchan")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "wolfchan")
	}
	return filepath.Join(home, "Pictures", "wolfchan")
}
