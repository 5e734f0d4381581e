// Package camera provides still-frame sources and the image processing
// used by the photo and filter games.
package camera

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/disintegration/imaging"
)

// ErrClosed is returned by Capture after Close.
var ErrClosed = errors.New("camera closed")

// Camera produces frames. Close releases the device and is idempotent.
type Camera interface {
	Capture(ctx context.Context) (image.Image, error)
	Close() error
}

// Open returns a FileCamera when path is set, otherwise a PatternCamera.
func Open(path string) Camera {
	if path != "" {
		return &FileCamera{Path: path}
	}
	return NewPatternCamera(320, 240)
}

// PatternCamera synthesises a moving gradient test card.
type PatternCamera struct {
	mu     sync.Mutex
	w, h   int
	frame  int
	closed bool
}

// NewPatternCamera creates a pattern source of the given size.
func NewPatternCamera(w, h int) *PatternCamera {
	return &PatternCamera{w: max(w, 1), h: max(h, 1)}
}

func (c *PatternCamera) Capture(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	c.frame++
	shift := float64(c.frame) * 0.15

	img := image.NewNRGBA(image.Rect(0, 0, c.w, c.h))
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			fx := float64(x) / float64(c.w)
			fy := float64(y) / float64(c.h)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(127 + 127*math.Sin(2*math.Pi*fx+shift)),
				G: uint8(127 + 127*math.Sin(2*math.Pi*fy+shift*0.7)),
				B: uint8(255 * (1 - fx*fy)),
				A: 255,
			})
		}
	}
	return img, nil
}

func (c *PatternCamera) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return nil
}

// Closed reports whether Close has been called.
func (c *PatternCamera) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// FileCamera returns the same still image on every capture.
type FileCamera struct {
	Path string

	mu     sync.Mutex
	img    image.Image
	closed bool
}

func (c *FileCamera) Capture(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, ErrClosed
	}
	if c.img == nil {
		img, err := imaging.Open(c.Path, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("open camera image: %w", err)
		}
		c.img = img
	}
	return c.img, nil
}

func (c *FileCamera) Close() error {
	c.mu.Lock()
	c.closed = true
	c.img = nil
	c.mu.Unlock()
	return nil
}
