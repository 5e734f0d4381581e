package camera

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Filter is a named image effect.
type Filter string

const (
	FilterNone      Filter = "none"
	FilterGrayscale Filter = "grayscale"
	FilterInvert    Filter = "invert"
	FilterSepia     Filter = "sepia"
	FilterBlur      Filter = "blur"
	FilterSharpen   Filter = "sharpen"
)

// Filters lists every filter in cycling order.
var Filters = []Filter{FilterNone, FilterGrayscale, FilterInvert, FilterSepia, FilterBlur, FilterSharpen}

// Next returns the filter after f, wrapping around.
func (f Filter) Next() Filter {
	for i, x := range Filters {
		if x == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterNone
}

// Prev returns the filter before f, wrapping around.
func (f Filter) Prev() Filter {
	for i, x := range Filters {
		if x == f {
			return Filters[(i+len(Filters)-1)%len(Filters)]
		}
	}
	return FilterNone
}

// Apply returns a filtered copy of img.
func Apply(img image.Image, f Filter) (image.Image, error) {
	switch f {
	case FilterNone, "":
		return imaging.Clone(img), nil
	case FilterGrayscale:
		return imaging.Grayscale(img), nil
	case FilterInvert:
		return imaging.Invert(img), nil
	case FilterSepia:
		return imaging.AdjustFunc(img, sepia), nil
	case FilterBlur:
		return imaging.Blur(img, 2.5), nil
	case FilterSharpen:
		return imaging.Sharpen(img, 1.5), nil
	}
	return nil, fmt.Errorf("unknown filter %q", f)
}

func sepia(c color.NRGBA) color.NRGBA {
	r, g, b := float64(c.R), float64(c.G), float64(c.B)
	return color.NRGBA{
		R: clamp8(0.393*r + 0.769*g + 0.189*b),
		G: clamp8(0.349*r + 0.686*g + 0.168*b),
		B: clamp8(0.272*r + 0.534*g + 0.131*b),
		A: c.A,
	}
}

func clamp8(v float64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
