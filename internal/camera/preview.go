package camera

import (
	"image"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	xdraw "golang.org/x/image/draw"
)

// Preview renders img into cols x rows terminal cells using upper half
// blocks, two pixel rows per cell.
func Preview(img image.Image, cols, rows int) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	dst := image.NewNRGBA(image.Rect(0, 0, cols, rows*2))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	var b strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := dst.NRGBAAt(x, 2*y)
			bottom := dst.NRGBAAt(x, 2*y+1)
			b.WriteString(lipgloss.NewStyle().
				Foreground(opaque(top)).
				Background(opaque(bottom)).
				Render("▀"))
		}
		if y < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func opaque(c color.NRGBA) color.Color {
	c.A = 255
	return c
}
