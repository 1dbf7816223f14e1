package chart

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is a fixed-size RGBA raster that chart primitives draw into. It has
// no display dependency, so the same surface backs the animated window, PNG
// export, and tests.
type Canvas struct {
	w, h int
	buf  []byte
}

// NewCanvas allocates a canvas with the given dimensions.
func NewCanvas(w, h int) *Canvas {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Canvas{w: w, h: h, buf: make([]byte, 4*w*h)}
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

// Pixels exposes the backing RGBA buffer in row-major order.
func (c *Canvas) Pixels() []byte { return c.buf }

// Fill paints the whole canvas with col.
func (c *Canvas) Fill(col color.RGBA) {
	for i := 0; i < len(c.buf); i += 4 {
		c.buf[i+0] = col.R
		c.buf[i+1] = col.G
		c.buf[i+2] = col.B
		c.buf[i+3] = col.A
	}
}

// Set colors a single pixel. Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	base := (y*c.w + x) * 4
	c.buf[base+0] = col.R
	c.buf[base+1] = col.G
	c.buf[base+2] = col.B
	c.buf[base+3] = col.A
}

// At reports the pixel color at (x, y), or zero when out of bounds.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return color.RGBA{}
	}
	base := (y*c.w + x) * 4
	return color.RGBA{R: c.buf[base+0], G: c.buf[base+1], B: c.buf[base+2], A: c.buf[base+3]}
}

// Dot fills a square of half-width r centered on (x, y).
func (c *Canvas) Dot(x, y, r int, col color.RGBA) {
	if r < 0 {
		r = 0
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			c.Set(x+dx, y+dy, col)
		}
	}
}

// Line draws a straight segment using Bresenham stepping.
func (c *Canvas) Line(x0, y0, x1, y1 int, col color.RGBA) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillRect fills the rectangle spanned by the two corners, inclusive.
func (c *Canvas) FillRect(x0, y0, x1, y1 int, col color.RGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			c.Set(x, y, col)
		}
	}
}

// Text draws s with the bundled 7x13 bitmap font. (x, y) is the top-left
// corner of the first glyph.
func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	d := font.Drawer{
		Dst:  c.image(),
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)
}

// TextWidth reports the pixel width of s in the bundled font.
func TextWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

// TextHeight is the line height of the bundled font.
const TextHeight = 13

func (c *Canvas) image() *image.RGBA {
	return &image.RGBA{Pix: c.buf, Stride: 4 * c.w, Rect: image.Rect(0, 0, c.w, c.h)}
}

// EncodePNG writes the canvas contents as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.image())
}
