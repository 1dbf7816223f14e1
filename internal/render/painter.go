//go:build ebiten

package render

import (
	"randviz/internal/chart"

	"github.com/hajimehoshi/ebiten/v2"
)

// ChartPainter uploads a chart canvas into an ebiten image for display.
type ChartPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewChartPainter allocates a painter matching the canvas dimensions.
func NewChartPainter(w, h int) *ChartPainter {
	return &ChartPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads the canvas pixels and draws them scaled onto dst.
func (p *ChartPainter) Blit(dst *ebiten.Image, c *chart.Canvas, scale int) {
	w, h := c.Size()
	if w != p.w || h != p.h {
		return
	}
	p.img.WritePixels(c.Pixels())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *ChartPainter) Size() (int, int) { return p.w, p.h }
