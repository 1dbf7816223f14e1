package chart

import (
	"image/color"
	"math"
)

// Rect is a pixel-aligned region of a canvas. X1 and Y1 are exclusive.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// W returns the region width in pixels.
func (r Rect) W() int { return r.X1 - r.X0 }

// H returns the region height in pixels.
func (r Rect) H() int { return r.Y1 - r.Y0 }

// Columns splits the canvas into n side-by-side regions separated and
// surrounded by margin pixels.
func Columns(c *Canvas, n, margin int) []Rect {
	if n <= 0 {
		return nil
	}
	w, h := c.Size()
	inner := (w - (n+1)*margin) / n
	if inner < 1 {
		inner = 1
	}
	out := make([]Rect, n)
	for i := range out {
		x0 := margin + i*(inner+margin)
		out[i] = Rect{X0: x0, Y0: margin, X1: x0 + inner, Y1: h - margin}
	}
	return out
}

// Margins reserved inside a plot region for titles and tick labels.
const (
	marginLeft   = 52
	marginRight  = 10
	marginTop    = 22
	marginBottom = 34
)

// Plot maps data coordinates onto a rectangular canvas region and draws chart
// elements inside it. The zero x/y limits span the unit interval.
type Plot struct {
	c    *Canvas
	area Rect

	xlo, xhi float64
	ylo, yhi float64
	logX     bool
	logY     bool
}

// NewPlot builds a plot whose axes and labels fit inside region.
func NewPlot(c *Canvas, region Rect) *Plot {
	area := Rect{
		X0: region.X0 + marginLeft,
		Y0: region.Y0 + marginTop,
		X1: region.X1 - marginRight,
		Y1: region.Y1 - marginBottom,
	}
	if area.X1 <= area.X0 {
		area.X1 = area.X0 + 1
	}
	if area.Y1 <= area.Y0 {
		area.Y1 = area.Y0 + 1
	}
	return &Plot{c: c, area: area, xlo: 0, xhi: 1, ylo: 0, yhi: 1}
}

// Area returns the inner plotting area.
func (p *Plot) Area() Rect { return p.area }

// SetXLim sets the horizontal data range. Degenerate ranges are ignored.
func (p *Plot) SetXLim(lo, hi float64) {
	if hi > lo {
		p.xlo, p.xhi = lo, hi
	}
}

// SetYLim sets the vertical data range. Degenerate ranges are ignored.
func (p *Plot) SetYLim(lo, hi float64) {
	if hi > lo {
		p.ylo, p.yhi = lo, hi
	}
}

// XLim returns the horizontal data range.
func (p *Plot) XLim() (float64, float64) { return p.xlo, p.xhi }

// YLim returns the vertical data range.
func (p *Plot) YLim() (float64, float64) { return p.ylo, p.yhi }

// SetLogLog switches both axes to logarithmic scale. Limits must be positive.
func (p *Plot) SetLogLog() {
	p.logX = true
	p.logY = true
}

// PX converts a data x coordinate to a canvas pixel column.
func (p *Plot) PX(x float64) int {
	lo, hi := p.xlo, p.xhi
	if p.logX {
		x, lo, hi = math.Log10(x), math.Log10(lo), math.Log10(hi)
	}
	u := (x - lo) / (hi - lo)
	return p.area.X0 + int(math.Round(u*float64(p.area.W()-1)))
}

// PY converts a data y coordinate to a canvas pixel row.
func (p *Plot) PY(y float64) int {
	lo, hi := p.ylo, p.yhi
	if p.logY {
		y, lo, hi = math.Log10(y), math.Log10(lo), math.Log10(hi)
	}
	u := (y - lo) / (hi - lo)
	return p.area.Y1 - 1 - int(math.Round(u*float64(p.area.H()-1)))
}

// Frame draws the border of the plotting area.
func (p *Plot) Frame(col color.RGBA) {
	a := p.area
	p.c.Line(a.X0, a.Y0, a.X1-1, a.Y0, col)
	p.c.Line(a.X0, a.Y1-1, a.X1-1, a.Y1-1, col)
	p.c.Line(a.X0, a.Y0, a.X0, a.Y1-1, col)
	p.c.Line(a.X1-1, a.Y0, a.X1-1, a.Y1-1, col)
}

// Grid draws grid lines at the tick positions of both axes.
func (p *Plot) Grid(col color.RGBA) {
	for _, x := range p.xticks() {
		px := p.PX(x)
		p.c.Line(px, p.area.Y0, px, p.area.Y1-1, col)
	}
	for _, y := range p.yticks() {
		py := p.PY(y)
		p.c.Line(p.area.X0, py, p.area.X1-1, py, col)
	}
}

// Ticks draws tick labels along the bottom and left edges.
func (p *Plot) Ticks(col color.RGBA) {
	for _, x := range p.xticks() {
		label := formatTick(x)
		px := p.PX(x) - TextWidth(label)/2
		p.c.Text(px, p.area.Y1+4, label, col)
	}
	for _, y := range p.yticks() {
		label := formatTick(y)
		px := p.area.X0 - TextWidth(label) - 5
		p.c.Text(px, p.PY(y)-TextHeight/2, label, col)
	}
}

func (p *Plot) xticks() []float64 {
	if p.logX {
		return logTicks(p.xlo, p.xhi)
	}
	return niceTicks(p.xlo, p.xhi, 5)
}

func (p *Plot) yticks() []float64 {
	if p.logY {
		return logTicks(p.ylo, p.yhi)
	}
	return niceTicks(p.ylo, p.yhi, 4)
}

// Title draws s centered above the plotting area.
func (p *Plot) Title(s string, col color.RGBA) {
	x := p.area.X0 + (p.area.W()-TextWidth(s))/2
	p.c.Text(x, p.area.Y0-TextHeight-4, s, col)
}

// XLabel draws s centered below the tick labels.
func (p *Plot) XLabel(s string, col color.RGBA) {
	x := p.area.X0 + (p.area.W()-TextWidth(s))/2
	p.c.Text(x, p.area.Y1+4+TextHeight, s, col)
}

// HLine draws a horizontal reference line across the plotting area.
func (p *Plot) HLine(y float64, col color.RGBA) {
	py := p.PY(y)
	if py < p.area.Y0 || py >= p.area.Y1 {
		return
	}
	p.c.Line(p.area.X0, py, p.area.X1-1, py, col)
}

// Dot plots a single data point as a filled square of half-width r.
func (p *Plot) Dot(x, y float64, r int, col color.RGBA) {
	px, py := p.PX(x), p.PY(y)
	if px < p.area.X0 || px >= p.area.X1 || py < p.area.Y0 || py >= p.area.Y1 {
		return
	}
	p.c.Dot(px, py, r, col)
}

// PolyLine connects the given data points in order. NaN values break the line.
func (p *Plot) PolyLine(xs, ys []float64, col color.RGBA) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	havePrev := false
	var px0, py0 int
	for i := 0; i < n; i++ {
		if math.IsNaN(xs[i]) || math.IsNaN(ys[i]) {
			havePrev = false
			continue
		}
		px1, py1 := p.PX(xs[i]), p.PY(ys[i])
		px1, py1 = p.clamp(px1, py1)
		if havePrev {
			p.c.Line(px0, py0, px1, py1, col)
		}
		px0, py0 = px1, py1
		havePrev = true
	}
}

// Curve samples f across the x range and draws the resulting line.
func (p *Plot) Curve(f func(x float64) float64, samples int, col color.RGBA) {
	if samples < 2 {
		samples = 2
	}
	xs := make([]float64, samples)
	ys := make([]float64, samples)
	for i := range xs {
		x := p.xlo + (p.xhi-p.xlo)*float64(i)/float64(samples-1)
		xs[i] = x
		ys[i] = f(x)
	}
	p.PolyLine(xs, ys, col)
}

// Bars draws a histogram: heights[i] spans dividers[i]..dividers[i+1], rising
// from the bottom of the y range.
func (p *Plot) Bars(dividers, heights []float64, col color.RGBA) {
	for i := 0; i < len(heights) && i+1 < len(dividers); i++ {
		if heights[i] <= 0 {
			continue
		}
		x0, _ := p.clamp(p.PX(dividers[i]), 0)
		x1, _ := p.clamp(p.PX(dividers[i+1]), 0)
		_, y0 := p.clamp(0, p.PY(heights[i]))
		p.c.FillRect(x0, y0, x1, p.area.Y1-1, col)
	}
}

// Legend draws a swatch and label in the top-right corner, one row per call.
func (p *Plot) Legend(row int, label string, col, textCol color.RGBA) {
	y := p.area.Y0 + 4 + row*(TextHeight+2)
	x := p.area.X1 - TextWidth(label) - 22
	p.c.FillRect(x, y+3, x+12, y+9, col)
	p.c.Text(x+16, y, label, textCol)
}

func (p *Plot) clamp(px, py int) (int, int) {
	if px < p.area.X0 {
		px = p.area.X0
	}
	if px > p.area.X1-1 {
		px = p.area.X1 - 1
	}
	if py < p.area.Y0 {
		py = p.area.Y0
	}
	if py > p.area.Y1-1 {
		py = p.area.Y1 - 1
	}
	return px, py
}
