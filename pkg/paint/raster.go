package paint

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/roffe/txgauges/pkg/common"
	"github.com/roffe/txgauges/pkg/geom"
)

const miterLimit = 4

// Canvas is a Surface that rasterizes onto an RGBA image with anti-aliasing.
// Fills use the nonzero rule; strokes get round joins.
type Canvas struct {
	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher
	fonts  *Fonts
}

var _ Surface = (*Canvas)(nil)

// NewCanvas allocates a w×h canvas cleared to bg. A nil bg leaves it
// transparent.
func NewCanvas(w, h int, bg color.Color, fonts *Fonts) *Canvas {
	w, h = max(w, 1), max(h, 1)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	filler.SetWinding(true)
	return &Canvas{
		img:    img,
		filler: filler,
		dasher: rasterx.NewDasher(w, h, scanner),
		fonts:  fonts,
	}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Bounds() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) Ellipse(center geom.Point, rx, ry float64, pen Pen, brush Brush) {
	if rx <= 0 || ry <= 0 {
		return
	}
	path := func(a rasterx.Adder) { rasterx.AddEllipse(center.X, center.Y, rx, ry, 0, a) }
	if brush.Visible() {
		c.fill(brush.Color, path)
	}
	if pen.Visible() {
		c.stroke(pen, path)
	}
}

func (c *Canvas) Polygon(pts []geom.Point, pen Pen, brush Brush) {
	if len(pts) < 2 {
		return
	}
	path := func(a rasterx.Adder) { addPolyline(a, pts, true) }
	if brush.Visible() && len(pts) > 2 {
		c.fill(brush.Color, path)
	}
	if pen.Visible() {
		c.stroke(pen, path)
	}
}

func (c *Canvas) Line(a, b geom.Point, pen Pen) {
	if !pen.Visible() || a == b {
		return
	}
	c.stroke(pen, func(ad rasterx.Adder) { addPolyline(ad, []geom.Point{a, b}, false) })
}

func (c *Canvas) Arc(center geom.Point, rx, ry, startDeg, spanDeg float64, pen Pen) {
	if !pen.Visible() || spanDeg == 0 || rx <= 0 || ry <= 0 {
		return
	}
	c.stroke(pen, func(a rasterx.Adder) { addArc(a, center, rx, ry, startDeg, spanDeg) })
}

func (c *Canvas) Text(at geom.Point, s string, style TextStyle) {
	if s == "" || c.fonts == nil {
		return
	}
	face, err := c.fonts.Face(style.Size)
	if err != nil {
		log.Printf("text %q: %v", s, err)
		return
	}
	col := style.Color
	if col == nil {
		col = White
	}
	width := fixedToFloat(font.MeasureString(face, s))
	m := face.Metrics()
	ascent, descent := fixedToFloat(m.Ascent), fixedToFloat(m.Descent)

	x, y := at.X, at.Y
	switch style.Align {
	case AlignCenter:
		x -= width * common.OneHalf
	case AlignRight:
		x -= width
	}
	switch style.VAlign {
	case AlignMiddle:
		y += (ascent - descent) * common.OneHalf
	case AlignTop:
		y += ascent
	case AlignBottom:
		y -= descent
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(s)
}

func (c *Canvas) fill(col color.Color, path func(rasterx.Adder)) {
	path(c.filler)
	c.filler.SetColor(col)
	c.filler.Draw()
	c.filler.Clear()
}

func (c *Canvas) stroke(pen Pen, path func(rasterx.Adder)) {
	var capFn rasterx.CapFunc = rasterx.ButtCap
	if pen.Cap == RoundCap {
		capFn = rasterx.RoundCap
	}
	c.dasher.SetStroke(floatToFixed(pen.Width), floatToFixed(miterLimit), capFn, capFn, rasterx.RoundGap, rasterx.Round, nil, 0)
	path(c.dasher)
	c.dasher.SetColor(c.source(pen))
	c.dasher.Draw()
	c.dasher.Clear()
}

// source is what the scanner paints a pen with: a plain color or a
// per-pixel gradient function.
func (c *Canvas) source(pen Pen) interface{} {
	if pen.Gradient != nil {
		w, h := c.Bounds()
		return pen.Gradient.gradient(w, h).GetColorFunction(1)
	}
	return pen.Color
}

func addPolyline(a rasterx.Adder, pts []geom.Point, closed bool) {
	a.Start(toFixed(pts[0]))
	for _, p := range pts[1:] {
		a.Line(toFixed(p))
	}
	a.Stop(closed)
}

// addArc hands the arc to rasterx in pieces of at most a quarter turn, so
// the sweep flag alone picks the direction. Positive spans run
// counter-clockwise on screen, which is the decreasing-angle sweep in y-down
// space.
func addArc(a rasterx.Adder, c geom.Point, rx, ry, startDeg, spanDeg float64) {
	at := func(deg float64) geom.Point {
		s, co := math.Sincos(common.Rad(deg))
		return geom.Pt(c.X+co*rx, c.Y-s*ry)
	}
	var sweep float64
	if spanDeg < 0 {
		sweep = 1
	}
	from := at(startDeg)
	a.Start(toFixed(from))
	n := int(math.Ceil(math.Abs(spanDeg) / 90))
	for i := 1; i <= n; i++ {
		to := at(startDeg + spanDeg*float64(i)/float64(n))
		rasterx.AddArc([]float64{rx, ry, 0, 0, sweep, to.X, to.Y}, c.X, c.Y, from.X, from.Y, a)
		from = to
	}
	a.Stop(false)
}

func toFixed(p geom.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: floatToFixed(p.X), Y: floatToFixed(p.Y)}
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(math.Round(v * 64)) }
