package compass

import (
	"image/color"
	"strconv"

	"github.com/roffe/txgauges/pkg/common"
	"github.com/roffe/txgauges/pkg/gauge"
	"github.com/roffe/txgauges/pkg/geom"
	"github.com/roffe/txgauges/pkg/paint"
)

const (
	Ticks     = 36
	tickStep  = 10 // degrees between ticks
	labelStep = 30
	crossStep = 90

	faceFill   = 0.8
	labelRing  = 1.2
	arrowSpan  = 1.0
	arrowReach = 0.6
)

var cardinals = map[int]string{
	0:   "N",
	90:  "E",
	180: "S",
	270: "O",
}

// Cardinal returns the letter for a cardinal declination, or "" for any
// other value. 360 is north.
func Cardinal(declination int) string {
	return cardinals[((declination%360)+360)%360]
}

type Config struct {
	Heading float64     // initial heading in degrees
	Accent  color.Color // north arrow color, red by default
}

type Compass struct {
	gauge.Notifier

	heading float64
	north   color.Color
}

var (
	_ gauge.Painter  = (*Compass)(nil)
	_ gauge.Accented = (*Compass)(nil)
)

func New(cfg *Config) *Compass {
	c := &Compass{north: paint.Red}
	if cfg == nil {
		return c
	}
	c.heading = common.NormDeg(cfg.Heading)
	if cfg.Accent != nil {
		c.north = cfg.Accent
	}
	return c
}

// SetHeading sets the heading in degrees, folded into [0, 360).
func (c *Compass) SetHeading(deg float64) {
	c.heading = common.NormDeg(deg)
	c.Invalidate()
}

func (c *Compass) Heading() float64 { return c.heading }

func (c *Compass) SetAccent(col color.Color) {
	c.north = col
	c.Invalidate()
}

func (c *Compass) Accent() color.Color { return c.north }

type Graduation struct {
	Declination int // 10..360
	Angle       float64
	Cardinal    string // letter on the four main points
	Label       string // degree label every 30°
}

func (g Graduation) Major() bool { return g.Cardinal != "" }

// Graduations lays out the rose for a heading in degrees. The rose turns
// with the heading so north sits at -90°+heading on screen.
func Graduations(heading float64) []Graduation {
	base := -common.Pi2 + common.Rad(heading)
	out := make([]Graduation, Ticks)
	for i := range out {
		d := (i + 1) * tickStep
		g := Graduation{
			Declination: d,
			Angle:       base + float64(d)*common.PiDiv180,
		}
		if d%crossStep == 0 {
			g.Cardinal = Cardinal(d)
		}
		if d%labelStep == 0 {
			g.Label = strconv.Itoa(d % 360)
		}
		out[i] = g
	}
	return out
}

func (c *Compass) Paint(s paint.Surface) {
	w, h := s.Bounds()
	d := geom.NewDial(w, h, faceFill)
	rim := paint.Pen{Gradient: paint.DialGradient(d), Width: 8}
	face := paint.Fill(paint.FaceColor)

	s.Ellipse(d.Center, d.Radius, d.Radius, rim, face)

	white := paint.SolidPen(paint.White, 1)
	text := paint.TextStyle{
		Size:   max(10, d.Radius*0.1),
		Color:  paint.White,
		Align:  paint.AlignCenter,
		VAlign: paint.AlignMiddle,
	}
	for _, g := range Graduations(c.heading) {
		if g.Major() {
			s.Polygon(d.Marker(g.Angle), white, paint.Fill(paint.White))
		} else {
			a, b := d.Segment(g.Angle, common.RadiusTickInner, common.RadiusTickOuter)
			s.Line(a, b, white)
		}
		if g.Label != "" {
			s.Text(d.At(g.Angle, labelRing), g.Label, text)
		}
		if g.Major() {
			s.Text(d.At(g.Angle, common.RadiusNumeral), g.Cardinal, text)
		}
		switch g.Declination {
		case 360:
			c.arrow(s, d, g.Angle, c.north)
		case 180:
			c.arrow(s, d, g.Angle, paint.Blue)
		}
	}

	s.Ellipse(d.Center, d.Radius*common.RadiusTenth, d.Radius*common.RadiusTenth, rim, face)
}

func (c *Compass) arrow(s paint.Surface, d geom.Dial, theta float64, col color.Color) {
	s.Polygon(
		d.Triangle(theta, arrowReach, arrowSpan, common.RadiusTenth),
		paint.SolidPen(col, 1),
		paint.Fill(paint.WithAlpha(col, 150)),
	)
}
