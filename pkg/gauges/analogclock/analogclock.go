package analogclock

import (
	"image/color"
	"strconv"
	"time"

	"github.com/roffe/txgauges/pkg/common"
	"github.com/roffe/txgauges/pkg/gauge"
	"github.com/roffe/txgauges/pkg/geom"
	"github.com/roffe/txgauges/pkg/paint"
	"github.com/roffe/txgauges/pkg/timesource"
)

const (
	Ticks        = 60
	ticksPerHour = 5
)

type Config struct {
	Clock    timesource.Clock // defaults to the system clock
	Location *time.Location   // nil keeps the clock's location
	Accent   color.Color      // minute and hour hand color, red by default
}

type Clock struct {
	gauge.Notifier

	clock  timesource.Clock
	loc    *time.Location
	accent color.Color
}

var (
	_ gauge.Painter  = (*Clock)(nil)
	_ gauge.Accented = (*Clock)(nil)
)

func New(cfg *Config) *Clock {
	c := &Clock{
		clock:  timesource.System,
		accent: paint.Red,
	}
	if cfg == nil {
		return c
	}
	if cfg.Clock != nil {
		c.clock = cfg.Clock
	}
	if cfg.Accent != nil {
		c.accent = cfg.Accent
	}
	c.loc = cfg.Location
	return c
}

// SetLocation changes the zone the face shows. nil means the clock source's own.
func (c *Clock) SetLocation(loc *time.Location) {
	if loc == c.loc {
		return
	}
	c.loc = loc
	c.Invalidate()
}

func (c *Clock) Location() *time.Location { return c.loc }

func (c *Clock) SetAccent(col color.Color) {
	c.accent = col
	c.Invalidate()
}

func (c *Clock) Accent() color.Color { return c.accent }

// Now is the instant the next paint will show.
func (c *Clock) Now() time.Time {
	return timesource.In(c.clock, c.loc).Now()
}

// Hands holds the three hand angles in radians, screen space.
type Hands struct {
	Hour, Minute, Second float64
}

// HandAngles places the hands for t. Minute and hour hands move
// continuously; the second hand jumps once per second.
func HandAngles(t time.Time) Hands {
	h, m, s := float64(t.Hour()%12), float64(t.Minute()), float64(t.Second())
	return Hands{
		Second: geom.FromTop(s * common.OneSixty),
		Minute: geom.FromTop(m*common.OneSixty + s*common.Sec2Hour),
		Hour:   geom.FromTop((h + m*common.OneSixty + s*common.Sec2Hour) * common.OneTwelve),
	}
}

// Graduation is one of the 60 face ticks.
type Graduation struct {
	Index   int
	Angle   float64
	Hour    bool
	Numeral string // set on hour ticks
}

func Graduations() []Graduation {
	out := make([]Graduation, Ticks)
	for i := range out {
		g := Graduation{
			Index: i,
			Angle: geom.FromTop(float64(i) / Ticks),
			Hour:  i%ticksPerHour == 0,
		}
		if g.Hour {
			n := i / ticksPerHour
			if n == 0 {
				n = 12
			}
			g.Numeral = strconv.Itoa(n)
		}
		out[i] = g
	}
	return out
}

func (c *Clock) Paint(s paint.Surface) {
	w, h := s.Bounds()
	d := geom.NewDial(w, h, common.RadiusFace)
	rim := paint.Pen{Gradient: paint.DialGradient(d), Width: 8}
	face := paint.Fill(paint.FaceColor)

	s.Ellipse(d.Center, d.Radius, d.Radius, rim, face)

	white := paint.SolidPen(paint.White, 1)
	numeral := paint.TextStyle{
		Size:   max(10, d.Radius*0.1),
		Color:  paint.White,
		Align:  paint.AlignCenter,
		VAlign: paint.AlignMiddle,
	}
	for _, g := range Graduations() {
		if g.Hour {
			s.Polygon(d.Marker(g.Angle), white, paint.Fill(paint.White))
			s.Text(d.At(g.Angle, common.RadiusNumeral), g.Numeral, numeral)
			continue
		}
		a, b := d.Segment(g.Angle, common.RadiusTickInner, common.RadiusTickOuter)
		s.Line(a, b, white)
	}

	hands := HandAngles(c.Now())

	s.Line(d.Center, d.At(hands.Second, common.RadiusFace), paint.SolidPen(paint.WithAlpha(paint.Red, 153), 3))

	pen := paint.SolidPen(c.accent, 1)
	fill := paint.Fill(paint.WithAlpha(c.accent, 150))
	s.Polygon(d.Triangle(hands.Minute, common.RadiusMinuteHand, 0.4, common.RadiusTenth), pen, fill)
	s.Polygon(d.Triangle(hands.Hour, common.RadiusHourHand, 0.3, common.RadiusTenth), pen, fill)

	s.Ellipse(d.Center, d.Radius*common.RadiusHub, d.Radius*common.RadiusHub, rim, face)
}
