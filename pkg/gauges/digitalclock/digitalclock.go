package digitalclock

import (
	"image/color"
	"math"
	"time"

	"github.com/roffe/txgauges/pkg/common"
	"github.com/roffe/txgauges/pkg/gauge"
	"github.com/roffe/txgauges/pkg/geom"
	"github.com/roffe/txgauges/pkg/paint"
	"github.com/roffe/txgauges/pkg/timesource"
)

const (
	baseInset  = 20
	trackInset = 50
	trackWidth = 25
	arcStart   = 90 // degrees, 12 o'clock

	TimeLayout   = "15:04"
	DateLayout   = "02/01/2006"
	SecondLayout = "05"
)

var (
	Dark  = color.RGBA{0x3B, 0x3A, 0x44, 0xFF}
	Light = color.RGBA{0x4A, 0x49, 0x53, 0xFF}
	Green = color.RGBA{0x75, 0xEC, 0xB5, 0xFF}
)

type Config struct {
	Clock  timesource.Clock
	Accent color.Color // progress arc and seconds, green by default
}

type Clock struct {
	gauge.Notifier

	clock  timesource.Clock
	accent color.Color
}

var (
	_ gauge.Painter  = (*Clock)(nil)
	_ gauge.Accented = (*Clock)(nil)
)

func New(cfg *Config) *Clock {
	c := &Clock{clock: timesource.System, accent: Green}
	if cfg == nil {
		return c
	}
	if cfg.Clock != nil {
		c.clock = cfg.Clock
	}
	if cfg.Accent != nil {
		c.accent = cfg.Accent
	}
	return c
}

func (c *Clock) SetAccent(col color.Color) {
	c.accent = col
	c.Invalidate()
}

func (c *Clock) Accent() color.Color { return c.accent }

// SpanAngle is the progress arc length in degrees for a second of the
// minute. Negative spans run clockwise.
func SpanAngle(second int) float64 {
	return -float64(second) * 6
}

// Readout is the formatted text shown on the face.
type Readout struct {
	Time, Day, Date, Second string
}

func Format(t time.Time) Readout {
	return Readout{
		Time:   t.Format(TimeLayout),
		Day:    t.Weekday().String(),
		Date:   t.Format(DateLayout),
		Second: t.Format(SecondLayout),
	}
}

func (c *Clock) Paint(s paint.Surface) {
	w, h := s.Bounds()
	side := math.Min(w, h)
	center := geom.Pt(math.Floor(w*common.OneHalf), math.Floor(h*common.OneHalf))
	half := side * common.OneHalf

	base := math.Max(1, half-baseInset)
	s.Ellipse(center, base, base, paint.SolidPen(Dark, 1), paint.Fill(Dark))

	track := math.Max(1, half-trackInset)
	s.Ellipse(center, track, track, paint.SolidPen(Light, trackWidth), paint.NoBrush)

	now := c.clock.Now()
	progress := paint.Pen{Color: c.accent, Width: trackWidth, Cap: paint.RoundCap}
	s.Arc(center, track, track, arcStart, SpanAngle(now.Second()), progress)

	r := Format(now)
	small := math.Max(10, side*0.045)
	s.Text(center, r.Time, paint.TextStyle{
		Size:   math.Max(12, side*0.15),
		Color:  paint.White,
		Align:  paint.AlignCenter,
		VAlign: paint.AlignMiddle,
	})
	s.Text(center.Add(geom.Pt(0, -side*0.2)), r.Second, paint.TextStyle{
		Size:   math.Max(10, side*0.06),
		Color:  c.accent,
		Align:  paint.AlignCenter,
		VAlign: paint.AlignMiddle,
	})
	s.Text(center.Add(geom.Pt(0, side*0.2)), r.Day, paint.TextStyle{
		Size:   small,
		Color:  paint.White,
		Align:  paint.AlignCenter,
		VAlign: paint.AlignBottom,
	})
	s.Text(center.Add(geom.Pt(0, side*0.3)), r.Date, paint.TextStyle{
		Size:   small,
		Color:  paint.White,
		Align:  paint.AlignCenter,
		VAlign: paint.AlignBottom,
	})
}
