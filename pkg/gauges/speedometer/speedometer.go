package speedometer

import (
	"image/color"
	"strconv"

	"github.com/roffe/txgauges/pkg/common"
	"github.com/roffe/txgauges/pkg/gauge"
	"github.com/roffe/txgauges/pkg/geom"
	"github.com/roffe/txgauges/pkg/paint"
)

const (
	DefaultScaleMax = 320
	DefaultMaxSpeed = 130

	tickStep   = 2
	majorStep  = 20
	mediumStep = 10
	sweepDeg   = 240

	outerTickIn  = 0.92
	outerTickOut = 0.95
	innerTickIn  = 0.62
	innerTickOut = 0.66
	innerDisk    = 0.64
	labelRing    = 0.80
	needleReach  = 0.93
	needleSpread = 0.4
	wedgeSpread  = 0.03
	unitHeight   = 0.65
)

type Config struct {
	ScaleMax float64 // top of the dial, 320 by default
	MaxSpeed float64 // limiter setpoint, 130 by default
	Limiter  bool
	Unit     string // label under the hub, "Km/h" by default
	Accent   color.Color
}

// Speedometer holds the displayed speed, the limiter setpoint and whether
// the limiter is engaged. Mutate it from the UI goroutine only.
type Speedometer struct {
	gauge.Notifier

	speed    float64
	maxSpeed float64
	limiter  bool

	scale  geom.Scale
	unit   string
	needle color.Color
}

var (
	_ gauge.Painter  = (*Speedometer)(nil)
	_ gauge.Accented = (*Speedometer)(nil)
)

func New(cfg *Config) *Speedometer {
	if cfg == nil {
		cfg = &Config{}
	}
	scaleMax := cfg.ScaleMax
	if scaleMax <= 0 {
		scaleMax = DefaultScaleMax
	}
	s := &Speedometer{
		maxSpeed: DefaultMaxSpeed,
		limiter:  cfg.Limiter,
		scale:    NewScale(scaleMax),
		unit:     "Km/h",
		needle:   paint.Red,
	}
	if cfg.MaxSpeed > 0 {
		s.maxSpeed = cfg.MaxSpeed
	}
	if cfg.Unit != "" {
		s.unit = cfg.Unit
	}
	if cfg.Accent != nil {
		s.needle = cfg.Accent
	}
	return s
}

// NewScale is the 240° sweep starting at -5π/4 (lower left).
func NewScale(scaleMax float64) geom.Scale {
	return geom.Scale{
		Min:   0,
		Max:   scaleMax,
		Start: -common.Pi54,
		Sweep: common.Rad(sweepDeg),
	}
}

// SetSpeed displays v, held inside [0, MaxSpeed] while the limiter is on.
func (s *Speedometer) SetSpeed(v float64) {
	s.speed = v
	if s.limiter {
		s.speed = common.Clamp(v, 0, s.maxSpeed)
	}
	s.Invalidate()
}

// SetMaxSpeed moves the limiter setpoint. A displayed speed above the new
// maximum is pulled down to it whether or not the limiter is on.
func (s *Speedometer) SetMaxSpeed(m float64) {
	s.maxSpeed = m
	if s.speed > s.maxSpeed {
		s.speed = s.maxSpeed
	}
	s.Invalidate()
}

// SetLimiter engages or releases the limiter. Engaging clamps at once.
func (s *Speedometer) SetLimiter(enabled bool) {
	s.limiter = enabled
	if enabled && s.speed > s.maxSpeed {
		s.speed = s.maxSpeed
	}
	s.Invalidate()
}

func (s *Speedometer) Speed() float64    { return s.speed }
func (s *Speedometer) MaxSpeed() float64 { return s.maxSpeed }
func (s *Speedometer) Limiter() bool     { return s.limiter }
func (s *Speedometer) ScaleMax() float64 { return s.scale.Max }

// Limiting reports whether the limiter is engaged and holding the needle
// at the setpoint.
func (s *Speedometer) Limiting() bool {
	return s.limiter && s.speed >= s.maxSpeed
}

func (s *Speedometer) SetAccent(col color.Color) {
	s.needle = col
	s.Invalidate()
}

func (s *Speedometer) Accent() color.Color { return s.needle }

// NeedleAngle is the screen angle for speed v. Speeds off the dial pin the
// needle to its stops.
func (s *Speedometer) NeedleAngle(v float64) float64 {
	return s.scale.ClampedAngle(v)
}

type TickKind int

const (
	Minor TickKind = iota
	Medium
	Major
)

type Graduation struct {
	Speed int
	Angle float64
	Kind  TickKind
}

func (g Graduation) Label() string {
	if g.Kind != Major {
		return ""
	}
	return strconv.Itoa(g.Speed)
}

func (g Graduation) pen() paint.Pen {
	switch g.Kind {
	case Major:
		return paint.SolidPen(paint.White, 3)
	case Medium:
		return paint.SolidPen(paint.White, 2)
	default:
		return paint.SolidPen(paint.Gray, 1)
	}
}

// Graduations returns a tick every 2 units from 0 to the scale maximum.
func (s *Speedometer) Graduations() []Graduation {
	top := int(s.scale.Max)
	out := make([]Graduation, 0, top/tickStep+1)
	for v := 0; v <= top; v += tickStep {
		g := Graduation{Speed: v, Angle: s.scale.Angle(float64(v))}
		switch {
		case v%majorStep == 0:
			g.Kind = Major
		case v%mediumStep == 0:
			g.Kind = Medium
		}
		out = append(out, g)
	}
	return out
}

func (s *Speedometer) Paint(dst paint.Surface) {
	w, h := dst.Bounds()
	d := geom.NewDial(w, h, common.RadiusFace)
	rim := paint.Pen{Gradient: paint.DialGradient(d), Width: 8}
	face := paint.Fill(paint.FaceColor)

	dst.Ellipse(d.Center, d.Radius, d.Radius, rim, face)

	grads := s.Graduations()
	label := paint.TextStyle{
		Size:   max(9, d.Radius*0.08),
		Color:  paint.White,
		Align:  paint.AlignCenter,
		VAlign: paint.AlignMiddle,
	}
	for _, g := range grads {
		a, b := d.Segment(g.Angle, outerTickIn, outerTickOut)
		dst.Line(a, b, g.pen())
		if l := g.Label(); l != "" {
			dst.Text(d.At(g.Angle, labelRing), l, label)
		}
	}

	dst.Ellipse(d.Center, d.Radius*innerDisk, d.Radius*innerDisk, paint.Pen{Gradient: paint.InnerGradient(d), Width: 8}, face)
	for _, g := range grads {
		a, b := d.Segment(g.Angle, innerTickIn, innerTickOut)
		dst.Line(a, b, g.pen())
	}

	dst.Polygon(
		d.Triangle(s.NeedleAngle(s.speed), needleReach, needleSpread, common.RadiusTenth),
		paint.SolidPen(s.needle, 1),
		paint.Fill(paint.WithAlpha(s.needle, 150)),
	)

	if s.limiter {
		theta := s.NeedleAngle(s.maxSpeed)
		dst.Polygon(
			[]geom.Point{
				d.At(theta, outerTickOut),
				d.At(theta-wedgeSpread, 1),
				d.At(theta+wedgeSpread, 1),
			},
			paint.SolidPen(paint.Warning, 1),
			paint.Fill(paint.WithAlpha(paint.Warning, 200)),
		)
	}

	dst.Text(geom.Pt(d.Center.X, h*unitHeight), s.unit, paint.TextStyle{
		Size:   max(10, d.Radius*0.08),
		Color:  paint.White,
		Align:  paint.AlignCenter,
		VAlign: paint.AlignBaseline,
	})

	dst.Ellipse(d.Center, d.Radius*common.RadiusHub, d.Radius*common.RadiusHub, rim, face)
}
