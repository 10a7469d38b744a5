// Package geom holds the small amount of trigonometry shared by all gauges:
// polar projection around a dial center and linear value-to-angle mapping.
//
// Angles are in radians in screen space, so y grows downward and -Pi/2
// points at 12 o'clock.
package geom

import (
	"math"

	"github.com/roffe/txgauges/pkg/common"
)

type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dial is the center and radius a gauge face is laid out in.
type Dial struct {
	Center Point
	Radius float64
}

// NewDial centers a dial in a w×h box with radius fill·min(w,h)/2.
func NewDial(w, h, fill float64) Dial {
	return Dial{
		Center: Point{X: math.Floor(w * common.OneHalf), Y: math.Floor(h * common.OneHalf)},
		Radius: fill * math.Min(w, h) * common.OneHalf,
	}
}

// At projects the point at angle theta on the circle of radius frac·Radius.
func (d Dial) At(theta, frac float64) Point {
	s, c := math.Sincos(theta)
	r := d.Radius * frac
	return Point{X: d.Center.X + c*r, Y: d.Center.Y + s*r}
}

// Segment returns the radial segment at theta between two radius fractions.
func (d Dial) Segment(theta, from, to float64) (Point, Point) {
	return d.At(theta, from), d.At(theta, to)
}

// Triangle returns a needle: the tip at theta on tip·Radius and two base
// corners spread ±spread radians on base·Radius.
func (d Dial) Triangle(theta, tip, spread, base float64) []Point {
	return []Point{
		d.At(theta, tip),
		d.At(theta-spread, base),
		d.At(theta+spread, base),
	}
}

// Marker returns the tapered quadrilateral used for hour and cardinal marks.
func (d Dial) Marker(theta float64) []Point {
	return []Point{
		d.At(theta-0.02, common.RadiusTickOuter),
		d.At(theta-0.01, common.RadiusMarkInner),
		d.At(theta+0.01, common.RadiusMarkInner),
		d.At(theta+0.02, common.RadiusTickOuter),
	}
}

// Scale maps a value range linearly onto an angular sweep.
type Scale struct {
	Min, Max float64
	Start    float64 // radians at Min
	Sweep    float64 // radians between Min and Max
}

// Angle returns the angle for v. Values outside the range extrapolate.
func (s Scale) Angle(v float64) float64 {
	span := s.Max - s.Min
	if span == 0 {
		return s.Start
	}
	return s.Start + s.Sweep*(v-s.Min)/span
}

// ClampedAngle is Angle with v held inside [Min, Max].
func (s Scale) ClampedAngle(v float64) float64 {
	return s.Angle(common.Clamp(v, s.Min, s.Max))
}

// FromTop converts a fraction of a full turn into a screen angle
// measured clockwise from 12 o'clock.
func FromTop(frac float64) float64 {
	return -common.Pi2 + common.TwoPi*frac
}

// NormDeg returns theta in degrees folded into [0, 360).
func NormDeg(theta float64) float64 {
	return common.NormDeg(common.Deg(theta))
}
