// Package paint is the drawing surface gauges render onto. A Surface
// exposes the handful of immediate-mode primitives the gauges need;
// Canvas rasterizes them into an image and Recorder keeps them as a list
// for inspection.
package paint

import (
	"image/color"

	"github.com/srwiley/rasterx"

	"github.com/roffe/txgauges/pkg/geom"
)

type Surface interface {
	// Bounds returns the drawable width and height in pixels.
	Bounds() (w, h float64)
	Ellipse(center geom.Point, rx, ry float64, pen Pen, brush Brush)
	Polygon(pts []geom.Point, pen Pen, brush Brush)
	Line(a, b geom.Point, pen Pen)
	// Arc strokes part of an ellipse. Angles are in degrees, zero at 3
	// o'clock and positive counter-clockwise.
	Arc(center geom.Point, rx, ry, startDeg, spanDeg float64, pen Pen)
	Text(at geom.Point, s string, style TextStyle)
}

type Cap int

const (
	ButtCap Cap = iota
	RoundCap
)

// Pen strokes outlines. Gradient wins over Color when both are set.
type Pen struct {
	Color    color.Color
	Gradient *LinearGradient
	Width    float64
	Cap      Cap
}

func (p Pen) Visible() bool {
	return p.Width > 0 && (p.Color != nil || p.Gradient != nil)
}

// Brush fills shapes. A nil Color means no fill.
type Brush struct {
	Color color.Color
}

var NoBrush = Brush{}

func (b Brush) Visible() bool { return b.Color != nil }

func SolidPen(c color.Color, width float64) Pen {
	return Pen{Color: c, Width: width}
}

func Fill(c color.Color) Brush { return Brush{Color: c} }

type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

type VAlign int

const (
	AlignBaseline VAlign = iota
	AlignMiddle
	AlignTop
	AlignBottom
)

type TextStyle struct {
	Size   float64
	Color  color.Color
	Align  HAlign
	VAlign VAlign
}

type Stop struct {
	Offset float64
	Color  color.RGBA
}

// LinearGradient varies a pen's color along From→To in canvas coordinates,
// padding past either end. Stops must be sorted by Offset.
type LinearGradient struct {
	From, To geom.Point
	Stops    []Stop
}

// gradient converts g for a w×h raster.
func (g *LinearGradient) gradient(w, h float64) *rasterx.Gradient {
	rg := &rasterx.Gradient{
		Points: [5]float64{g.From.X, g.From.Y, g.To.X, g.To.Y, 0},
		Matrix: rasterx.Identity,
		Units:  rasterx.UserSpaceOnUse,
	}
	rg.Bounds.W, rg.Bounds.H = w, h
	for _, s := range g.Stops {
		rg.Stops = append(rg.Stops, rasterx.GradStop{StopColor: s.Color, Offset: s.Offset, Opacity: 1})
	}
	return rg
}
