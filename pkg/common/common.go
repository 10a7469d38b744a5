package common

import "math"

const (
	Pi2       = math.Pi / 2     // quarter turn, 12 o'clock in screen coordinates is -Pi2
	TwoPi     = math.Pi * 2     // full turn
	Pi54      = math.Pi / 4 * 5 // speedometer scale start is -Pi54
	PiDiv180  = math.Pi / 180
	PiDiv30   = math.Pi / 30 // one clock minute
	PiDiv18   = math.Pi / 18 // ten degrees
	OneHalf   = 1.0 / 2.0
	OneSixty  = 1.0 / 60.0
	OneTwelve = 1.0 / 12.0
	Sec2Hour  = 1.0 / 3600.0
)

// Radius fractions shared by the dial faces.
const (
	RadiusTenth      = 0.10
	RadiusHub        = 0.18
	RadiusHourHand   = 0.60
	RadiusNumeral    = 0.70
	RadiusMarkInner  = 0.80
	RadiusTickInner  = 0.85
	RadiusTickOuter  = 0.90
	RadiusMinuteHand = 0.93
	RadiusFace       = 0.95
)

// Rad converts degrees to radians.
func Rad(deg float64) float64 { return deg * PiDiv180 }

// Deg converts radians to degrees.
func Deg(rad float64) float64 { return rad / PiDiv180 }

// NormDeg folds deg into [0, 360).
func NormDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
