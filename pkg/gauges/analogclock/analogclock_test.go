package analogclock

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roffe/txgauges/pkg/common"
	"github.com/roffe/txgauges/pkg/geom"
	"github.com/roffe/txgauges/pkg/paint"
	"github.com/roffe/txgauges/pkg/timesource"
)

const eps = 1e-9

// angleDiff is the circular distance between two angles in degrees.
func angleDiff(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	return math.Min(d, 360-d)
}

func at(h, m, s int) time.Time {
	return time.Date(2024, 5, 17, h, m, s, 0, time.UTC)
}

func TestSecondHandAngle(t *testing.T) {
	for s := 0; s < 60; s++ {
		hands := HandAngles(at(9, 41, s))
		want := common.NormDeg(-90 + float64(s)*6)
		assert.InDelta(t, 0, angleDiff(want, geom.NormDeg(hands.Second)), 1e-6, "second %d", s)
	}
}

func TestHandAngles(t *testing.T) {
	tests := []struct {
		name         string
		t            time.Time
		hour, minute float64 // degrees, normalized
	}{
		{"midnight", at(0, 0, 0), 270, 270},
		{"three o'clock", at(15, 0, 0), 0, 270},
		{"half past six", at(6, 30, 0), 90 + 15, 90},
		{"minute creeps with seconds", at(12, 0, 30), 270 + 0.25, 270 + 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hands := HandAngles(tt.t)
			assert.InDelta(t, 0, angleDiff(tt.hour, geom.NormDeg(hands.Hour)), 1e-6)
			assert.InDelta(t, 0, angleDiff(tt.minute, geom.NormDeg(hands.Minute)), 1e-6)
		})
	}
}

func TestGraduations(t *testing.T) {
	g := Graduations()
	require.Len(t, g, Ticks)

	var numerals []string
	for _, tick := range g {
		if tick.Hour {
			numerals = append(numerals, tick.Numeral)
		} else {
			assert.Empty(t, tick.Numeral)
		}
	}
	assert.Equal(t, []string{"12", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}, numerals)
	assert.InDelta(t, -math.Pi/2, g[0].Angle, eps)
	assert.InDelta(t, 0, g[15].Angle, eps)
	assert.Equal(t, "3", g[15].Numeral)
}

func TestPaint(t *testing.T) {
	c := New(&Config{Clock: timesource.Fixed(at(10, 8, 15))})
	r := paint.NewRecorder(400, 400)
	c.Paint(r)

	assert.Len(t, r.Filter(paint.OpEllipse), 2, "face and hub")
	assert.Len(t, r.Filter(paint.OpText), 12)
	// 12 hour markers plus minute and hour hands
	assert.Len(t, r.Filter(paint.OpPolygon), 14)

	lines := r.Filter(paint.OpLine)
	require.Len(t, lines, 48+1)

	second := lines[len(lines)-1]
	assert.Equal(t, 3.0, second.Pen.Width)
	d := geom.NewDial(400, 400, common.RadiusFace)
	tip := d.At(HandAngles(at(10, 8, 15)).Second, common.RadiusFace)
	assert.InDelta(t, tip.X, second.Points[1].X, eps)
	assert.InDelta(t, tip.Y, second.Points[1].Y, eps)
	// 15 seconds puts the second hand at 3 o'clock
	assert.InDelta(t, d.Center.X+d.Radius*common.RadiusFace, second.Points[1].X, 1e-6)

	twelve, ok := r.FindText("12")
	require.True(t, ok)
	assert.InDelta(t, d.Center.X, twelve.Points[0].X, 1e-6)
	assert.Less(t, twelve.Points[0].Y, d.Center.Y)
}

func TestPaintIdempotent(t *testing.T) {
	c := New(&Config{Clock: timesource.Fixed(at(1, 2, 3))})
	a, b := paint.NewRecorder(300, 200), paint.NewRecorder(300, 200)
	c.Paint(a)
	c.Paint(b)
	assert.Equal(t, a.Ops, b.Ops)
}

func TestSetLocation(t *testing.T) {
	c := New(&Config{Clock: timesource.Fixed(at(10, 0, 0))})
	var n int
	c.OnInvalidate(func() { n++ })

	loc := time.FixedZone("UTC+3", 3*60*60)
	c.SetLocation(loc)
	c.SetLocation(loc)
	assert.Equal(t, 1, n)
	assert.Equal(t, 13, c.Now().Hour())

	c.SetLocation(nil)
	assert.Equal(t, 10, c.Now().Hour())
	assert.Equal(t, 2, n)
}

func TestAccent(t *testing.T) {
	c := New(nil)
	assert.Equal(t, paint.Red, c.Accent())
	var n int
	c.OnInvalidate(func() { n++ })
	c.SetAccent(paint.Blue)
	assert.Equal(t, paint.Blue, c.Accent())
	assert.Equal(t, 1, n)
}
