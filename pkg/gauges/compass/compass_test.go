package compass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roffe/txgauges/pkg/common"
	"github.com/roffe/txgauges/pkg/geom"
	"github.com/roffe/txgauges/pkg/paint"
)

func TestCardinal(t *testing.T) {
	tests := []struct {
		decl int
		want string
	}{
		{0, "N"},
		{360, "N"},
		{90, "E"},
		{180, "S"},
		{270, "O"},
		{45, ""},
		{30, ""},
		{-90, "O"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Cardinal(tt.decl), "declination %d", tt.decl)
	}
}

func TestGraduations(t *testing.T) {
	g := Graduations(0)
	require.Len(t, g, Ticks)
	assert.Equal(t, 10, g[0].Declination)
	assert.Equal(t, 360, g[Ticks-1].Declination)

	var majors, labels int
	for _, tick := range g {
		if tick.Major() {
			majors++
		}
		if tick.Label != "" {
			labels++
			assert.Zero(t, tick.Declination%30)
		}
	}
	assert.Equal(t, 4, majors)
	assert.Equal(t, 12, labels)

	north := g[Ticks-1]
	assert.Equal(t, "N", north.Cardinal)
	assert.Equal(t, "0", north.Label)
	// with heading 0 north points up
	assert.InDelta(t, 270, geom.NormDeg(north.Angle), 1e-6)

	east := g[8]
	assert.Equal(t, 90, east.Declination)
	assert.Equal(t, "E", east.Cardinal)
	assert.Equal(t, "90", east.Label)
}

func TestGraduationsRotateWithHeading(t *testing.T) {
	a := Graduations(0)
	b := Graduations(45)
	for i := range a {
		assert.InDelta(t, common.Rad(45), b[i].Angle-a[i].Angle, 1e-9)
	}
}

func TestSetHeading(t *testing.T) {
	c := New(nil)
	var n int
	c.OnInvalidate(func() { n++ })

	c.SetHeading(370)
	assert.InDelta(t, 10, c.Heading(), 1e-9)
	c.SetHeading(-90)
	assert.InDelta(t, 270, c.Heading(), 1e-9)
	assert.Equal(t, 2, n)

	assert.InDelta(t, 90, New(&Config{Heading: 450}).Heading(), 1e-9)
}

func TestPaint(t *testing.T) {
	c := New(&Config{Heading: 0})
	r := paint.NewRecorder(500, 500)
	c.Paint(r)

	assert.Len(t, r.Filter(paint.OpEllipse), 2)
	assert.Len(t, r.Filter(paint.OpLine), 32)
	// 4 cardinal markers and two arrows
	polys := r.Filter(paint.OpPolygon)
	require.Len(t, polys, 6)

	texts := r.Texts()
	assert.Len(t, texts, 12+4)
	for _, l := range []string{"N", "E", "S", "O", "0", "90", "180", "270", "30"} {
		assert.Contains(t, texts, l)
	}

	d := geom.NewDial(500, 500, faceFill)
	n, ok := r.FindText("N")
	require.True(t, ok)
	assert.InDelta(t, d.Center.X, n.Points[0].X, 1e-6)
	assert.InDelta(t, d.Center.Y-d.Radius*common.RadiusNumeral, n.Points[0].Y, 1e-6)

	// south arrow is blue and points down
	var south *paint.Op
	for i := range polys {
		if polys[i].Pen.Color == paint.Blue {
			south = &polys[i]
		}
	}
	require.NotNil(t, south)
	assert.InDelta(t, d.Center.Y+d.Radius*arrowReach, south.Points[0].Y, 1e-6)
	assert.Equal(t, paint.BlueFill, south.Brush.Color)
}

func TestPaintIdempotent(t *testing.T) {
	c := New(nil)
	c.SetHeading(123)
	a := paint.NewRecorder(320, 240)
	c.Paint(a)
	c.SetHeading(123)
	b := paint.NewRecorder(320, 240)
	c.Paint(b)
	assert.Equal(t, a.Ops, b.Ops)
}

func TestNorthArrowFollowsHeading(t *testing.T) {
	c := New(&Config{Heading: 90})
	r := paint.NewRecorder(200, 200)
	c.Paint(r)
	d := geom.NewDial(200, 200, faceFill)
	for _, p := range r.Filter(paint.OpPolygon) {
		if p.Pen.Color == paint.Red {
			tip := p.Points[0]
			assert.InDelta(t, d.Center.X+d.Radius*arrowReach, tip.X, 1e-6)
			assert.InDelta(t, d.Center.Y, tip.Y, 1e-6)
			return
		}
	}
	t.Fatal("north arrow not drawn")
}
