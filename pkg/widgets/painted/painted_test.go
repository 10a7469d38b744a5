package painted

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roffe/txgauges/pkg/gauge"
	"github.com/roffe/txgauges/pkg/geom"
	"github.com/roffe/txgauges/pkg/paint"
)

type fakeGauge struct {
	gauge.Notifier
	calls  int
	w, h   float64
	accent color.Color
}

func (f *fakeGauge) Paint(dst paint.Surface) {
	f.calls++
	f.w, f.h = dst.Bounds()
	dst.Ellipse(geom.Pt(f.w/2, f.h/2), f.w/4, f.h/4, paint.Pen{}, paint.Fill(paint.Red))
}

func (f *fakeGauge) SetAccent(c color.Color) { f.accent = c; f.Invalidate() }
func (f *fakeGauge) Accent() color.Color     { return f.accent }

type plain struct{}

func (plain) Paint(paint.Surface) {}

func TestDraw(t *testing.T) {
	g := &fakeGauge{}
	w := New(g, &Config{Background: paint.FaceColor})
	img := w.draw(120, 80)
	assert.Equal(t, 1, g.calls)
	assert.Equal(t, 120.0, g.w)
	assert.Equal(t, 80.0, g.h)
	assert.Equal(t, 120, img.Bounds().Dx())

	r, _, _, _ := img.At(60, 40).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, paint.FaceColor, img.At(0, 0))
}

func TestRenderer(t *testing.T) {
	test.NewTempApp(t)
	w := New(plain{}, &Config{MinSize: fyne.NewSize(50, 60)})
	r := test.WidgetRenderer(w)
	assert.Equal(t, fyne.NewSize(50, 60), r.MinSize())
	require.Len(t, r.Objects(), 1)

	w.Resize(fyne.NewSize(300, 200))
	assert.Equal(t, fyne.NewSize(300, 200), r.Objects()[0].Size())
	assert.Equal(t, fyne.NewSize(200, 200), New(plain{}, nil).MinSize())
}

func TestCapturePaints(t *testing.T) {
	test.NewTempApp(t)
	g := &fakeGauge{}
	w := New(g, nil)
	win := test.NewWindow(w)
	defer win.Close()
	win.Resize(fyne.NewSize(100, 100))

	win.Canvas().Capture()
	assert.Positive(t, g.calls)
	assert.Positive(t, g.w)
	assert.Same(t, g, w.Painter())
}

func TestSecondaryTapOpensPicker(t *testing.T) {
	test.NewTempApp(t)
	g := &fakeGauge{accent: paint.Red}
	w := New(g, nil)
	win := test.NewWindow(w)
	defer win.Close()
	win.Resize(fyne.NewSize(300, 300))

	test.TapSecondary(w)
	assert.NotNil(t, win.Canvas().Overlays().Top())
}

func TestSecondaryTapIgnoredWithoutAccent(t *testing.T) {
	test.NewTempApp(t)
	w := New(plain{}, nil)
	win := test.NewWindow(w)
	defer win.Close()

	test.TapSecondary(w)
	assert.Nil(t, win.Canvas().Overlays().Top())
}
