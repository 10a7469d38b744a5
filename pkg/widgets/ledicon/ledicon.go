package ledicon

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

var (
	OffColor = color.RGBA{0x80, 0x80, 0x80, 0xFF}
	OnColor  = color.RGBA{0x00, 0xFF, 0x00, 0xFF}
)

// Widget is a round status lamp followed by a label.
type Widget struct {
	widget.BaseWidget

	Text string

	led   *canvas.Circle
	label *widget.Label

	on    color.Color
	state bool
}

// New creates a lamp lit with on, or the default green when on is nil.
func New(label string, on color.Color) *Widget {
	w := &Widget{
		Text:  label,
		on:    on,
		led:   &canvas.Circle{FillColor: OffColor},
		label: widget.NewLabel(label),
	}
	if w.on == nil {
		w.on = OnColor
	}
	w.ExtendBaseWidget(w)
	return w
}

func (w *Widget) On()  { w.SetState(true) }
func (w *Widget) Off() { w.SetState(false) }

func (w *Widget) State() bool { return w.state }

func (w *Widget) SetState(state bool) {
	if state == w.state {
		return
	}
	w.state = state
	w.led.FillColor = OffColor
	if state {
		w.led.FillColor = w.on
	}
	w.led.Refresh()
}

// Color is the current lamp fill.
func (w *Widget) Color() color.Color { return w.led.FillColor }

func (w *Widget) CreateRenderer() fyne.WidgetRenderer {
	return &iconRenderer{w: w}
}

var _ fyne.WidgetRenderer = (*iconRenderer)(nil)

type iconRenderer struct {
	w *Widget
}

func (r *iconRenderer) MinSize() fyne.Size {
	return fyne.NewSize(20+r.w.label.MinSize().Width, 34)
}

func (r *iconRenderer) Layout(size fyne.Size) {
	r.w.led.Resize(fyne.NewSize(20, 20))
	r.w.led.Move(fyne.NewPos(0, (size.Height-20)/2))
	r.w.label.Move(fyne.NewPos(20, 0))
	r.w.label.Resize(fyne.NewSize(size.Width-20, size.Height))
}

func (r *iconRenderer) Refresh() {
	r.w.label.SetText(r.w.Text)
	r.w.led.Refresh()
}

func (r *iconRenderer) Destroy() {
}

func (r *iconRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.w.led, r.w.label}
}
