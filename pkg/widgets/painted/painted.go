package painted

import (
	"image"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/lusingander/colorpicker"

	"github.com/roffe/txgauges/pkg/gauge"
	"github.com/roffe/txgauges/pkg/paint"
)

type Config struct {
	MinSize    fyne.Size   // default 200x200
	Background color.Color // nil leaves the raster transparent
	Fonts      *paint.Fonts
}

// Painted hosts a gauge.Painter on a raster that is regenerated on every
// refresh. Painters with an OnInvalidate hook refresh the widget
// themselves.
type Painted struct {
	widget.BaseWidget

	painter gauge.Painter
	raster  *canvas.Raster
	fonts   *paint.Fonts
	bg      color.Color
	minsize fyne.Size

	OnAccentChanged func(col color.Color)
}

type invalidator interface {
	OnInvalidate(fn func())
}

func New(p gauge.Painter, cfg *Config) *Painted {
	if cfg == nil {
		cfg = &Config{}
	}
	w := &Painted{
		painter: p,
		fonts:   cfg.Fonts,
		bg:      cfg.Background,
		minsize: fyne.NewSize(200, 200),
	}
	w.ExtendBaseWidget(w)
	if cfg.MinSize.Width > 0 && cfg.MinSize.Height > 0 {
		w.minsize = cfg.MinSize
	}
	if w.fonts == nil {
		f, err := paint.DefaultFonts()
		if err != nil {
			log.Printf("painted: no fonts, text disabled: %v", err)
		}
		w.fonts = f
	}
	w.raster = canvas.NewRaster(w.draw)
	if inv, ok := p.(invalidator); ok {
		inv.OnInvalidate(w.Refresh)
	}
	return w
}

func (w *Painted) Painter() gauge.Painter { return w.painter }

func (w *Painted) draw(width, height int) image.Image {
	c := paint.NewCanvas(width, height, w.bg, w.fonts)
	w.painter.Paint(c)
	return c.Image()
}

// TappedSecondary opens a color picker for painters that take an accent.
func (w *Painted) TappedSecondary(*fyne.PointEvent) {
	acc, ok := w.painter.(gauge.Accented)
	if !ok {
		return
	}
	cnv := fyne.CurrentApp().Driver().CanvasForObject(w)
	if cnv == nil {
		return
	}
	picker := colorpicker.New(250, colorpicker.StyleHueCircle)
	picker.SetColor(acc.Accent())
	picker.SetOnChanged(func(c color.Color) {
		acc.SetAccent(c)
		if w.OnAccentChanged != nil {
			w.OnAccentChanged(c)
		}
	})

	var modal *widget.PopUp
	modal = widget.NewModalPopUp(container.NewVBox(
		picker,
		widget.NewButton("Close", func() {
			modal.Hide()
		}),
	), cnv)
	modal.Show()
}

func (w *Painted) CreateRenderer() fyne.WidgetRenderer {
	return &paintedRenderer{w: w}
}

var _ fyne.WidgetRenderer = (*paintedRenderer)(nil)

type paintedRenderer struct {
	w *Painted
}

func (r *paintedRenderer) Layout(size fyne.Size) {
	r.w.raster.Resize(size)
}

func (r *paintedRenderer) MinSize() fyne.Size {
	return r.w.minsize
}

func (r *paintedRenderer) Refresh() {
	r.w.raster.Refresh()
}

func (r *paintedRenderer) Destroy() {
}

func (r *paintedRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.w.raster}
}
