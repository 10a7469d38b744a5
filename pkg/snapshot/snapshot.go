package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"sync"

	"github.com/skratchdot/open-golang/open"
	sdialog "github.com/sqweek/dialog"
	"golang.design/x/clipboard"
	"golang.org/x/image/draw"

	"github.com/roffe/txgauges/pkg/gauge"
	"github.com/roffe/txgauges/pkg/paint"
)

var ErrCancelled = errors.New("snapshot cancelled")

// Options controls a render. Supersample draws at that multiple of the
// target size and scales down, smoothing edges the rasterizer leaves hard.
type Options struct {
	Width, Height int
	Background    color.Color
	Supersample   int
	Fonts         *paint.Fonts
}

func (o Options) withDefaults() (Options, error) {
	if o.Width <= 0 || o.Height <= 0 {
		return o, fmt.Errorf("invalid snapshot size %dx%d", o.Width, o.Height)
	}
	if o.Supersample < 1 {
		o.Supersample = 1
	}
	if o.Fonts == nil {
		f, err := paint.DefaultFonts()
		if err != nil {
			return o, err
		}
		o.Fonts = f
	}
	return o, nil
}

// Render paints p onto a new image.
func Render(p gauge.Painter, opts Options) (*image.RGBA, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	k := opts.Supersample
	c := paint.NewCanvas(opts.Width*k, opts.Height*k, opts.Background, opts.Fonts)
	p.Paint(c)
	if k == 1 {
		return c.Image(), nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), c.Image(), c.Image().Bounds(), draw.Src, nil)
	return dst, nil
}

func PNG(p gauge.Painter, opts Options) ([]byte, error) {
	img, err := Render(p, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}

func WriteFile(filename string, p gauge.Painter, opts Options) error {
	b, err := PNG(p, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Save asks for a file name with the native dialog and writes the PNG
// there. The returned name always carries the .png extension.
func Save(p gauge.Painter, opts Options, title string) (string, error) {
	filename, err := sdialog.File().Filter("PNG image", "png").Title(title).Save()
	if err != nil {
		if errors.Is(err, sdialog.ErrCancelled) {
			return "", ErrCancelled
		}
		return "", err
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".png") {
		filename += ".png"
	}
	if err := WriteFile(filename, p, opts); err != nil {
		return "", err
	}
	return filename, nil
}

// Open shows filename in the desktop's image viewer.
func Open(filename string) error {
	if err := open.Run(filename); err != nil {
		return fmt.Errorf("open %s: %w", filename, err)
	}
	return nil
}

var clipboardInit = sync.OnceValue(clipboard.Init)

// Copy puts the PNG on the system clipboard.
func Copy(p gauge.Painter, opts Options) error {
	if err := clipboardInit(); err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}
	b, err := PNG(p, opts)
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, b)
	return nil
}
