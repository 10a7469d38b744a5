package paint

import (
	"image/color"

	"github.com/roffe/txgauges/pkg/geom"
)

var (
	White     = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	Gray      = color.RGBA{0xA0, 0xA0, 0xA4, 0xFF}
	Red       = color.RGBA{0xFF, 0x00, 0x00, 0xFF}
	RedFill   = color.RGBA{0x96, 0x00, 0x00, 0x96} // premultiplied red at alpha 150
	Blue      = color.RGBA{0x00, 0x00, 0xFF, 0xFF}
	BlueFill  = color.RGBA{0x00, 0x00, 0x96, 0x96}
	FaceColor = color.RGBA{0x21, 0x21, 0x21, 0xFF}
	Warning   = color.RGBA{0xFD, 0x56, 0x02, 0xFF}
)

// WithAlpha returns c at alpha a, premultiplied the way color.RGBA expects.
func WithAlpha(c color.Color, a uint8) color.RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return color.RGBAModel.Convert(n).(color.RGBA)
}

// DialGradient is the metallic rim shared by the round faces: bright on the
// upper half, near black on the lower half. It spans the widget from its top
// edge down to 2r, so on faces smaller than the widget the edge sits above
// the dial center.
func DialGradient(d geom.Dial) *LinearGradient {
	return &LinearGradient{
		From: geom.Pt(0, 0),
		To:   geom.Pt(0, 2*d.Radius),
		Stops: []Stop{
			{Offset: 0, Color: color.RGBA{0xE0, 0xE0, 0xE0, 0xFF}},
			{Offset: 0.5, Color: color.RGBA{0x6E, 0x77, 0x74, 0xFF}},
			{Offset: 0.51, Color: color.RGBA{0x0A, 0x0E, 0x0A, 0xFF}},
			{Offset: 1, Color: color.RGBA{0x0A, 0x08, 0x09, 0xFF}},
		},
	}
}

// InnerGradient is the darker rim used around the speedometer inner disk.
func InnerGradient(d geom.Dial) *LinearGradient {
	return &LinearGradient{
		From: geom.Pt(0, 0),
		To:   geom.Pt(0, 2*d.Radius),
		Stops: []Stop{
			{Offset: 0, Color: color.RGBA{0x21, 0x21, 0x21, 0xFF}},
			{Offset: 1, Color: color.RGBA{0x0A, 0x08, 0x09, 0xFF}},
		},
	}
}
