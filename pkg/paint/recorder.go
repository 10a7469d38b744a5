package paint

import "github.com/roffe/txgauges/pkg/geom"

type OpKind int

const (
	OpEllipse OpKind = iota
	OpPolygon
	OpLine
	OpArc
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpEllipse:
		return "ellipse"
	case OpPolygon:
		return "polygon"
	case OpLine:
		return "line"
	case OpArc:
		return "arc"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Points []geom.Point
	Center geom.Point
	RX, RY float64
	Start  float64
	Span   float64
	Text   string
	Pen    Pen
	Brush  Brush
	Style  TextStyle
}

// Recorder is a Surface that keeps every call in order.
type Recorder struct {
	W, H float64
	Ops  []Op
}

var _ Surface = (*Recorder)(nil)

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Bounds() (float64, float64) { return r.W, r.H }

func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

func (r *Recorder) Ellipse(center geom.Point, rx, ry float64, pen Pen, brush Brush) {
	r.Ops = append(r.Ops, Op{Kind: OpEllipse, Center: center, RX: rx, RY: ry, Pen: pen, Brush: brush})
}

func (r *Recorder) Polygon(pts []geom.Point, pen Pen, brush Brush) {
	r.Ops = append(r.Ops, Op{Kind: OpPolygon, Points: append([]geom.Point(nil), pts...), Pen: pen, Brush: brush})
}

func (r *Recorder) Line(a, b geom.Point, pen Pen) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Points: []geom.Point{a, b}, Pen: pen})
}

func (r *Recorder) Arc(center geom.Point, rx, ry, startDeg, spanDeg float64, pen Pen) {
	r.Ops = append(r.Ops, Op{Kind: OpArc, Center: center, RX: rx, RY: ry, Start: startDeg, Span: spanDeg, Pen: pen})
}

func (r *Recorder) Text(at geom.Point, s string, style TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Points: []geom.Point{at}, Text: s, Style: style})
}

// Filter returns the recorded ops of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the strings drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Filter(OpText) {
		out = append(out, op.Text)
	}
	return out
}

// FindText returns the first text op drawing s.
func (r *Recorder) FindText(s string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == OpText && op.Text == s {
			return op, true
		}
	}
	return Op{}, false
}
