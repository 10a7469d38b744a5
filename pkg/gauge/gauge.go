// Package gauge holds what every painted gauge shares: the Painter
// contract and a notifier that tells the host surface a repaint is due.
package gauge

import (
	"image/color"

	"github.com/roffe/txgauges/pkg/paint"
)

// Painter draws the complete gauge for the current state onto s.
type Painter interface {
	Paint(s paint.Surface)
}

// Accented gauges let the user recolor their main indicator.
type Accented interface {
	SetAccent(c color.Color)
	Accent() color.Color
}

// Notifier is embedded by gauges to signal dirty state. It is not safe for
// concurrent use; mutate gauges from the UI goroutine only.
type Notifier struct {
	listeners []func()
}

// OnInvalidate registers fn to be called on every Invalidate.
func (n *Notifier) OnInvalidate(fn func()) {
	if fn == nil {
		return
	}
	n.listeners = append(n.listeners, fn)
}

// Invalidate requests a repaint from every listener.
func (n *Notifier) Invalidate() {
	for _, fn := range n.listeners {
		fn()
	}
}
