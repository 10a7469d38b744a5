package windows

import (
	"context"
	"errors"
	"log"
	"time"

	"fyne.io/fyne/v2"

	"github.com/roffe/txgauges/pkg/ebus"
	"github.com/roffe/txgauges/pkg/scheduler"
)

// tasks only mark gauges dirty or feed the bus. Painting happens when fyne
// refreshes the rasters on the UI goroutine.
func (mw *MainWindow) tasks() []scheduler.Task {
	return []scheduler.Task{
		{
			Name:     "clock",
			Interval: mw.cfg.Clock.Interval,
			Run: func(context.Context, time.Time) error {
				fyne.Do(func() {
					mw.analog.Invalidate()
					mw.digital.Invalidate()
				})
				return nil
			},
		},
		{
			Name:      "heading",
			Interval:  mw.cfg.Compass.Interval,
			Immediate: true,
			Run: func(context.Context, time.Time) error {
				err := mw.bus.Publish(ebus.TopicHeading, mw.heading.Next())
				if errors.Is(err, ebus.ErrFull) {
					log.Printf("heading: %v", err)
					return nil
				}
				return err
			},
		},
	}
}
