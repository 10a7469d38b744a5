package windows

import (
	"context"
	"fmt"
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	xwidget "fyne.io/x/fyne/widget"

	"github.com/roffe/txgauges/pkg/config"
	"github.com/roffe/txgauges/pkg/ebus"
	"github.com/roffe/txgauges/pkg/gauges/analogclock"
	"github.com/roffe/txgauges/pkg/gauges/compass"
	"github.com/roffe/txgauges/pkg/gauges/digitalclock"
	"github.com/roffe/txgauges/pkg/gauges/speedometer"
	"github.com/roffe/txgauges/pkg/heading"
	"github.com/roffe/txgauges/pkg/scheduler"
	"github.com/roffe/txgauges/pkg/sound"
	"github.com/roffe/txgauges/pkg/timesource"
	"github.com/roffe/txgauges/pkg/widgets/painted"
	"github.com/roffe/txgauges/pkg/widgets/speedpanel"
)

const (
	tabClock   = "Clock"
	tabCompass = "Compass"
	tabDigital = "Digital"
	tabSpeed   = "Speed"
)

type MainWindow struct {
	fyne.Window
	app fyne.App
	cfg config.Config

	bus     *ebus.Bus
	sched   *scheduler.Scheduler
	heading heading.Source
	cancel  context.CancelFunc

	analog  *analogclock.Clock
	compass *compass.Compass
	digital *digitalclock.Clock
	speed   *speedpanel.Panel

	dials map[string]*painted.Painted

	tabs          *container.AppTabs
	locationEntry *xwidget.CompletionEntry
	statusText    *widget.Label
	trafficText   *widget.Label

	unsubHeading func()
	unsubTraffic func()
}

// Options lets callers swap the sources the window would otherwise build
// from the config.
type Options struct {
	Heading heading.Source
	Clock   timesource.Clock
}

func NewMainWindow(app fyne.App, cfg config.Config, opts *Options) *MainWindow {
	if opts == nil {
		opts = &Options{}
	}
	mw := &MainWindow{
		Window:     app.NewWindow("txgauges"),
		app:        app,
		cfg:        cfg,
		bus:        ebus.New(0),
		heading:    opts.Heading,
		dials:      make(map[string]*painted.Painted),
		statusText:  widget.NewLabel(""),
		trafficText: widget.NewLabel(""),
	}
	if mw.heading == nil {
		mw.heading = heading.NewRandom(cfg.Compass.Seed)
	}

	loc, err := timesource.LoadLocation(cfg.Clock.Location)
	if err != nil {
		log.Printf("clock location: %v", err)
		loc = nil
	}
	mw.analog = analogclock.New(&analogclock.Config{Clock: opts.Clock, Location: loc})
	mw.digital = digitalclock.New(&digitalclock.Config{Clock: opts.Clock})
	mw.compass = compass.New(nil)
	mw.speed = speedpanel.New(&speedpanel.Config{
		Speedometer: &speedometer.Config{
			ScaleMax: cfg.Speedometer.ScaleMax,
			MaxSpeed: cfg.Speedometer.MaxSpeed,
			Limiter:  cfg.Speedometer.Limiter,
		},
		Bus:   mw.bus,
		Chime: mw.chime,
	})

	mw.dials[tabClock] = painted.New(mw.analog, nil)
	mw.dials[tabCompass] = painted.New(mw.compass, nil)
	mw.dials[tabDigital] = painted.New(mw.digital, nil)
	mw.dials[tabSpeed] = mw.speed.Dial()
	for name, d := range mw.dials {
		d.OnAccentChanged = func(col color.Color) {
			r, g, b, _ := col.RGBA()
			mw.Log(fmt.Sprintf("%s accent #%02x%02x%02x", name, r>>8, g>>8, b>>8))
		}
	}

	mw.unsubHeading = mw.bus.SubscribeFunc(ebus.TopicHeading, func(v float64) {
		fyne.Do(func() {
			mw.compass.SetHeading(v)
		})
	})

	mw.unsubTraffic = mw.bus.SubscribeAllFunc(mw.busTraffic)

	mw.sched = scheduler.New(mw.tasks()...)

	mw.locationEntry = mw.newLocationTypeahead()
	if loc != nil && loc != time.Local {
		mw.locationEntry.SetText(loc.String())
	}

	mw.tabs = container.NewAppTabs(
		container.NewTabItem(tabClock, container.NewBorder(
			container.NewBorder(nil, nil, widget.NewLabel("Location"), nil, mw.locationEntry),
			nil, nil, nil,
			mw.dials[tabClock],
		)),
		container.NewTabItem(tabCompass, mw.dials[tabCompass]),
		container.NewTabItem(tabDigital, mw.dials[tabDigital]),
		container.NewTabItem(tabSpeed, mw.speed),
	)

	status := container.NewBorder(nil, nil, nil, mw.trafficText, mw.statusText)
	mw.SetContent(container.NewBorder(mw.newToolbar(), status, nil, nil, mw.tabs))
	mw.setupShortcuts()
	mw.SetCloseIntercept(mw.closeIntercept)
	mw.SetPadded(true)
	mw.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	if cfg.Sound.Enabled {
		go func() {
			if err := sound.Init(); err != nil {
				log.Printf("sound disabled: %v", err)
			}
		}()
	}
	return mw
}

// Start runs the repaint and heading tasks until the window closes.
func (mw *MainWindow) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	if err := mw.sched.Start(ctx); err != nil {
		cancel()
		return fmt.Errorf("start scheduler: %w", err)
	}
	mw.cancel = cancel
	return nil
}

// Stop ends the tasks and releases the bus.
func (mw *MainWindow) Stop() {
	if mw.cancel != nil {
		mw.cancel()
	}
	if err := mw.sched.Stop(); err != nil {
		log.Printf("scheduler: %v", err)
	}
	if mw.unsubHeading != nil {
		mw.unsubHeading()
		mw.unsubHeading = nil
	}
	if mw.unsubTraffic != nil {
		mw.unsubTraffic()
		mw.unsubTraffic = nil
	}
	mw.speed.Close()
	mw.bus.Close()
}

// busTraffic shows the latest speed panel value next to the status line.
// Headings change every tick and are left to the compass.
func (mw *MainWindow) busTraffic(topic string, v float64) {
	if topic == ebus.TopicHeading {
		return
	}
	s := fmt.Sprintf("%s %g", topic, v)
	fyne.Do(func() {
		mw.trafficText.SetText(s)
	})
}

func (mw *MainWindow) closeIntercept() {
	mw.Stop()
	mw.Close()
}

func (mw *MainWindow) chime() error {
	if !mw.cfg.Sound.Enabled {
		return nil
	}
	go func() {
		if err := sound.Beep(mw.cfg.Sound.Volume); err != nil {
			log.Printf("beep: %v", err)
		}
	}()
	return nil
}

func (mw *MainWindow) setupShortcuts() {
	altEnter := &desktop.CustomShortcut{KeyName: fyne.KeyReturn, Modifier: fyne.KeyModifierAlt}
	mw.Canvas().AddShortcut(altEnter, func(fyne.Shortcut) {
		mw.SetFullScreen(!mw.FullScreen())
	})
	for i, key := range []fyne.KeyName{fyne.Key1, fyne.Key2, fyne.Key3, fyne.Key4} {
		mw.Canvas().AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
			mw.tabs.SelectIndex(i)
		})
	}
}

func (mw *MainWindow) Log(s string) {
	log.Println(s)
	mw.statusText.SetText(s)
}

func (mw *MainWindow) Error(err error) {
	log.Println(err)
	mw.statusText.SetText(err.Error())
	dialog.ShowError(err, mw)
}
