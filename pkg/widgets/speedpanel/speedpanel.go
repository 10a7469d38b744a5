package speedpanel

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/roffe/txgauges/pkg/ebus"
	"github.com/roffe/txgauges/pkg/gauges/speedometer"
	"github.com/roffe/txgauges/pkg/paint"
	"github.com/roffe/txgauges/pkg/widgets/ledicon"
	"github.com/roffe/txgauges/pkg/widgets/painted"
)

type Config struct {
	Speedometer *speedometer.Config
	Bus         *ebus.Bus // a private bus is created when nil

	// Chime is called when the limiter starts holding the needle.
	Chime func() error
}

// Panel is the speedometer with its controls: a vertical speed slider, the
// limiter check with its lamp and the max speed slider.
type Panel struct {
	widget.BaseWidget

	gauge *speedometer.Speedometer
	dial  *painted.Painted

	speed    *widget.Slider
	limiter  *widget.Check
	maxSpeed *widget.Slider
	maxLabel *widget.Label
	led      *ledicon.Widget

	bus     *ebus.Bus
	ownBus  bool
	unsub   func()
	chime   func() error
	limited bool
}

func New(cfg *Config) *Panel {
	if cfg == nil {
		cfg = &Config{}
	}
	p := &Panel{
		gauge: speedometer.New(cfg.Speedometer),
		bus:   cfg.Bus,
		chime: cfg.Chime,
	}
	p.ExtendBaseWidget(p)
	if p.bus == nil {
		p.bus = ebus.New(0)
		p.ownBus = true
	}
	p.bus.RegisterAggregator(p.bus.LimiterAggregator(
		ebus.TopicRequested, ebus.TopicMaxSpeed, ebus.TopicLimiter, ebus.TopicOverLimit,
	))

	p.dial = painted.New(p.gauge, &painted.Config{MinSize: fyne.NewSize(320, 320)})

	top := p.gauge.ScaleMax()

	p.speed = widget.NewSlider(0, top)
	p.speed.Orientation = widget.Vertical
	p.speed.Step = 1
	p.speed.OnChanged = p.onSpeed

	p.maxLabel = widget.NewLabel("")
	p.maxSpeed = widget.NewSlider(0, top)
	p.maxSpeed.Step = 1
	p.maxSpeed.Value = p.gauge.MaxSpeed()
	p.maxSpeed.OnChanged = p.onMaxSpeed
	p.setMaxLabel()

	p.led = ledicon.New("Limiting", paint.Warning)
	p.limiter = widget.NewCheck("Activate limiter", p.onLimiter)
	p.limiter.Checked = p.gauge.Limiter()

	p.unsub = p.bus.SubscribeFunc(ebus.TopicOverLimit, func(v float64) {
		fyne.Do(func() {
			p.setLimited(v != 0)
		})
	})

	p.publish(ebus.TopicMaxSpeed, p.gauge.MaxSpeed())
	p.publish(ebus.TopicLimiter, boolToFloat(p.gauge.Limiter()))
	p.publish(ebus.TopicRequested, 0)
	return p
}

func (p *Panel) Gauge() *speedometer.Speedometer { return p.gauge }
func (p *Panel) Dial() *painted.Painted           { return p.dial }
func (p *Panel) Limited() bool                    { return p.limited }

// Close drops the bus subscription, and the bus itself when it is private.
func (p *Panel) Close() {
	if p.unsub != nil {
		p.unsub()
		p.unsub = nil
	}
	if p.ownBus {
		p.bus.Close()
	}
}

func (p *Panel) onSpeed(v float64) {
	p.gauge.SetSpeed(v)
	p.publish(ebus.TopicRequested, v)
}

func (p *Panel) onMaxSpeed(v float64) {
	p.gauge.SetMaxSpeed(v)
	p.setMaxLabel()
	p.publish(ebus.TopicMaxSpeed, v)
}

func (p *Panel) onLimiter(on bool) {
	p.gauge.SetLimiter(on)
	p.publish(ebus.TopicLimiter, boolToFloat(on))
}

func (p *Panel) setMaxLabel() {
	p.maxLabel.SetText(fmt.Sprintf("Max speed: %.0f", p.gauge.MaxSpeed()))
}

func (p *Panel) setLimited(limited bool) {
	if limited == p.limited {
		return
	}
	p.limited = limited
	p.led.SetState(limited)
	if limited && p.chime != nil {
		if err := p.chime(); err != nil {
			log.Printf("limiter chime: %v", err)
		}
	}
}

func (p *Panel) publish(topic string, v float64) {
	if err := p.bus.Publish(topic, v); err != nil {
		log.Printf("publish %s: %v", topic, err)
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	controls := container.NewVBox(
		container.NewHBox(p.limiter, p.led),
		p.maxLabel,
		p.maxSpeed,
	)
	return widget.NewSimpleRenderer(container.NewBorder(nil, controls, nil, p.speed, p.dial))
}
