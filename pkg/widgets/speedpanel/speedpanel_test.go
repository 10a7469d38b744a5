package speedpanel

import (
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roffe/txgauges/pkg/ebus"
	"github.com/roffe/txgauges/pkg/gauges/speedometer"
)

func newPanel(t *testing.T, cfg *Config) (*Panel, *ebus.Bus) {
	t.Helper()
	test.NewTempApp(t)
	bus := ebus.New(time.Minute)
	t.Cleanup(bus.Close)
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.Bus = bus
	p := New(cfg)
	t.Cleanup(p.Close)
	return p, bus
}

func waitTopic(t *testing.T, bus *ebus.Bus, topic string, want float64) {
	t.Helper()
	assert.Eventually(t, func() bool {
		v, ok := bus.Get(topic)
		return ok && v == want
	}, 2*time.Second, 5*time.Millisecond, topic)
}

func TestDefaults(t *testing.T) {
	p, bus := newPanel(t, nil)
	assert.Equal(t, 130.0, p.Gauge().MaxSpeed())
	assert.Equal(t, 320.0, p.speed.Max)
	assert.Equal(t, 130.0, p.maxSpeed.Value)
	assert.Equal(t, "Max speed: 130", p.maxLabel.Text)
	assert.False(t, p.limiter.Checked)
	waitTopic(t, bus, ebus.TopicMaxSpeed, 130)
	waitTopic(t, bus, ebus.TopicLimiter, 0)
}

func TestSpeedSlider(t *testing.T) {
	p, bus := newPanel(t, nil)
	p.speed.SetValue(200)
	assert.Equal(t, 200.0, p.Gauge().Speed())
	waitTopic(t, bus, ebus.TopicRequested, 200)
}

func TestLimiterCheckClamps(t *testing.T) {
	p, bus := newPanel(t, nil)
	p.speed.SetValue(250)
	p.limiter.SetChecked(true)
	assert.Equal(t, 130.0, p.Gauge().Speed())
	assert.True(t, p.Gauge().Limiting())
	waitTopic(t, bus, ebus.TopicLimiter, 1)
}

func TestMaxSlider(t *testing.T) {
	p, bus := newPanel(t, nil)
	p.speed.SetValue(100)
	p.maxSpeed.SetValue(80)
	assert.Equal(t, 80.0, p.Gauge().MaxSpeed())
	assert.Equal(t, 80.0, p.Gauge().Speed())
	assert.Equal(t, "Max speed: 80", p.maxLabel.Text)
	waitTopic(t, bus, ebus.TopicMaxSpeed, 80)
}

func TestOverLimitLightsLamp(t *testing.T) {
	var chimes atomic.Int32
	p, bus := newPanel(t, &Config{
		Speedometer: &speedometer.Config{MaxSpeed: 100},
		Chime: func() error {
			chimes.Add(1)
			return nil
		},
	})
	p.limiter.SetChecked(true)
	p.speed.SetValue(150)
	waitTopic(t, bus, ebus.TopicOverLimit, 1)
	require.Eventually(t, func() bool { return p.led.State() }, 2*time.Second, 5*time.Millisecond)
	assert.True(t, p.Limited())
	assert.Eventually(t, func() bool { return chimes.Load() == 1 }, 2*time.Second, 5*time.Millisecond)

	p.speed.SetValue(90)
	waitTopic(t, bus, ebus.TopicOverLimit, 0)
	assert.Eventually(t, func() bool { return !p.led.State() }, 2*time.Second, 5*time.Millisecond)
}

func TestPrivateBus(t *testing.T) {
	test.NewTempApp(t)
	p := New(nil)
	require.NotNil(t, p.bus)
	assert.True(t, p.ownBus)
	p.Close()
	assert.ErrorIs(t, p.bus.Publish("x", 1), ebus.ErrClosed)
}

func TestRenderer(t *testing.T) {
	p, _ := newPanel(t, nil)
	w := test.NewWindow(p)
	defer w.Close()
	assert.NotEmpty(t, test.WidgetRenderer(p).Objects())
}
