package ebus_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roffe/txgauges/pkg/ebus"
)

func newBus(t *testing.T) *ebus.Bus {
	t.Helper()
	b := ebus.New(time.Minute)
	t.Cleanup(b.Close)
	return b
}

func recv[T any](t *testing.T, ch chan T) T {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}

func TestPublish(t *testing.T) {
	tests := []struct {
		name  string
		topic string
		data  float64
	}{
		{name: "heading", topic: ebus.TopicHeading, data: 1.23},
		{name: "negative", topic: "test", data: -4},
	}
	b := newBus(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, b.Publish(tt.topic, tt.data))
			assert.Eventually(t, func() bool {
				v, ok := b.Get(tt.topic)
				return ok && v == tt.data
			}, 2*time.Second, 5*time.Millisecond)
		})
	}
}

func TestSubscribe(t *testing.T) {
	b := newBus(t)
	ch := b.Subscribe("test")
	require.NoError(t, b.Publish("test", 3.14))
	assert.Equal(t, 3.14, recv(t, ch))
	b.Unsubscribe(ch)
	assert.Eventually(t, func() bool {
		_, ok := <-ch
		return !ok
	}, 2*time.Second, 5*time.Millisecond)
}

func TestSubscribeReceivesCachedValue(t *testing.T) {
	b := newBus(t)
	require.NoError(t, b.Publish(ebus.TopicMaxSpeed, 130))
	require.Eventually(t, func() bool {
		_, ok := b.Get(ebus.TopicMaxSpeed)
		return ok
	}, 2*time.Second, 5*time.Millisecond)

	ch := b.Subscribe(ebus.TopicMaxSpeed)
	assert.Equal(t, 130.0, recv(t, ch))
}

func TestDuplicateValuesSuppressed(t *testing.T) {
	b := newBus(t)
	ch := b.Subscribe("dup")
	for _, v := range []float64{1, 1, 1, 2, 2, 1} {
		require.NoError(t, b.Publish("dup", v))
	}
	assert.Equal(t, 1.0, recv(t, ch))
	assert.Equal(t, 2.0, recv(t, ch))
	assert.Equal(t, 1.0, recv(t, ch))
	select {
	case v := <-ch:
		t.Fatalf("unexpected value %v", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSubscribeFunc(t *testing.T) {
	b := newBus(t)
	got := make(chan float64, 1)
	cancel := b.SubscribeFunc("fn", func(v float64) { got <- v })
	defer cancel()
	require.NoError(t, b.Publish("fn", 42))
	assert.Equal(t, 42.0, recv(t, got))
}

func TestSubscribeAllFunc(t *testing.T) {
	b := newBus(t)
	got := make(chan ebus.Message, 10)
	cancel := b.SubscribeAllFunc(func(topic string, v float64) {
		got <- ebus.Message{Topic: topic, Data: v}
	})
	defer cancel()
	require.NoError(t, b.Publish("a", 1))
	assert.Equal(t, ebus.Message{Topic: "a", Data: 1}, recv(t, got))
}

func TestSubscribeAllReplaysCache(t *testing.T) {
	b := newBus(t)
	require.NoError(t, b.Publish(ebus.TopicLimiter, 1))
	require.Eventually(t, func() bool {
		_, ok := b.Get(ebus.TopicLimiter)
		return ok
	}, 2*time.Second, 5*time.Millisecond)

	ch := b.SubscribeAll()
	assert.Equal(t, ebus.Message{Topic: ebus.TopicLimiter, Data: 1}, recv(t, ch))
	b.UnsubscribeAll(ch)
	assert.Eventually(t, func() bool {
		_, ok := <-ch
		return !ok
	}, 2*time.Second, 5*time.Millisecond)
}

func TestLimiterAggregator(t *testing.T) {
	b := newBus(t)
	b.RegisterAggregator(b.LimiterAggregator(
		ebus.TopicRequested, ebus.TopicMaxSpeed, ebus.TopicLimiter, ebus.TopicOverLimit,
	))
	over := b.Subscribe(ebus.TopicOverLimit)

	require.NoError(t, b.Publish(ebus.TopicLimiter, 1))
	require.NoError(t, b.Publish(ebus.TopicMaxSpeed, 130))
	require.NoError(t, b.Publish(ebus.TopicRequested, 100))
	assert.Equal(t, 0.0, recv(t, over))

	require.NoError(t, b.Publish(ebus.TopicRequested, 150))
	assert.Equal(t, 1.0, recv(t, over))

	require.NoError(t, b.Publish(ebus.TopicLimiter, 0))
	assert.Equal(t, 0.0, recv(t, over))
}

func TestRegisterAggregatorOnce(t *testing.T) {
	b := newBus(t)
	var n int
	agg := ebus.NewAggregator(func(topic string, _ float64) {
		if topic == "count" {
			n++
		}
	})
	b.RegisterAggregator(agg, agg)
	b.RegisterAggregator(agg)
	done := b.Subscribe("count")
	require.NoError(t, b.Publish("count", 1))
	recv(t, done)
	// aggregators run after subscribers on the bus goroutine
	require.NoError(t, b.Publish("sync", 1))
	assert.Eventually(t, func() bool {
		_, ok := b.Get("sync")
		return ok
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, n)
}

func TestClose(t *testing.T) {
	b := ebus.New(0)
	ch := b.Subscribe("x")
	b.Close()
	_, ok := <-ch
	assert.False(t, ok)
	assert.ErrorIs(t, b.Publish("x", 1), ebus.ErrClosed)
	b.Close()
}
