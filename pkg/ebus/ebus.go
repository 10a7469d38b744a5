package ebus

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
)

const (
	TopicHeading   = "compass.heading"
	TopicRequested = "speed.requested"
	TopicMaxSpeed  = "speed.max"
	TopicLimiter   = "speed.limiter"
	TopicOverLimit = "speed.overlimit"
)

var (
	ErrFull   = errors.New("publish channel full")
	ErrClosed = errors.New("bus closed")
)

type Message struct {
	Topic string
	Data  float64
}

// Bus fans float values out to topic subscribers. The last value of every
// topic is cached for a minute and handed to late subscribers; publishing
// the cached value again is a no-op.
type Bus struct {
	in       chan Message
	unsub    chan chan float64
	unsubAll chan chan Message
	quit     chan struct{}
	done     chan struct{}
	once     sync.Once

	subsMu  sync.Mutex
	subs    map[string][]chan float64
	subsAll []chan Message

	aggMu       sync.Mutex
	aggregators []*Aggregator

	cache *ttlcache.Cache[string, float64]
}

func New(ttl time.Duration) *Bus {
	if ttl <= 0 {
		ttl = time.Minute
	}
	b := &Bus{
		in:       make(chan Message, 100),
		unsub:    make(chan chan float64, 100),
		unsubAll: make(chan chan Message, 100),
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
		subs:     make(map[string][]chan float64),
		cache: ttlcache.New[string, float64](
			ttlcache.WithTTL[string, float64](ttl),
		),
	}
	go b.cache.Start()
	go b.run()
	return b
}

// Close stops the bus and closes every subscriber channel.
func (b *Bus) Close() {
	b.once.Do(func() {
		close(b.quit)
		<-b.done
		b.cache.Stop()
		b.subsMu.Lock()
		defer b.subsMu.Unlock()
		for topic, subz := range b.subs {
			for _, sub := range subz {
				close(sub)
			}
			delete(b.subs, topic)
		}
		for _, sub := range b.subsAll {
			close(sub)
		}
		b.subsAll = nil
	})
}

func (b *Bus) run() {
	defer close(b.done)
	for {
		select {
		case <-b.quit:
			return
		case msg := <-b.in:
			b.dispatch(msg)
		case unsub := <-b.unsubAll:
			b.removeAll(unsub)
		case unsub := <-b.unsub:
			b.remove(unsub)
		}
	}
}

func (b *Bus) dispatch(msg Message) {
	if v := b.cache.Get(msg.Topic); v != nil && v.Value() == msg.Data {
		return
	}
	b.cache.Set(msg.Topic, msg.Data, ttlcache.DefaultTTL)

	b.subsMu.Lock()
	var slow []chan Message
	for _, sub := range b.subsAll {
		select {
		case sub <- msg:
		default:
			slow = append(slow, sub)
		}
	}
	for _, sub := range b.subs[msg.Topic] {
		select {
		case sub <- msg.Data:
		default:
		}
	}
	b.subsMu.Unlock()

	for _, sub := range slow {
		log.Println("dropping slow subscriber")
		b.removeAll(sub)
	}

	b.aggMu.Lock()
	aggs := b.aggregators
	b.aggMu.Unlock()
	for _, agg := range aggs {
		agg.fun(msg.Topic, msg.Data)
	}
}

func (b *Bus) removeAll(unsub chan Message) {
	b.subsMu.Lock()
	defer b.subsMu.Unlock()
	for i, sub := range b.subsAll {
		if sub == unsub {
			b.subsAll = append(b.subsAll[:i], b.subsAll[i+1:]...)
			close(sub)
			return
		}
	}
}

func (b *Bus) remove(unsub chan float64) {
	b.subsMu.Lock()
	defer b.subsMu.Unlock()
	for topic, subz := range b.subs {
		for i, sub := range subz {
			if sub == unsub {
				b.subs[topic] = append(subz[:i], subz[i+1:]...)
				close(unsub)
				if len(b.subs[topic]) == 0 {
					delete(b.subs, topic)
				}
				return
			}
		}
	}
}

func (b *Bus) Publish(topic string, data float64) error {
	select {
	case <-b.quit:
		return ErrClosed
	default:
	}
	select {
	case b.in <- Message{Topic: topic, Data: data}:
		return nil
	default:
		return ErrFull
	}
}

// Get returns the cached value of topic.
func (b *Bus) Get(topic string) (float64, bool) {
	if itm := b.cache.Get(topic); itm != nil {
		return itm.Value(), true
	}
	return 0, false
}

func (b *Bus) SubscribeAll() chan Message {
	respChan := make(chan Message, 100)
	b.subsMu.Lock()
	b.subsAll = append(b.subsAll, respChan)
	b.subsMu.Unlock()

	b.cache.Range(func(item *ttlcache.Item[string, float64]) bool {
		select {
		case respChan <- Message{Topic: item.Key(), Data: item.Value()}:
			return true
		default:
			return false
		}
	})
	return respChan
}

// SubscribeAllFunc calls f for every message on a separate goroutine and
// returns the unsubscribe function.
func (b *Bus) SubscribeAllFunc(f func(topic string, value float64)) func() {
	respChan := b.SubscribeAll()
	go func() {
		for v := range respChan {
			f(v.Topic, v.Data)
		}
	}()
	return func() {
		b.UnsubscribeAll(respChan)
	}
}

func (b *Bus) UnsubscribeAll(channel chan Message) {
	select {
	case b.unsubAll <- channel:
	case <-b.quit:
	}
}

func (b *Bus) Subscribe(topic string) chan float64 {
	respChan := make(chan float64, 100)
	b.subsMu.Lock()
	b.subs[topic] = append(b.subs[topic], respChan)
	b.subsMu.Unlock()
	if itm := b.cache.Get(topic); itm != nil {
		respChan <- itm.Value()
	}
	return respChan
}

// SubscribeFunc returns a function that can be used to unsubscribe f.
func (b *Bus) SubscribeFunc(topic string, f func(float64)) func() {
	respChan := b.Subscribe(topic)
	go func() {
		for v := range respChan {
			f(v)
		}
	}()
	return func() {
		b.Unsubscribe(respChan)
	}
}

func (b *Bus) Unsubscribe(channel chan float64) {
	select {
	case b.unsub <- channel:
	case <-b.quit:
	}
}
