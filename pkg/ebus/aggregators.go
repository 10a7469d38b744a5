package ebus

import "log"

type AggregatorFunc func(topic string, value float64)

type Aggregator struct {
	fun AggregatorFunc
}

func NewAggregator(fun AggregatorFunc) *Aggregator {
	return &Aggregator{fun: fun}
}

// RegisterAggregator adds aggs once each. Aggregators run on the bus
// goroutine after subscribers have been served.
func (b *Bus) RegisterAggregator(aggs ...*Aggregator) {
	b.aggMu.Lock()
	defer b.aggMu.Unlock()
outer:
	for _, agg := range aggs {
		for _, existing := range b.aggregators {
			if existing == agg {
				continue outer
			}
		}
		b.aggregators = append(b.aggregators, agg)
	}
}

// LimiterAggregator publishes 1 on output while the limiter topic is set and
// the requested speed is above the max speed, 0 otherwise. Nothing is
// published until both speeds have been seen.
func (b *Bus) LimiterAggregator(requested, maxSpeed, limiter, output string) *Aggregator {
	var haveRequested, haveMax bool
	var req, top float64
	var engaged bool
	return NewAggregator(func(topic string, value float64) {
		switch topic {
		case requested:
			req, haveRequested = value, true
		case maxSpeed:
			top, haveMax = value, true
		case limiter:
			engaged = value != 0
		default:
			return
		}
		if !haveRequested || !haveMax {
			return
		}
		var over float64
		if engaged && req > top {
			over = 1
		}
		if err := b.Publish(output, over); err != nil {
			log.Printf("publish %s: %v", output, err)
		}
	})
}
