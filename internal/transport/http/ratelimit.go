package http

import "time"

// rateLimiter caps inbound frames per connection per minute. It is used
// only from the connection's read loop, so the counter needs no lock.
type rateLimiter struct {
	limit   int
	counter int
	reset   *time.Ticker
}

func newRateLimiter(limit int) *rateLimiter {
	if limit <= 0 {
		return &rateLimiter{limit: 0}
	}
	return &rateLimiter{
		limit: limit,
		reset: time.NewTicker(time.Minute),
	}
}

func (r *rateLimiter) allow() bool {
	if r == nil || r.limit <= 0 {
		return true
	}
	if r.reset != nil {
		select {
		case <-r.reset.C:
			r.counter = 0
		default:
		}
	}
	r.counter++
	return r.counter <= r.limit
}

func (r *rateLimiter) stop() {
	if r != nil && r.reset != nil {
		r.reset.Stop()
	}
}
