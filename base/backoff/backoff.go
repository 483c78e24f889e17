// Package backoff provides context aware sleep helpers for retry loops.
package backoff

import (
	"context"
	"math"
	"time"
)

type Backoff struct {
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	count        int
}

// NewExponential doubles the wait on every round, capped at limit.
func NewExponential(start, limit time.Duration) *Backoff {
	b := &Backoff{start: start, limit: limit}
	b.Reset()
	return b
}

func (b *Backoff) Reset() {
	b.count = 0
	b.NextDuration = b.next()
}

// Backoff sleeps for the current round's duration. It returns early with the
// context's error when the context is cancelled.
func (b *Backoff) Backoff(ctx context.Context) error {
	sleepCtx, cancel := context.WithTimeout(ctx, b.NextDuration)
	<-sleepCtx.Done()
	cancel()
	if sleepCtx.Err() == context.DeadlineExceeded {
		b.count++
		b.NextDuration = b.next()
		return nil
	}
	return sleepCtx.Err()
}

func (b *Backoff) next() time.Duration {
	d := time.Duration(int64(math.Pow(2, float64(b.count)))) * b.start
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}
