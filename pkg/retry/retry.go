package retry

import (
	"context"
	"math/rand"
	"time"
)

type Operation = func() error

type Config struct {
	MaxRetries    int
	BackoffFactor float64
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	Jitter        time.Duration
	// Permanent reports errors that must not be retried. Nil retries everything.
	Permanent func(error) bool
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxRetries:    4,
		BackoffFactor: 2,
		InitialDelay:  500 * time.Millisecond,
		MaxDelay:      10 * time.Second,
		Jitter:        100 * time.Millisecond,
	}
}

type Retrier struct {
	config *Config
	rnd    *rand.Rand
}

func NewRetrier(config *Config) *Retrier {
	return &Retrier{
		config: config,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func NewDefaultRetrier() *Retrier {
	return NewRetrier(NewDefaultConfig())
}

// Do runs op until it succeeds, fails permanently, exhausts MaxRetries or
// ctx is done. The last operation error is returned.
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	delay := r.config.InitialDelay

	for attempt := 0; ; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		if attempt >= r.config.MaxRetries || r.isPermanent(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.wait(delay)):
		}

		delay = min(time.Duration(float64(delay)*r.config.BackoffFactor), r.config.MaxDelay)
	}
}

func (r *Retrier) isPermanent(err error) bool {
	return r.config.Permanent != nil && r.config.Permanent(err)
}

func (r *Retrier) wait(delay time.Duration) time.Duration {
	delay = min(delay, r.config.MaxDelay)
	if r.config.Jitter > 0 {
		delay += time.Duration(r.rnd.Int63n(int64(r.config.Jitter)))
	}
	return delay
}
