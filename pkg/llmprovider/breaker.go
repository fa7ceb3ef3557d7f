package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerSettings configures the circuit breaker put in front of a provider.
type BreakerSettings struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
	MinRequests  uint32

	// OnStateChange is called with the provider name and the old/new state names.
	OnStateChange func(provider, from, to string)
}

// breakerProvider short-circuits calls to a provider that keeps failing so the
// manager can move on to the next one without waiting for a timeout.
type breakerProvider struct {
	Provider
	cb *gobreaker.CircuitBreaker
}

// WithCircuitBreaker wraps p with a circuit breaker.
func WithCircuitBreaker(p Provider, s BreakerSettings) Provider {
	minRequests := s.MinRequests
	if minRequests == 0 {
		minRequests = 1
	}
	ratio := s.FailureRatio
	if ratio <= 0 {
		ratio = 0.6
	}

	settings := gobreaker.Settings{
		Name:        p.Name(),
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= minRequests && failureRatio >= ratio
		},
		// Caller cancellation says nothing about provider health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	if s.OnStateChange != nil {
		settings.OnStateChange = func(name string, from, to gobreaker.State) {
			s.OnStateChange(name, from.String(), to.String())
		}
	}

	return &breakerProvider{
		Provider: p,
		cb:       gobreaker.NewCircuitBreaker(settings),
	}
}

// GenerateContent implements Provider interface
func (b *breakerProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.Provider.GenerateContent(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%s: %w: %w", b.Name(), ErrCircuitOpen, err)
		}
		return nil, err
	}
	return out.(*Response), nil
}

// State returns the breaker state name (closed, half-open, open).
func (b *breakerProvider) State() string {
	return b.cb.State().String()
}

func isCircuitOpen(err error) bool {
	return errors.Is(err, ErrCircuitOpen)
}
