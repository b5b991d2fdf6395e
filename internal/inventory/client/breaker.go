package client

import (
	"errors"
	"sync"
	"time"

	"github.com/tair/inventory-information/pkg/logger"
)

// ErrCircuitOpen is returned while the breaker rejects calls.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitState represents the state of a circuit breaker
type CircuitState string

const (
	StateClosed   CircuitState = "closed"
	StateOpen     CircuitState = "open"
	StateHalfOpen CircuitState = "half-open"
)

// CircuitBreaker stops calling a failing dependency for a cool-down period.
// After maxFailures consecutive failures it opens; once timeout has elapsed
// it lets calls through half-open and closes after halfOpenSuccesses of them
// succeed. A failure while half-open reopens it.
type CircuitBreaker struct {
	name              string
	maxFailures       int
	timeout           time.Duration
	halfOpenSuccesses int
	now               func() time.Time

	mu              sync.Mutex
	state           CircuitState
	failures        int
	successCount    int
	lastStateChange time.Time
}

// NewCircuitBreaker creates a closed circuit breaker
func NewCircuitBreaker(name string, maxFailures int, timeout time.Duration) *CircuitBreaker {
	if maxFailures < 1 {
		maxFailures = 1
	}
	return &CircuitBreaker{
		name:              name,
		maxFailures:       maxFailures,
		timeout:           timeout,
		halfOpenSuccesses: 3,
		now:               time.Now,
		state:             StateClosed,
		lastStateChange:   time.Now(),
	}
}

// Call executes fn unless the circuit is open. Errors for which countable
// returns false are passed through without being recorded as failures.
func (cb *CircuitBreaker) Call(fn func() error, countable func(error) bool) error {
	if !cb.allow() {
		return ErrCircuitOpen
	}

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err != nil && (countable == nil || countable(err)) {
		cb.onFailure()
	} else {
		cb.onSuccess()
	}
	return err
}

func (cb *CircuitBreaker) allow() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.now().Sub(cb.lastStateChange) >= cb.timeout {
		cb.transition(StateHalfOpen)
		logger.Logger.Info().
			Str("circuit", cb.name).
			Msg("Circuit breaker transitioning to half-open")
	}
	return cb.state != StateOpen
}

func (cb *CircuitBreaker) onFailure() {
	cb.failures++

	switch {
	case cb.state == StateHalfOpen:
		cb.transition(StateOpen)
		logger.Logger.Warn().
			Str("circuit", cb.name).
			Msg("Circuit breaker reopened after half-open failure")
	case cb.failures >= cb.maxFailures:
		cb.transition(StateOpen)
		logger.Logger.Error().
			Str("circuit", cb.name).
			Int("failures", cb.failures).
			Int("threshold", cb.maxFailures).
			Msg("Circuit breaker opened")
	}
}

func (cb *CircuitBreaker) onSuccess() {
	if cb.state != StateHalfOpen {
		cb.failures = 0
		return
	}

	cb.successCount++
	if cb.successCount >= cb.halfOpenSuccesses {
		cb.transition(StateClosed)
		logger.Logger.Info().
			Str("circuit", cb.name).
			Msg("Circuit breaker closed after successful recovery")
	}
}

func (cb *CircuitBreaker) transition(state CircuitState) {
	cb.state = state
	cb.lastStateChange = cb.now()
	cb.successCount = 0
	if state == StateClosed {
		cb.failures = 0
	}
}

// State returns the current state
func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
