package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type transition struct {
	name     string
	from, to CircuitBreakerState
}

type CircuitBreakerTestSuite struct {
	suite.Suite
	breaker     *CircuitBreaker
	clock       time.Time
	transitions []transition
}

func TestCircuitBreakerSuite(t *testing.T) {
	suite.Run(t, new(CircuitBreakerTestSuite))
}

func (s *CircuitBreakerTestSuite) SetupTest() {
	s.clock = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	s.transitions = nil
	s.breaker = NewCircuitBreaker(CircuitBreakerConfig{
		Name:           "gemini",
		MaxFailures:    3,
		Cooldown:       time.Minute,
		ProbeSuccesses: 2,
		OnStateChange: func(name string, from, to CircuitBreakerState) {
			s.transitions = append(s.transitions, transition{name, from, to})
		},
	}).(*CircuitBreaker)
	s.breaker.now = func() time.Time { return s.clock }
}

func (s *CircuitBreakerTestSuite) trip() {
	for i := 0; i < 3; i++ {
		s.breaker.RecordFailure()
	}
}

func (s *CircuitBreakerTestSuite) TestOpensAfterMaxFailures() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.NoError(s.breaker.Allow())
	s.Equal(2, s.breaker.Failures())

	s.breaker.RecordFailure()

	s.ErrorIs(s.breaker.Allow(), ErrCircuitBreakerOpen)
	s.Equal(StateOpen, s.breaker.State())
	s.Equal([]transition{{"gemini", StateClosed, StateOpen}}, s.transitions)
}

func (s *CircuitBreakerTestSuite) TestSuccessResetsFailureCount() {
	s.breaker.RecordFailure()
	s.breaker.RecordFailure()
	s.breaker.RecordSuccess()

	s.Zero(s.breaker.Failures())
	s.breaker.RecordFailure()
	s.NoError(s.breaker.Allow())
	s.Empty(s.transitions)
}

func (s *CircuitBreakerTestSuite) TestHalfOpensAfterCooldown() {
	s.trip()

	s.clock = s.clock.Add(59 * time.Second)
	s.Error(s.breaker.Allow())

	s.clock = s.clock.Add(time.Second)
	s.NoError(s.breaker.Allow())
	s.Equal(StateHalfOpen, s.breaker.State())
}

func (s *CircuitBreakerTestSuite) TestHalfOpenClosesAfterProbeSuccesses() {
	s.trip()
	s.clock = s.clock.Add(2 * time.Minute)
	s.Require().NoError(s.breaker.Allow())

	s.breaker.RecordSuccess()
	s.Equal(StateHalfOpen, s.breaker.State())

	s.breaker.RecordSuccess()
	s.Equal(StateClosed, s.breaker.State())
	s.Equal([]transition{
		{"gemini", StateClosed, StateOpen},
		{"gemini", StateOpen, StateHalfOpen},
		{"gemini", StateHalfOpen, StateClosed},
	}, s.transitions)
}

func (s *CircuitBreakerTestSuite) TestHalfOpenFailureReopens() {
	s.trip()
	s.clock = s.clock.Add(2 * time.Minute)
	s.Require().NoError(s.breaker.Allow())

	s.breaker.RecordFailure()

	s.Equal(StateOpen, s.breaker.State())
	s.ErrorIs(s.breaker.Allow(), ErrCircuitBreakerOpen)
}

func (s *CircuitBreakerTestSuite) TestZeroMaxFailuresOpensOnFirstFailure() {
	breaker := NewCircuitBreaker(CircuitBreakerConfig{Cooldown: time.Hour})

	breaker.RecordFailure()

	s.ErrorIs(breaker.Allow(), ErrCircuitBreakerOpen)
}

func (s *CircuitBreakerTestSuite) TestStateString() {
	s.Equal("closed", StateClosed.String())
	s.Equal("open", StateOpen.String())
	s.Equal("half_open", StateHalfOpen.String())
	s.Equal("unknown", CircuitBreakerState(9).String())
}
