// pkg/simulation/breaker.go
package simulation

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"

	"github.com/opd-ai/shipcore/pkg/config"
	"github.com/opd-ai/shipcore/pkg/logging"
	"github.com/opd-ai/shipcore/pkg/ship"
)

// BreakerControllerFactory wraps a ControllerFactory with a circuit breaker.
// A control-program language that shells out to an external process or
// interpreter can fail in bursts (a bad scenario file, a wedged
// interpreter); tripping the breaker after a run of consecutive failures
// stops the spawn pipeline from paying the full construction cost for every
// subsequent ship on that team until the underlying problem clears.
type BreakerControllerFactory struct {
	inner   ControllerFactory
	breaker *gobreaker.CircuitBreaker
	logger  *logging.Logger
}

// NewBreakerControllerFactory wraps inner with a circuit breaker configured
// from envConfig's breaker settings. name distinguishes this breaker's state
// transitions in logs when a simulation registers more than one team.
func NewBreakerControllerFactory(name string, inner ControllerFactory, envConfig *config.EnvironmentConfig, logger *logging.Logger) *BreakerControllerFactory {
	if logger == nil {
		logger = logging.NewLogger()
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: envConfig.CircuitBreakerMaxRequests,
		Interval:    envConfig.CircuitBreakerInterval,
		Timeout:     envConfig.CircuitBreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= envConfig.CircuitBreakerMaxConsecutiveFails
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info(context.Background(), "controller factory circuit breaker state changed",
				"name", name, "from", from.String(), "to", to.String())
		},
	}

	return &BreakerControllerFactory{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

// CreateShipController runs the wrapped factory through the circuit
// breaker. A tripped breaker fails fast with the breaker's own error rather
// than invoking the wrapped factory.
func (f *BreakerControllerFactory) CreateShipController(handle ship.Handle, sim *Simulation, orders []byte) (Controller, error) {
	result, err := f.breaker.Execute(func() (interface{}, error) {
		return f.inner.CreateShipController(handle, sim, orders)
	})
	if err != nil {
		return nil, fmt.Errorf("controller factory breaker: %w", err)
	}
	return result.(Controller), nil
}
