// pkg/simulation/breaker_test.go
package simulation

import (
	"errors"
	"testing"
	"time"

	"github.com/opd-ai/shipcore/pkg/config"
	"github.com/opd-ai/shipcore/pkg/logging"
	"github.com/opd-ai/shipcore/pkg/ship"
)

type flakyFactory struct {
	fail  bool
	calls int
}

func (f *flakyFactory) CreateShipController(handle ship.Handle, sim *Simulation, orders []byte) (Controller, error) {
	f.calls++
	if f.fail {
		return nil, errors.New("controller build failed")
	}
	return noopController{}, nil
}

func testBreakerConfig() *config.EnvironmentConfig {
	cfg := config.DefaultEnvironmentConfig()
	cfg.CircuitBreakerMaxConsecutiveFails = 2
	cfg.CircuitBreakerTimeout = 10 * time.Millisecond
	cfg.CircuitBreakerInterval = 10 * time.Millisecond
	return cfg
}

func TestBreakerControllerFactory_PassesThroughOnSuccess(t *testing.T) {
	inner := &flakyFactory{}
	bf := NewBreakerControllerFactory("test", inner, testBreakerConfig(), logging.NewLogger())

	_, err := bf.CreateShipController(ship.Handle{}, nil, nil)
	if err != nil {
		t.Fatalf("CreateShipController() error = %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("inner factory calls = %d, want 1", inner.calls)
	}
}

func TestBreakerControllerFactory_TripsAfterConsecutiveFailures(t *testing.T) {
	inner := &flakyFactory{fail: true}
	bf := NewBreakerControllerFactory("test-trip", inner, testBreakerConfig(), logging.NewLogger())

	for i := 0; i < 2; i++ {
		if _, err := bf.CreateShipController(ship.Handle{}, nil, nil); err == nil {
			t.Fatalf("call %d: expected error from failing inner factory", i)
		}
	}

	callsBeforeTrip := inner.calls
	if _, err := bf.CreateShipController(ship.Handle{}, nil, nil); err == nil {
		t.Fatal("expected breaker-open error on third call")
	}
	if inner.calls != callsBeforeTrip {
		t.Errorf("inner factory was called while breaker should be open: %d -> %d", callsBeforeTrip, inner.calls)
	}
}
