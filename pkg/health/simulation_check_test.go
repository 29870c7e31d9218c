// pkg/health/simulation_check_test.go
package health

import (
	"context"
	"testing"
)

type fakeTickProgress struct {
	running bool
	tick    uint64
}

func (f fakeTickProgress) IsRunning() bool { return f.running }
func (f fakeTickProgress) Tick() uint64    { return f.tick }

func TestNewSimulationTickCheck_ReflectsUnderlyingState(t *testing.T) {
	check := NewSimulationTickCheck(fakeTickProgress{running: true, tick: 10})

	if check.Name() != "simulation" {
		t.Errorf("Name() = %q, want simulation", check.Name())
	}
	if err := check.Check(context.Background()); err != nil {
		t.Errorf("Check() error = %v, want nil", err)
	}
}

func TestNewSimulationTickCheck_ReportsErrorWhenStalled(t *testing.T) {
	check := NewSimulationTickCheck(fakeTickProgress{running: false})

	if err := check.Check(context.Background()); err == nil {
		t.Error("Check() returned nil, want error for stalled tick loop")
	}
}
