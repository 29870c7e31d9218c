// Package radar declares the per-ship sensor attachment this core carries
// but never interprets. The radar sensor model itself — signal propagation,
// RSSI computation, classification — belongs to an external collaborator;
// this package only defines the per-tick hook that collaborator would
// implement against a ship's Data.Radar field.
package radar

import "github.com/opd-ai/shipcore/pkg/ship"

// Sensor is the per-tick update hook for a ship's radar. Implementations
// populate handle's Radar.Result using whatever world state they have
// access to; this core never reads or writes Result itself.
type Sensor interface {
	Update(tick uint64, handle ship.Handle, radar *ship.Radar)
}

// NoopSensor implements Sensor by doing nothing, so a simulation can run
// without wiring a real sensor model.
type NoopSensor struct{}

// Update is a no-op.
func (NoopSensor) Update(tick uint64, handle ship.Handle, radar *ship.Radar) {}
