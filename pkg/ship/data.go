// pkg/ship/data.go
package ship

import "github.com/opd-ai/shipcore/pkg/physics"

// Gun is one ship-mounted weapon slot.
type Gun struct {
	ReloadTime          float64
	ReloadTimeRemaining float64
	Damage              float64
	Speed               float64
	Offset              physics.Vector2D
	Angle               float64
	Inaccuracy          float64
	BurstSize           int
}

// MissileLauncher is one ship-mounted missile or torpedo bay.
type MissileLauncher struct {
	Class               Class
	ReloadTime          float64
	ReloadTimeRemaining float64
	InitialSpeed        float64
	Offset              physics.Vector2D
	Angle               float64
}

// Radar is the per-ship sensor configuration. This core only carries the
// fields; the radar subsystem that populates Result each tick is an
// external collaborator.
type Radar struct {
	Heading        float64
	Width          float64
	Power          float64
	RxCrossSection float64
	MinRSSI        float64
	ClassifyRSSI   float64
	Result         any
}

// Data is the per-ship state that lives outside the physics body: the class
// catalog's tuning, pending actuator intents, and lifecycle flags. Exactly
// one Data exists per live Handle, held in a Store.
type Data struct {
	Class Class

	Guns             []Gun
	MissileLaunchers []MissileLauncher

	Health float64
	Team   int

	Acceleration           physics.Vector2D
	AngularAcceleration    float64
	MaxAcceleration        physics.Vector2D
	MaxAngularAcceleration float64

	Destroyed bool

	Radar             *Radar
	RadarCrossSection float64

	TTL *uint64

	Mass                    float64
	InvPrincipalInertiaSqrt float64
}
