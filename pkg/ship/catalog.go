// pkg/ship/catalog.go
package ship

import "github.com/opd-ai/shipcore/pkg/physics"

// Tau is one full turn in radians, used throughout the catalog because the
// tuning table is naturally expressed in fractions of a turn.
const Tau = 2 * 3.141592653589793

func ttl(ticks uint64) *uint64 {
	v := ticks
	return &v
}

// Fighter returns a fresh ShipData for a fast, lightly armed scout.
func Fighter(team int) *Data {
	return &Data{
		Class:  Class{Kind: KindFighter},
		Health: 100,
		Team:   team,
		Guns: []Gun{
			{ReloadTime: 0.2, Damage: 20, Speed: 1000, Offset: physics.Vector2D{X: 20}, Inaccuracy: 0.017, BurstSize: 1},
		},
		MissileLaunchers: []MissileLauncher{
			{Class: Class{Kind: KindMissile}, ReloadTime: 5, InitialSpeed: 100, Offset: physics.Vector2D{X: 20}},
		},
		MaxAcceleration:        physics.Vector2D{X: 200, Y: 100},
		MaxAngularAcceleration: Tau,
		Radar:                  &Radar{Width: Tau / 6, Power: 20e3, RxCrossSection: 5, MinRSSI: 1e-2, ClassifyRSSI: 1e-1},
		RadarCrossSection:      10,
		Mass:                    1,
		InvPrincipalInertiaSqrt: 1,
	}
}

// Frigate returns a fresh ShipData for a heavy gunship with point-defense
// turrets.
func Frigate(team int) *Data {
	return &Data{
		Class:  Class{Kind: KindFrigate},
		Health: 10000,
		Team:   team,
		Guns: []Gun{
			{ReloadTime: 1.0, Damage: 1000, Speed: 4000, Offset: physics.Vector2D{X: 40}, BurstSize: 1},
			{ReloadTime: 0.2, Damage: 20, Speed: 1000, Offset: physics.Vector2D{X: 0, Y: 15}, Inaccuracy: 0.017, BurstSize: 1},
			{ReloadTime: 0.2, Damage: 20, Speed: 1000, Offset: physics.Vector2D{X: 0, Y: -15}, Inaccuracy: 0.017, BurstSize: 1},
		},
		MissileLaunchers: []MissileLauncher{
			{Class: Class{Kind: KindMissile}, ReloadTime: 2, InitialSpeed: 100, Offset: physics.Vector2D{X: 32}},
		},
		MaxAcceleration:        physics.Vector2D{X: 20, Y: 10},
		MaxAngularAcceleration: Tau / 8,
		Radar:                  &Radar{Width: Tau / 6, Power: 100e3, RxCrossSection: 10, MinRSSI: 1e-2, ClassifyRSSI: 1e-1},
		RadarCrossSection:      30,
		Mass:                    50,
		InvPrincipalInertiaSqrt: 0.1,
	}
}

// Cruiser returns a fresh ShipData for a heavy multi-mount capital ship.
func Cruiser(team int) *Data {
	return &Data{
		Class:  Class{Kind: KindCruiser},
		Health: 10000,
		Team:   team,
		Guns: []Gun{
			{ReloadTime: 0.2, Damage: 20, Speed: 1000, Inaccuracy: 0.035, BurstSize: 5},
		},
		MissileLaunchers: []MissileLauncher{
			{Class: Class{Kind: KindMissile}, ReloadTime: 1.2, InitialSpeed: 100, Offset: physics.Vector2D{X: 0, Y: 30}, Angle: Tau / 4},
			{Class: Class{Kind: KindMissile}, ReloadTime: 1.2, InitialSpeed: 100, Offset: physics.Vector2D{X: 0, Y: -30}, Angle: -Tau / 4},
			{Class: Class{Kind: KindTorpedo}, ReloadTime: 3.0, InitialSpeed: 100, Offset: physics.Vector2D{X: 100}},
		},
		MaxAcceleration:        physics.Vector2D{X: 10, Y: 50},
		MaxAngularAcceleration: Tau / 16,
		Radar:                  &Radar{Width: Tau / 6, Power: 200e3, RxCrossSection: 20, MinRSSI: 1e-2, ClassifyRSSI: 1e-1},
		RadarCrossSection:      40,
		Mass:                    80,
		InvPrincipalInertiaSqrt: 0.05,
	}
}

// Missile returns a fresh ShipData for a short-lived homing munition.
func Missile(team int) *Data {
	return &Data{
		Class:                   Class{Kind: KindMissile},
		Health:                  1,
		Team:                    team,
		MaxAcceleration:         physics.Vector2D{X: 400, Y: 100},
		MaxAngularAcceleration:  2 * Tau,
		TTL:                     ttl(600),
		Radar:                   &Radar{Width: Tau / 6, Power: 10e3, RxCrossSection: 3, MinRSSI: 1e-2, ClassifyRSSI: 1e-1},
		RadarCrossSection:       3,
		Mass:                    0.2,
		InvPrincipalInertiaSqrt: 2,
	}
}

// Torpedo returns a fresh ShipData for a slower, harder-hitting munition.
func Torpedo(team int) *Data {
	return &Data{
		Class:                   Class{Kind: KindTorpedo},
		Health:                  100,
		Team:                    team,
		MaxAcceleration:         physics.Vector2D{X: 200, Y: 50},
		MaxAngularAcceleration:  2 * Tau,
		TTL:                     ttl(1200),
		Radar:                   &Radar{Width: Tau / 6, Power: 20e3, RxCrossSection: 3, MinRSSI: 1e-2, ClassifyRSSI: 1e-1},
		RadarCrossSection:       8,
		Mass:                    1,
		InvPrincipalInertiaSqrt: 1,
	}
}

// Asteroid returns a fresh ShipData for an inert, immobile hazard. variant
// selects the model loader's irregular hull shape; it has no effect on
// stats. Asteroids belong to a reserved neutral team.
func Asteroid(variant int32) *Data {
	return &Data{
		Class:                   Class{Kind: KindAsteroid, AsteroidVariant: variant},
		Health:                  200,
		Team:                    9,
		Mass:                    200,
		InvPrincipalInertiaSqrt: 0,
	}
}

// Target returns a fresh ShipData for an inert, immobile practice target.
func Target(team int) *Data {
	return &Data{
		Class:                   Class{Kind: KindTarget},
		Health:                  1,
		Team:                    team,
		Mass:                    1,
		InvPrincipalInertiaSqrt: 0,
	}
}
