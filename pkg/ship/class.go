// pkg/ship/class.go
package ship

import "fmt"

// Kind enumerates the ship classes the catalog can produce.
type Kind int

const (
	KindFighter Kind = iota
	KindFrigate
	KindCruiser
	KindAsteroid
	KindTarget
	KindMissile
	KindTorpedo
)

func (k Kind) String() string {
	switch k {
	case KindFighter:
		return "Fighter"
	case KindFrigate:
		return "Frigate"
	case KindCruiser:
		return "Cruiser"
	case KindAsteroid:
		return "Asteroid"
	case KindTarget:
		return "Target"
	case KindMissile:
		return "Missile"
	case KindTorpedo:
		return "Torpedo"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Class is the tagged ship-class variant. AsteroidVariant only has meaning
// when Kind is KindAsteroid; it selects which of the catalog's irregular
// asteroid shapes the model loader returns.
type Class struct {
	Kind            Kind
	AsteroidVariant int32
}

func (c Class) String() string {
	if c.Kind == KindAsteroid {
		return fmt.Sprintf("Asteroid(%d)", c.AsteroidVariant)
	}
	return c.Kind.String()
}
