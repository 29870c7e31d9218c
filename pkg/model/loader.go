// pkg/model/loader.go
package model

import (
	"fmt"
	"math"

	"github.com/opd-ai/shipcore/pkg/physics"
	"github.com/opd-ai/shipcore/pkg/ship"
)

// Loader returns the polygonal hull for a ship class. Implementations need
// not return an already-convex polygon; the spawn pipeline runs the result
// through ConvexHull regardless.
type Loader interface {
	Load(class ship.Class) ([]physics.Vector2D, error)
}

// StaticLoader returns hard-coded polygons per class. It stands in for a
// real asset-pipeline loader, which is an out-of-scope collaborator.
type StaticLoader struct{}

// NewStaticLoader creates a StaticLoader.
func NewStaticLoader() *StaticLoader {
	return &StaticLoader{}
}

// Load returns the vertex list for class.Kind.
func (l *StaticLoader) Load(class ship.Class) ([]physics.Vector2D, error) {
	switch class.Kind {
	case ship.KindFighter:
		return diamond(10), nil
	case ship.KindFrigate:
		return rectangle(45, 18), nil
	case ship.KindCruiser:
		return regularPolygon(6, 55, 0), nil
	case ship.KindMissile:
		return regularPolygon(3, 6, math.Pi/2), nil
	case ship.KindTorpedo:
		return rectangle(10, 4), nil
	case ship.KindTarget:
		return rectangle(5, 5), nil
	case ship.KindAsteroid:
		return asteroidShape(class.AsteroidVariant), nil
	default:
		return nil, fmt.Errorf("model: unknown class %v", class)
	}
}

func diamond(radius float64) []physics.Vector2D {
	return regularPolygon(4, radius, 0)
}

func rectangle(length, width float64) []physics.Vector2D {
	hl, hw := length/2, width/2
	return []physics.Vector2D{
		{X: hl, Y: hw}, {X: hl, Y: -hw}, {X: -hl, Y: -hw}, {X: -hl, Y: hw},
	}
}

func regularPolygon(sides int, radius, phase float64) []physics.Vector2D {
	verts := make([]physics.Vector2D, sides)
	for i := 0; i < sides; i++ {
		angle := phase + float64(i)*2*math.Pi/float64(sides)
		verts[i] = physics.FromAngle(angle, radius)
	}
	return verts
}

// asteroidShape builds an irregular convex polygon whose vertex count and
// radii are a deterministic function of variant, so the same variant always
// yields the same hull.
func asteroidShape(variant int32) []physics.Vector2D {
	sides := 5 + int(variant%4)
	verts := make([]physics.Vector2D, sides)
	for i := 0; i < sides; i++ {
		angle := float64(i) * 2 * math.Pi / float64(sides)
		jitter := 1.0 + 0.15*math.Sin(float64(variant+1)*float64(i+1))
		verts[i] = physics.FromAngle(angle, 40*jitter)
	}
	return verts
}
