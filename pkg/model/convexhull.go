// pkg/model/convexhull.go
package model

import (
	"errors"
	"sort"

	"github.com/opd-ai/shipcore/pkg/physics"
)

// ErrInvalidModel is returned when a point set has no valid convex hull,
// i.e. fewer than three points survive hull construction.
var ErrInvalidModel = errors.New("model: no valid convex hull")

// ConvexHull computes the convex hull of a set of 2D points using Andrew's
// monotone chain algorithm, returning vertices ordered counter-clockwise.
// It is deliberately a small, self-contained algorithm: the example corpus
// carries no dedicated convex-hull library, and the nearest neighbor
// (a Delaunay/constrained triangulation package) solves a different problem
// and would be a forced fit for a plain hull.
func ConvexHull(points []physics.Vector2D) ([]physics.Vector2D, error) {
	if len(points) < 3 {
		return nil, ErrInvalidModel
	}

	pts := make([]physics.Vector2D, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	cross := func(o, a, b physics.Vector2D) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	lower := make([]physics.Vector2D, 0, len(pts))
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]physics.Vector2D, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		return nil, ErrInvalidModel
	}
	return hull, nil
}
