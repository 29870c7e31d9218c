// pkg/ship/collisiongroups.go
package ship

import "github.com/opd-ai/shipcore/pkg/physics"

// InteractionGroupsFunc encodes team membership into a physics interaction
// groups bitmask. It is injected into a simulation so the encoding strategy
// stays swappable; DefaultInteractionGroups is a reasonable default.
type InteractionGroupsFunc func(team int) physics.InteractionGroups

// DefaultInteractionGroups puts each team in its own membership bit and lets
// every team collide with every other. Team indices above 31 alias onto the
// same bit; callers running more than 32 teams must supply their own
// InteractionGroupsFunc.
func DefaultInteractionGroups(team int) physics.InteractionGroups {
	bit := uint32(1) << uint(team%32)
	return physics.InteractionGroups{
		Membership: bit,
		Filter:     ^uint32(0),
	}
}
