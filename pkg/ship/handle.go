// pkg/ship/handle.go
package ship

import "github.com/opd-ai/shipcore/pkg/physics"

// Handle identifies a live ship. It is the same generational index the
// physics world uses for the backing rigid body, per the ownership-graph
// design: the data store, registry, controller map, and physics body all
// key on this one identifier rather than each minting their own.
type Handle = physics.Handle
