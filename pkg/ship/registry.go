// pkg/ship/registry.go
package ship

// Registry is the set of live ship handles, ordered by insertion. Iteration
// order must be stable for the simulation to be deterministic, so handles
// spawned mid-tick are held in a pending queue and only become visible to
// Snapshot once Flush runs at the end of the tick that queued them, so the
// next tick's walk includes them.
type Registry struct {
	order   []Handle
	pending []Handle
	index   map[Handle]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[Handle]int)}
}

// Queue records a newly spawned handle. It does not appear in Snapshot
// until the next Flush.
func (r *Registry) Queue(h Handle) {
	r.pending = append(r.pending, h)
}

// Flush moves queued handles into the live order, appending them in the
// order they were queued.
func (r *Registry) Flush() {
	for _, h := range r.pending {
		r.index[h] = len(r.order)
		r.order = append(r.order, h)
	}
	r.pending = r.pending[:0]
}

// Snapshot returns a copy of the current live order. Callers iterate the
// snapshot rather than the registry itself so that spawns or removals
// triggered mid-iteration cannot perturb the set being walked.
func (r *Registry) Snapshot() []Handle {
	out := make([]Handle, len(r.order))
	copy(out, r.order)
	return out
}

// Remove deletes a handle from the live order, preserving the relative
// order of the handles that remain.
func (r *Registry) Remove(h Handle) {
	i, ok := r.index[h]
	if !ok {
		return
	}
	r.order = append(r.order[:i], r.order[i+1:]...)
	delete(r.index, h)
	for j := i; j < len(r.order); j++ {
		r.index[r.order[j]] = j
	}
}

// Len returns the number of live handles.
func (r *Registry) Len() int {
	return len(r.order)
}
