// Package rng derives the deterministic random sources consumed by gun
// firing and explosion debris. Every source here is constructed fresh from
// an explicit seed; nothing in this package touches a thread-local or
// package-level generator, since doing so would make the simulation's
// output depend on call order instead of simulation state.
package rng

import "math/rand/v2"

// DebrisSeed is the fixed seed used for every explosion's debris fan. It is
// intentionally constant rather than tick- or handle-derived: every
// explosion must draw the same sequence of angles.
const DebrisSeed uint64 = 0

// FireSeed derives the per-shot seed for a gun firing event. It must be a
// pure function of the tick, the firing ship's handle, and the gun index so
// that replaying the same inputs reproduces the same muzzle jitter.
func FireSeed(tick uint64, handleIndex uint32, gunIndex int) uint64 {
	return tick ^ uint64(handleIndex) ^ uint64(uint32(gunIndex))
}

// New builds a deterministic generator from a seed. Callers construct one
// per firing/explosion event rather than sharing a generator across calls.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
