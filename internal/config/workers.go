package config

import "runtime"

// EstimateWorkerCount provides a heuristic default for the concurrent
// primality tester's worker count based on the available cores.
//
// Each worker runs an independent sequence of modular exponentiations, so
// the work scales close to linearly up to the physical core count. Beyond
// eight workers the per-candidate round counts in common use (40-64) leave
// each worker too few rounds to amortize the spawn cost, so the default is
// capped there; callers can always raise it explicitly.
func EstimateWorkerCount() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 1:
		return 1
	case numCPU <= 8:
		return numCPU
	default:
		return 8
	}
}
