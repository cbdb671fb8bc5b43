package dissolve

import "math/rand/v2"

// Generator constants from the dissolve patent (US 5,771,033): a Fermat
// prime and a primitive root modulo that prime. Repeated multiplication
// by root cycles k through all prime-1 nonzero residues before
// repeating, so the scan has full period.
const (
	prime = 1<<16 + 1 // 2^16 + 1
	root  = 1<<15 - 1 // 2^15 - 1
)

// Sequence generates a pseudo-random visitation order over the pixel
// indices [0, total) using O(1) state. Each residue k of the
// multiplicative cycle maps to a candidate index total + k - prime,
// which is folded down by prime-1 until it leaves the index range;
// every in-range value along the way is one emission. Within one full
// cycle every index in [0, total) is emitted exactly once.
type Sequence struct {
	total int
	k     int
	j     int
}

// NewSequence returns a sequence over [0, total). The starting residue
// is drawn from rng so runs are reproducible under a seeded generator;
// a nil rng uses the process-wide source. total must be at least 1.
func NewSequence(total int, rng *rand.Rand) *Sequence {
	k := 0
	if rng != nil {
		k = 1 + rng.IntN(prime-1)
	} else {
		k = 1 + rand.IntN(prime-1)
	}
	return &Sequence{total: total, k: k, j: total + k - prime}
}

// Next returns the next pixel index in the scan. Indices below total
// never repeat until total calls have been made.
func (s *Sequence) Next() int {
	for s.j < 0 {
		s.k = s.k * root % prime
		s.j = s.total + s.k - prime
	}
	idx := s.j
	s.j -= prime - 1
	return idx
}
