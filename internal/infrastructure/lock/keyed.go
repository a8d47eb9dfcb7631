package lock

import (
	"hash/fnv"
	"sync"
)

const defaultStripes = 64

// Keyed serializes operations per key using a fixed set of striped mutexes.
// Keys are mapped to stripes by consistent hashing, so two operations on the
// same key always contend on the same mutex. Distinct keys may share a
// stripe; that costs throughput, never correctness.
type Keyed struct {
	stripes []sync.Mutex
}

// NewKeyed creates a Keyed lock with numStripes stripes. If numStripes <= 0,
// defaultStripes is used.
func NewKeyed(numStripes int) *Keyed {
	if numStripes <= 0 {
		numStripes = defaultStripes
	}
	return &Keyed{stripes: make([]sync.Mutex, numStripes)}
}

// Lock acquires the stripe for key and returns the unlock function.
func (k *Keyed) Lock(key string) func() {
	m := &k.stripes[k.stripeIndex(key)]
	m.Lock()
	return m.Unlock
}

// stripeIndex maps a key deterministically to a stripe.
func (k *Keyed) stripeIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32()) % len(k.stripes)
}
