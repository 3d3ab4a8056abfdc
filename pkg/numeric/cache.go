package numeric

import (
	"encoding/binary"
	"math"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// smoothingCacheCapacity bounds the memoisation cache; eviction is FIFO. The
// cache is process-local and non-authoritative: no correctness property
// depends on a hit.
const smoothingCacheCapacity = 100

var defaultSmoothingCache = newSmoothingCache(smoothingCacheCapacity)

type smoothingCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[[32]byte][]float64
	order    [][32]byte
}

func newSmoothingCache(capacity int) *smoothingCache {
	return &smoothingCache{
		capacity: capacity,
		entries:  make(map[[32]byte][]float64, capacity),
		order:    make([][32]byte, 0, capacity),
	}
}

// fingerprint hashes the smoothing inputs into a fixed-size cache key.
func fingerprint(series []float64, alpha float64, periods int) [32]byte {
	buf := make([]byte, 8*(len(series)+2))
	for i, v := range series {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	binary.LittleEndian.PutUint64(buf[len(series)*8:], math.Float64bits(alpha))
	binary.LittleEndian.PutUint64(buf[(len(series)+1)*8:], uint64(periods))
	return blake2b.Sum256(buf)
}

func (c *smoothingCache) get(series []float64, alpha float64, periods int) ([]float64, bool) {
	key := fingerprint(series, alpha, periods)

	c.mu.Lock()
	defer c.mu.Unlock()

	stored, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	out := make([]float64, len(stored))
	copy(out, stored)
	return out, true
}

func (c *smoothingCache) put(series []float64, alpha float64, periods int, values []float64) {
	key := fingerprint(series, alpha, periods)

	stored := make([]float64, len(values))
	copy(stored, values)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = stored
		return
	}

	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = stored
	c.order = append(c.order, key)
}

func (c *smoothingCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
