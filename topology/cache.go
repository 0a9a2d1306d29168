package topology

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sync"

	"github.com/katalvlaran/zigen/glyph"
)

// Cache memoizes graphs by stroke content. Safe for concurrent use.
//
// Entries are bucketed by Hash and confirmed against the full stroke
// encoding, so a hash collision costs a rebuild, never a wrong graph.
type Cache struct {
	mu      sync.Mutex
	buckets map[uint64][]entry
	size    int
	hits    uint64
	misses  uint64
}

type entry struct {
	key   string
	graph *Graph
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{buckets: make(map[uint64][]entry)}
}

// Get returns the graph of strokes, building it on a miss.
func (c *Cache) Get(strokes []glyph.Stroke) (*Graph, error) {
	key := encode(strokes)
	sum := sum64(key)

	c.mu.Lock()
	if g := c.lookup(sum, key); g != nil {
		c.hits++
		c.mu.Unlock()
		return g, nil
	}
	c.misses++
	c.mu.Unlock()

	g, err := Build(strokes)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if prev := c.lookup(sum, key); prev != nil {
		return prev, nil
	}
	c.buckets[sum] = append(c.buckets[sum], entry{key: string(key), graph: g})
	c.size++
	return g, nil
}

// lookup runs under c.mu.
func (c *Cache) lookup(sum uint64, key []byte) *Graph {
	for _, e := range c.buckets[sum] {
		if e.key == string(key) {
			return e.graph
		}
	}
	return nil
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Len returns the number of cached graphs.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// Reset drops every cached graph and zeroes the counters.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buckets = make(map[uint64][]entry)
	c.size = 0
	c.hits, c.misses = 0, 0
}

// Hash returns the FNV-64a hash of the stroke data: features, start
// points and draw commands, in order.
func Hash(strokes []glyph.Stroke) uint64 {
	return sum64(encode(strokes))
}

func sum64(key []byte) uint64 {
	h := fnv.New64a()
	_, _ = h.Write(key)
	return h.Sum64()
}

// encode is the canonical byte form of strokes; equal encodings mean
// equal stroke data.
func encode(strokes []glyph.Stroke) []byte {
	var buf []byte
	for _, s := range strokes {
		buf = append(buf, string(s.Feature)...)
		buf = append(buf, 0)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(s.Start.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(s.Start.Y))
		for _, d := range s.Draws {
			buf = append(buf, byte(d.Kind), byte(len(d.Params)))
			for _, p := range d.Params {
				buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(p))
			}
		}
		buf = append(buf, 0xff)
	}
	return buf
}
