// Package generator owns the random source used to draw challenge words.
package generator

import (
	"math/rand"
	"time"
)

// Generator draws words uniformly at random.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed, for reproducible draws.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick selects one word uniformly. It returns "" for an empty slice.
func (g *Generator) Pick(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[g.rnd.Intn(len(words))]
}

// Sample returns up to n distinct entries of words in random order. The
// input slice is not modified.
func (g *Generator) Sample(words []string, n int) []string {
	if n <= 0 || len(words) == 0 {
		return nil
	}
	if n > len(words) {
		n = len(words)
	}
	idx := g.rnd.Perm(len(words))[:n]
	out := make([]string, 0, n)
	for _, i := range idx {
		out = append(out, words[i])
	}
	return out
}
