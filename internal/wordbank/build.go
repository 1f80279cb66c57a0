package wordbank

import (
	"fmt"
	"unicode/utf8"
)

// Sampler selects up to n distinct words from a set.
type Sampler interface {
	Sample(words []string, n int) []string
}

// BuildOptions controls how a flat word list is split into levels.
type BuildOptions struct {
	Name      string
	Levels    int
	PerLevel  int
	MinLength int
}

// FromWordList groups words into levels by length: level 1 takes words of
// MinLength runes, each following level one rune longer, and the last level
// takes everything longer still. Each level keeps up to PerLevel words chosen
// by sampler. Empty length buckets borrow from the nearest shorter bucket.
func FromWordList(words []string, opts BuildOptions, sampler Sampler, picker Picker) (*Bank, error) {
	if opts.Levels <= 0 {
		return nil, fmt.Errorf("levels must be > 0")
	}
	if opts.PerLevel <= 0 {
		return nil, fmt.Errorf("per-level must be > 0")
	}
	if opts.MinLength <= 0 {
		opts.MinLength = 1
	}
	buckets := make([][]string, opts.Levels)
	for _, w := range words {
		n := utf8.RuneCountInString(w)
		if n < opts.MinLength {
			continue
		}
		idx := n - opts.MinLength
		if idx >= opts.Levels {
			idx = opts.Levels - 1
		}
		buckets[idx] = append(buckets[idx], w)
	}

	levels := make([][]string, opts.Levels)
	var prev []string
	for i, bucket := range buckets {
		if len(bucket) == 0 {
			bucket = prev
		}
		if len(bucket) == 0 {
			continue
		}
		levels[i] = sampler.Sample(bucket, opts.PerLevel)
		prev = bucket
	}
	first := -1
	for i, lvl := range levels {
		if len(lvl) > 0 {
			first = i
			break
		}
	}
	if first < 0 {
		return nil, fmt.Errorf("no words of at least %d characters", opts.MinLength)
	}
	for i := 0; i < first; i++ {
		levels[i] = levels[first]
	}
	return New(opts.Name, levels, picker)
}
