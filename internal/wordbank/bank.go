// Package wordbank holds the per-level word sets the game draws challenges from.
package wordbank

import (
	"errors"
	"fmt"
)

// Picker draws one word from a candidate set.
type Picker interface {
	Pick(words []string) string
}

// Bank maps levels 1..N to fixed word sets. A Bank is immutable after New.
type Bank struct {
	name   string
	levels [][]string
	picker Picker
}

// ErrEmptyBank is returned when a bank defines no levels.
var ErrEmptyBank = errors.New("word bank has no levels")

// New copies levels into a Bank. Every level must contain at least one word.
func New(name string, levels [][]string, picker Picker) (*Bank, error) {
	if len(levels) == 0 {
		return nil, ErrEmptyBank
	}
	copied := make([][]string, len(levels))
	for i, words := range levels {
		if len(words) == 0 {
			return nil, fmt.Errorf("level %d has no words", i+1)
		}
		for _, w := range words {
			if w == "" {
				return nil, fmt.Errorf("level %d contains an empty word", i+1)
			}
		}
		copied[i] = append([]string(nil), words...)
	}
	return &Bank{name: name, levels: copied, picker: picker}, nil
}

// Name returns the bank identifier.
func (b *Bank) Name() string {
	return b.name
}

// Levels returns the number of defined levels.
func (b *Bank) Levels() int {
	return len(b.levels)
}

// Words returns a copy of the word set bound to level after clamping.
func (b *Bank) Words(level int) []string {
	return append([]string(nil), b.levels[b.clamp(level)]...)
}

// WordFor draws a word uniformly from the set bound to level. Levels past the
// last defined one use the last level's set; levels below 1 use the first.
func (b *Bank) WordFor(level int) string {
	return b.picker.Pick(b.levels[b.clamp(level)])
}

func (b *Bank) clamp(level int) int {
	idx := level - 1
	if idx < 0 {
		return 0
	}
	if idx >= len(b.levels) {
		return len(b.levels) - 1
	}
	return idx
}
