// Package stats contains game summary calculations and plain-text reporting.
package stats

import (
	"math"
	"strings"
	"time"
)

const sparkChars = " .:-=+*#%@"

// Summary condenses a finished game.
type Summary struct {
	Matched        int
	Missed         int
	HitRate        float64
	WordsPerMinute float64
	AvgWordTime    time.Duration
	BestWordTime   time.Duration
}

// Summarize computes words per minute, hit rate and per-word timing from a
// game's counters. wordTimes holds the time taken for each matched word.
func Summarize(matched, missed int, elapsed time.Duration, wordTimes []time.Duration) Summary {
	s := Summary{Matched: matched, Missed: missed}
	if total := matched + missed; total > 0 {
		s.HitRate = float64(matched) / float64(total)
	}
	if minutes := elapsed.Minutes(); minutes > 0 {
		s.WordsPerMinute = float64(matched) / minutes
	}
	if len(wordTimes) == 0 {
		return s
	}
	var sum time.Duration
	best := wordTimes[0]
	for _, d := range wordTimes {
		sum += d
		if d < best {
			best = d
		}
	}
	s.AvgWordTime = sum / time.Duration(len(wordTimes))
	s.BestWordTime = best
	return s
}

// Seconds converts durations to float seconds for plotting.
func Seconds(ds []time.Duration) []float64 {
	out := make([]float64, len(ds))
	for i, d := range ds {
		out[i] = d.Seconds()
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
