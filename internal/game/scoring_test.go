package game

import (
	"testing"
	"time"
)

func TestMatchReward(t *testing.T) {
	cases := []struct {
		taken time.Duration
		want  int
	}{
		{400 * time.Millisecond, 10},
		{999 * time.Millisecond, 10},
		{time.Second, 9},
		{3200 * time.Millisecond, 7},
		{10 * time.Second, 0},
		{11 * time.Second, 0},
		{-time.Second, 10},
	}
	for _, tc := range cases {
		if got := MatchReward(tc.taken); got != tc.want {
			t.Fatalf("MatchReward(%v) = %d, want %d", tc.taken, got, tc.want)
		}
	}
}
