package game

import "time"

const (
	// MaxReward is awarded for a match typed in under one second.
	MaxReward = 10
	// TimeoutPenalty is deducted when a word's deadline passes.
	TimeoutPenalty = 5
)

// MatchReward scores a correct word: one point lost per whole second taken,
// never below zero.
func MatchReward(taken time.Duration) int {
	if taken < 0 {
		taken = 0
	}
	reward := MaxReward - int(taken/time.Second)
	if reward < 0 {
		return 0
	}
	return reward
}
