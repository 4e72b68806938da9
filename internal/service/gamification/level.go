package gamification

import "math"

// xpRequiredFor returns the cumulative XP threshold for a level:
// floor(100 * level^1.5).
func xpRequiredFor(level int) int {
	return int(math.Floor(100 * math.Pow(float64(level), 1.5)))
}

// LevelFromXP returns the largest level whose XP threshold is not above
// totalXP, scanning upward from level 1. Level 1 is the floor: users below
// the first threshold still hold it. Monotonic in its input.
func LevelFromXP(totalXP int) int {
	level := 1
	for xpRequiredFor(level+1) <= totalXP {
		level++
	}
	return level
}
