package match3

// DefaultThresholds are the scores at which each level starts.
// Level N begins at DefaultThresholds[N-1].
var DefaultThresholds = []int{0, 500, 1000, 2000, 3500, 5000, 7000}

// LevelFor returns the highest level whose threshold the score has reached.
// The result is at least 1, even for an empty threshold table.
func LevelFor(score int, thresholds []int) int {
	level := 1
	for i, t := range thresholds {
		if score >= t {
			level = i + 1
		}
	}
	return level
}

// NextThreshold returns the score needed for the level after the given one.
// ok is false at the last level.
func NextThreshold(level int, thresholds []int) (score int, ok bool) {
	if level < 1 || level >= len(thresholds) {
		return 0, false
	}
	return thresholds[level], true
}

// LevelCount returns the number of levels in a threshold table.
func LevelCount(thresholds []int) int {
	if len(thresholds) == 0 {
		return 1
	}
	return len(thresholds)
}
