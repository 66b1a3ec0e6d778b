package engine

// RebootRange returns 0..maxReboot
func RebootRange(maxReboot int) []int {
	return intRange(0, maxReboot)
}

// LevelRange returns 1..maxLevel
func LevelRange(maxLevel int) []int {
	return intRange(1, maxLevel)
}

func intRange(from, to int) []int {
	if to < from {
		return []int{}
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}
