package repo

import "time"

type MovementFilter struct {
	Since  *time.Time
	Until  *time.Time
	Offset *int
	Limit  *int
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
