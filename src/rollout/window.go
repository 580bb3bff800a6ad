package rollout

import "time"

// InWindow reports whether now lies in [start, end]. A nil bound is open.
func InWindow(start *time.Time, end *time.Time, now time.Time) bool {
	if start != nil && now.Before(*start) {
		return false
	}
	if end != nil && now.After(*end) {
		return false
	}
	return true
}
