package slot

import "dish-studio/internal/pkg/daykey"

// Counter is one day's global capacity and consumption.
// Used values may briefly go negative when releases race; readers clamp.
type Counter struct {
	DayKey    daykey.Key
	FreeLimit int32
	AdLimit   int32
	FreeUsed  int32
	AdUsed    int32
}

func (c Counter) Limit(t Type) int32 {
	if t == TypeAd {
		return c.AdLimit
	}
	return c.FreeLimit
}

func (c Counter) Used(t Type) int32 {
	if t == TypeAd {
		return c.AdUsed
	}
	return c.FreeUsed
}

func (c Counter) HasCapacity(t Type) bool {
	return c.Used(t) < c.Limit(t)
}

// Clamped returns a copy for display with usage bounded to [0, limit].
func (c Counter) Clamped() Counter {
	c.FreeUsed = clamp(c.FreeUsed, c.FreeLimit)
	c.AdUsed = clamp(c.AdUsed, c.AdLimit)
	return c
}

func clamp(used, limit int32) int32 {
	if used < 0 {
		return 0
	}
	if limit >= 0 && used > limit {
		return limit
	}
	return used
}
