package state

import (
	"fmt"
	"strconv"
	"time"
)

// FormatAge renders how long ago created was, relative to now, truncating
// downward: "now", "N min", "N h" or "N d".
func FormatAge(created, now time.Time) string {
	minutes := int(now.Sub(created) / time.Minute)
	switch {
	case minutes < 1:
		return "now"
	case minutes < 60:
		return fmt.Sprintf("%d min", minutes)
	case minutes < 24*60:
		return fmt.Sprintf("%d h", minutes/60)
	default:
		return fmt.Sprintf("%d d", minutes/(24*60))
	}
}

// UnreadBadge renders an unread counter; empty for zero, "9+" above nine.
func UnreadBadge(n int) string {
	switch {
	case n <= 0:
		return ""
	case n > 9:
		return "9+"
	default:
		return strconv.Itoa(n)
	}
}
