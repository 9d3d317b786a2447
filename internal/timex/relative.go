package timex

import (
	"fmt"
	"time"
)

// Bucket thresholds in milliseconds of elapsed time.
const (
	minuteMillis = 60_000
	hourMillis   = 3_600_000
	dayMillis    = 86_400_000
)

// Relative renders the age of t against now as a short human-readable
// string, the way the feed displays post timestamps:
//
//	< 1 minute  -> "À l'instant"
//	< 60 minutes -> "Il y a N min"
//	< 24 hours  -> "Il y a N h"
//	< 7 days    -> "Il y a N j"
//	otherwise   -> absolute date, day first ("02/01/2006")
//
// All bucket boundaries are floor divisions of the elapsed millisecond
// count. Timestamps in the future clamp to "À l'instant".
func Relative(t time.Time, now time.Time) string {
	diff := now.Sub(t).Milliseconds()
	if diff < 0 {
		diff = 0
	}

	minutes := diff / minuteMillis
	hours := diff / hourMillis
	days := diff / dayMillis

	switch {
	case minutes < 1:
		return "À l'instant"
	case minutes < 60:
		return fmt.Sprintf("Il y a %d min", minutes)
	case hours < 24:
		return fmt.Sprintf("Il y a %d h", hours)
	case days < 7:
		return fmt.Sprintf("Il y a %d j", days)
	default:
		return t.Format("02/01/2006")
	}
}

// RelativeNow is Relative against the current wall clock.
func RelativeNow(t time.Time) string {
	return Relative(t, time.Now())
}
