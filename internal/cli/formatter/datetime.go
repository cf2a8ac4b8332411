package formatter

import (
	"fmt"
	"math"
	"time"
)

// RelativeDatetime phrases a due timestamp relative to now: "3 days ago",
// "today at 11:59 pm", "tomorrow at ...", "this Friday at ..." within a
// week, otherwise "on Mar 02 at ...".
func RelativeDatetime(t, now time.Time) string {
	t = t.In(now.Location())
	day := startOfDay(t)
	today := startOfDay(now)
	clock := t.Format("03:04 pm")

	// Rounded so DST-shortened days still count as whole calendar days.
	switch days := int(math.Round(day.Sub(today).Hours() / 24)); {
	case days < 0:
		return fmt.Sprintf("%d days ago", -days)
	case days == 0:
		return fmt.Sprintf("today at %s", clock)
	case days == 1:
		return fmt.Sprintf("tomorrow at %s", clock)
	case days < 7:
		return fmt.Sprintf("this %s at %s", t.Format("Monday"), clock)
	default:
		return fmt.Sprintf("on %s at %s", t.Format("Jan 02"), clock)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
