package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/duesoon/internal/todo"
)

// FormatReport renders the merged todo list: one block per assignment in due
// order, then the next-due summary lines and the locked counter.
func FormatReport(report *todo.Report, now time.Time) string {
	colors := NewCourseColors(report.CourseNames())

	var b strings.Builder
	for _, a := range report.Items {
		due := *a.DueAt()

		dueStyle := StyleUpcoming
		if due.Before(now) {
			dueStyle = StyleOverdue
		}
		completed := ""
		if a.Submitted() {
			completed = " (completed)"
		}
		header := fmt.Sprintf("Due %s - %s%s",
			dueStyle.Render(RelativeDatetime(due, now)),
			colors.Style(a.CourseName()).Render(a.CourseName()),
			completed)
		b.WriteString(StyleHeader.Render(header))
		b.WriteString("\n")

		fmt.Fprintf(&b, "  %s\n", a.Title())
		if points, ok := a.Points(); ok {
			fmt.Fprintf(&b, "  %s\n", StyleDim.Render(fmt.Sprintf("%g points", points)))
		}
		if url := a.URL(); url != "" {
			fmt.Fprintf(&b, "  %s\n", StyleDim.Render(url))
		}
		b.WriteString("\n")
	}

	if report.NextDue != nil {
		fmt.Fprintf(&b, "Next due: %s\n", StyleUpcoming.Render(RelativeDatetime(*report.NextDue, now)))
	}
	if report.NextDueOnline != nil {
		fmt.Fprintf(&b, "Next online submission due: %s\n",
			StyleUpcoming.Render(RelativeDatetime(*report.NextDueOnline, now)))
	}
	if report.LockedHidden > 0 {
		noun := "locked assignments"
		if report.LockedHidden == 1 {
			noun = "locked assignment"
		}
		fmt.Fprintf(&b, "%s\n", StyleDim.Render(fmt.Sprintf("(+%d %s)", report.LockedHidden, noun)))
	}
	return b.String()
}
