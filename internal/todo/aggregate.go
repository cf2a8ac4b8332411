package todo

import (
	"sort"
	"time"

	"github.com/alexanderramin/duesoon/internal/config"
)

// Options controls a single aggregation pass.
type Options struct {
	// ShowAll bypasses the soft ShouldShow predicate. Hard exclusions and
	// locked suppression still apply.
	ShowAll bool
	Now     time.Time
}

// Report is the merged, ordered, filtered result of one run.
type Report struct {
	// Items is ordered descending by due timestamp; every entry has a due
	// date and passed both filters.
	Items []Assignment

	// LockedHidden counts assignments suppressed by hide_locked.
	LockedHidden int

	// NextDue is the earliest future due among still-actionable
	// assignments; NextDueOnline restricts that to assignments requiring
	// an online submission. Nil when nothing qualifies.
	NextDue       *time.Time
	NextDueOnline *time.Time
}

// CourseNames returns the distinct course names of the report's items,
// sorted, so display colors can be assigned independently of fetch
// completion order.
func (r *Report) CourseNames() []string {
	seen := map[string]bool{}
	var names []string
	for _, a := range r.Items {
		if !seen[a.CourseName()] {
			seen[a.CourseName()] = true
			names = append(names, a.CourseName())
		}
	}
	sort.Strings(names)
	return names
}

// Aggregate merges assignment lists from any number of sources into one
// report. Assignments without a due date are dropped before sorting; they
// are never shown and never counted.
func Aggregate(cfg *config.Config, opts Options, sources ...[]Assignment) *Report {
	var merged []Assignment
	for _, src := range sources {
		for _, a := range src {
			if Excluded(cfg, a) {
				continue
			}
			if a.DueAt() == nil {
				continue
			}
			merged = append(merged, a)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].DueAt().After(*merged[j].DueAt())
	})

	report := &Report{}
	for _, a := range merged {
		actionable := ShouldShow(cfg, a, opts.Now)

		if actionable && !a.Locked() {
			if due := a.DueAt(); due.After(opts.Now) {
				if report.NextDue == nil || due.Before(*report.NextDue) {
					report.NextDue = due
				}
				if a.RequiresOnlineSubmission() &&
					(report.NextDueOnline == nil || due.Before(*report.NextDueOnline)) {
					report.NextDueOnline = due
				}
			}
		}

		if !actionable && !opts.ShowAll {
			continue
		}
		if cfg.HideLocked && a.Locked() {
			report.LockedHidden++
			continue
		}
		report.Items = append(report.Items, a)
	}
	return report
}
