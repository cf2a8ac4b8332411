package todo

import (
	"time"

	"github.com/alexanderramin/duesoon/internal/config"
)

// Excluded is the hard filter: excluded assignments never enter the
// candidate set, and --show-all does not bring them back.
func Excluded(cfg *config.Config, a Assignment) bool {
	if cfg.ExcludesCourse(a.CourseID()) {
		return true
	}
	if id, ok := a.ID(); ok && cfg.ExcludesAssignment(id) {
		return true
	}
	return false
}

// ShouldShow is the soft predicate deciding whether an assignment is still
// worth listing. Rule order matters:
//
//  1. force-included assignments always show;
//  2. assignments overdue past the configured threshold are hidden;
//  3. submitted scraped assignments are hidden when configured (nothing
//     actionable remains on that source once submitted);
//  4. Canvas assignments with a finalized submission are hidden, unless a
//     peer review is still outstanding.
func ShouldShow(cfg *config.Config, a Assignment, now time.Time) bool {
	if id, ok := a.ID(); ok && cfg.IncludesAssignment(id) {
		return true
	}

	if due := a.DueAt(); due != nil && cfg.HideOverdueAfterDays != nil {
		overdue := now.Sub(*due)
		if overdue > time.Duration(*cfg.HideOverdueAfterDays)*24*time.Hour {
			return false
		}
	}

	switch item := a.(type) {
	case GradescopeItem:
		if cfg.HideOverdueWithoutSubmission && item.Assignment.Submitted {
			return false
		}
	case CanvasItem:
		sub := item.Assignment.Submission
		if sub != nil && sub.SubmittedAt != nil {
			if item.Assignment.PeerReviews && len(sub.DiscussionEntries) < 2 {
				return true
			}
			return false
		}
	}
	return true
}
