// Package todo merges assignments from heterogeneous sources into one
// ordered, filtered report.
package todo

import (
	"strings"
	"time"

	"github.com/alexanderramin/duesoon/internal/canvas"
	"github.com/alexanderramin/duesoon/internal/gradescope"
)

// Source tags which service an assignment came from.
type Source int

const (
	SourceCanvas Source = iota
	SourceGradescope
)

// Assignment is the unified view over both sources. An assignment without a
// due timestamp is enumerable but never orderable; the aggregator drops it
// before sorting.
type Assignment interface {
	Source() Source
	CourseID() int64
	CourseName() string
	Title() string
	DueAt() *time.Time
	URL() string
	Submitted() bool
	Locked() bool
	// ID returns the source-scoped assignment id. Scraped rows carry none.
	ID() (int64, bool)
	// Points returns the possible points, when the source reports them.
	Points() (float64, bool)
	// RequiresOnlineSubmission reports whether completing the assignment
	// takes an interactive submission (upload, text entry, quiz) rather
	// than in-person work.
	RequiresOnlineSubmission() bool
}

// CanvasItem adapts a Canvas assignment, borrowing its course by value.
type CanvasItem struct {
	Course     canvas.Course
	Assignment canvas.Assignment
}

func (c CanvasItem) Source() Source     { return SourceCanvas }
func (c CanvasItem) CourseID() int64    { return c.Course.ID }
func (c CanvasItem) CourseName() string { return c.Course.Name }
func (c CanvasItem) Title() string      { return strings.TrimSpace(c.Assignment.Name) }
func (c CanvasItem) DueAt() *time.Time  { return c.Assignment.DueAt }
func (c CanvasItem) URL() string        { return c.Assignment.HTMLURL }
func (c CanvasItem) Locked() bool       { return c.Assignment.LockedForUser }
func (c CanvasItem) ID() (int64, bool)  { return c.Assignment.ID, true }

func (c CanvasItem) Submitted() bool {
	return c.Assignment.Submission != nil && c.Assignment.Submission.SubmittedAt != nil
}

func (c CanvasItem) Points() (float64, bool) {
	if c.Assignment.PointsPossible == nil {
		return 0, false
	}
	return *c.Assignment.PointsPossible, true
}

func (c CanvasItem) RequiresOnlineSubmission() bool {
	for _, t := range c.Assignment.SubmissionTypes {
		if strings.HasPrefix(t, "online_") || t == "discussion_topic" {
			return true
		}
	}
	return false
}

// GradescopeItem adapts a scraped assignment row, borrowing its course by
// value.
type GradescopeItem struct {
	Course     gradescope.Course
	Assignment gradescope.Assignment
}

func (g GradescopeItem) Source() Source     { return SourceGradescope }
func (g GradescopeItem) CourseID() int64    { return g.Course.ID }
func (g GradescopeItem) CourseName() string { return g.Course.Shortname }
func (g GradescopeItem) Title() string      { return strings.TrimSpace(g.Assignment.Name) }
func (g GradescopeItem) DueAt() *time.Time  { return g.Assignment.DueAt }
func (g GradescopeItem) Submitted() bool    { return g.Assignment.Submitted }
func (g GradescopeItem) Locked() bool       { return false }
func (g GradescopeItem) ID() (int64, bool)  { return 0, false }

func (g GradescopeItem) Points() (float64, bool) { return 0, false }

// Gradescope work is always submitted through the site.
func (g GradescopeItem) RequiresOnlineSubmission() bool { return true }

func (g GradescopeItem) URL() string {
	if g.Assignment.Link == "" {
		return ""
	}
	return strings.TrimSuffix(gradescope.BaseURL, "/") + g.Assignment.Link
}

// FromCanvas flattens course/assignment pairs into unified assignments.
func FromCanvas(loaded []canvas.CourseAssignments) []Assignment {
	var out []Assignment
	for _, ca := range loaded {
		for _, a := range ca.Assignments {
			out = append(out, CanvasItem{Course: ca.Course, Assignment: a})
		}
	}
	return out
}

// FromGradescope flattens course/assignment pairs into unified assignments.
func FromGradescope(loaded []gradescope.CourseAssignments) []Assignment {
	var out []Assignment
	for _, ca := range loaded {
		for _, a := range ca.Assignments {
			out = append(out, GradescopeItem{Course: ca.Course, Assignment: a})
		}
	}
	return out
}
