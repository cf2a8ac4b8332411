package gradescope

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/duesoon/internal/fetch"
	"github.com/alexanderramin/duesoon/internal/progress"
)

// BaseURL is the dashboard root every path is resolved against.
const BaseURL = "https://www.gradescope.com/"

// CourseAssignments pairs a scraped course with its scraped assignment rows.
type CourseAssignments struct {
	Course      Course
	Assignments []Assignment
}

// Source loads Gradescope data through a fetch client carrying the session
// cookie, reporting each in-flight request to the tracker.
type Source struct {
	client  *fetch.Client
	tracker *progress.Tracker
}

// NewSource returns a Gradescope source backed by the given client and
// tracker.
func NewSource(client *fetch.Client, tracker *progress.Tracker) *Source {
	return &Source{client: client, tracker: tracker}
}

// LoadAll scrapes the dashboard course list, then every course page
// concurrently. The first failing fetch aborts the join and is returned.
func (s *Source) LoadAll(ctx context.Context) ([]CourseAssignments, error) {
	courses, err := progress.Wrap(s.tracker, "gradescope courses", func() ([]Course, error) {
		doc, err := fetch.GetHTML(ctx, s.client, "/")
		if err != nil {
			return nil, err
		}
		return ParseCourses(doc)
	})
	if err != nil {
		return nil, err
	}

	out := make([]CourseAssignments, len(courses))
	g, ctx := errgroup.WithContext(ctx)
	for i, course := range courses {
		i, course := i, course
		g.Go(func() error {
			assignments, err := progress.Wrap(s.tracker, course.Shortname, func() ([]Assignment, error) {
				doc, err := fetch.GetHTML(ctx, s.client, fmt.Sprintf("/courses/%d", course.ID))
				if err != nil {
					return nil, err
				}
				return ParseAssignments(doc)
			})
			if err != nil {
				return err
			}
			out[i] = CourseAssignments{Course: course, Assignments: assignments}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
