// Package canvas loads active courses and their assignments from the Canvas
// REST API.
package canvas

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/duesoon/internal/fetch"
	"github.com/alexanderramin/duesoon/internal/progress"
)

const (
	coursesPath     = "/api/v1/courses?enrollment_state=active&per_page=10000"
	assignmentsPath = "/api/v1/courses/%d/assignments?per_page=10000&include=submission"
)

// CourseAssignments pairs a course with its assignment list.
type CourseAssignments struct {
	Course      Course
	Assignments []Assignment
}

// Source loads Canvas data through a fetch client, reporting each in-flight
// request to the tracker.
type Source struct {
	client  *fetch.Client
	tracker *progress.Tracker
}

// NewSource returns a Canvas source backed by the given client and tracker.
func NewSource(client *fetch.Client, tracker *progress.Tracker) *Source {
	return &Source{client: client, tracker: tracker}
}

// LoadAll fetches the active course list, then every course's assignments
// concurrently. The first failing fetch aborts the join and is returned.
func (s *Source) LoadAll(ctx context.Context) ([]CourseAssignments, error) {
	courses, err := progress.Wrap(s.tracker, "canvas courses", func() ([]Course, error) {
		return fetch.GetJSON[[]Course](ctx, s.client, coursesPath)
	})
	if err != nil {
		return nil, err
	}

	out := make([]CourseAssignments, len(courses))
	g, ctx := errgroup.WithContext(ctx)
	for i, course := range courses {
		i, course := i, course
		g.Go(func() error {
			path := fmt.Sprintf(assignmentsPath, course.ID)
			assignments, err := progress.Wrap(s.tracker, course.Name, func() ([]Assignment, error) {
				return fetch.GetJSON[[]Assignment](ctx, s.client, path)
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
