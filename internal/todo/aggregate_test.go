package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/duesoon/internal/config"
)

func TestAggregate_OrderIsNonIncreasingByDue(t *testing.T) {
	items := []Assignment{
		canvasItem(func(c *CanvasItem) { c.Assignment.DueAt = timePtr(now.Add(24 * time.Hour)) }),
		canvasItem(func(c *CanvasItem) { c.Assignment.DueAt = timePtr(now.Add(72 * time.Hour)) }),
		gradescopeItem(func(g *GradescopeItem) { g.Assignment.DueAt = timePtr(now.Add(48 * time.Hour)) }),
	}

	report := Aggregate(&config.Config{}, Options{Now: now}, items)

	require.Len(t, report.Items, 3)
	for i := 1; i < len(report.Items); i++ {
		prev, cur := report.Items[i-1].DueAt(), report.Items[i].DueAt()
		assert.False(t, cur.After(*prev), "items[%d] due after items[%d]", i, i-1)
	}
}

func TestAggregate_NilDueNeverAppears(t *testing.T) {
	undated := canvasItem(func(c *CanvasItem) { c.Assignment.DueAt = nil })
	dated := canvasItem(func(c *CanvasItem) { c.Assignment.DueAt = timePtr(now.Add(time.Hour)) })

	report := Aggregate(&config.Config{}, Options{Now: now}, []Assignment{undated, dated})

	require.Len(t, report.Items, 1)
	require.NotNil(t, report.NextDue)
	assert.Equal(t, now.Add(time.Hour), *report.NextDue, "undated assignments never drive next-due")
}

func TestAggregate_ExcludedCourseRemovesAllItsAssignments(t *testing.T) {
	cfg := &config.Config{Exclude: []config.Exclusion{{ClassID: int64Ptr(100)}}}

	excluded1 := canvasItem(func(c *CanvasItem) { c.Course.ID = 100; c.Assignment.ID = 1 })
	excluded2 := canvasItem(func(c *CanvasItem) { c.Course.ID = 100; c.Assignment.ID = 2 })
	kept := canvasItem(func(c *CanvasItem) { c.Course.ID = 101; c.Assignment.ID = 3 })

	report := Aggregate(cfg, Options{Now: now}, []Assignment{excluded1, excluded2, kept})

	require.Len(t, report.Items, 1)
	id, ok := report.Items[0].ID()
	require.True(t, ok)
	assert.Equal(t, int64(3), id)
}

func TestAggregate_ShowAllDoesNotResurrectExclusions(t *testing.T) {
	cfg := &config.Config{Exclude: []config.Exclusion{{ClassID: int64Ptr(100)}}}
	excluded := canvasItem(func(c *CanvasItem) { c.Course.ID = 100 })

	report := Aggregate(cfg, Options{ShowAll: true, Now: now}, []Assignment{excluded})
	assert.Empty(t, report.Items)
}

func TestAggregate_ShowAllBypassesSoftFilter(t *testing.T) {
	cfg := &config.Config{}
	finalized := canvasItem(func(c *CanvasItem) {
		c.Assignment.Submission = submitted(now.Add(-time.Hour), 0)
	})

	hidden := Aggregate(cfg, Options{Now: now}, []Assignment{finalized})
	shown := Aggregate(cfg, Options{ShowAll: true, Now: now}, []Assignment{finalized})

	assert.Empty(t, hidden.Items)
	assert.Len(t, shown.Items, 1)
}

func TestAggregate_EqualDueBothPresentOnce(t *testing.T) {
	due := now.Add(36 * time.Hour)
	a := canvasItem(func(c *CanvasItem) { c.Course.ID = 1; c.Assignment.ID = 11; c.Assignment.DueAt = timePtr(due) })
	b := gradescopeItem(func(g *GradescopeItem) { g.Course.ID = 2; g.Assignment.DueAt = timePtr(due) })

	report := Aggregate(&config.Config{}, Options{Now: now}, []Assignment{a}, []Assignment{b})

	require.Len(t, report.Items, 2)
	courses := []int64{report.Items[0].CourseID(), report.Items[1].CourseID()}
	assert.ElementsMatch(t, []int64{1, 2}, courses)
}

func TestAggregate_LockedCounterWithHideLocked(t *testing.T) {
	cfg := &config.Config{HideLocked: true}
	locked := canvasItem(func(c *CanvasItem) { c.Assignment.LockedForUser = true })
	open := canvasItem(func(c *CanvasItem) { c.Assignment.ID = 1001 })

	report := Aggregate(cfg, Options{Now: now}, []Assignment{locked, open})

	assert.Len(t, report.Items, 1)
	assert.Equal(t, 1, report.LockedHidden)
}

func TestAggregate_LockedShownWithoutHideLocked(t *testing.T) {
	locked := canvasItem(func(c *CanvasItem) { c.Assignment.LockedForUser = true })

	report := Aggregate(&config.Config{}, Options{Now: now}, []Assignment{locked})

	assert.Len(t, report.Items, 1)
	assert.Zero(t, report.LockedHidden)
}

func TestAggregate_NextDueMarkers(t *testing.T) {
	paper := canvasItem(func(c *CanvasItem) {
		c.Assignment.ID = 1
		c.Assignment.DueAt = timePtr(now.Add(12 * time.Hour))
		c.Assignment.SubmissionTypes = []string{"on_paper"}
	})
	online := canvasItem(func(c *CanvasItem) {
		c.Assignment.ID = 2
		c.Assignment.DueAt = timePtr(now.Add(36 * time.Hour))
	})
	past := canvasItem(func(c *CanvasItem) {
		c.Assignment.ID = 3
		c.Assignment.DueAt = timePtr(now.Add(-time.Hour))
	})

	report := Aggregate(&config.Config{}, Options{Now: now}, []Assignment{paper, online, past})

	require.NotNil(t, report.NextDue)
	assert.Equal(t, now.Add(12*time.Hour), *report.NextDue)
	require.NotNil(t, report.NextDueOnline)
	assert.Equal(t, now.Add(36*time.Hour), *report.NextDueOnline, "on-paper work must not drive the online marker")
}

func TestAggregate_NextDueIgnoresFinalizedSubmissions(t *testing.T) {
	done := canvasItem(func(c *CanvasItem) {
		c.Assignment.DueAt = timePtr(now.Add(6 * time.Hour))
		c.Assignment.Submission = submitted(now.Add(-time.Hour), 0)
	})
	pending := canvasItem(func(c *CanvasItem) {
		c.Assignment.ID = 1001
		c.Assignment.DueAt = timePtr(now.Add(48 * time.Hour))
	})

	report := Aggregate(&config.Config{}, Options{Now: now}, []Assignment{done, pending})

	require.NotNil(t, report.NextDue)
	assert.Equal(t, now.Add(48*time.Hour), *report.NextDue)
}

func TestReport_CourseNamesSorted(t *testing.T) {
	items := []Assignment{
		canvasItem(func(c *CanvasItem) { c.Course.Name = "Zoology"; c.Assignment.ID = 1 }),
		canvasItem(func(c *CanvasItem) { c.Course.Name = "Algebra"; c.Assignment.ID = 2 }),
		canvasItem(func(c *CanvasItem) { c.Course.Name = "Zoology"; c.Assignment.ID = 3 }),
	}

	report := Aggregate(&config.Config{}, Options{Now: now}, items)
	assert.Equal(t, []string{"Algebra", "Zoology"}, report.CourseNames())
}
