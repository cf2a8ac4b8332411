package formatter

import "github.com/charmbracelet/lipgloss"

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorDim    = lipgloss.Color("#928374")
)

// Predefined lipgloss styles.
var (
	StyleOverdue  = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	StyleUpcoming = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	StyleDim      = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader   = lipgloss.NewStyle().Underline(true)
)

// coursePalette cycles through for per-course colors.
var coursePalette = []lipgloss.Color{
	ColorBlue,
	ColorYellow,
	ColorPurple,
	ColorOrange,
	ColorGreen,
}

// CourseColors assigns each course a color from the cyclic palette, memoized
// for the rest of the run. Assign the sorted course-name list up front so
// the mapping does not depend on fetch completion order.
type CourseColors struct {
	styles map[string]lipgloss.Style
	next   int
}

// NewCourseColors pre-assigns colors to the given names in order.
func NewCourseColors(names []string) *CourseColors {
	c := &CourseColors{styles: make(map[string]lipgloss.Style)}
	for _, name := range names {
		c.Style(name)
	}
	return c
}

// Style returns the memoized style for a course, assigning the next palette
// color on first encounter.
func (c *CourseColors) Style(course string) lipgloss.Style {
	if s, ok := c.styles[course]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(coursePalette[c.next%len(coursePalette)])
	c.next++
	c.styles[course] = s
	return s
}
