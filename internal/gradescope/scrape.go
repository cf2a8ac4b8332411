// Package gradescope scrapes courses and assignment rows out of the
// Gradescope dashboard HTML.
package gradescope

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// dueLayout is the timestamp format embedded in assignment rows,
// e.g. "2025-03-14 23:59:00 -0700".
const dueLayout = "2006-01-02 15:04:05 -0700"

// Course is one course box on the dashboard.
type Course struct {
	ID              int64
	Shortname       string
	Name            string
	AssignmentCount int
}

// Assignment is one row of a course's assignment table.
type Assignment struct {
	Name      string
	Submitted bool
	DueAt     *time.Time
	Link      string
}

// ParseCourses extracts course boxes from the dashboard page. Boxes without
// a parseable /courses/<id> href or the expected three text fields are
// skipped rather than reported; the dashboard carries decorative boxes too.
func ParseCourses(doc string) ([]Course, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nil, err
	}

	var courses []Course
	for _, box := range findAll(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, "courseBox")
	}) {
		href := attr(box, "href")
		rest, ok := strings.CutPrefix(href, "/courses/")
		if !ok {
			continue
		}
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			continue
		}
		texts := textsOf(box)
		if len(texts) != 3 {
			continue
		}
		count, err := strconv.Atoi(firstField(texts[2]))
		if err != nil {
			continue
		}
		courses = append(courses, Course{
			ID:              id,
			Shortname:       texts[0],
			Name:            texts[1],
			AssignmentCount: count,
		})
	}
	return courses, nil
}

// ParseAssignments extracts assignment rows from a course page.
func ParseAssignments(doc string) ([]Assignment, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nil, err
	}

	var assignments []Assignment
	for _, row := range findAll(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "tr" &&
			n.Parent != nil && n.Parent.Data == "tbody"
	}) {
		texts := textsOf(row)
		if len(texts) == 0 {
			continue
		}
		assignments = append(assignments, Assignment{
			Name:      texts[0],
			Submitted: rowSubmitted(row, texts),
			DueAt:     rowDueAt(texts),
			Link:      rowLink(row),
		})
	}
	return assignments, nil
}

// rowDueAt returns the last cell text that parses as a due timestamp; rows
// with extensions list the original date first and the effective one last.
func rowDueAt(texts []string) *time.Time {
	for i := len(texts) - 1; i >= 0; i-- {
		if t, err := time.Parse(dueLayout, texts[i]); err == nil {
			return &t
		}
	}
	return nil
}

// rowSubmitted prefers the explicit status text; some courses only render a
// score badge, which implies a graded submission.
func rowSubmitted(row *html.Node, texts []string) bool {
	for _, t := range texts {
		switch t {
		case "Submitted":
			return true
		case "No Submission":
			return false
		}
	}
	return len(findAll(row, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, "submissionStatus--score")
	})) > 0
}

func rowLink(row *html.Node) string {
	links := findAll(row, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "a" && attr(n, "href") != ""
	})
	if len(links) == 0 {
		return ""
	}
	return attr(links[0], "href")
}

// findAll walks the tree depth-first collecting nodes matching pred.
func findAll(root *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if pred(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// textsOf collects trimmed, non-empty text descendants in document order.
func textsOf(n *html.Node) []string {
	var out []string
	for _, t := range findAll(n, func(n *html.Node) bool { return n.Type == html.TextNode }) {
		if s := strings.TrimSpace(t.Data); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// hasClass reports whether the node's class attribute contains the given
// class token.
func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
