// Package config loads and persists the ~/.canvas.toml configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration. Everything except the Canvas URL and
// token is optional.
type Config struct {
	CanvasURL                    string      `toml:"canvas_url"`
	Token                        string      `toml:"token"`
	GradescopeCookie             string      `toml:"gradescope_cookie,omitempty"`
	HideOverdueAfterDays         *int        `toml:"hide_overdue_after_days,omitempty"`
	HideOverdueWithoutSubmission bool        `toml:"hide_overdue_without_submission,omitempty"`
	HideLocked                   bool        `toml:"hide_locked,omitempty"`
	Exclude                      []Exclusion `toml:"exclude,omitempty"`
	Include                      []Inclusion `toml:"include,omitempty"`
}

// Exclusion removes a whole course or a single assignment from the candidate
// set. Exactly one of the two fields is set.
type Exclusion struct {
	ClassID      *int64 `toml:"class_id,omitempty"`
	AssignmentID *int64 `toml:"assignment_id,omitempty"`
}

// Inclusion forces an assignment to be shown regardless of any other rule.
type Inclusion struct {
	AssignmentID int64 `toml:"assignment_id"`
}

// ExcludesCourse reports whether the given course id is excluded.
func (c *Config) ExcludesCourse(id int64) bool {
	for _, e := range c.Exclude {
		if e.ClassID != nil && *e.ClassID == id {
			return true
		}
	}
	return false
}

// ExcludesAssignment reports whether the given assignment id is excluded.
func (c *Config) ExcludesAssignment(id int64) bool {
	for _, e := range c.Exclude {
		if e.AssignmentID != nil && *e.AssignmentID == id {
			return true
		}
	}
	return false
}

// IncludesAssignment reports whether the given assignment id is force-included.
func (c *Config) IncludesAssignment(id int64) bool {
	for _, i := range c.Include {
		if i.AssignmentID == id {
			return true
		}
	}
	return false
}

// Path returns the config file location: $DUESOON_CONFIG if set, otherwise
// ~/.canvas.toml.
func Path() (string, error) {
	if p := os.Getenv("DUESOON_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".canvas.toml"), nil
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, &Error{Path: path, Cause: err}
	}
	if cfg.CanvasURL == "" {
		return nil, &Error{Path: path, Cause: fmt.Errorf("canvas_url is required")}
	}
	if cfg.Token == "" {
		return nil, &Error{Path: path, Cause: fmt.Errorf("token is required")}
	}
	for i, e := range cfg.Exclude {
		if (e.ClassID == nil) == (e.AssignmentID == nil) {
			return nil, &Error{Path: path, Cause: fmt.Errorf("exclude[%d]: exactly one of class_id or assignment_id must be set", i)}
		}
	}
	return &cfg, nil
}

// AppendExclusion adds an assignment-id exclusion rule and rewrites the file.
// The whole file is re-encoded; comments do not survive, matching the
// original behavior of the exclude command.
func AppendExclusion(path string, assignmentID int64) error {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return &Error{Path: path, Cause: err}
	}
	if cfg.ExcludesAssignment(assignmentID) {
		return nil
	}
	id := assignmentID
	cfg.Exclude = append(cfg.Exclude, Exclusion{AssignmentID: &id})

	f, err := os.CreateTemp(filepath.Dir(path), ".canvas-*.toml")
	if err != nil {
		return fmt.Errorf("creating temp config: %w", err)
	}
	defer os.Remove(f.Name())
	if err := toml.NewEncoder(f).Encode(&cfg); err != nil {
		f.Close()
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return os.Rename(f.Name(), path)
}
