package config

import "fmt"

// Error is a fatal configuration problem reported at startup.
type Error struct {
	Path  string
	Cause error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }
