// Package cli wires the cobra command surface.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/duesoon/internal/canvas"
	"github.com/alexanderramin/duesoon/internal/config"
	"github.com/alexanderramin/duesoon/internal/gradescope"
	"github.com/alexanderramin/duesoon/internal/progress"
)

// CanvasLoader loads all Canvas courses with their assignments.
type CanvasLoader interface {
	LoadAll(ctx context.Context) ([]canvas.CourseAssignments, error)
}

// GradescopeLoader loads all Gradescope courses with their assignments.
type GradescopeLoader interface {
	LoadAll(ctx context.Context) ([]gradescope.CourseAssignments, error)
}

// App holds everything the commands need, constructed once in main.
type App struct {
	Config     *config.Config
	ConfigPath string
	Canvas     CanvasLoader
	Gradescope GradescopeLoader // nil when no session cookie is configured
	Tracker    *progress.Tracker
	Out        io.Writer
	Now        func() time.Time
}

// NewRootCmd creates the top-level "duesoon" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "duesoon",
		Short:         "Aggregated assignment due dates from Canvas and Gradescope",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTodoCmd(app),
		newExcludeCmd(app),
	)

	return root
}
