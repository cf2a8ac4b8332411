package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alexanderramin/duesoon/internal/cli/formatter"
	"github.com/alexanderramin/duesoon/internal/todo"
)

func newTodoCmd(app *App) *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Print the aggregated assignment todo list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := runPipeline(cmd.Context(), app, showAll)
			if err != nil {
				return err
			}
			fmt.Fprint(app.Out, formatter.FormatReport(report, app.Now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAll, "show-all", false, "Show assignments the filter rules would hide")

	return cmd
}

// runPipeline loads both sources concurrently and merges them. The first
// failing branch aborts the whole run: a partial todo list would be
// misleading.
func runPipeline(ctx context.Context, app *App, showAll bool) (*todo.Report, error) {
	var canvasItems, gradescopeItems []todo.Assignment

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loaded, err := app.Canvas.LoadAll(ctx)
		if err != nil {
			return err
		}
		canvasItems = todo.FromCanvas(loaded)
		return nil
	})
	if app.Gradescope != nil {
		g.Go(func() error {
			loaded, err := app.Gradescope.LoadAll(ctx)
			if err != nil {
				return err
			}
			gradescopeItems = todo.FromGradescope(loaded)
			return nil
		})
	}
	err := g.Wait()
	app.Tracker.Finish()
	if err != nil {
		return nil, err
	}

	opts := todo.Options{ShowAll: showAll, Now: app.Now()}
	return todo.Aggregate(app.Config, opts, canvasItems, gradescopeItems), nil
}
