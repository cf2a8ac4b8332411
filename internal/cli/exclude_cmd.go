package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/duesoon/internal/config"
)

func newExcludeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "exclude <assignment_id>",
		Short: "Append an assignment exclusion rule to the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid assignment id %q: %w", args[0], err)
			}
			if err := config.AppendExclusion(app.ConfigPath, id); err != nil {
				return err
			}
			fmt.Fprintf(app.Out, "Excluded assignment %d\n", id)
			return nil
		},
	}
}
