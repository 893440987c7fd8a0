package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/natbrooks/orbit/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBudgetCmd(app *App) *cobra.Command {
	var target float64

	cmd := &cobra.Command{
		Use:   "budget [HOURS]",
		Short: "Show or set the weekly hour budget",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 1 {
				hours, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return fmt.Errorf("invalid hours %q: %w", args[0], err)
				}
				if err := app.Settings.SetWeeklyBudget(ctx, hours); err != nil {
					return err
				}
				fmt.Printf("Weekly budget set to %s\n", formatter.FormatHours(hours))
			}

			if cmd.Flags().Changed("target") {
				if err := app.Settings.SetDefaultTarget(ctx, target); err != nil {
					return err
				}
				fmt.Printf("Default target grade set to %.0f%%\n", target)
			}

			if len(args) == 0 && !cmd.Flags().Changed("target") {
				settings, err := app.Settings.Get(ctx)
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatSettings(settings))
			}

			return nil
		},
	}

	cmd.Flags().Float64Var(&target, "target", 0, "Default target grade for courses without one (0-100)")

	return cmd
}
