package cli

import (
	"context"
	"fmt"

	"github.com/natbrooks/orbit/internal/cli/formatter"
	"github.com/natbrooks/orbit/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan COURSE",
		Short: "Build a 7-day study plan for a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}

			resp, err := app.Planner.BuildPlan(ctx, contract.PlanRequest{CourseID: c.ID})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatPlan(resp))
			return nil
		},
	}
}
