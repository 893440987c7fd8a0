package cli

import (
	"context"
	"fmt"

	"github.com/natbrooks/orbit/internal/cli/formatter"
	"github.com/natbrooks/orbit/internal/contract"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var course string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show the academic health dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			req := contract.NewDashboardRequest()

			if course != "" {
				c, err := resolveCourse(ctx, app, course)
				if err != nil {
					return err
				}
				req.CourseID = c.ID
			}

			resp, err := app.Dashboard.GetDashboard(ctx, req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatDashboard(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Scope to one course (code or ID)")

	return cmd
}
