package cli

import (
	"context"
	"fmt"

	"github.com/natbrooks/orbit/internal/cli/formatter"
	"github.com/natbrooks/orbit/internal/contract"
	"github.com/natbrooks/orbit/internal/domain"
	"github.com/spf13/cobra"
)

func newWhatIfCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whatif",
		Short: "Simulate grade outcomes",
	}

	cmd.AddCommand(
		newWhatIfTargetCmd(app),
		newWhatIfScoreCmd(app),
		newWhatIfDropCmd(app),
	)

	return cmd
}

func newWhatIfTargetCmd(app *App) *cobra.Command {
	var target float64

	cmd := &cobra.Command{
		Use:   "target COURSE",
		Short: "Average needed on remaining items to hit a target final grade",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}

			req := contract.TargetSimRequest{CourseID: c.ID, TargetFinal: target}
			if !cmd.Flags().Changed("target") {
				req.TargetFinal = c.TargetOrDefault()
			}

			resp, err := app.Simulator.SimulateTarget(ctx, req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatTargetSim(resp))
			return nil
		},
	}

	cmd.Flags().Float64Var(&target, "target", domain.DefaultTargetGrade, "Target final grade (defaults to the course target)")

	return cmd
}

func newWhatIfScoreCmd(app *App) *cobra.Command {
	var item string
	var score, target float64

	cmd := &cobra.Command{
		Use:   "score COURSE",
		Short: "Project the final grade if one item scores a given value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveDeliverableID(ctx, app, item)
			if err != nil {
				return err
			}

			req := contract.ScoreSimRequest{
				CourseID:      c.ID,
				DeliverableID: itemID,
				Score:         score,
				TargetFinal:   target,
			}
			if !cmd.Flags().Changed("target") {
				req.TargetFinal = c.TargetOrDefault()
			}

			resp, err := app.Simulator.SimulateScore(ctx, req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatScoreSim(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&item, "item", "", "Deliverable ID (or unique prefix)")
	cmd.Flags().Float64Var(&score, "score", 0, "Hypothetical score (0-100)")
	cmd.Flags().Float64Var(&target, "target", domain.DefaultTargetGrade, "Target final grade (defaults to the course target)")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

func newWhatIfDropCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "drop COURSE",
		Short: "Project the final grade with the lowest graded item dropped",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}

			resp, err := app.Simulator.SimulateDropLowest(ctx, contract.DropSimRequest{CourseID: c.ID})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatDropSim(resp))
			return nil
		},
	}
}
