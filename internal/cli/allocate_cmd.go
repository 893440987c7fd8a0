package cli

import (
	"context"
	"fmt"

	"github.com/natbrooks/orbit/internal/cli/formatter"
	"github.com/natbrooks/orbit/internal/contract"
	"github.com/spf13/cobra"
)

func newAllocateCmd(app *App) *cobra.Command {
	var hours float64

	cmd := &cobra.Command{
		Use:   "allocate ID [ID]",
		Short: "Split available hours across one or two deliverables",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			ids := make([]string, 0, len(args))
			for _, arg := range args {
				id, err := resolveDeliverableID(ctx, app, arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			resp, err := app.Simulator.AllocateEffort(ctx, contract.AllocateRequest{
				DeliverableIDs: ids,
				AvailableHours: hours,
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatAllocation(resp))
			return nil
		},
	}

	cmd.Flags().Float64Var(&hours, "hours", 0, "Available hours to allocate")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}
