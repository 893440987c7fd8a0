package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/natbrooks/orbit/internal/cli/formatter"
	"github.com/natbrooks/orbit/internal/domain"
	"github.com/spf13/cobra"
)

// resolveDeliverableID resolves an exact ID or unique ID prefix.
func resolveDeliverableID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("deliverable ID is required")
	}

	items, err := app.Deliverables.ListAll(ctx)
	if err != nil {
		return "", err
	}

	for _, d := range items {
		if d.ID == input {
			return d.ID, nil
		}
	}

	var matches []string
	for _, d := range items {
		if strings.HasPrefix(d.ID, input) {
			matches = append(matches, d.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("deliverable not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("deliverable ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newDeliverableCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deliverable",
		Short: "Manage deliverables",
	}

	cmd.AddCommand(
		newDeliverableAddCmd(app),
		newDeliverableListCmd(app),
		newDeliverableGradeCmd(app),
		newDeliverableStatusCmd(app),
		newDeliverableUpdateCmd(app),
		newDeliverableRemoveCmd(app),
	)

	return cmd
}

func newDeliverableAddCmd(app *App) *cobra.Command {
	var course, title, due, priority string
	var hours, weight, target float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new deliverable",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, course)
			if err != nil {
				return err
			}

			dueDate, err := time.Parse("2006-01-02", due)
			if err != nil {
				return fmt.Errorf("invalid due date %q: %w", due, err)
			}

			d := &domain.Deliverable{
				ID:             uuid.New().String(),
				CourseID:       c.ID,
				Title:          title,
				DueDate:        dueDate,
				EstimatedHours: hours,
				GradeWeight:    weight,
			}
			if cmd.Flags().Changed("priority") {
				d.Priority = domain.Priority(priority)
			}
			if cmd.Flags().Changed("target") {
				if target < 0 || target > 100 {
					return fmt.Errorf("target grade must be between 0 and 100")
				}
				d.TargetGrade = domain.FloatPtr(target)
			}

			if err := app.Deliverables.Create(ctx, d); err != nil {
				return err
			}

			fmt.Printf("Created deliverable %s in %s\n", d.Title, c.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Course code or ID")
	cmd.Flags().StringVar(&title, "title", "", "Deliverable title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated hours of work")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Grade weight (percent of final grade)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high)")
	cmd.Flags().Float64Var(&target, "target", 0, "Target grade (0-100)")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("due")

	return cmd
}

func newDeliverableListCmd(app *App) *cobra.Command {
	var course string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List deliverables",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var items []*domain.Deliverable
			names := make(map[string]string)

			if course != "" {
				c, err := resolveCourse(ctx, app, course)
				if err != nil {
					return err
				}
				names[c.ID] = c.Code
				items, err = app.Deliverables.ListByCourse(ctx, c.ID)
				if err != nil {
					return err
				}
			} else {
				courses, err := app.Courses.List(ctx)
				if err != nil {
					return err
				}
				for _, c := range courses {
					names[c.ID] = c.Code
				}
				items, err = app.Deliverables.ListAll(ctx)
				if err != nil {
					return err
				}
			}

			if len(items) == 0 {
				fmt.Println("No deliverables found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatDeliverableList(items, names, time.Now()))
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Scope to one course (code or ID)")

	return cmd
}

func newDeliverableGradeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "grade ID [GRADE]",
		Short: "Record a grade for a deliverable",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveDeliverableID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var gradeStr string
			if len(args) == 2 {
				gradeStr = args[1]
			} else {
				if !app.interactive() {
					return fmt.Errorf("grade value is required")
				}
				if err := gradeForm(&gradeStr).Run(); err != nil {
					return err
				}
			}

			grade, err := strconv.ParseFloat(gradeStr, 64)
			if err != nil {
				return fmt.Errorf("invalid grade %q: %w", gradeStr, err)
			}

			if err := app.Deliverables.RecordGrade(ctx, id, grade); err != nil {
				return err
			}

			fmt.Printf("Recorded %.1f%% on deliverable %s\n", grade, id[:8])
			return nil
		},
	}
}

func newDeliverableStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set a deliverable's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveDeliverableID(ctx, app, args[0])
			if err != nil {
				return err
			}

			status := domain.DeliverableStatus(args[1])
			if err := app.Deliverables.SetStatus(ctx, id, status); err != nil {
				return err
			}

			fmt.Printf("Set deliverable %s to %s\n", id[:8], status)
			return nil
		},
	}
}

func newDeliverableUpdateCmd(app *App) *cobra.Command {
	var title, due, priority, risk string
	var hours, weight float64

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a deliverable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveDeliverableID(ctx, app, args[0])
			if err != nil {
				return err
			}
			d, err := app.Deliverables.GetByID(ctx, id)
			if err != nil {
				return err
			}
			if d == nil {
				return fmt.Errorf("deliverable not found: %q", args[0])
			}

			if cmd.Flags().Changed("title") {
				d.Title = title
			}
			if cmd.Flags().Changed("due") {
				dueDate, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("invalid due date %q: %w", due, err)
				}
				d.DueDate = dueDate
			}
			if cmd.Flags().Changed("hours") {
				d.EstimatedHours = hours
			}
			if cmd.Flags().Changed("weight") {
				d.GradeWeight = weight
			}
			if cmd.Flags().Changed("priority") {
				d.Priority = domain.Priority(priority)
			}
			if cmd.Flags().Changed("risk") {
				d.RiskLevel = domain.RiskLevel(risk)
			}

			if err := app.Deliverables.Update(ctx, d); err != nil {
				return err
			}

			fmt.Printf("Updated deliverable %s\n", d.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Deliverable title")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Estimated hours of work")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Grade weight (percent of final grade)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&risk, "risk", "", "Risk level (low|medium|high|critical)")

	return cmd
}

func newDeliverableRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a deliverable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveDeliverableID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Deliverables.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed deliverable %s\n", id[:8])
			return nil
		},
	}
}
