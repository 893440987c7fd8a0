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

// resolveCourse resolves a course code or ID to a loaded course.
func resolveCourse(ctx context.Context, app *App, ref string) (*domain.Course, error) {
	if ref == "" {
		return nil, fmt.Errorf("course code or ID is required")
	}
	c, err := app.Courses.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("course not found: %q", ref)
	}
	return c, nil
}

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseShowCmd(app),
		newCourseUpdateCmd(app),
		newCourseScheduleCmd(app),
		newCourseRemoveCmd(app),
	)

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var name, code, color string
	var target float64
	var blocks []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new course",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &domain.Course{
				ID:   uuid.New().String(),
				Name: name,
				Code: strings.ToUpper(code),
			}
			if cmd.Flags().Changed("color") {
				c.Color = color
			}
			if cmd.Flags().Changed("target") {
				if target < 0 || target > 100 {
					return fmt.Errorf("target grade must be between 0 and 100")
				}
				c.TargetGrade = domain.FloatPtr(target)
			}

			parsed, err := parseScheduleBlocks(blocks)
			if err != nil {
				return err
			}
			c.ScheduleBlocks = parsed

			if err := app.Courses.Create(context.Background(), c); err != nil {
				return err
			}

			fmt.Printf("Created course %s [%s]\n", c.Name, c.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Course name")
	cmd.Flags().StringVar(&code, "code", "", "Course code (e.g. CS301)")
	cmd.Flags().StringVar(&color, "color", "", "Display color")
	cmd.Flags().Float64Var(&target, "target", 0, "Target final grade (0-100)")
	cmd.Flags().StringArrayVar(&blocks, "block", nil, "Weekly schedule block (day,start,end,type e.g. 1,10:00,12:00,class)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Courses.List(context.Background())
			if err != nil {
				return err
			}

			if len(courses) == 0 {
				fmt.Println("No courses found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatCourseList(courses))
			return nil
		},
	}
}

func newCourseShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show COURSE",
		Short: "Show course details and deliverables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s [%s]\n", formatter.Bold(c.Name), c.Code)
			if c.TargetGrade != nil {
				fmt.Printf("Target grade: %.0f%%\n", *c.TargetGrade)
			}
			for _, b := range c.ScheduleBlocks {
				day := time.Weekday(b.DayOfWeek).String()
				fmt.Printf("  %s %s - %s (%s)\n", day, b.StartTime, b.EndTime, b.Type)
			}

			items, err := app.Deliverables.ListByCourse(ctx, c.ID)
			if err != nil {
				return err
			}
			if len(items) > 0 {
				fmt.Println()
				names := map[string]string{c.ID: c.Code}
				fmt.Printf("%s\n", formatter.FormatDeliverableList(items, names, time.Now()))
			}
			return nil
		},
	}
}

func newCourseUpdateCmd(app *App) *cobra.Command {
	var name, code, color string
	var target float64

	cmd := &cobra.Command{
		Use:   "update COURSE",
		Short: "Update a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				c.Name = name
			}
			if cmd.Flags().Changed("code") {
				c.Code = strings.ToUpper(code)
			}
			if cmd.Flags().Changed("color") {
				c.Color = color
			}
			if cmd.Flags().Changed("target") {
				if target < 0 || target > 100 {
					return fmt.Errorf("target grade must be between 0 and 100")
				}
				c.TargetGrade = domain.FloatPtr(target)
			}

			if err := app.Courses.Update(ctx, c); err != nil {
				return err
			}

			fmt.Printf("Updated course %s [%s]\n", c.Name, c.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Course name")
	cmd.Flags().StringVar(&code, "code", "", "Course code")
	cmd.Flags().StringVar(&color, "color", "", "Display color")
	cmd.Flags().Float64Var(&target, "target", 0, "Target final grade (0-100)")

	return cmd
}

func newCourseScheduleCmd(app *App) *cobra.Command {
	var blocks []string
	var clear bool

	cmd := &cobra.Command{
		Use:   "schedule COURSE",
		Short: "Replace a course's weekly schedule blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !clear && len(blocks) == 0 {
				return fmt.Errorf("provide at least one --block, or --clear to remove all blocks")
			}

			parsed, err := parseScheduleBlocks(blocks)
			if err != nil {
				return err
			}

			if err := app.Courses.SetBlocks(ctx, c.ID, parsed); err != nil {
				return err
			}

			fmt.Printf("Set %d schedule block(s) on %s\n", len(parsed), c.Code)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&blocks, "block", nil, "Weekly schedule block (day,start,end,type e.g. 1,10:00,12:00,class)")
	cmd.Flags().BoolVar(&clear, "clear", false, "Remove all schedule blocks")

	return cmd
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove COURSE",
		Short: "Remove a course and its deliverables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			c, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !force {
				if !app.interactive() {
					return fmt.Errorf("refusing to remove %s without --force in non-interactive mode", c.Code)
				}
				confirmed, err := confirmPrompt(fmt.Sprintf("Remove %s and all its deliverables?", c.Name))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Println("Aborted.")
					return nil
				}
			}

			if err := app.Courses.Delete(ctx, c.ID); err != nil {
				return err
			}

			fmt.Printf("Removed course %s [%s]\n", c.Name, c.Code)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")

	return cmd
}

// parseScheduleBlocks parses "day,start,end,type" specs into schedule blocks.
func parseScheduleBlocks(specs []string) ([]domain.ScheduleBlock, error) {
	blocks := make([]domain.ScheduleBlock, 0, len(specs))
	for _, spec := range specs {
		parts := strings.Split(spec, ",")
		if len(parts) != 4 {
			return nil, fmt.Errorf("invalid --block %q, expected day,start,end,type", spec)
		}
		day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil || day < 0 || day > 6 {
			return nil, fmt.Errorf("invalid --block day %q, expected 0 (Sunday) to 6 (Saturday)", parts[0])
		}
		blockType := strings.TrimSpace(parts[3])
		if !domain.ValidBlockTypes[blockType] {
			return nil, fmt.Errorf("invalid --block type %q, expected class, lab, office-hours, or study-block", blockType)
		}
		blocks = append(blocks, domain.ScheduleBlock{
			ID:        uuid.New().String(),
			DayOfWeek: day,
			StartTime: strings.TrimSpace(parts[1]),
			EndTime:   strings.TrimSpace(parts[2]),
			Type:      domain.BlockType(blockType),
		})
	}
	return blocks, nil
}
