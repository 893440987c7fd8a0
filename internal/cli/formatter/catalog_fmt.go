package formatter

import (
	"fmt"
	"time"

	"github.com/natbrooks/orbit/internal/domain"
)

// FormatCourseList renders courses as a table with their schedule block
// counts and target grades.
func FormatCourseList(courses []*domain.Course) string {
	headers := []string{"CODE", "NAME", "TARGET", "SCHEDULE", "ID"}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		target := Dim("--")
		if c.TargetGrade != nil {
			target = StyleFg.Render(fmt.Sprintf("%.0f%%", *c.TargetGrade))
		}
		schedule := Dim("none")
		if n := len(c.ScheduleBlocks); n > 0 {
			schedule = StyleFg.Render(fmt.Sprintf("%d block(s)/week", n))
		}
		rows = append(rows, []string{
			StylePurple.Render(c.Code),
			Bold(c.Name),
			target,
			schedule,
			TruncID(c.ID),
		})
	}
	return RenderTable(headers, rows)
}

// FormatDeliverableList renders deliverables as a table. now is the
// reference clock for due-date coloring.
func FormatDeliverableList(items []*domain.Deliverable, courseNames map[string]string, now time.Time) string {
	headers := []string{"TITLE", "COURSE", "DUE", "STATUS", "EST", "WEIGHT", "GRADE", "ID"}
	rows := make([][]string, 0, len(items))
	for _, d := range items {
		course := Dim("--")
		if name, ok := courseNames[d.CourseID]; ok {
			course = StylePurple.Render(name)
		}
		grade := Dim("--")
		if g := d.Grade(); g != nil {
			grade = StyleFg.Render(FormatPct(*g))
		}
		rows = append(rows, []string{
			Bold(d.Title),
			course,
			RelativeDateStyled(d.DueDate, now),
			StatusPill(d.Status),
			FormatHours(d.EstimatedHours),
			fmt.Sprintf("%.0f%%", d.GradeWeight),
			grade,
			TruncID(d.ID),
		})
	}
	return RenderTable(headers, rows)
}

// FormatSettings renders the workspace settings summary.
func FormatSettings(s *domain.Settings) string {
	return fmt.Sprintf("%s %s\n%s %s\n",
		Dim("Weekly budget:"), Bold(FormatHours(s.WeeklyBudgetHours)),
		Dim("Default target:"), Bold(fmt.Sprintf("%.0f%%", s.DefaultTargetGrade)))
}
