package formatter

import (
	"fmt"
	"strings"

	"github.com/natbrooks/orbit/internal/analytics"
	"github.com/natbrooks/orbit/internal/contract"
)

// FormatPlan formats a 7-day schedule plan for one course.
func FormatPlan(resp *contract.PlanResponse) string {
	var b strings.Builder
	plan := resp.Plan

	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		Bold(resp.CourseName),
		Dim(fmt.Sprintf("%s/week budget", FormatHours(resp.WeeklyBudget)))))

	if len(plan.TopPriorities) > 0 {
		b.WriteString(Header("Top Priorities"))
		b.WriteString("\n\n")
		for i, p := range plan.TopPriorities {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				Bold(fmt.Sprintf("%d.", i+1)),
				StyleFg.Render(p.DeliverableTitle),
				StyleBlue.Render(fmt.Sprintf("(%s needed)", FormatHours(p.HoursNeeded)))))
			b.WriteString(fmt.Sprintf("     %s\n", Dim(p.Reasoning)))
		}
		b.WriteString("\n")
	}

	b.WriteString(Header("Week"))
	b.WriteString("\n")
	for _, day := range plan.Days {
		b.WriteString("\n")
		availStyle := StyleGreen
		if day.AvailableHours < 0 {
			availStyle = StyleRed
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			Bold(day.DayName),
			Dim(day.Date.Format("Jan 2")),
			availStyle.Render(fmt.Sprintf("%.1fh available", day.AvailableHours))))

		if len(day.Blocks) == 0 {
			b.WriteString(Dim("  Free day") + "\n")
			continue
		}
		for _, block := range day.Blocks {
			b.WriteString("  " + formatPlanBlock(block) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(Dim(plan.Explanation) + "\n")

	return RenderBox("7-Day Plan", b.String())
}

func formatPlanBlock(block analytics.PlanBlock) string {
	timeLabel := Dim(fmt.Sprintf("%-19s", block.Time))
	switch block.Type {
	case analytics.PlanBlockClass:
		return fmt.Sprintf("%s %s %s", timeLabel,
			StylePurple.Render("CLASS"),
			Dim(fmt.Sprintf("(%s)", FormatHours(block.Hours))))
	case analytics.PlanBlockBreak:
		return fmt.Sprintf("%s %s", timeLabel, Dim("Break"))
	default:
		return fmt.Sprintf("%s %s %s", timeLabel,
			StyleFg.Render(block.DeliverableTitle),
			StyleBlue.Render(fmt.Sprintf("(%s)", FormatHours(block.Hours))))
	}
}
