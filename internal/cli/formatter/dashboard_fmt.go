package formatter

import (
	"fmt"
	"strings"

	"github.com/natbrooks/orbit/internal/contract"
)

const (
	factorBarWidth   = 10
	workloadBarWidth = 14
)

// FormatDashboard formats a DashboardResponse into a styled CLI dashboard
// string. GeneratedAt is the reference clock for all relative dates.
func FormatDashboard(resp *contract.DashboardResponse) string {
	var b strings.Builder
	now := resp.GeneratedAt

	// Health score with factor breakdown.
	b.WriteString(Header("Academic Health"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		Bold(fmt.Sprintf("Score: %d/100", resp.Health.Score)),
		TrendArrow(resp.Health.Trend),
		RiskIndicator(resp.Overload.Level),
	))
	b.WriteString("\n")
	factors := []struct {
		label string
		score int
	}{
		{"Workload", resp.Health.Factors.Workload},
		{"Grades", resp.Health.Factors.Grades},
		{"Timeliness", resp.Health.Factors.Timeliness},
		{"Balance", resp.Health.Factors.Balance},
	}
	for _, f := range factors {
		b.WriteString(fmt.Sprintf("  %-11s %s\n", f.label, RenderScoreBar(f.score, factorBarWidth)))
	}
	for _, line := range resp.Health.Explanation {
		b.WriteString(fmt.Sprintf("  %s\n", Dim(line)))
	}

	// Overload reasons.
	if len(resp.Overload.Reasons) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Overload Risk"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			RiskIndicator(resp.Overload.Level),
			Dim(fmt.Sprintf("score %d/100", resp.Overload.Score))))
		for _, r := range resp.Overload.Reasons {
			b.WriteString(fmt.Sprintf("  %s\n", Dim(r)))
		}
	}

	// Today's focus.
	b.WriteString("\n")
	b.WriteString(Header("Today's Focus"))
	b.WriteString("\n\n")
	if len(resp.Focus) == 0 {
		b.WriteString(Dim("  Nothing urgent. Get ahead on upcoming work.") + "\n")
	}
	for i, f := range resp.Focus {
		title := fmt.Sprintf("%s %s  %s",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(f.Deliverable.Title),
			RelativeDateStyled(f.Deliverable.DueDate, now))
		b.WriteString("  " + title + "\n")
		b.WriteString(fmt.Sprintf("     %s\n", Dim(f.Reason)))
	}

	// 7-day workload chart.
	b.WriteString("\n")
	b.WriteString(Header("Next 7 Days"))
	b.WriteString("\n\n")
	var maxHours float64
	for _, d := range resp.Workload {
		if d.Hours > maxHours {
			maxHours = d.Hours
		}
	}
	for _, d := range resp.Workload {
		label := d.Date.Format("Mon Jan 2")
		bar := RenderHourBar(d.Hours, maxHours, workloadBarWidth)
		count := ""
		if d.DeliverableCount > 0 {
			count = Dim(fmt.Sprintf(" (%d due)", d.DeliverableCount))
		}
		b.WriteString(fmt.Sprintf("  %-11s %s %s%s\n", label, bar, FormatHours(d.Hours), count))
	}
	b.WriteString(fmt.Sprintf("  %s\n",
		Dim(fmt.Sprintf("%s due within 7 days against a %s/week budget",
			FormatHours(resp.HoursDueSoon), FormatHours(resp.WeeklyBudget)))))

	// Per-course grade tracking.
	if len(resp.Courses) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Grade Tracking"))
		b.WriteString("\n\n")
		headers := []string{"COURSE", "AVG", "COVERED", "PROJECTED", "TARGET", "STATUS"}
		rows := make([][]string, 0, len(resp.Courses))
		for _, c := range resp.Courses {
			name := c.CourseName
			if c.CourseCode != "" {
				name = fmt.Sprintf("%s (%s)", c.CourseName, c.CourseCode)
			}
			rows = append(rows, []string{
				Bold(name),
				FormatPct(c.CurrentAverage),
				fmt.Sprintf("%.0f%%", c.WeightCovered),
				FormatPct(c.ProjectedFinal),
				fmt.Sprintf("%.0f%%", c.TargetGrade),
				TrackPill(c.Status),
			})
		}
		b.WriteString(RenderTable(headers, rows))
		for _, c := range resp.Courses {
			if c.NextGradeHint != "" {
				b.WriteString(fmt.Sprintf("  %s %s\n", StyleYellow.Render("HINT:"), Dim(c.NextGradeHint)))
			}
		}
	}

	// Deadline and at-risk summary.
	b.WriteString("\n")
	if resp.NextDeadline != nil {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			StyleGreen.Render("Next deadline:"),
			StyleFg.Render(resp.NextDeadline.Title),
			RelativeDateStyled(resp.NextDeadline.DueDate, now)))
	}
	if len(resp.AtRisk) > 0 {
		names := make([]string, 0, len(resp.AtRisk))
		for _, d := range resp.AtRisk {
			names = append(names, d.Title)
		}
		b.WriteString(StyleRed.Render(fmt.Sprintf("At risk: %s", strings.Join(names, ", "))) + "\n")
	}

	return RenderBox("Dashboard", b.String())
}
