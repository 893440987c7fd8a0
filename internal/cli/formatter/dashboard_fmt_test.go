package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/natbrooks/orbit/internal/analytics"
	"github.com/natbrooks/orbit/internal/contract"
	"github.com/natbrooks/orbit/internal/domain"
)

func TestFormatDashboard_RendersAllSections(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	project := domain.Deliverable{
		ID:      "d-1",
		Title:   "Final Project",
		DueDate: now.AddDate(0, 0, 2),
		Status:  domain.StatusIncomplete,
	}

	resp := &contract.DashboardResponse{
		GeneratedAt: now,
		Health: analytics.HealthResult{
			Score:       62,
			Trend:       domain.TrendStable,
			Factors:     analytics.HealthFactors{Workload: 40, Grades: 80, Timeliness: 50, Balance: 70},
			Explanation: []string{"1 overdue deliverable"},
		},
		Overload: analytics.OverloadResult{
			Level:   domain.RiskHigh,
			Score:   78,
			Reasons: []string{"Estimated 25h of work vs 20h weekly capacity (125% utilization)"},
		},
		Focus: []analytics.FocusItem{
			{Deliverable: project, Reason: "Due in 2 days, worth 30%"},
		},
		Workload: []analytics.WorkloadDay{
			{Date: now, Hours: 0},
			{Date: now.AddDate(0, 0, 2), Hours: 12, DeliverableCount: 1},
		},
		Courses: []contract.CourseGradeView{
			{
				CourseName:     "Algorithms",
				CourseCode:     "CS301",
				TargetGrade:    90,
				CurrentAverage: 82.5,
				WeightCovered:  40,
				ProjectedFinal: 86.0,
				Status:         domain.TrackSlightlyBehind,
				NextGradeHint:  "Score 88% on Final Project to stay on target",
			},
		},
		NextDeadline: &project,
		AtRisk:       []domain.Deliverable{project},
		HoursDueSoon: 25,
		WeeklyBudget: 20,
	}

	out := FormatDashboard(resp)
	assert.Contains(t, out, "Score: 62/100")
	assert.Contains(t, out, "Workload")
	assert.Contains(t, out, "1 overdue deliverable")
	assert.Contains(t, out, "125% utilization")
	assert.Contains(t, out, "Final Project")
	assert.Contains(t, out, "Due in 2 days, worth 30%")
	assert.Contains(t, out, "Algorithms (CS301)")
	assert.Contains(t, out, "86.0%")
	assert.Contains(t, out, "Score 88% on Final Project to stay on target")
	assert.Contains(t, out, "25h due within 7 days against a 20h/week budget")
	assert.Contains(t, out, "At risk: Final Project")
}

func TestFormatDashboard_EmptyFocusShowsPlaceholder(t *testing.T) {
	resp := &contract.DashboardResponse{
		GeneratedAt: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Health: analytics.HealthResult{
			Score:       95,
			Trend:       domain.TrendUp,
			Explanation: []string{"Looking good! Stay on track with your schedule."},
		},
	}

	out := FormatDashboard(resp)
	assert.Contains(t, out, "Nothing urgent")
	assert.Contains(t, out, "Looking good!")
}
